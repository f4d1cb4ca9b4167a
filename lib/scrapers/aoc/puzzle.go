package aoc

import (
	"bytes"
	"context"
	"fmt"

	"aocfetch/lib/htmlutil"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	ResourcePrompt = "prompt"
	ResourceInput  = "input"
)

// StatusError is returned for any response outside of 2xx.
type StatusError struct {
	Resource   string
	Day        int
	StatusCode int
	Status     string
	Url        string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("fetch %s for day %d: unexpected status %s", e.Resource, e.Day, e.Status)
	if e.Resource == ResourceInput {
		msg += " (maybe check your session cookie?)"
	}
	return msg
}

func (c *Client) PromptPath(day int) string {
	return fmt.Sprintf("/%d/day/%d", c.Year, day)
}

func (c *Client) InputPath(day int) string {
	return fmt.Sprintf("/%d/day/%d/input", c.Year, day)
}

func (c *Client) get(ctx context.Context, resource string, day int, path string) ([]byte, error) {
	span := trace.SpanFromContext(ctx)

	res, err := c.Http.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, fmt.Errorf("fetch %s for day %d: %w", resource, day, err)
	}
	if !res.IsSuccess() {
		err := &StatusError{
			Resource:   resource,
			Day:        day,
			StatusCode: res.StatusCode(),
			Status:     res.Status(),
			Url:        res.Request.URL,
		}
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return res.Body(), nil
}

// Prompt fetches the puzzle page of `day` and returns the inner html of
// its <article> elements joined by newlines.
func (c *Client) Prompt(ctx context.Context, day int) (string, error) {
	ctx, span := tracer.Start(ctx, "client:Prompt")
	defer span.End()
	span.SetAttributes(attribute.Int("day", day))

	body, err := c.get(ctx, ResourcePrompt, day, c.PromptPath(day))
	if err != nil {
		return "", err
	}

	text, err := htmlutil.InnerHTMLFromReader(ctx, bytes.NewReader(body), "article")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return "", fmt.Errorf("parse prompt for day %d: %w", day, err)
	}
	return text, nil
}

// Input fetches the personal puzzle input of `day`, the body is returned verbatim.
func (c *Client) Input(ctx context.Context, day int) (string, error) {
	ctx, span := tracer.Start(ctx, "client:Input")
	defer span.End()
	span.SetAttributes(attribute.Int("day", day))

	body, err := c.get(ctx, ResourceInput, day, c.InputPath(day))
	if err != nil {
		return "", err
	}
	return string(body), nil
}
