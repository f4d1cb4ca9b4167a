// Package fetcher walks a set of puzzle days and downloads whatever is not
// cached yet. Any failure stops the walk, files written for earlier days
// stay on disk.
package fetcher

import (
	"context"
	"fmt"

	"aocfetch/lib/puzzlecache"
	"aocfetch/lib/scrapers/aoc"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

var tracer = otel.Tracer("aocfetch.lib.fetcher")

var meter = otel.Meter("aocfetch.lib.fetcher")
var fetchCounter, _ = meter.Int64Counter("aocfetch.fetches")
var cacheHitCounter, _ = meter.Int64Counter("aocfetch.cache_hits")

// Source is where missing prompts and inputs come from, *aoc.Client in practice.
type Source interface {
	Prompt(ctx context.Context, day int) (string, error)
	Input(ctx context.Context, day int) (string, error)
}

var _ Source = (*aoc.Client)(nil)

type Fetcher struct {
	Source Source
	Store  puzzlecache.Store
	Year   int
	// called after every day that completed
	OnDay func(Result)
}

// Run processes `days` in order. It returns the results of every day that
// completed, and stops at the first error.
func (f Fetcher) Run(ctx context.Context, days []int) ([]Result, error) {
	ctx, span := tracer.Start(ctx, "fetcher:Run")
	defer span.End()
	span.SetAttributes(attribute.Int("year", f.Year), attribute.Int("days", len(days)))

	err := f.Store.Ensure()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create output directories")
		return nil, err
	}

	results := make([]Result, 0, len(days))
	for _, day := range days {
		result, err := f.fetchDay(ctx, day)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to fetch day")
			return results, err
		}

		results = append(results, result)
		if f.OnDay != nil {
			f.OnDay(result)
		}
	}
	return results, nil
}

func (f Fetcher) fetchDay(ctx context.Context, day int) (Result, error) {
	ctx, span := tracer.Start(ctx, "fetcher:fetchDay")
	defer span.End()
	span.SetAttributes(attribute.Int("day", day))

	promptCached, err := f.Store.HasPrompt(day)
	if err != nil {
		return Result{}, fmt.Errorf("day %d: %w", day, err)
	}
	if promptCached {
		cacheHitCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("resource", aoc.ResourcePrompt)))
	} else {
		fetchCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("resource", aoc.ResourcePrompt)))
		text, err := f.Source.Prompt(ctx, day)
		if err != nil {
			return Result{}, err
		}
		err = f.Store.WritePrompt(day, text)
		if err != nil {
			return Result{}, fmt.Errorf("day %d: %w", day, err)
		}
	}

	inputCached, err := f.Store.HasInput(day)
	if err != nil {
		return Result{}, fmt.Errorf("day %d: %w", day, err)
	}
	if inputCached {
		cacheHitCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("resource", aoc.ResourceInput)))
	} else {
		fetchCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("resource", aoc.ResourceInput)))
		text, err := f.Source.Input(ctx, day)
		if err != nil {
			return Result{}, err
		}
		err = f.Store.WriteInput(day, text)
		if err != nil {
			return Result{}, fmt.Errorf("day %d: %w", day, err)
		}
	}

	outcome := outcomeOf(promptCached, inputCached)
	span.SetAttributes(attribute.String("outcome", outcome.String()))
	return Result{Day: day, Outcome: outcome}, nil
}
