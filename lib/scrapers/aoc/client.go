package aoc

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"aocfetch/lib/restyutil"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseUrl = "https://adventofcode.com"
	// DefaultDelay is waited before every request to stay polite with the site.
	DefaultDelay = 500 * time.Millisecond

	userAgent = "aocfetch (personal puzzle cache)"
)

var ErrNoSession = errors.New("no session cookie given")

type Client struct {
	BaseUrl *url.URL
	Year    int
	Http    *resty.Client
}

type ClientOptions struct {
	// defaults to DefaultBaseUrl
	BaseUrl string
	Year    int
	Session string
	// zero means DefaultDelay, a negative value disables the delay
	Delay time.Duration
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.Session == "" {
		return nil, ErrNoSession
	}
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	if opts.Delay == 0 {
		opts.Delay = DefaultDelay
	}

	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.SetHeader("Cookie", fmt.Sprintf("session=%s;", opts.Session))
	client.SetHeader("User-Agent", userAgent)
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))

	client.OnBeforeRequest(waitBeforeRequest(opts.Delay))
	restyutil.InstrumentClient(client, tracer, instrumentOutput)

	c := &Client{
		BaseUrl: baseUrl,
		Year:    opts.Year,
		Http:    client,
	}
	return c, nil
}

// unconditional, there is no backoff and no jitter
func waitBeforeRequest(delay time.Duration) resty.RequestMiddleware {
	return func(_ *resty.Client, req *resty.Request) error {
		if delay <= 0 {
			return nil
		}
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-req.Context().Done():
			return req.Context().Err()
		case <-timer.C:
			return nil
		}
	}
}
