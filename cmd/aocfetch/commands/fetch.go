package commands

import (
	"context"
	"io"
	"log/slog"
	"time"

	"aocfetch/lib/fetcher"
	"aocfetch/lib/puzzlecache"
	"aocfetch/lib/scrapers/aoc"
	"aocfetch/lib/settings"
	"aocfetch/lib/telemetry"
)

type fetchParams struct {
	ConfigPath string
	// empty means every day
	Days  []int
	Delay time.Duration
	// the summary table is written here, nil skips it
	Out io.Writer

	// overridden in tests
	BaseUrl string
}

func runFetch(ctx context.Context, params fetchParams) error {
	cfg, err := settings.Load(params.ConfigPath)
	if err != nil {
		return err
	}
	err = cfg.Validate()
	if err != nil {
		return err
	}

	tel, err := telemetry.Setup(ctx, "aocfetch", cfg.Telemetry)
	if err != nil {
		return err
	}
	defer func() {
		err := tel.Shutdown(context.Background())
		if err != nil {
			slog.Warn("failed to flush telemetry", "err", err)
		}
	}()

	client, err := aoc.NewClient(aoc.ClientOptions{
		BaseUrl: params.BaseUrl,
		Year:    cfg.Year,
		Session: cfg.Session,
		Delay:   params.Delay,
	})
	if err != nil {
		return err
	}

	days := params.Days
	if len(days) == 0 {
		days = fetcher.AllDays()
	}

	slog.Info("fetching puzzles", "year", cfg.Year, "days", len(days), "path", cfg.Path)
	f := fetcher.Fetcher{
		Source: client,
		Store: puzzlecache.Store{
			Dir:       cfg.Path,
			Extension: cfg.Extension,
		},
		Year: cfg.Year,
		OnDay: func(r fetcher.Result) {
			slog.Info("day done", "day", r.Day, "outcome", r.Outcome.String())
		},
	}

	results, err := f.Run(ctx, days)
	if params.Out != nil && len(results) > 0 {
		renderSummary(params.Out, results)
	}
	if err != nil {
		return err
	}

	slog.Info("finished fetching files")
	return nil
}
