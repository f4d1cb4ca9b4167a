package serviceutil

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// exit codes from sysexits.h
const (
	ExitOK      = 0
	ExitUsage   = 64
	ExitDataErr = 65
)

// Returns a context that will live until Ctrl+C is pressed
func SignalContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
	}()

	return ctx
}

func Fatal(message string, err error) {
	FatalWithCode(ExitDataErr, message, err)
}

func FatalWithCode(code int, message string, err error) {
	slog.Error(message, "err", err.Error())
	os.Exit(code)
}
