package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/pandocwatch/internal/config"
	"github.com/hedisam/pandocwatch/internal/interceptors"
)

const (
	appName = "pandocwatch"
)

func main() {
	logger := logrus.New()
	logger.AddHook(&interceptors.TraceHook{})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd := newRootCmd(&app{
		logger: logger,
		stdout: os.Stdout,
		stderr: os.Stderr,
		pandoc: config.PandocExecutable,
	})

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		cancel()
		os.Exit(1)
	}
}
