package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nurpe/vendor-onboarding/internal/cli"
	"github.com/nurpe/vendor-onboarding/internal/config"
	"github.com/nurpe/vendor-onboarding/internal/logger"
)

func main() {
	cfg := config.LoadClient()
	log := logger.New(cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(cfg, log).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
