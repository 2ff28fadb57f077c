// Package main implements the calculator demonstration binary, which prints
// a fixed sequence of example computations to standard output.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/calculator/internal/config"
	"github.com/phrazzld/calculator/internal/demo"
	"github.com/phrazzld/calculator/internal/domain/arith"
	"github.com/phrazzld/calculator/internal/platform/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout); err != nil {
		log.Fatalf("Calculator demo failed: %v", err)
	}
}

// initializeApp loads configuration and sets up logging.
// Returns the loaded config, the configured logger and any initialization error.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Demo configuration loaded",
		"log_level", cfg.Log.Level,
		"format", cfg.Demo.Format)

	return cfg, l, nil
}

// run initializes the application, evaluates the demonstration examples and
// renders them to out.
func run(ctx context.Context, out io.Writer) error {
	cfg, l, err := initializeApp()
	if err != nil {
		return err
	}

	runner := demo.NewRunner(arith.NewCalculator(), demo.DefaultExamples())
	report, err := runner.Run(logger.WithLogger(ctx, l))
	if err != nil {
		return err
	}

	return demo.Render(out, report, cfg.Demo.Format)
}
