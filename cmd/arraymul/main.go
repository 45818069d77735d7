package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"golang.org/x/term"

	"github.com/tailored-agentic-units/arraymul/observability"
	"github.com/tailored-agentic-units/arraymul/repl"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := flag.NewFlagSet("arraymul", flag.ContinueOnError)
	var (
		configFile = flags.String("config", "", "Path to YAML or JSON config file")
		array      = flags.String("array", "", "Initial array, e.g. 1,2,3 (overrides config; prompted when empty)")
		capacity   = flags.Int("capacity", 0, "Undo history capacity (overrides config)")
		observer   = flags.String("observer", "", "Observer name, one of "+strings.Join(observability.ObserverNames(), ", ")+" (overrides config)")
		prompt     = flags.String("prompt", "", "Command prompt (overrides config)")
		metrics    = flags.Bool("metrics", false, "Count events with OpenTelemetry and print totals on exit")
		verbose    = flags.Bool("verbose", false, "Enable verbose logging to stderr")
	)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg := repl.DefaultConfig()
	if *configFile != "" {
		loaded, err := repl.LoadConfig(*configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if *array != "" {
		values, err := repl.ParseArray(*array)
		if err != nil {
			return fmt.Errorf("invalid -array: %w", err)
		}
		cfg.Array = values
	}
	if *capacity > 0 {
		cfg.Session.History.Capacity = *capacity
	}
	if *observer != "" {
		cfg.Observer = *observer
	}
	if *prompt != "" {
		cfg.Prompt = *prompt
	}
	if *metrics {
		cfg.Metrics = true
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	observability.RegisterObserver("slog", observability.NewSlogObserver(logger))

	var reader *sdkmetric.ManualReader
	if cfg.Metrics {
		reader = sdkmetric.NewManualReader()
		provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
		defer func() {
			if err := provider.Shutdown(context.Background()); err != nil {
				logger.Warn("failed to shut down meter provider", "error", err)
			}
		}()
		otel.SetMeterProvider(provider)
	}

	in, closeInput, err := openInput()
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer closeInput()

	r, err := repl.New(&cfg, in, os.Stdout)
	if err != nil {
		return fmt.Errorf("failed to create command loop: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runErr := r.Run(ctx)

	if reader != nil {
		if err := printMetrics(context.Background(), reader, os.Stderr); err != nil {
			logger.Warn("failed to collect metrics", "error", err)
		}
	}

	return runErr
}

func openInput() (repl.LineReader, func(), error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return repl.NewLineReader(os.Stdin), func() {}, nil
	}

	tr, err := newTerminalReader()
	if err != nil {
		return nil, nil, err
	}
	return tr, func() { _ = tr.Close() }, nil
}
