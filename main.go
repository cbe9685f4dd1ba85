package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/bcdannyboy/optsweep/config"
	"github.com/bcdannyboy/optsweep/logging"
	"github.com/bcdannyboy/optsweep/models"
	"github.com/bcdannyboy/optsweep/options"
	"github.com/bcdannyboy/optsweep/pricing"
	"github.com/bcdannyboy/optsweep/report"
	"github.com/bcdannyboy/optsweep/sweep"
)

func main() {
	cfg, err := config.Load(os.Getenv("OPTSWEEP_ENV_FILE"))
	if err != nil {
		log.Fatalf("Error loading configuration: %s", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Error creating logger: %s", err)
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("sweep failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	mesh, err := sweep.GenerateMesh(cfg.Begin(), cfg.End, cfg.Steps)
	if err != nil {
		return err
	}

	var progress io.Writer
	if cfg.Progress {
		progress = os.Stderr
	}
	pp := &sweep.ParallelPricer{
		Sweeper:  sweep.New(logger),
		Workers:  cfg.Workers,
		Progress: progress,
	}

	var rep *report.Sweep
	switch cfg.Kind {
	case config.Perpetual:
		rep, err = sweepPerpetual(ctx, cfg, pp, mesh, logger)
	default:
		rep, err = sweepEuropean(ctx, cfg, pp, mesh, logger)
	}
	if err != nil {
		return err
	}

	if err := rep.WriteFile(cfg.Output); err != nil {
		return err
	}
	logger.Info("wrote sweep report", "rows", len(rep.Rows), "file", cfg.Output)
	return nil
}

func sweepEuropean(ctx context.Context, cfg *config.Config, pp *sweep.ParallelPricer, mesh []float64, logger *slog.Logger) (*report.Sweep, error) {
	if err := cfg.European.Validate(); err != nil {
		return nil, err
	}

	o := options.NewEuropeanWith(cfg.European, cfg.Type)
	parity := o.Parity()
	call, put := o.Price(), parity
	if o.Type == models.Put {
		call, put = parity, o.Price()
	}
	logger.Info("base option",
		"kind", cfg.Kind,
		"type", o.Type,
		"price", o.Price(),
		"delta", o.Delta(),
		"gamma", o.Gamma(),
		"parity_ok", pricing.ParityCheck(call, put, o.T, o.K, o.R, o.U),
	)

	m, err := pp.Sweeper.GenerateEuropeanMatrix(cfg.European, cfg.End, cfg.Steps, cfg.Vary)
	if err != nil {
		return nil, fmt.Errorf("generate matrix: %w", err)
	}

	rep := report.New(string(cfg.Kind), cfg.Vary, report.EuropeanBase(cfg.European), mesh)
	for _, metric := range cfg.Metrics {
		results, err := pp.PriceEuropean(ctx, m, metric)
		if err != nil {
			return nil, fmt.Errorf("price %s: %w", metric, err)
		}
		if err := rep.Add(metric, results); err != nil {
			return nil, err
		}
	}
	return rep, nil
}

func sweepPerpetual(ctx context.Context, cfg *config.Config, pp *sweep.ParallelPricer, mesh []float64, logger *slog.Logger) (*report.Sweep, error) {
	if err := cfg.Perpetual.Validate(); err != nil {
		return nil, err
	}

	o := options.NewPerpetualWith(cfg.Perpetual, cfg.Type)
	logger.Info("base option", "kind", cfg.Kind, "type", o.Type, "price", o.Price())
	if _, err := options.Delta(o); err != nil {
		logger.Debug("perpetual sweep reports prices only", "reason", err)
	}

	m, err := pp.Sweeper.GeneratePerpetualMatrix(cfg.Perpetual, cfg.End, cfg.Steps, cfg.Vary)
	if err != nil {
		return nil, fmt.Errorf("generate matrix: %w", err)
	}

	results, err := pp.PricePerpetual(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("price perpetual: %w", err)
	}
	rep := report.New(string(cfg.Kind), cfg.Vary, report.PerpetualBase(cfg.Perpetual), mesh)
	if err := rep.Add(models.Price, results); err != nil {
		return nil, err
	}
	return rep, nil
}
