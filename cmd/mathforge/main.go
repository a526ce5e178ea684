package main

import (
	"context"
	"os"

	"github.com/mathforge/mathforge/internal/config"
	"github.com/mathforge/mathforge/internal/logging"
	"github.com/mathforge/mathforge/internal/monitoring"
	"github.com/mathforge/mathforge/internal/providers/convert"
	"github.com/mathforge/mathforge/internal/providers/numtheory"
	"github.com/mathforge/mathforge/internal/providers/stats"
	"github.com/mathforge/mathforge/internal/providers/text"
	"github.com/mathforge/mathforge/internal/service"
	"github.com/mathforge/mathforge/internal/tracker"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadOrDefault()

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		OutputPaths: []string{"stdout"},
	})
	if err != nil {
		logger = logging.NewDefault()
	}
	defer logger.Sync()

	metrics := monitoring.NewMetrics()
	registry := service.NewRegistry(
		service.WithLogger(logger),
		service.WithMetrics(metrics),
	)

	providers := []service.Provider{
		numtheory.NewProvider(),
		stats.NewProvider(),
		text.NewProvider(),
		convert.NewProvider(),
	}
	for _, p := range providers {
		if err := registry.Register(p); err != nil {
			logger.Fatal("registration failed", zap.Error(err))
		}
	}
	metrics.SetRegisteredServices(len(providers))

	logger.Info("registry ready", zap.Any("stats", registry.Stats()))

	ctx := context.Background()
	if !selfCheck(ctx, logger, registry) {
		logger.Error("self-check failed")
		os.Exit(1)
	}

	showcase(ctx, logger, registry, cfg.Demo)
	metrics.UpdateUptime()
}

// selfCheck exercises one known value per service.
func selfCheck(ctx context.Context, logger *logging.Logger, registry *service.Registry) bool {
	checks := []struct {
		tool   string
		params map[string]interface{}
		want   interface{}
	}{
		{"numbers.gcd", map[string]interface{}{"a": 48, "b": 18}, int64(6)},
		{"numbers.fibonacci", map[string]interface{}{"n": 10}, int64(55)},
		{"stats.mean", map[string]interface{}{"numbers": []interface{}{1.0, 2.0, 3.0, 4.0, 5.0}}, 3.0},
		{"text.reverse", map[string]interface{}{"s": "hello"}, "olleh"},
		{"convert.decimalToBinary", map[string]interface{}{"n": 10}, "1010"},
	}

	for _, check := range checks {
		result, err := registry.Execute(ctx, check.tool, check.params, nil)
		if err != nil || !result.Success || result.Data["result"] != check.want {
			logger.Error("self-check mismatch",
				zap.String("tool", check.tool),
				zap.Any("want", check.want),
				zap.Any("result", result),
				zap.Error(err))
			return false
		}
	}

	logger.Info("self-check passed", zap.Int("checks", len(checks)))
	return true
}

// showcase runs a short demonstration across the registered services
// and the stateful tracker types.
func showcase(ctx context.Context, logger *logging.Logger, registry *service.Registry, demo config.DemoConfig) {
	if result, err := registry.Execute(ctx, "numbers.sieve", map[string]interface{}{
		"limit": demo.SieveLimit,
	}, nil); err == nil && result.Success {
		primes := result.Data["result"].([]int64)
		logger.Info("sieve of eratosthenes",
			zap.Int("limit", demo.SieveLimit),
			zap.Int("primes", len(primes)))
	}

	if result, err := registry.Execute(ctx, "numbers.collatz", map[string]interface{}{
		"n": demo.CollatzSeed,
	}, nil); err == nil && result.Success {
		logger.Info("collatz sequence",
			zap.Int("seed", demo.CollatzSeed),
			zap.Any("length", result.Data["length"]))
	}

	dataset := tracker.NewDataset()
	for i := 1; i <= demo.SampleSize; i++ {
		dataset.Add(float64(i * i % 97))
	}
	if summary, err := dataset.Summary(); err == nil {
		logger.Info("dataset summary",
			zap.Int("count", summary.Count),
			zap.Float64("mean", summary.Mean),
			zap.Float64("median", summary.Median),
			zap.Float64("std_dev", summary.StdDev),
			zap.Float64("q1", summary.Q1),
			zap.Float64("q3", summary.Q3))
	}

	calc := tracker.NewCalculator()
	calc.Add(10, 5)
	calc.Multiply(3, 4)
	calc.StoreMemory(calc.LastResult())
	logger.Info("calculator session",
		zap.Float64("last_result", calc.LastResult()),
		zap.Int("history", len(calc.History())))

	for _, svc := range registry.Discover("statistics percentile", 2) {
		logger.Debug("discovered service", zap.String("service", svc.ID))
	}
}
