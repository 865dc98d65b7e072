// Package stress drives concurrent operations against shared cells through a
// goroutine pool. Tests use it to check linearizability properties under real
// contention; the examples use it as a load generator.
package stress

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Config describes one stress run.
type Config struct {
	// Workers is the number of concurrent goroutines.
	Workers int
	// Iterations is the number of Op invocations per worker.
	Iterations int
	// Op is invoked with the worker index and iteration number. It must be
	// safe for concurrent use.
	Op func(worker, iteration int)
	// Tracer wraps the run in a span when set.
	Tracer trace.Tracer
}

// Run executes cfg.Workers goroutines, each performing cfg.Op
// cfg.Iterations times, and returns once every invocation has finished.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Workers <= 0 || cfg.Iterations <= 0 {
		return fmt.Errorf("stress: workers and iterations must be positive, got %d and %d", cfg.Workers, cfg.Iterations)
	}
	if cfg.Op == nil {
		return fmt.Errorf("stress: nil op")
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("stress")
	}
	_, span := tracer.Start(ctx, "stress.Run", trace.WithAttributes(
		attribute.Int("workers", cfg.Workers),
		attribute.Int("iterations", cfg.Iterations),
	))
	defer span.End()

	pool, err := ants.NewPool(cfg.Workers)
	if err != nil {
		return err
	}
	defer pool.Release()

	var wg sync.WaitGroup
	wg.Add(cfg.Workers)
	for w := 0; w < cfg.Workers; w++ {
		worker := w
		if err := pool.Submit(func() {
			defer wg.Done()
			for i := 0; i < cfg.Iterations; i++ {
				cfg.Op(worker, i)
			}
		}); err != nil {
			// Drop the slots that never got submitted, then drain the rest.
			wg.Add(worker - cfg.Workers)
			wg.Wait()
			return err
		}
	}
	wg.Wait()
	return nil
}
