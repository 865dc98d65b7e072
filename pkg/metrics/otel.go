package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/srediag/atomic64/pkg/atomic64"
	"github.com/srediag/atomic64/pkg/registry"
)

// ObserveRegistry registers an int64 observable gauge named name on meter
// whose callback reports every cell in reg, labeled by cell name. The
// returned Registration unhooks the callback.
func ObserveRegistry(meter metric.Meter, reg *registry.Registry, name string) (metric.Registration, error) {
	gauge, err := meter.Int64ObservableGauge(name,
		metric.WithDescription("Current value of a named atomic cell."))
	if err != nil {
		return nil, err
	}
	return meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		reg.Range(func(cellName string, cell *atomic64.Cell) bool {
			o.ObserveInt64(gauge, cell.Load(),
				metric.WithAttributes(attribute.String("name", cellName)))
			return true
		})
		return nil
	}, gauge)
}
