package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srediag/atomic64/pkg/registry"
)

func gatherCellValues(t *testing.T, reg *registry.Registry) map[string]float64 {
	t.Helper()
	promReg := prometheus.NewPedanticRegistry()
	require.NoError(t, promReg.Register(NewCollector(reg)))

	var families []*dto.MetricFamily
	families, err := promReg.Gather()
	require.NoError(t, err)

	values := make(map[string]float64)
	for _, fam := range families {
		if fam.GetName() != "atomic64_cell_value" {
			continue
		}
		for _, m := range fam.GetMetric() {
			var name string
			for _, label := range m.GetLabel() {
				if label.GetName() == "name" {
					name = label.GetValue()
				}
			}
			values[name] = m.GetGauge().GetValue()
		}
	}
	return values
}

func TestCollectorExportsCells(t *testing.T) {
	reg := registry.New()
	reg.Get("requests").Store(5)
	reg.Get("errors").Store(-1)

	values := gatherCellValues(t, reg)
	assert.Equal(t, map[string]float64{"requests": 5, "errors": -1}, values)
}

func TestCollectorSeesLaterCells(t *testing.T) {
	reg := registry.New()
	reg.Get("first").Store(1)
	assert.Equal(t, map[string]float64{"first": 1}, gatherCellValues(t, reg))

	reg.Get("second").Store(2)
	assert.Equal(t, map[string]float64{"first": 1, "second": 2}, gatherCellValues(t, reg))
}

func TestCollectorEmptyRegistry(t *testing.T) {
	assert.Empty(t, gatherCellValues(t, registry.New()))
}

func TestCollectorDescribe(t *testing.T) {
	ch := make(chan *prometheus.Desc, 1)
	NewCollector(registry.New()).Describe(ch)
	close(ch)
	require.Len(t, ch, 1)
	desc := <-ch
	assert.Contains(t, desc.String(), "atomic64_cell_value")
}
