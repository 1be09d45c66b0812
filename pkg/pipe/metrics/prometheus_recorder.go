package metrics

import (
	"net/http"

	"github.com/ib-77/rpipe/pkg/pipe"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "rpipe"

// PrometheusRecorder implements pipe.Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	chainsBuilt  *prom.CounterVec
	chainLength  *prom.HistogramVec
	pipeResolved *prom.CounterVec
}

var _ pipe.Recorder = (*PrometheusRecorder)(nil)

// NewPrometheusRecorder constructs the metrics and registers them on reg.
// A nil reg gets a private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}

	pr := &PrometheusRecorder{
		chainsBuilt: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "chains_built_total",
			Help:      "Chains built by variant",
		}, []string{"variant"}),
		chainLength: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "chain_length_units",
			Help:      "Number of units in built chains",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32, 64},
		}, []string{"variant"}),
		pipeResolved: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "pipe_resolved_total",
			Help:      "Pipe resolutions by outcome",
		}, []string{"outcome"}),
	}
	reg.MustRegister(pr.chainsBuilt, pr.chainLength, pr.pipeResolved)
	return pr
}

func (p *PrometheusRecorder) IncChainBuilt(variant pipe.Variant) {
	if p == nil || p.chainsBuilt == nil {
		return
	}
	p.chainsBuilt.WithLabelValues(string(variant)).Inc()
}

func (p *PrometheusRecorder) ObserveChainLength(variant pipe.Variant, n int) {
	if p == nil || p.chainLength == nil {
		return
	}
	p.chainLength.WithLabelValues(string(variant)).Observe(float64(n))
}

func (p *PrometheusRecorder) IncPipeResolved(outcome pipe.ResolveOutcome) {
	if p == nil || p.pipeResolved == nil {
		return
	}
	p.pipeResolved.WithLabelValues(string(outcome)).Inc()
}

// Handler exposes reg in the Prometheus text format.
func Handler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}
