// Package metrics implements pipe.Recorder on Prometheus.
//
// Rendering uses pipe.NoopRecorder unless a recorder is attached to the
// render context with pipe.WithRecorder:
//
//	reg := prometheus.NewRegistry()
//	ctx := pipe.WithRecorder(ctx, metrics.NewPrometheusRecorder(reg))
//	err := page.Render(ctx, w)
package metrics
