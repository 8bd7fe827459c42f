package metrics

import (
	"context"
	"time"

	"moodmate/be/biz/util/metrics"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// New records count and latency per route template, so path parameters do
// not blow up label cardinality.
func New(m *metrics.Metrics) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		start := time.Now()
		c.Next(ctx)
		m.ObserveHTTP(string(c.Method()), c.FullPath(), c.Response.StatusCode(), time.Since(start))
	}
}

// Handler serves the registry in the Prometheus text format.
func Handler(m *metrics.Metrics) app.HandlerFunc {
	return adaptor.HertzHandler(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
}
