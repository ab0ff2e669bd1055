package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns a private registry. A nil *Collector is valid and records
// nothing, so services can run without metrics.
type Collector struct {
	reg *prometheus.Registry

	ReceiptsGenerated *prometheus.CounterVec // kind label: passenger|blank
	ReceiptPages      prometheus.Counter
	LogoFetchFailures prometheus.Counter
	SeatMapsBuilt     *prometheus.CounterVec // variant label: interactive|print
	HTTPRequests      *prometheus.CounterVec // method, status
	RenderDuration    prometheus.Histogram
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		ReceiptsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "excursion_receipts_generated_total",
			Help: "Receipts drawn, by kind.",
		}, []string{"kind"}),
		ReceiptPages: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "excursion_receipt_pages_total",
			Help: "Receipt PDF pages produced.",
		}),
		LogoFetchFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "excursion_logo_fetch_failures_total",
			Help: "Association logos that could not be fetched or decoded.",
		}),
		SeatMapsBuilt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "excursion_seatmaps_built_total",
			Help: "Floor plans built, by variant.",
		}, []string{"variant"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "excursion_http_requests_total",
			Help: "HTTP requests served, by method and status.",
		}, []string{"method", "status"}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "excursion_pdf_render_duration_seconds",
			Help:    "Time spent rendering a PDF document.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
		}),
	}

	reg.MustRegister(
		c.ReceiptsGenerated, c.ReceiptPages, c.LogoFetchFailures,
		c.SeatMapsBuilt, c.HTTPRequests, c.RenderDuration,
	)
	return c
}

func (c *Collector) Handler() http.Handler {
	if c == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.reg
}

func (c *Collector) ObserveReceipts(kind string, receipts, pages int) {
	if c == nil {
		return
	}
	c.ReceiptsGenerated.WithLabelValues(kind).Add(float64(receipts))
	c.ReceiptPages.Add(float64(pages))
}

func (c *Collector) ObserveLogoFailure() {
	if c == nil {
		return
	}
	c.LogoFetchFailures.Inc()
}

func (c *Collector) ObserveSeatMap(variant string) {
	if c == nil {
		return
	}
	c.SeatMapsBuilt.WithLabelValues(variant).Inc()
}

func (c *Collector) ObserveRequest(method string, status int) {
	if c == nil {
		return
	}
	c.HTTPRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

func (c *Collector) ObserveRender(seconds float64) {
	if c == nil {
		return
	}
	c.RenderDuration.Observe(seconds)
}
