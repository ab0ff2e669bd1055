package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
)

func counterValue(t *testing.T, c *Collector, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := c.Registry().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
	next:
		for _, m := range f.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue next
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestObserveReceipts(t *testing.T) {
	c := NewCollector()
	c.ObserveReceipts("blank", 55, 14)
	c.ObserveReceipts("passenger", 3, 1)

	if v := counterValue(t, c, "excursion_receipts_generated_total", map[string]string{"kind": "blank"}); v != 55 {
		t.Fatalf("expected 55 blank receipts, got %v", v)
	}
	if v := counterValue(t, c, "excursion_receipt_pages_total", nil); v != 15 {
		t.Fatalf("expected 15 pages, got %v", v)
	}
}

func TestNilCollectorIsNoop(t *testing.T) {
	var c *Collector
	c.ObserveReceipts("blank", 1, 1)
	c.ObserveLogoFailure()
	c.ObserveSeatMap("print")
	c.ObserveRequest("GET", 200)
	c.ObserveRender(0.1)
	if c.Registry() != nil {
		t.Fatalf("nil collector should have no registry")
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	c := NewCollector()
	c.ObserveSeatMap("interactive")
	c.ObserveRequest("GET", 200)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `excursion_seatmaps_built_total{variant="interactive"} 1`) {
		t.Fatalf("seatmap counter missing from output:\n%s", body)
	}
	if !strings.Contains(string(body), `excursion_http_requests_total{method="GET",status="200"} 1`) {
		t.Fatalf("request counter missing from output")
	}
}
