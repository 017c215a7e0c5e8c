package metrics

import (
	"context"

	"github.com/MKhiriev/dashcam-catalog/internal/adapter"
)

type instrumentedURLChecker struct {
	next    adapter.URLChecker
	metrics *Metrics
}

// WrapURLChecker counts every check performed by next.
func (m *Metrics) WrapURLChecker(next adapter.URLChecker) adapter.URLChecker {
	return &instrumentedURLChecker{next: next, metrics: m}
}

func (c *instrumentedURLChecker) Check(ctx context.Context, rawURL string) error {
	err := c.next.Check(ctx, rawURL)
	c.metrics.ObserveURLCheck(err)
	return err
}
