package app

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/bylines/internal/domain"
	"github.com/jsamuelsen11/bylines/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthChecker = (*ConsistencyChecker)(nil)

// ConsistencyChecker reports the catalog unhealthy while any article sits in
// an author or magazine list it no longer references.
type ConsistencyChecker struct {
	svc ports.PublishingService
}

// NewConsistencyChecker creates a checker that audits through svc.
func NewConsistencyChecker(svc ports.PublishingService) *ConsistencyChecker {
	return &ConsistencyChecker{svc: svc}
}

// Name implements ports.HealthChecker.
func (c *ConsistencyChecker) Name() string { return "catalog-consistency" }

// HealthCheck returns an error wrapping domain.ErrInconsistent when the
// audit finds drift.
func (c *ConsistencyChecker) HealthCheck(ctx context.Context) error {
	drifts, err := c.svc.Audit(ctx)
	if err != nil {
		return fmt.Errorf("auditing catalog: %w", err)
	}
	if len(drifts) > 0 {
		return fmt.Errorf("%w: %d stale list entries, first is article %q (%s)",
			domain.ErrInconsistent, len(drifts), drifts[0].ArticleTitle, drifts[0].Field)
	}
	return nil
}
