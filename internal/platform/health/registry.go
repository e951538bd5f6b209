// Package health provides a thread-safe registry of health checkers. The
// entry point registers the catalog consistency checker and reports the
// results before exiting.
package health

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/jsamuelsen11/bylines/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is a thread-safe implementation of [ports.HealthRegistry].
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty health check registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll executes all registered health checks and returns results keyed by
// checker name. Nil values indicate healthy components. The slice is copied
// under a read lock so checks run without holding the lock. When two checkers
// share a name, the one registered last wins.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := slices.Clone(r.checkers)
	r.mu.RUnlock()

	results := make(map[string]error, len(checkers))
	for _, c := range checkers {
		results[c.Name()] = c.HealthCheck(ctx)
	}
	return results
}

// Unhealthy returns the names of failed checks in sorted order.
func Unhealthy(results map[string]error) []string {
	var names []string
	for name, err := range results {
		if err != nil {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// LogResults writes one record per check in name order: Info for healthy
// components, Warn with the error for the rest.
func LogResults(ctx context.Context, logger *slog.Logger, results map[string]error) {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if err := results[name]; err != nil {
			logger.WarnContext(ctx, "health check failed",
				slog.String("checker", name),
				slog.Any("error", err),
			)
			continue
		}
		logger.InfoContext(ctx, "health check passed", slog.String("checker", name))
	}
}
