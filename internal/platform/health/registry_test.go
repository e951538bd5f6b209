package health_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/bylines/internal/platform/health"
	"github.com/jsamuelsen11/bylines/mocks"
)

func TestCheckAll_Empty(t *testing.T) {
	t.Parallel()

	results := health.New().CheckAll(context.Background())

	if results == nil {
		t.Fatal("expected non-nil map, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected empty map, got %d entries", len(results))
	}
}

func TestCheckAll_MixedHealth(t *testing.T) {
	t.Parallel()

	healthy := mocks.NewMockHealthChecker(t)
	healthy.EXPECT().Name().Return("telemetry")
	healthy.EXPECT().HealthCheck(mock.Anything).Return(nil)

	driftErr := errors.New("1 stale list entry")
	drifting := mocks.NewMockHealthChecker(t)
	drifting.EXPECT().Name().Return("catalog-consistency")
	drifting.EXPECT().HealthCheck(mock.Anything).Return(driftErr)

	r := health.New()
	r.Register(healthy)
	r.Register(drifting)

	results := r.CheckAll(context.Background())

	if results["telemetry"] != nil {
		t.Errorf("telemetry check = %v, want nil", results["telemetry"])
	}
	if !errors.Is(results["catalog-consistency"], driftErr) {
		t.Errorf("catalog-consistency check = %v, want %v", results["catalog-consistency"], driftErr)
	}
}

func TestCheckAll_ContextPropagated(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("catalog-consistency")
	checker.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New()
	r.Register(checker)

	results := r.CheckAll(ctx)

	if !errors.Is(results["catalog-consistency"], context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", results["catalog-consistency"])
	}
}

func TestCheckAll_DuplicateNames_LastWriteWins(t *testing.T) {
	t.Parallel()

	first := mocks.NewMockHealthChecker(t)
	first.EXPECT().Name().Return("catalog")
	first.EXPECT().HealthCheck(mock.Anything).Return(nil)

	secondErr := errors.New("second failure")
	second := mocks.NewMockHealthChecker(t)
	second.EXPECT().Name().Return("catalog")
	second.EXPECT().HealthCheck(mock.Anything).Return(secondErr)

	r := health.New()
	r.Register(first)
	r.Register(second)

	results := r.CheckAll(context.Background())

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if !errors.Is(results["catalog"], secondErr) {
		t.Errorf("catalog check = %v, want %v (from last registered checker)", results["catalog"], secondErr)
	}
}

func TestCheckAll_ConcurrentSafety(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	const goroutines = 50

	for i := range goroutines {
		wg.Add(1)
		if i%2 == 0 {
			go func() {
				defer wg.Done()
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("checker").Maybe()
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
			}()
		} else {
			go func() {
				defer wg.Done()
				r.CheckAll(context.Background())
			}()
		}
	}

	wg.Wait()
}

func TestUnhealthy(t *testing.T) {
	t.Parallel()

	results := map[string]error{
		"zeta":  errors.New("down"),
		"alpha": errors.New("down"),
		"ok":    nil,
	}

	got := health.Unhealthy(results)
	if len(got) != 2 || got[0] != "alpha" || got[1] != "zeta" {
		t.Errorf("Unhealthy() = %v, want [alpha zeta]", got)
	}
	if got := health.Unhealthy(map[string]error{"ok": nil}); len(got) != 0 {
		t.Errorf("Unhealthy(all healthy) = %v, want empty", got)
	}
}

func TestLogResults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	health.LogResults(context.Background(), logger, map[string]error{
		"catalog-consistency": errors.New("inconsistent: 1 stale list entries"),
		"audit-log":           nil,
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "level=INFO") || !strings.Contains(lines[0], "checker=audit-log") {
		t.Errorf("first line = %q, want healthy audit-log at INFO", lines[0])
	}
	if !strings.Contains(lines[1], "level=WARN") || !strings.Contains(lines[1], "checker=catalog-consistency") {
		t.Errorf("second line = %q, want failing catalog-consistency at WARN", lines[1])
	}
}
