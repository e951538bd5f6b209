package app

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/bylines/internal/domain"
	"github.com/jsamuelsen11/bylines/internal/ports"
	"github.com/jsamuelsen11/bylines/mocks"
)

func TestConsistencyChecker_Name(t *testing.T) {
	t.Parallel()

	c := NewConsistencyChecker(mocks.NewMockPublishingService(t))
	if got := c.Name(); got != "catalog-consistency" {
		t.Errorf("Name() = %q, want %q", got, "catalog-consistency")
	}
}

func TestConsistencyChecker_HealthCheck(t *testing.T) {
	t.Parallel()

	t.Run("healthy when audit is clean", func(t *testing.T) {
		t.Parallel()
		svc := mocks.NewMockPublishingService(t)
		svc.EXPECT().Audit(mock.Anything).Return([]ports.Drift{}, nil)

		if err := NewConsistencyChecker(svc).HealthCheck(context.Background()); err != nil {
			t.Errorf("HealthCheck() = %v, want nil", err)
		}
	})

	t.Run("inconsistent when audit finds drift", func(t *testing.T) {
		t.Parallel()
		svc := mocks.NewMockPublishingService(t)
		svc.EXPECT().Audit(mock.Anything).Return([]ports.Drift{
			{ArticleID: uuid.New(), ArticleTitle: "AI in 2025", Field: "author"},
			{ArticleID: uuid.New(), ArticleTitle: "AI in 2025", Field: "magazine"},
		}, nil)

		err := NewConsistencyChecker(svc).HealthCheck(context.Background())
		if !errors.Is(err, domain.ErrInconsistent) {
			t.Fatalf("HealthCheck() = %v, want ErrInconsistent", err)
		}
		want := `inconsistent: 2 stale list entries, first is article "AI in 2025" (author)`
		if err.Error() != want {
			t.Errorf("HealthCheck() = %q, want %q", err.Error(), want)
		}
	})

	t.Run("propagates audit failure", func(t *testing.T) {
		t.Parallel()
		auditErr := errors.New("boom")
		svc := mocks.NewMockPublishingService(t)
		svc.EXPECT().Audit(mock.Anything).Return(nil, auditErr)

		err := NewConsistencyChecker(svc).HealthCheck(context.Background())
		if !errors.Is(err, auditErr) {
			t.Errorf("HealthCheck() = %v, want wrapped audit error", err)
		}
	})
}
