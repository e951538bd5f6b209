// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/bylines/internal/domain"
	"github.com/jsamuelsen11/bylines/internal/domain/publishing"
	"github.com/jsamuelsen11/bylines/internal/platform/telemetry"
	"github.com/jsamuelsen11/bylines/internal/ports"
)

// Compile-time check that PublishingService implements ports.PublishingService.
var _ ports.PublishingService = (*PublishingService)(nil)

// PublishingService implements ports.PublishingService on top of a single
// publishing.Catalog. The catalog itself is not safe for concurrent use, so
// every call holds mu: writes exclusively, derived queries shared.
type PublishingService struct {
	mu      sync.RWMutex
	catalog *publishing.Catalog

	logger  *slog.Logger
	metrics *telemetry.Metrics
	tracer  trace.Tracer
}

// NewPublishingService creates a PublishingService that owns catalog.
// A nil logger discards output; nil metrics record to a no-op meter.
func NewPublishingService(catalog *publishing.Catalog, metrics *telemetry.Metrics, logger *slog.Logger) *PublishingService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if metrics == nil {
		// Instrument creation on the no-op provider cannot fail.
		metrics, _ = telemetry.NewMetrics(noop.NewMeterProvider())
	}
	return &PublishingService{
		catalog: catalog,
		logger:  logger,
		metrics: metrics,
		tracer:  otel.Tracer(telemetry.InstrumentationScope),
	}
}

// RegisterAuthor creates an author.
func (s *PublishingService) RegisterAuthor(ctx context.Context, name string) (id uuid.UUID, err error) {
	ctx, span := s.tracer.Start(ctx, "PublishingService.RegisterAuthor")
	defer span.End()
	defer s.observe(ctx, span, "RegisterAuthor", "author", time.Now(), &err)

	s.logger.InfoContext(ctx, "registering author", slog.String("name", name))

	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.catalog.NewAuthor(name)
	if err != nil {
		return uuid.Nil, err
	}

	s.metrics.EntitiesRegistered.Add(ctx, 1, metric.WithAttributes(telemetry.AttrEntity.String("author")))
	span.SetAttributes(attribute.String("author.id", a.ID().String()))
	return a.ID(), nil
}

// RegisterMagazine creates a magazine and adds it to the top-publisher pool.
func (s *PublishingService) RegisterMagazine(ctx context.Context, name, category string) (id uuid.UUID, err error) {
	ctx, span := s.tracer.Start(ctx, "PublishingService.RegisterMagazine")
	defer span.End()
	defer s.observe(ctx, span, "RegisterMagazine", "magazine", time.Now(), &err)

	s.logger.InfoContext(ctx, "registering magazine",
		slog.String("name", name),
		slog.String("category", category),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.catalog.NewMagazine(name, category)
	if err != nil {
		return uuid.Nil, err
	}

	s.metrics.EntitiesRegistered.Add(ctx, 1, metric.WithAttributes(telemetry.AttrEntity.String("magazine")))
	span.SetAttributes(attribute.String("magazine.id", m.ID().String()))
	return m.ID(), nil
}

// PublishArticle resolves both IDs and links them through a new article.
func (s *PublishingService) PublishArticle(ctx context.Context, authorID, magazineID uuid.UUID, title string) (id uuid.UUID, err error) {
	ctx, span := s.tracer.Start(ctx, "PublishingService.PublishArticle", trace.WithAttributes(
		attribute.String("author.id", authorID.String()),
		attribute.String("magazine.id", magazineID.String()),
	))
	defer span.End()
	defer s.observe(ctx, span, "PublishArticle", "article", time.Now(), &err,
		slog.String("author_id", authorID.String()),
		slog.String("magazine_id", magazineID.String()),
	)

	s.logger.InfoContext(ctx, "publishing article",
		slog.String("author_id", authorID.String()),
		slog.String("magazine_id", magazineID.String()),
		slog.String("title", title),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.catalog.Author(authorID)
	if err != nil {
		return uuid.Nil, err
	}
	m, err := s.catalog.Magazine(magazineID)
	if err != nil {
		return uuid.Nil, err
	}

	art, err := a.AddArticle(m, title)
	if err != nil {
		return uuid.Nil, err
	}

	s.metrics.ArticlesPublished.Add(ctx, 1)
	span.SetAttributes(attribute.String("article.id", art.ID().String()))
	return art.ID(), nil
}

// UpdateAuthor applies update to the author with the given ID.
func (s *PublishingService) UpdateAuthor(ctx context.Context, id uuid.UUID, update ports.AuthorUpdate) (err error) {
	ctx, span := s.tracer.Start(ctx, "PublishingService.UpdateAuthor")
	defer span.End()
	defer s.observe(ctx, span, "UpdateAuthor", "author", time.Now(), &err, slog.String("id", id.String()))

	s.logger.InfoContext(ctx, "updating author", slog.String("id", id.String()))

	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.catalog.Author(id)
	if err != nil {
		return err
	}
	return a.Apply(publishing.AuthorChanges{Name: update.Name})
}

// UpdateMagazine applies update to the magazine with the given ID.
func (s *PublishingService) UpdateMagazine(ctx context.Context, id uuid.UUID, update ports.MagazineUpdate) (err error) {
	ctx, span := s.tracer.Start(ctx, "PublishingService.UpdateMagazine")
	defer span.End()
	defer s.observe(ctx, span, "UpdateMagazine", "magazine", time.Now(), &err, slog.String("id", id.String()))

	s.logger.InfoContext(ctx, "updating magazine", slog.String("id", id.String()))

	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.catalog.Magazine(id)
	if err != nil {
		return err
	}
	return m.Apply(publishing.MagazineChanges{Name: update.Name, Category: update.Category})
}

// UpdateArticle resolves the referenced IDs and applies update to the
// article. A title change is rejected before any lookup.
func (s *PublishingService) UpdateArticle(ctx context.Context, id uuid.UUID, update ports.ArticleUpdate) (err error) {
	ctx, span := s.tracer.Start(ctx, "PublishingService.UpdateArticle")
	defer span.End()
	defer s.observe(ctx, span, "UpdateArticle", "article", time.Now(), &err, slog.String("id", id.String()))

	s.logger.InfoContext(ctx, "updating article", slog.String("id", id.String()))

	s.mu.Lock()
	defer s.mu.Unlock()

	art, err := s.catalog.Article(id)
	if err != nil {
		return err
	}

	changes := publishing.ArticleChanges{Title: update.Title}
	if update.Title == nil {
		if update.AuthorID != nil {
			if changes.Author, err = s.catalog.Author(*update.AuthorID); err != nil {
				return err
			}
		}
		if update.MagazineID != nil {
			if changes.Magazine, err = s.catalog.Magazine(*update.MagazineID); err != nil {
				return err
			}
		}
	}

	if err := art.Apply(changes); err != nil {
		return err
	}

	if changes.Author != nil || changes.Magazine != nil {
		s.logger.WarnContext(ctx, "article reassigned; original author and magazine lists still hold it",
			slog.String("id", id.String()),
		)
	}
	return nil
}

// AuthorProfile returns a snapshot of the author's derived queries.
func (s *PublishingService) AuthorProfile(ctx context.Context, id uuid.UUID) (_ *ports.AuthorProfile, err error) {
	ctx, span := s.tracer.Start(ctx, "PublishingService.AuthorProfile")
	defer span.End()
	defer s.observe(ctx, span, "AuthorProfile", "author", time.Now(), &err, slog.String("id", id.String()))

	s.mu.RLock()
	defer s.mu.RUnlock()

	a, err := s.catalog.Author(id)
	if err != nil {
		return nil, err
	}
	p := authorProfile(a)
	return &p, nil
}

// MagazineProfile returns a snapshot of the magazine's derived queries.
func (s *PublishingService) MagazineProfile(ctx context.Context, id uuid.UUID) (_ *ports.MagazineProfile, err error) {
	ctx, span := s.tracer.Start(ctx, "PublishingService.MagazineProfile")
	defer span.End()
	defer s.observe(ctx, span, "MagazineProfile", "magazine", time.Now(), &err, slog.String("id", id.String()))

	s.mu.RLock()
	defer s.mu.RUnlock()

	m, err := s.catalog.Magazine(id)
	if err != nil {
		return nil, err
	}
	p := magazineProfile(m)
	return &p, nil
}

// MagazineProfiles returns a snapshot of every magazine in registration order.
func (s *PublishingService) MagazineProfiles(ctx context.Context) (_ []ports.MagazineProfile, err error) {
	ctx, span := s.tracer.Start(ctx, "PublishingService.MagazineProfiles")
	defer span.End()
	defer s.observe(ctx, span, "MagazineProfiles", "magazine", time.Now(), &err)

	s.mu.RLock()
	defer s.mu.RUnlock()

	mags := s.catalog.Magazines()
	profiles := make([]ports.MagazineProfile, len(mags))
	for i, m := range mags {
		profiles[i] = magazineProfile(m)
	}
	return profiles, nil
}

// TopPublisher returns the magazine with the most articles.
func (s *PublishingService) TopPublisher(ctx context.Context) (_ *ports.MagazineProfile, err error) {
	ctx, span := s.tracer.Start(ctx, "PublishingService.TopPublisher")
	defer span.End()
	defer s.observe(ctx, span, "TopPublisher", "magazine", time.Now(), &err)

	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.catalog.TopPublisher()
	if !ok {
		return nil, fmt.Errorf("top publisher: no magazines registered: %w", domain.ErrNotFound)
	}
	p := magazineProfile(m)
	return &p, nil
}

// Audit reports articles listed under an author or magazine they no longer
// reference.
func (s *PublishingService) Audit(ctx context.Context) (_ []ports.Drift, err error) {
	ctx, span := s.tracer.Start(ctx, "PublishingService.Audit")
	defer span.End()
	defer s.observe(ctx, span, "Audit", "catalog", time.Now(), &err)

	s.mu.RLock()
	defer s.mu.RUnlock()

	drifts := s.catalog.Audit()
	out := make([]ports.Drift, len(drifts))
	for i, d := range drifts {
		out[i] = ports.Drift{
			ArticleID:    d.Article.ID(),
			ArticleTitle: d.Article.Title(),
			Field:        d.Field,
			ListedUnder:  d.ListedUnder,
			References:   d.References,
		}
	}
	span.SetAttributes(attribute.Int("drift.count", len(out)))
	return out, nil
}

// observe records the outcome of one service call: duration, rejection
// counter, span status and an error log. It runs deferred, so errp points
// at the method's named error result.
func (s *PublishingService) observe(ctx context.Context, span trace.Span, op, entity string, start time.Time, errp *error, attrs ...slog.Attr) {
	result := "ok"
	if err := *errp; err != nil {
		result = "error"
		kind := errorKind(err)

		span.RecordError(err)
		span.SetStatus(codes.Error, kind)
		s.metrics.Rejections.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrEntity.String(entity),
			telemetry.AttrErrorKind.String(kind),
		))

		level := slog.LevelWarn
		if kind == "internal" {
			level = slog.LevelError
		}
		logAttrs := append([]slog.Attr{slog.String("operation", op)}, attrs...)
		logAttrs = append(logAttrs, slog.Any("error", err))
		s.logger.LogAttrs(ctx, level, "operation failed", logAttrs...)
	}

	s.metrics.OperationDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
		telemetry.AttrOperation.String(op),
		telemetry.AttrResult.String(result),
	))
}

// errorKind classifies err for metrics and log levels.
func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrImmutableField):
		return "immutable"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	default:
		return "internal"
	}
}
