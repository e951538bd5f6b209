package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/bylines/internal/adapters/report"
	"github.com/jsamuelsen11/bylines/internal/domain"
	"github.com/jsamuelsen11/bylines/internal/platform/logging"
	"github.com/jsamuelsen11/bylines/internal/ports"
)

type byline struct {
	author   string
	magazine string
	title    string
}

var (
	demoAuthors   = []string{"Hafifa Hussein", "Ayub Adan"}
	demoMagazines = [][2]string{{"TechLife", "Technology"}, {"HealthNow", "Health"}}
	demoBylines   = []byline{
		{"Hafifa Hussein", "TechLife", "AI in 2025"},
		{"Hafifa Hussein", "HealthNow", "Wellness Tips"},
		{"Hafifa Hussein", "TechLife", "Python Rocks"},
		{"Ayub Adan", "HealthNow", "Eating Healthy"},
	}
)

// runScenario seeds the demonstration catalog through svc and renders the
// first author, every magazine, the top publisher and the audit.
func runScenario(ctx context.Context, svc ports.PublishingService, r *report.Renderer) error {
	logger := logging.FromContext(ctx)

	authors := make(map[string]uuid.UUID, len(demoAuthors))
	for _, name := range demoAuthors {
		id, err := svc.RegisterAuthor(ctx, name)
		if err != nil {
			return fmt.Errorf("registering author %q: %w", name, err)
		}
		authors[name] = id
	}

	magazines := make(map[string]uuid.UUID, len(demoMagazines))
	for _, m := range demoMagazines {
		id, err := svc.RegisterMagazine(ctx, m[0], m[1])
		if err != nil {
			return fmt.Errorf("registering magazine %q: %w", m[0], err)
		}
		magazines[m[0]] = id
	}

	for _, b := range demoBylines {
		if _, err := svc.PublishArticle(ctx, authors[b.author], magazines[b.magazine], b.title); err != nil {
			return fmt.Errorf("publishing %q: %w", b.title, err)
		}
	}
	logger.InfoContext(ctx, "catalog seeded",
		slog.Int("authors", len(authors)),
		slog.Int("magazines", len(magazines)),
		slog.Int("articles", len(demoBylines)),
	)

	profile, err := svc.AuthorProfile(ctx, authors[demoAuthors[0]])
	if err != nil {
		return fmt.Errorf("loading author profile: %w", err)
	}
	if err := r.Author(profile); err != nil {
		return err
	}

	mags, err := svc.MagazineProfiles(ctx)
	if err != nil {
		return fmt.Errorf("loading magazine profiles: %w", err)
	}
	for i := range mags {
		if err := r.Magazine(&mags[i]); err != nil {
			return err
		}
	}

	top, err := svc.TopPublisher(ctx)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("finding top publisher: %w", err)
	}
	if err := r.TopPublisher(top); err != nil {
		return err
	}

	drifts, err := svc.Audit(ctx)
	if err != nil {
		return fmt.Errorf("auditing catalog: %w", err)
	}
	return r.Audit(drifts)
}
