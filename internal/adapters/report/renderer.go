// Package report renders catalog profiles for people and for machines. Text
// output prints absent results as None; JSON output writes one document per
// line and encodes absent results as null.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jsamuelsen11/bylines/internal/ports"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

const none = "None"

// Renderer writes profiles to an io.Writer in a fixed format.
type Renderer struct {
	w      io.Writer
	format string
}

// NewRenderer creates a renderer for the given format.
func NewRenderer(w io.Writer, format string) (*Renderer, error) {
	switch format {
	case FormatText, FormatJSON:
		return &Renderer{w: w, format: format}, nil
	default:
		return nil, fmt.Errorf("unsupported report format %q", format)
	}
}

// Author writes an author profile.
func (r *Renderer) Author(p *ports.AuthorProfile) error {
	if r.format == FormatJSON {
		return r.encode(ToAuthorDocument(p))
	}
	return r.lines(
		"Author: "+p.Name,
		"  articles: "+list(p.ArticleTitles),
		"  magazines: "+list(p.Magazines),
		"  topic areas: "+list(p.TopicAreas),
	)
}

// Magazine writes a magazine profile.
func (r *Renderer) Magazine(p *ports.MagazineProfile) error {
	if r.format == FormatJSON {
		return r.encode(ToMagazineDocument(p))
	}
	return r.lines(
		fmt.Sprintf("Magazine: %s (%s)", p.Name, p.Category),
		"  articles: "+list(p.ArticleTitles),
		"  contributors: "+list(p.Contributors),
		"  contributing authors: "+list(p.ContributingAuthors),
	)
}

// TopPublisher writes the top publisher's name. A nil profile means the
// catalog holds no magazines.
func (r *Renderer) TopPublisher(p *ports.MagazineProfile) error {
	if r.format == FormatJSON {
		doc := TopPublisherDocument{Kind: "top_publisher"}
		if p != nil {
			m := ToMagazineDocument(p)
			doc.Magazine = &m
		}
		return r.encode(doc)
	}
	name := none
	if p != nil {
		name = fmt.Sprintf("%s (%d articles)", p.Name, p.ArticleCount)
	}
	return r.lines("Top publisher: " + name)
}

// Audit writes the audit findings.
func (r *Renderer) Audit(drifts []ports.Drift) error {
	if r.format == FormatJSON {
		return r.encode(ToAuditDocument(drifts))
	}
	if len(drifts) == 0 {
		return r.lines("Drift: " + none)
	}
	out := make([]string, 0, len(drifts)+1)
	out = append(out, fmt.Sprintf("Drift: %d stale list entries", len(drifts)))
	for _, d := range drifts {
		out = append(out, fmt.Sprintf("  %q: %s is %s, listed under %s",
			d.ArticleTitle, d.Field, d.References, d.ListedUnder))
	}
	return r.lines(out...)
}

func (r *Renderer) encode(v any) error {
	if err := json.NewEncoder(r.w).Encode(v); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

func (r *Renderer) lines(lines ...string) error {
	if _, err := io.WriteString(r.w, strings.Join(lines, "\n")+"\n"); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// list joins values with commas, printing None for nil and [] for empty.
func list(values []string) string {
	switch {
	case values == nil:
		return none
	case len(values) == 0:
		return "[]"
	default:
		return strings.Join(values, ", ")
	}
}
