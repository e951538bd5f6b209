package report

import "github.com/jsamuelsen11/bylines/internal/ports"

// Nil slices stay nil so that absent results encode as JSON null while empty
// results encode as [].

// AuthorDocument is the JSON form of an author profile.
type AuthorDocument struct {
	Kind          string   `json:"kind"`
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	ArticleTitles []string `json:"article_titles"`
	Magazines     []string `json:"magazines"`
	TopicAreas    []string `json:"topic_areas"`
}

// MagazineDocument is the JSON form of a magazine profile.
type MagazineDocument struct {
	Kind                string   `json:"kind"`
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Category            string   `json:"category"`
	ArticleCount        int      `json:"article_count"`
	ArticleTitles       []string `json:"article_titles"`
	Contributors        []string `json:"contributors"`
	ContributingAuthors []string `json:"contributing_authors"`
}

// TopPublisherDocument names the top publisher, with a null magazine when the
// catalog has none.
type TopPublisherDocument struct {
	Kind     string            `json:"kind"`
	Magazine *MagazineDocument `json:"magazine"`
}

// DriftDocument is the JSON form of one audit finding.
type DriftDocument struct {
	ArticleID    string `json:"article_id"`
	ArticleTitle string `json:"article_title"`
	Field        string `json:"field"`
	ListedUnder  string `json:"listed_under"`
	References   string `json:"references"`
}

// AuditDocument wraps the audit findings. Drift is empty, never null.
type AuditDocument struct {
	Kind  string          `json:"kind"`
	Count int             `json:"count"`
	Drift []DriftDocument `json:"drift"`
}

// ToAuthorDocument converts an author profile to its JSON document.
func ToAuthorDocument(p *ports.AuthorProfile) AuthorDocument {
	return AuthorDocument{
		Kind:          "author",
		ID:            p.ID.String(),
		Name:          p.Name,
		ArticleTitles: p.ArticleTitles,
		Magazines:     p.Magazines,
		TopicAreas:    p.TopicAreas,
	}
}

// ToMagazineDocument converts a magazine profile to its JSON document.
func ToMagazineDocument(p *ports.MagazineProfile) MagazineDocument {
	return MagazineDocument{
		Kind:                "magazine",
		ID:                  p.ID.String(),
		Name:                p.Name,
		Category:            p.Category,
		ArticleCount:        p.ArticleCount,
		ArticleTitles:       p.ArticleTitles,
		Contributors:        p.Contributors,
		ContributingAuthors: p.ContributingAuthors,
	}
}

// ToAuditDocument converts audit findings to their JSON document.
func ToAuditDocument(drifts []ports.Drift) AuditDocument {
	items := make([]DriftDocument, len(drifts))
	for i, d := range drifts {
		items[i] = DriftDocument{
			ArticleID:    d.ArticleID.String(),
			ArticleTitle: d.ArticleTitle,
			Field:        d.Field,
			ListedUnder:  d.ListedUnder.String(),
			References:   d.References.String(),
		}
	}
	return AuditDocument{Kind: "audit", Count: len(items), Drift: items}
}
