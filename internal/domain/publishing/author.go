package publishing

import (
	"github.com/google/uuid"

	"github.com/jsamuelsen11/bylines/internal/domain"
)

// Author writes articles for any number of magazines.
type Author struct {
	id       uuid.UUID
	name     string
	articles []*Article
	catalog  *Catalog
}

// AuthorChanges describes an update to an Author. A nil field means
// "leave unchanged".
type AuthorChanges struct {
	Name *string
}

// ID returns the identifier assigned at creation.
func (a *Author) ID() uuid.UUID { return a.id }

// Name returns the author's name. It cannot change after creation.
func (a *Author) Name() string { return a.name }

func (a *Author) String() string { return a.name }

// Apply rejects every change: an author has no mutable fields.
func (a *Author) Apply(ch AuthorChanges) error {
	if ch.Name != nil {
		return &domain.ImmutableFieldError{Entity: "author", Field: "name"}
	}
	return nil
}

// AddArticle publishes a new article by a in magazine. See Catalog.NewArticle.
func (a *Author) AddArticle(magazine *Magazine, title string) (*Article, error) {
	if a.catalog == nil {
		return nil, domain.NewValidationError("author", domain.MsgForeign)
	}
	return a.catalog.NewArticle(a, magazine, title)
}

// Articles returns the author's articles in creation order. The slice is the
// author's own list; callers must not modify it.
func (a *Author) Articles() []*Article { return a.articles }

// Magazines returns the distinct magazines the author's articles currently
// reference, in first-seen order.
func (a *Author) Magazines() []*Magazine {
	seen := make(map[*Magazine]bool, len(a.articles))
	mags := make([]*Magazine, 0, len(a.articles))
	for _, art := range a.articles {
		if !seen[art.magazine] {
			seen[art.magazine] = true
			mags = append(mags, art.magazine)
		}
	}
	return mags
}

// TopicAreas returns the distinct categories of the author's magazines in
// first-seen order, or nil if the author has no articles.
func (a *Author) TopicAreas() []string {
	if len(a.articles) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	var topics []string
	for _, m := range a.Magazines() {
		if !seen[m.category] {
			seen[m.category] = true
			topics = append(topics, m.category)
		}
	}
	return topics
}
