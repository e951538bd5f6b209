package publishing

import (
	"github.com/google/uuid"

	"github.com/jsamuelsen11/bylines/internal/domain"
)

// Magazine publishes articles under a single category.
type Magazine struct {
	id       uuid.UUID
	name     string
	category string
	articles []*Article
	catalog  *Catalog
}

// MagazineChanges describes an update to a Magazine. A nil field means
// "leave unchanged".
type MagazineChanges struct {
	Name     *string
	Category *string
}

// ID returns the identifier assigned at creation.
func (m *Magazine) ID() uuid.UUID { return m.id }

// Name returns the magazine's current name.
func (m *Magazine) Name() string { return m.name }

// Category returns the magazine's current category.
func (m *Magazine) Category() string { return m.category }

func (m *Magazine) String() string { return m.name }

// SetName renames the magazine. The name must be 2-16 characters; on failure
// the current name is kept.
func (m *Magazine) SetName(name string) error {
	if msg := magazineNameRule(name); msg != "" {
		return domain.NewValidationError("name", msg)
	}
	m.name = name
	return nil
}

// SetCategory recategorizes the magazine. The category must be non-empty; on
// failure the current category is kept.
func (m *Magazine) SetCategory(category string) error {
	if msg := categoryRule(category); msg != "" {
		return domain.NewValidationError("category", msg)
	}
	m.category = category
	return nil
}

// Apply validates every supplied field and then applies all of them, or none
// if any is invalid.
func (m *Magazine) Apply(ch MagazineChanges) error {
	fields := make(map[string]string)
	if ch.Name != nil {
		if msg := magazineNameRule(*ch.Name); msg != "" {
			fields["name"] = msg
		}
	}
	if ch.Category != nil {
		if msg := categoryRule(*ch.Category); msg != "" {
			fields["category"] = msg
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}

	if ch.Name != nil {
		m.name = *ch.Name
	}
	if ch.Category != nil {
		m.category = *ch.Category
	}
	return nil
}

// Articles returns the magazine's articles in creation order. The slice is
// the magazine's own list; callers must not modify it.
func (m *Magazine) Articles() []*Article { return m.articles }

// Contributors returns the distinct authors currently named by the
// magazine's articles, in first-seen order.
func (m *Magazine) Contributors() []*Author {
	seen := make(map[*Author]bool, len(m.articles))
	authors := make([]*Author, 0, len(m.articles))
	for _, art := range m.articles {
		if !seen[art.author] {
			seen[art.author] = true
			authors = append(authors, art.author)
		}
	}
	return authors
}

// ArticleTitles returns the titles of the magazine's articles in creation
// order, or nil if it has none.
func (m *Magazine) ArticleTitles() []string {
	if len(m.articles) == 0 {
		return nil
	}

	titles := make([]string, len(m.articles))
	for i, art := range m.articles {
		titles[i] = art.title
	}
	return titles
}

// ContributingAuthors returns the authors with more than
// ContributingThreshold articles in this magazine, in first-seen order, or
// nil if nobody qualifies.
func (m *Magazine) ContributingAuthors() []*Author {
	counts := make(map[*Author]int)
	for _, art := range m.articles {
		counts[art.author]++
	}

	var prolific []*Author
	for _, a := range m.Contributors() {
		if counts[a] > ContributingThreshold {
			prolific = append(prolific, a)
		}
	}
	return prolific
}
