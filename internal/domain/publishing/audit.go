package publishing

import "github.com/google/uuid"

// Drift records an article that sits in one entity's article list while its
// current reference names a different entity. It only arises after
// Article.SetAuthor, Article.SetMagazine or Article.Apply.
type Drift struct {
	Article *Article
	// Field is "author" or "magazine".
	Field string
	// ListedUnder is the entity whose article list holds the article.
	ListedUnder uuid.UUID
	// References is the entity the article currently points at.
	References uuid.UUID
}

// Audit scans every author and magazine list and reports the articles whose
// current references disagree with the list they were registered in. Author
// drifts come first, then magazine drifts, each in registry order.
func (c *Catalog) Audit() []Drift {
	var drifts []Drift
	for _, a := range c.authors {
		for _, art := range a.articles {
			if art.author != a {
				drifts = append(drifts, Drift{
					Article:     art,
					Field:       "author",
					ListedUnder: a.id,
					References:  art.author.id,
				})
			}
		}
	}
	for _, m := range c.magazines {
		for _, art := range m.articles {
			if art.magazine != m {
				drifts = append(drifts, Drift{
					Article:     art,
					Field:       "magazine",
					ListedUnder: m.id,
					References:  art.magazine.id,
				})
			}
		}
	}
	return drifts
}
