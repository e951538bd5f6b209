package publishing

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/bylines/internal/domain"
)

// Catalog is the registry context for one author/magazine/article graph.
// The zero value is not usable; create one with NewCatalog.
type Catalog struct {
	authors   []*Author
	magazines []*Magazine
	articles  []*Article

	authorsByID   map[uuid.UUID]*Author
	magazinesByID map[uuid.UUID]*Magazine
	articlesByID  map[uuid.UUID]*Article
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		authorsByID:   make(map[uuid.UUID]*Author),
		magazinesByID: make(map[uuid.UUID]*Magazine),
		articlesByID:  make(map[uuid.UUID]*Article),
	}
}

// NewAuthor validates name and registers a new author with no articles.
func (c *Catalog) NewAuthor(name string) (*Author, error) {
	if msg := authorNameRule(name); msg != "" {
		return nil, domain.NewValidationError("name", msg)
	}

	a := &Author{
		id:      uuid.New(),
		name:    name,
		catalog: c,
	}
	c.authors = append(c.authors, a)
	c.authorsByID[a.id] = a
	return a, nil
}

// NewMagazine validates name and category with the same rules SetName and
// SetCategory apply, then registers the magazine. A magazine with no
// articles still counts towards TopPublisher.
func (c *Catalog) NewMagazine(name, category string) (*Magazine, error) {
	fields := make(map[string]string)
	if msg := magazineNameRule(name); msg != "" {
		fields["name"] = msg
	}
	if msg := categoryRule(category); msg != "" {
		fields["category"] = msg
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	m := &Magazine{
		id:       uuid.New(),
		name:     name,
		category: category,
		catalog:  c,
	}
	c.magazines = append(c.magazines, m)
	c.magazinesByID[m.id] = m
	return m, nil
}

// NewArticle links author and magazine through a new article titled title.
//
// All inputs are checked first; on success the article is appended to
// author.Articles(), magazine.Articles() and c.Articles() together.
func (c *Catalog) NewArticle(author *Author, magazine *Magazine, title string) (*Article, error) {
	fields := make(map[string]string)
	if msg := c.authorRefRule(author); msg != "" {
		fields["author"] = msg
	}
	if msg := c.magazineRefRule(magazine); msg != "" {
		fields["magazine"] = msg
	}
	if msg := titleRule(title); msg != "" {
		fields["title"] = msg
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	art := &Article{
		id:       uuid.New(),
		title:    title,
		author:   author,
		magazine: magazine,
		catalog:  c,
	}
	author.articles = append(author.articles, art)
	magazine.articles = append(magazine.articles, art)
	c.articles = append(c.articles, art)
	c.articlesByID[art.id] = art
	return art, nil
}

// Authors returns every author in creation order.
func (c *Catalog) Authors() []*Author { return c.authors }

// Magazines returns every magazine in creation order.
func (c *Catalog) Magazines() []*Magazine { return c.magazines }

// Articles returns every article in creation order.
func (c *Catalog) Articles() []*Article { return c.articles }

// Author returns the author with the given ID, or domain.ErrNotFound.
func (c *Catalog) Author(id uuid.UUID) (*Author, error) {
	a, ok := c.authorsByID[id]
	if !ok {
		return nil, fmt.Errorf("author %s: %w", id, domain.ErrNotFound)
	}
	return a, nil
}

// Magazine returns the magazine with the given ID, or domain.ErrNotFound.
func (c *Catalog) Magazine(id uuid.UUID) (*Magazine, error) {
	m, ok := c.magazinesByID[id]
	if !ok {
		return nil, fmt.Errorf("magazine %s: %w", id, domain.ErrNotFound)
	}
	return m, nil
}

// Article returns the article with the given ID, or domain.ErrNotFound.
func (c *Catalog) Article(id uuid.UUID) (*Article, error) {
	art, ok := c.articlesByID[id]
	if !ok {
		return nil, fmt.Errorf("article %s: %w", id, domain.ErrNotFound)
	}
	return art, nil
}

// TopPublisher returns the registered magazine with the most articles.
// On a tie the magazine registered first wins. The bool is false when no
// magazine has been registered.
func (c *Catalog) TopPublisher() (*Magazine, bool) {
	if len(c.magazines) == 0 {
		return nil, false
	}

	top := c.magazines[0]
	for _, m := range c.magazines[1:] {
		if len(m.articles) > len(top.articles) {
			top = m
		}
	}
	return top, true
}

func (c *Catalog) authorRefRule(a *Author) string {
	switch {
	case a == nil:
		return domain.MsgNil
	case a.catalog != c:
		return domain.MsgForeign
	}
	return ""
}

func (c *Catalog) magazineRefRule(m *Magazine) string {
	switch {
	case m == nil:
		return domain.MsgNil
	case m.catalog != c:
		return domain.MsgForeign
	}
	return ""
}
