package publishing

import (
	"github.com/google/uuid"

	"github.com/jsamuelsen11/bylines/internal/domain"
)

// Article joins one author and one magazine under a title.
type Article struct {
	id       uuid.UUID
	title    string
	author   *Author
	magazine *Magazine
	catalog  *Catalog
}

// ArticleChanges describes an update to an Article. A nil field means
// "leave unchanged". Title is listed so callers get an explicit
// ImmutableFieldError instead of a silent no-op.
type ArticleChanges struct {
	Title    *string
	Author   *Author
	Magazine *Magazine
}

// ID returns the identifier assigned at creation.
func (art *Article) ID() uuid.UUID { return art.id }

// Title returns the article's title. It cannot change after creation.
func (art *Article) Title() string { return art.title }

// Author returns the article's current author.
func (art *Article) Author() *Author { return art.author }

// Magazine returns the article's current magazine.
func (art *Article) Magazine() *Magazine { return art.magazine }

func (art *Article) String() string { return art.title }

// SetAuthor points the article at a different author of the same catalog.
// Neither author's article list is updated.
func (art *Article) SetAuthor(a *Author) error {
	if msg := art.catalog.authorRefRule(a); msg != "" {
		return domain.NewValidationError("author", msg)
	}
	art.author = a
	return nil
}

// SetMagazine points the article at a different magazine of the same
// catalog. Neither magazine's article list is updated.
func (art *Article) SetMagazine(m *Magazine) error {
	if msg := art.catalog.magazineRefRule(m); msg != "" {
		return domain.NewValidationError("magazine", msg)
	}
	art.magazine = m
	return nil
}

// Apply reassigns author and/or magazine with the same checks as SetAuthor
// and SetMagazine, all or nothing. Any Title change fails with
// *domain.ImmutableFieldError before anything is applied.
func (art *Article) Apply(ch ArticleChanges) error {
	if ch.Title != nil {
		return &domain.ImmutableFieldError{Entity: "article", Field: "title"}
	}

	fields := make(map[string]string)
	if ch.Author != nil {
		if msg := art.catalog.authorRefRule(ch.Author); msg != "" {
			fields["author"] = msg
		}
	}
	if ch.Magazine != nil {
		if msg := art.catalog.magazineRefRule(ch.Magazine); msg != "" {
			fields["magazine"] = msg
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}

	if ch.Author != nil {
		art.author = ch.Author
	}
	if ch.Magazine != nil {
		art.magazine = ch.Magazine
	}
	return nil
}
