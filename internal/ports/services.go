package ports

import (
	"context"

	"github.com/google/uuid"
)

// PublishingService defines the service port for the author/magazine/article
// catalog. Implemented by the application layer; called by the entry point.
// Entities are addressed by ID and returned as value snapshots so callers
// never hold live article lists.
type PublishingService interface {
	// RegisterAuthor creates an author and returns its ID.
	// Returns domain.ErrValidation if the name is empty.
	RegisterAuthor(ctx context.Context, name string) (uuid.UUID, error)

	// RegisterMagazine creates a magazine and returns its ID.
	// Returns domain.ErrValidation if the name is not 2-16 characters or
	// the category is empty.
	RegisterMagazine(ctx context.Context, name, category string) (uuid.UUID, error)

	// PublishArticle links an author and a magazine through a new article.
	// Returns domain.ErrNotFound if either ID is unknown, or
	// domain.ErrValidation if the title is not 5-50 characters.
	PublishArticle(ctx context.Context, authorID, magazineID uuid.UUID, title string) (uuid.UUID, error)

	// UpdateAuthor applies the update to an author.
	// Returns domain.ErrImmutableField for any name change.
	UpdateAuthor(ctx context.Context, id uuid.UUID, update AuthorUpdate) error

	// UpdateMagazine renames and/or recategorizes a magazine, all or nothing.
	// Returns domain.ErrValidation if any supplied field is invalid.
	UpdateMagazine(ctx context.Context, id uuid.UUID, update MagazineUpdate) error

	// UpdateArticle reassigns an article's author and/or magazine. The
	// article stays in the lists it was created in; see Audit.
	// Returns domain.ErrImmutableField for any title change.
	UpdateArticle(ctx context.Context, id uuid.UUID, update ArticleUpdate) error

	// AuthorProfile returns the author's derived view.
	// Returns domain.ErrNotFound if the author does not exist.
	AuthorProfile(ctx context.Context, id uuid.UUID) (*AuthorProfile, error)

	// MagazineProfile returns the magazine's derived view.
	// Returns domain.ErrNotFound if the magazine does not exist.
	MagazineProfile(ctx context.Context, id uuid.UUID) (*MagazineProfile, error)

	// MagazineProfiles returns every magazine's derived view in
	// registration order.
	MagazineProfiles(ctx context.Context) ([]MagazineProfile, error)

	// TopPublisher returns the magazine with the most articles, earliest
	// registered on ties. Returns domain.ErrNotFound if no magazine exists.
	TopPublisher(ctx context.Context) (*MagazineProfile, error)

	// Audit lists the articles whose author or magazine changed after
	// creation and therefore disagree with the list that holds them.
	Audit(ctx context.Context) ([]Drift, error)
}

// AuthorUpdate describes a change to an author. Nil fields are left as is.
type AuthorUpdate struct {
	Name *string
}

// MagazineUpdate describes a change to a magazine. Nil fields are left as is.
type MagazineUpdate struct {
	Name     *string
	Category *string
}

// ArticleUpdate describes a change to an article. Nil fields are left as is.
type ArticleUpdate struct {
	Title      *string
	AuthorID   *uuid.UUID
	MagazineID *uuid.UUID
}

// AuthorProfile is a snapshot of an author and its derived queries.
// TopicAreas is nil when the author has no articles.
type AuthorProfile struct {
	ID            uuid.UUID
	Name          string
	ArticleTitles []string
	Magazines     []string
	TopicAreas    []string
}

// MagazineProfile is a snapshot of a magazine and its derived queries.
// ArticleTitles and ContributingAuthors are nil when empty.
type MagazineProfile struct {
	ID                  uuid.UUID
	Name                string
	Category            string
	ArticleCount        int
	ArticleTitles       []string
	Contributors        []string
	ContributingAuthors []string
}

// Drift is a snapshot of one article listed under an entity it no longer
// references.
type Drift struct {
	ArticleID    uuid.UUID
	ArticleTitle string
	Field        string
	ListedUnder  uuid.UUID
	References   uuid.UUID
}
