// Package publishing models the many-to-many relationship between authors and
// magazines, joined by articles.
//
// # Ownership
//
// A Catalog owns three ordered registries (authors, magazines, articles) and
// is the only way to create entities. Authors and magazines keep non-owning
// back-references to their articles; an article keeps non-owning references
// to its author and magazine. Nothing is ever removed.
//
// # Creating articles
//
// Catalog.NewArticle (or Author.AddArticle, which delegates to it) validates
// every input before touching any collection, then appends the article to the
// author's list, the magazine's list and the catalog registry in one step.
// A failed call leaves all three collections untouched.
//
// # Reassignment
//
// Article.SetAuthor and Article.SetMagazine change the article's references
// but do not move it between article lists. Derived queries read the current
// references, so after a reassignment an article can be listed under one
// author while naming another. Catalog.Audit reports every such mismatch.
//
// # Thread Safety
//
// Nothing in this package is safe for concurrent use. Callers embedding a
// Catalog in a concurrent host must serialize all access to it and to the
// entities it created (see app.PublishingService).
package publishing
