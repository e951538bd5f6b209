package app

import (
	"github.com/jsamuelsen11/bylines/internal/domain/publishing"
	"github.com/jsamuelsen11/bylines/internal/ports"
)

// Snapshots copy derived query results out of the catalog so they can be
// read after the service lock is released. A nil query result stays nil.

func authorProfile(a *publishing.Author) ports.AuthorProfile {
	arts := a.Articles()
	titles := make([]string, len(arts))
	for i, art := range arts {
		titles[i] = art.Title()
	}

	mags := a.Magazines()
	magNames := make([]string, len(mags))
	for i, m := range mags {
		magNames[i] = m.Name()
	}

	var topics []string
	if t := a.TopicAreas(); t != nil {
		topics = append([]string(nil), t...)
	}

	return ports.AuthorProfile{
		ID:            a.ID(),
		Name:          a.Name(),
		ArticleTitles: titles,
		Magazines:     magNames,
		TopicAreas:    topics,
	}
}

func magazineProfile(m *publishing.Magazine) ports.MagazineProfile {
	return ports.MagazineProfile{
		ID:                  m.ID(),
		Name:                m.Name(),
		Category:            m.Category(),
		ArticleCount:        len(m.Articles()),
		ArticleTitles:       m.ArticleTitles(),
		Contributors:        authorNames(m.Contributors()),
		ContributingAuthors: authorNames(m.ContributingAuthors()),
	}
}

func authorNames(authors []*publishing.Author) []string {
	if authors == nil {
		return nil
	}
	names := make([]string, len(authors))
	for i, a := range authors {
		names[i] = a.Name()
	}
	return names
}
