package content

import (
	"fmt"
	"io/fs"
	"log/slog"
	"sort"

	"github.com/templui/folio/internal/model"
)

// Catalog merges posts from several sources into one date-ordered list.
type Catalog struct {
	sources []Source
}

// NewCatalog returns a catalog over sources. Sources are concatenated in the
// given order before sorting, so earlier sources win date ties.
func NewCatalog(sources ...Source) *Catalog {
	return &Catalog{sources: sources}
}

// Posts loads every post from every source and sorts them by date, newest
// first. Dates are compared as strings, so they must be zero-padded ISO
// dates to order correctly.
func (c *Catalog) Posts(fields model.Fields) ([]*model.Post, error) {
	var posts []*model.Post
	for _, src := range c.sources {
		sourcePosts, err := src.Posts(fields)
		if err != nil {
			return nil, fmt.Errorf("load posts from %s: %w", src.Name(), err)
		}
		slog.Debug("loaded posts", "source", src.Name(), "count", len(sourcePosts))
		posts = append(posts, sourcePosts...)
	}

	SortByDate(posts)
	return posts, nil
}

// Post loads one post by slug from the first source able to resolve slugs.
func (c *Catalog) Post(slug string, fields model.Fields) (*model.Post, error) {
	for _, src := range c.sources {
		loader, ok := src.(Loader)
		if !ok {
			continue
		}
		post, err := loader.Load(slug, fields)
		if err == nil {
			return post, nil
		}
		if !IsNotFound(err) {
			return nil, err
		}
	}
	return nil, notFoundError(fs.ErrNotExist, slug)
}

// SortByDate orders posts by their date string, descending. Equal dates keep
// their relative order.
func SortByDate(posts []*model.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date > posts[j].Date
	})
}
