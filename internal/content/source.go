package content

import "github.com/templui/folio/internal/model"

// Source produces post records for the catalog.
type Source interface {
	// Name identifies the source in logs.
	Name() string
	// Posts returns every post the source holds, projected to fields where
	// the source supports projection.
	Posts(fields model.Fields) ([]*model.Post, error)
}

// Loader is a Source that can also resolve a single post by slug.
type Loader interface {
	Source
	Load(slug string, fields model.Fields) (*model.Post, error)
}
