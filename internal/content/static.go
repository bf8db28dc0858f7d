package content

import (
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/templui/folio/internal/model"
)

// ExternalPost describes a post published on another site.
type ExternalPost struct {
	Title       string
	Excerpt     string
	Date        string
	ReadingTime string
	URL         string
	Tags        []string
}

var isoDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func (p ExternalPost) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.URL, validation.Required, is.URL),
		validation.Field(&p.Date, validation.Required, validation.Match(isoDate).Error("must be YYYY-MM-DD")),
	)
}

func (p ExternalPost) post() *model.Post {
	return (&model.Post{}).
		WithTitle(p.Title).
		WithExcerpt(p.Excerpt).
		WithDate(p.Date).
		WithReadingTime(p.ReadingTime).
		WithURL(p.URL).
		WithTags(append([]string{}, p.Tags...))
}

// StaticSource serves a fixed list of external posts. Records are always
// fully populated; projection does not apply to them.
type StaticSource struct {
	posts []ExternalPost
}

func NewStaticSource(posts []ExternalPost) *StaticSource {
	return &StaticSource{posts: posts}
}

func (s *StaticSource) Name() string {
	return "static"
}

// Validate checks every entry of the list.
func (s *StaticSource) Validate() error {
	for i := range s.posts {
		if err := s.posts[i].Validate(); err != nil {
			return fmt.Errorf("external post %d (%s): %w", i, s.posts[i].Title, err)
		}
	}
	return nil
}

func (s *StaticSource) Posts(model.Fields) ([]*model.Post, error) {
	posts := make([]*model.Post, 0, len(s.posts))
	for _, p := range s.posts {
		posts = append(posts, p.post())
	}
	return posts, nil
}
