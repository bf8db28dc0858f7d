package content

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	goslug "github.com/goliatone/go-slug"

	"github.com/templui/folio/internal/model"
)

// Extensions a post file may have, in lookup order.
var postExtensions = []string{".mdx", ".md"}

// FileSource reads posts from a directory of Markdown/MDX files with YAML
// front-matter, one file per post.
type FileSource struct {
	dir string
}

func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

func (s *FileSource) Name() string {
	return "file:" + s.dir
}

func (s *FileSource) Dir() string {
	return s.dir
}

// Slugs lists the slug of every post file in the directory.
func (s *FileSource) Slugs() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fileSystemError(err, "list", s.dir)
	}

	slugs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if !isPostExtension(ext) {
			continue
		}
		slug := strings.TrimSuffix(entry.Name(), ext)
		if !goslug.IsValid(slug) {
			// Still served as is; the file name is the address.
			suggested, _ := goslug.Normalize(slug)
			slog.Warn("post file name is not a clean url slug", "slug", slug, "suggested", suggested)
		}
		slugs = append(slugs, slug)
	}
	return slugs, nil
}

func (s *FileSource) Posts(fields model.Fields) ([]*model.Post, error) {
	slugs, err := s.Slugs()
	if err != nil {
		return nil, err
	}

	posts := make([]*model.Post, 0, len(slugs))
	for _, slug := range slugs {
		post, err := s.Load(slug, fields)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// Load reads the post stored under slug and populates only the requested
// fields. Tags are empty rather than nil when the front-matter has none.
// Local posts never carry a url, whatever the front-matter says.
func (s *FileSource) Load(slug string, fields model.Fields) (*model.Post, error) {
	path, source, err := s.read(slug)
	if err != nil {
		return nil, err
	}

	doc, err := parseDocument(source)
	if err != nil {
		return nil, malformedFrontMatterError(err, path)
	}

	post := &model.Post{}
	if fields.Has(model.FieldSlug) {
		post.WithSlug(slug)
	}
	if fields.Has(model.FieldContent) {
		post.WithContent(doc.body)
	}
	if fields.Has(model.FieldReadingTime) {
		post.WithReadingTime(ReadingTime(doc.body))
	}

	textFields := []struct {
		field model.Field
		set   func(string) *model.Post
	}{
		{model.FieldTitle, post.WithTitle},
		{model.FieldDate, post.WithDate},
		{model.FieldExcerpt, post.WithExcerpt},
		{model.FieldAuthor, post.WithAuthor},
	}
	for _, tf := range textFields {
		if !fields.Has(tf.field) {
			continue
		}
		if v, ok := doc.text(tf.field.String()); ok {
			tf.set(v)
		}
	}

	imageFields := []struct {
		field model.Field
		set   func(string) *model.Post
	}{
		{model.FieldCoverImage, post.WithCoverImage},
		{model.FieldOGImage, post.WithOGImage},
	}
	for _, imf := range imageFields {
		if !fields.Has(imf.field) {
			continue
		}
		if v, ok := doc.image(imf.field.String()); ok {
			imf.set(v)
		}
	}

	// Tags stay non-nil even when not requested so templates can range
	// over them; they only count as populated when asked for.
	if fields.Has(model.FieldTags) {
		tags, _ := doc.tags()
		post.WithTags(tags)
	} else {
		post.Tags = []string{}
	}

	return post, nil
}

func (s *FileSource) read(slug string) (string, []byte, error) {
	if slug == "" || strings.ContainsAny(slug, `/\`) || slug == "." || slug == ".." {
		return "", nil, notFoundError(fs.ErrNotExist, slug)
	}

	for _, ext := range postExtensions {
		path := filepath.Join(s.dir, slug+ext)
		source, err := os.ReadFile(path)
		if err == nil {
			return path, source, nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return path, nil, fileSystemError(err, "read", path)
	}

	slog.Debug("post file not found", "slug", slug, "dir", s.dir)
	return "", nil, notFoundError(fs.ErrNotExist, slug)
}

func isPostExtension(ext string) bool {
	for _, e := range postExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
