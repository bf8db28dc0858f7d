package model

import (
	"net/url"
	"strings"
)

// Field names a single optional attribute of a Post.
type Field uint16

const (
	FieldSlug Field = 1 << iota
	FieldTitle
	FieldDate
	FieldExcerpt
	FieldTags
	FieldReadingTime
	FieldContent
	FieldAuthor
	FieldCoverImage
	FieldOGImage
	FieldURL
)

var fieldNames = []struct {
	field Field
	name  string
}{
	{FieldSlug, "slug"},
	{FieldTitle, "title"},
	{FieldDate, "date"},
	{FieldExcerpt, "excerpt"},
	{FieldTags, "tags"},
	{FieldReadingTime, "readingTime"},
	{FieldContent, "content"},
	{FieldAuthor, "author"},
	{FieldCoverImage, "coverImage"},
	{FieldOGImage, "ogImage"},
	{FieldURL, "url"},
}

// String returns the front-matter key of the field.
func (f Field) String() string {
	for _, fn := range fieldNames {
		if fn.field == f {
			return fn.name
		}
	}
	return "unknown"
}

// Fields is a set of Field flags.
type Fields uint16

// NewFields builds a set from the given fields.
func NewFields(fields ...Field) Fields {
	var s Fields
	for _, f := range fields {
		s |= Fields(f)
	}
	return s
}

// AllFields selects every field a local post can carry.
var AllFields = NewFields(
	FieldSlug, FieldTitle, FieldDate, FieldExcerpt, FieldTags, FieldReadingTime,
	FieldContent, FieldAuthor, FieldCoverImage, FieldOGImage,
)

// Common projections used by pages and feeds.
var (
	ListingFields = NewFields(FieldTitle, FieldDate, FieldSlug, FieldExcerpt, FieldReadingTime, FieldTags, FieldURL)
	DetailFields  = NewFields(FieldTitle, FieldDate, FieldSlug, FieldAuthor, FieldContent, FieldOGImage, FieldCoverImage, FieldTags, FieldReadingTime)
	FeedFields    = NewFields(FieldTitle, FieldDate, FieldSlug, FieldExcerpt, FieldURL)
)

func (s Fields) Has(f Field) bool {
	return s&Fields(f) != 0
}

func (s Fields) With(f Field) Fields {
	return s | Fields(f)
}

// Names lists the set's field names in declaration order.
func (s Fields) Names() []string {
	names := []string{}
	for _, fn := range fieldNames {
		if s.Has(fn.field) {
			names = append(names, fn.name)
		}
	}
	return names
}

// ParseFields maps front-matter key names to a set. Unknown names are returned
// separately so callers can report typos instead of silently dropping them.
func ParseFields(names ...string) (Fields, []string) {
	var s Fields
	var unknown []string
	for _, name := range names {
		found := false
		for _, fn := range fieldNames {
			if strings.EqualFold(fn.name, name) {
				s |= Fields(fn.field)
				found = true
				break
			}
		}
		if !found {
			unknown = append(unknown, name)
		}
	}
	return s, unknown
}

// Post is a blog post record. Only the fields recorded as present were
// populated by whoever built it.
type Post struct {
	Slug        string
	Title       string
	Date        string
	Excerpt     string
	Tags        []string
	ReadingTime string
	Content     string
	Author      string
	CoverImage  string
	OGImage     string
	URL         string

	present Fields
}

func (p *Post) Has(f Field) bool {
	return p.present.Has(f)
}

// Fields returns the set of populated fields.
func (p *Post) Fields() Fields {
	return p.present
}

// Keys returns the names of the populated fields.
func (p *Post) Keys() []string {
	return p.present.Names()
}

// IsExternal reports whether the post is hosted outside the content store.
func (p *Post) IsExternal() bool {
	return p.URL != ""
}

// Href is the site-relative or absolute address of the post.
func (p *Post) Href() string {
	if p.IsExternal() {
		return p.URL
	}
	return "/posts/" + p.Slug
}

// TagPath is the site path of the listing for tag.
func TagPath(tag string) string {
	return "/posts/tag/" + url.PathEscape(tag)
}

// Map exposes the populated fields keyed by front-matter name.
func (p *Post) Map() map[string]any {
	m := make(map[string]any)
	for _, fn := range fieldNames {
		if !p.Has(fn.field) {
			continue
		}
		switch fn.field {
		case FieldSlug:
			m[fn.name] = p.Slug
		case FieldTitle:
			m[fn.name] = p.Title
		case FieldDate:
			m[fn.name] = p.Date
		case FieldExcerpt:
			m[fn.name] = p.Excerpt
		case FieldTags:
			m[fn.name] = p.Tags
		case FieldReadingTime:
			m[fn.name] = p.ReadingTime
		case FieldContent:
			m[fn.name] = p.Content
		case FieldAuthor:
			m[fn.name] = p.Author
		case FieldCoverImage:
			m[fn.name] = p.CoverImage
		case FieldOGImage:
			m[fn.name] = p.OGImage
		case FieldURL:
			m[fn.name] = p.URL
		}
	}
	return m
}

func (p *Post) mark(f Field) *Post {
	p.present |= Fields(f)
	return p
}

func (p *Post) WithSlug(v string) *Post { p.Slug = v; return p.mark(FieldSlug) }
func (p *Post) WithTitle(v string) *Post { p.Title = v; return p.mark(FieldTitle) }
func (p *Post) WithDate(v string) *Post { p.Date = v; return p.mark(FieldDate) }
func (p *Post) WithExcerpt(v string) *Post { p.Excerpt = v; return p.mark(FieldExcerpt) }
func (p *Post) WithReadingTime(v string) *Post { p.ReadingTime = v; return p.mark(FieldReadingTime) }
func (p *Post) WithContent(v string) *Post { p.Content = v; return p.mark(FieldContent) }
func (p *Post) WithAuthor(v string) *Post { p.Author = v; return p.mark(FieldAuthor) }
func (p *Post) WithCoverImage(v string) *Post { p.CoverImage = v; return p.mark(FieldCoverImage) }
func (p *Post) WithOGImage(v string) *Post { p.OGImage = v; return p.mark(FieldOGImage) }
func (p *Post) WithURL(v string) *Post { p.URL = v; return p.mark(FieldURL) }

// WithTags sets the tags; nil becomes an empty slice.
func (p *Post) WithTags(v []string) *Post {
	if v == nil {
		v = []string{}
	}
	p.Tags = v
	return p.mark(FieldTags)
}

// HasTag reports whether the post carries tag, ignoring case.
func (p *Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// RenderedPost is a post together with its body converted to HTML.
type RenderedPost struct {
	Post *Post
	HTML string
}
