package service

import (
	"fmt"
	"strings"

	"github.com/templui/folio/internal/content"
	"github.com/templui/folio/internal/markdown"
	"github.com/templui/folio/internal/model"
)

type BlogService struct {
	parser  *markdown.Parser
	catalog *content.Catalog
}

func NewBlogService(catalog *content.Catalog) *BlogService {
	return &BlogService{
		parser:  markdown.NewParser(),
		catalog: catalog,
	}
}

// Posts returns the merged catalog, newest first.
func (s *BlogService) Posts(fields model.Fields) ([]*model.Post, error) {
	return s.catalog.Posts(fields)
}

// Post loads a local post with everything the detail page needs and renders
// its body to HTML.
func (s *BlogService) Post(slug string) (*model.RenderedPost, error) {
	post, err := s.catalog.Post(slug, model.DetailFields)
	if err != nil {
		return nil, err
	}

	html, err := s.parser.Parse([]byte(post.Content))
	if err != nil {
		return nil, fmt.Errorf("render post %s: %w", slug, err)
	}

	return &model.RenderedPost{
		Post: post,
		HTML: string(html),
	}, nil
}

// PostsByTag returns catalog posts carrying tag, ignoring case.
func (s *BlogService) PostsByTag(tag string) ([]*model.Post, error) {
	allPosts, err := s.catalog.Posts(model.ListingFields)
	if err != nil {
		return nil, err
	}

	posts := []*model.Post{}
	for _, post := range allPosts {
		if post.HasTag(tag) {
			posts = append(posts, post)
		}
	}

	return posts, nil
}

// Tags lists every distinct tag in catalog order. Tags differing only in
// case are one tag, spelled as first seen, matching HasTag.
func Tags(posts []*model.Post) []string {
	seen := make(map[string]bool)
	tags := []string{}
	for _, post := range posts {
		for _, tag := range post.Tags {
			key := strings.ToLower(tag)
			if seen[key] {
				continue
			}
			seen[key] = true
			tags = append(tags, tag)
		}
	}
	return tags
}
