package pages

import (
	"github.com/templui/folio/internal/model"
	"github.com/templui/folio/internal/ui/components"
)

const notFoundTitle = "404: This page could not be found"

func homeMeta(about *model.Page) components.PageMeta {
	meta := components.PageMeta{Title: "Artem Avetisyan - Web developer"}
	if about != nil && about.Description != "" {
		meta.Description = about.Description
	}
	return meta
}

func blogIndexHeading(tag string) string {
	if tag == "" {
		return "Tech blog"
	}
	return "Posts tagged " + tag
}

func blogIndexMeta(tag string) components.PageMeta {
	if tag == "" {
		return components.PageMeta{Title: "Artem Avetisyan - tech blog"}
	}
	return components.PageMeta{Title: blogIndexHeading(tag) + " - Artem Avetisyan"}
}

func postMeta(post *model.Post) components.PageMeta {
	return components.PageMeta{
		Title:       post.Title,
		Description: post.Excerpt,
		Image:       post.OGImage,
	}
}
