package handler

import (
	"log/slog"
	"net/http"

	"github.com/templui/folio/internal/content"
	"github.com/templui/folio/internal/model"
	"github.com/templui/folio/internal/service"
	"github.com/templui/folio/internal/ui"
	"github.com/templui/folio/internal/ui/pages"
)

type BlogHandler struct {
	blogService *service.BlogService
}

func NewBlogHandler(blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
	}
}

func (h *BlogHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blogService.Posts(model.ListingFields)
	if err != nil {
		slog.Error("failed to load posts", "error", err)
		http.Error(w, "Failed to load blog posts", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, pages.BlogIndex(posts, ""))
}

// RedirectBlog keeps the old /blog address working.
func (h *BlogHandler) RedirectBlog(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/posts", http.StatusMovedPermanently)
}

func (h *BlogHandler) ShowPost(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	post, err := h.blogService.Post(slug)
	if err != nil {
		if content.IsNotFound(err) {
			notFound(w, r)
			return
		}
		slog.Error("failed to load post", "slug", slug, "error", err)
		http.Error(w, "Failed to load blog post", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, pages.Post(post))
}

func (h *BlogHandler) ListByTag(w http.ResponseWriter, r *http.Request) {
	tag := r.PathValue("tag")
	if tag == "" {
		notFound(w, r)
		return
	}

	posts, err := h.blogService.PostsByTag(tag)
	if err != nil {
		slog.Error("failed to load posts", "tag", tag, "error", err)
		http.Error(w, "Failed to load blog posts", http.StatusInternalServerError)
		return
	}
	if len(posts) == 0 {
		notFound(w, r)
		return
	}

	ui.Render(w, r, pages.BlogIndex(posts, tag))
}
