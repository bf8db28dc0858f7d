package handler

import (
	"log/slog"
	"net/http"

	"github.com/templui/folio/internal/model"
	"github.com/templui/folio/internal/service"
	"github.com/templui/folio/internal/storage"
)

type FeedHandler struct {
	blogService *service.BlogService
	feedService *service.FeedService
	baseURL     string
}

func NewFeedHandler(blogService *service.BlogService, feedService *service.FeedService, baseURL string) *FeedHandler {
	return &FeedHandler{
		blogService: blogService,
		feedService: feedService,
		baseURL:     baseURL,
	}
}

func (h *FeedHandler) RSS(w http.ResponseWriter, r *http.Request) {
	h.serve(w, service.RSSFile, func(d *service.FeedDocuments) []byte { return d.RSS })
}

func (h *FeedHandler) JSON(w http.ResponseWriter, r *http.Request) {
	h.serve(w, service.JSONFile, func(d *service.FeedDocuments) []byte { return d.JSON })
}

func (h *FeedHandler) Atom(w http.ResponseWriter, r *http.Request) {
	h.serve(w, service.AtomFile, func(d *service.FeedDocuments) []byte { return d.Atom })
}

// serve rebuilds the feeds from the current catalog on every request.
func (h *FeedHandler) serve(w http.ResponseWriter, name string, pick func(*service.FeedDocuments) []byte) {
	posts, err := h.blogService.Posts(model.FeedFields)
	if err != nil {
		slog.Error("failed to load posts for feed", "feed", name, "error", err)
		http.Error(w, "Failed to generate feed", http.StatusInternalServerError)
		return
	}

	docs, err := h.feedService.Render(h.baseURL, posts)
	if err != nil {
		slog.Error("failed to render feed", "feed", name, "error", err)
		http.Error(w, "Failed to generate feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", storage.ContentType(name))
	w.Write(pick(docs))
}
