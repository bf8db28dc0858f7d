package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/templui/folio/internal/service"
	"github.com/templui/folio/internal/ui"
	"github.com/templui/folio/internal/ui/pages"
)

type HomeHandler struct {
	pageService *service.PageService
}

func NewHomeHandler(pageService *service.PageService) *HomeHandler {
	return &HomeHandler{
		pageService: pageService,
	}
}

func (h *HomeHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	about, err := h.pageService.Page(service.AboutPage)
	if err != nil && !errors.Is(err, service.ErrPageNotFound) {
		slog.Error("failed to load about page", "error", err)
		http.Error(w, "Failed to load page", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, pages.Home(about))
}

func notFound(w http.ResponseWriter, r *http.Request) {
	ui.RenderStatus(w, r, http.StatusNotFound, pages.NotFound())
}

