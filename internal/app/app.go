package app

import (
	"fmt"

	"github.com/templui/folio/internal/config"
	"github.com/templui/folio/internal/content"
	"github.com/templui/folio/internal/service"
	"github.com/templui/folio/internal/storage"
)

type App struct {
	Cfg            *config.Config
	Catalog        *content.Catalog
	PublicStorage  *storage.LocalStorage
	BlogService    *service.BlogService
	PageService    *service.PageService
	FeedService    *service.FeedService
	SitemapService *service.SitemapService
}

func New(cfg *config.Config) (*App, error) {
	// Content sources, external posts first
	external := content.NewStaticSource(content.ExternalPosts)
	err := external.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid external posts: %w", err)
	}
	catalog := content.NewCatalog(external, content.NewFileSource(cfg.PostsPath()))

	// Storage
	publicStorage := storage.NewLocalStorage(cfg.PublicPath)

	// Services
	blogService := service.NewBlogService(catalog)
	pageService := service.NewPageService(cfg.PagesPath())
	feedService := service.NewFeedService(publicStorage)
	sitemapService := service.NewSitemapService(blogService, cfg.AppURL)

	return &App{
		Cfg:            cfg,
		Catalog:        catalog,
		PublicStorage:  publicStorage,
		BlogService:    blogService,
		PageService:    pageService,
		FeedService:    feedService,
		SitemapService: sitemapService,
	}, nil
}
