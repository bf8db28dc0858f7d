package routes

import (
	"io/fs"
	"net/http"

	"github.com/templui/folio/assets"
	"github.com/templui/folio/internal/app"
	"github.com/templui/folio/internal/handler"
	"github.com/templui/folio/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler(app.PageService)
	seo := handler.NewSEOHandler(app.SitemapService, app.Cfg.AppURL)
	blog := handler.NewBlogHandler(app.BlogService)
	feed := handler.NewFeedHandler(app.BlogService, app.FeedService, app.Cfg.AppURL)
	static := handler.NewStaticHandler(app.Cfg.StaticPath())

	mux := http.NewServeMux()

	// Static files
	sub, _ := fs.Sub(assets.AssetsFS, ".")
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.FS(sub))))

	// SEO
	mux.HandleFunc("GET /robots.txt", seo.Robots)
	mux.HandleFunc("GET /sitemap.xml", seo.Sitemap)

	// Feeds
	mux.HandleFunc("GET /rss.xml", feed.RSS)
	mux.HandleFunc("GET /rss.json", feed.JSON)
	mux.HandleFunc("GET /atom.xml", feed.Atom)

	// Home
	mux.HandleFunc("GET /{$}", home.HomePage)

	// Blog
	mux.HandleFunc("GET /blog", blog.RedirectBlog)
	mux.HandleFunc("GET /posts", blog.ListPosts)
	mux.HandleFunc("GET /posts/{slug}", blog.ShowPost)
	mux.HandleFunc("GET /posts/tag/{tag}", blog.ListByTag)

	// Static content directory, then 404
	mux.HandleFunc("/{path...}", static.ServeFile)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Config(app.Cfg),
		middleware.RequestLogging,
		middleware.WithURLPath,
	)

	return handler
}
