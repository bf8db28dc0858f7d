package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sync/atomic"
	"time"

	"github.com/a-h/templ"
	"golang.org/x/sync/errgroup"

	"github.com/templui/folio/assets"
	"github.com/templui/folio/internal/app"
	"github.com/templui/folio/internal/config"
	"github.com/templui/folio/internal/ctxkeys"
	"github.com/templui/folio/internal/model"
	"github.com/templui/folio/internal/service"
	"github.com/templui/folio/internal/storage"
	"github.com/templui/folio/internal/ui/pages"
)

// Result summarises one static export.
type Result struct {
	Posts    int
	Files    int
	Duration time.Duration
}

// Builder exports the whole site into the public directory.
type Builder struct {
	cfg     *config.Config
	out     *storage.LocalStorage
	blog    *service.BlogService
	pages   *service.PageService
	feeds   *service.FeedService
	sitemap *service.SitemapService

	files atomic.Int64
}

func NewBuilder(a *app.App) *Builder {
	return &Builder{
		cfg:     a.Cfg,
		out:     a.PublicStorage,
		blog:    a.BlogService,
		pages:   a.PageService,
		feeds:   a.FeedService,
		sitemap: a.SitemapService,
	}
}

// page is one HTML document of the export.
type page struct {
	urlPath string
	file    string
	render  func() (templ.Component, error)
}

// Build loads the catalog once, wipes the public directory and writes every
// page, feed and asset. Post pages render concurrently.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	start := time.Now()
	b.files.Store(0)

	posts, err := b.blog.Posts(model.ListingFields)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	err = b.out.Reset()
	if err != nil {
		return nil, fmt.Errorf("reset public directory: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(b.cfg.BuildConcurrency, 1))
	for _, p := range b.plan(posts) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return b.writePage(gctx, p)
		})
	}
	err = g.Wait()
	if err != nil {
		return nil, err
	}

	err = b.writeDocuments(posts)
	if err != nil {
		return nil, err
	}

	err = b.copyFS(assets.AssetsFS, ".", "assets")
	if err != nil {
		return nil, fmt.Errorf("copy assets: %w", err)
	}

	err = b.copyStatic()
	if err != nil {
		return nil, fmt.Errorf("copy static files: %w", err)
	}

	result := &Result{
		Posts:    len(posts),
		Files:    int(b.files.Load()),
		Duration: time.Since(start),
	}
	slog.Info("site built",
		"dir", b.out.Root(),
		"posts", result.Posts,
		"files", result.Files,
		"duration_ms", result.Duration.Milliseconds(),
	)
	return result, nil
}

func (b *Builder) plan(posts []*model.Post) []page {
	plan := []page{
		{urlPath: "/", file: "index.html", render: func() (templ.Component, error) {
			about, err := b.pages.Page(service.AboutPage)
			if err != nil && !errors.Is(err, service.ErrPageNotFound) {
				return nil, err
			}
			return pages.Home(about), nil
		}},
		{urlPath: "/posts", file: "posts/index.html", render: func() (templ.Component, error) {
			return pages.BlogIndex(posts, ""), nil
		}},
		{urlPath: "/404", file: "404.html", render: func() (templ.Component, error) {
			return pages.NotFound(), nil
		}},
	}

	for _, post := range posts {
		if post.IsExternal() {
			continue
		}
		slug := post.Slug
		plan = append(plan, page{
			urlPath: post.Href(),
			file:    path.Join("posts", slug, "index.html"),
			render: func() (templ.Component, error) {
				rendered, err := b.blog.Post(slug)
				if err != nil {
					return nil, err
				}
				return pages.Post(rendered), nil
			},
		})
	}

	for _, tag := range service.Tags(posts) {
		tagged := []*model.Post{}
		for _, post := range posts {
			if post.HasTag(tag) {
				tagged = append(tagged, post)
			}
		}
		plan = append(plan, page{
			urlPath: model.TagPath(tag),
			file:    path.Join("posts", "tag", tag, "index.html"),
			render: func() (templ.Component, error) {
				return pages.BlogIndex(tagged, tag), nil
			},
		})
	}

	return plan
}

func (b *Builder) writePage(ctx context.Context, p page) error {
	c, err := p.render()
	if err != nil {
		return fmt.Errorf("build %s: %w", p.urlPath, err)
	}

	ctx = ctxkeys.WithConfig(ctx, b.cfg.Sanitized())
	ctx = ctxkeys.WithURLPath(ctx, p.urlPath)

	var buf bytes.Buffer
	err = c.Render(ctx, &buf)
	if err != nil {
		return fmt.Errorf("render %s: %w", p.urlPath, err)
	}

	return b.save(p.file, buf.Bytes())
}

func (b *Builder) writeDocuments(posts []*model.Post) error {
	err := b.feeds.Generate(b.cfg.AppURL, posts)
	if err != nil {
		return fmt.Errorf("generate feeds: %w", err)
	}
	b.files.Add(3)

	sitemap, err := b.sitemap.GenerateSitemap()
	if err != nil {
		return fmt.Errorf("generate sitemap: %w", err)
	}
	err = b.save("sitemap.xml", sitemap)
	if err != nil {
		return err
	}

	return b.save("robots.txt", service.RobotsTxt(b.cfg.AppURL))
}

func (b *Builder) copyStatic() error {
	dir := b.cfg.StaticPath()
	_, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil
	}
	return b.copyFS(os.DirFS(dir), ".", "")
}

func (b *Builder) copyFS(fsys fs.FS, root, prefix string) error {
	return fs.WalkDir(fsys, root, func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return err
		}
		return b.save(path.Join(prefix, name), data)
	})
}

func (b *Builder) save(file string, data []byte) error {
	err := b.out.Save(file, bytes.NewReader(data))
	if err != nil {
		return err
	}
	b.files.Add(1)
	slog.Debug("wrote file", "file", file, "bytes", len(data))
	return nil
}
