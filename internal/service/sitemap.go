package service

import (
	"encoding/xml"
	"strings"
	"time"

	"github.com/templui/folio/internal/model"
)

// publicRoutes defines the static pages listed in the sitemap
var publicRoutes = []struct {
	Path       string
	Priority   string
	ChangeFreq string
}{
	{"/", "1.0", "monthly"},
	{"/posts", "0.8", "weekly"},
}

type SitemapService struct {
	blogService *BlogService
	baseURL     string
	now         func() time.Time
}

// NewSitemapService creates a new sitemap service
func NewSitemapService(blogService *BlogService, baseURL string) *SitemapService {
	return &SitemapService{
		blogService: blogService,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		now:         time.Now,
	}
}

// GenerateSitemap lists the home page, the blog index, every local post and
// every tag page. External posts live on other sites and are left out.
func (s *SitemapService) GenerateSitemap() ([]byte, error) {
	posts, err := s.blogService.Posts(model.ListingFields)
	if err != nil {
		return nil, err
	}

	sitemap := model.Sitemap{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  s.staticURLs(),
	}
	sitemap.URLs = append(sitemap.URLs, s.postURLs(posts)...)

	output, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}

	return []byte(xml.Header + string(output)), nil
}

func (s *SitemapService) staticURLs() []model.SitemapURL {
	today := s.now().Format(time.DateOnly)
	urls := make([]model.SitemapURL, 0, len(publicRoutes))
	for _, route := range publicRoutes {
		urls = append(urls, model.SitemapURL{
			Loc:        s.baseURL + route.Path,
			LastMod:    today,
			ChangeFreq: route.ChangeFreq,
			Priority:   route.Priority,
		})
	}
	return urls
}

func (s *SitemapService) postURLs(posts []*model.Post) []model.SitemapURL {
	var urls []model.SitemapURL
	var local []*model.Post
	for _, post := range posts {
		if post.IsExternal() {
			continue
		}
		local = append(local, post)

		// Use the post date when it is a plain ISO date
		lastMod := ""
		if _, err := time.Parse(time.DateOnly, post.Date); err == nil {
			lastMod = post.Date
		}

		urls = append(urls, model.SitemapURL{
			Loc:        s.baseURL + post.Href(),
			LastMod:    lastMod,
			ChangeFreq: "monthly",
			Priority:   "0.7",
		})
	}

	for _, tag := range Tags(local) {
		urls = append(urls, model.SitemapURL{
			Loc:        s.baseURL + model.TagPath(tag),
			ChangeFreq: "weekly",
			Priority:   "0.5",
		})
	}

	return urls
}

// RobotsTxt allows every crawler and points it at the sitemap.
func RobotsTxt(baseURL string) []byte {
	return []byte("User-agent: *\nAllow: /\nSitemap: " + strings.TrimSuffix(baseURL, "/") + "/sitemap.xml\n")
}
