package service

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/gorilla/feeds"

	"github.com/templui/folio/internal/model"
	"github.com/templui/folio/internal/storage"
)

const (
	feedTitle       = "Artem's blog posts | RSS Feed"
	feedDescription = "Welcome to Artem's tech blog posts!"
	feedAuthor      = "Artem Avetisyan"
	feedGenerator   = "Feed for Artem's tech blog"
)

// Feed file names, relative to the public directory.
const (
	RSSFile  = "rss.xml"
	JSONFile = "rss.json"
	AtomFile = "atom.xml"
)

// Site-relative paths of the images the feeds advertise.
const (
	FaviconPath      = "/favicon/favicon.svg"
	ProfileImagePath = "/profile_pic_website.png"
)

// rssDocument is feeds.RssFeedXml with the atom namespace, so the channel
// can carry its own address.
type rssDocument struct {
	XMLName          xml.Name `xml:"rss"`
	Version          string   `xml:"version,attr"`
	ContentNamespace string   `xml:"xmlns:content,attr"`
	AtomNamespace    string   `xml:"xmlns:atom,attr"`
	Channel          *rssChannel
}

type rssChannel struct {
	XMLName xml.Name `xml:"channel"`
	*feeds.RssFeed
	Self *rssSelfLink
}

type rssSelfLink struct {
	XMLName xml.Name `xml:"atom:link"`
	Href    string   `xml:"href,attr"`
	Rel     string   `xml:"rel,attr"`
	Type    string   `xml:"type,attr"`
}

func (d *rssDocument) FeedXml() interface{} {
	return d
}

// FeedDocuments holds the three serialized feeds.
type FeedDocuments struct {
	RSS  []byte
	JSON []byte
	Atom []byte
}

type FeedService struct {
	storage storage.Storage
	now     func() time.Time
}

func NewFeedService(store storage.Storage) *FeedService {
	return &FeedService{
		storage: store,
		now:     time.Now,
	}
}

// PostURL is the canonical address of a post: its own url for external
// posts, otherwise the post page on the site.
func PostURL(siteURL string, post *model.Post) string {
	if post.URL != "" {
		return post.URL
	}
	return strings.TrimSuffix(siteURL, "/") + "/posts/" + post.Slug
}

// Render builds RSS 2.0, JSON Feed and Atom documents for posts, which must
// already be in catalog order.
func (s *FeedService) Render(siteURL string, posts []*model.Post) (*FeedDocuments, error) {
	siteURL = strings.TrimSuffix(siteURL, "/")
	now := s.now()

	feed := &feeds.Feed{
		Title:       feedTitle,
		Description: feedDescription,
		Id:          siteURL,
		Link:        &feeds.Link{Href: siteURL},
		Author:      &feeds.Author{Name: feedAuthor},
		Copyright:   fmt.Sprintf("All rights reserved %d, %s", now.Year(), feedAuthor),
		Updated:     now,
		Image: &feeds.Image{
			Url:   siteURL + ProfileImagePath,
			Title: feedTitle,
			Link:  siteURL,
		},
	}

	for _, post := range posts {
		date, err := dateparse.ParseAny(post.Date)
		if err != nil {
			return nil, fmt.Errorf("post %q has unparseable date %q: %w", post.Title, post.Date, err)
		}

		url := PostURL(siteURL, post)
		feed.Items = append(feed.Items, &feeds.Item{
			Title:       post.Title,
			Id:          url,
			Link:        &feeds.Link{Href: url},
			Description: post.Excerpt,
			Created:     date,
		})
	}

	rssFeed := (&feeds.Rss{Feed: feed}).RssFeed()
	rssFeed.Generator = feedGenerator
	rss, err := feeds.ToXML(&rssDocument{
		Version:          "2.0",
		ContentNamespace: "http://purl.org/rss/1.0/modules/content/",
		AtomNamespace:    "http://www.w3.org/2005/Atom",
		Channel: &rssChannel{
			RssFeed: rssFeed,
			Self: &rssSelfLink{
				Href: siteURL + "/" + RSSFile,
				Rel:  "self",
				Type: "application/rss+xml",
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("render rss: %w", err)
	}

	atomFeed := (&feeds.Atom{Feed: feed}).AtomFeed()
	atomFeed.Id = siteURL
	atomFeed.Link = &feeds.AtomLink{
		Href: siteURL + "/" + AtomFile,
		Rel:  "self",
		Type: "application/atom+xml",
	}
	atomFeed.Icon = siteURL + FaviconPath
	atomFeed.Logo = siteURL + ProfileImagePath
	atom, err := feeds.ToXML(atomFeed)
	if err != nil {
		return nil, fmt.Errorf("render atom: %w", err)
	}

	jsonFeed := (&feeds.JSON{Feed: feed}).JSONFeed()
	jsonFeed.FeedUrl = siteURL + "/" + JSONFile
	jsonFeed.Favicon = siteURL + FaviconPath
	jsonDoc, err := json.MarshalIndent(jsonFeed, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render json feed: %w", err)
	}

	return &FeedDocuments{
		RSS:  []byte(rss),
		JSON: jsonDoc,
		Atom: []byte(atom),
	}, nil
}

// Generate renders the feeds and overwrites the three feed files.
func (s *FeedService) Generate(siteURL string, posts []*model.Post) error {
	docs, err := s.Render(siteURL, posts)
	if err != nil {
		return err
	}

	files := []struct {
		name string
		data []byte
	}{
		{RSSFile, docs.RSS},
		{JSONFile, docs.JSON},
		{AtomFile, docs.Atom},
	}
	for _, f := range files {
		err := s.storage.Save(f.name, bytes.NewReader(f.data))
		if err != nil {
			return fmt.Errorf("write %s: %w", f.name, err)
		}
		slog.Info("feed written", "file", f.name, "items", len(posts), "url", s.storage.URL(f.name))
	}

	return nil
}
