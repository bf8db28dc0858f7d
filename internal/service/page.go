package service

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/templui/folio/internal/markdown"
	"github.com/templui/folio/internal/model"
)

// AboutPage is the page shown under the intro on the home page.
const AboutPage = "about"

// ErrPageNotFound is returned when no Markdown file exists for a page slug.
var ErrPageNotFound = errors.New("page not found")

type PageService struct {
	parser     *markdown.Parser
	contentDir string
}

func NewPageService(contentDir string) *PageService {
	return &PageService{
		parser:     markdown.NewParser(),
		contentDir: contentDir,
	}
}

// Page reads and renders <contentDir>/<slug>.md on every call so edits show
// up without a restart.
func (s *PageService) Page(slug string) (*model.Page, error) {
	if slug == "" || strings.ContainsAny(slug, `/\.`) {
		return nil, fmt.Errorf("%w: %q", ErrPageNotFound, slug)
	}

	filePath := filepath.Join(s.contentDir, slug+".md")
	source, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrPageNotFound, slug)
		}
		return nil, fmt.Errorf("failed to read page %s: %w", slug, err)
	}

	html, meta, err := s.parser.ParseWithFrontmatter(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page %s: %w", slug, err)
	}

	title, _ := meta["title"].(string)
	if title == "" {
		title = cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
	}
	description, _ := meta["description"].(string)

	return &model.Page{
		Title:       title,
		Slug:        slug,
		Description: description,
		HTMLContent: string(html),
	}, nil
}
