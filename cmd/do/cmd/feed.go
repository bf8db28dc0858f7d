package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/templui/folio/internal/model"
	"github.com/templui/folio/internal/service"
)

func FeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "feed",
		Short: "Write rss.xml, rss.json and atom.xml into the public directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFeed()
		},
	}
}

func runFeed() error {
	a, flush, err := loadApp()
	if err != nil {
		return err
	}
	defer flush()

	posts, err := a.BlogService.Posts(model.FeedFields)
	if err != nil {
		return err
	}

	err = a.FeedService.Generate(a.Cfg.AppURL, posts)
	if err != nil {
		return err
	}

	for _, name := range []string{service.RSSFile, service.JSONFile, service.AtomFile} {
		fmt.Println(a.PublicStorage.URL(name))
	}
	return nil
}
