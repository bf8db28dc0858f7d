package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/templui/folio/internal/model"
)

func PreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview <slug>",
		Short: "Render a local post in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd.OutOrStdout(), args[0])
		},
	}
}

func runPreview(w io.Writer, slug string) error {
	a, flush, err := loadApp()
	if err != nil {
		return err
	}
	defer flush()

	post, err := a.Catalog.Post(slug, model.DetailFields)
	if err != nil {
		return err
	}

	out, err := renderTerminal(post)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func renderTerminal(post *model.Post) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}

	header := fmt.Sprintf("# %s\n\n_%s · %s_\n\n", post.Title, post.Date, post.ReadingTime)
	return renderer.Render(header + post.Content)
}
