package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/templui/folio/internal/model"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dateStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	externalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	localStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

func ListCmd() *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:   "list [query]",
		Short: "List catalog posts, newest first, optionally fuzzy-filtered",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			return runList(cmd.OutOrStdout(), query, fields)
		},
	}

	cmd.Flags().StringSliceVarP(&fields, "fields", "f", nil, "front-matter fields to print instead of the summary")
	return cmd
}

func runList(w io.Writer, query string, fieldNames []string) error {
	fields := model.ListingFields
	if len(fieldNames) > 0 {
		parsed, unknown := model.ParseFields(fieldNames...)
		if len(unknown) > 0 {
			return fmt.Errorf("unknown fields: %s", strings.Join(unknown, ", "))
		}
		fields = parsed
	}

	a, flush, err := loadApp()
	if err != nil {
		return err
	}
	defer flush()

	posts, err := a.BlogService.Posts(fields.With(model.FieldTitle).With(model.FieldTags))
	if err != nil {
		return err
	}
	posts = filterPosts(posts, query)

	if len(fieldNames) > 0 {
		writeFieldTable(w, posts, fields)
	} else {
		writeSummary(w, posts)
	}
	fmt.Fprintf(os.Stderr, "%d posts\n", len(posts))
	return nil
}

// filterPosts keeps posts whose title or tags fuzzy-match query, best match
// first. An empty query keeps catalog order.
func filterPosts(posts []*model.Post, query string) []*model.Post {
	if query == "" {
		return posts
	}

	names := make([]string, len(posts))
	for i, post := range posts {
		names[i] = post.Title + " " + strings.Join(post.Tags, " ")
	}

	matches := fuzzy.Find(query, names)
	filtered := make([]*model.Post, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, posts[match.Index])
	}
	return filtered
}

func writeSummary(w io.Writer, posts []*model.Post) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-10s  %-8s  %s", "DATE", "SOURCE", "TITLE")))
	for _, post := range posts {
		source := localStyle.Render(fmt.Sprintf("%-8s", "local"))
		if post.IsExternal() {
			source = externalStyle.Render(fmt.Sprintf("%-8s", "external"))
		}
		fmt.Fprintf(w, "%s  %s  %s\n", dateStyle.Render(fmt.Sprintf("%-10s", post.Date)), source, post.Title)
	}
}

func writeFieldTable(w io.Writer, posts []*model.Post, fields model.Fields) {
	names := fields.Names()
	fmt.Fprintln(w, headerStyle.Render(strings.Join(names, "\t")))
	for _, post := range posts {
		values := post.Map()
		row := make([]string, len(names))
		for i, name := range names {
			switch v := values[name].(type) {
			case []string:
				row[i] = strings.Join(v, ",")
			case nil:
				row[i] = "-"
			default:
				row[i] = fmt.Sprint(v)
			}
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
}
