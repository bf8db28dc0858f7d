package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/templui/folio/internal/site"
)

func BuildCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the whole site into the public directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runBuild(ctx, watch)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "rebuild when content changes")
	return cmd
}

func runBuild(ctx context.Context, watch bool) error {
	a, flush, err := loadApp()
	if err != nil {
		return err
	}
	defer flush()

	builder := site.NewBuilder(a)
	result, err := builder.Build(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Built %d files (%d posts) into %s in %s\n", result.Files, result.Posts, a.Cfg.PublicPath, result.Duration)

	if !watch {
		return nil
	}

	watcher, err := site.NewWatcher([]string{a.Cfg.ContentPath}, a.Cfg.WatchDebounce, func(ctx context.Context) error {
		result, err := builder.Build(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Rebuilt %d files in %s\n", result.Files, result.Duration)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("Watching %s for changes (Ctrl+C to stop)\n", a.Cfg.ContentPath)
	return watcher.Run(ctx)
}
