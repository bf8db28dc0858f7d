package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/templui/folio/internal/site"
	"github.com/templui/folio/internal/storage"
)

func PublishCmd() *cobra.Command {
	var build bool

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the public directory to the configured S3 bucket",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, flush, err := loadApp()
			if err != nil {
				return err
			}
			defer flush()

			if build {
				_, err := site.NewBuilder(a).Build(cmd.Context())
				if err != nil {
					return err
				}
			}

			bucket, err := storage.NewS3(a.Cfg)
			if err != nil {
				return err
			}

			count, err := site.Publish(a.PublicStorage, bucket)
			if err != nil {
				return err
			}
			fmt.Printf("Published %d files to %s\n", count, bucket.URL(""))
			return nil
		},
	}

	cmd.Flags().BoolVar(&build, "build", true, "build the site before uploading")
	return cmd
}
