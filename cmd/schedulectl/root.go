package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/schedule-grid-service/internal/config"
	"github.com/preston-bernstein/schedule-grid-service/internal/logging"
)

type rootOptions struct {
	source string
	path   string
}

// newRootCmd builds the CLI. Content flags override CONTENT_SOURCE and
// CONTENT_PATH.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "schedulectl",
		Short:         "Inspect and import league schedules",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.source, "source", "", "content source (fixture, yaml, sqlite)")
	root.PersistentFlags().StringVar(&opts.path, "path", "", "YAML directory or SQLite file")

	root.AddCommand(newRenderCmd(opts), newListCmd(opts), newImportCmd())
	return root
}

// Execute runs the CLI.
func Execute() error { return newRootCmd().Execute() }

func (o *rootOptions) config() config.Config {
	cfg := config.Load()
	if o.source != "" {
		cfg.Content.Source = o.source
	}
	if o.path != "" {
		cfg.Content.Path = o.path
	}
	return cfg
}

func cliLogger(cmd *cobra.Command) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "schedulectl",
		Output:  cmd.ErrOrStderr(),
	})
}
