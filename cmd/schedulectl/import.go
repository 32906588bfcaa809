package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/schedule-grid-service/internal/providers/sqlite"
	"github.com/preston-bernstein/schedule-grid-service/internal/providers/yamlfile"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <yaml-dir> <sqlite-file>",
		Short: "Copy YAML content into a SQLite database",
		Args:  cobra.ExactArgs(2),
		RunE:  runImport,
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	content, err := yamlfile.New(args[0]).FetchContent(ctx)
	if err != nil {
		return fmt.Errorf("read yaml: %w", err)
	}

	db, err := sqlite.Open(args[1])
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error while closing database: %v\n", cerr)
		}
	}()

	for _, t := range content.Teams {
		if err := db.SaveTeam(ctx, t); err != nil {
			return err
		}
	}
	for _, sc := range content.Schedules {
		if err := db.SaveSchedule(ctx, sc); err != nil {
			return err
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d teams and %d schedules into %s\n", len(content.Teams), len(content.Schedules), args[1])
	return nil
}
