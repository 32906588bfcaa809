package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	appschedules "github.com/preston-bernstein/schedule-grid-service/internal/app/schedules"
	"github.com/preston-bernstein/schedule-grid-service/internal/render"
	"github.com/preston-bernstein/schedule-grid-service/internal/timeutil"
)

type renderOptions struct {
	hideOld  bool
	today    string
	fragment bool
	json     bool
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render [slug]",
		Short: "Print a schedule as HTML",
		Long:  "Print a schedule as HTML. A blank or unknown slug renders the default schedule.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, opts, args)
		},
	}
	cmd.Flags().BoolVar(&opts.hideOld, "hide-old", false, "drop matchdays before today")
	cmd.Flags().StringVar(&opts.today, "today", "", "override today (YYYYMMDD or YYYY-MM-DD)")
	cmd.Flags().BoolVar(&opts.fragment, "fragment", false, "print only the schedule section")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the flattened view as JSON")
	return cmd
}

func runRender(cmd *cobra.Command, root *rootOptions, opts *renderOptions, args []string) error {
	renderOpts := appschedules.Options{HidePast: opts.hideOld}
	if opts.today != "" {
		renderOpts.Today = timeutil.NormalizeDate(opts.today)
		if renderOpts.Today == "" {
			return fmt.Errorf("invalid --today %q", opts.today)
		}
	}

	svc, err := loadSchedules(cmd.Context(), root.config(), cliLogger(cmd))
	if err != nil {
		return err
	}

	slug := ""
	if len(args) == 1 {
		slug = args[0]
	}
	view, ok := svc.Render(slug, renderOpts)
	if !ok {
		return nil
	}

	out := cmd.OutOrStdout()
	switch {
	case opts.json:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	case opts.fragment:
		return render.Schedule(out, view)
	default:
		return render.Page(out, view)
	}
}
