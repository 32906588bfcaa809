package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/schedule-grid-service/internal/timeutil"
)

func newListCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List schedules; the default one is marked with *",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadSchedules(cmd.Context(), root.config(), cliLogger(cmd))
			if err != nil {
				return err
			}
			def, _ := svc.Resolve("")

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "\tSLUG\tTITLE\tPUBLISHED\tMATCHDAYS")
			for _, sc := range svc.Schedules() {
				mark := ""
				if sc.Slug == def.Slug {
					mark = "*"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", mark, sc.Slug, sc.Title, timeutil.FormatDate(sc.PublishedAt), len(sc.Matchdays))
			}
			return tw.Flush()
		},
	}
}
