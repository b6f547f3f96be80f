package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent file operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := ctx.newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			out := cmd.OutOrStdout()
			if rt.store == nil {
				fmt.Fprintln(out, "Operation history is disabled.")
				return nil
			}

			entries, err := rt.store.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("read history: %w", err)
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, "No recorded operations yet.")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				mode := "move"
				if entry.DryRun {
					mode = "plan"
				}
				rows = append(rows, []string{
					entry.RecordedAt.Local().Format("2006-01-02 15:04:05"),
					mode,
					entry.File,
					entry.Category,
					entry.Outcome,
					entry.Directory,
				})
			}
			fmt.Fprintln(out, renderTable([]string{"When", "Mode", "File", "Category", "Outcome", "Directory"}, rows))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries to show")
	return cmd
}
