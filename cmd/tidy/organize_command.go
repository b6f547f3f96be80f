package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
)

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "organize [directory]",
		Short: "Move the files of a directory into category subfolders",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrganize(ctx, cmd, args, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report the plan without moving anything")
	return cmd
}

// newPlanCommand is `organize --dry-run` under a memorable name.
func newPlanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "plan [directory]",
		Short: "Preview how a directory would be organized",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrganize(ctx, cmd, args, true)
		},
	}
}

func runOrganize(ctx *commandContext, cmd *cobra.Command, args []string, dryRun bool) error {
	dir := "."
	if len(args) == 1 && args[0] != "" {
		dir = args[0]
	}

	rt, err := ctx.newRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	actions := newCLIActions(rt, cmd.OutOrStdout())
	if err := actions.Organize(cmd.Context(), dir, dryRun); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("directory not found: %s", displayPath(dir))
		}
		return err
	}
	return nil
}
