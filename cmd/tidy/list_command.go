package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list [directory]",
		Short: "List the files a run would consider",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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
			if err := actions.List(cmd.Context(), dir); err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("directory not found: %s", displayPath(dir))
				}
				return err
			}
			return nil
		},
	}
}
