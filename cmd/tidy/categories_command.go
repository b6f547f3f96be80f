package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCategoriesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Show the category table in lookup order",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := ctx.newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			rows := make([][]string, 0, rt.table.Len())
			for _, cat := range rt.table.Categories() {
				rows = append(rows, []string{cat.Name, strings.Join(cat.Extensions, " ")})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Categories file: %s\n", rt.cfg.Paths.CategoriesFile)
			fmt.Fprintln(out, renderTable([]string{"Category", "Extensions"}, rows))
			return nil
		},
	}
}
