package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"

	"tidy/internal/organize"
	"tidy/internal/services"
)

// cliActions implements shell.Actions on top of the runtime. The same code
// path serves the organize/plan/list subcommands so interactive and scripted
// use behave identically.
type cliActions struct {
	rt  *runtime
	out io.Writer
}

func newCLIActions(rt *runtime, out io.Writer) *cliActions {
	return &cliActions{rt: rt, out: out}
}

// operationContext stamps each invocation with a fresh run ID and the
// resolved target directory for log and history correlation.
func operationContext(ctx context.Context, dir string) context.Context {
	ctx = services.WithRunID(ctx, uuid.NewString())
	if abs, err := filepath.Abs(dir); err == nil {
		ctx = services.WithTargetDir(ctx, abs)
	}
	return ctx
}

func (a *cliActions) Organize(ctx context.Context, dir string, dryRun bool) error {
	ctx = operationContext(ctx, dir)
	abs := displayPath(dir)
	if dryRun {
		fmt.Fprintf(a.out, "\n--- Dry Run: Planning organization in: %s ---\n", abs)
	} else {
		fmt.Fprintf(a.out, "\n--- Organizing files in: %s ---\n", abs)
	}

	records, err := a.rt.organizer.Process(ctx, dir, dryRun)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(a.out, "No files to organize in this directory.")
		return nil
	}

	if stdoutIsTerminal() {
		fmt.Fprintln(a.out, renderRecords(records))
	}
	if dryRun {
		fmt.Fprintln(a.out, "--- Dry Run Complete. No files were moved. ---")
	} else {
		fmt.Fprintln(a.out, "--- File Organization Complete. ---")
	}
	return nil
}

func (a *cliActions) List(ctx context.Context, dir string) error {
	ctx = operationContext(ctx, dir)
	fmt.Fprintf(a.out, "\n--- Listing files in: %s ---\n", displayPath(dir))

	files, err := a.rt.organizer.List(ctx, dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(a.out, "No files to list in this directory.")
		return nil
	}
	for _, name := range files {
		fmt.Fprintf(a.out, "  - %s\n", name)
	}
	return nil
}

func renderRecords(records []organize.Record) string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{rec.File, rec.Category, string(rec.Outcome), rec.Detail})
	}
	return renderTable([]string{"File", "Category", "Outcome", "Detail"}, rows)
}

func displayPath(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	return abs
}
