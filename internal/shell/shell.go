// Package shell implements the interactive menu loop: a fixed ten-choice
// menu driving organize, list, and dry-run operations against the current,
// parent, or a user-supplied directory.
//
// The shell is a small state machine (menu, awaiting path input, executing)
// driven by single lines of input. Input arrives through the LineReader
// interface so the command wires a readline instance while tests script a
// fixed sequence.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"tidy/internal/logging"
)

// LineReader supplies one line of user input per call. Returning io.EOF ends
// the shell loop gracefully.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Actions are the operations the menu dispatches to.
type Actions interface {
	Organize(ctx context.Context, dir string, dryRun bool) error
	List(ctx context.Context, dir string) error
}

// Shell renders the menu and dispatches user choices.
type Shell struct {
	in      LineReader
	out     io.Writer
	actions Actions
	logger  *slog.Logger
}

// New constructs a shell writing to out and reading choices from in.
func New(in LineReader, out io.Writer, actions Actions, logger *slog.Logger) *Shell {
	return &Shell{
		in:      in,
		out:     out,
		actions: actions,
		logger:  logging.NewComponentLogger(logger, "shell"),
	}
}

// Run loops until the user chooses exit, input ends, or ctx is cancelled.
// Invalid choices and invalid paths re-display the menu; operation failures
// are reported and never terminate the loop.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()
		line, err := s.in.ReadLine("Enter your choice (1-10): ")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out, "Exiting.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read choice: %w", err)
		}

		choice := strings.TrimSpace(line)
		if choice == "10" {
			fmt.Fprintln(s.out, "Exiting.")
			return nil
		}

		mode, target, ok := s.resolve(choice)
		if !ok {
			continue
		}
		s.dispatch(ctx, mode, target)
	}
}

type mode int

const (
	modeOrganize mode = iota
	modeList
	modeDryRun
)

// resolve maps a menu choice to an operation mode and target directory.
// ok is false when the choice is invalid or the path prompt was abandoned.
func (s *Shell) resolve(choice string) (mode, string, bool) {
	var m mode
	switch choice {
	case "1", "2", "3":
		m = modeOrganize
	case "4", "5", "6":
		m = modeList
	case "7", "8", "9":
		m = modeDryRun
	default:
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "Invalid choice. Please enter a number between 1 and 10.")
		fmt.Fprintln(s.out)
		return 0, "", false
	}

	switch choice {
	case "1", "4", "7":
		return m, ".", true
	case "2", "5", "8":
		return m, "..", true
	default:
		target, ok := s.promptForDirectory()
		return m, target, ok
	}
}

func (s *Shell) promptForDirectory() (string, bool) {
	line, err := s.in.ReadLine("Enter the full path to the specific folder: ")
	if err != nil {
		return "", false
	}
	path := strings.TrimSpace(line)
	info, statErr := os.Stat(path)
	if statErr != nil || !info.IsDir() {
		fmt.Fprintln(s.out)
		fmt.Fprintf(s.out, "Error: The directory %q does not exist. Returning to main menu.\n", path)
		fmt.Fprintln(s.out)
		return "", false
	}
	return path, true
}

func (s *Shell) dispatch(ctx context.Context, m mode, dir string) {
	var err error
	switch m {
	case modeOrganize:
		err = s.actions.Organize(ctx, dir, false)
	case modeDryRun:
		err = s.actions.Organize(ctx, dir, true)
	case modeList:
		err = s.actions.List(ctx, dir)
	}
	if err == nil {
		return
	}
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(s.out, "Error: Directory not found.")
		return
	}
	s.logger.Error("operation failed", logging.Error(err))
	fmt.Fprintf(s.out, "Error: %v\n", err)
}

func (s *Shell) printMenu() {
	fmt.Fprint(s.out, `============================================
           File Organizer Menu
============================================
ORGANIZE (MOVE FILES):
  1. In the CURRENT folder
  2. In the PARENT folder
  3. In a SPECIFIC folder

LIST FILES:
  4. In the CURRENT folder
  5. In the PARENT folder
  6. In a SPECIFIC folder

PLAN ORGANIZATION (DRY RUN):
  7. In the CURRENT folder
  8. In the PARENT folder
  9. In a SPECIFIC folder

--------------------------------------------
  10. Exit
============================================
`)
}
