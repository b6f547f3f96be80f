package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"tidy/internal/shell"
)

func newShellCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run the interactive menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(ctx, cmd)
		},
	}
}

func runShell(ctx *commandContext, cmd *cobra.Command) error {
	rt, err := ctx.newRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	in, err := newReadlineSource(rt.cfg.Paths.StateDir)
	if err != nil {
		return fmt.Errorf("initialize input: %w", err)
	}
	defer in.Close()

	out := cmd.OutOrStdout()
	actions := newCLIActions(rt, out)
	return shell.New(in, out, actions, rt.logger).Run(cmd.Context())
}

// readlineSource adapts chzyer/readline to the shell's line reader. Ctrl-C
// and Ctrl-D both end the session, matching a plain EOF on stdin.
type readlineSource struct {
	rl *readline.Instance
}

func newReadlineSource(stateDir string) (*readlineSource, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:     filepath.Join(stateDir, "shell_history"),
		InterruptPrompt: "^C",
	})
	if err != nil {
		return nil, err
	}
	return &readlineSource{rl: rl}, nil
}

func (r *readlineSource) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", io.EOF
	}
	return line, err
}

func (r *readlineSource) Close() {
	_ = r.rl.Close()
}
