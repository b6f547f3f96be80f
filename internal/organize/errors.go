package organize

import (
	"errors"
	"io/fs"
)

// classifyMoveError maps an OS-level move failure onto an outcome and a
// human-readable detail with a recovery suggestion.
func classifyMoveError(err error) (Outcome, string) {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return OutcomePermission, "permission denied; check the file is not in use and that you have write access"
	case errors.Is(err, fs.ErrNotExist):
		return OutcomeVanished, "file not found; it may have been moved or deleted by another process"
	default:
		return OutcomeFailed, err.Error()
	}
}
