package organize

import "context"

// Outcome identifies how processing a single file ended.
type Outcome string

const (
	// OutcomePlanned is a dry-run match: the file would move to Category.
	OutcomePlanned Outcome = "planned"
	// OutcomeMoved is a completed move into the category subfolder.
	OutcomeMoved Outcome = "moved"
	// OutcomeNoExtension marks a file skipped because it has no extension.
	OutcomeNoExtension Outcome = "skipped-no-extension"
	// OutcomeUnknownType marks a file whose extension matches no category.
	OutcomeUnknownType Outcome = "skipped-unknown-type"
	// OutcomeExists marks a collision: the destination already holds a file
	// with this name, so the original was left in place.
	OutcomeExists Outcome = "skipped-exists"
	// OutcomePermission is a move that failed with a permission error.
	OutcomePermission Outcome = "error-permission"
	// OutcomeVanished is a move whose source disappeared mid-operation.
	OutcomeVanished Outcome = "error-not-found"
	// OutcomeFailed is any other OS-level move failure.
	OutcomeFailed Outcome = "error-other"
)

// IsError reports whether the outcome represents a failed move rather than a
// completed or deliberately skipped one.
func (o Outcome) IsError() bool {
	switch o {
	case OutcomePermission, OutcomeVanished, OutcomeFailed:
		return true
	}
	return false
}

// Record captures the outcome of classifying and possibly moving one file.
// Records are emitted as they are produced and are not retained beyond the
// run except by the history sink.
type Record struct {
	File     string
	Category string
	Outcome  Outcome
	Detail   string
}

// Sink receives operation records as they are produced. Implementations must
// tolerate failure silently; recording history never aborts a run.
type Sink interface {
	Record(ctx context.Context, dir string, dryRun bool, rec Record)
}
