package docgen

import (
	"fmt"
	"strings"

	"github.com/tsawler/dirdoc"
)

// Status is the outcome for one document.
type Status int

const (
	// StatusUnchanged means the document already had the generated content.
	StatusUnchanged Status = iota
	// StatusWritten means the document was written, or would be in a dry run.
	StatusWritten
	// StatusSkipped means the document was not considered, for example a
	// missing root document.
	StatusSkipped
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusWritten:
		return "written"
	case StatusSkipped:
		return "skipped"
	default:
		return "unchanged"
	}
}

// Result is the outcome for one document path.
type Result struct {
	// Path is relative to the project root, in slash form.
	Path   string
	Status Status
	// Reason explains a skip.
	Reason string
}

// Summary collects the results of a run.
type Summary struct {
	DryRun   bool
	Results  []Result
	Warnings []dirdoc.Warning
}

func (s *Summary) count(status Status) int {
	n := 0
	for _, r := range s.Results {
		if r.Status == status {
			n++
		}
	}
	return n
}

// Changed returns how many documents were written, or would be in a dry run.
func (s *Summary) Changed() int { return s.count(StatusWritten) }

// Unchanged returns how many documents were already up to date.
func (s *Summary) Unchanged() int { return s.count(StatusUnchanged) }

// Skipped returns how many documents were skipped.
func (s *Summary) Skipped() int { return s.count(StatusSkipped) }

// String returns a one-line report such as "3 written, 5 unchanged, 0 skipped".
func (s *Summary) String() string {
	verb := "written"
	if s.DryRun {
		verb = "stale"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d %s, %d unchanged, %d skipped", s.Changed(), verb, s.Unchanged(), s.Skipped())
	if len(s.Warnings) > 0 {
		fmt.Fprintf(&b, ", %d warnings", len(s.Warnings))
	}
	return b.String()
}
