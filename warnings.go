package dirdoc

import "strings"

// Warning is a non-fatal problem found while extracting sections. The result
// returned next to it is still usable.
type Warning struct {
	// Path is the file the warning is about.
	Path string

	// Message describes the problem.
	Message string
}

// String returns "path: message", or just the message when Path is empty.
func (w Warning) String() string {
	if w.Path == "" {
		return w.Message
	}
	return w.Path + ": " + w.Message
}

// FormatWarnings joins warnings into a single line separated by "; ".
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
