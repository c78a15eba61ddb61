package model

import "fmt"

// Start marks the first line of a section.
type Start struct {
	Line        int // 1-based
	Title       string
	Description string
}

// Section is a contiguous, titled line range of one file.
type Section struct {
	StartLine   int
	EndLine     int
	Title       string
	Description string
}

// Len returns the number of lines covered by the section.
func (s Section) Len() int {
	return s.EndLine - s.StartLine + 1
}

// Span formats the section range with the given zero-pad width.
func (s Section) Span(width int) string {
	return FormatSpan(s.StartLine, s.EndLine, width)
}

// Range is a titled span of a document.
type Range struct {
	Title string
	Start int
	End   int
}

// Width returns the zero-pad width for line numbers up to max:
// 2 digits under 100, 3 under 1000, otherwise 4.
func Width(max int) int {
	switch {
	case max >= 1000:
		return 4
	case max >= 100:
		return 3
	default:
		return 2
	}
}

// FormatSpan renders "start~end" with both numbers zero-padded to width.
func FormatSpan(start, end, width int) string {
	return fmt.Sprintf("%0*d~%0*d", width, start, width, end)
}

// MaxEnd returns the largest EndLine in sections, or 0.
func MaxEnd(sections []Section) int {
	max := 0
	for _, s := range sections {
		if s.EndLine > max {
			max = s.EndLine
		}
	}
	return max
}
