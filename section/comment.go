package section

import "strings"

// cleanCommentLine strips comment punctuation ("//", "/*", "*", "*/") and
// surrounding whitespace from one line of a comment.
func cleanCommentLine(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(strings.TrimLeft(s, "/*"))
	s = strings.TrimSpace(strings.TrimRight(s, "*/"))
	return s
}

// precedingComment collects the comment directly above the 1-based line.
// Blank lines are skipped until the first comment line is found; after that a
// blank line ends the walk. A line ending in "*/" is read back to its "/*"
// opener and the block text comes before any line comments already collected.
func precedingComment(lines []string, line int) string {
	var collected []string
	found := false

	for idx := line - 2; idx >= 0; idx-- {
		stripped := strings.TrimSpace(lines[idx])
		switch {
		case stripped == "":
			if !found {
				continue
			}
			return joinComment(collected)
		case strings.HasPrefix(stripped, "//"):
			collected = append([]string{strings.TrimSpace(stripped[2:])}, collected...)
			found = true
		case strings.HasSuffix(stripped, "*/"):
			block := blockCommentEndingAt(lines, idx)
			return joinComment(append(block, collected...))
		default:
			return joinComment(collected)
		}
	}
	return joinComment(collected)
}

// blockCommentEndingAt walks back from the closing line at idx to the line that
// opens the block and returns the cleaned, non-empty lines in order.
func blockCommentEndingAt(lines []string, idx int) []string {
	start := idx
	for start >= 0 && !strings.HasPrefix(strings.TrimSpace(lines[start]), "/*") {
		start--
	}
	if start < 0 {
		start = 0
	}

	var out []string
	for _, l := range lines[start : idx+1] {
		if c := cleanCommentLine(l); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// precedingHashComment collects the "#" comment lines directly above the
// 1-based line, with the same blank-line rule as precedingComment.
func precedingHashComment(lines []string, line int) string {
	var collected []string

	for idx := line - 2; idx >= 0; idx-- {
		stripped := strings.TrimSpace(lines[idx])
		if stripped == "" {
			if len(collected) == 0 {
				continue
			}
			break
		}
		if !strings.HasPrefix(stripped, "#") {
			break
		}
		collected = append([]string{strings.TrimSpace(strings.TrimLeft(stripped, "#"))}, collected...)
	}
	return joinComment(collected)
}

func joinComment(parts []string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
