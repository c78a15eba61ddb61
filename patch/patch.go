package patch

import (
	"fmt"
	"strings"

	"github.com/tsawler/dirdoc/model"
)

// Options configures Document.
type Options struct {
	// GuideHeading is the title of the line guide heading.
	GuideHeading string

	// TreeHeading is the title of the heading above the tree fence.
	TreeHeading string

	// Tree is the new fence interior. Nil leaves the tree region alone.
	Tree []string
}

// Document patches the directory tree and then the line guide.
func Document(lines []string, opts Options) []string {
	out := lines
	if opts.Tree != nil {
		out = DirectoryTree(out, opts.TreeHeading, opts.Tree)
	}
	return LineGuide(out, opts.GuideHeading)
}

func isHeading(line string) bool {
	return strings.HasPrefix(line, "## ")
}

func isGuide(line, guideHeading string) bool {
	return strings.TrimSpace(line) == "## "+guideHeading
}

// HeadingRanges returns the range of every "## " heading except the guide
// heading. Each range ends one line before the next heading, the last at the
// final line.
func HeadingRanges(lines []string, guideHeading string) []model.Range {
	var ranges []model.Range
	for i, line := range lines {
		if !isHeading(line) || isGuide(line, guideHeading) {
			continue
		}
		if n := len(ranges); n > 0 {
			ranges[n-1].End = i
		}
		ranges = append(ranges, model.Range{
			Title: strings.TrimSpace(line[3:]),
			Start: i + 1,
			End:   len(lines),
		})
	}
	return ranges
}

// formatGuideNumber pads numbers under 100 to two digits.
func formatGuideNumber(n int) string {
	if n < 100 {
		return fmt.Sprintf("%02d", n)
	}
	return fmt.Sprint(n)
}

// LineGuide rewrites the bullets under the guide heading. The bullet run is
// replaced first and the headings are measured afterwards, so a changed
// heading count does not shift the recorded positions. Without a guide
// heading or without any other heading, lines are returned unchanged.
func LineGuide(lines []string, guideHeading string) []string {
	guide := -1
	for i, line := range lines {
		if isGuide(line, guideHeading) {
			guide = i
			break
		}
	}
	if guide < 0 {
		return lines
	}
	k := len(HeadingRanges(lines, guideHeading))
	if k == 0 {
		return lines
	}

	start := guide + 1
	end := start
	for end < len(lines) && strings.HasPrefix(lines[end], "- ") {
		end++
	}

	out := make([]string, 0, len(lines)-(end-start)+k)
	out = append(out, lines[:start]...)
	for i := 0; i < k; i++ {
		out = append(out, "- ")
	}
	out = append(out, lines[end:]...)

	for i, r := range HeadingRanges(out, guideHeading) {
		out[start+i] = fmt.Sprintf("- %s~%s: %s", formatGuideNumber(r.Start), formatGuideNumber(r.End), r.Title)
	}
	return out
}

// DirectoryTree replaces the interior of the first fenced block after the tree
// heading with tree. The fence lines themselves are kept as written. Without
// the heading or a complete fence, lines are returned unchanged.
func DirectoryTree(lines []string, treeHeading string, tree []string) []string {
	heading := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "## "+treeHeading {
			heading = i
			break
		}
	}
	if heading < 0 {
		return lines
	}

	opening := -1
	for i := heading + 1; i < len(lines); i++ {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
			opening = i
			break
		}
	}
	if opening < 0 {
		return lines
	}
	closing := -1
	for i := opening + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "```" {
			closing = i
			break
		}
	}
	if closing < 0 {
		return lines
	}

	out := make([]string, 0, len(lines)-(closing-opening-1)+len(tree))
	out = append(out, lines[:opening+1]...)
	out = append(out, tree...)
	out = append(out, lines[closing:]...)
	return out
}
