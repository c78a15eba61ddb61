package section

import (
	"strings"

	"github.com/tsawler/dirdoc/model"
)

// Untitled replaces a title that is empty after trimming.
const Untitled = "(untitled)"

// Compile turns ordered starts into sections. Start i covers lines
// [line_i, line_{i+1}-1] and the last start covers through total. Lines before
// the first start belong to no section. A start on the same line as the one
// before it is dropped.
func Compile(starts []model.Start, total int) []model.Section {
	if len(starts) == 0 {
		return nil
	}
	starts = dedupeLines(starts)

	sections := make([]model.Section, 0, len(starts))
	for i, s := range starts {
		end := total
		if i+1 < len(starts) {
			end = starts[i+1].Line - 1
		}
		title := strings.TrimSpace(s.Title)
		if title == "" {
			title = Untitled
		}
		sections = append(sections, model.Section{
			StartLine:   s.Line,
			EndLine:     end,
			Title:       title,
			Description: strings.TrimSpace(s.Description),
		})
	}
	return sections
}

func dedupeLines(starts []model.Start) []model.Start {
	out := starts[:1:1]
	for _, s := range starts[1:] {
		if s.Line != out[len(out)-1].Line {
			out = append(out, s)
		}
	}
	return out
}
