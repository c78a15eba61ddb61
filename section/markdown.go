package section

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"

	"github.com/tsawler/dirdoc/model"
)

// markdownHeadings returns a strategy that treats every level-two ATX heading
// as a section start. Headings inside fenced or indented code are ignored, as
// is the heading whose title equals guide. When probe is positive each start
// takes as its description the first content line within probe lines of the
// heading; zero leaves descriptions empty.
func markdownHeadings(guide string, probe int) Strategy {
	return func(lines []string) []model.Start {
		if len(lines) == 0 {
			return nil
		}
		src := []byte(strings.Join(lines, "\n"))
		doc := goldmark.DefaultParser().Parse(gmtext.NewReader(src))

		var starts []model.Start
		_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if !entering {
				return ast.WalkContinue, nil
			}
			h, ok := n.(*ast.Heading)
			if !ok {
				return ast.WalkContinue, nil
			}
			if h.Level != 2 || h.Lines().Len() == 0 {
				return ast.WalkSkipChildren, nil
			}

			line := bytes.Count(src[:h.Lines().At(0).Start], []byte{'\n'}) + 1
			m := patterns.heading.FindStringSubmatch(lines[line-1])
			if m == nil {
				// setext heading or heading nested in a container
				return ast.WalkSkipChildren, nil
			}
			title := strings.TrimSpace(m[patterns.heading.SubexpIndex("title")])
			if title == guide {
				return ast.WalkSkipChildren, nil
			}
			starts = append(starts, model.Start{Line: line, Title: title})
			return ast.WalkSkipChildren, nil
		})

		if probe > 0 {
			addSummaries(lines, starts, probe)
		}
		return starts
	}
}

// addSummaries fills each start's description with the first content line
// within probe lines of the heading, without a leading bullet marker.
func addSummaries(lines []string, starts []model.Start, probe int) {
	for i := range starts {
		end := len(lines)
		if i+1 < len(starts) {
			end = starts[i+1].Line - 1
		}
		for p := starts[i].Line; p <= end && p < starts[i].Line+probe; p++ {
			s := strings.TrimSpace(lines[p-1])
			if s == "" || strings.HasPrefix(s, "#") {
				continue
			}
			if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "*") {
				s = strings.TrimSpace(s[1:])
			}
			if s != "" {
				starts[i].Description = s
				break
			}
		}
	}
}
