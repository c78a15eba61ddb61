package section

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/dirdoc/model"
)

// htmlComments returns the starts declared by "<!-- SECTION: title - desc -->"
// comments. The start line is the line holding the comment opener; when two
// markers open on the same line only the first counts.
func htmlComments(lines []string) []model.Start {
	if len(lines) == 0 {
		return nil
	}
	z := html.NewTokenizer(strings.NewReader(strings.Join(lines, "\n")))

	var starts []model.Start
	line := 1
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// io.EOF or a tokenizer error; either way there is nothing more to scan
			break
		}
		// Raw is only valid until the next call on the tokenizer.
		newlines := bytes.Count(z.Raw(), []byte{'\n'})

		if tt == html.CommentToken && (len(starts) == 0 || starts[len(starts)-1].Line != line) {
			data := strings.Join(strings.Fields(string(z.Text())), " ")
			if title, desc, ok := markerGroups(patterns.htmlMarker, data); ok {
				starts = append(starts, model.Start{Line: line, Title: title, Description: desc})
			}
		}
		line += newlines
	}
	return starts
}
