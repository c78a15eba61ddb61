package compose

import (
	"fmt"
	"strings"

	"github.com/tsawler/dirdoc/catalog"
	"github.com/tsawler/dirdoc/model"
)

// Block is one "## " section of a generated document.
type Block struct {
	Heading string
	Body    []string
}

// Document is a composed document with its line guide resolved.
type Document struct {
	lines []string
	guide []model.Range
}

// Lines returns the document lines without a trailing blank line.
func (d *Document) Lines() []string {
	return append([]string(nil), d.lines...)
}

// Guide returns the measured range of every heading below the guide, in
// document order.
func (d *Document) Guide() []model.Range {
	return append([]model.Range(nil), d.guide...)
}

// String returns the document text, ending in a single newline.
func (d *Document) String() string {
	return strings.Join(d.lines, "\n") + "\n"
}

// hole marks where a block's range goes in the line guide. NUL never occurs
// in decoded text.
func hole(i int) string {
	return fmt.Sprintf("\x00guide:%d\x00", i)
}

// Compose lays out a document with a line guide under guideHeading followed
// by blocks, and fills the guide with the range of every "## " line in the
// rendered blocks. A body line that starts with "## " is measured as a block
// of its own, the same way the root patcher would see it.
func Compose(title, guideHeading string, blocks []Block) *Document {
	var body []string
	for _, b := range blocks {
		body = append(body, "## "+b.Heading)
		body = append(body, b.Body...)
		body = append(body, "")
	}
	for len(body) > 0 && body[len(body)-1] == "" {
		body = body[:len(body)-1]
	}

	var marks []int
	for i, line := range body {
		if strings.HasPrefix(line, "## ") && strings.TrimSpace(line) != "## "+guideHeading {
			marks = append(marks, i)
		}
	}

	lines := []string{"# " + title, "", "## " + guideHeading}
	guideStart := len(lines)
	for i, m := range marks {
		lines = append(lines, fmt.Sprintf("- %s: %s", hole(i), strings.TrimSpace(body[m][3:])))
	}
	lines = append(lines, "")
	offset := len(lines)
	lines = append(lines, body...)

	total := len(lines)
	width := model.Width(total)
	guide := make([]model.Range, len(marks))
	for i, m := range marks {
		start := offset + m + 1
		end := total
		if i+1 < len(marks) {
			end = offset + marks[i+1]
		}
		guide[i] = model.Range{Title: strings.TrimSpace(body[m][3:]), Start: start, End: end}

		idx := guideStart + i
		lines[idx] = strings.Replace(lines[idx], hole(i), model.FormatSpan(start, end, width), 1)
	}

	return &Document{lines: lines, guide: guide}
}

// ForEntry composes the document of a catalog entry. fileMap holds the
// rendered file map bullets; when it is empty the no-files label is used.
func ForEntry(e catalog.Entry, labels catalog.Labels, fileMap []string) *Document {
	if len(fileMap) == 0 {
		fileMap = []string{"- " + labels.NoFiles}
	}
	blocks := []Block{
		{Heading: labels.Purpose, Body: purpose(e.Purpose, labels.NoPurpose)},
		{Heading: labels.Responsibilities, Body: bullets(e.Responsibilities, labels.NoResponsibilities)},
		{Heading: labels.Structure, Body: bullets(e.Structure, labels.NoStructure)},
		{Heading: labels.FileMap, Body: fileMap},
		{Heading: labels.Centralization, Body: bullets(e.Centralization, labels.DefaultCentralization)},
		{Heading: labels.Rules, Body: bullets(e.Rules, labels.DefaultRules)},
		{Heading: labels.References, Body: bullets(e.References, labels.DefaultReferences)},
	}
	return Compose(e.Title, labels.GuideHeading, blocks)
}

func bullets(items []string, fallback string) []string {
	if len(items) == 0 {
		return []string{"- " + fallback}
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = "- " + item
	}
	return out
}

// purpose keeps authored purpose lines as written.
func purpose(lines []string, fallback string) []string {
	if len(lines) == 0 {
		return []string{"- " + fallback}
	}
	return append([]string(nil), lines...)
}
