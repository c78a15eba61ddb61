package section

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/tsawler/dirdoc/format"
	"github.com/tsawler/dirdoc/model"
)

func fill(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("x%d := %d", i, i)
	}
	return lines
}

func TestExtractMarkerScenario(t *testing.T) {
	lines := fill(60)
	lines[9] = "// SECTION: Init - setup"
	lines[39] = "/* SECTION: Loop */"

	got := NewExtractor().Extract(format.Script, lines)
	want := []model.Section{
		{StartLine: 10, EndLine: 39, Title: "Init", Description: "setup"},
		{StartLine: 40, EndLine: 60, Title: "Loop"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %+v, want %+v", got, want)
	}
}

func TestExtractPartitionsFromFirstStart(t *testing.T) {
	lines := fill(100)
	for _, i := range []int{4, 5, 30, 77, 99} {
		lines[i] = "# SECTION: part " + fmt.Sprint(i)
	}

	sections := NewExtractor().Extract(format.Python, lines)
	if len(sections) != 5 {
		t.Fatalf("got %d sections, want 5", len(sections))
	}
	if sections[0].StartLine != 5 {
		t.Errorf("first start = %d, want 5", sections[0].StartLine)
	}
	for i := 1; i < len(sections); i++ {
		if sections[i].StartLine != sections[i-1].EndLine+1 {
			t.Errorf("gap between %+v and %+v", sections[i-1], sections[i])
		}
	}
	if last := sections[len(sections)-1]; last.EndLine != 100 || last.Len() != 1 {
		t.Errorf("last section = %+v, want single line 100", last)
	}
}

func TestExtractScriptFallback(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []model.Section
	}{
		{
			name: "exports win over definitions",
			src: `import x from "y"

// Builds the thing.
export function build() {}
function helper() {}
/**
 * Default component.
 */
export default class {}`,
			want: []model.Section{
				{StartLine: 4, EndLine: 8, Title: "export build", Description: "Builds the thing."},
				{StartLine: 9, EndLine: 9, Title: "export default export", Description: "Default component."},
			},
		},
		{
			name: "definitions when nothing is exported",
			src: `// counter
let count = 0

function tick() {}
class Clock {}`,
			want: []model.Section{
				{StartLine: 2, EndLine: 3, Title: "let count", Description: "counter"},
				{StartLine: 4, EndLine: 4, Title: "function tick"},
				{StartLine: 5, EndLine: 5, Title: "class Clock"},
			},
		},
		{
			name: "markers win over exports",
			src: `export const a = 1
// SECTION: Later
export const b = 2`,
			want: []model.Section{
				{StartLine: 2, EndLine: 3, Title: "Later"},
			},
		},
		{
			name: "nothing recognizable",
			src:  "console.log(1)\n",
		},
	}

	ex := NewExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ex.Extract(format.Script, strings.Split(tt.src, "\n"))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestExtractPythonFallback(t *testing.T) {
	src := `import os

# Retry budget
MAX_RETRIES = 3

class Worker:
    # runs jobs
    def run(self):
        pass`
	got := NewExtractor().Extract(format.Python, strings.Split(src, "\n"))
	want := []model.Section{
		{StartLine: 4, EndLine: 5, Title: "MAX_RETRIES", Description: "Retry budget"},
		{StartLine: 6, EndLine: 7, Title: "class Worker"},
		{StartLine: 8, EndLine: 9, Title: "def run", Description: "runs jobs"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %+v, want %+v", got, want)
	}
}

func TestExtractGoFallback(t *testing.T) {
	src := `package demo

const (
	a = 1
)

// Server serves.
type Server struct{}

// Start starts it.
func (s *Server) Start() error { return nil }

func New() *Server { return &Server{} }

var Default = New()`
	got := NewExtractor().Extract(format.Go, strings.Split(src, "\n"))
	var titles []string
	for _, s := range got {
		titles = append(titles, s.Title)
	}
	want := []string{"const block", "type Server", "method Server.Start", "func New", "var Default"}
	if !reflect.DeepEqual(titles, want) {
		t.Errorf("titles = %q, want %q", titles, want)
	}
	if got[1].Description != "Server serves." {
		t.Errorf("type description = %q", got[1].Description)
	}
}

func TestExtractMarkdown(t *testing.T) {
	src := "# Title\n" +
		"\n" +
		"## 라인 가이드\n" +
		"- 01~02: x\n" +
		"\n" +
		"## First\n" +
		"- summary line\n" +
		"```\n" +
		"## not a heading\n" +
		"```\n" +
		"## Second\n" +
		"body"
	lines := strings.Split(src, "\n")

	got := NewExtractor().Extract(format.Markdown, lines)
	want := []model.Section{
		{StartLine: 6, EndLine: 10, Title: "First"},
		{StartLine: 11, EndLine: 12, Title: "Second"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %+v, want %+v", got, want)
	}

	cfg := DefaultConfig()
	cfg.MarkdownSummaries = true
	got = NewExtractorWithConfig(cfg).Extract(format.Markdown, lines)
	if got[0].Description != "summary line" || got[1].Description != "body" {
		t.Errorf("summaries = %q, %q", got[0].Description, got[1].Description)
	}
}

func TestExtractStylesheetAndHTML(t *testing.T) {
	css := strings.Split("body {}\n/* SECTION: Grid - layout */\n.grid {}", "\n")
	got := NewExtractor().Extract(format.Stylesheet, css)
	want := []model.Section{{StartLine: 2, EndLine: 3, Title: "Grid", Description: "layout"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("stylesheet = %+v, want %+v", got, want)
	}

	page := strings.Split("<html>\n<body>\n<!--\n  SECTION: Nav - links\n-->\n<nav></nav>\n<!-- SECTION: Footer -->\n</body>\n</html>", "\n")
	got = NewExtractor().Extract(format.HTML, page)
	want = []model.Section{
		{StartLine: 3, EndLine: 6, Title: "Nav", Description: "links"},
		{StartLine: 7, EndLine: 9, Title: "Footer"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("html = %+v, want %+v", got, want)
	}
}

func TestExtractHTMLMarkersOnOneLine(t *testing.T) {
	page := []string{"<p>x</p>", "<!-- SECTION: A --><!-- SECTION: B -->", "<p>y</p>"}
	got := NewExtractor().Extract(format.HTML, page)
	want := []model.Section{{StartLine: 2, EndLine: 3, Title: "A"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %+v, want %+v", got, want)
	}
}

func TestExtractUnknownFamily(t *testing.T) {
	if got := NewExtractor().Extract(format.Unknown, []string{"// SECTION: x"}); got != nil {
		t.Errorf("Extract(Unknown) = %+v, want nil", got)
	}
}

func TestCompile(t *testing.T) {
	if got := Compile(nil, 10); got != nil {
		t.Errorf("Compile(nil) = %+v", got)
	}
	got := Compile([]model.Start{{Line: 3, Title: "  ", Description: " d "}}, 5)
	want := []model.Section{{StartLine: 3, EndLine: 5, Title: Untitled, Description: "d"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Compile() = %+v, want %+v", got, want)
	}

	starts := []model.Start{{Line: 2, Title: "a"}, {Line: 2, Title: "b"}, {Line: 4, Title: "c"}}
	got = Compile(starts, 6)
	want = []model.Section{{StartLine: 2, EndLine: 3, Title: "a"}, {StartLine: 4, EndLine: 6, Title: "c"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Compile(same line) = %+v, want %+v", got, want)
	}
	if len(starts) != 3 {
		t.Errorf("Compile modified its input")
	}
}

func TestPrecedingComment(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		line  int
		want  string
	}{
		{"line comments", []string{"// a", "// b", "x"}, 3, "a b"},
		{"blank before first comment", []string{"// a", "", "x"}, 3, "a"},
		{"blank after comment stops", []string{"// old", "", "// a", "x"}, 4, "a"},
		{"block then line", []string{"/* block */", "// line", "x"}, 3, "block line"},
		{"multi-line block", []string{"/**", " * one", " * two", " */", "x"}, 5, "one two"},
		{"code stops", []string{"y()", "x"}, 2, ""},
		{"first line", []string{"x"}, 1, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := precedingComment(tt.lines, tt.line); got != tt.want {
				t.Errorf("precedingComment() = %q, want %q", got, tt.want)
			}
		})
	}
}
