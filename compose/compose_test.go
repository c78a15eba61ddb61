package compose

import (
	"reflect"
	"strings"
	"testing"

	"github.com/tsawler/dirdoc/catalog"
	"github.com/tsawler/dirdoc/model"
	"github.com/tsawler/dirdoc/patch"
	"github.com/tsawler/dirdoc/text"
)

func TestCompose(t *testing.T) {
	doc := Compose("Title", "Guide", []Block{
		{Heading: "One", Body: []string{"a", "b"}},
		{Heading: "Two", Body: []string{"- c"}},
	})

	want := []string{
		"# Title",
		"",
		"## Guide",
		"- 07~10: One",
		"- 11~12: Two",
		"",
		"## One",
		"a",
		"b",
		"",
		"## Two",
		"- c",
	}
	if got := doc.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
	if !strings.HasSuffix(doc.String(), "- c\n") || strings.HasSuffix(doc.String(), "\n\n") {
		t.Errorf("String() must end with exactly one newline: %q", doc.String())
	}

	wantGuide := []model.Range{{Title: "One", Start: 7, End: 10}, {Title: "Two", Start: 11, End: 12}}
	if !reflect.DeepEqual(doc.Guide(), wantGuide) {
		t.Errorf("Guide() = %+v, want %+v", doc.Guide(), wantGuide)
	}
}

func TestComposeWidth(t *testing.T) {
	body := make([]string, 120)
	for i := range body {
		body[i] = "- line"
	}
	doc := Compose("Long", "Guide", []Block{{Heading: "A", Body: []string{"x"}}, {Heading: "B", Body: body}})
	lines := doc.Lines()
	if lines[3] != "- 007~009: A" {
		t.Errorf("guide line = %q, want three-digit padding", lines[3])
	}
	if lines[4] != "- 010~130: B" {
		t.Errorf("guide line = %q", lines[4])
	}
}

func TestForEntryDefaults(t *testing.T) {
	labels := catalog.DefaultLabels()
	doc := ForEntry(catalog.Entry{Title: "Docs", Purpose: []string{"Guides."}}, labels, nil)
	lines := doc.Lines()

	section := func(heading string) []string {
		for _, r := range doc.Guide() {
			if r.Title == heading {
				var body []string
				for _, l := range lines[r.Start : r.End] {
					if l != "" {
						body = append(body, l)
					}
				}
				return body
			}
		}
		t.Fatalf("no block %q", heading)
		return nil
	}

	tests := []struct {
		heading string
		want    []string
	}{
		{labels.Purpose, []string{"Guides."}},
		{labels.Responsibilities, []string{"- " + labels.NoResponsibilities}},
		{labels.Structure, []string{"- " + labels.NoStructure}},
		{labels.FileMap, []string{"- " + labels.NoFiles}},
		{labels.Centralization, []string{"- " + labels.DefaultCentralization}},
		{labels.Rules, []string{"- " + labels.DefaultRules}},
		{labels.References, []string{"- " + labels.DefaultReferences}},
	}
	for _, tt := range tests {
		if got := section(tt.heading); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("block %q = %q, want %q", tt.heading, got, tt.want)
		}
	}
}

func TestGuideMatchesPatcher(t *testing.T) {
	labels := catalog.DefaultLabels()
	entry := catalog.Entry{
		Title:            "API",
		Purpose:          []string{"Handlers.", "Middleware."},
		Responsibilities: []string{"Validate", "Route"},
		Rules:            []string{"Keep handlers thin"},
	}
	fileMap := []string{"- a.ts 01~10 Setup", "- b.ts 01~04 Run - main loop"}
	doc := ForEntry(entry, labels, fileMap)

	lines := text.Split(doc.String())
	got := patch.HeadingRanges(lines, labels.GuideHeading)
	if !reflect.DeepEqual(got, doc.Guide()) {
		t.Errorf("HeadingRanges() = %+v, want %+v", got, doc.Guide())
	}

	// the line guide of a composed document is already what the patcher writes
	if patched := patch.LineGuide(lines, labels.GuideHeading); !reflect.DeepEqual(patched, lines) {
		t.Errorf("LineGuide() changed a composed document:\n%s", strings.Join(patched, "\n"))
	}
}

func TestForEntryEmptyPurpose(t *testing.T) {
	labels := catalog.DefaultLabels()
	lines := ForEntry(catalog.Entry{Path: "x", Title: "X"}, labels, nil).Lines()

	for i, l := range lines {
		if l == "## "+labels.Purpose {
			if got := lines[i+1]; got != "- "+labels.NoPurpose {
				t.Errorf("purpose body = %q, want %q", got, "- "+labels.NoPurpose)
			}
			return
		}
	}
	t.Fatal("no purpose heading")
}

func TestGuideCountsHeadingsInBodies(t *testing.T) {
	labels := catalog.DefaultLabels()
	entry := catalog.Entry{Title: "X", Purpose: []string{"## not a block", "text"}}
	doc := ForEntry(entry, labels, nil)

	if n := len(doc.Guide()); n != 8 {
		t.Fatalf("len(Guide()) = %d, want 8", n)
	}
	if got := doc.Guide()[1].Title; got != "not a block" {
		t.Errorf("Guide()[1].Title = %q", got)
	}

	lines := text.Split(doc.String())
	if got := patch.HeadingRanges(lines, labels.GuideHeading); !reflect.DeepEqual(got, doc.Guide()) {
		t.Errorf("HeadingRanges() = %+v, want %+v", got, doc.Guide())
	}
	if patched := patch.LineGuide(lines, labels.GuideHeading); !reflect.DeepEqual(patched, lines) {
		t.Errorf("LineGuide() changed a composed document:\n%s", strings.Join(patched, "\n"))
	}
}
