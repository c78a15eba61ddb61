package dirdoc

import (
	"fmt"

	"github.com/tsawler/dirdoc/format"
	"github.com/tsawler/dirdoc/model"
	"github.com/tsawler/dirdoc/section"
	"github.com/tsawler/dirdoc/text"
)

// Extractor provides a fluent interface for finding the sections of one file.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string
	lines    []string
	loaded   bool // true if lines hold the file content

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Extractor with its own options.
// Each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		lines:    e.lines,
		loaded:   e.loaded,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// load reads and decodes the file if it has not been read yet.
func (e *Extractor) load() ([]string, error) {
	if e.loaded {
		return e.lines, nil
	}
	if e.filename == "" {
		return nil, fmt.Errorf("no filename specified")
	}
	return text.ReadFile(e.filename)
}

// Family forces the syntax family instead of detecting it from the file name.
//
// Example:
//
//	sections, _, err := dirdoc.Open("Jakefile").Family(format.Script).Sections()
func (e *Extractor) Family(f format.Family) *Extractor {
	newExt := e.clone()
	newExt.options.family = f
	return newExt
}

// GuideHeading sets the reserved Markdown heading that is never reported as
// a section.
func (e *Extractor) GuideHeading(heading string) *Extractor {
	newExt := e.clone()
	if heading == "" {
		newExt.err = fmt.Errorf("guide heading must not be empty")
		return newExt
	}
	newExt.options.config.GuideHeading = heading
	return newExt
}

// MarkdownSummaries fills Markdown section descriptions with the first
// content line below each heading.
func (e *Extractor) MarkdownSummaries() *Extractor {
	newExt := e.clone()
	newExt.options.config.MarkdownSummaries = true
	return newExt
}

// WithConfig replaces the recognizer configuration.
func (e *Extractor) WithConfig(config section.Config) *Extractor {
	newExt := e.clone()
	newExt.options.config = config
	return newExt
}

// Lines returns the decoded lines of the file.
func (e *Extractor) Lines() ([]string, error) {
	if e.err != nil {
		return nil, e.err
	}
	lines, err := e.load()
	if err != nil {
		return nil, err
	}
	return append([]string(nil), lines...), nil
}

// DetectedFamily returns the family used for the file: the forced family if
// one was set, otherwise the one detected from its name and first line.
func (e *Extractor) DetectedFamily() (format.Family, error) {
	if e.err != nil {
		return format.Unknown, e.err
	}
	if e.options.family != format.Unknown {
		return e.options.family, nil
	}
	lines, err := e.load()
	if err != nil {
		return format.Unknown, err
	}
	return detect(e.filename, lines), nil
}

// Sections returns the sections of the file in line order.
//
// Returns the sections, any warnings encountered, and an error if the file
// could not be read or is not UTF-8 text. A file of an unsupported type or
// one without recognizable sections yields no sections and a warning.
//
// Example:
//
//	sections, warnings, err := dirdoc.Open("app.ts").Sections()
//	for _, s := range sections {
//	    fmt.Println(s.Span(2), s.Title)
//	}
func (e *Extractor) Sections() ([]model.Section, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	lines, err := e.load()
	if err != nil {
		return nil, nil, err
	}

	family := e.options.family
	if family == format.Unknown {
		family = detect(e.filename, lines)
	}
	if family == format.Unknown {
		return nil, []Warning{{Path: e.filename, Message: "unsupported file type"}}, nil
	}

	sections := section.NewExtractorWithConfig(e.options.config).Extract(family, lines)
	if len(sections) == 0 {
		return nil, []Warning{{Path: e.filename, Message: fmt.Sprintf("no %s sections found", family)}}, nil
	}
	return sections, nil, nil
}

func detect(filename string, lines []string) format.Family {
	first := ""
	if len(lines) > 0 {
		first = lines[0]
	}
	return format.DetectFile(filename, first)
}
