// Package dirdoc provides a fluent API for finding the titled line ranges
// (sections) of source files and documents.
//
// Basic usage:
//
//	sections, warnings, err := dirdoc.Open("src/app.ts").Sections()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", dirdoc.FormatWarnings(warnings))
//	}
//
// With options:
//
//	sections, _, err := dirdoc.Open("docs/guide.md").
//	    MarkdownSummaries().
//	    Sections()
//
// Batch generation of per-directory documents lives in the docgen package;
// the lower-level section and filemap packages are also available.
package dirdoc

// Open returns an Extractor for the named file. Nothing is read until a
// terminal operation such as Sections is called.
//
// Example:
//
//	sections, warnings, err := dirdoc.Open("main.go").Sections()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromLines returns an Extractor over lines that were already read. The name
// is only used for family detection and warnings.
//
// Example:
//
//	lines, err := text.ReadFile("main.go")
//	if err != nil {
//	    // handle error
//	}
//	sections, _, err := dirdoc.FromLines("main.go", lines).Sections()
func FromLines(name string, lines []string) *Extractor {
	return &Extractor{
		filename: name,
		lines:    append([]string(nil), lines...),
		loaded:   true,
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	lines := dirdoc.Must(dirdoc.Open("main.go").Lines())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustSections is a helper that wraps a call to Sections() and panics if the
// error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	sections := dirdoc.MustSections(dirdoc.Open("main.go").Sections())
func MustSections[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
