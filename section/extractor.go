package section

import (
	"github.com/tsawler/dirdoc/format"
	"github.com/tsawler/dirdoc/model"
)

// DefaultGuideHeading is the heading of a generated document's line guide.
// Markdown headings with this title are never sections.
const DefaultGuideHeading = "라인 가이드"

// Config holds section extraction settings.
type Config struct {
	// GuideHeading is the reserved Markdown heading that is not a section.
	// Default: DefaultGuideHeading
	GuideHeading string

	// MarkdownSummaries fills Markdown section descriptions from the
	// content below each heading.
	// Default: false
	MarkdownSummaries bool

	// SummaryProbe is how many lines from a heading, the heading included,
	// are searched for a summary.
	// Default: 10
	SummaryProbe int
}

// DefaultConfig returns the default extraction configuration.
func DefaultConfig() Config {
	return Config{
		GuideHeading: DefaultGuideHeading,
		SummaryProbe: 10,
	}
}

// Extractor finds sections in the lines of a file.
type Extractor struct {
	config Config
}

// NewExtractor creates an extractor with default configuration.
func NewExtractor() *Extractor {
	return &Extractor{config: DefaultConfig()}
}

// NewExtractorWithConfig creates an extractor with custom configuration.
func NewExtractorWithConfig(config Config) *Extractor {
	return &Extractor{config: config}
}

// Config returns the extractor's configuration.
func (e *Extractor) Config() Config {
	return e.config
}

// Chain returns the strategies tried for a family, in order. The first
// strategy that finds any start wins.
func (e *Extractor) Chain(family format.Family) []Strategy {
	switch family {
	case format.Script:
		return []Strategy{
			commentMarkers(patterns.lineMarker, patterns.blockMarker),
			declarations(precedingComment, scriptExport),
			declarations(precedingComment, classDecl, scriptFunction, scriptVariable),
		}
	case format.Go:
		return []Strategy{
			commentMarkers(patterns.lineMarker, patterns.blockMarker),
			declarations(precedingComment, goFunc, goType, goValue),
		}
	case format.Python:
		return []Strategy{
			commentMarkers(patterns.hashMarker),
			declarations(precedingHashComment, classDecl, pythonDef, pythonConstant),
		}
	case format.Markdown:
		probe := 0
		if e.config.MarkdownSummaries {
			probe = e.config.SummaryProbe
		}
		return []Strategy{markdownHeadings(e.config.GuideHeading, probe)}
	case format.Stylesheet:
		return []Strategy{commentMarkers(patterns.blockMarker)}
	case format.HTML:
		return []Strategy{htmlComments}
	default:
		return nil
	}
}

// Starts runs the family's chain and returns the starts of the first strategy
// that finds any.
func (e *Extractor) Starts(family format.Family, lines []string) []model.Start {
	for _, strategy := range e.Chain(family) {
		if starts := strategy(lines); len(starts) > 0 {
			return starts
		}
	}
	return nil
}

// Extract returns the sections of a file's lines. An unknown family or a file
// without any recognizable start yields no sections.
func (e *Extractor) Extract(family format.Family, lines []string) []model.Section {
	return Compile(e.Starts(family, lines), len(lines))
}
