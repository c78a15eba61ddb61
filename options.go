package dirdoc

import (
	"github.com/tsawler/dirdoc/format"
	"github.com/tsawler/dirdoc/section"
)

// ExtractOptions holds configuration for section extraction.
type ExtractOptions struct {
	// Family override; Unknown means detect from the file name
	family format.Family

	// Recognizer settings
	config section.Config
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		family: format.Unknown,
		config: section.DefaultConfig(),
	}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		family: o.family,
		config: o.config,
	}
}
