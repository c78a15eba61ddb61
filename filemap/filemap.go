package filemap

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/tsawler/dirdoc"
	"github.com/tsawler/dirdoc/format"
	"github.com/tsawler/dirdoc/internal/logutil"
	"github.com/tsawler/dirdoc/model"
	"github.com/tsawler/dirdoc/section"
)

// DefaultPlaceholder is rendered when a listing has no lines.
const DefaultPlaceholder = "- 추적 가능한 파일이 없습니다."

// DefaultDocumentName is the per-directory document excluded from listings.
const DefaultDocumentName = "claude.md"

// Config holds file map settings.
type Config struct {
	// DocumentName is skipped in every listing, compared case-insensitively.
	// Default: DefaultDocumentName
	DocumentName string

	// Extensions restricts the listing to these extensions. Empty means all.
	// Values are normalized by NewAssemblerWithConfig.
	Extensions []string

	// Placeholder is the single line rendered for an empty listing.
	// Default: DefaultPlaceholder
	Placeholder string

	// Section configures section recognition.
	Section section.Config

	// Logger receives a debug record for each skipped file. Nil discards.
	Logger *slog.Logger
}

// DefaultConfig returns the default file map configuration.
func DefaultConfig() Config {
	return Config{
		DocumentName: DefaultDocumentName,
		Placeholder:  DefaultPlaceholder,
		Section:      section.DefaultConfig(),
	}
}

// Line is one section of one listed file.
type Line struct {
	File    string
	Section model.Section
}

// Listing is the file map of one directory.
type Listing struct {
	Dir         string
	Lines       []Line
	Placeholder string
}

// Width returns the zero-pad width shared by every line of the listing.
func (l *Listing) Width() int {
	max := 0
	for _, line := range l.Lines {
		if line.Section.EndLine > max {
			max = line.Section.EndLine
		}
	}
	return model.Width(max)
}

// Render returns the listing as bullets, or the placeholder bullet when the
// listing is empty. The result is never empty.
func (l *Listing) Render() []string {
	if len(l.Lines) == 0 {
		return []string{l.Placeholder}
	}

	width := l.Width()
	out := make([]string, 0, len(l.Lines))
	for _, line := range l.Lines {
		s := line.Section
		entry := fmt.Sprintf("- %s %s %s", line.File, s.Span(width), s.Title)
		if s.Description != "" {
			entry += " - " + s.Description
		}
		out = append(out, entry)
	}
	return out
}

// Assembler builds file map listings.
type Assembler struct {
	config     Config
	extensions map[string]bool
	logger     *slog.Logger
}

// NewAssembler creates an assembler with default configuration.
func NewAssembler() *Assembler {
	return NewAssemblerWithConfig(DefaultConfig())
}

// NewAssemblerWithConfig creates an assembler with custom configuration.
func NewAssemblerWithConfig(config Config) *Assembler {
	if config.DocumentName == "" {
		config.DocumentName = DefaultDocumentName
	}
	if config.Placeholder == "" {
		config.Placeholder = DefaultPlaceholder
	}
	config.Extensions = NormalizeExtensions(config.Extensions)

	a := &Assembler{
		config: config,
		logger: logutil.OrDiscard(config.Logger),
	}
	if len(config.Extensions) > 0 {
		a.extensions = make(map[string]bool, len(config.Extensions))
		for _, ext := range config.Extensions {
			a.extensions[ext] = true
		}
	}
	return a
}

// Build lists the sections of the files directly inside dir.
//
// A missing directory, or a path that is not a directory, yields an empty
// listing and a warning. Files that cannot be read as text are skipped with
// a warning. Any other error reading the directory is returned.
func (a *Assembler) Build(dir string) (*Listing, []dirdoc.Warning, error) {
	listing := &Listing{Dir: dir, Placeholder: a.config.Placeholder}

	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.IsDir()) {
		return listing, []dirdoc.Warning{{Path: dir, Message: "file map root is not a directory"}}, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sortFolded(names)

	var warnings []dirdoc.Warning
	for _, name := range names {
		path := filepath.Join(dir, name)
		if !a.eligible(path, name) {
			continue
		}

		sections, fileWarnings, err := dirdoc.Open(path).WithConfig(a.config.Section).Sections()
		if err != nil {
			a.logger.Debug("skipping unreadable file", "path", path, "error", err)
			warnings = append(warnings, dirdoc.Warning{Path: path, Message: err.Error()})
			continue
		}
		for _, w := range fileWarnings {
			a.logger.Debug("file contributes no sections", "path", w.Path, "reason", w.Message)
		}
		for _, s := range sections {
			listing.Lines = append(listing.Lines, Line{File: name, Section: s})
		}
	}
	return listing, warnings, nil
}

// eligible reports whether the named entry is a regular file (following
// symlinks) that passes the document and extension filters.
func (a *Assembler) eligible(path, name string) bool {
	if strings.EqualFold(name, a.config.DocumentName) {
		return false
	}
	if a.extensions != nil && !a.extensions[strings.ToLower(filepath.Ext(name))] {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		a.logger.Debug("skipping unreadable entry", "path", path, "error", err)
		return false
	}
	return info.Mode().IsRegular()
}

// sortFolded sorts names by their case-folded form, breaking ties by the
// names themselves so the order is total.
func sortFolded(names []string) {
	fold := cases.Fold()
	keys := make(map[string]string, len(names))
	for _, n := range names {
		keys[n] = fold.String(n)
	}
	sort.Slice(names, func(i, j int) bool {
		ki, kj := keys[names[i]], keys[names[j]]
		if ki != kj {
			return ki < kj
		}
		return names[i] < names[j]
	})
}

// NormalizeExtensions lowercases extensions, gives each a leading dot and
// drops blanks and duplicates, keeping first-seen order.
func NormalizeExtensions(exts []string) []string {
	if len(exts) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(exts))
	var out []string
	for _, ext := range exts {
		ext = format.NormalizeExtension(ext)
		if ext == "" || seen[ext] {
			continue
		}
		seen[ext] = true
		out = append(out, ext)
	}
	return out
}
