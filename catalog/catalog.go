package catalog

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tsawler/dirdoc/filemap"
)

var (
	// ErrDuplicateEntry is returned when a directory is registered twice.
	ErrDuplicateEntry = errors.New("duplicate catalog entry")

	// ErrInvalidEntry is returned for an entry with a missing title or a path
	// that leaves the project root.
	ErrInvalidEntry = errors.New("invalid catalog entry")

	// ErrInvalidSettings is returned for unusable catalog-wide settings.
	ErrInvalidSettings = errors.New("invalid catalog settings")
)

// RootPath is the entry path of the project root. The root document is
// patched in place rather than generated.
const RootPath = "."

// Entry describes one directory.
type Entry struct {
	// Path is the directory, relative to the project root, in slash form.
	Path string `yaml:"path"`

	// Title is the document's top-level heading.
	Title string `yaml:"title"`

	// Purpose lines are rendered as written, not as bullets.
	Purpose []string `yaml:"purpose"`

	Responsibilities []string `yaml:"responsibilities"`
	Structure        []string `yaml:"structure"`
	Centralization   []string `yaml:"centralization"`
	Rules            []string `yaml:"rules"`
	References       []string `yaml:"references"`

	// FileMapRoot is the directory whose files are listed in the file map.
	// Empty means the entry's own directory, except for the root entry which
	// has no file map unless one is given.
	FileMapRoot string `yaml:"file_map_root"`

	// NoFileMap disables the file map; the placeholder bullet is rendered.
	NoFileMap bool `yaml:"no_file_map"`

	// FileMapExtensions restricts the file map to these extensions.
	FileMapExtensions []string `yaml:"file_map_extensions"`
}

// HasFileMap reports whether the entry lists files.
func (e Entry) HasFileMap() bool {
	return e.FileMapRoot != ""
}

func (e Entry) clone() Entry {
	c := e
	c.Purpose = cloneStrings(e.Purpose)
	c.Responsibilities = cloneStrings(e.Responsibilities)
	c.Structure = cloneStrings(e.Structure)
	c.Centralization = cloneStrings(e.Centralization)
	c.Rules = cloneStrings(e.Rules)
	c.References = cloneStrings(e.References)
	c.FileMapExtensions = cloneStrings(e.FileMapExtensions)
	return c
}

// Settings are the catalog-wide options.
type Settings struct {
	// Project labels the root of the directory tree.
	Project string

	// Document is the file name written into every cataloged directory.
	// Default: claude.md
	Document string

	// RootDocuments are the accepted names of the hand-written root
	// document. The first one that exists is patched.
	// Default: CLAUDE.md, claude.md
	RootDocuments []string

	// Auxiliary files are added to the directory tree when they exist.
	Auxiliary []string

	// MarkdownSummaries fills Markdown file map descriptions from the line
	// below each heading.
	MarkdownSummaries bool

	// Labels are the document headings and default bullets.
	Labels Labels
}

// DefaultSettings returns the default catalog settings.
func DefaultSettings() Settings {
	return Settings{
		Document:      filemap.DefaultDocumentName,
		RootDocuments: []string{"CLAUDE.md", "claude.md"},
		Labels:        DefaultLabels(),
	}
}

func (s Settings) clone() Settings {
	c := s
	c.RootDocuments = cloneStrings(s.RootDocuments)
	c.Auxiliary = cloneStrings(s.Auxiliary)
	return c
}

// normalize fills defaults and validates file names.
func (s Settings) normalize() (Settings, error) {
	d := DefaultSettings()
	if s.Document == "" {
		s.Document = d.Document
	}
	if len(s.RootDocuments) == 0 {
		s.RootDocuments = d.RootDocuments
	}
	s.Labels = s.Labels.withDefaults()

	for _, name := range append([]string{s.Document}, s.RootDocuments...) {
		if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
			return s, fmt.Errorf("%w: %q is not a plain file name", ErrInvalidSettings, name)
		}
	}
	aux := make([]string, 0, len(s.Auxiliary))
	for _, a := range s.Auxiliary {
		p, err := cleanPath(a)
		if err != nil || p == RootPath {
			return s, fmt.Errorf("%w: auxiliary file %q", ErrInvalidSettings, a)
		}
		aux = append(aux, p)
	}
	s.Auxiliary = aux
	return s, nil
}

// Catalog is an immutable set of directory entries.
type Catalog struct {
	settings Settings
	entries  map[string]Entry
	paths    []string
}

// Settings returns a copy of the catalog settings.
func (c *Catalog) Settings() Settings {
	return c.settings.clone()
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.paths)
}

// Paths returns the entry paths in sorted order.
func (c *Catalog) Paths() []string {
	return cloneStrings(c.paths)
}

// Entry returns a copy of the entry registered for path.
func (c *Catalog) Entry(p string) (Entry, bool) {
	cleaned, err := cleanPath(p)
	if err != nil {
		return Entry{}, false
	}
	e, ok := c.entries[cleaned]
	if !ok {
		return Entry{}, false
	}
	return e.clone(), true
}

// Entries returns copies of all entries sorted by path.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.paths))
	for _, p := range c.paths {
		out = append(out, c.entries[p].clone())
	}
	return out
}

// DocumentPath returns the slash-separated path of the generated document
// for the entry at p.
func (c *Catalog) DocumentPath(p string) string {
	return path.Join(p, c.settings.Document)
}

// Builder collects entries for a Catalog.
type Builder struct {
	settings Settings
	entries  map[string]Entry
	err      error
}

// NewBuilder creates a builder with the given settings.
func NewBuilder(settings Settings) *Builder {
	s, err := settings.normalize()
	return &Builder{
		settings: s,
		entries:  make(map[string]Entry),
		err:      err,
	}
}

// Add registers an entry. The entry is copied, so the caller may reuse it.
// A duplicate path returns ErrDuplicateEntry and an entry without a title or
// with a path outside the project returns ErrInvalidEntry. The first error is
// also reported by Build.
func (b *Builder) Add(e Entry) error {
	if err := b.add(e.clone()); err != nil {
		if b.err == nil {
			b.err = err
		}
		return err
	}
	return nil
}

func (b *Builder) add(e Entry) error {
	p, err := cleanPath(e.Path)
	if err != nil {
		return err
	}
	if _, exists := b.entries[p]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateEntry, p)
	}
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("%w: %s has no title", ErrInvalidEntry, p)
	}
	e.Path = p

	switch {
	case e.NoFileMap:
		e.FileMapRoot = ""
	case e.FileMapRoot != "":
		root, err := cleanPath(e.FileMapRoot)
		if err != nil {
			return fmt.Errorf("file map root of %s: %w", p, err)
		}
		e.FileMapRoot = root
	case p != RootPath:
		e.FileMapRoot = p
	}
	e.FileMapExtensions = filemap.NormalizeExtensions(e.FileMapExtensions)

	b.entries[p] = e
	return nil
}

// Build returns the catalog, or the first error reported by NewBuilder or
// Add.
func (b *Builder) Build() (*Catalog, error) {
	if b.err != nil {
		return nil, b.err
	}
	c := &Catalog{
		settings: b.settings.clone(),
		entries:  make(map[string]Entry, len(b.entries)),
		paths:    make([]string, 0, len(b.entries)),
	}
	for p, e := range b.entries {
		c.entries[p] = e.clone()
		c.paths = append(c.paths, p)
	}
	sort.Strings(c.paths)
	return c, nil
}

// cleanPath returns p in clean slash form. Empty, absolute and escaping
// paths return ErrInvalidEntry.
func cleanPath(p string) (string, error) {
	raw := strings.TrimSpace(p)
	if raw == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidEntry)
	}
	slashed := filepath.ToSlash(raw)
	if filepath.IsAbs(raw) || strings.HasPrefix(slashed, "/") {
		return "", fmt.Errorf("%w: %s is absolute", ErrInvalidEntry, raw)
	}
	cleaned := path.Clean(slashed)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("%w: %s leaves the project root", ErrInvalidEntry, raw)
	}
	return cleaned, nil
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
