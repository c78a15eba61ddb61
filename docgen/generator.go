package docgen

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/zeebo/blake3"

	"github.com/tsawler/dirdoc"
	"github.com/tsawler/dirdoc/catalog"
	"github.com/tsawler/dirdoc/compose"
	"github.com/tsawler/dirdoc/filemap"
	"github.com/tsawler/dirdoc/internal/logutil"
	"github.com/tsawler/dirdoc/patch"
	"github.com/tsawler/dirdoc/section"
	"github.com/tsawler/dirdoc/text"
)

// Config holds generation settings.
type Config struct {
	// DryRun computes every result without writing anything.
	DryRun bool

	// Logger receives one record per document. Nil discards.
	Logger *slog.Logger
}

// Generator writes the documents of one catalog under one project root.
type Generator struct {
	root    string
	catalog *catalog.Catalog
	config  Config
	logger  *slog.Logger
}

// New creates a generator that writes documents.
func New(root string, cat *catalog.Catalog) *Generator {
	return NewWithConfig(root, cat, Config{})
}

// NewWithConfig creates a generator with custom configuration.
func NewWithConfig(root string, cat *catalog.Catalog, config Config) *Generator {
	return &Generator{
		root:    root,
		catalog: cat,
		config:  config,
		logger:  logutil.OrDiscard(config.Logger),
	}
}

// Run generates every directory document and then patches the root
// document. It stops at the first write error.
func (g *Generator) Run() (*Summary, error) {
	summary := &Summary{DryRun: g.config.DryRun}

	results, warnings, err := g.GenerateAll()
	summary.Results = append(summary.Results, results...)
	summary.Warnings = append(summary.Warnings, warnings...)
	if err != nil {
		return summary, err
	}

	result, err := g.PatchRoot()
	if err != nil {
		return summary, err
	}
	summary.Results = append(summary.Results, result)
	return summary, nil
}

// GenerateAll composes and writes the document of every entry except the
// project root, in path order.
func (g *Generator) GenerateAll() ([]Result, []dirdoc.Warning, error) {
	var (
		results  []Result
		warnings []dirdoc.Warning
	)
	for _, entry := range g.catalog.Entries() {
		if entry.Path == catalog.RootPath {
			continue
		}

		doc, docWarnings, err := g.Render(entry)
		warnings = append(warnings, docWarnings...)
		if err != nil {
			return results, warnings, err
		}

		rel := g.catalog.DocumentPath(entry.Path)
		status, err := g.write(rel, []byte(doc.String()))
		if err != nil {
			return results, warnings, err
		}
		results = append(results, Result{Path: rel, Status: status})
	}
	return results, warnings, nil
}

// Render composes the document of one entry, including its file map.
func (g *Generator) Render(entry catalog.Entry) (*compose.Document, []dirdoc.Warning, error) {
	settings := g.catalog.Settings()
	labels := settings.Labels

	var fileMap []string
	var warnings []dirdoc.Warning
	if entry.HasFileMap() {
		assembler := filemap.NewAssemblerWithConfig(filemap.Config{
			DocumentName: settings.Document,
			Extensions:   entry.FileMapExtensions,
			Placeholder:  "- " + labels.NoFiles,
			Section: section.Config{
				GuideHeading:      labels.GuideHeading,
				MarkdownSummaries: settings.MarkdownSummaries,
				SummaryProbe:      section.DefaultConfig().SummaryProbe,
			},
			Logger: g.logger,
		})
		listing, listWarnings, err := assembler.Build(g.abs(entry.FileMapRoot))
		if err != nil {
			return nil, nil, err
		}
		for _, w := range listWarnings {
			g.logger.Debug("file map degraded", "entry", entry.Path, "path", w.Path, "reason", w.Message)
		}
		warnings = listWarnings
		fileMap = listing.Render()
	}

	return compose.ForEntry(entry, labels, fileMap), warnings, nil
}

// PatchRoot regenerates the directory tree and line guide of the first root
// document that exists. Without one, or when it is not UTF-8 text, the step
// is skipped.
func (g *Generator) PatchRoot() (Result, error) {
	settings := g.catalog.Settings()

	rel := ""
	for _, name := range settings.RootDocuments {
		info, err := os.Stat(g.abs(name))
		if err == nil && info.Mode().IsRegular() {
			rel = name
			break
		}
	}
	if rel == "" {
		g.logger.Info("no root document", "names", settings.RootDocuments)
		return Result{Path: settings.RootDocuments[0], Status: StatusSkipped, Reason: "not found"}, nil
	}

	lines, bom, err := text.ReadDocument(g.abs(rel))
	if errors.Is(err, text.ErrNotText) {
		g.logger.Info("skipping root document", "path", rel, "error", err)
		return Result{Path: rel, Status: StatusSkipped, Reason: "not UTF-8 text"}, nil
	}
	if err != nil {
		return Result{}, err
	}

	patched := patch.Document(lines, patch.Options{
		GuideHeading: settings.Labels.GuideHeading,
		TreeHeading:  settings.Labels.TreeHeading,
		Tree:         g.Tree(),
	})
	out := text.Join(patched)
	if bom {
		out = text.BOM + out
	}
	status, err := g.write(rel, []byte(out))
	if err != nil {
		return Result{}, err
	}
	return Result{Path: rel, Status: status}, nil
}

// Tree renders the directory tree of the root document: every generated
// document, the auxiliary files that exist and the root document itself.
func (g *Generator) Tree() []string {
	settings := g.catalog.Settings()

	var files []string
	for _, p := range g.catalog.Paths() {
		if p != catalog.RootPath {
			files = append(files, g.catalog.DocumentPath(p))
		}
	}
	for _, aux := range settings.Auxiliary {
		if _, err := os.Stat(g.abs(aux)); err == nil {
			files = append(files, aux)
		}
	}

	return patch.RenderTree(patch.TreeInput{
		Label:        g.project() + "/",
		Files:        files,
		RootDocument: settings.RootDocuments[0],
	})
}

func (g *Generator) project() string {
	if p := g.catalog.Settings().Project; p != "" {
		return p
	}
	if abs, err := filepath.Abs(g.root); err == nil {
		return filepath.Base(abs)
	}
	return path.Base(filepath.ToSlash(g.root))
}

// abs joins a slash-separated project path onto the root.
func (g *Generator) abs(rel string) string {
	return filepath.Join(g.root, filepath.FromSlash(rel))
}

// write stores content at rel unless the file already holds it. In a dry
// run nothing is written.
func (g *Generator) write(rel string, content []byte) (Status, error) {
	target := g.abs(rel)

	existing, err := os.ReadFile(target)
	exists := err == nil
	switch {
	case exists && blake3.Sum256(existing) == blake3.Sum256(content):
		g.logger.Info("unchanged", "path", rel)
		return StatusUnchanged, nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return StatusSkipped, fmt.Errorf("reading %s: %w", rel, err)
	}

	if g.config.DryRun {
		g.logger.Info("stale", "path", rel, "exists", exists)
		return StatusWritten, nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return StatusSkipped, fmt.Errorf("creating directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(target, content, 0o644); err != nil {
		return StatusSkipped, fmt.Errorf("writing %s: %w", rel, err)
	}
	g.logger.Info("written", "path", rel, "bytes", len(content), "created", !exists)
	return StatusWritten, nil
}
