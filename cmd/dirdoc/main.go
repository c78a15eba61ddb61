// Command dirdoc generates per-directory documents from a catalog and keeps
// the root document's directory tree and line guide current.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/tsawler/dirdoc"
	"github.com/tsawler/dirdoc/catalog"
	"github.com/tsawler/dirdoc/docgen"
	"github.com/tsawler/dirdoc/model"
)

const version = "0.1.0"

// CLI defines the command-line interface for dirdoc.
type CLI struct {
	// Global flags
	Root    string `name:"root" short:"r" help:"Project root directory" default:"." type:"path"`
	Catalog string `name:"catalog" short:"c" help:"Catalog file, relative to the root unless absolute" default:"dirdoc.yaml"`
	Verbose bool   `name:"verbose" short:"v" help:"Log every file decision"`

	Generate GenerateCmd `cmd:"" default:"1" help:"Write directory documents and patch the root document"`
	Check    CheckCmd    `cmd:"" help:"Exit with status 1 if any document is out of date"`
	Sections SectionsCmd `cmd:"" help:"Print the sections of one file"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// env is bound into every command's Run method.
type env struct {
	cli    *CLI
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// errStale reports out-of-date documents from check.
var errStale = errors.New("documents are out of date")

func (e *env) loadCatalog() (*catalog.Catalog, error) {
	path := e.cli.Catalog
	if !filepath.IsAbs(path) {
		path = filepath.Join(e.cli.Root, path)
	}
	return catalog.Load(path)
}

// GenerateCmd writes every directory document.
type GenerateCmd struct{}

// Run executes the generate command.
func (c *GenerateCmd) Run(e *env) error {
	cat, err := e.loadCatalog()
	if err != nil {
		return err
	}
	summary, err := docgen.NewWithConfig(e.cli.Root, cat, docgen.Config{Logger: e.logger}).Run()
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, summary)
	return nil
}

// CheckCmd reports stale documents without writing.
type CheckCmd struct{}

// Run executes the check command.
func (c *CheckCmd) Run(e *env) error {
	cat, err := e.loadCatalog()
	if err != nil {
		return err
	}
	summary, err := docgen.NewWithConfig(e.cli.Root, cat, docgen.Config{DryRun: true, Logger: e.logger}).Run()
	if err != nil {
		return err
	}
	for _, r := range summary.Results {
		if r.Status == docgen.StatusWritten {
			fmt.Fprintf(e.stdout, "stale: %s\n", r.Path)
		}
	}
	fmt.Fprintln(e.stdout, summary)
	if summary.Changed() > 0 {
		return errStale
	}
	return nil
}

// SectionsCmd prints the sections of one file.
type SectionsCmd struct {
	File              string `arg:"" help:"File to inspect" type:"path"`
	MarkdownSummaries bool   `name:"markdown-summaries" help:"Describe Markdown sections with the line below each heading"`
}

// Run executes the sections command.
func (c *SectionsCmd) Run(e *env) error {
	ext := dirdoc.Open(c.File)
	if c.MarkdownSummaries {
		ext = ext.MarkdownSummaries()
	}
	sections, warnings, err := ext.Sections()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintln(e.stderr, "warning:", w)
	}

	width := model.Width(model.MaxEnd(sections))
	for _, s := range sections {
		line := s.Span(width) + " " + s.Title
		if s.Description != "" {
			line += " - " + s.Description
		}
		fmt.Fprintln(e.stdout, line)
	}
	return nil
}

// VersionCmd prints the version.
type VersionCmd struct{}

// Run executes the version command.
func (c *VersionCmd) Run(e *env) error {
	fmt.Fprintf(e.stdout, "dirdoc %s\n", version)
	return nil
}

// exitCode carries a kong exit request out of run.
type exitCode int

// run parses args and executes the selected command. It returns the process
// exit status: 0 on success, 1 for stale documents, 2 for errors.
func run(args []string, stdout, stderr io.Writer) (code int) {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("dirdoc"),
		kong.Description("Generate directory documents with line-range maps"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Writers(stdout, stderr),
		kong.Exit(func(c int) { panic(exitCode(c)) }),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			code = int(c)
		}
	}()

	ctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "dirdoc: %v\n", err)
		return 2
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	err = ctx.Run(&env{cli: &cli, stdout: stdout, stderr: stderr, logger: logger})
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errStale):
		return 1
	default:
		logger.Error("dirdoc failed", "error", err)
		return 2
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
