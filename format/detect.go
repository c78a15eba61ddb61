// Package format maps file names to the syntax family used to recognize
// section markers and declarations.
package format

import (
	"path/filepath"
	"strings"
)

// Family represents a group of file types that share comment and declaration
// syntax.
type Family int

const (
	// Unknown indicates a file type with no section recognizers.
	Unknown Family = iota
	// Script indicates JavaScript and TypeScript sources.
	Script
	// Go indicates Go sources.
	Go
	// Python indicates Python sources.
	Python
	// Markdown indicates Markdown documents.
	Markdown
	// Stylesheet indicates CSS, SCSS and Sass sources.
	Stylesheet
	// HTML indicates HTML documents.
	HTML
)

// String returns the string representation of the family.
func (f Family) String() string {
	switch f {
	case Script:
		return "Script"
	case Go:
		return "Go"
	case Python:
		return "Python"
	case Markdown:
		return "Markdown"
	case Stylesheet:
		return "Stylesheet"
	case HTML:
		return "HTML"
	default:
		return "Unknown"
	}
}

// Extensions returns the file extensions that belong to the family.
func (f Family) Extensions() []string {
	var out []string
	for _, ext := range extensionOrder {
		if extensions[ext] == f {
			out = append(out, ext)
		}
	}
	return out
}

var extensions = map[string]Family{
	".ts":       Script,
	".tsx":      Script,
	".js":       Script,
	".jsx":      Script,
	".mjs":      Script,
	".cjs":      Script,
	".go":       Go,
	".py":       Python,
	".md":       Markdown,
	".markdown": Markdown,
	".css":      Stylesheet,
	".scss":     Stylesheet,
	".sass":     Stylesheet,
	".html":     HTML,
	".htm":      HTML,
}

var extensionOrder = []string{
	".ts", ".tsx", ".js", ".jsx", ".mjs", ".cjs",
	".go",
	".py",
	".md", ".markdown",
	".css", ".scss", ".sass",
	".html", ".htm",
}

// Detect determines the family from the filename extension.
func Detect(filename string) Family {
	return extensions[strings.ToLower(filepath.Ext(filename))]
}

// DetectFromShebang inspects an interpreter line such as
// "#!/usr/bin/env python3". Returns Unknown if the line is not a shebang or
// names an interpreter without a family.
func DetectFromShebang(firstLine string) Family {
	line := strings.TrimSpace(firstLine)
	if !strings.HasPrefix(line, "#!") {
		return Unknown
	}
	fields := strings.Fields(strings.TrimPrefix(line, "#!"))
	if len(fields) == 0 {
		return Unknown
	}

	// "#!/usr/bin/env node" names the interpreter in the second field
	interp := filepath.Base(fields[0])
	if interp == "env" {
		if len(fields) < 2 {
			return Unknown
		}
		interp = filepath.Base(fields[1])
	}

	switch {
	case strings.HasPrefix(interp, "python"):
		return Python
	case interp == "node", interp == "deno", interp == "bun", interp == "ts-node":
		return Script
	default:
		return Unknown
	}
}

// DetectFile prefers the extension and falls back to the shebang for files
// without one.
func DetectFile(filename, firstLine string) Family {
	if f := Detect(filename); f != Unknown {
		return f
	}
	if filepath.Ext(filename) != "" {
		return Unknown
	}
	return DetectFromShebang(firstLine)
}

// NormalizeExtension lowercases ext and gives it a leading dot. Blank input
// returns "".
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
