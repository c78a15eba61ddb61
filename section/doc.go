// Package section recognizes section boundaries in source files and compiles
// them into line ranges.
//
// # Recognition
//
// Each syntax family has an ordered chain of [Strategy] functions. The chain is
// tried in order and the first strategy that finds anything wins:
//
//   - Script: marker comments, then export declarations, then class, function
//     and variable definitions
//   - Go: marker comments, then top-level func, type, const and var lines
//   - Python: "# SECTION:" comments, then class, def and UPPER_CASE constants
//   - Markdown: "## " headings outside fenced code, except the line guide
//   - Stylesheet: "/* SECTION: */" block comments
//   - HTML: "<!-- SECTION: -->" comments
//
// A marker comment carries a title and an optional description after a dash:
//
//	// SECTION: Data Model - persisted entities
//	/* SECTION: Layout */
//	# SECTION: Helpers - shared utilities
//
// Definitions found by fallback strategies get a synthesized title such as
// "function doThing" and take their description from the comment lines
// directly above them.
//
// # Compilation
//
// [Compile] turns starts into sections: each section ends one line before the
// next start and the last one ends at the final line. Lines before the first
// start are not covered.
//
//	ex := section.NewExtractor()
//	sections := ex.Extract(format.Script, lines)
package section
