// Package model defines the values passed between the dirdoc packages.
//
// A [Start] is one recognized section boundary: a 1-based line number with a
// title and an optional description. The section package compiles an ordered
// list of starts into [Section] values that cover a file from the first start
// to its last line.
//
// A [Range] is a titled span of a generated document, used for the line guide
// of composed documents and the patched root document.
//
// Line numbers in rendered output are zero-padded with [Width] and
// [FormatSpan]:
//
//	w := model.Width(256)           // 3
//	model.FormatSpan(3, 47, w)      // "003~047"
package model
