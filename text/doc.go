// Package text turns raw file contents into the line sequence that the rest of
// dirdoc scans.
//
// # Decoding
//
// Files are accepted only when they are valid UTF-8. A leading byte order mark
// is removed; anything else that fails validation is reported as [ErrNotText]
// so callers can skip the file:
//
//	lines, err := text.ReadFile("src/app.ts")
//	if errors.Is(err, text.ErrNotText) {
//	    // binary or non-UTF-8 file, contributes nothing
//	}
//
// # Line Splitting
//
// [Split] breaks text on "\n" only. A carriage return before the newline stays
// part of the line, which lets a document be patched and written back without
// altering lines that were not touched. A trailing newline does not produce an
// extra empty line, so the length of the returned slice is the line count an
// editor would show.
package text
