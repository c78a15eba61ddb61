// Package filemap lists the sections of every file directly inside a
// directory as "file map" bullets:
//
//	- server.ts 01~24 Setup - wiring
//	- server.ts 25~80 Routes
//	- util.ts 01~12 function clamp
//
// Only regular files directly in the directory are considered. The reserved
// per-directory document is skipped, an optional extension allowlist narrows
// the listing and files are sorted case-insensitively by name. A file that
// cannot be read as text, or that has no recognizable sections, contributes
// nothing. All line numbers in one listing share a zero-pad width derived
// from the largest end line.
//
// When nothing is listed, [Listing.Render] returns a single placeholder
// bullet so callers never render an empty block.
package filemap
