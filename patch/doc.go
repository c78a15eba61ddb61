// Package patch updates the two generated regions of a hand-written root
// document and leaves every other line untouched.
//
// The regions are found by structure on every run, never by stored offsets:
//
//   - the line guide: the run of "- " bullets directly under the guide
//     heading is replaced with one "start~end: title" bullet per "## "
//     heading
//   - the directory tree: the interior of the first fenced block after the
//     tree heading is replaced with a freshly rendered tree
//
// A region whose anchor is missing is left alone. Patching is idempotent.
package patch
