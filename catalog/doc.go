// Package catalog holds the hand-written descriptions of the directories that
// get a generated document.
//
// A catalog is built once, either from a YAML file with [Load] or [Parse] or
// in code with a [Builder], and is read-only afterwards: every accessor
// returns a copy. Registering the same directory twice is an error, so a bad
// catalog fails before any document is written.
//
// A YAML catalog looks like this:
//
//	project: shop
//	document: claude.md
//	root_documents: [CLAUDE.md, claude.md]
//	auxiliary: [scripts/gen_docs.sh]
//	markdown_summaries: false
//	labels:
//	  purpose: Purpose
//	directories:
//	  - path: src/api
//	    title: API layer
//	    purpose:
//	      - HTTP handlers.
//	    responsibilities:
//	      - Request validation
//	    file_map_extensions: [ts]
//	  - path: docs
//	    title: Docs
//	    purpose: [Guides.]
//	    no_file_map: true
//
// Unknown keys are rejected.
package catalog
