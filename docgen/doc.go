// Package docgen runs a whole generation pass over a project.
//
// For every cataloged directory except the project root it composes the
// directory document and writes it to <dir>/<document>. It then patches the
// hand-written root document: the directory tree and the line guide are
// regenerated and every other line is kept.
//
// A document whose content would not change is not rewritten. With DryRun
// set nothing is written at all, which is how "dirdoc check" finds stale
// documents:
//
//	gen := docgen.NewWithConfig(".", cat, docgen.Config{DryRun: true})
//	summary, err := gen.Run()
//	if err != nil {
//	    // handle error
//	}
//	if summary.Changed() > 0 {
//	    // documents are out of date
//	}
package docgen
