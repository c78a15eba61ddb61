package section

import (
	"regexp"

	"github.com/tsawler/dirdoc/model"
)

// Strategy finds section starts in the lines of one file. Starts are returned
// in ascending line order.
type Strategy func(lines []string) []model.Start

// commentMarkers returns a strategy that checks every line against the marker
// patterns in order and keeps the first match per line.
func commentMarkers(res ...*regexp.Regexp) Strategy {
	return func(lines []string) []model.Start {
		var starts []model.Start
		for i, line := range lines {
			for _, re := range res {
				if title, desc, ok := markerGroups(re, line); ok {
					starts = append(starts, model.Start{Line: i + 1, Title: title, Description: desc})
					break
				}
			}
		}
		return starts
	}
}
