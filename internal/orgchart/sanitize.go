// Package orgchart builds, renders and caches buying-group org charts.
package orgchart

import (
	"regexp"
	"strings"
)

// untitledChart is the filename base used when sanitization empties a name.
const untitledChart = "untitled_chart"

var (
	invalidChars = regexp.MustCompile(`[^\w\s-]`)
	collapseRuns = regexp.MustCompile(`[-\s]+`)
)

// Sanitize derives a filesystem-safe name: strips everything outside
// [A-Za-z0-9_ -], trims, then collapses runs of hyphens/whitespace into a
// single underscore. Empty results become "untitled_chart". The exact rules
// are load-bearing: existing cache files were written under these names.
func Sanitize(name string) string {
	s := invalidChars.ReplaceAllString(name, "")
	s = strings.TrimSpace(s)
	s = collapseRuns.ReplaceAllString(s, "_")
	if s == "" {
		return untitledChart
	}
	return s
}

// Filename derives the cache filename for a company/location pair.
func Filename(company, location string) string {
	base := Sanitize(company)
	if location != "" {
		base += "_" + Sanitize(location)
	}
	return base + ".html"
}
