package section

import "regexp"

var patterns = struct {
	lineMarker   *regexp.Regexp
	blockMarker  *regexp.Regexp
	hashMarker   *regexp.Regexp
	htmlMarker   *regexp.Regexp
	heading      *regexp.Regexp
	export       *regexp.Regexp
	class        *regexp.Regexp
	function     *regexp.Regexp
	variable     *regexp.Regexp
	pyDef        *regexp.Regexp
	pyConstant   *regexp.Regexp
	goFunc       *regexp.Regexp
	goMethod     *regexp.Regexp
	goType       *regexp.Regexp
	goValue      *regexp.Regexp
	goValueGroup *regexp.Regexp
}{
	lineMarker:   regexp.MustCompile(`^\s*//\s*SECTION:\s*(?P<title>[^-]+?)(?:\s*-\s*(?P<desc>.*))?\s*$`),
	blockMarker:  regexp.MustCompile(`^\s*/\*\s*SECTION:\s*(?P<title>[^-]+?)(?:\s*-\s*(?P<desc>.*?))?\s*\*/`),
	hashMarker:   regexp.MustCompile(`^\s*#\s*SECTION:\s*(?P<title>[^-]+?)(?:\s*-\s*(?P<desc>.*))?\s*$`),
	htmlMarker:   regexp.MustCompile(`^SECTION:\s*(?P<title>[^-]+?)(?:\s*-\s*(?P<desc>.*))?$`),
	heading:      regexp.MustCompile(`^\s*##\s+(?P<title>.+?)\s*$`),
	export:       regexp.MustCompile(`^\s*export\s+(?:default\s+)?(?:const|let|var|function|class|interface|type|enum)\s*(?P<name>[A-Za-z0-9_]+)?`),
	class:        regexp.MustCompile(`^\s*class\s+([A-Za-z0-9_]+)`),
	function:     regexp.MustCompile(`^\s*function\s+([A-Za-z0-9_]+)`),
	variable:     regexp.MustCompile(`^\s*(const|let|var)\s+([A-Za-z0-9_]+)\s*=`),
	pyDef:        regexp.MustCompile(`^\s*def\s+([A-Za-z0-9_]+)`),
	pyConstant:   regexp.MustCompile(`^\s*[A-Z_][A-Z0-9_]*\s*=`),
	goFunc:       regexp.MustCompile(`^func\s+([A-Za-z0-9_]+)`),
	goMethod:     regexp.MustCompile(`^func\s+\(\s*(?:[A-Za-z0-9_]+\s+)?\*?([A-Za-z0-9_]+)(?:\[[^\]]*\])?\s*\)\s*([A-Za-z0-9_]+)`),
	goType:       regexp.MustCompile(`^type\s+([A-Za-z0-9_]+)`),
	goValue:      regexp.MustCompile(`^(const|var)\s+([A-Za-z0-9_]+)`),
	goValueGroup: regexp.MustCompile(`^(const|var)\s*\(`),
}

// markerGroups extracts the title and description groups of a marker match.
func markerGroups(re *regexp.Regexp, line string) (title, desc string, ok bool) {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	title = m[re.SubexpIndex("title")]
	if i := re.SubexpIndex("desc"); i >= 0 {
		desc = m[i]
	}
	return title, desc, true
}
