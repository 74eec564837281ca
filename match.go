package winslot

import "strings"

// segmentSep is the delimiter applications put between a document name and
// the application name, e.g. "General - Discord" or "Inbox - Firefox".
const segmentSep = "- "

// titleMatches decides whether a window title satisfies a registered name.
// Rules apply in strict priority order:
//
//  1. Path-like titles (second byte ':' and third '\', i.e. an Explorer
//     window titled with a full path) match only on exact equality.
//  2. If the title can be split on "- " and the registered name contains no
//     such separator, the substring after the last separator must equal the
//     name exactly.
//  3. Otherwise the name must be contained in the title, or equal it when
//     exact mode is on.
func titleMatches(title, name string, exact bool) bool {
	if len(title) > 2 && title[1] == ':' && title[2] == '\\' {
		return title == name
	}
	if lastSegmentEquals(title, name) {
		return true
	}
	if exact {
		return title == name
	}
	return strings.Contains(title, name)
}

// lastSegmentEquals implements rule 2. It reports false whenever the rule
// does not apply, letting the caller fall through to the default rule.
func lastSegmentEquals(title, name string) bool {
	if strings.Contains(name, segmentSep) {
		return false
	}
	i := strings.LastIndex(title, segmentSep)
	if i < 0 {
		return false
	}
	return title[i+len(segmentSep):] == name
}

// titleEligible filters out windows whose title is too short to be a real
// application window (icons, IME helpers and similar clutter).
func titleEligible(title string) bool {
	n := 0
	for range title {
		n++
		if n > 2 {
			return true
		}
	}
	return false
}
