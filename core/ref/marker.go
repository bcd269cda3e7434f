package ref

import (
	"regexp"
	"strings"
)

// The legacy corpora embed reference tokens in three wrapper conventions:
// comment-style delimiters ("// bhg_2,40.20 //"), square brackets
// ("[bhg_2,40.20]"), and parentheses ("(bhg_2,40.20)"). Bare tokens at the
// start of a line also occur. None of these are guaranteed well-formed.
var (
	tokenPattern = `[a-z]+_[0-9]+(?:,[0-9]+)?(?:\.[0-9]+(?:-[0-9]+)?)?`

	commentMarkerRe = regexp.MustCompile(`//\s*(` + tokenPattern + `)\s*//`)
	bracketMarkerRe = regexp.MustCompile(`\[\s*(` + tokenPattern + `)\s*\]`)
	parenMarkerRe   = regexp.MustCompile(`\(\s*(` + tokenPattern + `)\s*\)`)
	bareMarkerRe    = regexp.MustCompile(`^\s*(` + tokenPattern + `)\s+`)
)

// Marker is a reference token located inside a corpus line.
type Marker struct {
	// Ref is the parsed reference.
	Ref *Ref

	// Token is the inner reference token without wrapper syntax.
	Token string

	// Matched is the full matched span including wrapper syntax.
	Matched string
}

// FindMarker locates the first reference marker in a corpus line.
// Returns nil when the line carries no recognizable marker; a marker whose
// token fails to parse is skipped, since corpora contain malformed markup.
func FindMarker(line string) *Marker {
	for _, re := range []*regexp.Regexp{commentMarkerRe, bracketMarkerRe, parenMarkerRe, bareMarkerRe} {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		parsed, err := Parse(m[1])
		if err != nil {
			continue
		}
		return &Marker{
			Ref:     parsed,
			Token:   m[1],
			Matched: strings.TrimSpace(m[0]),
		}
	}
	return nil
}

// StripMarkers removes every wrapper-syntax marker span from the line,
// including markers whose inner token is malformed.
func StripMarkers(line string) string {
	line = commentMarkerRe.ReplaceAllString(line, " ")
	line = bracketMarkerRe.ReplaceAllString(line, " ")
	line = parenMarkerRe.ReplaceAllString(line, " ")
	line = bareMarkerRe.ReplaceAllString(line, " ")
	return line
}
