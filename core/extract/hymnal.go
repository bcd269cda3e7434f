package extract

import "strings"

// hymnalExtractor groups lines into a hymn unit. A hymn is bounded by
// numbering continuity (the chapter,section pair identifies one sukta) and
// by deity-invocation repetition: when the invoked deity changes on a line
// that also leaves the numbering run, the hymn has ended.
type hymnalExtractor struct {
	e *Extractors
}

// ritualChantWords signal recitation for ritual use.
var ritualChantWords = []string{
	"svāhā", "svaha", "yajña", "yajna", "juhoti", "havis", "haviṣ", "havish",
}

// devotionalWords signal personal devotional prayer.
var devotionalWords = []string{
	"namaḥ", "namah", "namo", "namas", "vande", "vandana",
}

// purposeGroups locate the ritual purpose when one is named.
var purposeGroups = []keywordGroup{
	{"sacrificial-offering", []string{"yajña", "yajna", "juhoti", "havis"}},
	{"oblation", []string{"svāhā", "svaha"}},
	{"soma-offering", []string{"soma", "pavamāna", "pavamana"}},
	{"longevity-blessing", []string{"āyus", "ayus", "āyuṣ", "ayush"}},
	{"protection", []string{"rakṣā", "raksha", "trāyasva", "trayasva"}},
}

func (x *hymnalExtractor) Extract(raw, scriptureID string, seed int) *LogicalUnit {
	lines := x.e.prepare(raw, scriptureID)
	if len(lines) == 0 {
		unit := assemble(KindHymnal, nil, MethodFallback)
		unit.Hymnal = &HymnalContext{HymnType: "devotional-prayer"}
		return unit
	}

	start := clampSeed(seed, len(lines))
	unitLines := []corpusLine{lines[start]}
	lastRef := lines[start].marker
	deity := matchFirst(lowerLine(lines[start]), x.e.gaz.Deities)
	continuous := true

	for i := start + 1; i < len(lines) && len(unitLines) < x.e.opts.MaxUnitLines; i++ {
		l := lines[i]

		// Numbering continuity: leaving the chapter,section pair ends the sukta.
		if l.marker != nil && lastRef != nil && !l.marker.SameChapter(lastRef) {
			break
		}

		// Deity repetition: an unnumbered line invoking a different deity
		// belongs to the next hymn.
		lineDeity := matchFirst(lowerLine(l), x.e.gaz.Deities)
		if l.marker == nil && deity != "" && lineDeity != "" &&
			foldASCII(lineDeity) != foldASCII(deity) {
			break
		}
		if deity == "" {
			deity = lineDeity
		}

		if l.marker != nil && lastRef != nil && !lastRef.Continuous(l.marker) {
			continuous = false
		}

		unitLines = append(unitLines, l)
		if l.marker != nil {
			lastRef = l.marker
		}
	}

	method := MethodPrimary
	if !hasMarkers(unitLines) {
		method = MethodFallback
	}

	unit := assemble(KindHymnal, unitLines, method)
	text := lowerText(unitLines)
	unit.Hymnal = &HymnalContext{
		HymnType:      hymnType(unit, text, continuous),
		Deity:         deity,
		RitualPurpose: scoreKeywords(text, purposeGroups, ""),
		Meter:         matchFirst(text, x.e.gaz.Meters),
	}
	return unit
}

// hymnType classifies the hymn: a continuous numbered run of at least
// three verses is a complete hymn; ritual keywords make a ritual chant;
// everything else is a devotional prayer.
func hymnType(unit *LogicalUnit, lowerText string, continuous bool) string {
	if unit.VerseRange.Count >= 3 && continuous {
		return "complete-hymn"
	}
	for _, w := range ritualChantWords {
		if strings.Contains(lowerText, w) {
			return "ritual-chant"
		}
	}
	for _, w := range devotionalWords {
		if strings.Contains(lowerText, w) {
			return "devotional-prayer"
		}
	}
	return "devotional-prayer"
}
