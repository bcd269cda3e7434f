package extract

// epicExtractor groups lines into a story unit. It serves both Epic and
// Narrative texts: the boundary heuristics are shared, only the corpus
// genre differs. A unit ends at a speaker change, at a canonical-reference
// discontinuity beyond a chapter/section boundary, or at the length cap.
type epicExtractor struct {
	e *Extractors
}

// narrativeGroups classify the narrative type by keyword scoring.
var narrativeGroups = []keywordGroup{
	{"mythological-story", []string{
		"asura", "rākṣasa", "rakshasa", "yuddha", "vadha", "avatāra", "avatara", "deva",
	}},
	{"genealogical-account", []string{
		"vaṃśa", "vamsha", "putra", "janma", "kula", "gotra", "prajā", "praja",
	}},
	{"cosmological-description", []string{
		"sṛṣṭi", "srishti", "loka", "brahmāṇḍa", "brahmanda", "kalpa", "yuga", "pralaya",
	}},
}

// themeGroups locate the story theme when one dominates.
var themeGroups = []keywordGroup{
	{"righteous-war", []string{"yuddha", "saṅgrāma", "sangrama", "senā", "sena"}},
	{"exile", []string{"vanavāsa", "vanavasa", "araṇya", "aranya"}},
	{"devotion", []string{"bhakti", "śaraṇa", "sharana"}},
	{"creation", []string{"sṛṣṭi", "srishti", "pralaya"}},
	{"duty", []string{"dharma", "svadharma", "kartavya"}},
}

func (x *epicExtractor) Extract(raw, scriptureID string, seed int) *LogicalUnit {
	lines := x.e.prepare(raw, scriptureID)
	if len(lines) == 0 {
		unit := assemble(KindEpic, nil, MethodFallback)
		unit.Epic = &EpicContext{NarrativeType: "mythological-story"}
		return unit
	}

	start := clampSeed(seed, len(lines))
	unitLines := []corpusLine{lines[start]}
	speaker := lines[start].speaker()
	lastRef := lines[start].marker

	for i := start + 1; i < len(lines) && len(unitLines) < x.e.opts.MaxUnitLines; i++ {
		l := lines[i]

		if sp := l.speaker(); sp != "" {
			if speaker != "" && sp != speaker {
				break
			}
			speaker = sp
		}

		if l.marker != nil && lastRef != nil && !l.marker.SameChapter(lastRef) {
			break
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

	unit := assemble(KindEpic, unitLines, method)
	text := lowerText(unitLines)
	unit.Epic = &EpicContext{
		NarrativeType:  scoreKeywords(text, narrativeGroups, "mythological-story"),
		MainCharacters: matchAll(text, x.e.gaz.Characters),
		StoryTheme:     scoreKeywords(text, themeGroups, ""),
		Location:       matchFirst(text, x.e.gaz.Locations),
	}
	return unit
}

// hasMarkers reports whether any line carries a canonical reference.
func hasMarkers(lines []corpusLine) bool {
	for _, l := range lines {
		if l.marker != nil {
			return true
		}
	}
	return false
}
