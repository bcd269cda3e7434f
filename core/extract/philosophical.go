package extract

// philosophicalExtractor groups lines into a teaching unit bounded by
// dialogue turns and concept boundaries: a new gazetteer concept appearing
// after the unit has settled on one ends the unit, as does a
// chapter/section discontinuity or the length cap.
type philosophicalExtractor struct {
	e *Extractors
}

// teachingGroups classify the teaching type from marker keywords.
var teachingGroups = []keywordGroup{
	{"commentary", []string{"bhāṣya", "bhashya", "vṛtti", "vritti", "ṭīkā", "tika"}},
	{"dialogue", []string{"uvāca", "uvaca", "papraccha", "pṛcchati", "pricchati"}},
	{"explanation", []string{"ucyate", "vyākhyā", "vyakhya", "ityarthaḥ", "ityarthah"}},
}

func (x *philosophicalExtractor) Extract(raw, scriptureID string, seed int) *LogicalUnit {
	lines := x.e.prepare(raw, scriptureID)
	if len(lines) == 0 {
		unit := assemble(KindPhilosophical, nil, MethodFallback)
		unit.Philosophical = &PhilosophicalContext{TeachingType: "teaching"}
		return unit
	}

	start := clampSeed(seed, len(lines))
	unitLines := []corpusLine{lines[start]}
	speaker := lines[start].speaker()
	lastRef := lines[start].marker
	concept := matchFirst(lowerText(unitLines), x.e.gaz.Concepts)

	for i := start + 1; i < len(lines) && len(unitLines) < x.e.opts.MaxUnitLines; i++ {
		l := lines[i]

		// Dialogue-turn boundary.
		if sp := l.speaker(); sp != "" {
			if speaker != "" && sp != speaker {
				break
			}
			speaker = sp
		}

		// Reference discontinuity boundary.
		if l.marker != nil && lastRef != nil && !l.marker.SameChapter(lastRef) {
			break
		}

		// Concept boundary: the teaching has moved to a different concept.
		lineConcept := matchFirst(lowerLine(l), x.e.gaz.Concepts)
		if concept != "" && lineConcept != "" && foldASCII(lineConcept) != foldASCII(concept) {
			break
		}
		if concept == "" {
			concept = lineConcept
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

	unit := assemble(KindPhilosophical, unitLines, method)
	text := lowerText(unitLines)
	unit.Philosophical = &PhilosophicalContext{
		TeachingType:         scoreKeywords(text, teachingGroups, "teaching"),
		PhilosophicalConcept: matchFirst(text, x.e.gaz.Concepts),
	}
	return unit
}

// lowerLine lowercases one line for keyword scans.
func lowerLine(l corpusLine) string {
	return lowerText([]corpusLine{l})
}
