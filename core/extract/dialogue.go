package extract

// dialogueExtractor groups lines into one speaker turn: the attribution
// line plus everything spoken until the next attribution, tracking the
// alternation between the two named parties.
type dialogueExtractor struct {
	e *Extractors
}

func (x *dialogueExtractor) Extract(raw, scriptureID string, seed int) *LogicalUnit {
	lines := x.e.prepare(raw, scriptureID)
	if len(lines) == 0 {
		unit := assemble(KindDialogue, nil, MethodFallback)
		unit.Dialogue = &DialogueContext{}
		return unit
	}

	start := clampSeed(seed, len(lines))

	// Back up to the attribution that opens the current turn, so a seed in
	// the middle of a speech still yields the whole turn.
	for start > 0 && lines[start].speaker() == "" {
		if lines[start-1].speaker() != "" {
			start--
			break
		}
		start--
	}

	unitLines := []corpusLine{lines[start]}
	speaker := lines[start].speaker()
	turns := 0
	if speaker != "" {
		turns = 1
	}

	for i := start + 1; i < len(lines) && len(unitLines) < x.e.opts.MaxUnitLines; i++ {
		l := lines[i]
		if sp := l.speaker(); sp != "" && sp != speaker {
			// Next party's turn begins.
			break
		}
		unitLines = append(unitLines, l)
	}

	method := MethodPrimary
	if speaker == "" || !hasMarkers(unitLines) {
		method = MethodFallback
	}

	unit := assemble(KindDialogue, unitLines, method)
	unit.Dialogue = &DialogueContext{
		Speakers: dialogueSpeakers(lines),
		Turns:    turns,
	}
	return unit
}

// dialogueSpeakers returns the distinct attributed speakers across the
// whole input, in order of first attribution. Dialogue corpora alternate
// between two parties; extra names are kept for debuggability.
func dialogueSpeakers(lines []corpusLine) []string {
	var speakers []string
	seen := map[string]bool{}
	for _, l := range lines {
		sp := l.speaker()
		if sp == "" {
			continue
		}
		key := foldASCII(sp)
		if !seen[key] {
			seen[key] = true
			speakers = append(speakers, sp)
		}
	}
	return speakers
}
