package extract

// fallbackExtractor is the generic strategy: when no specialized strategy
// applies it returns the smallest coherent span, down to a single line,
// with best-effort canonical-reference tagging. Its units are always
// tagged MethodFallback.
type fallbackExtractor struct {
	e *Extractors
}

func (x *fallbackExtractor) Extract(raw, scriptureID string, seed int) *LogicalUnit {
	lines := x.e.prepare(raw, scriptureID)
	if len(lines) == 0 {
		return assemble(KindGeneric, nil, MethodFallback)
	}

	start := clampSeed(seed, len(lines))
	unitLines := []corpusLine{lines[start]}

	// Grow the span only while the reference run stays continuous; a
	// single line is an acceptable unit here.
	lastRef := lines[start].marker
	for i := start + 1; i < len(lines) && len(unitLines) < x.e.opts.MaxUnitLines; i++ {
		l := lines[i]
		if lastRef == nil || l.marker == nil || !lastRef.Continuous(l.marker) {
			break
		}
		unitLines = append(unitLines, l)
		lastRef = l.marker
	}

	return assemble(KindGeneric, unitLines, MethodFallback)
}
