package extract

import (
	"regexp"
	"strings"

	"github.com/dhvani-labs/granthika/core/cleanup"
	"github.com/dhvani-labs/granthika/core/ref"
	"github.com/dhvani-labs/granthika/core/registry"
	"github.com/dhvani-labs/granthika/core/texttype"
)

// Extractor turns a run of raw corpus lines into one logical unit.
// Implementations never fail and never return nil: on insufficient
// structure they return the best partial span found, tagged MethodFallback.
type Extractor interface {
	Extract(raw, scriptureID string, seed int) *LogicalUnit
}

// Options tunes unit boundary detection.
type Options struct {
	// MaxUnitLines caps how many lines a single unit may span.
	MaxUnitLines int
}

// DefaultOptions returns the tuned defaults.
func DefaultOptions() Options {
	return Options{MaxUnitLines: 24}
}

// Extractors owns the strategy table and the shared collaborators every
// strategy needs: the validated pattern registry, the cleanup service, and
// the gazetteers. Immutable after construction; safe for concurrent use.
type Extractors struct {
	reg     *registry.Registry
	cleaner *cleanup.Service
	gaz     *Gazetteer
	opts    Options

	table map[texttype.TextType]Extractor
}

// New creates the strategy table with default gazetteers and options.
func New(reg *registry.Registry) *Extractors {
	return NewWithConfig(reg, DefaultGazetteer(), DefaultOptions())
}

// NewWithConfig creates the strategy table with custom gazetteers and options.
func NewWithConfig(reg *registry.Registry, gaz *Gazetteer, opts Options) *Extractors {
	if opts.MaxUnitLines <= 0 {
		opts.MaxUnitLines = DefaultOptions().MaxUnitLines
	}
	e := &Extractors{
		reg:     reg,
		cleaner: cleanup.NewService(reg),
		gaz:     gaz,
		opts:    opts,
	}
	e.table = map[texttype.TextType]Extractor{
		texttype.Epic:          &epicExtractor{e},
		texttype.Narrative:     &epicExtractor{e},
		texttype.Hymnal:        &hymnalExtractor{e},
		texttype.Philosophical: &philosophicalExtractor{e},
		texttype.Dialogue:      &dialogueExtractor{e},
		texttype.Other:         &fallbackExtractor{e},
	}
	return e
}

// ForType returns the strategy for a text type. Unrecognized types get the
// generic fallback strategy.
func (e *Extractors) ForType(t texttype.TextType) Extractor {
	if ex, ok := e.table[t]; ok {
		return ex
	}
	return &fallbackExtractor{e}
}

// ForScripture returns the strategy assigned to a scripture in the registry.
func (e *Extractors) ForScripture(scriptureID string) Extractor {
	return e.ForType(e.reg.Strategy(scriptureID))
}

// corpusLine is one raw line after marker recovery and cleanup.
type corpusLine struct {
	// cleaned is the display-cleaned text (dandas kept, markers stripped).
	cleaned string

	// marker is the parsed reference marker, nil when the line has none.
	marker *ref.Ref

	// token is the marker token as it appeared, empty when absent.
	token string
}

// attributionRe matches "<name> uvāca" speaker attributions in IAST or
// Devanagari.
var attributionRe = regexp.MustCompile(`([\p{L}\p{M}]+)\s+(?:uvāca|uvaca|उवाच)`)

// speaker returns the attributed speaker on the line, or empty.
func (l *corpusLine) speaker() string {
	m := attributionRe.FindStringSubmatch(strings.ToLower(l.cleaned))
	if m == nil {
		return ""
	}
	return m[1]
}

// prepare splits raw text into cleaned corpus lines. Lines that clean down
// to nothing are dropped; markers are recovered before cleanup strips them.
func (e *Extractors) prepare(raw, scriptureID string) []corpusLine {
	var lines []corpusLine
	for _, rawLine := range strings.Split(raw, "\n") {
		if strings.TrimSpace(rawLine) == "" {
			continue
		}

		line := corpusLine{}
		if m := ref.FindMarker(rawLine); m != nil {
			line.marker = m.Ref
			line.token = m.Token
		}

		res := e.cleaner.CleanForAudio(rawLine, scriptureID, cleanup.DisplayOptions())
		line.cleaned = res.CleanedText
		if line.cleaned == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// clampSeed bounds a seed position into the prepared line slice.
func clampSeed(seed, n int) int {
	if seed < 0 {
		return 0
	}
	if seed >= n {
		return n - 1
	}
	return seed
}

// assemble builds the shared fields of a unit from its lines.
func assemble(kind Kind, lines []corpusLine, method Method) *LogicalUnit {
	unit := &LogicalUnit{
		Kind:             kind,
		ExtractionMethod: method,
	}

	var texts []string
	var count int
	for _, l := range lines {
		texts = append(texts, l.cleaned)
		if l.marker != nil {
			n := l.marker.Count()
			if n == 0 {
				n = 1
			}
			count += n
		}
	}
	unit.RawText = strings.Join(texts, "\n")
	unit.ContentHash = hashText(unit.RawText)

	for _, l := range lines {
		if l.token != "" {
			unit.VerseRange.StartRef = l.token
			break
		}
	}
	for i := len(lines) - 1; i >= 0; i-- {
		if lines[i].token != "" {
			unit.VerseRange.EndRef = lines[i].token
			break
		}
	}
	unit.VerseRange.Count = count

	switch {
	case unit.VerseRange.StartRef == "":
		// No canonical reference recoverable.
	case unit.VerseRange.StartRef == unit.VerseRange.EndRef:
		unit.TechnicalReference = unit.VerseRange.StartRef
	default:
		unit.TechnicalReference = unit.VerseRange.StartRef + "-" + unit.VerseRange.EndRef
	}

	return unit
}

// lowerText joins unit lines into one lowercased string for gazetteer and
// keyword scans.
func lowerText(lines []corpusLine) string {
	var sb strings.Builder
	for i, l := range lines {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(l.cleaned)
	}
	return strings.ToLower(sb.String())
}

// scoreKeywords tallies how many of each keyword group appear in the text
// and returns the label of the best-scoring group, or fallback when none
// scored. Groups are evaluated in order, so earlier groups win ties.
func scoreKeywords(lowerText string, groups []keywordGroup, fallback string) string {
	best := fallback
	bestScore := 0
	for _, g := range groups {
		score := 0
		for _, w := range g.words {
			if strings.Contains(lowerText, w) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = g.label
		}
	}
	return best
}

// keywordGroup is one labeled keyword list for scoreKeywords.
type keywordGroup struct {
	label string
	words []string
}
