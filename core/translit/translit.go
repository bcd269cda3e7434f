// Package translit detects the script of Sanskrit text and transliterates
// IAST romanization into Devanagari.
//
// Transliteration is idempotent: Devanagari and Unknown input pass through
// unmodified, so feeding an output back through changes nothing. Unknown
// covers plain ASCII prose; the pass-through guard keeps ordinary
// non-Sanskrit text from being mangled.
package translit

import (
	"strings"
	"time"
	"unicode"
)

// Script identifies the writing system detected in a text span.
type Script string

// Script constants.
const (
	Iast       Script = "IAST"
	Devanagari Script = "DEVANAGARI"
	Mixed      Script = "MIXED"
	Unknown    Script = "UNKNOWN"
)

// Options controls transliteration behavior.
type Options struct {
	// DevanagariPreferred converts IAST spans to Devanagari.
	DevanagariPreferred bool

	// PreserveNumbers passes ASCII digits through unchanged instead of
	// converting them to Devanagari digits.
	PreserveNumbers bool

	// HandleMixed transliterates the IAST portion of mixed-script spans.
	// When off, mixed spans pass through unchanged.
	HandleMixed bool
}

// DefaultOptions returns the options used by the presentation layer.
func DefaultOptions() Options {
	return Options{
		DevanagariPreferred: true,
		PreserveNumbers:     true,
		HandleMixed:         true,
	}
}

// Result is the outcome of one transliteration call.
type Result struct {
	// Text is the output text.
	Text string `json:"text"`

	// DetectedScript is the script detected in the input.
	DetectedScript Script `json:"detected_script"`

	// WasTransliterated reports whether any conversion happened.
	WasTransliterated bool `json:"was_transliterated"`

	// Confidence is in [0,1]; it rises with the proportion of input that
	// mapped onto known Sanskrit clusters.
	Confidence float64 `json:"confidence"`

	// ProcessingTimeMs is the wall time spent, in milliseconds.
	ProcessingTimeMs float64 `json:"processing_time_ms"`
}

// DetectScript scans character classes to identify the script.
// Diacritic-marked Latin letters signal IAST; Devanagari block presence
// signals Devanagari; both signal Mixed; neither signals Unknown.
func DetectScript(text string) Script {
	var devanagari, diacritics bool
	for _, r := range text {
		switch {
		case r >= 0x0900 && r <= 0x097F:
			devanagari = true
		case iastDiacritics[r]:
			diacritics = true
		}
		if devanagari && diacritics {
			return Mixed
		}
	}
	switch {
	case devanagari:
		return Devanagari
	case diacritics:
		return Iast
	default:
		return Unknown
	}
}

// Transliterate converts the text according to the options. It never fails:
// text it cannot or should not convert passes through unchanged with
// WasTransliterated=false.
func Transliterate(text string, opts Options) Result {
	start := time.Now()

	script := DetectScript(text)
	result := Result{
		Text:           text,
		DetectedScript: script,
	}

	switch script {
	case Unknown:
		// Plain prose: pass through, never mangle.
		result.Confidence = 0
	case Devanagari:
		result.Confidence = devanagariDensity(text)
	case Mixed:
		if opts.DevanagariPreferred && opts.HandleMixed {
			converted, ratio := convertIAST(text, opts)
			result.Text = converted
			result.WasTransliterated = converted != text
			result.Confidence = 0.5 + 0.5*ratio
		} else {
			result.Confidence = 0.5
		}
	case Iast:
		if opts.DevanagariPreferred {
			converted, ratio := convertIAST(text, opts)
			result.Text = converted
			result.WasTransliterated = converted != text
			result.Confidence = 0.6 + 0.4*ratio
		} else {
			_, ratio := convertIAST(text, opts)
			result.Confidence = 0.6 + 0.4*ratio
		}
	}

	result.ProcessingTimeMs = float64(time.Since(start).Microseconds()) / 1000.0
	return result
}

// convertIAST maps IAST grapheme clusters to Devanagari codepoints with
// longest-match-first scanning. It returns the converted text and the
// fraction of Latin letters that mapped onto known clusters.
func convertIAST(text string, opts Options) (string, float64) {
	runes := []rune(text)
	var sb strings.Builder
	sb.Grow(len(text))

	var pending bool // an emitted consonant awaits its vowel
	var letters, mapped int

	closePending := func() {
		if pending {
			sb.WriteRune(virama)
			pending = false
		}
	}

	for i := 0; i < len(runes); {
		cluster, n := longestMatch(runes, i)
		if n == 0 {
			r := runes[i]
			if unicode.IsLetter(r) && r < 0x0900 {
				// Latin letter with no Sanskrit mapping; emit as-is.
				letters++
				closePending()
				sb.WriteRune(r)
			} else if d, ok := digits[r]; ok && !opts.PreserveNumbers {
				closePending()
				sb.WriteRune(d)
			} else {
				closePending()
				sb.WriteRune(r)
			}
			i++
			continue
		}

		letters += n
		mapped += n

		switch {
		case isConsonantCluster(cluster):
			closePending()
			sb.WriteRune(consonants[cluster])
			pending = true
		case isVowelCluster(cluster):
			if pending {
				sb.WriteString(dependentVowels[cluster])
				pending = false
			} else {
				sb.WriteRune(independentVowels[cluster])
			}
		case isSignCluster(cluster):
			// A sign directly after a bare consonant implies the
			// inherent vowel; no virama.
			pending = false
			sb.WriteRune(signs[cluster])
		case isPunctuationCluster(cluster):
			closePending()
			sb.WriteString(punctuation[cluster])
			mapped -= n
			letters -= n
		default: // standalone symbols (avagraha)
			closePending()
			sb.WriteRune(standalone[cluster])
			mapped -= n
			letters -= n
		}
		i += n
	}
	closePending()

	ratio := 1.0
	if letters > 0 {
		ratio = float64(mapped) / float64(letters)
	}
	return sb.String(), ratio
}

// longestMatch finds the longest table entry starting at runes[i].
// Matching is case-insensitive for Latin letters so capitalized proper
// nouns convert like their lowercase forms. Returns the lowercased cluster
// and its length in runes; length 0 means no entry matched.
func longestMatch(runes []rune, i int) (string, int) {
	for n := maxClusterLen; n >= 1; n-- {
		if i+n > len(runes) {
			continue
		}
		candidate := strings.ToLower(string(runes[i : i+n]))
		if isConsonantCluster(candidate) || isVowelCluster(candidate) ||
			isSignCluster(candidate) || isPunctuationCluster(candidate) {
			return candidate, n
		}
		if _, ok := standalone[candidate]; ok {
			return candidate, n
		}
	}
	return "", 0
}

func isConsonantCluster(s string) bool {
	_, ok := consonants[s]
	return ok
}

func isVowelCluster(s string) bool {
	_, ok := independentVowels[s]
	return ok
}

func isSignCluster(s string) bool {
	_, ok := signs[s]
	return ok
}

func isPunctuationCluster(s string) bool {
	_, ok := punctuation[s]
	return ok
}

// devanagariDensity returns the fraction of non-space runes that sit in
// the Devanagari block.
func devanagariDensity(text string) float64 {
	var total, dev int
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if r >= 0x0900 && r <= 0x097F {
			dev++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(dev) / float64(total)
}
