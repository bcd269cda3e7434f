// Package ref models canonical scripture references and parses the legacy
// marker convention used throughout the plain-text corpora.
package ref

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Ref represents a canonical scripture reference.
type Ref struct {
	// Scripture is the lowercase marker prefix (e.g., "bhg", "rv", "mbh").
	Scripture string `json:"scripture"`

	// Chapter is the chapter (or mandala/kanda) number, 1-indexed.
	Chapter int `json:"chapter"`

	// Section is the optional section (sukta/adhyaya) number, 0 when absent.
	Section int `json:"section,omitempty"`

	// Verse is the verse number, 0 for whole-chapter references.
	Verse int `json:"verse,omitempty"`

	// VerseEnd is the ending verse for ranges (optional).
	VerseEnd int `json:"verse_end,omitempty"`

	// Raw is the reference token exactly as it appeared in the corpus.
	Raw string `json:"raw,omitempty"`
}

// refGrammar is the participle grammar for legacy reference tokens.
// Examples: "bhg_2", "bhg_2,40", "bhg_2,40.20", "ys_1.2", "rv_1,1.1-4"
//
//nolint:govet // participle grammar tags are not standard struct tags
type refGrammar struct {
	Prefix   string     `parser:"@Ident"`
	Chapter  int        `parser:"'_' @Int"`
	Section  *int       `parser:"( ',' @Int )?"`
	VerseRef *versePart `parser:"( '.' @@ )?"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type versePart struct {
	Verse int  `parser:"@Int"`
	Range *int `parser:"( '-' @Int )?"`
}

// refLexer defines the lexer for legacy reference tokens.
// Prefixes are always lowercase ASCII in the corpora.
var refLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[a-z]+`},
	{Name: "Punct", Pattern: `[_,.\-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// refParser is the participle parser for legacy reference tokens.
var refParser = participle.MustBuild[refGrammar](
	participle.Lexer(refLexer),
	participle.Elide("Whitespace"),
)

// Parse parses a legacy reference token.
// Supported formats:
//   - "bhg_2" (scripture and chapter)
//   - "bhg_2,40" (with section)
//   - "bhg_2,40.20" (with verse)
//   - "ys_1.2" (no section convention)
//   - "rv_1,1.1-4" (verse range)
func Parse(s string) (*Ref, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty reference string")
	}

	parsed, err := refParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("invalid reference format: %q: %w", s, err)
	}

	ref := &Ref{
		Scripture: parsed.Prefix,
		Chapter:   parsed.Chapter,
		Raw:       s,
	}

	if parsed.Section != nil {
		ref.Section = *parsed.Section
	}

	if parsed.VerseRef != nil {
		ref.Verse = parsed.VerseRef.Verse
		if parsed.VerseRef.Range != nil {
			ref.VerseEnd = *parsed.VerseRef.Range
		}
	}

	return ref, nil
}

// String returns the canonical token representation of the reference.
func (r *Ref) String() string {
	var sb strings.Builder
	sb.WriteString(r.Scripture)
	sb.WriteString("_")
	sb.WriteString(strconv.Itoa(r.Chapter))

	if r.Section > 0 {
		sb.WriteString(",")
		sb.WriteString(strconv.Itoa(r.Section))
	}

	if r.Verse > 0 {
		sb.WriteString(".")
		sb.WriteString(strconv.Itoa(r.Verse))

		if r.VerseEnd > 0 {
			sb.WriteString("-")
			sb.WriteString(strconv.Itoa(r.VerseEnd))
		}
	}

	return sb.String()
}

// IsRange returns true if this reference spans multiple verses.
func (r *Ref) IsRange() bool {
	return r.VerseEnd > 0 && r.VerseEnd > r.Verse
}

// Count returns the number of verses covered by this reference.
func (r *Ref) Count() int {
	if r.IsRange() {
		return r.VerseEnd - r.Verse + 1
	}
	if r.Verse > 0 {
		return 1
	}
	return 0
}

// SameChapter returns true if both references sit in the same
// scripture, chapter, and section.
func (r *Ref) SameChapter(other *Ref) bool {
	if other == nil {
		return false
	}
	return r.Scripture == other.Scripture &&
		r.Chapter == other.Chapter &&
		r.Section == other.Section
}

// Compare orders two references within the same scripture.
// Returns -1, 0, or 1. References from different scriptures compare by prefix.
func (r *Ref) Compare(other *Ref) int {
	if r.Scripture != other.Scripture {
		return strings.Compare(r.Scripture, other.Scripture)
	}
	if r.Chapter != other.Chapter {
		return sign(r.Chapter - other.Chapter)
	}
	if r.Section != other.Section {
		return sign(r.Section - other.Section)
	}
	return sign(r.Verse - other.Verse)
}

// Continuous reports whether next follows r without a gap larger than one
// verse inside the same chapter/section. A chapter or section change is
// never continuous; extractors treat it as a unit boundary.
func (r *Ref) Continuous(next *Ref) bool {
	if next == nil || !r.SameChapter(next) {
		return false
	}
	last := r.Verse
	if r.VerseEnd > last {
		last = r.VerseEnd
	}
	return next.Verse >= last && next.Verse <= last+1
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
