// Package extract turns runs of raw corpus lines into semantically bounded
// logical units: a complete hymn, a teaching exchange, a narrative episode.
//
// Five strategies cover the corpus genres; the classifier's TextType selects
// one through an explicit dispatch table. Every strategy consults the
// pattern registry for scripture-specific marker removal and the cleanup
// service per line, and none of them ever fails: insufficient structure
// degrades to the best partial span found, tagged as a fallback.
package extract

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Method records whether a unit came from the primary strategy or a
// degraded fallback path.
type Method string

// Extraction method constants.
const (
	MethodPrimary  Method = "PRIMARY"
	MethodFallback Method = "FALLBACK"
)

// Kind tags the variant of a LogicalUnit.
type Kind string

// Unit kind constants.
const (
	KindEpic          Kind = "EPIC"
	KindPhilosophical Kind = "PHILOSOPHICAL"
	KindHymnal        Kind = "HYMNAL"
	KindDialogue      Kind = "DIALOGUE"
	KindGeneric       Kind = "GENERIC"
)

// VerseRange bounds a unit by its first and last canonical references.
type VerseRange struct {
	// StartRef is the first reference token in the unit.
	StartRef string `json:"start_ref,omitempty"`

	// EndRef is the last reference token in the unit.
	EndRef string `json:"end_ref,omitempty"`

	// Count is the number of referenced verses in the unit.
	Count int `json:"count"`
}

// EpicContext describes a narrative story unit.
type EpicContext struct {
	// NarrativeType is mythological-story, genealogical-account, or
	// cosmological-description.
	NarrativeType string `json:"narrative_type"`

	// MainCharacters lists gazetteer characters found in the unit.
	MainCharacters []string `json:"main_characters,omitempty"`

	// StoryTheme is the dominant theme keyword, when locatable.
	StoryTheme string `json:"story_theme,omitempty"`

	// Location is the story setting, when locatable.
	Location string `json:"location,omitempty"`
}

// PhilosophicalContext describes a teaching unit.
type PhilosophicalContext struct {
	// TeachingType is commentary, dialogue, teaching, or explanation.
	TeachingType string `json:"teaching_type"`

	// PhilosophicalConcept is the central concept, when one is found.
	PhilosophicalConcept string `json:"philosophical_concept,omitempty"`
}

// HymnalContext describes a hymn unit.
type HymnalContext struct {
	// HymnType is complete-hymn, ritual-chant, or devotional-prayer.
	HymnType string `json:"hymn_type"`

	// Deity is the primary invoked deity.
	Deity string `json:"deity,omitempty"`

	// RitualPurpose is the ritual use, when locatable.
	RitualPurpose string `json:"ritual_purpose,omitempty"`

	// Meter is the Vedic meter, when named in the text.
	Meter string `json:"meter,omitempty"`
}

// DialogueContext describes a speaker-turn unit.
type DialogueContext struct {
	// Speakers lists the named speakers in order of first attribution.
	Speakers []string `json:"speakers,omitempty"`

	// Turns is the number of attribution changes inside the unit.
	Turns int `json:"turns"`
}

// LogicalUnit is one semantically bounded excerpt, tagged by extractor kind.
// Exactly one of the context fields matching Kind is set.
type LogicalUnit struct {
	// Kind tags which variant context is populated.
	Kind Kind `json:"kind"`

	// RawText is the cleaned unit text.
	RawText string `json:"raw_text"`

	// TechnicalReference is the canonical locator for the unit.
	TechnicalReference string `json:"technical_reference,omitempty"`

	// VerseRange bounds the unit by canonical references.
	VerseRange VerseRange `json:"verse_range"`

	// ExtractionMethod records primary versus fallback extraction.
	ExtractionMethod Method `json:"extraction_method"`

	// ContentHash is the BLAKE3 hash of RawText, for downstream dedup.
	ContentHash string `json:"content_hash,omitempty"`

	Epic          *EpicContext          `json:"epic,omitempty"`
	Philosophical *PhilosophicalContext `json:"philosophical,omitempty"`
	Hymnal        *HymnalContext        `json:"hymnal,omitempty"`
	Dialogue      *DialogueContext      `json:"dialogue,omitempty"`
}

// hashText returns the hex BLAKE3 hash of the unit text, empty for empty text.
func hashText(text string) string {
	if text == "" {
		return ""
	}
	sum := blake3.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
