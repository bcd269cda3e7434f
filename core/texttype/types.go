// Package texttype classifies raw corpus files into structural text types.
//
// The type drives extractor dispatch: an Epic file is segmented into story
// units, a Hymnal file into complete hymns, and so on. Classification is
// rule-based and deterministic so that results stay auditable across corpus
// re-ingestions.
package texttype

// TextType represents the structural genre of a corpus file.
type TextType string

// Text type constants.
const (
	Epic          TextType = "EPIC"
	Hymnal        TextType = "HYMNAL"
	Philosophical TextType = "PHILOSOPHICAL"
	Narrative     TextType = "NARRATIVE"
	Dialogue      TextType = "DIALOGUE"
	Other         TextType = "OTHER"
)

// validTextTypes is the set of valid text types.
var validTextTypes = map[TextType]bool{
	Epic:          true,
	Hymnal:        true,
	Philosophical: true,
	Narrative:     true,
	Dialogue:      true,
	Other:         true,
}

// IsValid returns true if the text type is valid.
func (t TextType) IsValid() bool {
	return validTextTypes[t]
}

// Confidence grades how decisively the classifier separated the winning
// type from the runner-up.
type Confidence string

// Confidence constants.
const (
	High   Confidence = "HIGH"
	Medium Confidence = "MEDIUM"
	Low    Confidence = "LOW"
)

// Classification is the immutable result of one Classify call.
type Classification struct {
	// Type is the winning text type.
	Type TextType `json:"type"`

	// Confidence grades the winning margin over the runner-up.
	Confidence Confidence `json:"confidence"`

	// Reasoning records which rule groups contributed to the decision.
	Reasoning string `json:"reasoning"`

	// DetectedPatterns lists the specific matched tokens, for debugging.
	DetectedPatterns []string `json:"detected_patterns,omitempty"`
}

// Legacy six-way category tags used by the previous corpus ingestion layer.
const (
	LegacyVeda      = "veda"
	LegacyUpanishad = "upanishad"
	LegacyPurana    = "purana"
	LegacyEpic      = "epic"
	LegacyGita      = "gita"
	LegacyOther     = "other"
)

var legacyToType = map[string]TextType{
	LegacyVeda:      Hymnal,
	LegacyUpanishad: Philosophical,
	LegacyPurana:    Narrative,
	LegacyEpic:      Epic,
	LegacyGita:      Dialogue,
	LegacyOther:     Other,
}

var typeToLegacy = map[TextType]string{
	Hymnal:        LegacyVeda,
	Philosophical: LegacyUpanishad,
	Narrative:     LegacyPurana,
	Epic:          LegacyEpic,
	Dialogue:      LegacyGita,
	Other:         LegacyOther,
}

// FromLegacyType maps a legacy category tag onto a TextType.
// Unrecognized tags map to Other.
func FromLegacyType(tag string) TextType {
	if t, ok := legacyToType[tag]; ok {
		return t
	}
	return Other
}

// ToLegacyType maps a TextType back onto its legacy category tag.
// Round-tripping any legacy tag through FromLegacyType and back returns
// the original tag.
func ToLegacyType(t TextType) string {
	if tag, ok := typeToLegacy[t]; ok {
		return tag
	}
	return LegacyOther
}
