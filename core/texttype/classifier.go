package texttype

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Weights holds the rule-group weights and confidence margins.
// The margins separating High/Medium/Low were tuned empirically against the
// legacy corpora; they are configuration, not contract.
type Weights struct {
	// Filename is the weight of filename keyword matches.
	Filename float64

	// Structure is the weight of citation-convention matches in the body.
	Structure float64

	// Keyword is the weight of content-vocabulary matches.
	Keyword float64

	// HighMargin is the minimum winning margin for High confidence.
	HighMargin float64

	// MediumMargin is the minimum winning margin for Medium confidence.
	MediumMargin float64
}

// DefaultWeights returns the tuned default weights.
func DefaultWeights() Weights {
	return Weights{
		Filename:     3,
		Structure:    2,
		Keyword:      1,
		HighMargin:   3,
		MediumMargin: 1,
	}
}

// Vocabulary is the fixed keyword lists used by the content rule group.
// Lists carry both IAST and plain-ASCII spellings since corpora mix both.
type Vocabulary struct {
	// Deities favor Hymnal.
	Deities []string

	// Concepts favor Philosophical.
	Concepts []string

	// Characters favor Epic (and, at half weight, Narrative).
	Characters []string
}

// DefaultVocabulary returns the built-in keyword lists.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Deities: []string{
			"agni", "indra", "soma", "varuṇa", "varuna", "mitra", "uṣas", "ushas",
			"rudra", "viṣṇu", "vishnu", "śiva", "shiva", "devī", "devi", "sarasvatī",
			"sarasvati", "marut", "aśvin", "ashvin", "bṛhaspati", "brihaspati",
		},
		Concepts: []string{
			"brahman", "ātman", "atman", "mokṣa", "moksha", "māyā", "maya",
			"saṃsāra", "samsara", "karma", "jñāna", "jnana", "vedānta", "vedanta",
			"nirguṇa", "nirguna", "turīya", "turiya", "prāṇa", "prana",
		},
		Characters: []string{
			"arjuna", "kṛṣṇa", "krishna", "rāma", "rama", "sītā", "sita",
			"hanumān", "hanuman", "bhīṣma", "bhishma", "yudhiṣṭhira", "yudhishthira",
			"draupadī", "draupadi", "rāvaṇa", "ravana", "lakṣmaṇa", "lakshmana",
			"duryodhana", "bhīma", "bhima", "karṇa", "karna",
		},
	}
}

// filenameRules maps filename substrings to text types.
var filenameRules = []struct {
	substr string
	t      TextType
}{
	{"gita", Dialogue},
	{"mahabharata", Epic},
	{"ramayana", Epic},
	{"veda", Hymnal},
	{"samhita", Hymnal},
	{"sukta", Hymnal},
	{"upanishad", Philosophical},
	{"sutra", Philosophical},
	{"karika", Philosophical},
	{"purana", Narrative},
	{"itihasa", Epic},
}

// Citation-convention patterns in the body. Section-bearing tokens use the
// "prefix_chapter,section.verse" convention; sectionless tokens omit the
// comma. Speaker attributions use the "<name> uvāca" formula.
var (
	sectionTokenRe     = regexp.MustCompile(`\b[a-z]+_([0-9]+),([0-9]+)\.[0-9]+\b`)
	sectionlessTokenRe = regexp.MustCompile(`\b[a-z]+_[0-9]+\.[0-9]+\b`)
	uvacaRe            = regexp.MustCompile(`([\p{L}\p{M}]+)\s+(?:uvāca|uvaca|उवाच)`)
)

// narrativeMarkers are episode-boundary formulas common in purana prose.
var narrativeMarkers = []string{
	"atha", "iti śrutvā", "iti shrutva", "kathā", "katha", "purākalpe",
	"purakalpe", "śṛṇu", "shrinu", "vaṃśa", "vamsha",
}

// Classifier assigns a TextType to a raw corpus file.
// Safe for concurrent use; it holds only immutable configuration.
type Classifier struct {
	weights Weights
	vocab   Vocabulary
}

// NewClassifier creates a classifier with the given weights and the
// built-in vocabulary.
func NewClassifier(w Weights) *Classifier {
	return &Classifier{weights: w, vocab: DefaultVocabulary()}
}

// NewClassifierWithVocabulary creates a classifier with custom keyword lists.
func NewClassifierWithVocabulary(w Weights, v Vocabulary) *Classifier {
	return &Classifier{weights: w, vocab: v}
}

// Classify determines the text type of a corpus file. Deterministic: the
// same filename and content always produce the same Classification.
func (c *Classifier) Classify(filename, content string) Classification {
	scores := map[TextType]float64{}
	var patterns []string
	var groups []string

	lowerName := strings.ToLower(filename)
	lowerContent := strings.ToLower(content)

	// Group 1: filename rules (highest weight).
	if matched := c.applyFilenameRules(lowerName, scores, &patterns); matched {
		groups = append(groups, "filename")
	}

	// Group 2: structural citation conventions (medium weight).
	if matched := c.applyStructureRules(lowerContent, scores, &patterns); matched {
		groups = append(groups, "structure")
	}

	// Group 3: content keywords (lowest weight).
	if matched := c.applyKeywordRules(lowerContent, scores, &patterns); matched {
		groups = append(groups, "keywords")
	}

	winner, margin := rank(scores)
	if winner == "" {
		return Classification{
			Type:       Other,
			Confidence: Low,
			Reasoning:  "no classification rules fired",
		}
	}

	conf := Low
	switch {
	case margin >= c.weights.HighMargin:
		conf = High
	case margin >= c.weights.MediumMargin:
		conf = Medium
	}

	return Classification{
		Type:             winner,
		Confidence:       conf,
		Reasoning:        fmt.Sprintf("rule groups: %s", strings.Join(groups, "+")),
		DetectedPatterns: patterns,
	}
}

func (c *Classifier) applyFilenameRules(name string, scores map[TextType]float64, patterns *[]string) bool {
	matched := false
	for _, rule := range filenameRules {
		if strings.Contains(name, rule.substr) {
			scores[rule.t] += c.weights.Filename
			*patterns = append(*patterns, "filename:"+rule.substr)
			matched = true
		}
	}
	return matched
}

func (c *Classifier) applyStructureRules(content string, scores map[TextType]float64, patterns *[]string) bool {
	matched := false

	// Two-party "X uvāca" alternation signals dialogue.
	speakers := map[string]bool{}
	for _, m := range uvacaRe.FindAllStringSubmatch(content, -1) {
		speakers[m[1]] = true
	}
	if len(speakers) >= 2 {
		scores[Dialogue] += c.weights.Structure
		*patterns = append(*patterns, "structure:uvaca-alternation")
		matched = true
	}

	// Section-bearing tokens: a repeating chapter,section pair is the hymn
	// convention (verses within one sukta); an advancing section is the
	// philosophical chapter,section.verse convention.
	sectionPairs := map[string]int{}
	for _, m := range sectionTokenRe.FindAllStringSubmatch(content, -1) {
		sectionPairs[m[1]+","+m[2]]++
	}
	if len(sectionPairs) > 0 {
		repeated := false
		for _, n := range sectionPairs {
			if n >= 3 {
				repeated = true
				break
			}
		}
		switch {
		case repeated:
			scores[Hymnal] += c.weights.Structure
			*patterns = append(*patterns, "structure:hymn-numbering")
		case len(speakers) < 2:
			// The section convention signals a philosophical text only
			// when no dialogue alternation claims the file.
			scores[Philosophical] += c.weights.Structure
			*patterns = append(*patterns, "structure:section-numbering")
		}
		matched = true
	}

	// Sectionless chapter.verse tokens with narrative-episode formulas and
	// no dialogue alternation signal narrative prose.
	if len(sectionPairs) == 0 && len(speakers) < 2 && sectionlessTokenRe.MatchString(content) {
		for _, marker := range narrativeMarkers {
			if strings.Contains(content, marker) {
				scores[Narrative] += c.weights.Structure
				*patterns = append(*patterns, "structure:narrative-episode")
				matched = true
				break
			}
		}
	}

	return matched
}

func (c *Classifier) applyKeywordRules(content string, scores map[TextType]float64, patterns *[]string) bool {
	matched := false

	for _, word := range c.vocab.Deities {
		if strings.Contains(content, word) {
			scores[Hymnal] += c.weights.Keyword
			*patterns = append(*patterns, "deity:"+word)
			matched = true
		}
	}
	for _, word := range c.vocab.Concepts {
		if strings.Contains(content, word) {
			scores[Philosophical] += c.weights.Keyword
			*patterns = append(*patterns, "concept:"+word)
			matched = true
		}
	}
	for _, word := range c.vocab.Characters {
		if strings.Contains(content, word) {
			scores[Epic] += c.weights.Keyword
			scores[Narrative] += c.weights.Keyword / 2
			*patterns = append(*patterns, "character:"+word)
			matched = true
		}
	}

	return matched
}

// typePriority breaks score ties deterministically.
var typePriority = map[TextType]int{
	Epic:          0,
	Hymnal:        1,
	Philosophical: 2,
	Dialogue:      3,
	Narrative:     4,
	Other:         5,
}

// rank returns the winning type and its margin over the runner-up.
// Returns "" when no rule fired.
func rank(scores map[TextType]float64) (TextType, float64) {
	if len(scores) == 0 {
		return "", 0
	}

	type entry struct {
		t     TextType
		score float64
	}
	entries := make([]entry, 0, len(scores))
	for t, s := range scores {
		entries = append(entries, entry{t, s})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].score != entries[j].score {
			return entries[i].score > entries[j].score
		}
		return typePriority[entries[i].t] < typePriority[entries[j].t]
	})

	if entries[0].score == 0 {
		return "", 0
	}
	margin := entries[0].score
	if len(entries) > 1 {
		margin = entries[0].score - entries[1].score
	}
	return entries[0].t, margin
}
