package extract

import (
	_ "embed"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dhvani-labs/granthika/core/errors"
)

//go:embed gazetteer.yaml
var embeddedGazetteer []byte

// Gazetteer holds the keyword lists extractors match unit text against.
// The lists are configuration data: callers may load their own.
type Gazetteer struct {
	Characters []string `yaml:"characters"`
	Deities    []string `yaml:"deities"`
	Concepts   []string `yaml:"concepts"`
	Locations  []string `yaml:"locations"`
	Meters     []string `yaml:"meters"`
}

// DefaultGazetteer loads the embedded gazetteer lists. The embedded file is
// validated at build time, so this cannot fail at runtime.
func DefaultGazetteer() *Gazetteer {
	gaz, err := LoadGazetteer(embeddedGazetteer)
	if err != nil {
		// Unreachable with the embedded file; keep extraction alive anyway.
		return &Gazetteer{}
	}
	return gaz
}

// LoadGazetteer parses gazetteer lists from YAML.
func LoadGazetteer(data []byte) (*Gazetteer, error) {
	var gaz Gazetteer
	if err := yaml.Unmarshal(data, &gaz); err != nil {
		return nil, &errors.ParseError{Format: "YAML", Message: "gazetteer", Err: err}
	}
	return &gaz, nil
}

// matchAll returns the list entries present in the lowercased text, in
// list order, without duplicate canonical spellings.
func matchAll(lowerText string, list []string) []string {
	var found []string
	seen := map[string]bool{}
	for _, word := range list {
		if strings.Contains(lowerText, word) {
			key := foldASCII(word)
			if !seen[key] {
				seen[key] = true
				found = append(found, word)
			}
		}
	}
	return found
}

// matchFirst returns the first list entry present in the lowercased text.
func matchFirst(lowerText string, list []string) string {
	for _, word := range list {
		if strings.Contains(lowerText, word) {
			return word
		}
	}
	return ""
}

// foldASCII collapses IAST diacritics to ASCII so "kṛṣṇa" and "krishna"
// dedup to one character entry.
var diacriticFold = strings.NewReplacer(
	"ā", "a", "ī", "i", "ū", "u",
	"ṛ", "ri", "ṝ", "ri", "ḷ", "li", "ḹ", "li",
	"ṃ", "m", "ṁ", "m", "ḥ", "h",
	"ś", "sh", "ṣ", "sh",
	"ṭ", "t", "ḍ", "d", "ṇ", "n", "ñ", "n", "ṅ", "n",
)

func foldASCII(s string) string {
	return diacriticFold.Replace(s)
}
