// Package registry holds the validated scripture pattern table.
//
// The table maps each canonical scripture to its verse-marker removal
// patterns and its extraction strategy. Construction is fail-fast: every
// scripture on the canonical roster must have an entry or Build returns a
// ConfigurationError and startup halts. After construction the registry is
// immutable and safe for unbounded concurrent reads; per-call lookups on
// the validated table degrade gracefully instead of failing the caller.
package registry

import (
	_ "embed"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dhvani-labs/granthika/core/errors"
	"github.com/dhvani-labs/granthika/core/texttype"
	"github.com/dhvani-labs/granthika/internal/logging"
)

//go:embed scriptures.yaml
var embeddedTable []byte

// CanonicalRoster returns the fixed roster of the 36 canonical scripture
// identifiers. The registry refuses to build unless every one has an entry.
func CanonicalRoster() []string {
	return []string{
		"Rigveda", "Samaveda", "Yajurveda", "Atharvaveda",
		"Isha_Upanishad", "Kena_Upanishad", "Katha_Upanishad",
		"Prashna_Upanishad", "Mundaka_Upanishad", "Mandukya_Upanishad",
		"Taittiriya_Upanishad", "Aitareya_Upanishad", "Chandogya_Upanishad",
		"Brihadaranyaka_Upanishad", "Shvetashvatara_Upanishad",
		"Bhagavad_Gita",
		"Mahabharata", "Ramayana",
		"Vishnu_Purana", "Bhagavata_Purana", "Shiva_Purana",
		"Garuda_Purana", "Markandeya_Purana", "Matsya_Purana",
		"Kurma_Purana", "Linga_Purana", "Brahma_Purana", "Agni_Purana",
		"Yoga_Sutras", "Brahma_Sutras", "Samkhya_Karika",
		"Manusmriti", "Vivekachudamani", "Ashtavakra_Gita",
		"Narada_Bhakti_Sutras", "Hatha_Yoga_Pradipika",
	}
}

// PatternEntry is one declared removal pattern in the table file.
type PatternEntry struct {
	// Name identifies the pattern in cleanup metadata (e.g., "comment-marker").
	Name string `yaml:"name"`

	// Regex is the removal pattern source.
	Regex string `yaml:"regex"`
}

// ScriptureEntry is one scripture's declaration in the table file.
type ScriptureEntry struct {
	// ID is the canonical scripture identifier (e.g., "Bhagavad_Gita").
	ID string `yaml:"id"`

	// Prefix is the lowercase marker prefix used in reference tokens.
	Prefix string `yaml:"prefix"`

	// Strategy is the extraction strategy for this scripture.
	Strategy texttype.TextType `yaml:"strategy"`

	// RemovalPatterns are the marker-removal patterns, applied in order.
	RemovalPatterns []PatternEntry `yaml:"removal_patterns"`
}

// Table is the declarative pattern table as loaded from YAML or XML.
type Table struct {
	Scriptures []ScriptureEntry `yaml:"scriptures"`
}

// removalPattern is a compiled removal pattern.
type removalPattern struct {
	name string
	re   *regexp.Regexp
}

// ScriptureConfig is the compiled, immutable configuration for one scripture.
type ScriptureConfig struct {
	// ID is the canonical scripture identifier.
	ID string

	// Prefix is the lowercase marker prefix used in reference tokens.
	Prefix string

	// Strategy is the extraction strategy for this scripture.
	Strategy texttype.TextType

	patterns []removalPattern
}

// PatternNames returns the names of the removal patterns, in order.
func (c *ScriptureConfig) PatternNames() []string {
	names := make([]string, len(c.patterns))
	for i, p := range c.patterns {
		names[i] = p.name
	}
	return names
}

// Apply sequentially applies the removal patterns to one line and collapses
// whitespace. The second return lists the names of patterns that matched.
func (c *ScriptureConfig) Apply(line string) (string, []string) {
	var removed []string
	for _, p := range c.patterns {
		if p.re.MatchString(line) {
			line = p.re.ReplaceAllString(line, " ")
			removed = append(removed, p.name)
		}
	}
	return collapseWhitespace(line), removed
}

// Registry is the validated scripture pattern table. Immutable after Build.
type Registry struct {
	configs map[string]*ScriptureConfig
}

// Build compiles the table and validates it against the roster. Any roster
// scripture without an entry, and any entry that fails to compile, yields a
// ConfigurationError: missing patterns must be impossible after startup.
func Build(roster []string, table *Table) (*Registry, error) {
	configs := make(map[string]*ScriptureConfig, len(table.Scriptures))

	for _, entry := range table.Scriptures {
		if entry.ID == "" {
			return nil, errors.NewConfiguration("registry", "entry with empty scripture id")
		}
		if entry.Prefix == "" {
			return nil, errors.NewConfiguration("registry", "entry without marker prefix: "+entry.ID)
		}
		if !entry.Strategy.IsValid() {
			return nil, errors.NewConfiguration("registry",
				"invalid strategy "+string(entry.Strategy)+" for "+entry.ID)
		}

		cfg := &ScriptureConfig{
			ID:       entry.ID,
			Prefix:   entry.Prefix,
			Strategy: entry.Strategy,
		}
		for _, p := range entry.RemovalPatterns {
			re, err := regexp.Compile(p.Regex)
			if err != nil {
				return nil, &errors.ConfigurationError{
					Component: "registry",
					Message:   "invalid removal pattern " + p.Name + " for " + entry.ID,
					Err:       err,
				}
			}
			cfg.patterns = append(cfg.patterns, removalPattern{name: p.Name, re: re})
		}
		configs[entry.ID] = cfg
	}

	var missing []string
	for _, id := range roster {
		if _, ok := configs[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, errors.NewConfiguration("registry", "roster scriptures without pattern entries", missing...)
	}

	return &Registry{configs: configs}, nil
}

// Default builds the registry from the embedded pattern table and the
// canonical roster. This is the one-time startup path.
func Default() (*Registry, error) {
	table, err := LoadTableYAML(embeddedTable)
	if err != nil {
		return nil, err
	}
	return Build(CanonicalRoster(), table)
}

// LoadTableYAML parses a YAML pattern table.
func LoadTableYAML(data []byte) (*Table, error) {
	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, &errors.ParseError{Format: "YAML", Message: "pattern table", Err: err}
	}
	return &table, nil
}

// Get returns the configuration for a scripture, or false when absent.
func (r *Registry) Get(scriptureID string) (*ScriptureConfig, bool) {
	cfg, ok := r.configs[scriptureID]
	return cfg, ok
}

// Strategy returns the extraction strategy for a scripture. Unknown
// scriptures fall back to the generic strategy.
func (r *Registry) Strategy(scriptureID string) texttype.TextType {
	if cfg, ok := r.configs[scriptureID]; ok {
		return cfg.Strategy
	}
	return texttype.Other
}

// Len returns the number of registered scriptures.
func (r *Registry) Len() int {
	return len(r.configs)
}

// IDs returns the registered scripture identifiers in roster order where
// possible, with any extra entries appended.
func (r *Registry) IDs() []string {
	seen := make(map[string]bool, len(r.configs))
	var ids []string
	for _, id := range CanonicalRoster() {
		if _, ok := r.configs[id]; ok {
			ids = append(ids, id)
			seen[id] = true
		}
	}
	var extra []string
	for id := range r.configs {
		if !seen[id] {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	return append(ids, extra...)
}

// ApplyRemoval sequentially applies the scripture's removal patterns to one
// line, then collapses whitespace. An unknown scripture logs a warning and
// returns the line unchanged.
func (r *Registry) ApplyRemoval(line, scriptureID string) string {
	cfg, ok := r.configs[scriptureID]
	if !ok {
		logging.UnknownScripture("registry", scriptureID)
		return line
	}
	cleaned, _ := cfg.Apply(line)
	return cleaned
}

var whitespaceRe = regexp.MustCompile(`\s+`)

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
