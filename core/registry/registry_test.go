package registry

import (
	"strings"
	"testing"

	"github.com/dhvani-labs/granthika/core/errors"
	"github.com/dhvani-labs/granthika/core/texttype"
)

func TestDefaultCoversCanonicalRoster(t *testing.T) {
	reg, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	roster := CanonicalRoster()
	if len(roster) != 36 {
		t.Fatalf("canonical roster has %d entries, want 36", len(roster))
	}

	for _, id := range roster {
		cfg, ok := reg.Get(id)
		if !ok {
			t.Errorf("Get(%q) missing after successful build", id)
			continue
		}
		if cfg.Prefix == "" {
			t.Errorf("%s has empty marker prefix", id)
		}
		if !cfg.Strategy.IsValid() {
			t.Errorf("%s has invalid strategy %q", id, cfg.Strategy)
		}
		if len(cfg.PatternNames()) == 0 {
			t.Errorf("%s has no removal patterns", id)
		}
	}
}

func TestBuildMissingScripture(t *testing.T) {
	table, err := LoadTableYAML(embeddedTable)
	if err != nil {
		t.Fatalf("LoadTableYAML failed: %v", err)
	}

	// Drop one scripture from the table: construction must fail loudly
	// before any text processing is served.
	var trimmed Table
	for _, entry := range table.Scriptures {
		if entry.ID == "Rigveda" {
			continue
		}
		trimmed.Scriptures = append(trimmed.Scriptures, entry)
	}

	_, err = Build(CanonicalRoster(), &trimmed)
	if err == nil {
		t.Fatal("Build succeeded with Rigveda missing from the table")
	}

	var confErr *errors.ConfigurationError
	if !errors.As(err, &confErr) {
		t.Fatalf("error is %T, want *errors.ConfigurationError", err)
	}
	if len(confErr.Missing) != 1 || confErr.Missing[0] != "Rigveda" {
		t.Errorf("Missing = %v, want [Rigveda]", confErr.Missing)
	}
	if !errors.Is(err, errors.ErrConfiguration) {
		t.Error("ConfigurationError does not unwrap to ErrConfiguration")
	}
}

func TestBuildRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name  string
		entry ScriptureEntry
	}{
		{
			name:  "empty id",
			entry: ScriptureEntry{Prefix: "xx", Strategy: texttype.Hymnal},
		},
		{
			name:  "missing prefix",
			entry: ScriptureEntry{ID: "Test", Strategy: texttype.Hymnal},
		},
		{
			name:  "invalid strategy",
			entry: ScriptureEntry{ID: "Test", Prefix: "xx", Strategy: texttype.TextType("SAGA")},
		},
		{
			name: "broken regex",
			entry: ScriptureEntry{
				ID: "Test", Prefix: "xx", Strategy: texttype.Hymnal,
				RemovalPatterns: []PatternEntry{{Name: "bad", Regex: "["}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := &Table{Scriptures: []ScriptureEntry{tt.entry}}
			_, err := Build([]string{tt.entry.ID}, table)
			if err == nil {
				t.Fatal("Build succeeded with invalid entry")
			}
			var confErr *errors.ConfigurationError
			if !errors.As(err, &confErr) {
				t.Fatalf("error is %T, want *errors.ConfigurationError", err)
			}
		})
	}
}

func TestApplyRemoval(t *testing.T) {
	reg, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	tests := []struct {
		name      string
		scripture string
		line      string
		want      string
	}{
		{
			name:      "comment marker stripped",
			scripture: "Bhagavad_Gita",
			line:      "// bhg_2,40.20 // अर्जुन उवाच",
			want:      "अर्जुन उवाच",
		},
		{
			name:      "bracket marker stripped",
			scripture: "Rigveda",
			line:      "[rv_1,1.1] agnim īḷe purohitaṃ",
			want:      "agnim īḷe purohitaṃ",
		},
		{
			name:      "bracket and paren counters stripped",
			scripture: "Mahabharata",
			line:      "kathā [12] śṛṇu (3) mahāmune",
			want:      "kathā śṛṇu mahāmune",
		},
		{
			name:      "whitespace collapsed",
			scripture: "Ramayana",
			line:      "  rāmo   rājamaṇiḥ  ",
			want:      "rāmo rājamaṇiḥ",
		},
		{
			name:      "wrong prefix left for generic scrub",
			scripture: "Rigveda",
			line:      "// bhg_2,40.20 // text",
			want:      "// bhg_2,40.20 // text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reg.ApplyRemoval(tt.line, tt.scripture)
			if got != tt.want {
				t.Errorf("ApplyRemoval = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyRemovalUnknownScripture(t *testing.T) {
	reg, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	line := "// zzz_1.1 // unchanged body"
	if got := reg.ApplyRemoval(line, "Unknown_Text"); got != line {
		t.Errorf("unknown scripture modified line: %q", got)
	}
}

func TestScriptureConfigApplyReportsPatterns(t *testing.T) {
	reg, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	cfg, ok := reg.Get("Bhagavad_Gita")
	if !ok {
		t.Fatal("Bhagavad_Gita missing")
	}

	cleaned, removed := cfg.Apply("// bhg_2,40.20 // kathaṃ [4] bhīṣmam")
	if strings.Contains(cleaned, "bhg_") {
		t.Errorf("marker survived cleanup: %q", cleaned)
	}
	if len(removed) != 2 {
		t.Errorf("removed = %v, want comment-marker and bracket-counter", removed)
	}
}

func TestStrategy(t *testing.T) {
	reg, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	tests := []struct {
		scripture string
		want      texttype.TextType
	}{
		{"Rigveda", texttype.Hymnal},
		{"Bhagavad_Gita", texttype.Dialogue},
		{"Mahabharata", texttype.Epic},
		{"Katha_Upanishad", texttype.Philosophical},
		{"Vishnu_Purana", texttype.Narrative},
		{"Nowhere_Text", texttype.Other},
	}

	for _, tt := range tests {
		if got := reg.Strategy(tt.scripture); got != tt.want {
			t.Errorf("Strategy(%s) = %s, want %s", tt.scripture, got, tt.want)
		}
	}
}

func TestIDsStableOrder(t *testing.T) {
	reg, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	ids := reg.IDs()
	if len(ids) != reg.Len() {
		t.Fatalf("IDs() returned %d entries, registry has %d", len(ids), reg.Len())
	}
	if ids[0] != "Rigveda" {
		t.Errorf("first ID = %s, want Rigveda (roster order)", ids[0])
	}
}
