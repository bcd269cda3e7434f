package extract

import (
	"testing"

	"github.com/dhvani-labs/granthika/core/registry"
	"github.com/dhvani-labs/granthika/core/texttype"
)

func newExtractors(t *testing.T) *Extractors {
	t.Helper()
	reg, err := registry.Default()
	if err != nil {
		t.Fatalf("registry.Default() failed: %v", err)
	}
	return New(reg)
}

const hymnSample = `// rv_1,1.1 // agnim īḷe purohitaṃ yajñasya devam ṛtvijam
// rv_1,1.2 // agniḥ pūrvebhir ṛṣibhir īḍyo nūtanair uta
// rv_1,1.3 // agninā rayim aśnavat poṣam eva dive-dive
// rv_1,1.4 // agne yaṃ yajñam adhvaraṃ viśvataḥ paribhūr asi
// rv_1,2.1 // vāyav ā yāhi darśateme somā araṃkṛtāḥ`

const epicSample = `// mbh_1,1.1 // vaiśampāyana uvāca yudhiṣṭhiraḥ saha bhrātṛbhiḥ
// mbh_1,1.2 // bhīṣmaṃ dadarśa saṅgrāme senayor ubhayor api
// mbh_1,1.3 // janamejaya uvāca kathaṃ tad abhavat purā`

const teachingSample = `// kath_1,2.1 // ātmani sthitaṃ mahāntaṃ viddhi nityam
// kath_1,2.2 // indriyāṇi hayān āhur viṣayāṃs teṣu gocarān
// kath_1,2.3 // mokṣam etaṃ paraṃ viddhi tasmāj jāgṛhi nityaśaḥ`

const dialogueSample = `// bhg_2,54.1 // arjuna uvāca sthita-prajñasya kā bhāṣā
// bhg_2,54.2 // samādhi-sthasya keśava kiṃ prabhāṣeta
// bhg_2,55.1 // śrī-bhagavān uvāca prajahāti yadā kāmān`

func TestHymnalExtractCompleteHymn(t *testing.T) {
	ex := newExtractors(t).ForType(texttype.Hymnal)

	unit := ex.Extract(hymnSample, "Rigveda", 0)
	if unit == nil {
		t.Fatal("Extract returned nil")
	}
	if unit.Kind != KindHymnal {
		t.Fatalf("Kind = %s, want %s", unit.Kind, KindHymnal)
	}
	if unit.ExtractionMethod != MethodPrimary {
		t.Errorf("ExtractionMethod = %s, want %s", unit.ExtractionMethod, MethodPrimary)
	}

	// The fifth line opens sukta 1,2: the unit ends at the sukta boundary.
	if unit.VerseRange.StartRef != "rv_1,1.1" || unit.VerseRange.EndRef != "rv_1,1.4" {
		t.Errorf("VerseRange = %s..%s, want rv_1,1.1..rv_1,1.4",
			unit.VerseRange.StartRef, unit.VerseRange.EndRef)
	}
	if unit.VerseRange.Count != 4 {
		t.Errorf("Count = %d, want 4", unit.VerseRange.Count)
	}
	if unit.TechnicalReference != "rv_1,1.1-rv_1,1.4" {
		t.Errorf("TechnicalReference = %q", unit.TechnicalReference)
	}

	if unit.Hymnal == nil {
		t.Fatal("Hymnal context not set")
	}
	if unit.Hymnal.HymnType != "complete-hymn" {
		t.Errorf("HymnType = %q, want complete-hymn", unit.Hymnal.HymnType)
	}
	if unit.Hymnal.Deity != "agni" {
		t.Errorf("Deity = %q, want agni", unit.Hymnal.Deity)
	}
	if unit.Hymnal.RitualPurpose != "sacrificial-offering" {
		t.Errorf("RitualPurpose = %q, want sacrificial-offering", unit.Hymnal.RitualPurpose)
	}
	if unit.ContentHash == "" {
		t.Error("ContentHash is empty")
	}
}

func TestEpicExtractSpeakerBoundary(t *testing.T) {
	ex := newExtractors(t).ForType(texttype.Epic)

	unit := ex.Extract(epicSample, "Mahabharata", 0)
	if unit.Kind != KindEpic {
		t.Fatalf("Kind = %s, want %s", unit.Kind, KindEpic)
	}
	if unit.ExtractionMethod != MethodPrimary {
		t.Errorf("ExtractionMethod = %s, want %s", unit.ExtractionMethod, MethodPrimary)
	}

	// Janamejaya's attribution opens the next unit.
	if unit.VerseRange.EndRef != "mbh_1,1.2" {
		t.Errorf("EndRef = %s, want mbh_1,1.2", unit.VerseRange.EndRef)
	}

	if unit.Epic == nil {
		t.Fatal("Epic context not set")
	}
	wantChars := map[string]bool{"yudhiṣṭhira": true, "bhīṣma": true}
	for _, ch := range unit.Epic.MainCharacters {
		delete(wantChars, ch)
	}
	if len(wantChars) != 0 {
		t.Errorf("MainCharacters = %v, missing %v", unit.Epic.MainCharacters, wantChars)
	}
	if unit.Epic.StoryTheme != "righteous-war" {
		t.Errorf("StoryTheme = %q, want righteous-war", unit.Epic.StoryTheme)
	}
}

func TestEpicExtractChapterDiscontinuity(t *testing.T) {
	ex := newExtractors(t).ForType(texttype.Narrative)

	raw := `// vip_1.1 // atha purākalpe kathā vicitrā
// vip_3.1 // anyatra vaṃśaṃ pravakṣyāmi`

	unit := ex.Extract(raw, "Vishnu_Purana", 0)
	if unit.VerseRange.StartRef != unit.VerseRange.EndRef {
		t.Errorf("unit crossed a chapter boundary: %s..%s",
			unit.VerseRange.StartRef, unit.VerseRange.EndRef)
	}
	if unit.VerseRange.StartRef != "vip_1.1" {
		t.Errorf("StartRef = %s, want vip_1.1", unit.VerseRange.StartRef)
	}
}

func TestPhilosophicalExtractConceptBoundary(t *testing.T) {
	ex := newExtractors(t).ForType(texttype.Philosophical)

	unit := ex.Extract(teachingSample, "Katha_Upanishad", 0)
	if unit.Kind != KindPhilosophical {
		t.Fatalf("Kind = %s, want %s", unit.Kind, KindPhilosophical)
	}

	// The mokṣa line belongs to the next teaching.
	if unit.VerseRange.EndRef != "kath_1,2.2" {
		t.Errorf("EndRef = %s, want kath_1,2.2", unit.VerseRange.EndRef)
	}

	if unit.Philosophical == nil {
		t.Fatal("Philosophical context not set")
	}
	if unit.Philosophical.PhilosophicalConcept != "ātman" {
		t.Errorf("PhilosophicalConcept = %q, want ātman", unit.Philosophical.PhilosophicalConcept)
	}
	if unit.Philosophical.TeachingType != "teaching" {
		t.Errorf("TeachingType = %q, want teaching", unit.Philosophical.TeachingType)
	}
}

func TestDialogueExtractTurn(t *testing.T) {
	ex := newExtractors(t).ForType(texttype.Dialogue)

	// A seed inside the speech still yields the whole turn.
	unit := ex.Extract(dialogueSample, "Bhagavad_Gita", 1)
	if unit.Kind != KindDialogue {
		t.Fatalf("Kind = %s, want %s", unit.Kind, KindDialogue)
	}
	if unit.ExtractionMethod != MethodPrimary {
		t.Errorf("ExtractionMethod = %s, want %s", unit.ExtractionMethod, MethodPrimary)
	}
	if unit.VerseRange.StartRef != "bhg_2,54.1" || unit.VerseRange.EndRef != "bhg_2,54.2" {
		t.Errorf("VerseRange = %s..%s, want bhg_2,54.1..bhg_2,54.2",
			unit.VerseRange.StartRef, unit.VerseRange.EndRef)
	}

	if unit.Dialogue == nil {
		t.Fatal("Dialogue context not set")
	}
	if len(unit.Dialogue.Speakers) != 2 {
		t.Errorf("Speakers = %v, want two parties", unit.Dialogue.Speakers)
	}
	if unit.Dialogue.Turns != 1 {
		t.Errorf("Turns = %d, want 1", unit.Dialogue.Turns)
	}
}

func TestFallbackExtractSingleLine(t *testing.T) {
	ex := newExtractors(t).ForType(texttype.Other)

	unit := ex.Extract("some stray line with no reference", "Bhagavad_Gita", 0)
	if unit.Kind != KindGeneric {
		t.Fatalf("Kind = %s, want %s", unit.Kind, KindGeneric)
	}
	if unit.ExtractionMethod != MethodFallback {
		t.Errorf("ExtractionMethod = %s, want %s", unit.ExtractionMethod, MethodFallback)
	}
	if unit.TechnicalReference != "" {
		t.Errorf("TechnicalReference = %q, want empty", unit.TechnicalReference)
	}
	if unit.RawText == "" {
		t.Error("RawText is empty for non-empty input")
	}
}

func TestFallbackExtractContinuousRun(t *testing.T) {
	ex := newExtractors(t).ForType(texttype.Other)

	raw := `// ys_1.1 // atha yogānuśāsanam
// ys_1.2 // yogaś citta-vṛtti-nirodhaḥ
// ys_1.4 // vṛtti-sārūpyam itaratra`

	unit := ex.Extract(raw, "Yoga_Sutras", 0)
	// 1.2 to 1.4 skips a sutra: the run ends at 1.2.
	if unit.VerseRange.EndRef != "ys_1.2" {
		t.Errorf("EndRef = %s, want ys_1.2", unit.VerseRange.EndRef)
	}
}

func TestExtractNeverFails(t *testing.T) {
	e := newExtractors(t)

	inputs := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace only", "   \n\t\n  "},
		{"single unmarked line", "ekaṃ sad viprā bahudhā vadanti"},
		{"malformed marker", "// bhg_ // broken token body"},
		{"truncated marker", "// bhg_2,40"},
	}

	types := []texttype.TextType{
		texttype.Epic, texttype.Narrative, texttype.Hymnal,
		texttype.Philosophical, texttype.Dialogue, texttype.Other,
	}

	for _, in := range inputs {
		for _, tt := range types {
			unit := e.ForType(tt).Extract(in.raw, "Bhagavad_Gita", 0)
			if unit == nil {
				t.Fatalf("%s/%s: Extract returned nil", in.name, tt)
			}
			if in.raw == "" || in.name == "whitespace only" {
				if unit.ExtractionMethod != MethodFallback {
					t.Errorf("%s/%s: method = %s, want %s",
						in.name, tt, unit.ExtractionMethod, MethodFallback)
				}
			}
		}
	}
}

func TestExtractSeedClamping(t *testing.T) {
	ex := newExtractors(t).ForType(texttype.Hymnal)

	low := ex.Extract(hymnSample, "Rigveda", -5)
	if low.VerseRange.StartRef != "rv_1,1.1" {
		t.Errorf("negative seed StartRef = %s, want rv_1,1.1", low.VerseRange.StartRef)
	}

	high := ex.Extract(hymnSample, "Rigveda", 99)
	if high.VerseRange.StartRef != "rv_1,2.1" {
		t.Errorf("overlong seed StartRef = %s, want rv_1,2.1", high.VerseRange.StartRef)
	}
}

func TestForTypeUnknownFallsBack(t *testing.T) {
	e := newExtractors(t)

	unit := e.ForType(texttype.TextType("SAGA")).Extract("a line", "Bhagavad_Gita", 0)
	if unit.Kind != KindGeneric {
		t.Errorf("Kind = %s, want %s", unit.Kind, KindGeneric)
	}
}

func TestForScriptureDispatch(t *testing.T) {
	e := newExtractors(t)

	tests := []struct {
		scripture string
		wantKind  Kind
	}{
		{"Rigveda", KindHymnal},
		{"Bhagavad_Gita", KindDialogue},
		{"Mahabharata", KindEpic},
		{"Katha_Upanishad", KindPhilosophical},
		{"Vishnu_Purana", KindEpic},
		{"Unknown_Text", KindGeneric},
	}

	for _, tt := range tests {
		unit := e.ForScripture(tt.scripture).Extract("ekaṃ sad viprā", tt.scripture, 0)
		if unit.Kind != tt.wantKind {
			t.Errorf("ForScripture(%s) produced %s, want %s", tt.scripture, unit.Kind, tt.wantKind)
		}
	}
}

func TestContentHashDistinguishesUnits(t *testing.T) {
	ex := newExtractors(t).ForType(texttype.Hymnal)

	a := ex.Extract(hymnSample, "Rigveda", 0)
	b := ex.Extract(hymnSample, "Rigveda", 99)
	if a.ContentHash == "" || b.ContentHash == "" {
		t.Fatal("ContentHash empty")
	}
	if a.ContentHash == b.ContentHash {
		t.Error("distinct units share a content hash")
	}
}

func TestGazetteerFold(t *testing.T) {
	if foldASCII("kṛṣṇa") != "krishna" {
		t.Errorf("foldASCII(kṛṣṇa) = %q", foldASCII("kṛṣṇa"))
	}
	if foldASCII("bhīṣma") != "bhishma" {
		t.Errorf("foldASCII(bhīṣma) = %q", foldASCII("bhīṣma"))
	}
}

func TestLoadGazetteerInvalid(t *testing.T) {
	if _, err := LoadGazetteer([]byte("characters: {not: a list}")); err == nil {
		t.Error("invalid gazetteer YAML loaded without error")
	}
}
