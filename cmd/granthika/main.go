// Command granthika is the CLI for the Sanskrit corpus core.
// It runs the pure pipeline stages (classify, extract, clean,
// transliterate) over plain-text corpus files for inspection and for
// feeding downstream indexing and audio layers.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dhvani-labs/granthika/core/cleanup"
	"github.com/dhvani-labs/granthika/core/extract"
	"github.com/dhvani-labs/granthika/core/registry"
	"github.com/dhvani-labs/granthika/core/texttype"
	"github.com/dhvani-labs/granthika/core/translit"
	"github.com/dhvani-labs/granthika/internal/fileutil"
	"github.com/dhvani-labs/granthika/internal/logging"
)

const version = "0.2.0"

// CLI defines the command-line interface for granthika.
var CLI struct {
	// Global flags
	Verbose bool `name:"verbose" short:"v" help:"Enable debug logging"`

	Classify ClassifyCmd `cmd:"" help:"Classify a corpus file into a text type"`
	Clean    CleanCmd    `cmd:"" help:"Strip verse-marker contamination from corpus files"`
	Translit TranslitCmd `cmd:"" help:"Detect script and transliterate IAST to Devanagari"`
	Extract  ExtractCmd  `cmd:"" help:"Extract a logical unit from a corpus file"`
	Registry RegistryGrp `cmd:"" help:"Scripture pattern registry operations"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// RegistryGrp contains pattern registry operations.
type RegistryGrp struct {
	Validate RegistryValidateCmd `cmd:"" help:"Validate the pattern table against the canonical roster"`
	Show     RegistryShowCmd     `cmd:"" help:"Show the registered scriptures and strategies"`
	Import   RegistryImportCmd   `cmd:"" help:"Convert an XML scripture catalog to a pattern table"`
}

// ClassifyCmd classifies a corpus file.
type ClassifyCmd struct {
	Path string `arg:"" help:"Corpus file (optionally .xz)" type:"path"`
	Name string `name:"name" help:"Override the filename used by filename rules"`
}

func (c *ClassifyCmd) Run() error {
	data, err := fileutil.ReadCorpus(c.Path)
	if err != nil {
		return err
	}

	name := c.Name
	if name == "" {
		name = fileutil.CorpusName(c.Path)
	}

	classifier := texttype.NewClassifier(texttype.DefaultWeights())
	result := classifier.Classify(name, string(data))
	return printJSON(result)
}

// CleanCmd cleans one or more corpus files for a scripture.
type CleanCmd struct {
	Paths     []string `arg:"" help:"Corpus files (optionally .xz)" type:"path"`
	Scripture string   `name:"scripture" short:"s" required:"" help:"Canonical scripture identifier"`
	Display   bool     `name:"display" help:"Keep danda marks for textual display"`
	Stats     bool     `name:"stats" help:"Print aggregate stats instead of per-file results"`
}

func (c *CleanCmd) Run() error {
	reg, err := registry.Default()
	if err != nil {
		return err
	}
	svc := cleanup.NewService(reg)

	opts := cleanup.AudioOptions()
	if c.Display {
		opts = cleanup.DisplayOptions()
	}

	items := make([]cleanup.Item, 0, len(c.Paths))
	for _, path := range c.Paths {
		data, err := fileutil.ReadCorpus(path)
		if err != nil {
			return err
		}
		items = append(items, cleanup.Item{Text: string(data), ScriptureID: c.Scripture})
	}

	runID := uuid.NewString()
	start := time.Now()
	results := svc.CleanBatchForAudio(items, opts)
	logging.BatchRun(runID, len(results), time.Since(start))

	if c.Stats {
		return printJSON(cleanup.GetCleanupStats(results))
	}
	return printJSON(results)
}

// TranslitCmd transliterates a file or a literal text argument.
type TranslitCmd struct {
	Path    string `name:"file" short:"f" help:"Input file (optionally .xz)" type:"path"`
	Text    string `arg:"" optional:"" help:"Literal text to transliterate"`
	NoMixed bool   `name:"no-mixed" help:"Pass mixed-script spans through unchanged"`
	Digits  bool   `name:"devanagari-digits" help:"Convert ASCII digits to Devanagari digits"`
}

func (c *TranslitCmd) Run() error {
	text := c.Text
	if c.Path != "" {
		data, err := fileutil.ReadCorpus(c.Path)
		if err != nil {
			return err
		}
		text = string(data)
	}
	if text == "" {
		return fmt.Errorf("nothing to transliterate: provide text or --file")
	}

	opts := translit.DefaultOptions()
	opts.HandleMixed = !c.NoMixed
	opts.PreserveNumbers = !c.Digits

	return printJSON(translit.Transliterate(text, opts))
}

// ExtractCmd extracts one logical unit from a corpus file.
type ExtractCmd struct {
	Path      string `arg:"" help:"Corpus file (optionally .xz)" type:"path"`
	Scripture string `name:"scripture" short:"s" required:"" help:"Canonical scripture identifier"`
	Seed      int    `name:"seed" default:"0" help:"Line position to extract around"`
	Type      string `name:"type" help:"Override the text type (EPIC, HYMNAL, PHILOSOPHICAL, NARRATIVE, DIALOGUE, OTHER)"`
}

func (c *ExtractCmd) Run() error {
	data, err := fileutil.ReadCorpus(c.Path)
	if err != nil {
		return err
	}
	content := string(data)

	reg, err := registry.Default()
	if err != nil {
		return err
	}
	extractors := extract.New(reg)

	var extractor extract.Extractor
	if c.Type != "" {
		t := texttype.TextType(c.Type)
		if !t.IsValid() {
			return fmt.Errorf("invalid text type: %q", c.Type)
		}
		extractor = extractors.ForType(t)
	} else {
		classifier := texttype.NewClassifier(texttype.DefaultWeights())
		classification := classifier.Classify(fileutil.CorpusName(c.Path), content)
		logging.Debug("classified corpus file",
			"path", c.Path,
			"type", string(classification.Type),
			"confidence", string(classification.Confidence))
		extractor = extractors.ForType(classification.Type)
	}

	start := time.Now()
	unit := extractor.Extract(content, c.Scripture, c.Seed)
	logging.PipelineStage("extract", c.Scripture, time.Since(start))

	return printJSON(unit)
}

// RegistryValidateCmd builds the registry from the embedded table,
// surfacing any ConfigurationError with a non-zero exit.
type RegistryValidateCmd struct{}

func (c *RegistryValidateCmd) Run() error {
	reg, err := registry.Default()
	if err != nil {
		return err
	}
	fmt.Printf("registry ok: %d scriptures registered\n", reg.Len())
	return nil
}

// RegistryShowCmd lists registered scriptures and their strategies.
type RegistryShowCmd struct{}

func (c *RegistryShowCmd) Run() error {
	reg, err := registry.Default()
	if err != nil {
		return err
	}

	type row struct {
		ID       string   `json:"id"`
		Prefix   string   `json:"prefix"`
		Strategy string   `json:"strategy"`
		Patterns []string `json:"patterns"`
	}
	rows := make([]row, 0, reg.Len())
	for _, id := range reg.IDs() {
		cfg, _ := reg.Get(id)
		rows = append(rows, row{
			ID:       cfg.ID,
			Prefix:   cfg.Prefix,
			Strategy: string(cfg.Strategy),
			Patterns: cfg.PatternNames(),
		})
	}
	return printJSON(rows)
}

// RegistryImportCmd converts an XML scripture catalog into the YAML
// pattern-table shape and validates it against the canonical roster.
type RegistryImportCmd struct {
	Path string `arg:"" help:"XML catalog file" type:"path"`
}

func (c *RegistryImportCmd) Run() error {
	f, err := os.Open(c.Path)
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	table, err := registry.ImportCatalogXML(f)
	if err != nil {
		return err
	}
	if _, err := registry.Build(registry.CanonicalRoster(), table); err != nil {
		return err
	}

	out, err := yaml.Marshal(table)
	if err != nil {
		return fmt.Errorf("encoding pattern table: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("granthika %s\n", version)
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("granthika"),
		kong.Description("Granthika - Sanskrit corpus normalization and extraction core"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	if CLI.Verbose {
		logging.InitLogger(logging.LevelDebug, logging.FormatText)
	}
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
