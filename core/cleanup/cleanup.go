// Package cleanup strips legacy verse-marker contamination from Sanskrit
// text spans and recovers the embedded canonical reference.
//
// Corpora arrive with comment-style delimiters, bracketed verse numbers,
// and parenthetical counters interleaved with the text. Cleanup treats
// malformed markup as the expected case: it never fails, it returns the
// best text it can recover.
package cleanup

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/dhvani-labs/granthika/core/ref"
	"github.com/dhvani-labs/granthika/core/registry"
	"github.com/dhvani-labs/granthika/internal/logging"
)

// Options controls cleanup behavior.
type Options struct {
	// KeepDandaForProsody retains danda (।) and double-danda (॥) marks.
	// Audio rendering wants them removed; textual display keeps them.
	KeepDandaForProsody bool

	// RemoveDigits strips stray Latin and Devanagari digits left behind
	// by the marker convention.
	RemoveDigits bool

	// NormalizeWhitespace collapses internal whitespace to single spaces.
	NormalizeWhitespace bool

	// PreserveCanonicalRefs populates CanonicalReference from the embedded
	// marker before the marker is stripped from the body.
	PreserveCanonicalRefs bool
}

// AudioOptions returns the options used for audio synthesis input.
func AudioOptions() Options {
	return Options{
		KeepDandaForProsody:   false,
		RemoveDigits:          true,
		NormalizeWhitespace:   true,
		PreserveCanonicalRefs: true,
	}
}

// DisplayOptions returns the options used for textual display.
func DisplayOptions() Options {
	return Options{
		KeepDandaForProsody:   true,
		RemoveDigits:          true,
		NormalizeWhitespace:   true,
		PreserveCanonicalRefs: true,
	}
}

// Metadata describes what one cleanup call did.
type Metadata struct {
	// ProcessingTimeMs is the wall time spent cleaning, in milliseconds.
	ProcessingTimeMs float64 `json:"processing_time_ms"`

	// PatternsRemoved names the removal patterns that matched.
	PatternsRemoved []string `json:"patterns_removed,omitempty"`

	// ProsodyMarkers names the danda marks found in the input.
	ProsodyMarkers []string `json:"prosody_markers,omitempty"`
}

// CleanResult is the outcome of cleaning one text span.
type CleanResult struct {
	// CleanedText is the text with marker contamination removed.
	CleanedText string `json:"cleaned_text"`

	// CanonicalReference is the recovered reference token (e.g.,
	// "bhg_2,40.20"), or empty when none was found or preservation is off.
	CanonicalReference string `json:"canonical_reference,omitempty"`

	// ScriptureID is the scripture the span was cleaned for.
	ScriptureID string `json:"scripture_id"`

	// Metadata describes the cleanup work performed.
	Metadata Metadata `json:"metadata"`
}

// Item is one input to a batch cleanup call.
type Item struct {
	Text        string `json:"text"`
	ScriptureID string `json:"scripture_id"`
}

var (
	dandaRe        = regexp.MustCompile(`[।॥]`)
	digitsRe       = regexp.MustCompile(`[0-9०-९]+`)
	markerSyntaxRe = regexp.MustCompile(`[/\[\]()]+`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
)

// Service cleans corpus text spans using the validated pattern registry.
// Safe for concurrent use.
type Service struct {
	reg *registry.Registry
}

// NewService creates a cleanup service backed by the given registry.
func NewService(reg *registry.Registry) *Service {
	return &Service{reg: reg}
}

// CleanForAudio strips verse-marker contamination from one text span.
// It never fails: unknown scriptures log a warning and pass the text
// through unchanged, and malformed markup is scrubbed like any other
// contamination.
func (s *Service) CleanForAudio(text, scriptureID string, opts Options) CleanResult {
	start := time.Now()

	result := CleanResult{ScriptureID: scriptureID}

	// Recover the canonical reference before anything is stripped.
	if opts.PreserveCanonicalRefs {
		if marker := ref.FindMarker(text); marker != nil {
			result.CanonicalReference = marker.Token
		}
	}

	cfg, ok := s.reg.Get(scriptureID)
	if !ok {
		logging.UnknownScripture("cleanup", scriptureID)
		result.CleanedText = text
		result.Metadata.ProcessingTimeMs = msSince(start)
		return result
	}

	cleaned, removed := cfg.Apply(text)

	// Catch bare or malformed tokens the scripture patterns missed.
	stripped := ref.StripMarkers(cleaned)
	if stripped != cleaned {
		cleaned = stripped
		removed = append(removed, "generic-marker")
	}

	// Danda marks are recorded either way; stripped unless prosody wants them.
	if strings.Contains(cleaned, "।") {
		result.Metadata.ProsodyMarkers = append(result.Metadata.ProsodyMarkers, "danda")
	}
	if strings.Contains(cleaned, "॥") {
		result.Metadata.ProsodyMarkers = append(result.Metadata.ProsodyMarkers, "double-danda")
	}
	if !opts.KeepDandaForProsody {
		cleaned = dandaRe.ReplaceAllString(cleaned, " ")
	}

	if opts.RemoveDigits {
		cleaned = digitsRe.ReplaceAllString(cleaned, " ")
	}

	// Residual delimiter characters are always marker debris.
	if markerSyntaxRe.MatchString(cleaned) {
		cleaned = markerSyntaxRe.ReplaceAllString(cleaned, " ")
		removed = append(removed, "residual-syntax")
	}

	if opts.NormalizeWhitespace {
		cleaned = whitespaceRe.ReplaceAllString(cleaned, " ")
	}
	cleaned = strings.TrimSpace(cleaned)

	result.CleanedText = cleaned
	result.Metadata.PatternsRemoved = removed
	result.Metadata.ProcessingTimeMs = msSince(start)
	return result
}

// CleanBatchForAudio cleans each item independently. Items have no ordering
// dependency; results are returned in input order.
func (s *Service) CleanBatchForAudio(items []Item, opts Options) []CleanResult {
	results := make([]CleanResult, len(items))
	for i, item := range items {
		results[i] = s.CleanForAudio(item.Text, item.ScriptureID, opts)
	}
	return results
}

// Stats aggregates a batch of cleanup results.
type Stats struct {
	// TotalItems is the number of results aggregated.
	TotalItems int `json:"total_items"`

	// TotalProcessingTimeMs sums the per-item processing time.
	TotalProcessingTimeMs float64 `json:"total_processing_time_ms"`

	// PatternsRemoved counts removals per pattern name.
	PatternsRemoved map[string]int `json:"patterns_removed,omitempty"`

	// Scriptures lists the distinct scriptures touched, sorted.
	Scriptures []string `json:"scriptures,omitempty"`
}

// GetCleanupStats aggregates processing time, pattern removals, and the
// distinct scriptures touched across a batch of results.
func GetCleanupStats(results []CleanResult) Stats {
	stats := Stats{
		TotalItems:      len(results),
		PatternsRemoved: make(map[string]int),
	}

	seen := map[string]bool{}
	for _, r := range results {
		stats.TotalProcessingTimeMs += r.Metadata.ProcessingTimeMs
		for _, name := range r.Metadata.PatternsRemoved {
			stats.PatternsRemoved[name]++
		}
		if r.ScriptureID != "" && !seen[r.ScriptureID] {
			seen[r.ScriptureID] = true
			stats.Scriptures = append(stats.Scriptures, r.ScriptureID)
		}
	}
	sort.Strings(stats.Scriptures)
	return stats
}

func msSince(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
