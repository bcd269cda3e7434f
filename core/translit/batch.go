package translit

// BatchResult aggregates a batch of independent transliteration calls.
type BatchResult struct {
	// Results holds the per-text results in input order.
	Results []Result `json:"results"`

	// ScriptCounts is the per-script distribution across the batch.
	ScriptCounts map[Script]int `json:"script_counts"`

	// Transliterated counts how many texts were actually converted.
	Transliterated int `json:"transliterated"`

	// AvgProcessingTimeMs is the mean per-text processing time.
	AvgProcessingTimeMs float64 `json:"avg_processing_time_ms"`
}

// TransliterateBatch transliterates each text independently and aggregates
// script distribution and timing.
func TransliterateBatch(texts []string, opts Options) BatchResult {
	batch := BatchResult{
		Results:      make([]Result, 0, len(texts)),
		ScriptCounts: make(map[Script]int),
	}

	var totalMs float64
	for _, text := range texts {
		r := Transliterate(text, opts)
		batch.Results = append(batch.Results, r)
		batch.ScriptCounts[r.DetectedScript]++
		if r.WasTransliterated {
			batch.Transliterated++
		}
		totalMs += r.ProcessingTimeMs
	}

	if len(texts) > 0 {
		batch.AvgProcessingTimeMs = totalMs / float64(len(texts))
	}
	return batch
}
