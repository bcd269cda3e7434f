// Package fileutil provides corpus file reading helpers for the CLI.
package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
)

// ReadCorpus reads a UTF-8 corpus file. Files with an .xz extension are
// transparently decompressed; corpus archives ship compressed.
func ReadCorpus(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.EqualFold(filepath.Ext(path), ".xz") {
		xzr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening xz stream %s: %w", path, err)
		}
		r = xzr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading corpus file %s: %w", path, err)
	}
	return data, nil
}

// CorpusName returns the logical corpus filename used for classification:
// the base name with any .xz suffix removed.
func CorpusName(path string) string {
	name := filepath.Base(path)
	if strings.EqualFold(filepath.Ext(name), ".xz") {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return name
}
