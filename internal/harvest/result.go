// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package harvest

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdfharvest/pkg/types"
)

// Result holds the outcome of a download pass.
type Result struct {
	Candidates int       `yaml:"candidates"`
	Downloaded int       `yaml:"downloaded"`
	Skipped    int       `yaml:"skipped"`
	Failed     int       `yaml:"failed"`
	Saved      []string  `yaml:"saved,omitempty"`
	Failures   []Failure `yaml:"failures,omitempty"`

	// Validation is set when a validation pass followed the downloads.
	Validation *ValidationSummary `yaml:"validation,omitempty"`
}

// Failure records a URL that could not be downloaded.
type Failure struct {
	URL   string `yaml:"url"`
	Error string `yaml:"error"`
}

// Total returns the number of URLs processed.
func (r Result) Total() int {
	return r.Downloaded + r.Skipped + r.Failed
}

// HasFailures reports whether any download failed.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// WriteReport writes r to path as YAML.
func WriteReport(path string, r Result) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: writing report %s: %w", types.ErrIO, path, err)
	}
	return nil
}
