// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate decides whether a downloaded file is a usable PDF.
// Parsing is delegated to a Parser; two backends are provided, one on
// pdfcpu and one on ledongthuc/pdf.
package validate

import (
	"fmt"
	"io"
	"unicode"

	"github.com/pdiddy/pdfharvest/pkg/types"
)

// Parser opens a PDF file and reports its page count. Malformed input
// returns an error wrapping types.ErrParse.
type Parser interface {
	// PageCount parses the file at path and returns the number of pages.
	PageCount(path string) (int, error)

	// Name identifies the backend in diagnostics.
	Name() string
}

// Result pairs a path with its validity.
type Result struct {
	Path  string
	Valid bool
}

// NewParser returns the Parser for backend.
func NewParser(backend types.ValidatorBackend) (Parser, error) {
	switch backend {
	case types.BackendPdfcpu, "":
		return NewPdfcpuParser(), nil
	case types.BackendLedongthuc:
		return NewLedongthucParser(), nil
	default:
		return nil, fmt.Errorf("unknown validator backend %q (want %s or %s)",
			backend, types.BackendPdfcpu, types.BackendLedongthuc)
	}
}

// ValidatePDF parses path with p. The file is valid when it parses and has
// at least one page. Parse failures are written to w and reported as
// invalid; ValidatePDF never returns an error.
func ValidatePDF(p Parser, path string, w io.Writer) Result {
	pages, err := p.PageCount(path)
	if err != nil {
		fmt.Fprintf(w, "invalid: %s (%v)\n", path, err)
		return Result{Path: path, Valid: false}
	}
	if pages == 0 {
		fmt.Fprintf(w, "invalid: %s (no pages)\n", path)
		return Result{Path: path, Valid: false}
	}
	return Result{Path: path, Valid: true}
}

// HasUpperCase reports whether s contains an uppercase letter.
func HasUpperCase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// parseError converts a backend error or recovered panic into an error
// wrapping types.ErrParse.
func parseError(backend, path string, cause any) error {
	if err, ok := cause.(error); ok {
		return fmt.Errorf("%w: %s: %s: %w", types.ErrParse, backend, path, err)
	}
	return fmt.Errorf("%w: %s: %s: %v", types.ErrParse, backend, path, cause)
}
