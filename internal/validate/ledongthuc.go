// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/pdfharvest/pkg/types"
)

// LedongthucParser counts pages with ledongthuc/pdf. The library panics on
// some malformed input; panics are converted to parse errors.
type LedongthucParser struct{}

// NewLedongthucParser returns a ledongthuc/pdf-backed Parser.
func NewLedongthucParser() *LedongthucParser {
	return &LedongthucParser{}
}

// Name returns the backend identifier.
func (p *LedongthucParser) Name() string { return string(types.BackendLedongthuc) }

// PageCount returns the page count of the PDF at path.
func (p *LedongthucParser) PageCount(path string) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			n, err = 0, parseError(p.Name(), path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return 0, parseError(p.Name(), path, err)
	}
	defer f.Close()

	return r.NumPage(), nil
}
