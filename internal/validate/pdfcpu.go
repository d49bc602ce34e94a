// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/pdiddy/pdfharvest/pkg/types"
)

// PdfcpuParser counts pages with pdfcpu, which reads and validates the
// cross-reference table and page tree.
type PdfcpuParser struct{}

// NewPdfcpuParser returns a pdfcpu-backed Parser. pdfcpu's user config
// directory is disabled so validation has no filesystem side effects.
func NewPdfcpuParser() *PdfcpuParser {
	api.DisableConfigDir()
	return &PdfcpuParser{}
}

// Name returns the backend identifier.
func (p *PdfcpuParser) Name() string { return string(types.BackendPdfcpu) }

// PageCount returns the page count of the PDF at path.
func (p *PdfcpuParser) PageCount(path string) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			n, err = 0, parseError(p.Name(), path, r)
		}
	}()

	n, err = api.PageCountFile(path)
	if err != nil {
		return 0, parseError(p.Name(), path, err)
	}
	return n, nil
}
