// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftest builds small well-formed PDF documents for tests.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
)

// Build returns a PDF with the given number of blank letter-size pages and
// a cross-reference table whose offsets match the emitted objects.
func Build(pages int) []byte {
	kids := make([]string, pages)
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"", // page tree, filled below
	}
	for i := 0; i < pages; i++ {
		kids[i] = fmt.Sprintf("%d 0 R", i+3)
		objects = append(objects,
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> >>")
	}
	objects[1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), pages)

	var b bytes.Buffer
	b.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n", len(objects)+1)
	b.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return b.Bytes()
}

// Write stores Build(pages) at path.
func Write(t testing.TB, path string, pages int) {
	t.Helper()
	if err := os.WriteFile(path, Build(pages), 0o644); err != nil {
		t.Fatalf("writing test PDF %s: %v", path, err)
	}
}

// Truncated returns the first n bytes of a one-page PDF: a header with no
// usable objects, cross-reference table or trailer.
func Truncated(n int) []byte {
	full := Build(1)
	if n > len(full) {
		n = len(full)
	}
	return full[:n]
}
