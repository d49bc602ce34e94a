// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package harvest

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdfharvest/internal/fsutil"
	"github.com/pdiddy/pdfharvest/internal/pdftest"
	"github.com/pdiddy/pdfharvest/internal/validate"
	"github.com/pdiddy/pdfharvest/pkg/types"
)

func newValidator(t *testing.T, opts ...Option) (*Harvester, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	opts = append([]Option{WithOutput(&buf)}, opts...)
	return New(types.HarvestConfig{}, nil, opts...), &buf
}

func TestProcessFile(t *testing.T) {
	for _, parser := range []validate.Parser{validate.NewPdfcpuParser(), validate.NewLedongthucParser()} {
		t.Run(parser.Name(), func(t *testing.T) {
			h, _ := newValidator(t, WithParser(parser))
			dir := t.TempDir()

			t.Run("invalid file is deleted", func(t *testing.T) {
				path := filepath.Join(dir, "Report.pdf")
				require.NoError(t, os.WriteFile(path, pdftest.Truncated(20), 0o644))

				got, ok, err := h.ProcessFile(path)
				require.NoError(t, err)
				assert.False(t, ok)
				assert.Empty(t, got)
				assert.False(t, fsutil.FileExists(path))
			})

			t.Run("valid lowercase name is kept but not reported", func(t *testing.T) {
				path := filepath.Join(dir, "report.pdf")
				pdftest.Write(t, path, 1)

				got, ok, err := h.ProcessFile(path)
				require.NoError(t, err)
				assert.False(t, ok)
				assert.Empty(t, got)
				assert.True(t, fsutil.FileExists(path))
			})

			t.Run("valid uppercase name is reported", func(t *testing.T) {
				path := filepath.Join(dir, "Report.pdf")
				pdftest.Write(t, path, 1)

				got, ok, err := h.ProcessFile(path)
				require.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, path, got)
				assert.True(t, fsutil.FileExists(path))
			})
		})
	}
}

func TestProcessFileCustomFilter(t *testing.T) {
	h, _ := newValidator(t, WithInterestingFilter(func(name string) bool {
		return strings.HasPrefix(name, "annual-")
	}))
	dir := t.TempDir()
	annual := filepath.Join(dir, "annual-2024.pdf")
	other := filepath.Join(dir, "Brochure.pdf")
	pdftest.Write(t, annual, 2)
	pdftest.Write(t, other, 1)

	got, ok, err := h.ProcessFile(annual)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, annual, got)

	_, ok, err = h.ProcessFile(other)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProcessFileMissing(t *testing.T) {
	h, _ := newValidator(t)
	_, ok, err := h.ProcessFile(filepath.Join(t.TempDir(), "Gone.pdf"))
	assert.False(t, ok)
	require.Error(t, err, "an invalid file that cannot be removed is an error")
	assert.True(t, errors.Is(err, types.ErrIO))
}

func TestProcessDir(t *testing.T) {
	h, out := newValidator(t)
	dir := t.TempDir()
	nested := filepath.Join(dir, "nested")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	pdftest.Write(t, filepath.Join(dir, "lower.pdf"), 1)
	pdftest.Write(t, filepath.Join(dir, "Upper.pdf"), 1)
	pdftest.Write(t, filepath.Join(nested, "Deep.PDF"), 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Broken.pdf"), []byte{}, 0o644))
	pdftest.Write(t, filepath.Join(dir, "Empty.pdf"), 0)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Notes.txt"), []byte("x"), 0o644))

	summary, err := h.ProcessDir(dir)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Valid)
	assert.Equal(t, 2, summary.Invalid)

	absDir, err := filepath.Abs(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(absDir, "Upper.pdf"),
		filepath.Join(absDir, "nested", "Deep.PDF"),
	}, summary.Interesting)

	assert.False(t, fsutil.FileExists(filepath.Join(dir, "Broken.pdf")))
	assert.False(t, fsutil.FileExists(filepath.Join(dir, "Empty.pdf")))
	assert.True(t, fsutil.FileExists(filepath.Join(dir, "lower.pdf")))
	assert.True(t, fsutil.FileExists(filepath.Join(dir, "Notes.txt")))
	assert.Contains(t, out.String(), "Validation summary: 3 valid, 2 invalid")
}

func TestProcessDirMissing(t *testing.T) {
	h, out := newValidator(t)
	summary, err := h.ProcessDir(filepath.Join(t.TempDir(), "PDFs"))
	require.NoError(t, err)
	assert.Equal(t, ValidationSummary{}, summary)
	assert.Contains(t, out.String(), "nothing to validate")
}
