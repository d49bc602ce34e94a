// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package harvest

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/pdiddy/pdfharvest/internal/fsutil"
	"github.com/pdiddy/pdfharvest/internal/validate"
)

// ValidationSummary is the outcome of ProcessDir.
type ValidationSummary struct {
	Valid       int      `yaml:"valid"`
	Invalid     int      `yaml:"invalid"`
	Interesting []string `yaml:"interesting,omitempty"`
}

// ProcessFile validates the PDF at path. An invalid file is deleted. A
// valid file is reported (ok == true) only when its filename passes the
// interesting-filename predicate; otherwise it is left in place and
// ProcessFile returns ok == false. The returned error is non-nil only when
// an invalid file cannot be deleted.
func (h *Harvester) ProcessFile(path string) (string, bool, error) {
	res, interesting, err := h.process(path)
	if err != nil || !res.Valid || !interesting {
		return "", false, err
	}
	return path, true, nil
}

func (h *Harvester) process(path string) (validate.Result, bool, error) {
	res := validate.ValidatePDF(h.parser, path, h.w)
	if !res.Valid {
		if err := fsutil.DeleteFile(path); err != nil {
			return res, false, fmt.Errorf("removing invalid PDF: %w", err)
		}
		fmt.Fprintf(h.w, "removed: %s\n", path)
		return res, false, nil
	}
	fmt.Fprintf(h.w, "valid: %s\n", path)
	return res, h.interesting(filepath.Base(path)), nil
}

// ProcessDir runs ProcessFile over every .pdf file under dir. A missing
// dir yields an empty summary. Interesting paths are returned sorted.
func (h *Harvester) ProcessDir(dir string) (ValidationSummary, error) {
	var summary ValidationSummary
	if !fsutil.DirExists(dir) {
		fmt.Fprintf(h.w, "nothing to validate: %s does not exist\n", dir)
		return summary, nil
	}

	paths, err := fsutil.FindFilesByExtension(dir, ".pdf")
	if err != nil {
		return summary, err
	}
	sort.Strings(paths)

	for _, p := range paths {
		res, interesting, err := h.process(p)
		if err != nil {
			return summary, err
		}
		if !res.Valid {
			summary.Invalid++
			continue
		}
		summary.Valid++
		if interesting {
			summary.Interesting = append(summary.Interesting, p)
		}
	}
	fmt.Fprintf(h.w, "\nValidation summary: %d valid, %d invalid (removed), %d interesting\n",
		summary.Valid, summary.Invalid, len(summary.Interesting))
	return summary, nil
}
