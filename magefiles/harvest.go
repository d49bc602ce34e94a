//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Fetch builds the CLI and downloads every PDF linked from the products page.
func Fetch() error {
	mg.Deps(Build, Init)
	return sh.RunV("bin/"+binName, "fetch", "--report", "harvest-report.yaml")
}

// Validate removes invalid PDFs from the output directory.
func Validate() error {
	mg.Deps(Build)
	return sh.RunV("bin/"+binName, "validate", outputDir)
}
