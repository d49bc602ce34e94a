package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfharvest/internal/harvest"
	"github.com/pdiddy/pdfharvest/internal/validate"
	"github.com/pdiddy/pdfharvest/pkg/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Remove invalid PDFs and list files with uppercase names",
	Long: `Validate walks a directory (default: the output directory) for .pdf files.
Each file is parsed; files that fail to parse or have no pages are deleted.
Valid files whose names contain an uppercase letter are listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg := types.ValidationConfig{
		Backend: types.ValidatorBackend(viper.GetString("validator")),
		Dir:     viper.GetString("output_dir"),
	}
	if len(args) == 1 {
		cfg.Dir = args[0]
	}

	parser, err := validate.NewParser(cfg.Backend)
	if err != nil {
		return err
	}

	h := harvest.New(types.HarvestConfig{OutputDir: cfg.Dir}, nil,
		harvest.WithParser(parser), harvest.WithOutput(os.Stdout))
	summary, err := h.ProcessDir(cfg.Dir)
	if err != nil {
		return err
	}
	printInteresting(summary)
	return nil
}

func printInteresting(summary harvest.ValidationSummary) {
	if len(summary.Interesting) == 0 {
		return
	}
	fmt.Println("\nFiles with uppercase names:")
	for _, p := range summary.Interesting {
		fmt.Println("  ", p)
	}
}
