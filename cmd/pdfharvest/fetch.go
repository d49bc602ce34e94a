package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfharvest/internal/harvest"
	"github.com/pdiddy/pdfharvest/internal/httputil"
	"github.com/pdiddy/pdfharvest/internal/validate"
	"github.com/pdiddy/pdfharvest/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "pdfharvest/0.1"
	defaultSnapshot  = "mosaicco.com.html"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the products page and download every linked PDF",
	Long: `Fetch deletes any previous page snapshot, downloads the page again, extracts
links ending in ".pdf" and downloads each one into the output directory.
Files that already exist are skipped. A failed download is reported and the
remaining links are still processed.

With --validate, the output directory is checked afterwards and files that do
not parse as PDF documents are removed.`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("snapshot", defaultSnapshot, "path where the fetched page is stored")
	fetchCmd.Flags().Duration("timeout", defaultTimeout, "HTTP request timeout")
	fetchCmd.Flags().Duration("delay", 0, "minimum delay between consecutive downloads")
	fetchCmd.Flags().String("user-agent", defaultUserAgent, "User-Agent header for HTTP requests")
	fetchCmd.Flags().String("download-log", "", "append \"<url> -> <path>\" for each saved PDF to this file")
	fetchCmd.Flags().String("report", "", "write a YAML run report to this file")
	fetchCmd.Flags().Bool("validate", false, "validate the output directory after downloading")

	for key, flag := range map[string]string{
		"snapshot_path":  "snapshot",
		"timeout":        "timeout",
		"download_delay": "delay",
		"user_agent":     "user-agent",
		"download_log":   "download-log",
		"report_path":    "report",
	} {
		viper.BindPFlag(key, fetchCmd.Flags().Lookup(flag))
	}

	rootCmd.AddCommand(fetchCmd)
}

// harvestConfig assembles the run configuration from viper.
func harvestConfig() types.HarvestConfig {
	return types.HarvestConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("timeout"),
			UserAgent: viper.GetString("user_agent"),
		},
		PageURL:       pageURL,
		SnapshotPath:  viper.GetString("snapshot_path"),
		OutputDir:     viper.GetString("output_dir"),
		DownloadDelay: viper.GetDuration("download_delay"),
		DownloadLog:   viper.GetString("download_log"),
		ReportPath:    viper.GetString("report_path"),
	}
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := harvestConfig()
	parser, err := validate.NewParser(types.ValidatorBackend(viper.GetString("validator")))
	if err != nil {
		return err
	}

	client := httputil.NewClient(httputil.NewHTTPClient(cfg.HTTPConfig), cfg.UserAgent)
	h := harvest.New(cfg, client, harvest.WithParser(parser), harvest.WithOutput(os.Stdout))

	result, err := h.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("harvest aborted: %w", err)
	}

	if validateAfter, _ := cmd.Flags().GetBool("validate"); validateAfter {
		summary, err := h.ProcessDir(cfg.OutputDir)
		if err != nil {
			return err
		}
		result.Validation = &summary
		printInteresting(summary)
	}

	if cfg.ReportPath != "" {
		if err := harvest.WriteReport(cfg.ReportPath, result); err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", cfg.ReportPath)
	}
	return nil
}
