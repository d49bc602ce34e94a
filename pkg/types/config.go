package types

import "time"

// HTTPConfig holds shared HTTP settings used by every network request.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pdfharvest/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// HarvestConfig holds the parameters of a harvest run. The composition root
// fills it; nothing in the harvest package reads globals.
type HarvestConfig struct {
	HTTPConfig `yaml:",inline"`

	// PageURL is the remote page scraped for PDF links.
	PageURL string `json:"page_url" yaml:"page_url"`

	// SnapshotPath is where the fetched page is stored before extraction.
	SnapshotPath string `json:"snapshot_path" yaml:"snapshot_path"`

	// OutputDir receives one file per downloaded PDF.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// DownloadDelay is the minimum spacing between consecutive downloads.
	// Zero disables pacing.
	DownloadDelay time.Duration `json:"download_delay" yaml:"download_delay"`

	// DownloadLog, when set, receives one "<url> -> <path>" line per saved PDF.
	DownloadLog string `json:"download_log,omitempty" yaml:"download_log,omitempty"`

	// ReportPath, when set, receives a YAML summary of the run.
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty"`
}

// ValidatorBackend identifies the PDF parsing library used for validation.
type ValidatorBackend string

const (
	BackendPdfcpu     ValidatorBackend = "pdfcpu"
	BackendLedongthuc ValidatorBackend = "ledongthuc"
)

// ValidationConfig holds settings for the validation pass.
type ValidationConfig struct {
	// Backend selects the parser: pdfcpu or ledongthuc.
	Backend ValidatorBackend `json:"backend" yaml:"backend"`

	// Dir is the directory walked for .pdf files.
	Dir string `json:"dir" yaml:"dir"`
}
