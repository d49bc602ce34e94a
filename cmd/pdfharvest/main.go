// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdfharvest CLI. It wires
// configuration from flags, an optional config file and the environment
// into the harvest package.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// pageURL is the page scraped for PDF links.
const pageURL = "https://mosaicco.com/ProductsandServices"

// rootCmd is the base command for the pdfharvest CLI.
var rootCmd = &cobra.Command{
	Use:   "pdfharvest",
	Short: "Download the PDFs linked from the Mosaic products page",
	Long: `pdfharvest fetches a fixed products page, collects every link ending in
".pdf", and downloads each file into a local directory. Files already on disk
are skipped, so repeated runs only fetch what is new.

The validate command checks downloaded files, removes those that do not parse
as PDF documents, and lists the valid files whose names contain an uppercase
letter.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdfharvest.yaml or ~/.config/pdfharvest/pdfharvest.yaml)")
	rootCmd.PersistentFlags().String("output-dir", "PDFs", "directory receiving downloaded PDFs")
	rootCmd.PersistentFlags().String("validator", "pdfcpu", "PDF parser used for validation: pdfcpu or ledongthuc")

	viper.BindPFlag("output_dir", rootCmd.PersistentFlags().Lookup("output-dir"))
	viper.BindPFlag("validator", rootCmd.PersistentFlags().Lookup("validator"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdfharvest")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdfharvest"))
		}
	}

	viper.SetEnvPrefix("PDFHARVEST")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
