// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the proceedings-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the proceedings-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "proceedings-engine",
	Short: "Extract paper summaries from conference proceedings",
	Long: `proceedings-engine turns the plain-text dump of a conference proceedings
volume into one structured summary per paper: title, authors, abstract,
keywords, and references.

The stages are subcommands: titles derives the ordered title list from the
table of contents, convert turns the proceedings PDF into text, extract runs
the line-driven extractor, and catalog stores and searches the results.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./proceedings-engine.yaml or ~/.config/proceedings-engine/config.yaml)")
	rootCmd.PersistentFlags().String("catalog-dir", "catalog", "base directory for the catalog database (contains index/)")
	bindFlag("catalog.catalog_dir", rootCmd.PersistentFlags().Lookup("catalog-dir"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("proceedings-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "proceedings-engine"))
		}
	}

	viper.SetEnvPrefix("PROCEEDINGS_ENGINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
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
