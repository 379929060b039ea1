// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/proceedings-engine/internal/toc"
)

var titlesCmd = &cobra.Command{
	Use:   "titles [contents.txt]",
	Short: "Derive the ordered title list from table-of-contents text",
	Long: `Titles reads the text of the proceedings' table-of-contents pages and
writes one paper title per line, in order, for use with extract --titles.
Entries are recognized by their dotted leader; reading stops at the author
index.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTitles,
}

func runTitles(cmd *cobra.Command, args []string) error {
	cfg := titlesConfig()
	if len(args) > 0 {
		cfg.ContentsFile = args[0]
	}
	if cfg.ContentsFile == "" {
		return fmt.Errorf("contents file required: pass a file or set titles.contents_file")
	}

	titles, err := toc.ParseTitlesFile(cfg.ContentsFile)
	if err != nil {
		return err
	}
	if len(titles) == 0 {
		return fmt.Errorf("no titles found in %s", cfg.ContentsFile)
	}

	if cfg.Output == "" {
		return toc.WriteTitles(os.Stdout, titles)
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", cfg.Output, err)
	}
	if err := toc.WriteTitles(f, titles); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", cfg.Output, err)
	}
	fmt.Fprintf(os.Stderr, "wrote %d title(s) to %s\n", len(titles), cfg.Output)
	return nil
}

func init() {
	titlesCmd.Flags().StringP("output", "o", "", "write the title list to this file instead of stdout")
	bindFlag("titles.output", titlesCmd.Flags().Lookup("output"))

	rootCmd.AddCommand(titlesCmd)
}
