// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/proceedings-engine/internal/catalog"
	"github.com/pdiddy/proceedings-engine/internal/proceedings"
)

var extractCmd = &cobra.Command{
	Use:   "extract [proceedings.txt]",
	Short: "Extract paper summaries from a proceedings text dump",
	Long: `Extract walks the proceedings text line by line and collects one summary
per paper: title, author block, abstract, keyword line, and references.
Page numbers followed by the next title of the title list mark the start of
a paper; "Abstract", "Keywords:", and "References" delimit the fields.

The records are written as YAML or JSON. With --store they are also
ingested into the catalog.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := extractionConfig()
	if len(args) > 0 {
		cfg.ProceedingsFile = args[0]
	}
	if cfg.TitlesFile == "" {
		return fmt.Errorf("title list required: use --titles or extraction.titles_file")
	}
	if cfg.ProceedingsFile == "" {
		return fmt.Errorf("proceedings text required: pass a file or set extraction.proceedings_file")
	}

	var trace io.Writer
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		trace = os.Stderr
	}

	res, reg, err := proceedings.ExtractFiles(context.Background(), cfg, trace)
	if err != nil {
		return err
	}

	s := res.Stats
	fmt.Fprintf(os.Stderr, "lines: %d, pages: %d, papers: %d/%d, committed: %d, discarded: %d, duplicates: %d\n",
		s.Lines, s.Pages, s.Boundaries, reg.Len(), s.Committed, s.Discarded, s.Duplicates)

	source := filepath.Base(cfg.ProceedingsFile)
	if err := writeRecords(cfg.Output, cfg.Format, proceedings.NewRecordFile(source, reg, res)); err != nil {
		return err
	}

	if store, _ := cmd.Flags().GetBool("store"); store {
		cat, err := catalog.NewStore(catalogConfig())
		if err != nil {
			return err
		}
		defer cat.Close()

		summary, err := cat.Ingest(context.Background(), source, res.Records, reg, os.Stderr)
		if err != nil {
			return err
		}
		if summary.Failed > 0 {
			return fmt.Errorf("%d summary(ies) failed catalog ingest", summary.Failed)
		}
	}
	return nil
}

func writeRecords(path, format string, rf proceedings.RecordFile) error {
	if path == "" {
		return proceedings.WriteRecordFile(os.Stdout, format, rf)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := proceedings.WriteRecordFile(f, format, rf); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "wrote %d record(s) to %s\n", len(rf.Records), path)
	return nil
}

func init() {
	extractCmd.Flags().String("titles", "", "ordered title list, one title per line")
	extractCmd.Flags().String("page-policy", "strict", "page-number adjacency check: strict or lenient")
	extractCmd.Flags().Bool("drop-final", false, "discard the record still in progress at end of input")
	extractCmd.Flags().StringP("output", "o", "", "write records to this file instead of stdout")
	extractCmd.Flags().String("format", "yaml", "record format: yaml or json")
	extractCmd.Flags().Bool("store", false, "also ingest the records into the catalog")
	extractCmd.Flags().BoolP("verbose", "v", false, "trace page numbers, boundaries, and commits on stderr")

	bindFlag("extraction.titles_file", extractCmd.Flags().Lookup("titles"))
	bindFlag("extraction.page_policy", extractCmd.Flags().Lookup("page-policy"))
	bindFlag("extraction.drop_final", extractCmd.Flags().Lookup("drop-final"))
	bindFlag("extraction.output", extractCmd.Flags().Lookup("output"))
	bindFlag("extraction.format", extractCmd.Flags().Lookup("format"))

	rootCmd.AddCommand(extractCmd)
}
