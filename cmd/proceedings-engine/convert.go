// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/proceedings-engine/internal/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert <proceedings.pdf>...",
	Short: "Convert proceedings PDFs to plain text",
	Long: `Convert extracts the text of each page of a proceedings PDF, in page
order, into <output-dir>/<name>.txt, ready for extract. Existing text files
are skipped. Unreadable pages are reported and left out.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := conversionConfig()
		result := convert.ConvertBatch(convert.PDFText{}, args, cfg.OutputDir, os.Stdout)
		if result.HasFailures() {
			return fmt.Errorf("%d file(s) failed conversion", result.Failed)
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().String("output-dir", "text", "directory for converted text files")
	bindFlag("conversion.output_dir", convertCmd.Flags().Lookup("output-dir"))

	rootCmd.AddCommand(convertCmd)
}
