// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/proceedings-engine/internal/catalog"
	"github.com/pdiddy/proceedings-engine/internal/proceedings"
	"github.com/pdiddy/proceedings-engine/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the summary catalog (store, retrieve, show, export)",
	Long: `Catalog manages a local SQLite database of extracted paper summaries
with full-text search over titles, abstracts, and keywords. Use
subcommands to ingest record files, query them, or export.`,
}

// --- store subcommand ---

var catalogStoreCmd = &cobra.Command{
	Use:   "store <records.yaml>...",
	Short: "Ingest record files written by extract into the catalog",
	Long: `Store reads record files produced by extract and upserts every summary
into the catalog, keyed by title. With --titles, each summary also gets
its table-of-contents position so listings follow the proceedings order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCatalogStore,
}

func runCatalogStore(cmd *cobra.Command, args []string) error {
	var pos catalog.Positioner
	if titlesFile, _ := cmd.Flags().GetString("titles"); titlesFile != "" {
		reg, err := proceedings.LoadRegistryFile(titlesFile)
		if err != nil {
			return err
		}
		pos = reg
	}

	store, err := catalog.NewStore(catalogConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	failed := 0
	for _, path := range args {
		rf, err := proceedings.ReadRecordFile(path)
		if err != nil {
			return err
		}
		source := rf.Source
		if source == "" {
			source = path
		}
		summary, err := store.Ingest(context.Background(), source, rf.Records, pos, os.Stdout)
		if err != nil {
			return fmt.Errorf("ingesting %s: %w", path, err)
		}
		failed += summary.Failed
	}
	if failed > 0 {
		return fmt.Errorf("%d summary(ies) failed catalog ingest", failed)
	}
	return nil
}

// --- retrieve subcommand ---

var catalogRetrieveCmd = &cobra.Command{
	Use:   "retrieve [query]",
	Short: "Query the catalog with full-text search and filters",
	Long: `Retrieve searches the catalog using FTS5 full-text search over titles,
abstracts, and keywords, structured filters (author, source), or a
combination of both.`,
	RunE: runCatalogRetrieve,
}

func runCatalogRetrieve(cmd *cobra.Command, args []string) error {
	opts := queryOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --author, or --source")
	}

	store, err := catalog.NewStore(catalogConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatRetrieveOutput(results, jsonOutput)
}

func formatRetrieveOutput(results []types.CatalogEntry, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-50s  %-25s  %-15s  %s\n",
		"Rank", "Title", "Authors", "Source", "Pos")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 108))

	for i, e := range results {
		fmt.Fprintf(os.Stdout, "%-4d  %-50s  %-25s  %-15s  %d\n",
			i+1, truncate(e.Title, 50), truncate(strings.Join(e.Authors, "; "), 25),
			truncate(e.Source, 15), e.Position)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// --- show subcommand ---

var catalogShowCmd = &cobra.Command{
	Use:   "show <title>",
	Short: "Print the full summary stored for a title",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := catalog.NewStore(catalogConfig())
		if err != nil {
			return err
		}
		defer store.Close()

		e, err := store.Get(context.Background(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		fmt.Printf("Title:    %s\n", e.Title)
		fmt.Printf("Source:   %s (position %d)\n", e.Source, e.Position)
		for _, a := range e.Authors {
			fmt.Printf("Author:   %s\n", a)
		}
		if e.Keywords != "" {
			fmt.Printf("%s\n", e.Keywords)
		}
		fmt.Printf("\n%s\n", strings.TrimSpace(e.Abstract))
		if len(e.References) > 0 {
			fmt.Println("\nReferences")
			for _, r := range e.References {
				fmt.Println(r)
			}
		}
		return nil
	},
}

// --- export subcommand ---

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to YAML or JSON",
	Long: `Export writes the full catalog (or a filtered subset) to
<catalog-dir>/index/export.yaml or export.json. Supports the same filter
flags as retrieve for partial exports.`,
	RunE: runCatalogExport,
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := catalog.NewStore(catalogConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)

	var path string
	switch format {
	case proceedings.FormatYAML, "":
		path, err = store.ExportYAML(context.Background(), opts)
	case proceedings.FormatJSON:
		path, err = store.ExportJSON(context.Background(), opts)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}
	fmt.Println("Exported to", path)
	return nil
}

// --- shared helpers ---

func queryOptsFromFlags(cmd *cobra.Command, args []string) catalog.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}
	author, _ := cmd.Flags().GetString("author")
	source, _ := cmd.Flags().GetString("source")
	limit, _ := cmd.Flags().GetInt("limit")

	return catalog.QueryOptions{
		Query:      queryText,
		Author:     author,
		Source:     source,
		MaxResults: limit,
	}
}

func init() {
	catalogCmd.PersistentFlags().Int("max-results", 20, "maximum number of query results")
	bindFlag("catalog.max_results", catalogCmd.PersistentFlags().Lookup("max-results"))

	// Store flags.
	catalogStoreCmd.Flags().String("titles", "", "title list used to record table-of-contents positions")

	// Retrieve flags.
	catalogRetrieveCmd.Flags().String("query", "", "full-text search query")
	catalogRetrieveCmd.Flags().String("author", "", "filter by author text")
	catalogRetrieveCmd.Flags().String("source", "", "filter by proceedings source")
	catalogRetrieveCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	catalogRetrieveCmd.Flags().Bool("json", false, "output results as JSON")

	// Export flags.
	catalogExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	catalogExportCmd.Flags().String("query", "", "full-text search filter for partial export")
	catalogExportCmd.Flags().String("author", "", "filter by author text for partial export")
	catalogExportCmd.Flags().String("source", "", "filter by proceedings source for partial export")

	catalogCmd.AddCommand(catalogStoreCmd)
	catalogCmd.AddCommand(catalogRetrieveCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogExportCmd)

	rootCmd.AddCommand(catalogCmd)
}
