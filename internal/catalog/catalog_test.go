// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/proceedings-engine/internal/proceedings"
	"github.com/pdiddy/proceedings-engine/pkg/types"
)

// --- test helpers ---

func testSetup(t *testing.T) (*Store, string) {
	t.Helper()
	tmpDir := t.TempDir()

	cfg := types.CatalogConfig{
		CatalogDir: filepath.Join(tmpDir, "catalog"),
		MaxResults: 20,
	}
	store, err := NewStore(cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	return store, tmpDir
}

func sampleRecords() []types.PaperSummary {
	return []types.PaperSummary{
		{
			Title:    "Intro To Widgets",
			Authors:  []string{"Jane Doe", "University of Somewhere"},
			Abstract: "This paper surveys widgets. ",
			Keywords: "Keywords: widgets, survey",
		},
		{
			Title:      "A Survey Of Gadgets",
			Authors:    []string{"John Roe"},
			Abstract:   "Gadgets are surveyed here too. ",
			Keywords:   "Keywords: gadgets",
			References: []string{"[1] Some Citation"},
		},
	}
}

func sampleRegistry() *proceedings.TitleRegistry {
	return proceedings.NewRegistry([]string{"Intro To Widgets", "A Survey Of Gadgets"})
}

func ingestHelper(t *testing.T, store *Store, source string) IngestSummary {
	t.Helper()
	var buf strings.Builder
	summary, err := store.Ingest(context.Background(), source, sampleRecords(), sampleRegistry(), &buf)
	if err != nil {
		t.Fatal(err)
	}
	return summary
}

// --- schema tests ---

func TestNewStoreCreatesSchema(t *testing.T) {
	store, _ := testSetup(t)

	for _, table := range []string{"summaries", "summaries_fts"} {
		var count int
		err := store.db.QueryRow(
			`SELECT count(*) FROM sqlite_master WHERE type IN ('table','view') AND name = ?`, table,
		).Scan(&count)
		if err != nil {
			t.Fatalf("checking table %s: %v", table, err)
		}
		if count == 0 {
			t.Errorf("table %s does not exist", table)
		}
	}
}

func TestNewStoreCreatesDBFile(t *testing.T) {
	_, tmpDir := testSetup(t)

	dbPath := filepath.Join(tmpDir, "catalog", indexDir, dbFile)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("database file not created at %s", dbPath)
	}
}

func TestNewStoreReopen(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := types.CatalogConfig{CatalogDir: tmpDir}

	for i := 0; i < 2; i++ {
		store, err := NewStore(cfg)
		if err != nil {
			t.Fatalf("open %d: %v", i, err)
		}
		store.Close()
	}
}

// --- ingest tests ---

func TestIngest(t *testing.T) {
	store, _ := testSetup(t)

	first := ingestHelper(t, store, "cogsci2018.txt")
	if first.Inserted != 2 || first.Updated != 0 || first.Failed != 0 {
		t.Errorf("first ingest = %+v, want 2 inserted", first)
	}

	second := ingestHelper(t, store, "cogsci2018.txt")
	if second.Inserted != 0 || second.Updated != 2 {
		t.Errorf("second ingest = %+v, want 2 updated", second)
	}
	if second.Total() != 2 {
		t.Errorf("Total = %d, want 2", second.Total())
	}

	var rows int
	if err := store.db.QueryRow(`SELECT count(*) FROM summaries`).Scan(&rows); err != nil {
		t.Fatal(err)
	}
	if rows != 2 {
		t.Errorf("rows = %d, want 2", rows)
	}
}

func TestIngestSkipsUntitled(t *testing.T) {
	store, _ := testSetup(t)

	var buf strings.Builder
	summary, err := store.Ingest(context.Background(), "x.txt",
		[]types.PaperSummary{{Abstract: "orphan"}, {Title: "Kept"}}, nil, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Failed != 1 || summary.Inserted != 1 {
		t.Errorf("summary = %+v, want 1 failed, 1 inserted", summary)
	}
	if !strings.Contains(buf.String(), "untitled") {
		t.Errorf("output %q should report the untitled summary", buf.String())
	}

	e, err := store.Get(context.Background(), "Kept")
	if err != nil {
		t.Fatal(err)
	}
	if e.Position != 0 {
		t.Errorf("Position = %d, want 0 without a registry", e.Position)
	}
}

func TestGetStoresAllFields(t *testing.T) {
	store, _ := testSetup(t)
	ingestHelper(t, store, "cogsci2018.txt")

	e, err := store.Get(context.Background(), "A Survey Of Gadgets")
	if err != nil {
		t.Fatal(err)
	}
	if e.Position != 2 {
		t.Errorf("Position = %d, want 2", e.Position)
	}
	if e.Source != "cogsci2018.txt" {
		t.Errorf("Source = %q", e.Source)
	}
	if len(e.Authors) != 1 || e.Authors[0] != "John Roe" {
		t.Errorf("Authors = %v", e.Authors)
	}
	if len(e.References) != 1 || e.References[0] != "[1] Some Citation" {
		t.Errorf("References = %v", e.References)
	}
	if e.Keywords != "Keywords: gadgets" {
		t.Errorf("Keywords = %q", e.Keywords)
	}
	if e.Abstract != "Gadgets are surveyed here too. " {
		t.Errorf("Abstract = %q", e.Abstract)
	}
	if e.IngestedAt.IsZero() {
		t.Error("IngestedAt should be set")
	}

	if _, err := store.Get(context.Background(), "Missing"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("Get(Missing) error = %v, want not found", err)
	}
}

// --- retrieve tests ---

func TestRetrieve(t *testing.T) {
	store, _ := testSetup(t)
	ingestHelper(t, store, "cogsci2018.txt")

	tests := []struct {
		name       string
		opts       QueryOptions
		wantTitles []string
	}{
		{"full text title and keywords", QueryOptions{Query: "widgets"}, []string{"Intro To Widgets"}},
		{"full text abstract", QueryOptions{Query: "surveyed"}, []string{"A Survey Of Gadgets"}},
		{"author filter", QueryOptions{Author: "Roe"}, []string{"A Survey Of Gadgets"}},
		{"source filter ordered by position", QueryOptions{Source: "cogsci2018.txt"}, []string{"Intro To Widgets", "A Survey Of Gadgets"}},
		{"unknown source", QueryOptions{Source: "other.txt"}, nil},
		{"limit", QueryOptions{Source: "cogsci2018.txt", MaxResults: 1}, []string{"Intro To Widgets"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := store.Retrieve(context.Background(), tt.opts)
			if err != nil {
				t.Fatal(err)
			}
			var got []string
			for _, r := range results {
				got = append(got, r.Title)
			}
			if strings.Join(got, "|") != strings.Join(tt.wantTitles, "|") {
				t.Errorf("titles = %v, want %v", got, tt.wantTitles)
			}
		})
	}
}

func TestQueryOptionsIsEmpty(t *testing.T) {
	if !(QueryOptions{MaxResults: 5}).IsEmpty() {
		t.Error("options with only a limit should be empty")
	}
	if (QueryOptions{Author: "Doe"}).IsEmpty() {
		t.Error("options with an author filter should not be empty")
	}
}

// --- export tests ---

func TestExportYAML(t *testing.T) {
	store, _ := testSetup(t)
	ingestHelper(t, store, "cogsci2018.txt")

	path, err := store.ExportYAML(context.Background(), QueryOptions{})
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var entries []types.CatalogEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("exported %d entries, want 2", len(entries))
	}
	if entries[0].Title != "Intro To Widgets" || entries[0].Position != 1 {
		t.Errorf("first entry = %q at %d", entries[0].Title, entries[0].Position)
	}
}

func TestExportJSONFiltered(t *testing.T) {
	store, _ := testSetup(t)
	ingestHelper(t, store, "cogsci2018.txt")

	path, err := store.ExportJSON(context.Background(), QueryOptions{Author: "Jane"})
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var entries []map[string]any
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("exported %d entries, want 1", len(entries))
	}
	if entries[0]["title"] != "Intro To Widgets" {
		t.Errorf("title = %v", entries[0]["title"])
	}
	if _, ok := entries[0]["abstract"]; !ok {
		t.Error("embedded summary fields should be flattened into the entry")
	}
}

func TestExportEmpty(t *testing.T) {
	store, _ := testSetup(t)

	path, err := store.ExportJSON(context.Background(), QueryOptions{})
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("empty export = %q, want []", data)
	}
}
