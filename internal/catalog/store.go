// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists extracted paper summaries in a SQLite database
// with a full-text index over titles, abstracts, and keywords.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/proceedings-engine/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "proceedings.db"
)

// Positioner resolves a title to its table-of-contents position.
type Positioner interface {
	Position(title string) (int, bool)
}

// Store manages the catalog SQLite database.
type Store struct {
	db         *sql.DB
	catalogDir string
	maxResults int
	now        func() time.Time
}

// NewStore opens or creates the catalog database at
// catalogDir/index/proceedings.db and creates the schema if needed.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.CatalogDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		catalogDir: cfg.CatalogDir,
		maxResults: maxResults,
		now:        time.Now,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS summaries (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL UNIQUE,
			position INTEGER,
			authors TEXT,
			keywords TEXT,
			abstract TEXT,
			refs TEXT,
			source TEXT,
			ingested_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_summaries_source ON summaries(source, position)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='summaries_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE summaries_fts USING fts5(title, abstract, keywords, content=summaries, content_rowid=rowid)`,
			`CREATE TRIGGER summaries_ai AFTER INSERT ON summaries BEGIN
				INSERT INTO summaries_fts(rowid, title, abstract, keywords)
				VALUES (new.rowid, new.title, new.abstract, new.keywords);
			END`,
			`CREATE TRIGGER summaries_ad AFTER DELETE ON summaries BEGIN
				INSERT INTO summaries_fts(summaries_fts, rowid, title, abstract, keywords)
				VALUES ('delete', old.rowid, old.title, old.abstract, old.keywords);
			END`,
			`CREATE TRIGGER summaries_au AFTER UPDATE ON summaries BEGIN
				INSERT INTO summaries_fts(summaries_fts, rowid, title, abstract, keywords)
				VALUES ('delete', old.rowid, old.title, old.abstract, old.keywords);
				INSERT INTO summaries_fts(rowid, title, abstract, keywords)
				VALUES (new.rowid, new.title, new.abstract, new.keywords);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// IngestSummary holds counts from a catalog ingest run.
type IngestSummary struct {
	Inserted int
	Updated  int
	Failed   int
}

// Total returns the number of summaries processed.
func (s IngestSummary) Total() int {
	return s.Inserted + s.Updated + s.Failed
}

// Ingest writes records to the catalog under source in one transaction.
// An existing title is replaced. pos, if non-nil, supplies the
// table-of-contents position of each title. Summaries without a title are
// counted as failed and skipped.
func (s *Store) Ingest(ctx context.Context, source string, records []types.PaperSummary, pos Positioner, w io.Writer) (IngestSummary, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO summaries (title, position, authors, keywords, abstract, refs, source, ingested_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(title) DO UPDATE SET
			position=excluded.position, authors=excluded.authors, keywords=excluded.keywords,
			abstract=excluded.abstract, refs=excluded.refs, source=excluded.source,
			ingested_at=excluded.ingested_at`)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	ts := s.now().UTC().Format(time.RFC3339Nano)
	var summary IngestSummary

	for _, rec := range records {
		if rec.Title == "" {
			fmt.Fprintf(w, "failed  (untitled summary from %s)\n", source)
			summary.Failed++
			continue
		}

		var exists int
		if err := tx.QueryRowContext(ctx,
			`SELECT count(*) FROM summaries WHERE title = ?`, rec.Title,
		).Scan(&exists); err != nil {
			return summary, fmt.Errorf("checking %q: %w", rec.Title, err)
		}

		position := 0
		if pos != nil {
			if p, ok := pos.Position(rec.Title); ok {
				position = p
			}
		}
		authorsJSON, _ := json.Marshal(nonNil(rec.Authors))
		refsJSON, _ := json.Marshal(nonNil(rec.References))

		if _, err := stmt.ExecContext(ctx,
			rec.Title, position, string(authorsJSON), rec.Keywords,
			rec.Abstract, string(refsJSON), source, ts,
		); err != nil {
			return summary, fmt.Errorf("inserting %q: %w", rec.Title, err)
		}

		if exists > 0 {
			fmt.Fprintf(w, "updated  %s\n", rec.Title)
			summary.Updated++
		} else {
			fmt.Fprintf(w, "inserted %s\n", rec.Title)
			summary.Inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("committing: %w", err)
	}

	fmt.Fprintf(w, "\ninserted: %d, updated: %d, failed: %d\n",
		summary.Inserted, summary.Updated, summary.Failed)
	return summary, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
