// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/proceedings-engine/pkg/types"
)

// QueryOptions holds parameters for catalog queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string over title, abstract, and
	// keywords.
	Query string

	// Author keeps summaries with an author line containing this text.
	Author string

	// Source keeps summaries extracted from this proceedings volume.
	Source string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Author == "" && q.Source == ""
}

// Retrieve queries the catalog. Full-text queries are ranked by relevance;
// filter-only queries are sorted by source and table-of-contents position.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]types.CatalogEntry, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT s.title, s.position, s.authors, s.keywords, s.abstract,
				s.refs, s.source, s.ingested_at
			FROM summaries_fts
			JOIN summaries s ON s.rowid = summaries_fts.rowid
			WHERE summaries_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT s.title, s.position, s.authors, s.keywords, s.abstract,
				s.refs, s.source, s.ingested_at
			FROM summaries s
			WHERE 1=1`)
	}

	if opts.Author != "" {
		qb.WriteString(` AND EXISTS (SELECT 1 FROM json_each(s.authors) WHERE value LIKE ?)`)
		args = append(args, "%"+opts.Author+"%")
	}

	if opts.Source != "" {
		qb.WriteString(` AND s.source = ?`)
		args = append(args, opts.Source)
	}

	if useFTS {
		qb.WriteString(` ORDER BY summaries_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY s.source, s.position, s.title`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var results []types.CatalogEntry
	for rows.Next() {
		var (
			e           types.CatalogEntry
			authorsJSON sql.NullString
			refsJSON    sql.NullString
			keywords    sql.NullString
			abstract    sql.NullString
			source      sql.NullString
			ingestedAt  sql.NullString
		)

		if err := rows.Scan(
			&e.Title, &e.Position, &authorsJSON, &keywords, &abstract,
			&refsJSON, &source, &ingestedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		if authorsJSON.Valid {
			json.Unmarshal([]byte(authorsJSON.String), &e.Authors)
		}
		if refsJSON.Valid {
			json.Unmarshal([]byte(refsJSON.String), &e.References)
		}
		e.Keywords = keywords.String
		e.Abstract = abstract.String
		e.Source = source.String
		if ingestedAt.Valid {
			e.IngestedAt, _ = time.Parse(time.RFC3339Nano, ingestedAt.String)
		}

		results = append(results, e)
	}

	return results, rows.Err()
}

// Get returns the catalog entry for title.
func (s *Store) Get(ctx context.Context, title string) (types.CatalogEntry, error) {
	var (
		e           types.CatalogEntry
		authorsJSON string
		refsJSON    string
		ingestedAt  string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT title, position, authors, keywords, abstract, refs, source, ingested_at
		 FROM summaries WHERE title = ?`, title,
	).Scan(&e.Title, &e.Position, &authorsJSON, &e.Keywords, &e.Abstract,
		&refsJSON, &e.Source, &ingestedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return e, fmt.Errorf("summary %q not found", title)
		}
		return e, fmt.Errorf("looking up summary: %w", err)
	}

	json.Unmarshal([]byte(authorsJSON), &e.Authors)
	json.Unmarshal([]byte(refsJSON), &e.References)
	e.IngestedAt, _ = time.Parse(time.RFC3339Nano, ingestedAt)
	return e, nil
}
