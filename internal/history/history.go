// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a log of executed searches in SQLite. Only the
// request parameters and the returned page size are stored, never the
// provider responses; recording is best-effort and must not fail a search.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

const defaultPath = "arxiv-scout-history.db"

// Store manages the search history SQLite database.
type Store struct {
	db *sql.DB
}

// Entry is one recorded search.
type Entry struct {
	ID         int64
	Query      string
	SearchIn   string
	Categories []string
	Authors    string
	SortBy     string
	MaxResults int
	Total      int
	SearchedAt time.Time
}

// NewStore opens or creates the history database at cfg.Path, creating the
// schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = defaultPath
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS searches (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		query TEXT NOT NULL,
		search_in TEXT,
		categories TEXT,
		authors TEXT,
		sort_by TEXT,
		max_results INTEGER,
		total INTEGER,
		searched_at TEXT NOT NULL
	)`)
	return err
}

// Record inserts one executed search with its returned page size.
func (s *Store) Record(ctx context.Context, req types.SearchRequest, total int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO searches (query, search_in, categories, authors, sort_by, max_results, total, searched_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		req.Query,
		string(req.SearchIn),
		strings.Join(req.Categories, ","),
		req.Authors,
		string(req.SortBy),
		req.MaxResults,
		total,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording search: %w", err)
	}
	return nil
}

// Recent returns the most recent entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, query, search_in, categories, authors, sort_by, max_results, total, searched_at
		 FROM searches ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var categories, searchedAt string
		if err := rows.Scan(&e.ID, &e.Query, &e.SearchIn, &categories, &e.Authors,
			&e.SortBy, &e.MaxResults, &e.Total, &searchedAt); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		if categories != "" {
			e.Categories = strings.Split(categories, ",")
		}
		if t, parseErr := time.Parse(time.RFC3339, searchedAt); parseErr == nil {
			e.SearchedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear deletes all entries and returns the number removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM searches`)
	if err != nil {
		return 0, fmt.Errorf("clearing history: %w", err)
	}
	return res.RowsAffected()
}
