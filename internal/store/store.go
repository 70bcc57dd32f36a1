// Package store handles SQLite catalogue databases.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/verte-zerg/tinysteps/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for catalogue data.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS records (
			position INTEGER NOT NULL,
			id TEXT PRIMARY KEY,
			category TEXT NOT NULL,
			kind TEXT NOT NULL,
			icon TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			full_description TEXT NOT NULL,
			start_age_months INTEGER NOT NULL,
			end_age_months INTEGER
		);`,
		`CREATE TABLE IF NOT EXISTS record_links (
			record_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			label TEXT NOT NULL,
			url TEXT NOT NULL,
			type TEXT NOT NULL,
			description TEXT NOT NULL,
			author TEXT NOT NULL,
			author_icon TEXT NOT NULL,
			PRIMARY KEY (record_id, position)
		);`,
		`CREATE TABLE IF NOT EXISTS age_groups (
			position INTEGER NOT NULL,
			id TEXT PRIMARY KEY,
			label TEXT NOT NULL,
			min_months INTEGER NOT NULL,
			max_months INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_records_position ON records(position);`,
		`CREATE INDEX IF NOT EXISTS idx_records_category ON records(category);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ReplaceCatalogue swaps the stored catalogue for records and groups in one transaction.
func (s *Store) ReplaceCatalogue(ctx context.Context, records []model.Record, groups []model.AgeGroup) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	for _, stmt := range []string{`DELETE FROM record_links`, `DELETE FROM records`, `DELETE FROM age_groups`} {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	recordStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (position, id, category, kind, icon, title, description, full_description, start_age_months, end_age_months)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := recordStmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()
	linkStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO record_links (record_id, position, label, url, type, description, author, author_icon)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := linkStmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()

	for i, r := range records {
		var end sql.NullInt64
		if r.EndAgeMonths != nil {
			end = sql.NullInt64{Int64: int64(*r.EndAgeMonths), Valid: true}
		}
		if _, err = recordStmt.ExecContext(ctx, i, r.ID, r.Category, string(r.Kind), r.Icon, r.Title,
			r.ShortDescription, r.LongDescription, r.StartAgeMonths, end); err != nil {
			return err
		}
		for j, l := range r.Links {
			if _, err = linkStmt.ExecContext(ctx, r.ID, j, l.Label, l.URL, string(l.Type), l.Description, l.Author, l.AuthorIcon); err != nil {
				return err
			}
		}
	}

	for i, g := range groups {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO age_groups (position, id, label, min_months, max_months) VALUES (?, ?, ?, ?, ?)`,
			i, g.ID, g.Label, g.MinMonths, g.MaxMonths); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListRecords returns all records in catalogue order, links included.
func (s *Store) ListRecords(ctx context.Context) ([]model.Record, error) {
	links, err := s.listLinks(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, category, kind, icon, title, description, full_description, start_age_months, end_age_months
		FROM records
		ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var records []model.Record
	for rows.Next() {
		var r model.Record
		var kind string
		var end sql.NullInt64
		if err := rows.Scan(&r.ID, &r.Category, &kind, &r.Icon, &r.Title, &r.ShortDescription,
			&r.LongDescription, &r.StartAgeMonths, &end); err != nil {
			return nil, err
		}
		r.Kind = model.Kind(kind)
		if end.Valid {
			r.EndAgeMonths = model.Months(int(end.Int64))
		}
		r.Links = links[r.ID]
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Store) listLinks(ctx context.Context) (map[string][]model.Link, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT record_id, label, url, type, description, author, author_icon
		FROM record_links
		ORDER BY record_id ASC, position ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	result := map[string][]model.Link{}
	for rows.Next() {
		var recordID, linkType string
		var l model.Link
		if err := rows.Scan(&recordID, &l.Label, &l.URL, &linkType, &l.Description, &l.Author, &l.AuthorIcon); err != nil {
			return nil, err
		}
		l.Type = model.LinkType(linkType)
		result[recordID] = append(result[recordID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListAgeGroups returns the stored age brackets in display order.
func (s *Store) ListAgeGroups(ctx context.Context) ([]model.AgeGroup, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, label, min_months, max_months FROM age_groups ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var groups []model.AgeGroup
	for rows.Next() {
		var g model.AgeGroup
		if err := rows.Scan(&g.ID, &g.Label, &g.MinMonths, &g.MaxMonths); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return groups, nil
}
