// Package catalog keeps a SQLite record of the faces found in rendered text.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/f3rmion/memenhance/internal/meme"
	"github.com/npillmayer/schuko/tracing"

	_ "modernc.org/sqlite"
)

// tracer traces with key 'memenhance.catalog'.
func tracer() tracing.Trace {
	return tracing.Select("memenhance.catalog")
}

// ErrNotFound is returned by Lookup for faces never recorded.
var ErrNotFound = errors.New("face not found")

const schema = `
CREATE TABLE IF NOT EXISTS faces (
	face       TEXT PRIMARY KEY,
	count      INTEGER NOT NULL,
	first_seen INTEGER NOT NULL,
	last_seen  INTEGER NOT NULL,
	sample     TEXT NOT NULL
)`

// Entry is a recorded face.
type Entry struct {
	Face      string
	Count     int
	FirstSeen time.Time
	LastSeen  time.Time
	Sample    string // The face with its neighbor words as first seen
}

// Catalog is a face store backed by a SQLite database file.
type Catalog struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the catalog at path.
func Open(ctx context.Context, path string) (*Catalog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Catalog{db: db, now: time.Now}, nil
}

// Close closes the database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Record adds every face of memes to the catalog, incrementing the count of
// faces already known.
func (c *Catalog) Record(ctx context.Context, memes []meme.Meme) error {
	if len(memes) == 0 {
		return nil
	}
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO faces (face, count, first_seen, last_seen, sample)
		VALUES (?, 1, ?, ?, ?)
		ON CONFLICT(face) DO UPDATE SET
			count = count + 1,
			last_seen = excluded.last_seen`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	now := c.now().Unix()
	for _, m := range memes {
		sample := m.Left + "(" + m.Head.Face + ")" + m.Right
		if _, err := stmt.ExecContext(ctx, m.Head.Face, now, now, sample); err != nil {
			return fmt.Errorf("recording face %q: %w", m.Head.Face, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing faces: %w", err)
	}
	tracer().Debugf("recorded %d faces", len(memes))
	return nil
}

// Top returns up to limit faces, most frequent first.
func (c *Catalog) Top(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT face, count, first_seen, last_seen, sample
		FROM faces
		ORDER BY count DESC, face ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying faces: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading faces: %w", err)
	}
	return entries, nil
}

// Lookup returns the entry of a single face.
func (c *Catalog) Lookup(ctx context.Context, face string) (Entry, error) {
	row := c.db.QueryRowContext(ctx, `
		SELECT face, count, first_seen, last_seen, sample
		FROM faces WHERE face = ?`, face)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, face)
	}
	return e, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (Entry, error) {
	var e Entry
	var first, last int64
	if err := s.Scan(&e.Face, &e.Count, &first, &last, &e.Sample); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return e, err
		}
		return e, fmt.Errorf("scanning face: %w", err)
	}
	e.FirstSeen = time.Unix(first, 0)
	e.LastSeen = time.Unix(last, 0)
	return e, nil
}
