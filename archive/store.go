// SPDX-License-Identifier: MIT

package archive

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"iter"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/sweidy/eof-rotation/eof"
)

var (
	// ErrRunNotFound is returned when no run matches an id or label.
	ErrRunNotFound = errors.New("archive: run not found")

	// ErrCorruptBlob signals a stored vector whose length is not a whole
	// number of float64 values.
	ErrCorruptBlob = errors.New("archive: corrupt float64 blob")

	// ErrDayGap signals stored frames that do not cover days 1..D in order.
	ErrDayGap = errors.New("archive: frames are not contiguous days")
)

//go:embed schema.sql
var schemaSQL string

var pragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA busy_timeout=5000",
	"PRAGMA synchronous=NORMAL",
	"PRAGMA foreign_keys=ON",
}

// Store is a SQLite-backed run archive. It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the
// schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("archive: open %s: %w", path, err)
	}
	// pragmas are per connection
	db.SetMaxOpenConns(1)

	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("archive: %s: %w", p, err)
		}
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("archive: apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

// Save stores series under a new run id and returns it.
func (s *Store) Save(ctx context.Context, label string, series *eof.Series) (string, error) {
	if series == nil {
		return "", fmt.Errorf("archive: save: %w", eof.ErrNilSeries)
	}
	id := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("archive: save: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, label, days, grid_size) VALUES (?, ?, ?, ?)`,
		id, label, series.Days(), series.GridSize())
	if err != nil {
		return "", fmt.Errorf("archive: save run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO frames (run_id, doy, eof1, eof2, lat, lon,
			expl_var1, expl_var2, eigenvalue1, eigenvalue2, observations)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("archive: save: prepare: %w", err)
	}
	defer stmt.Close()

	for doy, f := range enumerate(series) {
		_, err = stmt.ExecContext(ctx, id, doy,
			encodeFloats(f.EOF1), encodeFloats(f.EOF2), encodeFloats(f.Lat), encodeFloats(f.Lon),
			f.ExplainedVariance[0], f.ExplainedVariance[1], f.Eigenvalues[0], f.Eigenvalues[1],
			f.Observations)
		if err != nil {
			return "", fmt.Errorf("archive: save day %d: %w", doy, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("archive: save: commit: %w", err)
	}

	return id, nil
}

// Load rebuilds the series stored under id.
func (s *Store) Load(ctx context.Context, id string) (*eof.Series, error) {
	var days int
	err := s.db.QueryRowContext(ctx, `SELECT days FROM runs WHERE id = ?`, id).Scan(&days)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("archive: load %s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("archive: load %s: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT doy, eof1, eof2, lat, lon, expl_var1, expl_var2, eigenvalue1, eigenvalue2, observations
		FROM frames WHERE run_id = ? ORDER BY doy`, id)
	if err != nil {
		return nil, fmt.Errorf("archive: load %s: %w", id, err)
	}
	defer rows.Close()

	frames := make([]eof.Frame, 0, days)
	for rows.Next() {
		var (
			doy              int
			e1, e2, lat, lon []byte
			f                eof.Frame
		)
		err = rows.Scan(&doy, &e1, &e2, &lat, &lon,
			&f.ExplainedVariance[0], &f.ExplainedVariance[1],
			&f.Eigenvalues[0], &f.Eigenvalues[1], &f.Observations)
		if err != nil {
			return nil, fmt.Errorf("archive: load %s: %w", id, err)
		}
		if want := len(frames) + 1; doy != want {
			return nil, fmt.Errorf("archive: load %s: got day %d, want %d: %w", id, doy, want, ErrDayGap)
		}
		if f.EOF1, err = decodeFloats(e1); err == nil {
			if f.EOF2, err = decodeFloats(e2); err == nil {
				if f.Lat, err = decodeFloats(lat); err == nil {
					f.Lon, err = decodeFloats(lon)
				}
			}
		}
		if err != nil {
			return nil, fmt.Errorf("archive: load %s: day %d: %w", id, doy, err)
		}
		frames = append(frames, f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("archive: load %s: %w", id, err)
	}

	series, err := eof.NewSeries(frames, days)
	if err != nil {
		return nil, fmt.Errorf("archive: load %s: %w", id, err)
	}

	return series, nil
}

// Latest returns the id of the most recently saved run with label.
func (s *Store) Latest(ctx context.Context, label string) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM runs WHERE label = ? ORDER BY seq DESC LIMIT 1`, label).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("archive: latest %q: %w", label, ErrRunNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("archive: latest %q: %w", label, err)
	}

	return id, nil
}

// enumerate yields (doy, frame) for every day of s.
func enumerate(s *eof.Series) iter.Seq2[int, eof.Frame] {
	return func(yield func(int, eof.Frame) bool) {
		for i, f := range s.Frames() {
			if !yield(i+1, f) {
				return
			}
		}
	}
}
