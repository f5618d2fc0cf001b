// Package store exports the protein and interaction frames to an embedded
// SQLite database, so downstream tooling can query them relationally.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/dd0wney/ppigraph/pkg/dataframe"
)

// DefaultPath returns the conventional database location: ~/.ppi/ppi.sqlite.
// The directory is created when missing.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".ppi")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	return filepath.Join(dir, "ppi.sqlite"), nil
}

// Store wraps the SQLite database holding the exported frames.
type Store struct {
	db      *sql.DB
	path    string
	hasData bool
}

// Open opens (or creates) the database at path.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=10000&_journal_mode=WAL&_synchronous=NORMAL", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Writes are serialized by SQLite anyway; keep the pool small
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// HasData reports whether the last import wrote any interactions.
func (s *Store) HasData() bool {
	return s.hasData
}

// Import replaces the protein and interaction tables with the given frames.
// Both tables are written inside one transaction: either both land or
// neither does.
func (s *Store) Import(proteins *dataframe.ProteinFrame, interactions *dataframe.InteractionFrame) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	statements := []string{
		`DROP TABLE IF EXISTS interaction`,
		`DROP TABLE IF EXISTS protein`,
		`CREATE TABLE protein (
			id INTEGER PRIMARY KEY,
			accession TEXT NOT NULL UNIQUE,
			name TEXT,
			taxid INTEGER
		)`,
		`CREATE TABLE interaction (
			id INTEGER PRIMARY KEY,
			confidence_value REAL,
			detection_method TEXT,
			interaction_type TEXT,
			pmid TEXT,
			protein_a_id INTEGER NOT NULL REFERENCES protein(id),
			protein_b_id INTEGER NOT NULL REFERENCES protein(id)
		)`,
	}
	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("prepare tables: %w", err)
		}
	}

	insertProtein, err := tx.Prepare(`INSERT INTO protein (id, accession, name, taxid) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare protein insert: %w", err)
	}
	defer insertProtein.Close()
	for _, p := range proteins.Proteins() {
		if _, err := insertProtein.Exec(p.ID, p.Accession, p.Name, p.TaxID); err != nil {
			return fmt.Errorf("insert protein %s: %w", p.Accession, err)
		}
	}

	insertInteraction, err := tx.Prepare(`INSERT INTO interaction
		(id, confidence_value, detection_method, interaction_type, pmid, protein_a_id, protein_b_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare interaction insert: %w", err)
	}
	defer insertInteraction.Close()
	for _, ia := range interactions.Interactions() {
		var confidence any
		if ia.HasConfidence {
			confidence = ia.Confidence
		}
		if _, err := insertInteraction.Exec(ia.ID, confidence, ia.DetectionMethod, ia.InteractionType, ia.PMID, ia.ProteinA, ia.ProteinB); err != nil {
			return fmt.Errorf("insert interaction %d: %w", ia.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	s.hasData = interactions.Len() > 0
	return nil
}

// TableNames returns the user table names in the database.
func (s *Store) TableNames() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Columns returns the column names of a table in declaration order.
func (s *Store) Columns(table string) ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM pragma_table_info(?)`, table)
	if err != nil {
		return nil, fmt.Errorf("inspect %s: %w", table, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no table %q", table)
	}
	return names, nil
}

// Drop closes the store and removes the database file. Dropping a database
// that does not exist is an error.
func (s *Store) Drop() error {
	if err := s.db.Close(); err != nil {
		return err
	}
	return Remove(s.path)
}

// Remove deletes the database file at path without opening it first.
// Opening would create a missing file as a side effect; removing a database
// that does not exist must stay an error.
func Remove(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("drop database: %w", err)
	}
	// WAL side files are best-effort cleanup
	os.Remove(path + "-wal")
	os.Remove(path + "-shm")
	return os.Remove(path)
}
