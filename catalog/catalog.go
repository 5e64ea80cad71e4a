// Package catalog persists layers in PostgreSQL so a bridge session
// can save its work and a later session can load it back by name.
package catalog

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

type Catalog struct {
	db *sql.DB
}

// Open connects to PostgreSQL and creates the catalog tables if they
// do not exist yet.
func Open(dsn string) (*Catalog, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %v", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS tb_layers (
			name TEXT PRIMARY KEY,
			temporal BOOLEAN NOT NULL,
			metadata TEXT NOT NULL,
			schema TEXT NOT NULL,
			zoom INTEGER
		);
		CREATE TABLE IF NOT EXISTS tb_tiles (
			layer_name TEXT NOT NULL REFERENCES tb_layers(name) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			record BYTEA NOT NULL,
			PRIMARY KEY (layer_name, seq)
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create catalog tables: %v", err)
	}
	return &Catalog{db: db}, nil
}

func (c *Catalog) Close() error {
	return c.db.Close()
}

// LayerEntry is one saved layer: its encoded tile records plus the
// metadata needed to rebuild it.
type LayerEntry struct {
	Name     string
	Temporal bool
	Metadata string
	Schema   string
	Zoom     *int
	Records  [][]byte
}

// WriteLayer saves a layer under its name, replacing any previous
// layer of the same name.
func (c *Catalog) WriteLayer(entry *LayerEntry) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin catalog write: %v", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tb_layers WHERE name = $1`, entry.Name); err != nil {
		return fmt.Errorf("failed to replace layer %s: %v", entry.Name, err)
	}

	var zoom sql.NullInt64
	if entry.Zoom != nil {
		zoom = sql.NullInt64{Int64: int64(*entry.Zoom), Valid: true}
	}
	_, err = tx.Exec(`INSERT INTO tb_layers (name, temporal, metadata, schema, zoom) VALUES ($1, $2, $3, $4, $5)`,
		entry.Name, entry.Temporal, entry.Metadata, entry.Schema, zoom)
	if err != nil {
		return fmt.Errorf("failed to write layer %s: %v", entry.Name, err)
	}

	stmt, err := tx.Prepare(`INSERT INTO tb_tiles (layer_name, seq, record) VALUES ($1, $2, $3)`)
	if err != nil {
		return fmt.Errorf("failed to prepare tile insert: %v", err)
	}
	defer stmt.Close()
	for i, rec := range entry.Records {
		if _, err := stmt.Exec(entry.Name, i, rec); err != nil {
			return fmt.Errorf("failed to write tile %d of layer %s: %v", i, entry.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit layer %s: %v", entry.Name, err)
	}
	return nil
}

// ReadLayer loads a saved layer by name.
func (c *Catalog) ReadLayer(name string) (*LayerEntry, error) {
	entry := &LayerEntry{Name: name}
	var zoom sql.NullInt64
	err := c.db.QueryRow(`SELECT temporal, metadata, schema, zoom FROM tb_layers WHERE name = $1`, name).
		Scan(&entry.Temporal, &entry.Metadata, &entry.Schema, &zoom)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("layer %s not found in catalog", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read layer %s: %v", name, err)
	}
	if zoom.Valid {
		z := int(zoom.Int64)
		entry.Zoom = &z
	}

	rows, err := c.db.Query(`SELECT record FROM tb_tiles WHERE layer_name = $1 ORDER BY seq`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read tiles of layer %s: %v", name, err)
	}
	defer rows.Close()
	for rows.Next() {
		var rec []byte
		if err := rows.Scan(&rec); err != nil {
			return nil, fmt.Errorf("failed to read tiles of layer %s: %v", name, err)
		}
		entry.Records = append(entry.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tiles of layer %s: %v", name, err)
	}
	return entry, nil
}

// ListLayers returns the names of all saved layers.
func (c *Catalog) ListLayers() ([]string, error) {
	rows, err := c.db.Query(`SELECT name FROM tb_layers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog layers: %v", err)
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
