// internal/stats/sqlite.go
//
// SQLiteStore keeps the record in the single-row `statistics` table created
// by the db package migrations. Save is an upsert of all seven columns.

package stats

import (
	"database/sql"
	"fmt"
	"time"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore { return &SQLiteStore{db: db} }

func (s *SQLiteStore) Load() (Counts, error) {
	var c Counts
	err := s.db.QueryRow(`SELECT won_1, won_2, won_3, won_4, won_5, won_6, lost
	                      FROM statistics WHERE id = 1`).
		Scan(&c[0], &c[1], &c[2], &c[3], &c[4], &c[5], &c[6])
	if err == sql.ErrNoRows {
		return Counts{}, nil
	}
	if err != nil {
		return Counts{}, fmt.Errorf("load statistics: %w", err)
	}
	return c, nil
}

func (s *SQLiteStore) Save(c Counts) error {
	_, err := s.db.Exec(`
        INSERT INTO statistics (id, won_1, won_2, won_3, won_4, won_5, won_6, lost, updated_at)
        VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            won_1 = excluded.won_1, won_2 = excluded.won_2, won_3 = excluded.won_3,
            won_4 = excluded.won_4, won_5 = excluded.won_5, won_6 = excluded.won_6,
            lost = excluded.lost, updated_at = excluded.updated_at`,
		c[0], c[1], c[2], c[3], c[4], c[5], c[6], time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save statistics: %w", err)
	}
	return nil
}
