package nohitters

import (
	"context"
	"database/sql"
	_ "embed"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var Schema string

// Load reads every cached record in insertion order.
func Load(ctx context.Context, db *sql.DB) ([]Record, error) {
	rows, err := db.QueryContext(
		ctx,
		`SELECT id, game_id, year, team, game_type, perfect
		 FROM no_hitter ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	var ids []int64
	for rows.Next() {
		var id int64
		var rec Record
		var perfect int
		err := rows.Scan(&id, &rec.GameID, &rec.Year, &rec.Team, &rec.GameType, &perfect)
		if err != nil {
			return nil, err
		}
		rec.Perfect = perfect != 0
		records = append(records, rec)
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, id := range ids {
		pitchers, err := loadPitchers(ctx, db, id)
		if err != nil {
			return nil, err
		}
		records[i].Pitchers = pitchers
	}
	return records, nil
}

func loadPitchers(ctx context.Context, db *sql.DB, noHitterID int64) ([]string, error) {
	rows, err := db.QueryContext(
		ctx,
		`SELECT player_id FROM no_hitter_pitcher
		 WHERE no_hitter_id = ? ORDER BY seq`,
		noHitterID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pitchers []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		pitchers = append(pitchers, p)
	}
	return pitchers, rows.Err()
}

// Save replaces the cached records with the given set.
func Save(ctx context.Context, db *sql.DB, records []Record) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM no_hitter_pitcher`)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `DELETE FROM no_hitter`)
	if err != nil {
		return err
	}

	for _, rec := range records {
		perfect := 0
		if rec.Perfect {
			perfect = 1
		}
		res, err := tx.ExecContext(
			ctx,
			`INSERT INTO no_hitter (game_id, year, team, game_type, perfect)
			 VALUES (?, ?, ?, ?, ?)`,
			rec.GameID, rec.Year, rec.Team, rec.GameType, perfect,
		)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		for seq, p := range rec.Pitchers {
			_, err := tx.ExecContext(
				ctx,
				`INSERT INTO no_hitter_pitcher (no_hitter_id, seq, player_id)
				 VALUES (?, ?, ?)`,
				id, seq, p,
			)
			if err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}
