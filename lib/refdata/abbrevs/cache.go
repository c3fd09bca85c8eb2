package abbrevs

import (
	"context"
	"database/sql"
	_ "embed"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var Schema string

// Load reads every cached span. An empty result just means the cache
// has not been populated yet.
func Load(ctx context.Context, db *sql.DB) ([]Span, error) {
	rows, err := db.QueryContext(
		ctx,
		`SELECT team, franchise, first_year, last_year, majors, alias
		 FROM team_span`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var spans []Span
	for rows.Next() {
		var s Span
		var majors int
		err := rows.Scan(&s.Team, &s.Franchise, &s.First, &s.Last, &majors, &s.Alias)
		if err != nil {
			return nil, err
		}
		s.Majors = majors != 0
		spans = append(spans, s)
	}
	return spans, rows.Err()
}

// Save replaces the cached spans with the given set.
func Save(ctx context.Context, db *sql.DB, spans []Span) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM team_span`)
	if err != nil {
		return err
	}
	for _, s := range spans {
		majors := 0
		if s.Majors {
			majors = 1
		}
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO team_span (team, franchise, first_year, last_year, majors, alias)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			s.Team, s.Franchise, s.First, s.Last, majors, s.Alias,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}
