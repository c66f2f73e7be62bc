package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Querier is the subset of *pgxpool.Pool used to read the corpus.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const selectFortunesQuery = `
		SELECT text
		FROM fortunes
		ORDER BY position ASC, id ASC`

// LoadFortunes reads the whole fortunes table once, in display order.
func LoadFortunes(ctx context.Context, db Querier) ([]string, error) {
	rows, err := db.Query(ctx, selectFortunesQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get fortunes: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	var fortunes []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("%w: failed to scan fortune: %v", ErrDatabaseError, err)
		}
		fortunes = append(fortunes, text)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate fortunes: %v", ErrDatabaseError, err)
	}

	return fortunes, nil
}
