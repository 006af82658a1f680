package comments

import (
	"context"
	"fmt"
	"time"

	"github.com/FacuGhub/telegram-bot/internal/dbx"
)

// PostgresRepository implements Repository over a DBTX backed by PostgreSQL
// (pgx stdlib driver).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository returns a PostgresRepository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(ctx context.Context, userID int64, text string) (int64, error) {
	query :=
		`INSERT INTO comments (created_at, user_id, text)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	var id int64
	err := r.db.QueryRowContext(ctx, query, time.Now().UTC(), userID, text).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

func (r *PostgresRepository) ListRecent(ctx context.Context, userID int64, limit int) ([]Comment, error) {
	query :=
		`SELECT id, created_at, user_id, text FROM comments
		 WHERE user_id = $1
		 ORDER BY id DESC
		 LIMIT $2
		 `

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []Comment{}
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.ID, &c.CreatedAt, &c.UserID, &c.Text); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
