package comments

import (
	"context"
	"fmt"
	"time"

	"github.com/FacuGhub/telegram-bot/internal/dbx"
)

// SQLiteRepository implements Repository over a DBTX (either *sql.DB or
// *sql.Tx). Timestamps are stored as RFC 3339 text.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Add(ctx context.Context, userID int64, text string) (int64, error) {
	query := `INSERT INTO comments (created_at, user_id, text) VALUES (?, ?, ?)`

	now := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := r.db.ExecContext(ctx, query, now, userID, text)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) ListRecent(ctx context.Context, userID int64, limit int) ([]Comment, error) {
	query := `SELECT id, created_at, user_id, text FROM comments
		 WHERE user_id = ?
		 ORDER BY id DESC
		 LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []Comment{}
	for rows.Next() {
		var c Comment
		var createdAt string
		if err := rows.Scan(&c.ID, &createdAt, &c.UserID, &c.Text); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		c.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("invalid created_at for comment %d: %w", c.ID, err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
