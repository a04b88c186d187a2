package repository

import (
	"context"
	"database/sql"

	"github.com/reelstream/reelstream-go/internal/model"
)

// ReelRepository handles reel metadata persistence operations.
// Reels are insert-only: no update or delete is exposed.
type ReelRepository struct {
	db *sql.DB
}

// NewReelRepository creates a new ReelRepository.
func NewReelRepository(db *sql.DB) *ReelRepository {
	return &ReelRepository{db: db}
}

// Create inserts a new reel record.
func (r *ReelRepository) Create(ctx context.Context, reel *model.Reel) error {
	query := `INSERT INTO reels (id, title, filename, created_at) VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, reel.ID, reel.Title, reel.Filename, reel.CreatedAt)
	return err
}

// List retrieves all reels, newest first. The id tiebreak keeps the order
// stable for reels created within the same millisecond.
func (r *ReelRepository) List(ctx context.Context) ([]model.Reel, error) {
	query := `SELECT id, title, filename, created_at FROM reels ORDER BY created_at DESC, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reels []model.Reel
	for rows.Next() {
		var reel model.Reel
		if err := rows.Scan(&reel.ID, &reel.Title, &reel.Filename, &reel.CreatedAt); err != nil {
			return nil, err
		}
		reels = append(reels, reel)
	}

	return reels, rows.Err()
}
