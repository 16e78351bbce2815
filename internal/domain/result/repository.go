package result

import (
	"context"
	"time"
)

type GameResultRepository interface {
	Create(ctx context.Context, g GameResult) (GameResult, error)
	GetByID(ctx context.Context, id string) (GameResult, error)
	// ListByUserRange returns the user's games with played_at in
	// [from, to), newest first, optionally restricted to one game type.
	ListByUserRange(ctx context.Context, userID string, from, to time.Time, gameType *GameType) ([]GameResult, error)
	// CreateBatch inserts every row; callers wrap it in a transaction.
	CreateBatch(ctx context.Context, results []GameResult) ([]GameResult, error)
	Update(ctx context.Context, g GameResult) (GameResult, error)
	Delete(ctx context.Context, id string) error
}
