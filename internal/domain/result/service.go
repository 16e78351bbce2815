package result

import "context"

type GameResultService interface {
	Create(ctx context.Context, req CreateGameResultRequest) (GameResultResponse, error)
	List(ctx context.Context, filter ListResultsFilter) (ListResultsResponse, error)
	Update(ctx context.Context, req UpdateGameResultRequest) (GameResultResponse, error)
	Delete(ctx context.Context, userID, resultID string) error
	// CreateSimpleBatch writes the placement rows and the closing final
	// record in one transaction.
	CreateSimpleBatch(ctx context.Context, req SimpleBatchRequest) (ListResultsResponse, error)
}
