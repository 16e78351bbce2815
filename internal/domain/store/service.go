package store

import "context"

type StoreService interface {
	Create(ctx context.Context, req CreateStoreRequest) (StoreResponse, error)
	GetByID(ctx context.Context, id string) (StoreResponse, error)
	List(ctx context.Context) ([]StoreResponse, error)
	Update(ctx context.Context, req UpdateStoreRequest) (StoreResponse, error)
}
