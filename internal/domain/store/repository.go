package store

import "context"

type StoreRepository interface {
	Create(ctx context.Context, newStore Store) (Store, error)
	GetByID(ctx context.Context, id string) (Store, error)
	List(ctx context.Context) ([]Store, error)
	Update(ctx context.Context, req UpdateStoreRequest) error
}
