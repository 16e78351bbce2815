package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jansou-app/jansou-backend-go/internal/domain/store"
)

type storeServiceImpl struct {
	storeRepo store.StoreRepository
}

func NewStoreService(storeRepo store.StoreRepository) store.StoreService {
	return &storeServiceImpl{storeRepo: storeRepo}
}

// Create implements store.StoreService.
func (s *storeServiceImpl) Create(ctx context.Context, req store.CreateStoreRequest) (store.StoreResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return store.StoreResponse{}, err
	}

	entity := store.Store{
		Name:           req.Name,
		EarlyOpenTime:  req.EarlyOpenTime,
		EarlyCloseTime: req.EarlyCloseTime,
		LateOpenTime:   req.LateOpenTime,
		LateCloseTime:  req.LateCloseTime,
	}

	created, err := s.storeRepo.Create(ctx, entity)
	if err != nil {
		// Check for duplicate name (unique constraint violation)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return store.StoreResponse{}, store.ErrStoreNameExists
		}
		return store.StoreResponse{}, fmt.Errorf("failed to create store: %w", err)
	}

	return store.ToResponse(created), nil
}

// GetByID implements store.StoreService.
func (s *storeServiceImpl) GetByID(ctx context.Context, id string) (store.StoreResponse, error) {
	found, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return store.StoreResponse{}, err
	}

	return store.ToResponse(found), nil
}

// List implements store.StoreService.
func (s *storeServiceImpl) List(ctx context.Context) ([]store.StoreResponse, error) {
	stores, err := s.storeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}

	responses := make([]store.StoreResponse, 0, len(stores))
	for _, st := range stores {
		responses = append(responses, store.ToResponse(st))
	}

	return responses, nil
}

// Update implements store.StoreService.
func (s *storeServiceImpl) Update(ctx context.Context, req store.UpdateStoreRequest) (store.StoreResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return store.StoreResponse{}, err
	}

	if err := s.storeRepo.Update(ctx, req); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return store.StoreResponse{}, store.ErrStoreNameExists
		}
		return store.StoreResponse{}, err
	}

	updated, err := s.storeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return store.StoreResponse{}, err
	}

	return store.ToResponse(updated), nil
}
