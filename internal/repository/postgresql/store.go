package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jansou-app/jansou-backend-go/internal/domain/store"
	"github.com/jansou-app/jansou-backend-go/internal/pkg/database"
)

type storeRepositoryImpl struct {
	db *database.DB
}

func NewStoreRepository(db *database.DB) store.StoreRepository {
	return &storeRepositoryImpl{db: db}
}

// Create implements store.StoreRepository.
func (r *storeRepositoryImpl) Create(ctx context.Context, newStore store.Store) (store.Store, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO stores (name, early_open_time, early_close_time, late_open_time, late_close_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, early_open_time, early_close_time, late_open_time, late_close_time, created_at, updated_at
	`

	var created store.Store
	err := q.QueryRow(ctx, query,
		newStore.Name,
		newStore.EarlyOpenTime,
		newStore.EarlyCloseTime,
		newStore.LateOpenTime,
		newStore.LateCloseTime,
	).Scan(
		&created.ID,
		&created.Name,
		&created.EarlyOpenTime,
		&created.EarlyCloseTime,
		&created.LateOpenTime,
		&created.LateCloseTime,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return store.Store{}, err
	}

	return created, nil
}

// GetByID implements store.StoreRepository.
func (r *storeRepositoryImpl) GetByID(ctx context.Context, id string) (store.Store, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, early_open_time, early_close_time, late_open_time, late_close_time, created_at, updated_at
		FROM stores
		WHERE id = $1
	`

	var found store.Store
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.Name,
		&found.EarlyOpenTime,
		&found.EarlyCloseTime,
		&found.LateOpenTime,
		&found.LateCloseTime,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return store.Store{}, store.ErrStoreNotFound
		}
		return store.Store{}, fmt.Errorf("failed to get store: %w", err)
	}

	return found, nil
}

// List implements store.StoreRepository.
func (r *storeRepositoryImpl) List(ctx context.Context) ([]store.Store, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, early_open_time, early_close_time, late_open_time, late_close_time, created_at, updated_at
		FROM stores
		ORDER BY name, id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	defer rows.Close()

	var stores []store.Store
	for rows.Next() {
		var s store.Store
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.EarlyOpenTime,
			&s.EarlyCloseTime,
			&s.LateOpenTime,
			&s.LateCloseTime,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		stores = append(stores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stores: %w", err)
	}

	return stores, nil
}

// Update implements store.StoreRepository.
func (r *storeRepositoryImpl) Update(ctx context.Context, req store.UpdateStoreRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.EarlyOpenTime != nil {
		updates["early_open_time"] = *req.EarlyOpenTime
	}
	if req.EarlyCloseTime != nil {
		updates["early_close_time"] = *req.EarlyCloseTime
	}
	if req.LateOpenTime != nil {
		updates["late_open_time"] = *req.LateOpenTime
	}
	if req.LateCloseTime != nil {
		updates["late_close_time"] = *req.LateCloseTime
	}

	if len(updates) == 0 {
		return nil
	}

	setClauses := make([]string, 0, len(updates)+1)
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}
	setClauses = append(setClauses, "updated_at = NOW()")

	sql := fmt.Sprintf("UPDATE stores SET %s WHERE id = $%d RETURNING id", strings.Join(setClauses, ", "), i)
	args = append(args, req.ID)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return store.ErrStoreNotFound
		}
		return fmt.Errorf("failed to update store: %w", err)
	}

	return nil
}
