package settings

import "context"

type GameSettingsService interface {
	// Get returns the user's settings, creating the default row on first
	// read.
	Get(ctx context.Context, userID string) (GameSettingsResponse, error)
	Update(ctx context.Context, req UpdateGameSettingsRequest) (GameSettingsResponse, error)
}

type SpecialWageService interface {
	Create(ctx context.Context, req CreateSpecialWageRequest) (SpecialWageResponse, error)
	List(ctx context.Context) ([]SpecialWageResponse, error)
	Update(ctx context.Context, req UpdateSpecialWageRequest) (SpecialWageResponse, error)
	Delete(ctx context.Context, id string) error
}
