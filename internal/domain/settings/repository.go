package settings

import "context"

type GameSettingsRepository interface {
	GetByUserID(ctx context.Context, userID string) (GameSettings, error)
	Create(ctx context.Context, s GameSettings) (GameSettings, error)
	Update(ctx context.Context, s GameSettings) (GameSettings, error)
}

type SpecialWageRepository interface {
	Create(ctx context.Context, w SpecialHourlyWage) (SpecialHourlyWage, error)
	GetByID(ctx context.Context, id string) (SpecialHourlyWage, error)
	List(ctx context.Context) ([]SpecialHourlyWage, error)
	Update(ctx context.Context, w SpecialHourlyWage) (SpecialHourlyWage, error)
	Delete(ctx context.Context, id string) error
}
