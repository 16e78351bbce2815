package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jansou-app/jansou-backend-go/internal/domain/settings"
	"github.com/jansou-app/jansou-backend-go/internal/domain/user"
)

type gameSettingsServiceImpl struct {
	settingsRepo settings.GameSettingsRepository
	userRepo     user.UserRepository
}

func NewGameSettingsService(settingsRepo settings.GameSettingsRepository, userRepo user.UserRepository) settings.GameSettingsService {
	return &gameSettingsServiceImpl{
		settingsRepo: settingsRepo,
		userRepo:     userRepo,
	}
}

// Get implements settings.GameSettingsService. The first read creates
// the default row.
func (s *gameSettingsServiceImpl) Get(ctx context.Context, userID string) (settings.GameSettingsResponse, error) {
	current, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return settings.GameSettingsResponse{}, err
	}

	return settings.ToResponse(current), nil
}

// Update implements settings.GameSettingsService.
func (s *gameSettingsServiceImpl) Update(ctx context.Context, req settings.UpdateGameSettingsRequest) (settings.GameSettingsResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return settings.GameSettingsResponse{}, err
	}

	current, err := s.getOrCreate(ctx, req.UserID)
	if err != nil {
		return settings.GameSettingsResponse{}, err
	}

	updated, err := s.settingsRepo.Update(ctx, req.Apply(current))
	if err != nil {
		return settings.GameSettingsResponse{}, fmt.Errorf("failed to update game settings: %w", err)
	}

	return settings.ToResponse(updated), nil
}

func (s *gameSettingsServiceImpl) getOrCreate(ctx context.Context, userID string) (settings.GameSettings, error) {
	current, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err == nil {
		return current, nil
	}
	if !errors.Is(err, settings.ErrSettingsNotFound) {
		return settings.GameSettings{}, fmt.Errorf("failed to get game settings: %w", err)
	}

	// Surface a proper not-found for unknown users instead of tripping
	// the foreign key on insert
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return settings.GameSettings{}, err
	}

	created, err := s.settingsRepo.Create(ctx, settings.DefaultGameSettings(userID))
	if err != nil {
		// Another request created the row first; read it back
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return s.settingsRepo.GetByUserID(ctx, userID)
		}
		return settings.GameSettings{}, fmt.Errorf("failed to create default game settings: %w", err)
	}

	return created, nil
}

// ==================== SPECIAL HOURLY WAGES ====================

type specialWageServiceImpl struct {
	wageRepo settings.SpecialWageRepository
}

func NewSpecialWageService(wageRepo settings.SpecialWageRepository) settings.SpecialWageService {
	return &specialWageServiceImpl{wageRepo: wageRepo}
}

// Create implements settings.SpecialWageService.
func (s *specialWageServiceImpl) Create(ctx context.Context, req settings.CreateSpecialWageRequest) (settings.SpecialWageResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return settings.SpecialWageResponse{}, err
	}

	entity := settings.SpecialHourlyWage{
		Label:      req.Label,
		HourlyWage: req.HourlyWage,
		AppliesTo:  req.AppliesTo,
	}

	created, err := s.wageRepo.Create(ctx, entity)
	if err != nil {
		// Check for duplicate label (unique constraint violation)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return settings.SpecialWageResponse{}, settings.ErrSpecialWageLabelExists
		}
		return settings.SpecialWageResponse{}, fmt.Errorf("failed to create special wage: %w", err)
	}

	return settings.ToSpecialWageResponse(created), nil
}

// List implements settings.SpecialWageService.
func (s *specialWageServiceImpl) List(ctx context.Context) ([]settings.SpecialWageResponse, error) {
	wages, err := s.wageRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list special wages: %w", err)
	}

	responses := make([]settings.SpecialWageResponse, 0, len(wages))
	for _, w := range wages {
		responses = append(responses, settings.ToSpecialWageResponse(w))
	}

	return responses, nil
}

// Update implements settings.SpecialWageService.
func (s *specialWageServiceImpl) Update(ctx context.Context, req settings.UpdateSpecialWageRequest) (settings.SpecialWageResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return settings.SpecialWageResponse{}, err
	}

	current, err := s.wageRepo.GetByID(ctx, req.ID)
	if err != nil {
		return settings.SpecialWageResponse{}, err
	}

	if req.Label != nil {
		current.Label = *req.Label
	}
	if req.HourlyWage != nil {
		current.HourlyWage = *req.HourlyWage
	}
	if req.AppliesTo != nil {
		current.AppliesTo = *req.AppliesTo
	}

	updated, err := s.wageRepo.Update(ctx, current)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return settings.SpecialWageResponse{}, settings.ErrSpecialWageLabelExists
		}
		return settings.SpecialWageResponse{}, fmt.Errorf("failed to update special wage: %w", err)
	}

	return settings.ToSpecialWageResponse(updated), nil
}

// Delete implements settings.SpecialWageService. Shifts that referenced
// the wage simply lose their allowance; payroll keeps working.
func (s *specialWageServiceImpl) Delete(ctx context.Context, id string) error {
	return s.wageRepo.Delete(ctx, id)
}
