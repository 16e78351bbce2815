package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jansou-app/jansou-backend-go/internal/domain/settings"
	"github.com/jansou-app/jansou-backend-go/internal/pkg/database"
)

type gameSettingsRepositoryImpl struct {
	db *database.DB
}

func NewGameSettingsRepository(db *database.DB) settings.GameSettingsRepository {
	return &gameSettingsRepositoryImpl{db: db}
}

const gameSettingsColumns = `
	id, user_id, yonma_game_fee, sanma_game_fee, sanma_game_fee_back,
	yonma_tip_unit, sanma_tip_unit, wage_type, hourly_wage, fixed_salary,
	base_min_wage, night_rate_multiplier, night_hourly_wage, income_tax_rate,
	transport_per_shift, night_start_time, night_end_time, created_at, updated_at
`

func scanGameSettings(row pgx.Row) (settings.GameSettings, error) {
	var s settings.GameSettings
	err := row.Scan(
		&s.ID, &s.UserID, &s.YonmaGameFee, &s.SanmaGameFee, &s.SanmaGameFeeBack,
		&s.YonmaTipUnit, &s.SanmaTipUnit, &s.WageType, &s.HourlyWage, &s.FixedSalary,
		&s.BaseMinWage, &s.NightRateMultiplier, &s.NightHourlyWage, &s.IncomeTaxRate,
		&s.TransportPerShift, &s.NightStartTime, &s.NightEndTime, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// GetByUserID implements settings.GameSettingsRepository.
func (r *gameSettingsRepositoryImpl) GetByUserID(ctx context.Context, userID string) (settings.GameSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + gameSettingsColumns + ` FROM game_settings WHERE user_id = $1`

	found, err := scanGameSettings(q.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return settings.GameSettings{}, settings.ErrSettingsNotFound
		}
		return settings.GameSettings{}, fmt.Errorf("failed to get game settings: %w", err)
	}

	return found, nil
}

// Create implements settings.GameSettingsRepository.
func (r *gameSettingsRepositoryImpl) Create(ctx context.Context, s settings.GameSettings) (settings.GameSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO game_settings (
			user_id, yonma_game_fee, sanma_game_fee, sanma_game_fee_back,
			yonma_tip_unit, sanma_tip_unit, wage_type, hourly_wage, fixed_salary,
			base_min_wage, night_rate_multiplier, night_hourly_wage, income_tax_rate,
			transport_per_shift, night_start_time, night_end_time
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING ` + gameSettingsColumns

	created, err := scanGameSettings(q.QueryRow(ctx, query,
		s.UserID, s.YonmaGameFee, s.SanmaGameFee, s.SanmaGameFeeBack,
		s.YonmaTipUnit, s.SanmaTipUnit, s.WageType, s.HourlyWage, s.FixedSalary,
		s.BaseMinWage, s.NightRateMultiplier, s.NightHourlyWage, s.IncomeTaxRate,
		s.TransportPerShift, s.NightStartTime, s.NightEndTime,
	))
	if err != nil {
		return settings.GameSettings{}, fmt.Errorf("failed to create game settings: %w", err)
	}

	return created, nil
}

// Update implements settings.GameSettingsRepository. The caller sends the
// fully merged row.
func (r *gameSettingsRepositoryImpl) Update(ctx context.Context, s settings.GameSettings) (settings.GameSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE game_settings
		SET yonma_game_fee = $1, sanma_game_fee = $2, sanma_game_fee_back = $3,
			yonma_tip_unit = $4, sanma_tip_unit = $5, wage_type = $6, hourly_wage = $7,
			fixed_salary = $8, base_min_wage = $9, night_rate_multiplier = $10,
			night_hourly_wage = $11, income_tax_rate = $12, transport_per_shift = $13,
			night_start_time = $14, night_end_time = $15, updated_at = NOW()
		WHERE user_id = $16
		RETURNING ` + gameSettingsColumns

	updated, err := scanGameSettings(q.QueryRow(ctx, query,
		s.YonmaGameFee, s.SanmaGameFee, s.SanmaGameFeeBack,
		s.YonmaTipUnit, s.SanmaTipUnit, s.WageType, s.HourlyWage,
		s.FixedSalary, s.BaseMinWage, s.NightRateMultiplier,
		s.NightHourlyWage, s.IncomeTaxRate, s.TransportPerShift,
		s.NightStartTime, s.NightEndTime, s.UserID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return settings.GameSettings{}, settings.ErrSettingsNotFound
		}
		return settings.GameSettings{}, fmt.Errorf("failed to update game settings: %w", err)
	}

	return updated, nil
}
