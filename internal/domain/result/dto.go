package result

import (
	"fmt"
	"time"

	"github.com/jansou-app/jansou-backend-go/internal/pkg/validator"
)

const (
	maxMoneyInput = 10_000_000
	maxTipCount   = 999
	maxBatchGames = 50
)

// CreateGameResultRequest represents the request structure for recording
// a game. PlayedAt accepts an RFC 3339 timestamp or a plain date.
type CreateGameResultRequest struct {
	UserID      string   `json:"-"`
	GameType    GameType `json:"game_type"`
	PlayedAt    string   `json:"played_at"`
	Place       int      `json:"place"`
	BaseIncome  int64    `json:"base_income"`
	TipCount    int      `json:"tip_count"`
	OtherIncome int64    `json:"other_income"`
	StoreID     *string  `json:"store_id"`
}

func (r *CreateGameResultRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateGameType("game_type", string(r.GameType))...)

	// PlayedAt
	if _, err := ParsePlayedAt(r.PlayedAt); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "played_at",
			Message: "played_at must be an RFC 3339 timestamp or a YYYY-MM-DD date",
		})
	}

	// Place: strict per-type bound on entry.
	if r.GameType == GameTypeYonma || r.GameType == GameTypeSanma {
		errs = append(errs, validatePlace(r.GameType, r.Place)...)
	}

	errs = append(errs, validateMoney("base_income", r.BaseIncome, true)...)
	errs = append(errs, validateMoney("other_income", r.OtherIncome, false)...)

	if r.TipCount < -maxTipCount || r.TipCount > maxTipCount {
		errs = append(errs, validator.ValidationError{
			Field:   "tip_count",
			Message: fmt.Sprintf("tip_count must be between -%d and %d", maxTipCount, maxTipCount),
		})
	}

	if r.StoreID != nil && !validator.IsValidUUID(*r.StoreID) {
		errs = append(errs, validator.ValidationError{
			Field:   "store_id",
			Message: "store_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateGameResultRequest represents the request structure for editing a
// game. Nil fields are left unchanged. When the game type changes without
// a new place, the stored place is re-clamped to the new type's range.
type UpdateGameResultRequest struct {
	ID          string    `json:"-"`
	UserID      string    `json:"-"`
	GameType    *GameType `json:"game_type"`
	PlayedAt    *string   `json:"played_at"`
	Place       *int      `json:"place"`
	BaseIncome  *int64    `json:"base_income"`
	TipCount    *int      `json:"tip_count"`
	OtherIncome *int64    `json:"other_income"`
	StoreID     *string   `json:"store_id"`
}

// Validate checks field formats; the place-within-type bound runs in the
// service once the final game type is known.
func (r *UpdateGameResultRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.GameType != nil {
		errs = append(errs, validateGameType("game_type", string(*r.GameType))...)
	}

	if r.PlayedAt != nil {
		if _, err := ParsePlayedAt(*r.PlayedAt); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "played_at",
				Message: "played_at must be an RFC 3339 timestamp or a YYYY-MM-DD date",
			})
		}
	}

	if r.Place != nil && (*r.Place < 1 || *r.Place > GameTypeYonma.MaxPlace()) {
		errs = append(errs, validator.ValidationError{
			Field:   "place",
			Message: fmt.Sprintf("place must be between 1 and %d", GameTypeYonma.MaxPlace()),
		})
	}

	if r.BaseIncome != nil {
		errs = append(errs, validateMoney("base_income", *r.BaseIncome, true)...)
	}
	if r.OtherIncome != nil {
		errs = append(errs, validateMoney("other_income", *r.OtherIncome, false)...)
	}

	if r.TipCount != nil && (*r.TipCount < -maxTipCount || *r.TipCount > maxTipCount) {
		errs = append(errs, validator.ValidationError{
			Field:   "tip_count",
			Message: fmt.Sprintf("tip_count must be between -%d and %d", maxTipCount, maxTipCount),
		})
	}

	if r.StoreID != nil && *r.StoreID != "" && !validator.IsValidUUID(*r.StoreID) {
		errs = append(errs, validator.ValidationError{
			Field:   "store_id",
			Message: "store_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SimpleBatchRequest records one session's placements in bulk: one row
// per listed place with zero income, closed by a single immutable final
// record carrying the session's signed net income.
type SimpleBatchRequest struct {
	UserID    string   `json:"-"`
	StoreID   *string  `json:"store_id"`
	PlayedOn  string   `json:"played_on"`
	GameType  GameType `json:"game_type"`
	Places    []int    `json:"places"`
	NetIncome int64    `json:"net_income"`
}

func (r *SimpleBatchRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateGameType("game_type", string(r.GameType))...)

	// PlayedOn
	if validator.IsEmpty(r.PlayedOn) {
		errs = append(errs, validator.ValidationError{
			Field:   "played_on",
			Message: "played_on is required",
		})
	} else if _, ok := validator.IsValidDate(r.PlayedOn); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "played_on",
			Message: "played_on must be a valid YYYY-MM-DD date",
		})
	}

	// Places
	if len(r.Places) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "places",
			Message: "places must contain at least one entry",
		})
	}
	if len(r.Places) > maxBatchGames {
		errs = append(errs, validator.ValidationError{
			Field:   "places",
			Message: fmt.Sprintf("places must not exceed %d entries", maxBatchGames),
		})
	}
	if r.GameType == GameTypeYonma || r.GameType == GameTypeSanma {
		for i, place := range r.Places {
			if place < 1 || place > r.GameType.MaxPlace() {
				errs = append(errs, validator.ValidationError{
					Field:   fmt.Sprintf("places[%d]", i),
					Message: fmt.Sprintf("place must be between 1 and %d", r.GameType.MaxPlace()),
				})
			}
		}
	}

	errs = append(errs, validateMoney("net_income", r.NetIncome, true)...)

	if r.StoreID != nil && !validator.IsValidUUID(*r.StoreID) {
		errs = append(errs, validator.ValidationError{
			Field:   "store_id",
			Message: "store_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateGameType(field, value string) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if validator.IsEmpty(value) {
		errs = append(errs, validator.ValidationError{
			Field:   field,
			Message: field + " is required",
		})
	} else if !validator.IsInSlice(value, []string{string(GameTypeYonma), string(GameTypeSanma)}) {
		errs = append(errs, validator.ValidationError{
			Field:   field,
			Message: field + " must be YONMA or SANMA",
		})
	}
	return errs
}

func validatePlace(gameType GameType, place int) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if place < 1 || place > gameType.MaxPlace() {
		errs = append(errs, validator.ValidationError{
			Field:   "place",
			Message: fmt.Sprintf("place must be between 1 and %d for %s", gameType.MaxPlace(), gameType),
		})
	}
	return errs
}

func validateMoney(field string, v int64, signed bool) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if !signed && v < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   field,
			Message: field + " must not be negative",
		})
	}
	if v < -maxMoneyInput || v > maxMoneyInput {
		errs = append(errs, validator.ValidationError{
			Field:   field,
			Message: field + " is out of range",
		})
	}
	return errs
}

// ParsePlayedAt parses a played_at value, accepting RFC 3339 timestamps
// and plain dates (taken as midnight local time).
func ParsePlayedAt(s string) (time.Time, error) {
	if t, ok := validator.IsValidDateTime(s); ok {
		return t, nil
	}
	if t, ok := validator.IsValidDate(s); ok {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid played_at %q", s)
}

// GameResultResponse represents the response structure for a game result.
type GameResultResponse struct {
	ID            string   `json:"id"`
	UserID        string   `json:"user_id"`
	GameType      GameType `json:"game_type"`
	PlayedAt      string   `json:"played_at"`
	Place         int      `json:"place"`
	BaseIncome    int64    `json:"base_income"`
	TipCount      int      `json:"tip_count"`
	TipIncome     int64    `json:"tip_income"`
	OtherIncome   int64    `json:"other_income"`
	TotalIncome   int64    `json:"total_income"`
	StoreID       *string  `json:"store_id"`
	SimpleBatchID *string  `json:"simple_batch_id"`
	IsFinalRecord bool     `json:"is_final_record"`
}

// ListResultsResponse carries a month of games plus the running totals.
type ListResultsResponse struct {
	Results     []GameResultResponse `json:"results"`
	GameCount   int                  `json:"game_count"`
	TotalIncome int64                `json:"total_income"`
}

// ListResultsFilter selects one user's games for one month, optionally
// restricted to a game type.
type ListResultsFilter struct {
	UserID   string
	Month    string
	GameType *GameType
}

func (f *ListResultsFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required",
		})
	} else if _, ok := validator.IsValidMonth(f.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be formatted as YYYY-MM",
		})
	}

	if f.GameType != nil {
		errs = append(errs, validateGameType("game_type", string(*f.GameType))...)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToResponse maps a game result entity to its response DTO.
func ToResponse(g GameResult) GameResultResponse {
	return GameResultResponse{
		ID:            g.ID,
		UserID:        g.UserID,
		GameType:      g.GameType,
		PlayedAt:      g.PlayedAt.Format(time.RFC3339),
		Place:         g.Place,
		BaseIncome:    g.BaseIncome,
		TipCount:      g.TipCount,
		TipIncome:     g.TipIncome,
		OtherIncome:   g.OtherIncome,
		TotalIncome:   g.TotalIncome,
		StoreID:       g.StoreID,
		SimpleBatchID: g.SimpleBatchID,
		IsFinalRecord: g.IsFinalRecord,
	}
}
