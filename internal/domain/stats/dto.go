package stats

import (
	"github.com/jansou-app/jansou-backend-go/internal/domain/result"
	"github.com/jansou-app/jansou-backend-go/internal/pkg/validator"
)

// RankingsFilter selects a month's income ranking, optionally restricted
// to one game type.
type RankingsFilter struct {
	Month    string
	GameType *result.GameType
}

func (f *RankingsFilter) Validate() error {
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

	if f.GameType != nil && !validator.IsInSlice(string(*f.GameType), []string{string(result.GameTypeYonma), string(result.GameTypeSanma)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "game_type",
			Message: "game_type must be YONMA or SANMA",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RankingEntryResponse is one row of the monthly ranking.
type RankingEntryResponse struct {
	Rank        int    `json:"rank"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	GameCount   int    `json:"game_count"`
	TotalIncome int64  `json:"total_income"`
}

// RankingResponse is the ordered monthly income ranking. Ties share a
// rank and the following rank skips accordingly.
type RankingResponse struct {
	Month    string                 `json:"month"`
	GameType *result.GameType       `json:"game_type"`
	Entries  []RankingEntryResponse `json:"entries"`
}

// UserStatsFilter selects one user's monthly statistics.
type UserStatsFilter struct {
	UserID string
	Month  string
}

func (f *UserStatsFilter) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// GameTypeStatsResponse is one game type's month for a user. PlaceCounts
// is indexed by place starting at first place.
type GameTypeStatsResponse struct {
	GameType     result.GameType `json:"game_type"`
	GamesPlayed  int             `json:"games_played"`
	PlaceCounts  []int           `json:"place_counts"`
	AveragePlace float64         `json:"average_place"`
	TopRate      float64         `json:"top_rate"`
	TotalIncome  int64           `json:"total_income"`
	TipIncome    int64           `json:"tip_income"`
}

// UserStatsResponse is a user's full monthly breakdown.
type UserStatsResponse struct {
	UserID string                  `json:"user_id"`
	Month  string                  `json:"month"`
	Types  []GameTypeStatsResponse `json:"types"`
}
