package result

import (
	"github.com/jansou-app/jansou-backend-go/internal/domain/settings"
)

// TipUnit returns the per-tip yen value configured for the game type.
func TipUnit(s settings.GameSettings, gameType GameType) int {
	if gameType == GameTypeSanma {
		return s.SanmaTipUnit
	}
	return s.YonmaTipUnit
}

// ComputeIncome derives the tip and total income of one game from the
// player's settings. Fees apply on stored inputs only, so recomputing is
// idempotent: a first-place YONMA game deducts the yonma fee, a
// first-place SANMA game deducts the sanma fee, and SANMA games always
// add the fee-back regardless of place. Tip counts may be negative.
func ComputeIncome(s settings.GameSettings, gameType GameType, place int, baseIncome int64, tipCount int, otherIncome int64) (tipIncome, totalIncome int64) {
	tipIncome = int64(tipCount) * int64(TipUnit(s, gameType))
	totalIncome = baseIncome + tipIncome + otherIncome

	switch gameType {
	case GameTypeYonma:
		if place == 1 {
			totalIncome -= int64(s.YonmaGameFee)
		}
	case GameTypeSanma:
		if place == 1 {
			totalIncome -= int64(s.SanmaGameFee)
		}
		totalIncome += int64(s.SanmaGameFeeBack)
	}

	return tipIncome, totalIncome
}

// ClampPlace caps a place at the maximum valid for the game type, for
// records whose type changes after entry (a YONMA 4th becomes a SANMA
// 3rd). Places already in range pass through unchanged.
func ClampPlace(gameType GameType, place int) int {
	if maxPlace := gameType.MaxPlace(); place > maxPlace {
		return maxPlace
	}
	return place
}
