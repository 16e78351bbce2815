package result

import "time"

// GameType distinguishes four-player and three-player mahjong. Fees,
// tip units and the valid place range differ per type.
type GameType string

const (
	GameTypeYonma GameType = "YONMA"
	GameTypeSanma GameType = "SANMA"
)

// MaxPlace returns the lowest finishing position for the game type.
func (g GameType) MaxPlace() int {
	if g == GameTypeSanma {
		return 3
	}
	return 4
}

// GameResult is one recorded game. TipIncome and TotalIncome are derived
// from the player's settings at write time and stored alongside the
// inputs. Rows created by a simple batch share a SimpleBatchID; the
// closing row of a batch has IsFinalRecord set and refuses mutation.
type GameResult struct {
	ID            string
	UserID        string
	GameType      GameType
	PlayedAt      time.Time
	Place         int
	BaseIncome    int64
	TipCount      int
	TipIncome     int64
	OtherIncome   int64
	TotalIncome   int64
	StoreID       *string
	SimpleBatchID *string
	IsFinalRecord bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
