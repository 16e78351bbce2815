package result

import (
	"testing"

	"github.com/jansou-app/jansou-backend-go/internal/domain/settings"
)

func testSettings() settings.GameSettings {
	s := settings.DefaultGameSettings("user-1")
	s.YonmaGameFee = 500
	s.SanmaGameFee = 400
	s.SanmaGameFeeBack = 200
	s.YonmaTipUnit = 500
	s.SanmaTipUnit = 300
	return s
}

func TestComputeIncome(t *testing.T) {
	tests := []struct {
		name      string
		gameType  GameType
		place     int
		base      int64
		tipCount  int
		other     int64
		wantTip   int64
		wantTotal int64
	}{
		{
			name:     "yonma first place pays the game fee",
			gameType: GameTypeYonma, place: 1, base: 3000, tipCount: 5, other: 0,
			wantTip: 2500, wantTotal: 5000,
		},
		{
			name:     "yonma non-first place keeps the fee",
			gameType: GameTypeYonma, place: 2, base: 3000, tipCount: 5, other: 0,
			wantTip: 2500, wantTotal: 5500,
		},
		{
			name:     "sanma second place still gets the fee back",
			gameType: GameTypeSanma, place: 2, base: -1000, tipCount: 0, other: 1500,
			wantTip: 0, wantTotal: 700,
		},
		{
			name:     "sanma first place pays fee and gets fee back",
			gameType: GameTypeSanma, place: 1, base: 2000, tipCount: 2, other: 0,
			wantTip: 600, wantTotal: 2400,
		},
		{
			name:     "negative tips subtract",
			gameType: GameTypeYonma, place: 3, base: 0, tipCount: -3, other: 0,
			wantTip: -1500, wantTotal: -1500,
		},
		{
			name:     "losing game stays negative",
			gameType: GameTypeYonma, place: 4, base: -8000, tipCount: 0, other: 0,
			wantTip: 0, wantTotal: -8000,
		},
	}

	s := testSettings()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tip, total := ComputeIncome(s, tt.gameType, tt.place, tt.base, tt.tipCount, tt.other)
			if tip != tt.wantTip {
				t.Errorf("tip = %d, want %d", tip, tt.wantTip)
			}
			if total != tt.wantTotal {
				t.Errorf("total = %d, want %d", total, tt.wantTotal)
			}
		})
	}
}

func TestComputeIncomeIdempotent(t *testing.T) {
	s := testSettings()

	tip1, total1 := ComputeIncome(s, GameTypeYonma, 1, 3000, 5, 0)
	tip2, total2 := ComputeIncome(s, GameTypeYonma, 1, 3000, 5, 0)

	if tip1 != tip2 || total1 != total2 {
		t.Errorf("recompute changed outputs: (%d,%d) then (%d,%d)", tip1, total1, tip2, total2)
	}
}

func TestClampPlace(t *testing.T) {
	tests := []struct {
		gameType GameType
		place    int
		want     int
	}{
		{GameTypeSanma, 4, 3},
		{GameTypeSanma, 3, 3},
		{GameTypeSanma, 1, 1},
		{GameTypeYonma, 4, 4},
		{GameTypeYonma, 2, 2},
	}

	for _, tt := range tests {
		if got := ClampPlace(tt.gameType, tt.place); got != tt.want {
			t.Errorf("ClampPlace(%s, %d) = %d, want %d", tt.gameType, tt.place, got, tt.want)
		}
	}

	// Clamping twice gives the same answer as clamping once.
	once := ClampPlace(GameTypeSanma, 4)
	if twice := ClampPlace(GameTypeSanma, once); twice != once {
		t.Errorf("ClampPlace not idempotent: %d then %d", once, twice)
	}
}

func TestMaxPlace(t *testing.T) {
	if GameTypeYonma.MaxPlace() != 4 {
		t.Errorf("yonma max place = %d, want 4", GameTypeYonma.MaxPlace())
	}
	if GameTypeSanma.MaxPlace() != 3 {
		t.Errorf("sanma max place = %d, want 3", GameTypeSanma.MaxPlace())
	}
}
