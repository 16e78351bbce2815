package stats

import (
	"context"

	"github.com/jansou-app/jansou-backend-go/internal/domain/result"
	"github.com/jansou-app/jansou-backend-go/internal/domain/stats"
	"github.com/jansou-app/jansou-backend-go/internal/domain/user"
	"github.com/jansou-app/jansou-backend-go/internal/pkg/timeutil"
)

type statsServiceImpl struct {
	statsRepo stats.StatsRepository
	userRepo  user.UserRepository
}

func NewStatsService(statsRepo stats.StatsRepository, userRepo user.UserRepository) stats.StatsService {
	return &statsServiceImpl{
		statsRepo: statsRepo,
		userRepo:  userRepo,
	}
}

// Rankings implements stats.StatsService. Entries arrive ordered by
// income; competition ranking assigns tied incomes the same rank and the
// next entry skips past them.
func (s *statsServiceImpl) Rankings(ctx context.Context, filter stats.RankingsFilter) (stats.RankingResponse, error) {
	// Validate request
	if err := filter.Validate(); err != nil {
		return stats.RankingResponse{}, err
	}

	from, to, err := timeutil.MonthBounds(filter.Month)
	if err != nil {
		return stats.RankingResponse{}, err
	}

	entries, err := s.statsRepo.MonthlyRanking(ctx, from, to, filter.GameType)
	if err != nil {
		return stats.RankingResponse{}, err
	}

	response := stats.RankingResponse{
		Month:    filter.Month,
		GameType: filter.GameType,
		Entries:  make([]stats.RankingEntryResponse, 0, len(entries)),
	}
	rank := 0
	for i, e := range entries {
		if i == 0 || e.TotalIncome != entries[i-1].TotalIncome {
			rank = i + 1
		}
		response.Entries = append(response.Entries, stats.RankingEntryResponse{
			Rank:        rank,
			UserID:      e.UserID,
			DisplayName: e.DisplayName,
			GameCount:   e.GameCount,
			TotalIncome: e.TotalIncome,
		})
	}

	return response, nil
}

// UserStats implements stats.StatsService. Both game types are always
// present in the response so clients render a stable layout for months
// without games.
func (s *statsServiceImpl) UserStats(ctx context.Context, filter stats.UserStatsFilter) (stats.UserStatsResponse, error) {
	// Validate request
	if err := filter.Validate(); err != nil {
		return stats.UserStatsResponse{}, err
	}

	if _, err := s.userRepo.GetByID(ctx, filter.UserID); err != nil {
		return stats.UserStatsResponse{}, err
	}

	from, to, err := timeutil.MonthBounds(filter.Month)
	if err != nil {
		return stats.UserStatsResponse{}, err
	}

	placeCounts, err := s.statsRepo.UserPlaceCounts(ctx, filter.UserID, from, to)
	if err != nil {
		return stats.UserStatsResponse{}, err
	}
	incomeTotals, err := s.statsRepo.UserIncomeTotals(ctx, filter.UserID, from, to)
	if err != nil {
		return stats.UserStatsResponse{}, err
	}

	response := stats.UserStatsResponse{
		UserID: filter.UserID,
		Month:  filter.Month,
	}
	for _, gameType := range []result.GameType{result.GameTypeYonma, result.GameTypeSanma} {
		response.Types = append(response.Types, buildTypeStats(gameType, placeCounts, incomeTotals))
	}

	return response, nil
}

func buildTypeStats(gameType result.GameType, placeCounts []stats.PlaceCount, incomeTotals []stats.IncomeTotal) stats.GameTypeStatsResponse {
	counts := make([]int, gameType.MaxPlace())
	for _, pc := range placeCounts {
		if pc.GameType != gameType || pc.Place < 1 || pc.Place > len(counts) {
			continue
		}
		counts[pc.Place-1] = pc.Games
	}

	games := 0
	placeSum := 0
	for place, n := range counts {
		games += n
		placeSum += (place + 1) * n
	}

	resp := stats.GameTypeStatsResponse{
		GameType:    gameType,
		GamesPlayed: games,
		PlaceCounts: counts,
	}
	if games > 0 {
		resp.AveragePlace = float64(placeSum) / float64(games)
		resp.TopRate = float64(counts[0]) / float64(games)
	}

	for _, it := range incomeTotals {
		if it.GameType == gameType {
			resp.TotalIncome = it.TotalIncome
			resp.TipIncome = it.TipIncome
		}
	}

	return resp
}
