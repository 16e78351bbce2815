package stats

import "context"

type StatsService interface {
	Rankings(ctx context.Context, filter RankingsFilter) (RankingResponse, error)
	UserStats(ctx context.Context, filter UserStatsFilter) (UserStatsResponse, error)
}
