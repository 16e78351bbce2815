package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jansou-app/jansou-backend-go/internal/domain/board"
	"github.com/jansou-app/jansou-backend-go/internal/repository/postgresql"
)

// MaintenanceJobs contains housekeeping jobs for auth sessions and the shift board.
type MaintenanceJobs struct {
	jwtRepo  postgresql.JWTRepository
	boardSvc board.BoardService
}

func NewMaintenanceJobs(jwtRepo postgresql.JWTRepository, boardSvc board.BoardService) *MaintenanceJobs {
	return &MaintenanceJobs{
		jwtRepo:  jwtRepo,
		boardSvc: boardSvc,
	}
}

func (j *MaintenanceJobs) RegisterJobs(scheduler *Scheduler) {
	// Purge old refresh tokens every 6 hours
	scheduler.AddJob("purge_expired_refresh_tokens", 6*time.Hour, j.PurgeExpiredRefreshTokens)

	// Warn about understaffed board days every day (check every hour)
	scheduler.AddJob("warn_understaffed_boards", 1*time.Hour, j.WarnUnderstaffedBoards)
}

// PurgeExpiredRefreshTokens deletes refresh tokens past their retention window.
func (j *MaintenanceJobs) PurgeExpiredRefreshTokens(ctx context.Context) error {
	deleted, err := j.jwtRepo.DeleteExpired(ctx)
	if err != nil {
		return fmt.Errorf("failed to purge refresh tokens: %w", err)
	}

	if deleted > 0 {
		slog.Info("Cron: Purged expired refresh tokens", "count", deleted)
	}
	return nil
}

// WarnUnderstaffedBoards logs shortage warnings for the next business day so
// managers still have time to adjust the roster.
func (j *MaintenanceJobs) WarnUnderstaffedBoards(ctx context.Context) error {
	// Only run at 09:00-09:59 UTC (18:00 JST, before the night shift starts)
	if time.Now().UTC().Hour() != 9 {
		return nil
	}

	slog.Info("Cron: Starting understaffed board check")

	nextDay := time.Now().UTC().AddDate(0, 0, 1)
	if err := j.boardSvc.WarnUnderstaffed(ctx, nextDay); err != nil {
		return fmt.Errorf("failed to check board staffing: %w", err)
	}
	return nil
}
