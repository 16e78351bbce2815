package result

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jansou-app/jansou-backend-go/internal/domain/result"
	"github.com/jansou-app/jansou-backend-go/internal/domain/settings"
	"github.com/jansou-app/jansou-backend-go/internal/domain/store"
	"github.com/jansou-app/jansou-backend-go/internal/domain/user"
	"github.com/jansou-app/jansou-backend-go/internal/pkg/database"
	"github.com/jansou-app/jansou-backend-go/internal/pkg/timeutil"
	"github.com/jansou-app/jansou-backend-go/internal/repository/postgresql"
)

type gameResultServiceImpl struct {
	db           *database.DB
	resultRepo   result.GameResultRepository
	settingsRepo settings.GameSettingsRepository
	storeRepo    store.StoreRepository
	userRepo     user.UserRepository
}

func NewGameResultService(
	db *database.DB,
	resultRepo result.GameResultRepository,
	settingsRepo settings.GameSettingsRepository,
	storeRepo store.StoreRepository,
	userRepo user.UserRepository,
) result.GameResultService {
	return &gameResultServiceImpl{
		db:           db,
		resultRepo:   resultRepo,
		settingsRepo: settingsRepo,
		storeRepo:    storeRepo,
		userRepo:     userRepo,
	}
}

// Create implements result.GameResultService.
func (s *gameResultServiceImpl) Create(ctx context.Context, req result.CreateGameResultRequest) (result.GameResultResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return result.GameResultResponse{}, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return result.GameResultResponse{}, err
	}
	if req.StoreID != nil {
		if _, err := s.storeRepo.GetByID(ctx, *req.StoreID); err != nil {
			return result.GameResultResponse{}, err
		}
	}

	playedAt, err := result.ParsePlayedAt(req.PlayedAt)
	if err != nil {
		return result.GameResultResponse{}, err
	}

	gs, err := s.settingsForUser(ctx, req.UserID)
	if err != nil {
		return result.GameResultResponse{}, err
	}

	tipIncome, totalIncome := result.ComputeIncome(gs, req.GameType, req.Place, req.BaseIncome, req.TipCount, req.OtherIncome)

	created, err := s.resultRepo.Create(ctx, result.GameResult{
		UserID:      req.UserID,
		GameType:    req.GameType,
		PlayedAt:    playedAt,
		Place:       req.Place,
		BaseIncome:  req.BaseIncome,
		TipCount:    req.TipCount,
		TipIncome:   tipIncome,
		OtherIncome: req.OtherIncome,
		TotalIncome: totalIncome,
		StoreID:     req.StoreID,
	})
	if err != nil {
		return result.GameResultResponse{}, err
	}

	return result.ToResponse(created), nil
}

// List implements result.GameResultService.
func (s *gameResultServiceImpl) List(ctx context.Context, filter result.ListResultsFilter) (result.ListResultsResponse, error) {
	// Validate request
	if err := filter.Validate(); err != nil {
		return result.ListResultsResponse{}, err
	}

	from, to, err := timeutil.MonthBounds(filter.Month)
	if err != nil {
		return result.ListResultsResponse{}, err
	}

	results, err := s.resultRepo.ListByUserRange(ctx, filter.UserID, from, to, filter.GameType)
	if err != nil {
		return result.ListResultsResponse{}, err
	}

	response := result.ListResultsResponse{
		Results: make([]result.GameResultResponse, 0, len(results)),
	}
	for _, g := range results {
		response.Results = append(response.Results, result.ToResponse(g))
		response.TotalIncome += g.TotalIncome
		// Final records close a batch; they carry income but are not games.
		if !g.IsFinalRecord {
			response.GameCount++
		}
	}

	return response, nil
}

// Update implements result.GameResultService. Derived income fields are
// recomputed from the user's current settings after the merge.
func (s *gameResultServiceImpl) Update(ctx context.Context, req result.UpdateGameResultRequest) (result.GameResultResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return result.GameResultResponse{}, err
	}

	current, err := s.resultRepo.GetByID(ctx, req.ID)
	if err != nil {
		return result.GameResultResponse{}, err
	}
	if current.UserID != req.UserID {
		return result.GameResultResponse{}, user.ErrNotResourceOwner
	}
	if current.IsFinalRecord {
		return result.GameResultResponse{}, result.ErrFinalRecordImmutable
	}

	merged := current
	if req.GameType != nil {
		merged.GameType = *req.GameType
	}
	if req.PlayedAt != nil {
		playedAt, err := result.ParsePlayedAt(*req.PlayedAt)
		if err != nil {
			return result.GameResultResponse{}, err
		}
		merged.PlayedAt = playedAt
	}
	if req.Place != nil {
		merged.Place = *req.Place
	} else if merged.GameType != current.GameType {
		// A type change without a new place re-clamps the stored one, so
		// a YONMA 4th becomes a SANMA 3rd instead of an invalid row.
		merged.Place = result.ClampPlace(merged.GameType, current.Place)
	}
	if req.BaseIncome != nil {
		merged.BaseIncome = *req.BaseIncome
	}
	if req.TipCount != nil {
		merged.TipCount = *req.TipCount
	}
	if req.OtherIncome != nil {
		merged.OtherIncome = *req.OtherIncome
	}
	if req.StoreID != nil {
		if *req.StoreID == "" {
			merged.StoreID = nil
		} else {
			if _, err := s.storeRepo.GetByID(ctx, *req.StoreID); err != nil {
				return result.GameResultResponse{}, err
			}
			merged.StoreID = req.StoreID
		}
	}

	if merged.Place < 1 || merged.Place > merged.GameType.MaxPlace() {
		return result.GameResultResponse{}, result.ErrPlaceOutOfRangeForType
	}

	gs, err := s.settingsForUser(ctx, req.UserID)
	if err != nil {
		return result.GameResultResponse{}, err
	}
	merged.TipIncome, merged.TotalIncome = result.ComputeIncome(gs, merged.GameType, merged.Place, merged.BaseIncome, merged.TipCount, merged.OtherIncome)

	saved, err := s.resultRepo.Update(ctx, merged)
	if err != nil {
		return result.GameResultResponse{}, err
	}

	return result.ToResponse(saved), nil
}

// Delete implements result.GameResultService.
func (s *gameResultServiceImpl) Delete(ctx context.Context, userID, resultID string) error {
	current, err := s.resultRepo.GetByID(ctx, resultID)
	if err != nil {
		return err
	}
	if current.UserID != userID {
		return user.ErrNotResourceOwner
	}
	if current.IsFinalRecord {
		return result.ErrFinalRecordImmutable
	}

	return s.resultRepo.Delete(ctx, resultID)
}

// CreateSimpleBatch implements result.GameResultService. Placement rows
// carry no income of their own; the closing final record holds the
// session's signed net income and refuses later mutation.
func (s *gameResultServiceImpl) CreateSimpleBatch(ctx context.Context, req result.SimpleBatchRequest) (result.ListResultsResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return result.ListResultsResponse{}, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return result.ListResultsResponse{}, err
	}
	if req.StoreID != nil {
		if _, err := s.storeRepo.GetByID(ctx, *req.StoreID); err != nil {
			return result.ListResultsResponse{}, err
		}
	}

	playedOn, err := time.Parse("2006-01-02", req.PlayedOn)
	if err != nil {
		return result.ListResultsResponse{}, err
	}

	batchID := uuid.New().String()
	rows := make([]result.GameResult, 0, len(req.Places)+1)
	for _, place := range req.Places {
		rows = append(rows, result.GameResult{
			UserID:        req.UserID,
			GameType:      req.GameType,
			PlayedAt:      playedOn,
			Place:         place,
			StoreID:       req.StoreID,
			SimpleBatchID: &batchID,
		})
	}
	rows = append(rows, result.GameResult{
		UserID:        req.UserID,
		GameType:      req.GameType,
		PlayedAt:      playedOn,
		Place:         0,
		BaseIncome:    req.NetIncome,
		TotalIncome:   req.NetIncome,
		StoreID:       req.StoreID,
		SimpleBatchID: &batchID,
		IsFinalRecord: true,
	})

	var created []result.GameResult
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		created, err = s.resultRepo.CreateBatch(txCtx, rows)
		return err
	})
	if err != nil {
		return result.ListResultsResponse{}, err
	}

	response := result.ListResultsResponse{
		Results:     make([]result.GameResultResponse, 0, len(created)),
		GameCount:   len(req.Places),
		TotalIncome: req.NetIncome,
	}
	for _, g := range created {
		response.Results = append(response.Results, result.ToResponse(g))
	}

	return response, nil
}

// settingsForUser loads the user's game settings for income computation,
// falling back to the defaults when no row exists yet. Reads never create
// the row; first access through the settings endpoint does.
func (s *gameResultServiceImpl) settingsForUser(ctx context.Context, userID string) (settings.GameSettings, error) {
	gs, err := s.settingsRepo.GetByUserID(ctx, userID)
	if errors.Is(err, settings.ErrSettingsNotFound) {
		return settings.DefaultGameSettings(userID), nil
	}
	if err != nil {
		return settings.GameSettings{}, err
	}
	return gs, nil
}
