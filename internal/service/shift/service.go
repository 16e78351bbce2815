package shift

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jansou-app/jansou-backend-go/internal/domain/board"
	"github.com/jansou-app/jansou-backend-go/internal/domain/settings"
	"github.com/jansou-app/jansou-backend-go/internal/domain/shift"
	"github.com/jansou-app/jansou-backend-go/internal/domain/user"
	"github.com/jansou-app/jansou-backend-go/internal/pkg/database"
	"github.com/jansou-app/jansou-backend-go/internal/pkg/timeutil"
	"github.com/jansou-app/jansou-backend-go/internal/repository/postgresql"
)

type shiftServiceImpl struct {
	db        *database.DB
	shiftRepo shift.ShiftRepository
	userRepo  user.UserRepository
	wageRepo  settings.SpecialWageRepository
	boardSvc  board.BoardService
}

func NewShiftService(
	db *database.DB,
	shiftRepo shift.ShiftRepository,
	userRepo user.UserRepository,
	wageRepo settings.SpecialWageRepository,
	boardSvc board.BoardService,
) shift.ShiftService {
	return &shiftServiceImpl{
		db:        db,
		shiftRepo: shiftRepo,
		userRepo:  userRepo,
		wageRepo:  wageRepo,
		boardSvc:  boardSvc,
	}
}

// Create implements shift.ShiftService.
func (s *shiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	workDate, err := time.Parse("2006-01-02", req.WorkDate)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to parse work date: %w", err)
	}

	if err := s.ensureBoardOpen(ctx, req.UserID, workDate); err != nil {
		return shift.ShiftResponse{}, err
	}

	if req.SpecialHourlyWageID != nil {
		if _, err := s.wageRepo.GetByID(ctx, *req.SpecialHourlyWageID); err != nil {
			return shift.ShiftResponse{}, err
		}
	}

	entity := shift.Shift{
		UserID:              req.UserID,
		WorkDate:            workDate,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		Memo:                req.Memo,
		SpecialHourlyWageID: req.SpecialHourlyWageID,
	}
	for _, b := range req.NormalizedBreaks() {
		entity.Breaks = append(entity.Breaks, shift.Break{StartTime: b.StartTime, EndTime: b.EndTime})
	}

	var created shift.Shift
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		created, err = s.shiftRepo.Create(txCtx, entity)
		return err
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return s.toResponse(created)
}

// List implements shift.ShiftService.
func (s *shiftServiceImpl) List(ctx context.Context, filter shift.ListShiftsFilter) (shift.ListShiftsResponse, error) {
	// Validate request
	if err := filter.Validate(); err != nil {
		return shift.ListShiftsResponse{}, err
	}

	from, to, err := timeutil.MonthBounds(filter.Month)
	if err != nil {
		return shift.ListShiftsResponse{}, err
	}

	shifts, err := s.shiftRepo.ListByUserRange(ctx, filter.UserID, from, to)
	if err != nil {
		return shift.ListShiftsResponse{}, err
	}

	response := shift.ListShiftsResponse{
		Shifts: make([]shift.ShiftResponse, 0, len(shifts)),
	}
	days := make(map[string]struct{})
	for _, sh := range shifts {
		resp, err := s.toResponse(sh)
		if err != nil {
			// Unknown duration: the row stays out of the list and its totals,
			// never counted as zero.
			slog.Warn("Skipping shift with unparseable times", "shift_id", sh.ID, "error", err)
			continue
		}
		response.Shifts = append(response.Shifts, resp)
		response.TotalWorkedMinutes += resp.NetMinutes
		response.TotalBreakMinutes += resp.BreakMinutes
		days[resp.WorkDate] = struct{}{}
	}
	response.ShiftDays = len(days)

	return response, nil
}

// Update implements shift.ShiftService.
func (s *shiftServiceImpl) Update(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	current, err := s.shiftRepo.GetByID(ctx, req.ID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if current.UserID != req.UserID {
		return shift.ShiftResponse{}, user.ErrNotResourceOwner
	}

	merged := current
	if req.WorkDate != nil {
		workDate, err := time.Parse("2006-01-02", *req.WorkDate)
		if err != nil {
			return shift.ShiftResponse{}, fmt.Errorf("failed to parse work date: %w", err)
		}
		merged.WorkDate = workDate
	}
	if req.StartTime != nil {
		merged.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		merged.EndTime = *req.EndTime
	}
	if req.Memo != nil {
		merged.Memo = *req.Memo
	}
	if req.SpecialHourlyWageID != nil {
		if *req.SpecialHourlyWageID == "" {
			merged.SpecialHourlyWageID = nil
		} else {
			if _, err := s.wageRepo.GetByID(ctx, *req.SpecialHourlyWageID); err != nil {
				return shift.ShiftResponse{}, err
			}
			merged.SpecialHourlyWageID = req.SpecialHourlyWageID
		}
	}
	if req.Breaks != nil {
		merged.Breaks = nil
		for _, b := range *req.Breaks {
			if b.StartTime == "" && b.EndTime == "" {
				continue
			}
			merged.Breaks = append(merged.Breaks, shift.Break{StartTime: b.StartTime, EndTime: b.EndTime})
		}
	}

	// Cross-field invariants run against the merged result
	breakInputs := make([]shift.BreakInput, 0, len(merged.Breaks))
	for _, b := range merged.Breaks {
		breakInputs = append(breakInputs, shift.BreakInput{StartTime: b.StartTime, EndTime: b.EndTime})
	}
	if errs := shift.ValidateTimes(merged.StartTime, merged.EndTime, breakInputs); len(errs) > 0 {
		return shift.ShiftResponse{}, errs
	}

	// Both the original and the target date must be open
	dates := []time.Time{current.WorkDate}
	if !merged.WorkDate.Equal(current.WorkDate) {
		dates = append(dates, merged.WorkDate)
	}
	if err := s.ensureBoardOpen(ctx, req.UserID, dates...); err != nil {
		return shift.ShiftResponse{}, err
	}

	var saved shift.Shift
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		saved, err = s.shiftRepo.Update(txCtx, merged)
		return err
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return s.toResponse(saved)
}

// Delete implements shift.ShiftService.
func (s *shiftServiceImpl) Delete(ctx context.Context, userID, shiftID string) error {
	current, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return err
	}
	if current.UserID != userID {
		return user.ErrNotResourceOwner
	}

	if err := s.ensureBoardOpen(ctx, userID, current.WorkDate); err != nil {
		return err
	}

	return s.shiftRepo.Delete(ctx, shiftID)
}

// ensureBoardOpen refuses mutations when any of the dates is locked on
// the board of the user's store. Users without a store are never locked.
func (s *shiftServiceImpl) ensureBoardOpen(ctx context.Context, userID string, dates ...time.Time) error {
	userData, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if userData.StoreID == nil {
		return nil
	}

	for _, d := range dates {
		locked, err := s.boardSvc.IsDateLocked(ctx, *userData.StoreID, d)
		if err != nil {
			return fmt.Errorf("failed to check board lock: %w", err)
		}
		if locked {
			return shift.ErrBoardLocked
		}
	}

	return nil
}

func (s *shiftServiceImpl) toResponse(sh shift.Shift) (shift.ShiftResponse, error) {
	iv, err := sh.Interval()
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	breakMinutes, err := sh.BreakMinutes()
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return shift.ToResponse(sh, iv.Minutes(), breakMinutes), nil
}
