package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jansou-app/jansou-backend-go/internal/domain/board"
	"github.com/jansou-app/jansou-backend-go/internal/domain/shift"
	"github.com/jansou-app/jansou-backend-go/internal/domain/store"
	"github.com/jansou-app/jansou-backend-go/internal/pkg/database"
	"github.com/jansou-app/jansou-backend-go/internal/pkg/timeutil"
	"github.com/jansou-app/jansou-backend-go/internal/repository/postgresql"
)

type boardServiceImpl struct {
	db        *database.DB
	reqRepo   board.ShiftRequirementRepository
	shiftRepo shift.ShiftRepository
	storeRepo store.StoreRepository
}

func NewBoardService(
	db *database.DB,
	reqRepo board.ShiftRequirementRepository,
	shiftRepo shift.ShiftRepository,
	storeRepo store.StoreRepository,
) board.BoardService {
	return &boardServiceImpl{
		db:        db,
		reqRepo:   reqRepo,
		shiftRepo: shiftRepo,
		storeRepo: storeRepo,
	}
}

// storeClocks is a store's four staffing instants on the 48-hour
// timeline.
type storeClocks struct {
	earlyOpen  int
	earlyClose int
	lateOpen   int
	lateClose  int
}

func parseStoreClocks(st store.Store) (storeClocks, error) {
	var clocks storeClocks
	for _, c := range []struct {
		name  string
		value string
		dst   *int
	}{
		{"early open", st.EarlyOpenTime, &clocks.earlyOpen},
		{"early close", st.EarlyCloseTime, &clocks.earlyClose},
		{"late open", st.LateOpenTime, &clocks.lateOpen},
		{"late close", st.LateCloseTime, &clocks.lateClose},
	} {
		m, err := timeutil.ParseClock(c.value)
		if err != nil {
			return storeClocks{}, fmt.Errorf("store %s: invalid %s time: %w", st.ID, c.name, err)
		}
		*c.dst = m
	}
	return clocks, nil
}

type cellKey struct {
	date      string
	shiftType board.ShiftType
}

// GetBoard implements board.BoardService.
func (s *boardServiceImpl) GetBoard(ctx context.Context, filter board.BoardFilter) (board.BoardResponse, error) {
	resp, _, err := s.buildBoard(ctx, filter)
	return resp, err
}

// UpsertRequirement implements board.BoardService. The lock check and the
// write run in one transaction so concurrent admins cannot slip a write
// past a cell being frozen.
func (s *boardServiceImpl) UpsertRequirement(ctx context.Context, req board.UpsertRequirementRequest) (board.RequirementResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return board.RequirementResponse{}, err
	}

	if _, err := s.storeRepo.GetByID(ctx, req.StoreID); err != nil {
		return board.RequirementResponse{}, err
	}

	workDate, err := time.Parse("2006-01-02", req.WorkDate)
	if err != nil {
		return board.RequirementResponse{}, fmt.Errorf("failed to parse work date: %w", err)
	}

	var saved board.ShiftRequirement
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		current, err := s.reqRepo.GetCell(txCtx, req.StoreID, workDate, req.ShiftType)
		exists := err == nil
		if err != nil && !errors.Is(err, board.ErrRequirementNotFound) {
			return err
		}

		// A locked cell only accepts the write that re-opens it.
		if exists && !current.Editable && (req.Editable == nil || !*req.Editable) {
			return board.ErrCellLocked
		}

		editable := true
		if exists {
			editable = current.Editable
		}
		if req.Editable != nil {
			editable = *req.Editable
		}

		saved, err = s.reqRepo.Upsert(txCtx, board.ShiftRequirement{
			StoreID:       req.StoreID,
			WorkDate:      workDate,
			ShiftType:     req.ShiftType,
			RequiredStart: req.RequiredStart,
			RequiredEnd:   req.RequiredEnd,
			Editable:      editable,
		})
		return err
	})
	if err != nil {
		return board.RequirementResponse{}, err
	}

	return board.ToRequirementResponse(saved), nil
}

// ExportBoard implements board.BoardService.
func (s *boardServiceImpl) ExportBoard(ctx context.Context, filter board.BoardFilter) ([]byte, string, error) {
	resp, st, err := s.buildBoard(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	data, err := renderBoardXLSX(resp, st.Name)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render board export: %w", err)
	}

	return data, fmt.Sprintf("shift_board_%s.xlsx", filter.Month), nil
}

// IsDateLocked implements board.BoardService.
func (s *boardServiceImpl) IsDateLocked(ctx context.Context, storeID string, workDate time.Time) (bool, error) {
	day := time.Date(workDate.Year(), workDate.Month(), workDate.Day(), 0, 0, 0, 0, workDate.Location())
	locked, err := s.reqRepo.ListLockedDates(ctx, storeID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return false, err
	}
	return len(locked) > 0, nil
}

// WarnUnderstaffed implements board.BoardService. A store with broken
// clock configuration is logged and skipped so the sweep still covers the
// remaining stores.
func (s *boardServiceImpl) WarnUnderstaffed(ctx context.Context, day time.Time) error {
	stores, err := s.storeRepo.List(ctx)
	if err != nil {
		return err
	}

	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.AddDate(0, 0, 1)

	for _, st := range stores {
		clocks, err := parseStoreClocks(st)
		if err != nil {
			slog.Error("Skipping store with invalid clocks", "store", st.Name, "error", err)
			continue
		}

		overrides, err := s.overridesByCell(ctx, st.ID, from, to)
		if err != nil {
			return err
		}
		staffShifts, err := s.shiftRepo.ListByStoreRange(ctx, st.ID, from, to)
		if err != nil {
			return err
		}

		dayResp := buildDay(from, clocks, overrides, staffShifts)

		for _, cell := range []board.CellResponse{dayResp.Early, dayResp.Late} {
			if cell.StartStatus != board.StatusShort && cell.EndStatus != board.StatusShort {
				continue
			}
			slog.Warn("Understaffed board cell",
				"store", st.Name,
				"date", dayResp.Date,
				"shift_type", cell.ShiftType,
				"required_start", cell.RequiredStart,
				"actual_start", cell.ActualStart,
				"required_end", cell.RequiredEnd,
				"actual_end", cell.ActualEnd,
			)
		}
	}

	return nil
}

// buildBoard assembles one store's month of cells and day shift lists.
func (s *boardServiceImpl) buildBoard(ctx context.Context, filter board.BoardFilter) (board.BoardResponse, store.Store, error) {
	// Validate request
	if err := filter.Validate(); err != nil {
		return board.BoardResponse{}, store.Store{}, err
	}

	st, err := s.storeRepo.GetByID(ctx, filter.StoreID)
	if err != nil {
		return board.BoardResponse{}, store.Store{}, err
	}
	clocks, err := parseStoreClocks(st)
	if err != nil {
		return board.BoardResponse{}, store.Store{}, err
	}

	from, to, err := timeutil.MonthBounds(filter.Month)
	if err != nil {
		return board.BoardResponse{}, store.Store{}, err
	}

	overrides, err := s.overridesByCell(ctx, filter.StoreID, from, to)
	if err != nil {
		return board.BoardResponse{}, store.Store{}, err
	}

	staffShifts, err := s.shiftRepo.ListByStoreRange(ctx, filter.StoreID, from, to)
	if err != nil {
		return board.BoardResponse{}, store.Store{}, err
	}
	shiftsByDate := make(map[string][]shift.StaffShift)
	for _, ss := range staffShifts {
		key := ss.WorkDate.Format("2006-01-02")
		shiftsByDate[key] = append(shiftsByDate[key], ss)
	}

	response := board.BoardResponse{
		StoreID: filter.StoreID,
		Month:   filter.Month,
	}
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		response.Days = append(response.Days, buildDay(d, clocks, overrides, shiftsByDate[d.Format("2006-01-02")]))
	}

	return response, st, nil
}

func (s *boardServiceImpl) overridesByCell(ctx context.Context, storeID string, from, to time.Time) (map[cellKey]board.ShiftRequirement, error) {
	rows, err := s.reqRepo.ListByStoreRange(ctx, storeID, from, to)
	if err != nil {
		return nil, err
	}

	overrides := make(map[cellKey]board.ShiftRequirement, len(rows))
	for _, r := range rows {
		overrides[cellKey{date: r.WorkDate.Format("2006-01-02"), shiftType: r.ShiftType}] = r
	}
	return overrides, nil
}

// buildDay computes both cells and the shift list for one date. Actual
// headcounts are distinct staff whose shift interval covers the store's
// staffing instant; shifts belong to the business day they were entered
// under, so an overnight tail never leaks into the next date's counts.
func buildDay(date time.Time, clocks storeClocks, overrides map[cellKey]board.ShiftRequirement, dayShifts []shift.StaffShift) board.BoardDayResponse {
	type staffInterval struct {
		userID string
		iv     timeutil.Interval
	}
	intervals := make([]staffInterval, 0, len(dayShifts))
	for i := range dayShifts {
		iv, err := dayShifts[i].Interval()
		if err != nil {
			// Unknown interval: the shift stays out of the actual counts.
			slog.Warn("Skipping shift with unparseable times", "shift_id", dayShifts[i].ID, "error", err)
			continue
		}
		intervals = append(intervals, staffInterval{userID: dayShifts[i].UserID, iv: iv})
	}

	countAt := func(instant int) int {
		seen := make(map[string]struct{})
		for _, si := range intervals {
			if si.iv.Covers(instant) {
				seen[si.userID] = struct{}{}
			}
		}
		return len(seen)
	}

	dateStr := date.Format("2006-01-02")
	day := board.BoardDayResponse{
		Date:    dateStr,
		Weekday: date.Weekday().String(),
		Early: buildCell(date, board.ShiftTypeEarly, overrides,
			countAt(clocks.earlyOpen), countAt(clocks.earlyClose)),
		Late: buildCell(date, board.ShiftTypeLate, overrides,
			countAt(clocks.lateOpen), countAt(clocks.lateClose)),
		Shifts: make([]board.BoardShiftResponse, 0, len(dayShifts)),
	}

	for _, ss := range dayShifts {
		day.Shifts = append(day.Shifts, board.BoardShiftResponse{
			UserID:    ss.UserID,
			UserName:  ss.UserName,
			StartTime: ss.StartTime,
			EndTime:   ss.EndTime,
		})
	}

	return day
}

func buildCell(date time.Time, shiftType board.ShiftType, overrides map[cellKey]board.ShiftRequirement, actualStart, actualEnd int) board.CellResponse {
	requiredStart, requiredEnd := board.DefaultRequirement(date.Weekday(), shiftType)
	editable := true
	hasOverride := false
	if o, ok := overrides[cellKey{date: date.Format("2006-01-02"), shiftType: shiftType}]; ok {
		requiredStart, requiredEnd = o.RequiredStart, o.RequiredEnd
		editable = o.Editable
		hasOverride = true
	}

	startDiff, startStatus := board.Diff(requiredStart, actualStart)
	endDiff, endStatus := board.Diff(requiredEnd, actualEnd)

	return board.CellResponse{
		ShiftType:     shiftType,
		RequiredStart: requiredStart,
		RequiredEnd:   requiredEnd,
		ActualStart:   actualStart,
		ActualEnd:     actualEnd,
		StartDiff:     startDiff,
		EndDiff:       endDiff,
		StartStatus:   startStatus,
		EndStatus:     endStatus,
		Editable:      editable,
		HasOverride:   hasOverride,
	}
}

// renderBoardXLSX lays the month out one row per day with the early and
// late cells side by side. Understaffed actual counts render in red.
func renderBoardXLSX(b board.BoardResponse, storeName string) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("Failed to close workbook", "error", err)
		}
	}()

	sheet := b.Month
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	title := fmt.Sprintf("%s shift board %s", storeName, b.Month)
	f.SetCellValue(sheet, "A1", title)
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err == nil {
		f.SetCellStyle(sheet, "A1", "A1", titleStyle)
	}
	f.MergeCell(sheet, "A1", "K1")

	headers := []string{
		"Date", "Day",
		"Early req open", "Early req close", "Early act open", "Early act close",
		"Late req open", "Late req close", "Late act open", "Late act close",
		"Staff",
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 3)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err == nil {
		f.SetCellStyle(sheet, "A3", "K3", headerStyle)
	}

	shortStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "#FF0000", Bold: true},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, err
	}

	for i, day := range b.Days {
		row := 4 + i

		values := []interface{}{
			day.Date, day.Weekday,
			day.Early.RequiredStart, day.Early.RequiredEnd, day.Early.ActualStart, day.Early.ActualEnd,
			day.Late.RequiredStart, day.Late.RequiredEnd, day.Late.ActualStart, day.Late.ActualEnd,
			staffSummary(day.Shifts),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(sheet, cell, v)
		}

		markShort := func(col string, status board.DiffStatus) {
			if status == board.StatusShort {
				f.SetCellStyle(sheet, fmt.Sprintf("%s%d", col, row), fmt.Sprintf("%s%d", col, row), shortStyle)
			}
		}
		markShort("E", day.Early.StartStatus)
		markShort("F", day.Early.EndStatus)
		markShort("I", day.Late.StartStatus)
		markShort("J", day.Late.EndStatus)
	}

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "B", 10)
	f.SetColWidth(sheet, "C", "J", 9)
	f.SetColWidth(sheet, "K", "K", 60)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func staffSummary(shifts []board.BoardShiftResponse) string {
	parts := make([]string, 0, len(shifts))
	for _, s := range shifts {
		parts = append(parts, fmt.Sprintf("%s %s-%s", s.UserName, s.StartTime, s.EndTime))
	}
	return strings.Join(parts, ", ")
}
