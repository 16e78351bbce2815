package payroll

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/jansou-app/jansou-backend-go/internal/domain/payroll"
	"github.com/jansou-app/jansou-backend-go/internal/domain/result"
	"github.com/jansou-app/jansou-backend-go/internal/domain/settings"
	"github.com/jansou-app/jansou-backend-go/internal/domain/shift"
	"github.com/jansou-app/jansou-backend-go/internal/domain/user"
	"github.com/jansou-app/jansou-backend-go/internal/pkg/storage"
	"github.com/jansou-app/jansou-backend-go/internal/pkg/timeutil"
)

type payrollServiceImpl struct {
	shiftRepo    shift.ShiftRepository
	resultRepo   result.GameResultRepository
	settingsRepo settings.GameSettingsRepository
	wageRepo     settings.SpecialWageRepository
	advanceRepo  payroll.AdvancePaymentRepository
	userRepo     user.UserRepository
	fileStorage  storage.FileStorage
}

func NewPayrollService(
	shiftRepo shift.ShiftRepository,
	resultRepo result.GameResultRepository,
	settingsRepo settings.GameSettingsRepository,
	wageRepo settings.SpecialWageRepository,
	advanceRepo payroll.AdvancePaymentRepository,
	userRepo user.UserRepository,
	fileStorage storage.FileStorage,
) payroll.PayrollService {
	return &payrollServiceImpl{
		shiftRepo:    shiftRepo,
		resultRepo:   resultRepo,
		settingsRepo: settingsRepo,
		wageRepo:     wageRepo,
		advanceRepo:  advanceRepo,
		userRepo:     userRepo,
		fileStorage:  fileStorage,
	}
}

// GetSummary implements payroll.PayrollService.
func (s *payrollServiceImpl) GetSummary(ctx context.Context, userID, month string) (payroll.SalarySummaryResponse, error) {
	summary, _, err := s.buildSummary(ctx, userID, month)
	if err != nil {
		return payroll.SalarySummaryResponse{}, err
	}

	return payroll.ToSummaryResponse(summary), nil
}

// UpsertAdvance implements payroll.PayrollService.
func (s *payrollServiceImpl) UpsertAdvance(ctx context.Context, req payroll.UpsertAdvanceRequest) (payroll.AdvanceResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return payroll.AdvanceResponse{}, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return payroll.AdvanceResponse{}, err
	}

	saved, err := s.advanceRepo.Upsert(ctx, payroll.AdvancePayment{
		UserID: req.UserID,
		Month:  req.Month,
		Amount: req.Amount,
	})
	if err != nil {
		return payroll.AdvanceResponse{}, err
	}

	return payroll.AdvanceResponse{
		UserID: saved.UserID,
		Month:  saved.Month,
		Amount: saved.Amount,
	}, nil
}

// GeneratePayslip implements payroll.PayrollService. The rendered PDF is
// archived to file storage; archiving failures are logged but never block
// the download.
func (s *payrollServiceImpl) GeneratePayslip(ctx context.Context, userID, month string) ([]byte, string, error) {
	summary, staff, err := s.buildSummary(ctx, userID, month)
	if err != nil {
		return nil, "", err
	}

	doc, err := renderPayslip(payroll.ToSummaryResponse(summary), staff.DisplayName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render payslip: %w", err)
	}

	archivePath := fmt.Sprintf("payslips/%s/%s.pdf", userID, month)
	if _, err := s.fileStorage.Save(ctx, bytes.NewReader(doc), archivePath); err != nil {
		slog.Warn("Failed to archive payslip", "path", archivePath, "error", err)
	}

	return doc, fmt.Sprintf("payslip_%s.pdf", month), nil
}

// buildSummary assembles the month's salary statement from shifts, game
// results, settings and the advance record.
func (s *payrollServiceImpl) buildSummary(ctx context.Context, userID, month string) (payroll.SalarySummary, user.User, error) {
	from, to, err := timeutil.MonthBounds(month)
	if err != nil {
		return payroll.SalarySummary{}, user.User{}, payroll.ErrInvalidMonth
	}

	staff, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return payroll.SalarySummary{}, user.User{}, err
	}

	gs, err := s.settingsForUser(ctx, userID)
	if err != nil {
		return payroll.SalarySummary{}, user.User{}, err
	}

	nightStart, err := timeutil.ParseClock(gs.NightStartTime)
	if err != nil {
		return payroll.SalarySummary{}, user.User{}, fmt.Errorf("invalid night window start: %w", err)
	}
	nightEnd, err := timeutil.ParseClock(gs.NightEndTime)
	if err != nil {
		return payroll.SalarySummary{}, user.User{}, fmt.Errorf("invalid night window end: %w", err)
	}

	shifts, err := s.shiftRepo.ListByUserRange(ctx, userID, from, to)
	if err != nil {
		return payroll.SalarySummary{}, user.User{}, err
	}

	var workedMinutes, nightMinutes, breakMinutes int
	days := make(map[string]struct{})
	wageCache := make(map[string]*settings.SpecialHourlyWage)
	lineIndex := make(map[string]int)
	var allowances []payroll.AllowanceLine

	for _, sh := range shifts {
		m, err := payroll.ClassifyShift(sh, nightStart, nightEnd)
		if err != nil {
			// Unknown duration: the shift stays out of the sums, never counted as zero.
			slog.Warn("Skipping shift with unparseable times", "shift_id", sh.ID, "error", err)
			continue
		}

		workedMinutes += m.Worked
		nightMinutes += m.Night
		breakMinutes += m.Break
		days[sh.WorkDate.Format("2006-01-02")] = struct{}{}

		if sh.SpecialHourlyWageID == nil {
			continue
		}
		w, err := s.specialWage(ctx, wageCache, *sh.SpecialHourlyWageID)
		if err != nil {
			return payroll.SalarySummary{}, user.User{}, err
		}
		if w == nil {
			// Orphaned reference: the wage was deleted after assignment.
			continue
		}

		line := payroll.ResolveAllowance(m.Span, m.Night, w)
		if idx, ok := lineIndex[w.ID]; ok {
			allowances[idx].Hours = allowances[idx].Hours.Add(line.Hours)
			allowances[idx].Amount = allowances[idx].Amount.Add(line.Amount)
		} else {
			lineIndex[w.ID] = len(allowances)
			allowances = append(allowances, line)
		}
	}

	wages := payroll.ComputeWages(workedMinutes, nightMinutes, len(days), gs)

	results, err := s.resultRepo.ListByUserRange(ctx, userID, from, to, nil)
	if err != nil {
		return payroll.SalarySummary{}, user.User{}, err
	}
	var gameIncome int64
	gameCount := 0
	for _, g := range results {
		gameIncome += g.TotalIncome
		if !g.IsFinalRecord {
			gameCount++
		}
	}

	advanceAmount := int64(0)
	advance, err := s.advanceRepo.GetByUserMonth(ctx, userID, month)
	if err != nil && !errors.Is(err, payroll.ErrAdvanceNotFound) {
		return payroll.SalarySummary{}, user.User{}, err
	}
	if err == nil {
		advanceAmount = advance.Amount
	}

	gameIncomeDec := decimal.NewFromInt(gameIncome)
	advanceDec := decimal.NewFromInt(advanceAmount)
	gross, tax, net, payable := payroll.Aggregate(wages, allowances, gameIncomeDec, gs.IncomeTaxRate, advanceDec)

	return payroll.SalarySummary{
		UserID:         userID,
		Month:          month,
		WorkedMinutes:  workedMinutes,
		NightMinutes:   nightMinutes,
		BreakMinutes:   breakMinutes,
		ShiftDays:      len(days),
		GameCount:      gameCount,
		BaseWage:       wages.BaseWage,
		NightExtra:     wages.NightExtra,
		Transport:      wages.Transport,
		Allowances:     allowances,
		AllowanceTotal: payroll.SumAllowances(allowances),
		GameIncome:     gameIncomeDec,
		Gross:          gross,
		IncomeTax:      tax,
		Net:            net,
		Advance:        advanceDec,
		Payable:        payable,
	}, staff, nil
}

// specialWage resolves a wage reference through a per-request cache. A
// reference to a deleted wage resolves to nil so historical shifts keep
// computing without their allowance.
func (s *payrollServiceImpl) specialWage(ctx context.Context, cache map[string]*settings.SpecialHourlyWage, id string) (*settings.SpecialHourlyWage, error) {
	if w, ok := cache[id]; ok {
		return w, nil
	}

	w, err := s.wageRepo.GetByID(ctx, id)
	if errors.Is(err, settings.ErrSpecialWageNotFound) {
		cache[id] = nil
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	cache[id] = &w
	return &w, nil
}

// settingsForUser loads the user's game settings, falling back to the
// defaults when no row exists yet.
func (s *payrollServiceImpl) settingsForUser(ctx context.Context, userID string) (settings.GameSettings, error) {
	gs, err := s.settingsRepo.GetByUserID(ctx, userID)
	if errors.Is(err, settings.ErrSettingsNotFound) {
		return settings.DefaultGameSettings(userID), nil
	}
	if err != nil {
		return settings.GameSettings{}, err
	}
	return gs, nil
}

// renderPayslip lays out the statement on a single A4 page.
func renderPayslip(resp payroll.SalarySummaryResponse, displayName string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Salary Statement")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Staff: %s", displayName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Month: %s", resp.Month))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Work")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Worked: %s (night %s, breaks %s)",
		formatHours(resp.WorkedMinutes), formatHours(resp.NightMinutes), formatHours(resp.BreakMinutes)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Shift days: %d    Games: %d", resp.ShiftDays, resp.GameCount))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Base wage: %d yen", resp.BaseWage))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Night extra: %d yen", resp.NightExtra))
	pdf.Ln(7)
	for _, a := range resp.Allowances {
		pdf.Cell(0, 8, fmt.Sprintf("Allowance %s: %d yen", a.Label, a.Amount))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Transport: %d yen", resp.Transport))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Game income: %d yen", resp.GameIncome))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Totals")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Gross: %d yen", resp.Gross))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Income tax: %d yen", resp.IncomeTax))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net: %d yen", resp.Net))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Advance deducted: %d yen", resp.Advance))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Payable: %d yen", resp.Payable))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatHours(minutes int) string {
	return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
}
