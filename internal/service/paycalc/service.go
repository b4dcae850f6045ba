package paycalc

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shiftwise/wfm-backend-go/internal/domain/employee"
	"github.com/shiftwise/wfm-backend-go/internal/domain/paycalc"
	"github.com/shiftwise/wfm-backend-go/internal/domain/payrule"
	"github.com/shiftwise/wfm-backend-go/internal/domain/timeentry"
	"golang.org/x/sync/errgroup"
)

type CalcServiceImpl struct {
	ruleRepo     payrule.PayRuleRepository
	entryRepo    timeentry.TimeEntryRepository
	employeeRepo employee.EmployeeRepository
	calcRepo     paycalc.PayCalculationRepository
	classifier   *HoursClassifier
	matcher      *ConditionMatcher
	applier      *ActionApplier
	thresholds   Thresholds
	workers      int
	logger       *slog.Logger
}

func NewCalcService(
	ruleRepo payrule.PayRuleRepository,
	entryRepo timeentry.TimeEntryRepository,
	employeeRepo employee.EmployeeRepository,
	calcRepo paycalc.PayCalculationRepository,
	thresholds Thresholds,
	workers int,
	logger *slog.Logger,
) paycalc.PayCalcService {
	if workers < 1 {
		workers = 1
	}
	return &CalcServiceImpl{
		ruleRepo:     ruleRepo,
		entryRepo:    entryRepo,
		employeeRepo: employeeRepo,
		calcRepo:     calcRepo,
		classifier:   NewHoursClassifier(),
		matcher:      NewConditionMatcher(),
		applier:      NewActionApplier(),
		thresholds:   thresholds,
		workers:      workers,
		logger:       logger,
	}
}

// employeeRun is the isolated per-employee unit of a calculation run.
// Each run owns its own result and audit rows; nothing is shared
// between employees until the final assembly.
type employeeRun struct {
	result    paycalc.PayCalculationResult
	rows      []paycalc.PayCalculation
	processed int
	skipped   int
}

func (s *CalcServiceImpl) Calculate(ctx context.Context, req paycalc.CalculateRequest) (paycalc.CalculateResponse, error) {
	if err := req.Validate(); err != nil {
		return paycalc.CalculateResponse{}, err
	}

	periodStart, _ := time.Parse("2006-01-02", req.PeriodStart)
	periodEnd, _ := time.Parse("2006-01-02", req.PeriodEnd)

	// Read-only snapshot of active rules for this run, already ordered
	// by priority then id.
	rules, err := s.ruleRepo.ListActiveByPriority(ctx)
	if err != nil {
		return paycalc.CalculateResponse{}, fmt.Errorf("failed to load active pay rules: %w", err)
	}
	validRules := make([]payrule.PayRule, 0, len(rules))
	for _, rule := range rules {
		if !rule.IsWellFormed() {
			// Should have been rejected at authoring time; not fatal to the run.
			s.logger.Warn("skipping malformed pay rule",
				slog.String("rule_id", rule.ID),
				slog.String("rule_name", rule.Name),
			)
			continue
		}
		validRules = append(validRules, rule)
	}

	entries, err := s.entryRepo.ListApprovedInPeriod(ctx, periodStart, periodEnd, req.EmployeeIDs)
	if err != nil {
		return paycalc.CalculateResponse{}, fmt.Errorf("failed to load time entries: %w", err)
	}

	entriesByUser := make(map[string][]timeentry.TimeEntry)
	var userIDs []string
	for _, entry := range entries {
		if _, seen := entriesByUser[entry.UserID]; !seen {
			userIDs = append(userIDs, entry.UserID)
		}
		entriesByUser[entry.UserID] = append(entriesByUser[entry.UserID], entry)
	}

	employees, err := s.employeeRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return paycalc.CalculateResponse{}, fmt.Errorf("failed to load employee directory: %w", err)
	}

	// One worker unit per employee; entries of different employees
	// never share state, so completion order is irrelevant.
	runs := make([]*employeeRun, len(userIDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, userID := range userIDs {
		i, userID := i, userID
		// Best-effort cancellation between employees, never mid-employee.
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			runs[i] = s.runEmployee(validRules, userID, employees[userID], entriesByUser[userID], periodStart, periodEnd, req.CalculatedBy)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return paycalc.CalculateResponse{}, err
	}
	if err := ctx.Err(); err != nil {
		return paycalc.CalculateResponse{}, err
	}

	var resp paycalc.CalculateResponse
	var allRows []paycalc.PayCalculation
	for _, run := range runs {
		if run == nil || run.processed == 0 {
			// No eligible entries survived for this employee; omitted,
			// not an error.
			if run != nil {
				resp.SkippedEntries += run.skipped
			}
			continue
		}
		resp.EmployeeResults = append(resp.EmployeeResults, run.result)
		resp.Summary = resp.Summary.Merge(run.result.Summary)
		resp.SkippedEntries += run.skipped
		allRows = append(allRows, run.rows...)
	}
	sort.Slice(resp.EmployeeResults, func(i, j int) bool {
		a, b := resp.EmployeeResults[i], resp.EmployeeResults[j]
		if a.Username != b.Username {
			return a.Username < b.Username
		}
		return a.UserID < b.UserID
	})
	resp.EmployeeCount = len(resp.EmployeeResults)

	// Single batched write. Failure fails the whole run; no partial
	// commit of only some employees' rows.
	if len(allRows) > 0 {
		if err := s.calcRepo.SaveAll(ctx, allRows); err != nil {
			return paycalc.CalculateResponse{}, fmt.Errorf("failed to persist pay calculations: %w", err)
		}
	}
	resp.SavedCalculations = len(allRows)

	return resp, nil
}

func (s *CalcServiceImpl) runEmployee(
	rules []payrule.PayRule,
	userID string,
	emp employee.Employee,
	entries []timeentry.TimeEntry,
	periodStart, periodEnd time.Time,
	calculatedBy string,
) *employeeRun {
	run := &employeeRun{
		result: paycalc.PayCalculationResult{
			UserID:     userID,
			Username:   emp.Username,
			Components: make(map[string]paycalc.ComponentTotal),
		},
	}
	calculatedAt := time.Now()

	for _, entry := range entries {
		if entry.ClockOutTime == nil {
			// Still open, not eligible.
			continue
		}

		matched := make([]payrule.PayRule, 0, len(rules))
		mc := MatchContext{
			EntryDate:      entry.ClockInTime,
			ShiftStartHour: entry.ClockInTime.Hour(),
			UserID:         userID,
			Roles:          emp.Roles,
		}
		for _, rule := range rules {
			if s.matcher.Matches(rule, mc) {
				matched = append(matched, rule)
			}
		}

		thresholds := s.entryThresholds(matched)
		buckets, err := s.classifier.Classify(entry, thresholds)
		if err != nil {
			run.skipped++
			s.logger.Error("excluding time entry from payroll run",
				slog.String("time_entry_id", entry.ID),
				slog.String("user_id", userID),
				slog.Any("error", err),
			)
			continue
		}

		components := s.applier.Apply(matched, buckets, thresholds)
		run.processed++

		run.result.TotalHours = run.result.TotalHours.Add(buckets.Total())
		run.result.Summary.RegularHours = run.result.Summary.RegularHours.Add(buckets.Regular)
		run.result.Summary.OvertimeHours = run.result.Summary.OvertimeHours.Add(buckets.Overtime)
		run.result.Summary.DoubleTimeHours = run.result.Summary.DoubleTimeHours.Add(buckets.DoubleTime)

		row := paycalc.PayCalculation{
			ID:              uuid.NewString(),
			UserID:          userID,
			PayPeriodStart:  periodStart,
			PayPeriodEnd:    periodEnd,
			RegularHours:    buckets.Regular,
			OvertimeHours:   buckets.Overtime,
			DoubleTimeHours: buckets.DoubleTime,
			PayComponents:   components,
			TimeEntryID:     entry.ID,
			CalculatedByID:  calculatedBy,
			CalculatedAt:    calculatedAt,
		}

		for _, comp := range components {
			switch comp.Type {
			case paycalc.ComponentTypeAllowance:
				run.result.Summary.TotalAllowances = run.result.Summary.TotalAllowances.Add(*comp.Amount)
				row.TotalAllowances = row.TotalAllowances.Add(*comp.Amount)
			case paycalc.ComponentTypeDifferential:
				run.result.Summary.ShiftDifferentials = run.result.Summary.ShiftDifferentials.Add(*comp.Amount)
			}
			mergeComponent(run.result.Components, comp)
			if !containsString(row.RulesApplied, comp.RuleName) {
				row.RulesApplied = append(row.RulesApplied, comp.RuleName)
			}
		}

		run.rows = append(run.rows, row)
	}

	return run
}

// entryThresholds derives the classification boundaries for one entry.
// A matched rule whose overtime_threshold sits below the default
// regular boundary lowers that boundary (lowest wins); thresholds at or
// beyond it only scope that rule's own components.
func (s *CalcServiceImpl) entryThresholds(matched []payrule.PayRule) Thresholds {
	t := s.thresholds
	for _, rule := range matched {
		th := rule.Conditions.OvertimeThreshold
		if th != nil && th.IsPositive() && th.LessThan(t.Regular) {
			t.Regular = *th
		}
	}
	return t
}

// mergeComponent folds one component into the per-name aggregate,
// preserving the priority order rules were applied in via RulesApplied.
func mergeComponent(totals map[string]paycalc.ComponentTotal, comp paycalc.PayComponent) {
	total, ok := totals[comp.Name]
	if !ok {
		total = paycalc.ComponentTotal{Type: comp.Type}
	}
	if comp.Hours != nil {
		total.Hours = total.Hours.Add(*comp.Hours)
	}
	if comp.Amount != nil {
		total.Amount = total.Amount.Add(*comp.Amount)
	}
	if comp.Multiplier != nil {
		total.Multiplier = comp.Multiplier
	}
	if !containsString(total.RulesApplied, comp.RuleName) {
		total.RulesApplied = append(total.RulesApplied, comp.RuleName)
	}
	totals[comp.Name] = total
}

func containsString(values []string, v string) bool {
	for _, item := range values {
		if item == v {
			return true
		}
	}
	return false
}

func (s *CalcServiceImpl) ListCalculations(ctx context.Context, filter paycalc.CalculationFilter) (paycalc.ListCalculationResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	calculations, totalCount, err := s.calcRepo.List(ctx, filter)
	if err != nil {
		return paycalc.ListCalculationResponse{}, err
	}

	data := make([]paycalc.PayCalculationResponse, 0, len(calculations))
	for _, calc := range calculations {
		data = append(data, mapToCalculationResponse(calc))
	}

	return paycalc.ListCalculationResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func mapToCalculationResponse(c paycalc.PayCalculation) paycalc.PayCalculationResponse {
	return paycalc.PayCalculationResponse{
		ID:              c.ID,
		UserID:          c.UserID,
		PayPeriodStart:  c.PayPeriodStart.Format("2006-01-02"),
		PayPeriodEnd:    c.PayPeriodEnd.Format("2006-01-02"),
		RegularHours:    c.RegularHours,
		OvertimeHours:   c.OvertimeHours,
		DoubleTimeHours: c.DoubleTimeHours,
		TotalAllowances: c.TotalAllowances,
		PayComponents:   c.PayComponents,
		RulesApplied:    c.RulesApplied,
		TimeEntryID:     c.TimeEntryID,
		CalculatedByID:  c.CalculatedByID,
		CalculatedAt:    c.CalculatedAt.Format(time.RFC3339),
	}
}
