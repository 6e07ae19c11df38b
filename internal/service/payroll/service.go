package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/attendance"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/employee"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/leave"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/master/timing"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/payroll"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/calendar"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/database"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/jwt"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/sse"
	"github.com/payroll-hub/payroll-backend-go/internal/service/master"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	defaultReportLimit = 50
	// batchSize is the employee page size of whole-month runs.
	batchSize = 100
)

type PayrollServiceImpl struct {
	tx database.Transactor
	payroll.PayrollRepository
	employeeRepo       employee.EmployeeRepository
	officePositionRepo timing.OfficePositionRepository
	attendanceRepo     attendance.AttendanceRepository
	leaveRepo          leave.ApprovedLeaveRepository
	calendar           calendar.Calendar
	normalizer         civil.Normalizer
	events             sse.Publisher
	classifier         *Classifier
	calculator         *Calculator
	workers            int
	logger             *slog.Logger
}

func NewPayrollService(
	tx database.Transactor,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	officePositionRepo timing.OfficePositionRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.ApprovedLeaveRepository,
	cal calendar.Calendar,
	normalizer civil.Normalizer,
	events sse.Publisher,
	workers int,
	logger *slog.Logger,
) *PayrollServiceImpl {
	if events == nil {
		events = sse.Discard{}
	}
	return &PayrollServiceImpl{
		tx:                 tx,
		PayrollRepository:  payrollRepo,
		employeeRepo:       employeeRepo,
		officePositionRepo: officePositionRepo,
		attendanceRepo:     attendanceRepo,
		leaveRepo:          leaveRepo,
		calendar:           cal,
		normalizer:         normalizer,
		events:             events,
		classifier:         NewClassifier(),
		calculator:         NewCalculator(),
		workers:            max(workers, 1),
		logger:             logger,
	}
}

var _ payroll.PayrollService = (*PayrollServiceImpl)(nil)

// period is a validated date range inside one month with its working calendar.
type period struct {
	from, to civil.Date
	// monthDays sets the per-day rate; rangeDays decides missing days.
	monthDays payroll.WorkingDays
	rangeDays payroll.WorkingDays
	workdays  map[civil.Date]bool
}

func (p period) year() int  { return p.from.Year }
func (p period) month() int { return int(p.from.Month) }

func (p period) isFullMonth() bool {
	first, last := civil.MonthBounds(p.from.Year, p.from.Month)
	return p.from == first && p.to == last
}

// evaluation is one employee's classified and priced period.
type evaluation struct {
	employee employee.Employee
	timing   payroll.TimingConfig
	records  []attendance.Record
	metrics  payroll.AttendanceMetrics
	result   payroll.PayrollResult
}

// run carries the identity of one report or generation for progress events.
type run struct {
	id     string
	key    string
	events sse.Publisher
	year   int
	month  int
	total  int
	done   atomic.Int64
}

func (s *PayrollServiceImpl) newRun(ctx context.Context, p period) *run {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	r := &run{id: id.String(), events: s.events, year: p.year(), month: p.month()}
	// Cron and CLI runs have no caller to notify.
	if claims, err := jwt.ClaimsFromContext(ctx); err == nil {
		r.key = claims.UserID
	}
	return r
}

func (r *run) publish(name string, errMsg string) {
	if r.key == "" {
		return
	}
	r.events.Publish(r.key, sse.Event{Name: name, Data: payroll.RunEvent{
		RunID: r.id,
		Year:  r.year,
		Month: r.month,
		Done:  int(r.done.Load()),
		Total: r.total,
		Error: errMsg,
	}})
}

func (r *run) step() {
	r.done.Add(1)
	r.publish(payroll.EventRunProgress, "")
}

// resolvePeriod parses a date range and loads the working calendar of its month.
func (s *PayrollServiceImpl) resolvePeriod(ctx context.Context, fromDate, toDate string) (period, error) {
	from, err := s.normalizer.ParseDate(fromDate)
	if err != nil {
		return period{}, err
	}
	to, err := s.normalizer.ParseDate(toDate)
	if err != nil {
		return period{}, err
	}
	if to.Before(from) {
		return period{}, payroll.ErrInvalidDateRange
	}
	if to.Year != from.Year || to.Month != from.Month {
		return period{}, payroll.ErrRangeSpansMonths
	}
	return s.loadPeriod(ctx, from, to)
}

func (s *PayrollServiceImpl) monthPeriod(ctx context.Context, year, month int) (period, error) {
	from, to := civil.MonthBounds(year, time.Month(month))
	return s.loadPeriod(ctx, from, to)
}

func (s *PayrollServiceImpl) loadPeriod(ctx context.Context, from, to civil.Date) (period, error) {
	info, err := s.calendar.GetMonthInfo(ctx, from.Year, from.Month)
	if err != nil {
		return period{}, fmt.Errorf("failed to load working days: %w", err)
	}

	p := period{from: from, to: to, workdays: make(map[civil.Date]bool)}
	dates := info.WorkingDates()
	p.monthDays = payroll.WorkingDays{Count: len(dates), Days: dates}
	for _, d := range dates {
		p.workdays[d] = true
		if !d.Before(from) && !d.After(to) {
			p.rangeDays.Days = append(p.rangeDays.Days, d)
		}
	}
	p.rangeDays.Count = len(p.rangeDays.Days)
	return p, nil
}

// evaluate classifies and prices every employee of the batch concurrently.
// Results keep the order of employees.
func (s *PayrollServiceImpl) evaluate(ctx context.Context, p period, employees []employee.Employee, r *run) ([]evaluation, error) {
	if len(employees) == 0 {
		return nil, nil
	}

	ids := make([]string, len(employees))
	for i, emp := range employees {
		ids[i] = emp.ID
	}

	records, err := s.attendanceRepo.GetByEmployeesRange(ctx, ids, p.from, p.to)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}
	leaves, err := s.leaveRepo.DatesByEmployees(ctx, ids, p.from, p.to)
	if err != nil {
		return nil, fmt.Errorf("failed to load approved leaves: %w", err)
	}
	timings, err := s.resolveTimings(ctx, employees)
	if err != nil {
		return nil, err
	}

	results := make([]evaluation, len(employees))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, emp := range employees {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			cfg := timings[timingKey(emp)]
			ordered := attendance.Chronologically(records[emp.ID])
			metrics := s.classifier.Classify(cfg, ordered, payroll.NewApprovedLeaveSet(leaves[emp.ID]...))
			metrics = WithMissingDays(metrics, p.rangeDays)

			results[i] = evaluation{
				employee: emp,
				timing:   cfg,
				records:  ordered.Records(),
				metrics:  metrics,
				result:   s.calculator.Calculate(emp.MonthlySalary, metrics, p.monthDays),
			}
			if r != nil {
				r.step()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

type pairKey struct{ office, position string }

func timingKey(emp employee.Employee) pairKey {
	var k pairKey
	if emp.OfficeID != nil {
		k.office = *emp.OfficeID
	}
	if emp.PositionID != nil {
		k.position = *emp.PositionID
	}
	return k
}

// resolveTimings looks each distinct office/position pair up once.
func (s *PayrollServiceImpl) resolveTimings(ctx context.Context, employees []employee.Employee) (map[pairKey]payroll.TimingConfig, error) {
	timings := make(map[pairKey]payroll.TimingConfig)
	for _, emp := range employees {
		key := timingKey(emp)
		if _, ok := timings[key]; ok {
			continue
		}
		cfg, _, err := master.ResolveTiming(ctx, s.officePositionRepo, emp.OfficeID, emp.PositionID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve timing for %s: %w", emp.ID, err)
		}
		timings[key] = cfg
	}
	return timings, nil
}

// save replaces the month's snapshots for the evaluated employees in one transaction.
func (s *PayrollServiceImpl) save(ctx context.Context, p period, evals []evaluation, runID string) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		for _, e := range evals {
			if _, err := s.PayrollRepository.UpsertRecord(ctx, toRecord(p, e, runID)); err != nil {
				return fmt.Errorf("failed to save payroll for %s: %w", e.employee.ID, err)
			}
		}
		return nil
	})
}

func toRecord(p period, e evaluation, runID string) payroll.PayrollRecord {
	m := e.metrics
	return payroll.PayrollRecord{
		EmployeeID:       e.employee.ID,
		PeriodMonth:      p.month(),
		PeriodYear:       p.year(),
		WorkingDays:      p.monthDays.Count,
		PresentDays:      m.PresentDays,
		HalfDays:         m.HalfDays,
		LateDays:         m.LateDays,
		AbsentDays:       m.RegularAbsentDays,
		ExcessLeaves:     m.ExcessLeaves,
		ApprovedLeaves:   m.ApprovedLeaveDays,
		MissingDays:      m.MissingDays,
		BaseSalary:       payroll.RoundMoney(e.result.BaseSalary),
		DeductionsAmount: payroll.RoundMoney(e.result.TotalDeductions),
		NetSalary:        payroll.RoundMoney(e.result.NetSalary),
		RunID:            &runID,
	}
}

func toRow(p period, e evaluation) payroll.PayrollReportRow {
	m, res := e.metrics, e.result
	row := payroll.PayrollReportRow{
		EmployeeID:      e.employee.ID,
		Name:            e.employee.Name,
		Email:           e.employee.Email,
		OfficeName:      e.employee.OfficeName,
		PositionName:    e.employee.PositionName,
		MonthlySalary:   payroll.RoundMoney(res.BaseSalary),
		PerDaySalary:    payroll.RoundMoney(res.PerDaySalary),
		WorkingDays:     p.monthDays.Count,
		PresentDays:     m.PresentDays,
		HalfDays:        m.HalfDays,
		LateDays:        m.LateDays,
		AbsentDays:      m.RegularAbsentDays,
		ExcessLeaves:    m.ExcessLeaves,
		ApprovedLeaves:  m.ApprovedLeaveDays,
		MissingDays:     m.MissingDays,
		Deductions:      payroll.NewDeductionBreakdown(res),
		TotalDeductions: payroll.RoundMoney(res.TotalDeductions),
		NetSalary:       payroll.RoundMoney(res.NetSalary),
		DayStatus:       make(map[civil.Date]payroll.DayCode, len(m.DayStatus)),
		StreakMasks:     m.StreakMasks,
	}
	for _, d := range m.DayStatus {
		row.DayStatus[d.Date] = d.Code
	}
	return row
}

func summarize(evals []evaluation) payroll.ReportSummary {
	sum := payroll.ReportSummary{
		TotalEmployees:  len(evals),
		TotalBaseSalary: decimal.Zero,
		TotalDeductions: decimal.Zero,
		TotalNetSalary:  decimal.Zero,
	}
	for _, e := range evals {
		sum.TotalBaseSalary = sum.TotalBaseSalary.Add(e.result.BaseSalary)
		sum.TotalDeductions = sum.TotalDeductions.Add(e.result.TotalDeductions)
		sum.TotalNetSalary = sum.TotalNetSalary.Add(e.result.NetSalary)
	}
	sum.TotalBaseSalary = payroll.RoundMoney(sum.TotalBaseSalary)
	sum.TotalDeductions = payroll.RoundMoney(sum.TotalDeductions)
	sum.TotalNetSalary = payroll.RoundMoney(sum.TotalNetSalary)
	return sum
}

func newReportResponse(p period, runID string, evals []evaluation) payroll.PayrollReportResponse {
	rows := make([]payroll.PayrollReportRow, 0, len(evals))
	for _, e := range evals {
		rows = append(rows, toRow(p, e))
	}
	return payroll.PayrollReportResponse{
		RunID:        runID,
		FromDate:     p.from,
		ToDate:       p.to,
		Month:        p.month(),
		Year:         p.year(),
		WorkingDays:  p.monthDays.Count,
		WorkingDates: p.monthDays.Days,
		Rows:         rows,
		Summary:      summarize(evals),
	}
}

// GenerateReport implements payroll.PayrollService.
func (s *PayrollServiceImpl) GenerateReport(ctx context.Context, req payroll.PayrollReportRequest) (payroll.PayrollReportResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollReportResponse{}, err
	}
	p, err := s.resolvePeriod(ctx, req.FromDate, req.ToDate)
	if err != nil {
		return payroll.PayrollReportResponse{}, err
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 {
		req.Limit = defaultReportLimit
	}

	// Only employees who punched in the range are reported.
	employees, total, err := s.employeeRepo.List(ctx, employee.Filter{
		OfficeID:   req.OfficeID,
		PositionID: req.PositionID,
		Page:       req.Page,
		Limit:      req.Limit,
		AttendedIn: &civil.Range{From: p.from, To: p.to},
	})
	if err != nil {
		return payroll.PayrollReportResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	r := s.newRun(ctx, p)
	r.total = len(employees)
	r.publish(payroll.EventRunStarted, "")

	evals, err := s.evaluate(ctx, p, employees, r)
	if err != nil {
		r.publish(payroll.EventRunFailed, err.Error())
		return payroll.PayrollReportResponse{}, err
	}

	resp := newReportResponse(p, r.id, evals)
	// Partial ranges are previews; only a whole month is a payroll.
	if p.isFullMonth() {
		if err := s.save(ctx, p, evals, r.id); err != nil {
			r.publish(payroll.EventRunFailed, err.Error())
			return payroll.PayrollReportResponse{}, err
		}
		resp.Saved = true
	}
	r.publish(payroll.EventRunCompleted, "")

	resp.TotalCount = total
	resp.Page = req.Page
	resp.Limit = req.Limit
	resp.TotalPages = int(math.Ceil(float64(total) / float64(req.Limit)))

	s.logger.Info("payroll report generated",
		slog.String("run_id", r.id),
		slog.String("from", p.from.String()),
		slog.String("to", p.to.String()),
		slog.Int("employees", len(evals)),
		slog.Bool("saved", resp.Saved),
	)
	return resp, nil
}

// GeneratePayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) GeneratePayroll(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.PayrollReportResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollReportResponse{}, err
	}
	p, err := s.monthPeriod(ctx, req.Year, req.Month)
	if err != nil {
		return payroll.PayrollReportResponse{}, err
	}

	r := s.newRun(ctx, p)
	evals, err := s.runMonth(ctx, p, employee.Filter{OfficeID: req.OfficeID, PositionID: req.PositionID}, r)
	if err != nil {
		return payroll.PayrollReportResponse{}, err
	}

	resp := newReportResponse(p, r.id, evals)
	resp.Saved = true
	resp.TotalCount = int64(len(evals))
	resp.Page = 1
	resp.Limit = len(evals)
	resp.TotalPages = 1
	return resp, nil
}

// RefreshMonth implements payroll.PayrollService and cron.MonthRefresher.
func (s *PayrollServiceImpl) RefreshMonth(ctx context.Context, year, month int) (int, error) {
	req := payroll.PeriodRequest{Year: year, Month: month}
	if err := req.Validate(); err != nil {
		return 0, err
	}
	p, err := s.monthPeriod(ctx, year, month)
	if err != nil {
		return 0, err
	}

	active := employee.StatusActive
	evals, err := s.runMonth(ctx, p, employee.Filter{Status: &active}, s.newRun(ctx, p))
	if err != nil {
		return 0, err
	}
	return len(evals), nil
}

// runMonth pages through every matching employee, saving each batch's snapshots.
func (s *PayrollServiceImpl) runMonth(ctx context.Context, p period, filter employee.Filter, r *run) ([]evaluation, error) {
	filter.Limit = batchSize
	filter.Page = 1

	var all []evaluation
	started := false
	for {
		employees, total, err := s.employeeRepo.List(ctx, filter)
		if err != nil {
			r.publish(payroll.EventRunFailed, err.Error())
			return nil, fmt.Errorf("failed to list employees: %w", err)
		}
		if !started {
			r.total = int(total)
			r.publish(payroll.EventRunStarted, "")
			started = true
		}

		evals, err := s.evaluate(ctx, p, employees, r)
		if err == nil {
			err = s.save(ctx, p, evals, r.id)
		}
		if err != nil {
			r.publish(payroll.EventRunFailed, err.Error())
			return nil, err
		}
		all = append(all, evals...)

		if len(employees) < batchSize || int64(len(all)) >= total {
			break
		}
		filter.Page++
	}
	r.publish(payroll.EventRunCompleted, "")

	s.logger.Info("payroll generated",
		slog.String("run_id", r.id),
		slog.Int("year", p.year()),
		slog.Int("month", p.month()),
		slog.Int("employees", len(all)),
	)
	return all, nil
}

func (s *PayrollServiceImpl) getEmployee(ctx context.Context, id string) (employee.Employee, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, payroll.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// GetEmployeeDetails implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetEmployeeDetails(ctx context.Context, req payroll.EmployeeDetailsRequest) (payroll.EmployeePayrollDetailsResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.EmployeePayrollDetailsResponse{}, err
	}
	p, err := s.resolvePeriod(ctx, req.FromDate, req.ToDate)
	if err != nil {
		return payroll.EmployeePayrollDetailsResponse{}, err
	}
	emp, err := s.getEmployee(ctx, req.EmployeeID)
	if err != nil {
		return payroll.EmployeePayrollDetailsResponse{}, err
	}

	evals, err := s.evaluate(ctx, p, []employee.Employee{emp}, nil)
	if err != nil {
		return payroll.EmployeePayrollDetailsResponse{}, err
	}
	e := evals[0]

	return payroll.EmployeePayrollDetailsResponse{
		FromDate: p.from,
		ToDate:   p.to,
		Timing: payroll.TimingResponse{
			ReportingTime: e.timing.ReportingTime.String(),
			DutyHours:     e.timing.DutyHours(),
		},
		Summary:   toRow(p, e),
		DailyRows: dailyRows(p, e),
	}, nil
}

// dailyRows lists every classified date plus the working days nothing
// was recorded for, in date order.
func dailyRows(p period, e evaluation) []payroll.DailyRow {
	byDate := make(map[civil.Date]attendance.Record, len(e.records))
	for _, rec := range e.records {
		byDate[rec.Date] = rec
	}

	rows := make([]payroll.DailyRow, 0, len(e.metrics.DayStatus)+e.metrics.MissingDays)
	for _, ds := range e.metrics.DayStatus {
		rec := byDate[ds.Date]
		mask := e.metrics.StreakMasks[ds.Date]
		code := ds.Code
		rows = append(rows, payroll.DailyRow{
			Date:         ds.Date,
			PunchIn:      rec.PunchIn,
			PunchOut:     rec.PunchOut,
			WorkingHours: workingHours(rec),
			Code:         &code,
			WorkingDay:   p.workdays[ds.Date],
			Present:      code.IsFullDay() || code.IsHalfDay(),
			Late:         code.IsLate(),
			HalfDay:      code.IsHalfDay(),
			Absent:       code == payroll.DayAbsent && mask.Excess == 0,
			Excess:       mask.Excess == 1,
			Approved:     code == payroll.DayApprovedLeave,
		})
	}
	for _, d := range MissingDates(e.metrics, p.rangeDays) {
		rows = append(rows, payroll.DailyRow{
			Date:         d,
			WorkingHours: decimal.Zero,
			WorkingDay:   true,
			Missing:      true,
		})
	}

	slices.SortFunc(rows, func(a, b payroll.DailyRow) int {
		return a.Date.Compare(b.Date)
	})
	return rows
}

// workingHours is the punch span in hours, or zero when either punch is unusable.
func workingHours(rec attendance.Record) decimal.Decimal {
	in, okIn := civil.ParseTimeOfDay(rec.PunchIn)
	out, okOut := civil.ParseTimeOfDay(rec.PunchOut)
	if !okIn || !okOut {
		return decimal.Zero
	}
	workedMin := int(out.Sub(in) / time.Minute)
	if workedMin <= 0 || workedMin > payroll.MaxWorkedMinutes {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(workedMin)).Div(decimal.NewFromInt(60)).Round(2)
}

// GetPendingAttendanceDays implements payroll.PayrollService. Approved
// leave does not clear a pending day.
func (s *PayrollServiceImpl) GetPendingAttendanceDays(ctx context.Context, req payroll.PendingDaysRequest) (payroll.PendingDaysResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PendingDaysResponse{}, err
	}
	if _, err := s.getEmployee(ctx, req.EmployeeID); err != nil {
		return payroll.PendingDaysResponse{}, err
	}
	p, err := s.monthPeriod(ctx, req.Year, req.Month)
	if err != nil {
		return payroll.PendingDaysResponse{}, err
	}

	records, err := s.attendanceRepo.GetByEmployeeRange(ctx, req.EmployeeID, p.from, p.to)
	if err != nil {
		return payroll.PendingDaysResponse{}, fmt.Errorf("failed to load attendance: %w", err)
	}
	recorded := make(map[civil.Date]bool, len(records))
	for _, rec := range records {
		recorded[rec.Date] = true
	}

	pending := make([]civil.Date, 0)
	for _, d := range p.monthDays.Days {
		if !recorded[d] {
			pending = append(pending, d)
		}
	}

	return payroll.PendingDaysResponse{
		EmployeeID:   req.EmployeeID,
		Year:         req.Year,
		Month:        req.Month,
		WorkingDays:  p.monthDays.Count,
		RecordedDays: p.monthDays.Count - len(pending),
		PendingCount: len(pending),
		PendingDays:  pending,
	}, nil
}

// GetAttendanceDaysInMonth implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetAttendanceDaysInMonth(ctx context.Context, req payroll.PeriodRequest) (payroll.AttendanceDaysResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.AttendanceDaysResponse{}, err
	}

	from, to := civil.MonthBounds(req.Year, time.Month(req.Month))
	days, err := s.attendanceRepo.DistinctDates(ctx, from, to)
	if err != nil {
		return payroll.AttendanceDaysResponse{}, err
	}
	if days == nil {
		days = []civil.Date{}
	}
	return payroll.AttendanceDaysResponse{Year: req.Year, Month: req.Month, Count: len(days), Days: days}, nil
}

// ListRecords implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListRecords(ctx context.Context, req payroll.PeriodRequest) ([]payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	records, err := s.PayrollRepository.ListRecords(ctx, req.Month, req.Year)
	if err != nil {
		return nil, err
	}
	resp := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, r.ToResponse())
	}
	return resp, nil
}

// GetSummary implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetSummary(ctx context.Context, req payroll.PeriodRequest) (payroll.PayrollSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}

	sum, err := s.PayrollRepository.Summary(ctx, req.Month, req.Year)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}
	return payroll.PayrollSummaryResponse{
		PeriodMonth:     req.Month,
		PeriodYear:      req.Year,
		TotalEmployees:  sum.TotalEmployees,
		TotalBaseSalary: payroll.RoundMoney(sum.TotalBaseSalary),
		TotalDeductions: payroll.RoundMoney(sum.TotalDeductions),
		TotalNetSalary:  payroll.RoundMoney(sum.TotalNetSalary),
	}, nil
}
