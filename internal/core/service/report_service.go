package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/workpulse/attendance-system/internal/core/domain"
	"github.com/workpulse/attendance-system/internal/core/ports"
	"github.com/workpulse/attendance-system/pkg/clock"
)

const (
	defaultListLimit  = 20
	recentRecordCount = 10
	trendDays         = 7
)

// StatsCache abstracts the short-lived store for the manager dashboard
// (Redis). Get returns (nil, nil) on a miss.
type StatsCache interface {
	Get(ctx context.Context) (*ports.DashboardStats, error)
	Set(ctx context.Context, stats *ports.DashboardStats) error
}

// ReportService implements the manager-scoped aggregations. Composite views
// issue several store reads without cross-query isolation; an employee
// checking in mid-aggregation may appear in some sub-results and not others.
type ReportService struct {
	records ports.AttendanceRepository
	users   ports.UserRepository
	cache   StatsCache // optional
	clock   clock.Clock
	logger  zerolog.Logger
}

func NewReportService(
	records ports.AttendanceRepository,
	users ports.UserRepository,
	cache StatsCache,
	clk clock.Clock,
	logger zerolog.Logger,
) *ReportService {
	return &ReportService{records: records, users: users, cache: cache, clock: clk, logger: logger}
}

// ListAll returns a filtered page of records across all employees. The
// department filter is part of the store query, so it applies before
// pagination and filtered pages come back full.
func (s *ReportService) ListAll(ctx context.Context, input ports.ListAllInput) (*ports.ListAllResult, error) {
	status := domain.Status(input.Status)
	if input.Status != "" && !domain.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, input.Status)
	}

	page, limit := normalizePage(input.Page, input.Limit, defaultListLimit)

	records, total, err := s.records.List(ctx, ports.ListFilter{
		Status:     status,
		Department: input.Department,
		DateFrom:   input.DateFrom,
		DateTo:     input.DateTo,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}

	return &ports.ListAllResult{
		Records: records,
		Total:   total,
		Page:    page,
		Limit:   limit,
		Pages:   pageCount(total, limit),
	}, nil
}

// EmployeeHistory returns all records for one employee, unpaginated.
func (s *ReportService) EmployeeHistory(ctx context.Context, userID string, from, to time.Time) ([]*domain.AttendanceRecord, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("employee history: %w", err)
	}

	records, _, err := s.records.ListByUser(ctx, ports.HistoryFilter{
		UserID:   userID,
		DateFrom: from,
		DateTo:   to,
	})
	if err != nil {
		return nil, fmt.Errorf("employee history: %w", err)
	}
	return records, nil
}

// MonthlySummary aggregates the month across all employees with a
// per-department breakdown.
func (s *ReportService) MonthlySummary(ctx context.Context, month time.Month, year int) (*ports.OrgSummary, error) {
	now := s.clock.Now()
	if month == 0 || year == 0 {
		month, year = now.Month(), now.Year()
	}
	from, to := domain.MonthWindow(year, month, now.Location())

	records, err := s.records.ListRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("monthly summary: %w", err)
	}

	headcount, err := s.users.CountByRole(ctx, domain.RoleEmployee)
	if err != nil {
		return nil, fmt.Errorf("monthly summary: %w", err)
	}

	summary := &ports.OrgSummary{
		TotalRecords:   len(records),
		TotalEmployees: headcount,
		Departments:    make(map[string]ports.DepartmentBreakdown),
	}
	for _, rec := range records {
		dept := summary.Departments[rec.Employee.Department]
		dept.Total++
		switch rec.Status {
		case domain.StatusPresent:
			summary.Present++
			dept.Present++
		case domain.StatusLate:
			summary.Late++
			dept.Late++
		case domain.StatusHalfDay:
			summary.HalfDay++
			dept.HalfDay++
		}
		summary.Departments[rec.Employee.Department] = dept
	}
	return summary, nil
}

// TodaySnapshot builds the day-level organisation view. Present counts both
// on-time and late arrivals; absent is headcount minus today's records.
func (s *ReportService) TodaySnapshot(ctx context.Context) (*ports.TodaySnapshot, error) {
	day, _ := domain.DayWindow(s.clock.Now())

	records, err := s.records.ListDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("today snapshot: %w", err)
	}

	headcount, err := s.users.CountByRole(ctx, domain.RoleEmployee)
	if err != nil {
		return nil, fmt.Errorf("today snapshot: %w", err)
	}

	snapshot := &ports.TodaySnapshot{
		TotalEmployees: headcount,
		Absent:         headcount - int64(len(records)),
		Records:        records,
	}
	for _, rec := range records {
		if rec.Status == domain.StatusPresent || rec.Status == domain.StatusLate {
			snapshot.Present++
		}
		if rec.Status == domain.StatusLate {
			snapshot.Late++
		}
	}
	return snapshot, nil
}

// DashboardStats builds the manager composite view: today's snapshot, the
// trailing 7-day trend, and per-department presence. A short-lived cache
// absorbs repeated dashboard loads; cache failures fall back to recompute.
func (s *ReportService) DashboardStats(ctx context.Context) (*ports.DashboardStats, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("dashboard cache read failed, recomputing")
		} else if cached != nil {
			return cached, nil
		}
	}

	now := s.clock.Now()
	today, _ := domain.DayWindow(now)

	headcount, err := s.users.CountByRole(ctx, domain.RoleEmployee)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	todayRecords, err := s.records.ListDay(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	// One count per day, oldest to newest.
	trend := make([]ports.TrendPoint, 0, trendDays)
	for i := trendDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		count, err := s.records.CountDay(ctx, day)
		if err != nil {
			return nil, fmt.Errorf("dashboard stats: trend day %s: %w", day.Format("2006-01-02"), err)
		}
		trend = append(trend, ports.TrendPoint{Date: day.Format("Jan 2"), Present: count})
	}

	employees, err := s.users.ListByRole(ctx, domain.RoleEmployee)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	departments := make([]ports.DepartmentPresence, 0)
	deptIndex := make(map[string]int)
	for _, emp := range employees {
		idx, ok := deptIndex[emp.Department]
		if !ok {
			idx = len(departments)
			deptIndex[emp.Department] = idx
			departments = append(departments, ports.DepartmentPresence{Name: emp.Department})
		}
		departments[idx].Headcount++
	}
	lateToday := 0
	for _, rec := range todayRecords {
		if idx, ok := deptIndex[rec.Employee.Department]; ok {
			departments[idx].PresentToday++
		}
		if rec.Status == domain.StatusLate {
			lateToday++
		}
	}

	recent := todayRecords
	if len(recent) > recentRecordCount {
		recent = recent[:recentRecordCount]
	}

	stats := &ports.DashboardStats{
		TotalEmployees: headcount,
		TodayPresent:   len(todayRecords),
		TodayAbsent:    headcount - int64(len(todayRecords)),
		TodayLate:      lateToday,
		WeeklyTrend:    trend,
		Departments:    departments,
		Recent:         recent,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, stats); err != nil {
			s.logger.Warn().Err(err).Msg("dashboard cache write failed")
		}
	}
	return stats, nil
}

// ExportRange returns all records in [from, to] for CSV export.
func (s *ReportService) ExportRange(ctx context.Context, from, to time.Time) ([]*domain.AttendanceRecord, error) {
	records, err := s.records.ListRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return records, nil
}
