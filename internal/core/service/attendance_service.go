package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/workpulse/attendance-system/internal/core/domain"
	"github.com/workpulse/attendance-system/internal/core/ports"
	"github.com/workpulse/attendance-system/pkg/clock"
)

const (
	defaultHistoryLimit = 10
	maxPageLimit        = 100
)

// AttendanceService implements the employee-scoped use cases. The current
// time is an injected dependency so check-in/out instants are deterministic
// under test.
type AttendanceService struct {
	records ports.AttendanceRepository
	users   ports.UserRepository
	clock   clock.Clock
	logger  zerolog.Logger
}

func NewAttendanceService(
	records ports.AttendanceRepository,
	users ports.UserRepository,
	clk clock.Clock,
	logger zerolog.Logger,
) *AttendanceService {
	return &AttendanceService{records: records, users: users, clock: clk, logger: logger}
}

// CheckIn creates today's record for the user with status and hours derived
// by the classifier. The pre-check keeps the common duplicate case cheap;
// the unique (employee, day) index in the store closes the race between two
// concurrent first check-ins.
func (s *AttendanceService) CheckIn(ctx context.Context, userID string) (*domain.AttendanceRecord, error) {
	now := s.clock.Now()
	day, _ := domain.DayWindow(now)

	if _, err := s.records.FindByUserAndDay(ctx, userID, day); err == nil {
		return nil, domain.ErrAlreadyCheckedIn
	} else if !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, fmt.Errorf("check in: %w", err)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check in: %w", err)
	}

	rec := &domain.AttendanceRecord{
		Employee: domain.EmployeeRef{
			UserID:     user.ID,
			EmployeeID: user.EmployeeID,
			Name:       user.Name,
			Email:      user.Email,
			Department: user.Department,
		},
		Date:        day,
		CheckInTime: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	rec.Reclassify()

	if err := s.records.Insert(ctx, rec); err != nil {
		if errors.Is(err, domain.ErrAlreadyCheckedIn) {
			return nil, domain.ErrAlreadyCheckedIn
		}
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to insert attendance record")
		return nil, err
	}

	s.logger.Info().
		Str("user_id", userID).
		Str("employee_id", rec.Employee.EmployeeID).
		Str("status", string(rec.Status)).
		Msg("checked in")

	return rec, nil
}

// CheckOut closes today's record and recomputes the derived fields. A
// check-out instant before the recorded check-in is rejected outright
// rather than producing a negative duration.
func (s *AttendanceService) CheckOut(ctx context.Context, userID string) (*domain.AttendanceRecord, error) {
	now := s.clock.Now()
	day, _ := domain.DayWindow(now)

	rec, err := s.records.FindByUserAndDay(ctx, userID, day)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrNoCheckInToday
		}
		return nil, fmt.Errorf("check out: %w", err)
	}

	if rec.CheckOutTime != nil {
		return nil, domain.ErrAlreadyCheckedOut
	}
	if now.Before(rec.CheckInTime) {
		return nil, fmt.Errorf("%w: check-in at %s", domain.ErrCheckOutBeforeCheckIn, rec.CheckInTime.Format(time.RFC3339))
	}

	rec.CheckOutTime = &now
	rec.Reclassify()
	rec.UpdatedAt = now

	if err := s.records.Update(ctx, rec); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to update attendance record")
		return nil, err
	}

	s.logger.Info().
		Str("user_id", userID).
		Str("status", string(rec.Status)).
		Float64("total_hours", rec.TotalHours).
		Msg("checked out")

	return rec, nil
}

// TodayStatus returns today's record, or nil when none exists.
func (s *AttendanceService) TodayStatus(ctx context.Context, userID string) (*domain.AttendanceRecord, error) {
	day, _ := domain.DayWindow(s.clock.Now())

	rec, err := s.records.FindByUserAndDay(ctx, userID, day)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("today status: %w", err)
	}
	return rec, nil
}

// History returns the user's records, date descending, paginated.
func (s *AttendanceService) History(ctx context.Context, input ports.HistoryInput) (*ports.HistoryResult, error) {
	page, limit := normalizePage(input.Page, input.Limit, defaultHistoryLimit)

	records, total, err := s.records.ListByUser(ctx, ports.HistoryFilter{
		UserID:   input.UserID,
		DateFrom: input.DateFrom,
		DateTo:   input.DateTo,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}

	return &ports.HistoryResult{
		Records: records,
		Total:   total,
		Page:    page,
		Limit:   limit,
		Pages:   pageCount(total, limit),
	}, nil
}

// Summary aggregates the user's records for the month. Absent stays 0:
// there is no authoritative per-employee absence record to count from.
func (s *AttendanceService) Summary(ctx context.Context, userID string, month time.Month, year int) (*ports.MonthlySummary, error) {
	now := s.clock.Now()
	if month == 0 || year == 0 {
		month, year = now.Month(), now.Year()
	}
	from, to := domain.MonthWindow(year, month, now.Location())

	records, _, err := s.records.ListByUser(ctx, ports.HistoryFilter{
		UserID:   userID,
		DateFrom: from,
		DateTo:   to,
	})
	if err != nil {
		return nil, fmt.Errorf("monthly summary: %w", err)
	}

	return summarize(records), nil
}

// Dashboard builds the employee composite view: today's record, the current
// month's stats, and the trailing 7 days of records.
func (s *AttendanceService) Dashboard(ctx context.Context, userID string) (*ports.EmployeeDashboard, error) {
	today, err := s.TodayStatus(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	monthStats, err := s.Summary(ctx, userID, now.Month(), now.Year())
	if err != nil {
		return nil, err
	}

	recent, _, err := s.records.ListByUser(ctx, ports.HistoryFilter{
		UserID:   userID,
		DateFrom: now.AddDate(0, 0, -7),
	})
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	return &ports.EmployeeDashboard{
		Today:      today,
		MonthStats: *monthStats,
		Recent:     recent,
	}, nil
}

func summarize(records []*domain.AttendanceRecord) *ports.MonthlySummary {
	sum := &ports.MonthlySummary{TotalDays: len(records)}
	for _, rec := range records {
		switch rec.Status {
		case domain.StatusPresent:
			sum.Present++
		case domain.StatusLate:
			sum.Late++
		case domain.StatusHalfDay:
			sum.HalfDay++
		}
		sum.TotalHours += rec.TotalHours
	}
	sum.TotalHours = math.Round(sum.TotalHours*100) / 100
	return sum
}

func normalizePage(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func pageCount(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
