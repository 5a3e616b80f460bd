package ports

import (
	"context"
	"time"

	"github.com/workpulse/attendance-system/internal/core/domain"
)

// HistoryInput carries the parameters of the employee history endpoint.
type HistoryInput struct {
	UserID   string
	DateFrom time.Time // zero = open
	DateTo   time.Time // zero = open
	Page     int       // 1-based, defaults to 1
	Limit    int       // defaults to 10, capped at 100
}

// HistoryResult is a page of records plus pagination metadata.
type HistoryResult struct {
	Records []*domain.AttendanceRecord
	Total   int64
	Page    int
	Limit   int
	Pages   int
}

// MonthlySummary aggregates one employee's records for a calendar month.
// Absent is always 0: absence is never stored per employee, only derived
// against headcount in day-level snapshots.
type MonthlySummary struct {
	TotalDays  int     `json:"total_days"`
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Late       int     `json:"late"`
	HalfDay    int     `json:"half_day"`
	TotalHours float64 `json:"total_hours"`
}

// EmployeeDashboard is the employee-facing composite view: today's record,
// current-month stats, and the trailing week of records.
type EmployeeDashboard struct {
	Today      *domain.AttendanceRecord   `json:"today_status"`
	MonthStats MonthlySummary             `json:"month_stats"`
	Recent     []*domain.AttendanceRecord `json:"recent_attendance"`
}

// AttendanceService defines the employee-scoped use cases.
type AttendanceService interface {
	// CheckIn creates today's record for the user. Fails with
	// domain.ErrAlreadyCheckedIn when a record already exists.
	CheckIn(ctx context.Context, userID string) (*domain.AttendanceRecord, error)
	// CheckOut closes today's record and recomputes its derived fields.
	// Fails with domain.ErrNoCheckInToday or domain.ErrAlreadyCheckedOut.
	CheckOut(ctx context.Context, userID string) (*domain.AttendanceRecord, error)
	// TodayStatus returns today's record, or nil when the user has not
	// checked in. Absence of a record is not an error.
	TodayStatus(ctx context.Context, userID string) (*domain.AttendanceRecord, error)
	// History returns the user's records, date descending, paginated.
	History(ctx context.Context, input HistoryInput) (*HistoryResult, error)
	// Summary aggregates the user's records for the given month.
	// Zero month/year default to the current month.
	Summary(ctx context.Context, userID string, month time.Month, year int) (*MonthlySummary, error)
	// Dashboard builds the employee composite view.
	Dashboard(ctx context.Context, userID string) (*EmployeeDashboard, error)
}
