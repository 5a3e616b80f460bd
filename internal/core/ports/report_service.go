package ports

import (
	"context"
	"time"

	"github.com/workpulse/attendance-system/internal/core/domain"
)

// ListAllInput carries the parameters of the manager listing endpoint.
type ListAllInput struct {
	Status     string
	Department string
	DateFrom   time.Time
	DateTo     time.Time
	Page       int // 1-based, defaults to 1
	Limit      int // defaults to 20, capped at 100
}

// ListAllResult is a page of records across all employees.
type ListAllResult struct {
	Records []*domain.AttendanceRecord
	Total   int64
	Page    int
	Limit   int
	Pages   int
}

// DepartmentBreakdown counts record statuses within one department.
type DepartmentBreakdown struct {
	Present int `json:"present"`
	Late    int `json:"late"`
	HalfDay int `json:"half_day"`
	Total   int `json:"total"`
}

// OrgSummary aggregates all records for a calendar month across the
// organisation, with a per-department breakdown.
type OrgSummary struct {
	TotalRecords   int                            `json:"total_records"`
	Present        int                            `json:"present"`
	Late           int                            `json:"late"`
	HalfDay        int                            `json:"half_day"`
	TotalEmployees int64                          `json:"total_employees"`
	Departments    map[string]DepartmentBreakdown `json:"department_stats"`
}

// TodaySnapshot is the organisation-wide view of the current day.
// Present counts both on-time and late arrivals; Absent is the headcount
// gap, not a stored fact.
type TodaySnapshot struct {
	TotalEmployees int64                      `json:"total_employees"`
	Present        int                        `json:"present"`
	Absent         int64                      `json:"absent"`
	Late           int                        `json:"late"`
	Records        []*domain.AttendanceRecord `json:"records"`
}

// TrendPoint is one day in the trailing weekly trend.
type TrendPoint struct {
	Date    string `json:"date"` // e.g. "Jan 2"
	Present int64  `json:"present"`
}

// DepartmentPresence pairs a department's headcount with how many of its
// members have a record today.
type DepartmentPresence struct {
	Name         string `json:"name"`
	PresentToday int    `json:"value"`
	Headcount    int    `json:"total"`
}

// DashboardStats is the manager composite view.
type DashboardStats struct {
	TotalEmployees int64                      `json:"total_employees"`
	TodayPresent   int                        `json:"today_present"`
	TodayAbsent    int64                      `json:"today_absent"`
	TodayLate      int                        `json:"today_late"`
	WeeklyTrend    []TrendPoint               `json:"weekly_trend"`
	Departments    []DepartmentPresence       `json:"department_stats"`
	Recent         []*domain.AttendanceRecord `json:"recent_attendance"`
}

// ReportService defines the manager-scoped aggregation use cases.
type ReportService interface {
	// ListAll returns a filtered page of records across all employees.
	ListAll(ctx context.Context, input ListAllInput) (*ListAllResult, error)
	// EmployeeHistory returns all records for one employee, unpaginated,
	// date descending. Fails with domain.ErrUserNotFound for unknown ids.
	EmployeeHistory(ctx context.Context, userID string, from, to time.Time) ([]*domain.AttendanceRecord, error)
	// MonthlySummary aggregates the month across all employees.
	// Zero month/year default to the current month.
	MonthlySummary(ctx context.Context, month time.Month, year int) (*OrgSummary, error)
	// TodaySnapshot builds the day-level organisation view.
	TodaySnapshot(ctx context.Context) (*TodaySnapshot, error)
	// DashboardStats builds the manager composite view. Results may be
	// served from a short-lived cache.
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	// ExportRange returns all records in [from, to] for CSV export,
	// date descending. Zero bounds are open.
	ExportRange(ctx context.Context, from, to time.Time) ([]*domain.AttendanceRecord, error)
}
