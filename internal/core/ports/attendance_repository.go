package ports

import (
	"context"
	"time"

	"github.com/workpulse/attendance-system/internal/core/domain"
)

// HistoryFilter scopes a paginated history query to a single employee.
// Zero DateFrom/DateTo leave that bound open. Limit <= 0 disables paging.
type HistoryFilter struct {
	UserID   string
	DateFrom time.Time
	DateTo   time.Time
	Page     int // 1-based
	Limit    int
}

// ListFilter carries the manager-scoped query across all employees.
// Department filters in the query itself, before skip/limit, so filtered
// pages are always full.
type ListFilter struct {
	Status     domain.Status
	Department string
	DateFrom   time.Time
	DateTo     time.Time
	Page       int // 1-based
	Limit      int
}

// AttendanceRepository defines persistence operations for attendance records.
// All listings sort by date descending with record id as the stable
// secondary key, so equal-date ties keep creation order.
type AttendanceRepository interface {
	// Insert persists a new record. The store enforces at most one record
	// per (employee, day); a second concurrent writer gets
	// domain.ErrAlreadyCheckedIn.
	Insert(ctx context.Context, rec *domain.AttendanceRecord) error
	// Update replaces the mutable fields of an existing record.
	Update(ctx context.Context, rec *domain.AttendanceRecord) error
	// FindByUserAndDay retrieves the record whose date falls in
	// [day, day+24h) for the given user, or domain.ErrRecordNotFound.
	FindByUserAndDay(ctx context.Context, userID string, day time.Time) (*domain.AttendanceRecord, error)
	// ListByUser returns a page of one employee's records and the total count.
	ListByUser(ctx context.Context, filter HistoryFilter) ([]*domain.AttendanceRecord, int64, error)
	// List returns a page of records across all employees and the total count.
	List(ctx context.Context, filter ListFilter) ([]*domain.AttendanceRecord, int64, error)
	// ListRange returns all records with date in [from, to], unpaginated,
	// date descending. Zero bounds are open.
	ListRange(ctx context.Context, from, to time.Time) ([]*domain.AttendanceRecord, error)
	// ListDay returns all records whose date falls in [day, day+24h).
	ListDay(ctx context.Context, day time.Time) ([]*domain.AttendanceRecord, error)
	// CountDay returns the number of records whose date falls in [day, day+24h).
	CountDay(ctx context.Context, day time.Time) (int64, error)
}
