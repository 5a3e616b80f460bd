package domain

import (
	"errors"
	"math"
	"time"
)

// Status is the classification of a single attendance record.
type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half-day"
	// StatusAbsent is never stored. It exists only as a derived aggregate
	// concept: an employee with no record for a day counts as absent
	// relative to the total headcount.
	StatusAbsent Status = "absent"
)

const (
	// lateCutoffMinutes is the wall-clock minute of day after which a
	// check-in counts as late: strictly after 09:15:00.
	lateCutoffMinutes = 9*60 + 15
	// halfDayHours is the shift length below which a record becomes
	// half-day, unless already late.
	halfDayHours = 4.0
)

var ErrRecordNotFound = errors.New("attendance record not found")
var ErrNoCheckInToday = errors.New("no check-in found for today")
var ErrAlreadyCheckedIn = errors.New("already checked in today")
var ErrAlreadyCheckedOut = errors.New("already checked out today")
var ErrCheckOutBeforeCheckIn = errors.New("check-out time precedes check-in time")
var ErrForbidden = errors.New("access forbidden")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidInput = errors.New("invalid input")

// ValidStatus reports whether s names a storable record status.
// StatusAbsent is deliberately excluded: it is derived, never persisted.
func ValidStatus(s Status) bool {
	return s == StatusPresent || s == StatusLate || s == StatusHalfDay
}

// AttendanceRecord is one employee's attendance for one calendar day.
// Status and TotalHours are derived fields: they must only ever be set by
// Classify, recomputed whenever the check-in/out pair changes.
type AttendanceRecord struct {
	ID           string      `json:"id" bson:"_id,omitempty"`
	Employee     EmployeeRef `json:"employee" bson:"employee"`
	Date         time.Time   `json:"date" bson:"date"`
	CheckInTime  time.Time   `json:"check_in_time" bson:"check_in_time"`
	CheckOutTime *time.Time  `json:"check_out_time" bson:"check_out_time"`
	TotalHours   float64     `json:"total_hours" bson:"total_hours"`
	Status       Status      `json:"status" bson:"status"`
	CreatedAt    time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" bson:"updated_at"`
}

// Classify derives the record status and total hours from a check-in/out
// pair. Rules, in precedence order:
//
//  1. Check-in strictly after 09:15:00 local wall-clock -> late.
//  2. Otherwise present, provisionally.
//  3. With a check-out, total hours is the duration rounded to 2 decimal
//     places; a shift under 4 hours becomes half-day unless already late.
//     A late arrival who leaves early stays late.
//  4. Without a check-out, total hours is 0.
//
// Callers must reject check-outs that precede the check-in before calling;
// Classify itself does not guard against negative durations.
func Classify(checkIn time.Time, checkOut *time.Time) (Status, float64) {
	status := StatusPresent
	if checkIn.Hour()*60+checkIn.Minute() > lateCutoffMinutes {
		status = StatusLate
	}

	if checkOut == nil {
		return status, 0
	}

	hours := roundHours(checkOut.Sub(checkIn))
	if hours < halfDayHours && status != StatusLate {
		status = StatusHalfDay
	}
	return status, hours
}

// Reclassify recomputes the derived fields of r in place.
func (r *AttendanceRecord) Reclassify() {
	r.Status, r.TotalHours = Classify(r.CheckInTime, r.CheckOutTime)
}

// DayWindow returns the half-open interval [midnight, midnight+24h) that
// contains t, in t's location. Records are keyed by the window start.
func DayWindow(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.Add(24 * time.Hour)
}

// MonthWindow returns the closed interval [first of month, last of month
// 23:59:59] for the given month, in loc.
func MonthWindow(year int, month time.Month, loc *time.Location) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end = start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

func roundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}
