package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/workpulse/attendance-system/internal/core/domain"
	"github.com/workpulse/attendance-system/internal/core/ports"
)

func toRecordResponse(rec *domain.AttendanceRecord) attendanceRecordResponse {
	return attendanceRecordResponse{
		ID: rec.ID,
		Employee: employeeRefResponse{
			UserID:     rec.Employee.UserID,
			EmployeeID: rec.Employee.EmployeeID,
			Name:       rec.Employee.Name,
			Email:      rec.Employee.Email,
			Department: rec.Employee.Department,
		},
		Date:         rec.Date,
		CheckInTime:  rec.CheckInTime,
		CheckOutTime: rec.CheckOutTime,
		TotalHours:   rec.TotalHours,
		Status:       string(rec.Status),
	}
}

func toRecordResponses(records []*domain.AttendanceRecord) []attendanceRecordResponse {
	out := make([]attendanceRecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toRecordResponse(rec))
	}
	return out
}

func toSummaryResponse(sum *ports.MonthlySummary) monthlySummaryResponse {
	return monthlySummaryResponse{
		TotalDays:  sum.TotalDays,
		Present:    sum.Present,
		Absent:     sum.Absent,
		Late:       sum.Late,
		HalfDay:    sum.HalfDay,
		TotalHours: sum.TotalHours,
	}
}

// --- Query parameter parsing ---

const dateParamLayout = "2006-01-02"

// queryDate parses an optional YYYY-MM-DD query parameter. A missing
// parameter yields the zero time (open bound).
func queryDate(c echo.Context, name string) (time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(dateParamLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD", domain.ErrInvalidInput, name)
	}
	return t, nil
}

// queryInt parses an optional integer query parameter, returning fallback
// when missing.
func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, name)
	}
	return n, nil
}

// queryMonthYear parses the optional month/year pair. Both must be given
// together; zero values mean "current month".
func queryMonthYear(c echo.Context) (time.Month, int, error) {
	month, err := queryInt(c, "month", 0)
	if err != nil {
		return 0, 0, err
	}
	year, err := queryInt(c, "year", 0)
	if err != nil {
		return 0, 0, err
	}
	if month < 0 || month > 12 {
		return 0, 0, fmt.Errorf("%w: month must be 1-12", domain.ErrInvalidInput)
	}
	if (month == 0) != (year == 0) {
		return 0, 0, fmt.Errorf("%w: month and year must be provided together", domain.ErrInvalidInput)
	}
	return time.Month(month), year, nil
}
