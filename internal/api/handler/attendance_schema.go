package handler

import "time"

// Response-only types owned by the transport layer. These are intentionally
// separate from ports/domain types so the JSON contract is not coupled to
// internal service changes.

type employeeRefResponse struct {
	UserID     string `json:"user_id"`
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

type attendanceRecordResponse struct {
	ID           string              `json:"id"`
	Employee     employeeRefResponse `json:"employee"`
	Date         time.Time           `json:"date"`
	CheckInTime  time.Time           `json:"check_in_time"`
	CheckOutTime *time.Time          `json:"check_out_time"`
	TotalHours   float64             `json:"total_hours"`
	Status       string              `json:"status"`
}

type monthlySummaryResponse struct {
	TotalDays  int     `json:"total_days"`
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Late       int     `json:"late"`
	HalfDay    int     `json:"half_day"`
	TotalHours float64 `json:"total_hours"`
}

type departmentBreakdownResponse struct {
	Present int `json:"present"`
	Late    int `json:"late"`
	HalfDay int `json:"half_day"`
	Total   int `json:"total"`
}

type orgSummaryResponse struct {
	TotalRecords   int                                    `json:"total_records"`
	Present        int                                    `json:"present"`
	Late           int                                    `json:"late"`
	HalfDay        int                                    `json:"half_day"`
	TotalEmployees int64                                  `json:"total_employees"`
	Departments    map[string]departmentBreakdownResponse `json:"department_stats"`
}

type todaySnapshotResponse struct {
	TotalEmployees int64                      `json:"total_employees"`
	Present        int                        `json:"present"`
	Absent         int64                      `json:"absent"`
	Late           int                        `json:"late"`
	Records        []attendanceRecordResponse `json:"records"`
}

type trendPointResponse struct {
	Date    string `json:"date"`
	Present int64  `json:"present"`
}

type departmentPresenceResponse struct {
	Name         string `json:"name"`
	PresentToday int    `json:"value"`
	Headcount    int    `json:"total"`
}

type managerDashboardResponse struct {
	TotalEmployees int64                        `json:"total_employees"`
	TodayPresent   int                          `json:"today_present"`
	TodayAbsent    int64                        `json:"today_absent"`
	TodayLate      int                          `json:"today_late"`
	WeeklyTrend    []trendPointResponse         `json:"weekly_trend"`
	Departments    []departmentPresenceResponse `json:"department_stats"`
	Recent         []attendanceRecordResponse   `json:"recent_attendance"`
}

type employeeDashboardResponse struct {
	Today      *attendanceRecordResponse  `json:"today_status"`
	MonthStats monthlySummaryResponse     `json:"month_stats"`
	Recent     []attendanceRecordResponse `json:"recent_attendance"`
}
