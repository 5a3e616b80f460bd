package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/workpulse/attendance-system/internal/core/ports"
)

// DashboardHandler serves the role-specific composite dashboard views.
type DashboardHandler struct {
	attendance ports.AttendanceService
	reports    ports.ReportService
}

func NewDashboardHandler(attendance ports.AttendanceService, reports ports.ReportService) *DashboardHandler {
	return &DashboardHandler{attendance: attendance, reports: reports}
}

// Employee handles GET /dashboard/employee.
func (h *DashboardHandler) Employee(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	dash, err := h.attendance.Dashboard(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	resp := employeeDashboardResponse{
		MonthStats: toSummaryResponse(&dash.MonthStats),
		Recent:     toRecordResponses(dash.Recent),
	}
	if dash.Today != nil {
		today := toRecordResponse(dash.Today)
		resp.Today = &today
	}
	return respond(c, http.StatusOK, resp)
}

// Manager handles GET /dashboard/manager.
func (h *DashboardHandler) Manager(c echo.Context) error {
	stats, err := h.reports.DashboardStats(c.Request().Context())
	if err != nil {
		return err
	}

	trend := make([]trendPointResponse, 0, len(stats.WeeklyTrend))
	for _, p := range stats.WeeklyTrend {
		trend = append(trend, trendPointResponse{Date: p.Date, Present: p.Present})
	}
	departments := make([]departmentPresenceResponse, 0, len(stats.Departments))
	for _, d := range stats.Departments {
		departments = append(departments, departmentPresenceResponse{
			Name:         d.Name,
			PresentToday: d.PresentToday,
			Headcount:    d.Headcount,
		})
	}

	return respond(c, http.StatusOK, managerDashboardResponse{
		TotalEmployees: stats.TotalEmployees,
		TodayPresent:   stats.TodayPresent,
		TodayAbsent:    stats.TodayAbsent,
		TodayLate:      stats.TodayLate,
		WeeklyTrend:    trend,
		Departments:    departments,
		Recent:         toRecordResponses(stats.Recent),
	})
}
