package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/workpulse/attendance-system/internal/core/domain"
	"github.com/workpulse/attendance-system/internal/core/ports"
)

type stubReportService struct {
	listAllFn   func(ctx context.Context, input ports.ListAllInput) (*ports.ListAllResult, error)
	historyFn   func(ctx context.Context, userID string, from, to time.Time) ([]*domain.AttendanceRecord, error)
	summaryFn   func(ctx context.Context, month time.Month, year int) (*ports.OrgSummary, error)
	snapshotFn  func(ctx context.Context) (*ports.TodaySnapshot, error)
	dashboardFn func(ctx context.Context) (*ports.DashboardStats, error)
	exportFn    func(ctx context.Context, from, to time.Time) ([]*domain.AttendanceRecord, error)
}

func (s *stubReportService) ListAll(ctx context.Context, input ports.ListAllInput) (*ports.ListAllResult, error) {
	return s.listAllFn(ctx, input)
}

func (s *stubReportService) EmployeeHistory(ctx context.Context, userID string, from, to time.Time) ([]*domain.AttendanceRecord, error) {
	return s.historyFn(ctx, userID, from, to)
}

func (s *stubReportService) MonthlySummary(ctx context.Context, month time.Month, year int) (*ports.OrgSummary, error) {
	return s.summaryFn(ctx, month, year)
}

func (s *stubReportService) TodaySnapshot(ctx context.Context) (*ports.TodaySnapshot, error) {
	return s.snapshotFn(ctx)
}

func (s *stubReportService) DashboardStats(ctx context.Context) (*ports.DashboardStats, error) {
	return s.dashboardFn(ctx)
}

func (s *stubReportService) ExportRange(ctx context.Context, from, to time.Time) ([]*domain.AttendanceRecord, error) {
	return s.exportFn(ctx, from, to)
}

func TestReportHandler_ListAll(t *testing.T) {
	stub := &stubReportService{
		listAllFn: func(_ context.Context, input ports.ListAllInput) (*ports.ListAllResult, error) {
			if input.Department != "Engineering" || input.Status != "late" {
				t.Fatalf("unexpected input: %+v", input)
			}
			wantFrom := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local)
			if !input.DateFrom.Equal(wantFrom) {
				t.Fatalf("unexpected from: %v", input.DateFrom)
			}
			return &ports.ListAllResult{
				Records: []*domain.AttendanceRecord{sampleRecord(domain.StatusLate)},
				Total:   1,
				Page:    1,
				Limit:   20,
				Pages:   1,
			}, nil
		},
	}
	handler := NewReportHandler(stub, zerolog.Nop())

	c, rec := newTestContext(t, http.MethodGet,
		"/attendance/all?department=Engineering&status=late&startDate=2026-03-01", "")

	if err := handler.ListAll(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := resp["pagination"].(map[string]any); !ok {
		t.Fatalf("expected pagination metadata, got %+v", resp)
	}
}

func TestReportHandler_ListAll_BadDate(t *testing.T) {
	handler := NewReportHandler(&stubReportService{
		listAllFn: func(_ context.Context, _ ports.ListAllInput) (*ports.ListAllResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}, zerolog.Nop())

	c, _ := newTestContext(t, http.MethodGet, "/attendance/all?endDate=tomorrow", "")

	if err := handler.ListAll(c); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestReportHandler_EmployeeHistory(t *testing.T) {
	stub := &stubReportService{
		historyFn: func(_ context.Context, userID string, _, _ time.Time) ([]*domain.AttendanceRecord, error) {
			if userID != "u42" {
				t.Fatalf("unexpected user id: %s", userID)
			}
			return []*domain.AttendanceRecord{sampleRecord(domain.StatusPresent)}, nil
		},
	}
	handler := NewReportHandler(stub, zerolog.Nop())

	c, rec := newTestContext(t, http.MethodGet, "/attendance/employee/u42", "")
	c.SetParamNames("id")
	c.SetParamValues("u42")

	if err := handler.EmployeeHistory(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReportHandler_EmployeeHistory_UnknownUser(t *testing.T) {
	handler := NewReportHandler(&stubReportService{
		historyFn: func(_ context.Context, _ string, _, _ time.Time) ([]*domain.AttendanceRecord, error) {
			return nil, domain.ErrUserNotFound
		},
	}, zerolog.Nop())

	c, _ := newTestContext(t, http.MethodGet, "/attendance/employee/ghost", "")
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	if err := handler.EmployeeHistory(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestReportHandler_Summary(t *testing.T) {
	stub := &stubReportService{
		summaryFn: func(_ context.Context, month time.Month, year int) (*ports.OrgSummary, error) {
			if month != time.March || year != 2026 {
				t.Fatalf("unexpected args: %v %d", month, year)
			}
			return &ports.OrgSummary{
				TotalRecords:   40,
				Present:        30,
				Late:           7,
				HalfDay:        3,
				TotalEmployees: 12,
				Departments: map[string]ports.DepartmentBreakdown{
					"Engineering": {Present: 20, Late: 4, Total: 24},
				},
			}, nil
		},
	}
	handler := NewReportHandler(stub, zerolog.Nop())

	c, rec := newTestContext(t, http.MethodGet, "/attendance/summary?month=3&year=2026", "")

	if err := handler.Summary(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data := resp["data"].(map[string]any)
	depts := data["department_stats"].(map[string]any)
	if _, ok := depts["Engineering"]; !ok {
		t.Fatalf("missing department breakdown: %+v", depts)
	}
}

func TestReportHandler_TodayStatus(t *testing.T) {
	stub := &stubReportService{
		snapshotFn: func(_ context.Context) (*ports.TodaySnapshot, error) {
			return &ports.TodaySnapshot{
				TotalEmployees: 10,
				Present:        6,
				Absent:         4,
				Late:           2,
				Records:        []*domain.AttendanceRecord{sampleRecord(domain.StatusLate)},
			}, nil
		},
	}
	handler := NewReportHandler(stub, zerolog.Nop())

	c, rec := newTestContext(t, http.MethodGet, "/attendance/today-status", "")

	if err := handler.TodayStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data := resp["data"].(map[string]any)
	if data["present"] != 6.0 || data["absent"] != 4.0 || data["late"] != 2.0 {
		t.Fatalf("unexpected payload: %+v", data)
	}
}

func TestReportHandler_Export(t *testing.T) {
	checkOut := time.Date(2026, time.March, 9, 17, 0, 0, 0, time.UTC)
	closed := sampleRecord(domain.StatusPresent)
	closed.CheckOutTime = &checkOut
	closed.TotalHours = 8

	stub := &stubReportService{
		exportFn: func(_ context.Context, from, to time.Time) ([]*domain.AttendanceRecord, error) {
			return []*domain.AttendanceRecord{closed}, nil
		},
	}
	handler := NewReportHandler(stub, zerolog.Nop())

	c, rec := newTestContext(t, http.MethodGet, "/attendance/export", "")

	if err := handler.Export(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "text/csv" {
		t.Fatalf("expected text/csv, got %s", ct)
	}
	if cd := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(cd, "attachment") {
		t.Fatalf("expected attachment disposition, got %s", cd)
	}

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "employeeId,name,email") {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "EMP001") {
		t.Fatalf("unexpected row: %s", lines[1])
	}
}

func TestDashboardHandler_Employee(t *testing.T) {
	stub := &stubAttendanceService{
		dashboardFn: func(_ context.Context, userID string) (*ports.EmployeeDashboard, error) {
			if userID != "u1" {
				t.Fatalf("unexpected user id: %s", userID)
			}
			return &ports.EmployeeDashboard{
				Today:      sampleRecord(domain.StatusPresent),
				MonthStats: ports.MonthlySummary{TotalDays: 5, Present: 5, TotalHours: 40},
				Recent:     []*domain.AttendanceRecord{sampleRecord(domain.StatusPresent)},
			}, nil
		},
	}
	handler := NewDashboardHandler(stub, &stubReportService{})

	c, rec := newTestContext(t, http.MethodGet, "/dashboard/employee", "")
	c.Set("user_id", "u1")
	c.Set("role", domain.RoleEmployee)

	if err := handler.Employee(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data := resp["data"].(map[string]any)
	if data["today_status"] == nil {
		t.Fatalf("expected today_status, got %+v", data)
	}
	month := data["month_stats"].(map[string]any)
	if month["total_days"] != 5.0 {
		t.Fatalf("unexpected month stats: %+v", month)
	}
}

func TestDashboardHandler_Manager(t *testing.T) {
	stub := &stubReportService{
		dashboardFn: func(_ context.Context) (*ports.DashboardStats, error) {
			return &ports.DashboardStats{
				TotalEmployees: 10,
				TodayPresent:   6,
				TodayAbsent:    4,
				TodayLate:      2,
				WeeklyTrend:    []ports.TrendPoint{{Date: "Mar 9", Present: 6}},
				Departments:    []ports.DepartmentPresence{{Name: "Engineering", PresentToday: 4, Headcount: 5}},
				Recent:         []*domain.AttendanceRecord{sampleRecord(domain.StatusPresent)},
			}, nil
		},
	}
	handler := NewDashboardHandler(&stubAttendanceService{}, stub)

	c, rec := newTestContext(t, http.MethodGet, "/dashboard/manager", "")

	if err := handler.Manager(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data := resp["data"].(map[string]any)
	if data["today_present"] != 6.0 {
		t.Fatalf("unexpected payload: %+v", data)
	}
	depts := data["department_stats"].([]any)
	first := depts[0].(map[string]any)
	if first["name"] != "Engineering" || first["value"] != 4.0 || first["total"] != 5.0 {
		t.Fatalf("unexpected department presence: %+v", first)
	}
}
