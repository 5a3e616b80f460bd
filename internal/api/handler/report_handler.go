package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/workpulse/attendance-system/internal/api/metrics"
	"github.com/workpulse/attendance-system/internal/core/ports"
	"github.com/workpulse/attendance-system/internal/export"
)

// ReportHandler serves the manager-scoped aggregation and export endpoints.
type ReportHandler struct {
	service ports.ReportService
	logger  zerolog.Logger
}

func NewReportHandler(service ports.ReportService, logger zerolog.Logger) *ReportHandler {
	return &ReportHandler{service: service, logger: logger}
}

// ListAll handles GET /attendance/all.
//
// @Summary      List attendance across all employees
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        startDate   query  string  false  "YYYY-MM-DD"
// @Param        endDate     query  string  false  "YYYY-MM-DD"
// @Param        status      query  string  false  "present | late | half-day"
// @Param        department  query  string  false  "Department name"
// @Success      200  {object}  successResponse
// @Router       /attendance/all [get]
func (h *ReportHandler) ListAll(c echo.Context) error {
	from, err := queryDate(c, "startDate")
	if err != nil {
		return err
	}
	to, err := queryDate(c, "endDate")
	if err != nil {
		return err
	}
	page, err := queryInt(c, "page", 1)
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return err
	}

	result, err := h.service.ListAll(c.Request().Context(), ports.ListAllInput{
		Status:     c.QueryParam("status"),
		Department: c.QueryParam("department"),
		DateFrom:   from,
		DateTo:     to,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return err
	}

	return respondPaged(c, http.StatusOK, toRecordResponses(result.Records), paginationResponse{
		Page:  result.Page,
		Limit: result.Limit,
		Total: result.Total,
		Pages: result.Pages,
	})
}

// EmployeeHistory handles GET /attendance/employee/:id.
func (h *ReportHandler) EmployeeHistory(c echo.Context) error {
	from, err := queryDate(c, "startDate")
	if err != nil {
		return err
	}
	to, err := queryDate(c, "endDate")
	if err != nil {
		return err
	}

	records, err := h.service.EmployeeHistory(c.Request().Context(), c.Param("id"), from, to)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, toRecordResponses(records))
}

// Summary handles GET /attendance/summary.
func (h *ReportHandler) Summary(c echo.Context) error {
	month, year, err := queryMonthYear(c)
	if err != nil {
		return err
	}

	sum, err := h.service.MonthlySummary(c.Request().Context(), month, year)
	if err != nil {
		return err
	}

	departments := make(map[string]departmentBreakdownResponse, len(sum.Departments))
	for name, d := range sum.Departments {
		departments[name] = departmentBreakdownResponse{
			Present: d.Present,
			Late:    d.Late,
			HalfDay: d.HalfDay,
			Total:   d.Total,
		}
	}

	return respond(c, http.StatusOK, orgSummaryResponse{
		TotalRecords:   sum.TotalRecords,
		Present:        sum.Present,
		Late:           sum.Late,
		HalfDay:        sum.HalfDay,
		TotalEmployees: sum.TotalEmployees,
		Departments:    departments,
	})
}

// TodayStatus handles GET /attendance/today-status.
func (h *ReportHandler) TodayStatus(c echo.Context) error {
	snap, err := h.service.TodaySnapshot(c.Request().Context())
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, todaySnapshotResponse{
		TotalEmployees: snap.TotalEmployees,
		Present:        snap.Present,
		Absent:         snap.Absent,
		Late:           snap.Late,
		Records:        toRecordResponses(snap.Records),
	})
}

// Export handles GET /attendance/export, streaming the report as a CSV
// attachment.
//
// @Summary      Export attendance as CSV
// @Tags         reports
// @Produce      text/csv
// @Security     BearerAuth
// @Param        startDate  query  string  false  "YYYY-MM-DD"
// @Param        endDate    query  string  false  "YYYY-MM-DD"
// @Success      200  {string}  string  "CSV report"
// @Router       /attendance/export [get]
func (h *ReportHandler) Export(c echo.Context) error {
	from, err := queryDate(c, "startDate")
	if err != nil {
		return err
	}
	to, err := queryDate(c, "endDate")
	if err != nil {
		return err
	}

	records, err := h.service.ExportRange(c.Request().Context(), from, to)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename=attendance-report.csv`)
	c.Response().WriteHeader(http.StatusOK)

	written, skipped, err := export.WriteCSV(c.Response(), records)
	metrics.ExportRowsTotal.WithLabelValues("written").Add(float64(written))
	metrics.ExportRowsTotal.WithLabelValues("skipped").Add(float64(skipped))
	if skipped > 0 {
		h.logger.Warn().
			Int("skipped", skipped).
			Msg("export skipped records without an owning employee")
	}
	if err != nil {
		// The header is already committed; all we can do is log.
		h.logger.Error().Err(err).Int("written", written).Msg("csv export failed mid-stream")
		return err
	}
	return nil
}
