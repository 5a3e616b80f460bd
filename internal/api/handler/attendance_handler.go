package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/workpulse/attendance-system/internal/api/metrics"
	"github.com/workpulse/attendance-system/internal/core/domain"
	"github.com/workpulse/attendance-system/internal/core/ports"
)

// AttendanceHandler serves the employee-scoped attendance endpoints.
type AttendanceHandler struct {
	service ports.AttendanceService
}

func NewAttendanceHandler(service ports.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

// CheckIn handles POST /attendance/checkin.
//
// @Summary      Check in for today
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  successResponse
// @Failure      400  {object}  errorResponse
// @Router       /attendance/checkin [post]
func (h *AttendanceHandler) CheckIn(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	rec, err := h.service.CheckIn(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyCheckedIn) {
			metrics.ConflictsTotal.WithLabelValues("checkin").Inc()
		}
		return err
	}

	metrics.CheckInsTotal.WithLabelValues(string(rec.Status)).Inc()
	return respond(c, http.StatusCreated, toRecordResponse(rec))
}

// CheckOut handles POST /attendance/checkout.
//
// @Summary      Check out for today
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /attendance/checkout [post]
func (h *AttendanceHandler) CheckOut(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	rec, err := h.service.CheckOut(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyCheckedOut) {
			metrics.ConflictsTotal.WithLabelValues("checkout").Inc()
		}
		return err
	}

	metrics.CheckOutsTotal.WithLabelValues(string(rec.Status)).Inc()
	return respond(c, http.StatusOK, toRecordResponse(rec))
}

// Today handles GET /attendance/today. Data is null when the user has not
// checked in yet; that is not an error.
func (h *AttendanceHandler) Today(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	rec, err := h.service.TodayStatus(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	if rec == nil {
		return respond(c, http.StatusOK, nil)
	}
	return respond(c, http.StatusOK, toRecordResponse(rec))
}

// History handles GET /attendance/my-history.
func (h *AttendanceHandler) History(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

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

	result, err := h.service.History(c.Request().Context(), ports.HistoryInput{
		UserID:   userID,
		DateFrom: from,
		DateTo:   to,
		Page:     page,
		Limit:    limit,
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

// Summary handles GET /attendance/my-summary.
func (h *AttendanceHandler) Summary(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	month, year, err := queryMonthYear(c)
	if err != nil {
		return err
	}

	sum, err := h.service.Summary(c.Request().Context(), userID, month, year)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, toSummaryResponse(sum))
}
