package handler

import "github.com/labstack/echo/v4"

// successResponse is the envelope for all 2xx responses.
type successResponse struct {
	Success    bool                `json:"success"`
	Data       any                 `json:"data"`
	Pagination *paginationResponse `json:"pagination,omitempty"`
}

type paginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func respond(c echo.Context, code int, data any) error {
	return c.JSON(code, successResponse{Success: true, Data: data})
}

func respondPaged(c echo.Context, code int, data any, p paginationResponse) error {
	return c.JSON(code, successResponse{Success: true, Data: data, Pagination: &p})
}
