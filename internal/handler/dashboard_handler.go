package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-timetable-api/internal/dto"
	"github.com/noah-isme/sma-timetable-api/internal/middleware"
	"github.com/noah-isme/sma-timetable-api/internal/models"
	appErrors "github.com/noah-isme/sma-timetable-api/pkg/errors"
	"github.com/noah-isme/sma-timetable-api/pkg/response"
)

type dashboardService interface {
	Stats(ctx context.Context, req dto.DateQuery) (*models.DashboardStats, error)
	Timetable(ctx context.Context, req dto.TimetableQuery) (*dto.TimetableResponse, error)
	Filters(ctx context.Context) (*dto.FilterOptions, error)
}

// DashboardHandler wires dashboard service to HTTP endpoints.
type DashboardHandler struct {
	service dashboardService
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service dashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Stats godoc
// @Summary Scheduled and unscheduled counts for a date
// @Tags Dashboard
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD). Defaults to today"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.ErrorEnvelope
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var req dto.DateQuery
	if !bindQuery(c, &req) {
		return
	}
	stats, err := h.service.Stats(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats, middleware.ExtractMeta(c))
}

// Timetable godoc
// @Summary Filtered timetable grouped by weekday
// @Tags Dashboard
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD). Defaults to today"
// @Param program query string false "School id or all"
// @Param year query string false "Course year or all"
// @Param section query string false "Class id or all"
// @Param faculty query string false "Faculty id or all"
// @Param room query string false "Room id or all"
// @Param subject query string false "Subject id or all"
// @Param day query string false "Weekday name or all"
// @Param time query string false "Time band HH:MM-HH:MM or all"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.ErrorEnvelope
// @Router /dashboard/timetable [get]
func (h *DashboardHandler) Timetable(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var req dto.TimetableQuery
	if !bindQuery(c, &req) {
		return
	}
	resp, err := h.service.Timetable(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetMeta(c, "date", resp.Date)
	middleware.SetMeta(c, "days", resp.Days)
	response.List(c, resp.Data, resp.Total, middleware.ExtractMeta(c))
}

// Filters godoc
// @Summary Values available to the dashboard filters
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard/filters [get]
func (h *DashboardHandler) Filters(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	opts, err := h.service.Filters(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, opts)
}
