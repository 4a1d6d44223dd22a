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

type resourceService interface {
	Classrooms(ctx context.Context, req dto.ClassroomQuery) ([]models.RoomUsage, error)
	ClassroomSchedule(ctx context.Context, req dto.ClassroomScheduleQuery) ([]models.Session, error)
	Unscheduled(ctx context.Context, req dto.DateQuery) (*dto.UnscheduledResponse, error)
}

// ResourceHandler serves room usage and idle resource reports.
type ResourceHandler struct {
	service resourceService
}

// NewResourceHandler constructs the handler.
func NewResourceHandler(service resourceService) *ResourceHandler {
	return &ResourceHandler{service: service}
}

// Classrooms godoc
// @Summary Visible rooms with their usage on a date
// @Tags Resources
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD). Defaults to today"
// @Param building query string false "Building name"
// @Param floor query string false "Floor name"
// @Success 200 {object} response.Envelope
// @Router /classrooms [get]
func (h *ResourceHandler) Classrooms(c *gin.Context) {
	var req dto.ClassroomQuery
	serveList(c, h.service != nil, &req, func(ctx context.Context) ([]models.RoomUsage, error) {
		return h.service.Classrooms(ctx, req)
	})
}

// ClassroomSchedule godoc
// @Summary Sessions held in one room on a date
// @Tags Resources
// @Produce json
// @Param roomId query string true "Room id"
// @Param date query string false "Date (YYYY-MM-DD). Defaults to today"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.ErrorEnvelope
// @Router /classroom-schedule [get]
func (h *ResourceHandler) ClassroomSchedule(c *gin.Context) {
	var req dto.ClassroomScheduleQuery
	serveList(c, h.service != nil, &req, func(ctx context.Context) ([]models.Session, error) {
		return h.service.ClassroomSchedule(ctx, req)
	})
}

// Unscheduled godoc
// @Summary Classes, faculty members and rooms without sessions on a date
// @Tags Resources
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD). Defaults to today"
// @Success 200 {object} response.Envelope
// @Router /unscheduled [get]
func (h *ResourceHandler) Unscheduled(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var req dto.DateQuery
	if !bindQuery(c, &req) {
		return
	}
	resp, err := h.service.Unscheduled(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, middleware.ExtractMeta(c))
}
