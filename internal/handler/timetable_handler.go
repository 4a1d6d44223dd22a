package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-timetable-api/internal/dto"
	"github.com/noah-isme/sma-timetable-api/internal/models"
	appErrors "github.com/noah-isme/sma-timetable-api/pkg/errors"
	"github.com/noah-isme/sma-timetable-api/pkg/response"
)

type timetableService interface {
	ByDivision(ctx context.Context, req dto.DivisionQuery) ([]models.DivisionSummary, error)
	DivisionDetails(ctx context.Context, req dto.DivisionDetailsQuery) ([]models.Session, error)
	ByFaculty(ctx context.Context, req dto.FacultyQuery) ([]models.FacultySummary, error)
	FacultyDetails(ctx context.Context, req dto.FacultyDetailsQuery) ([]models.Session, error)
	ByDay(ctx context.Context, req dto.DayRangeQuery) ([]models.DaySummary, error)
	DayDetails(ctx context.Context, req dto.DayDetailsQuery) ([]models.Session, error)
}

// TimetableHandler serves the per-class, per-faculty and per-day reports.
type TimetableHandler struct {
	service timetableService
}

// NewTimetableHandler constructs the handler.
func NewTimetableHandler(service timetableService) *TimetableHandler {
	return &TimetableHandler{service: service}
}

// ByDivision godoc
// @Summary Sessions per active class on a date
// @Tags Timetable
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD). Defaults to today"
// @Param program query string false "School id or all"
// @Success 200 {object} response.Envelope
// @Router /by-division [get]
func (h *TimetableHandler) ByDivision(c *gin.Context) {
	var req dto.DivisionQuery
	serveList(c, h.service != nil, &req, func(ctx context.Context) ([]models.DivisionSummary, error) {
		return h.service.ByDivision(ctx, req)
	})
}

// DivisionDetails godoc
// @Summary Sessions of one class on a date
// @Tags Timetable
// @Produce json
// @Param classId query string true "Class id"
// @Param date query string false "Date (YYYY-MM-DD). Defaults to today"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.ErrorEnvelope
// @Router /division-details [get]
func (h *TimetableHandler) DivisionDetails(c *gin.Context) {
	var req dto.DivisionDetailsQuery
	serveList(c, h.service != nil, &req, func(ctx context.Context) ([]models.Session, error) {
		return h.service.DivisionDetails(ctx, req)
	})
}

// ByFaculty godoc
// @Summary Sessions per faculty member on a date
// @Tags Timetable
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD). Defaults to today"
// @Param facultyId query string false "Faculty id or all"
// @Success 200 {object} response.Envelope
// @Router /by-faculty [get]
func (h *TimetableHandler) ByFaculty(c *gin.Context) {
	var req dto.FacultyQuery
	serveList(c, h.service != nil, &req, func(ctx context.Context) ([]models.FacultySummary, error) {
		return h.service.ByFaculty(ctx, req)
	})
}

// FacultyDetails godoc
// @Summary Sessions of one faculty member on a date
// @Tags Timetable
// @Produce json
// @Param facultyId query string true "Faculty id"
// @Param date query string false "Date (YYYY-MM-DD). Defaults to today"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.ErrorEnvelope
// @Router /faculty-details [get]
func (h *TimetableHandler) FacultyDetails(c *gin.Context) {
	var req dto.FacultyDetailsQuery
	serveList(c, h.service != nil, &req, func(ctx context.Context) ([]models.Session, error) {
		return h.service.FacultyDetails(ctx, req)
	})
}

// ByDay godoc
// @Summary Daily totals over an inclusive date range
// @Tags Timetable
// @Produce json
// @Param startDate query string false "Range start. Defaults to today"
// @Param endDate query string false "Range end. Defaults to startDate plus seven days"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.ErrorEnvelope
// @Router /by-day [get]
func (h *TimetableHandler) ByDay(c *gin.Context) {
	var req dto.DayRangeQuery
	serveList(c, h.service != nil, &req, func(ctx context.Context) ([]models.DaySummary, error) {
		return h.service.ByDay(ctx, req)
	})
}

// DayDetails godoc
// @Summary Every session on a date
// @Tags Timetable
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.ErrorEnvelope
// @Router /day-details [get]
func (h *TimetableHandler) DayDetails(c *gin.Context) {
	var req dto.DayDetailsQuery
	serveList(c, h.service != nil, &req, func(ctx context.Context) ([]models.Session, error) {
		return h.service.DayDetails(ctx, req)
	})
}

// serveList binds the query into req, runs fetch and writes the list envelope.
func serveList[T any](c *gin.Context, ready bool, req interface{}, fetch func(ctx context.Context) ([]T, error)) {
	if !ready {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	if !bindQuery(c, req) {
		return
	}
	rows, err := fetch(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	respondList(c, rows)
}
