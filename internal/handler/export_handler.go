package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-timetable-api/internal/dto"
	appErrors "github.com/noah-isme/sma-timetable-api/pkg/errors"
	"github.com/noah-isme/sma-timetable-api/pkg/response"
)

type exportService interface {
	Timetable(ctx context.Context, req dto.TimetableQuery, opts dto.ExportQuery) (*dto.ExportFile, error)
	DayDetails(ctx context.Context, req dto.DayDetailsQuery, opts dto.ExportQuery) (*dto.ExportFile, error)
}

// ExportHandler streams report files.
type ExportHandler struct {
	service exportService
}

// NewExportHandler constructs the handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Timetable godoc
// @Summary Download the filtered timetable
// @Tags Exports
// @Produce text/csv,application/pdf,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet,text/calendar
// @Param format query string false "csv (default), pdf, xlsx or ics"
// @Param date query string false "Date (YYYY-MM-DD). Defaults to today"
// @Param program query string false "School id or all"
// @Param day query string false "Weekday name or all"
// @Param time query string false "Time band HH:MM-HH:MM or all"
// @Success 200 {file} file
// @Failure 400 {object} response.ErrorEnvelope
// @Router /exports/timetable [get]
func (h *ExportHandler) Timetable(c *gin.Context) {
	var (
		req  dto.TimetableQuery
		opts dto.ExportQuery
	)
	h.serve(c, &req, &opts, func(ctx context.Context) (*dto.ExportFile, error) {
		return h.service.Timetable(ctx, req, opts)
	})
}

// DayDetails godoc
// @Summary Download every session on a date
// @Tags Exports
// @Produce text/csv,application/pdf,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet,text/calendar
// @Param format query string false "csv (default), pdf, xlsx or ics"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} response.ErrorEnvelope
// @Router /exports/day-details [get]
func (h *ExportHandler) DayDetails(c *gin.Context) {
	var (
		req  dto.DayDetailsQuery
		opts dto.ExportQuery
	)
	h.serve(c, &req, &opts, func(ctx context.Context) (*dto.ExportFile, error) {
		return h.service.DayDetails(ctx, req, opts)
	})
}

func (h *ExportHandler) serve(c *gin.Context, req, opts interface{}, render func(ctx context.Context) (*dto.ExportFile, error)) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	if !bindQuery(c, req) || !bindQuery(c, opts) {
		return
	}
	file, err := render(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.File(c, file.Filename, file.ContentType, file.Body)
}
