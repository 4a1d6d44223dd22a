package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-timetable-api/internal/dto"
	"github.com/noah-isme/sma-timetable-api/internal/models"
	"github.com/noah-isme/sma-timetable-api/internal/query"
	appErrors "github.com/noah-isme/sma-timetable-api/pkg/errors"
	"github.com/noah-isme/sma-timetable-api/pkg/export"
)

// Supported export formats.
const (
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
	FormatICS  = "ics"
)

var formatContentTypes = map[string]string{
	FormatCSV:  "text/csv",
	FormatPDF:  "application/pdf",
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FormatICS:  "text/calendar",
}

var sessionHeaders = []string{"Date", "Day", "Start", "End", "Subject", "Code", "Room", "Building", "Faculty", "Sections", "Program"}

type timetableSource interface {
	Timetable(ctx context.Context, req dto.TimetableQuery) (*dto.TimetableResponse, error)
}

type dayDetailsSource interface {
	DayDetails(ctx context.Context, req dto.DayDetailsQuery) ([]models.Session, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type titledRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

type calendarRenderer interface {
	Render(events []export.CalendarEvent, name string) ([]byte, error)
}

// ExportService renders timetable reports into downloadable files.
type ExportService struct {
	timetable timetableSource
	days      dayDetailsSource
	csv       csvRenderer
	pdf       titledRenderer
	xlsx      titledRenderer
	ics       calendarRenderer
	loc       *time.Location
	validator *validator.Validate
	logger    *zap.Logger
}

// ExportServiceParams groups constructor dependencies.
type ExportServiceParams struct {
	Timetable timetableSource
	Days      dayDetailsSource
	CSV       csvRenderer
	PDF       titledRenderer
	XLSX      titledRenderer
	ICS       calendarRenderer
	// Location anchors calendar events; session times are wall-clock times.
	Location  *time.Location
	Validator *validator.Validate
	Logger    *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(params ExportServiceParams) *ExportService {
	svc := &ExportService{
		timetable: params.Timetable,
		days:      params.Days,
		csv:       params.CSV,
		pdf:       params.PDF,
		xlsx:      params.XLSX,
		ics:       params.ICS,
		loc:       params.Location,
		validator: params.Validator,
		logger:    params.Logger,
	}
	if svc.csv == nil {
		svc.csv = export.NewCSVExporter()
	}
	if svc.pdf == nil {
		svc.pdf = export.NewPDFExporter()
	}
	if svc.xlsx == nil {
		svc.xlsx = export.NewXLSXExporter()
	}
	if svc.ics == nil {
		svc.ics = export.NewICSExporter()
	}
	if svc.loc == nil {
		svc.loc = time.UTC
	}
	if svc.validator == nil {
		svc.validator = NewQueryValidator()
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	return svc
}

// Timetable exports the filtered dashboard timetable, one row per session in
// weekday-group order.
func (s *ExportService) Timetable(ctx context.Context, req dto.TimetableQuery, opts dto.ExportQuery) (*dto.ExportFile, error) {
	format, err := s.format(opts)
	if err != nil {
		return nil, err
	}
	resp, err := s.timetable.Timetable(ctx, req)
	if err != nil {
		return nil, err
	}
	var sessions []models.Session
	for _, day := range resp.Days {
		sessions = append(sessions, resp.Data[day]...)
	}
	return s.render(format, "timetable-"+resp.Date, "Timetable "+resp.Date, sessions)
}

// DayDetails exports every session of one date.
func (s *ExportService) DayDetails(ctx context.Context, req dto.DayDetailsQuery, opts dto.ExportQuery) (*dto.ExportFile, error) {
	format, err := s.format(opts)
	if err != nil {
		return nil, err
	}
	sessions, err := s.days.DayDetails(ctx, req)
	if err != nil {
		return nil, err
	}
	// DayDetails already rejected malformed dates.
	date, _ := query.NormalizeDate(req.Date)
	return s.render(format, "day-details-"+date, "Day details "+date, sessions)
}

func (s *ExportService) format(opts dto.ExportQuery) (string, error) {
	opts.Format = strings.ToLower(strings.TrimSpace(opts.Format))
	if err := s.validator.Struct(opts); err != nil {
		return "", validationError(err)
	}
	format := opts.Format
	if format == "" {
		format = FormatCSV
	}
	return format, nil
}

func (s *ExportService) render(format, basename, title string, sessions []models.Session) (*dto.ExportFile, error) {
	var (
		body []byte
		err  error
	)
	switch format {
	case FormatPDF:
		body, err = s.pdf.Render(sessionDataset(sessions), title)
	case FormatXLSX:
		body, err = s.xlsx.Render(sessionDataset(sessions), title)
	case FormatICS:
		body, err = s.ics.Render(s.calendarEvents(sessions), title)
	default:
		body, err = s.csv.Render(sessionDataset(sessions))
	}
	if err != nil {
		s.logger.Error("render export failed", zap.String("format", format), zap.Error(err))
		return nil, appErrors.Internal(fmt.Errorf("render %s: %w", format, err))
	}
	return &dto.ExportFile{
		Filename:    basename + "." + format,
		ContentType: formatContentTypes[format],
		Body:        body,
	}, nil
}

func sessionDataset(sessions []models.Session) export.Dataset {
	rows := make([]map[string]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, map[string]string{
			"Date":     s.TimetableDate,
			"Day":      s.DayName,
			"Start":    deref(s.StartTime),
			"End":      deref(s.EndTime),
			"Subject":  deref(s.SubjectName),
			"Code":     deref(s.SubjectCode),
			"Room":     deref(s.RoomName),
			"Building": deref(s.FloorBuilding),
			"Faculty":  strings.TrimSpace(deref(s.FacultyFirstName) + " " + deref(s.FacultyLastName)),
			"Sections": deref(s.ClassName),
			"Program":  programNames(s.Sections),
		})
	}
	return export.Dataset{Headers: sessionHeaders, Rows: rows}
}

// calendarEvents turns sessions into timed events. Sessions without a start
// time cannot be placed on a calendar and are skipped.
func (s *ExportService) calendarEvents(sessions []models.Session) []export.CalendarEvent {
	events := make([]export.CalendarEvent, 0, len(sessions))
	for _, sess := range sessions {
		start, err := time.ParseInLocation(query.DateLayout+" 15:04", sess.TimetableDate+" "+deref(sess.StartTime), s.loc)
		if err != nil {
			continue
		}
		end, err := time.ParseInLocation(query.DateLayout+" 15:04", sess.TimetableDate+" "+deref(sess.EndTime), s.loc)
		if err != nil {
			end = start
		}
		summary := deref(sess.SubjectName)
		if summary == "" {
			summary = "Class session"
		}
		desc := strings.TrimSpace(deref(sess.FacultyFirstName) + " " + deref(sess.FacultyLastName))
		if sections := deref(sess.ClassName); sections != "" {
			desc = strings.TrimSpace(desc + "\n" + sections)
		}
		events = append(events, export.CalendarEvent{
			UID:         fmt.Sprintf("timetable-%d@timetable-api", sess.TimetableID),
			Start:       start,
			End:         end,
			Summary:     summary,
			Location:    deref(sess.RoomName),
			Description: desc,
		})
	}
	return events
}

func programNames(sections []models.SectionRef) string {
	var names []string
	seen := make(map[string]bool)
	for _, sec := range sections {
		name := deref(sec.SchoolName)
		if name == "" && sec.SchoolID != nil {
			name = strconv.FormatInt(*sec.SchoolID, 10)
		}
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
