package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-timetable-api/internal/dto"
	"github.com/noah-isme/sma-timetable-api/internal/models"
	"github.com/noah-isme/sma-timetable-api/internal/query"
)

type timetableRepository interface {
	ByDivision(ctx context.Context, filter models.DivisionFilter) ([]models.DivisionSummary, error)
	DivisionDetails(ctx context.Context, classID, date string) ([]models.Session, error)
	ByFaculty(ctx context.Context, filter models.FacultyFilter) ([]models.FacultySummary, error)
	FacultyDetails(ctx context.Context, facultyID, date string) ([]models.Session, error)
	ByDay(ctx context.Context, from, to string) ([]models.DaySummary, error)
	DayDetails(ctx context.Context, date string) ([]models.Session, error)
}

// TimetableServiceConfig tunes the timetable reports.
type TimetableServiceConfig struct {
	Location *time.Location
	// ByDayDefaultSpan is added to the start when the by-day range has no end.
	ByDayDefaultSpan time.Duration
}

// TimetableService serves the per-class, per-faculty and per-day reports.
type TimetableService struct {
	repo      timetableRepository
	validator *validator.Validate
	logger    *zap.Logger
	clock     reportClock
	cfg       TimetableServiceConfig
}

// NewTimetableService constructs a TimetableService.
func NewTimetableService(repo timetableRepository, validate *validator.Validate, logger *zap.Logger, cfg TimetableServiceConfig) *TimetableService {
	if validate == nil {
		validate = NewQueryValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ByDayDefaultSpan <= 0 {
		cfg.ByDayDefaultSpan = 7 * 24 * time.Hour
	}
	return &TimetableService{
		repo:      repo,
		validator: validate,
		logger:    logger,
		clock:     newReportClock(cfg.Location),
		cfg:       cfg,
	}
}

// ByDivision summarises each active class on a date.
func (s *TimetableService) ByDivision(ctx context.Context, req dto.DivisionQuery) ([]models.DivisionSummary, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	date, err := s.clock.date(req.Date)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ByDivision(ctx, models.DivisionFilter{Date: date, Program: req.Program})
	if err != nil {
		return nil, storeFailure(s.logger, "timetable_by_division", err)
	}
	return nonNil(rows), nil
}

// DivisionDetails lists one class's sessions on a date.
func (s *TimetableService) DivisionDetails(ctx context.Context, req dto.DivisionDetailsQuery) ([]models.Session, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	date, err := s.clock.date(req.Date)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.DivisionDetails(ctx, req.ClassID, date)
	if err != nil {
		return nil, storeFailure(s.logger, "timetable_division_details", err)
	}
	return collapseSessions(rows), nil
}

// ByFaculty summarises each faculty member's teaching on a date.
func (s *TimetableService) ByFaculty(ctx context.Context, req dto.FacultyQuery) ([]models.FacultySummary, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	date, err := s.clock.date(req.Date)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ByFaculty(ctx, models.FacultyFilter{Date: date, FacultyID: req.FacultyID})
	if err != nil {
		return nil, storeFailure(s.logger, "timetable_by_faculty", err)
	}
	return nonNil(rows), nil
}

// FacultyDetails lists one faculty member's sessions on a date.
func (s *TimetableService) FacultyDetails(ctx context.Context, req dto.FacultyDetailsQuery) ([]models.Session, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	date, err := s.clock.date(req.Date)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.FacultyDetails(ctx, req.FacultyID, date)
	if err != nil {
		return nil, storeFailure(s.logger, "timetable_faculty_details", err)
	}
	return collapseSessions(rows), nil
}

// ByDay summarises every date of an inclusive range. The start defaults to
// today and the end to the start plus the configured span.
func (s *TimetableService) ByDay(ctx context.Context, req dto.DayRangeQuery) ([]models.DaySummary, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	from, err := s.clock.date(req.StartDate)
	if err != nil {
		return nil, err
	}
	// An open range ends one span after its start.
	start, _ := time.Parse(query.DateLayout, from)
	to, err := query.DateOrToday(req.EndDate, start.Add(s.cfg.ByDayDefaultSpan))
	if err != nil {
		return nil, err
	}
	// Both are YYYY-MM-DD so lexical order is calendar order. An inverted
	// range holds no dates.
	if to < from {
		return []models.DaySummary{}, nil
	}

	rows, err := s.repo.ByDay(ctx, from, to)
	if err != nil {
		return nil, storeFailure(s.logger, "timetable_by_day", err)
	}
	return nonNil(rows), nil
}

// DayDetails lists every session on a date. The date is required.
func (s *TimetableService) DayDetails(ctx context.Context, req dto.DayDetailsQuery) ([]models.Session, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	date, err := query.NormalizeDate(req.Date)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.DayDetails(ctx, date)
	if err != nil {
		return nil, storeFailure(s.logger, "timetable_day_details", err)
	}
	return collapseSessions(rows), nil
}
