package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/sma-timetable-api/internal/dto"
	"github.com/noah-isme/sma-timetable-api/internal/models"
)

type dashboardRepository interface {
	Timetable(ctx context.Context, filter models.TimetableFilter) ([]models.Session, error)
	CountScheduled(ctx context.Context, date string) (int, error)
	CountUnscheduledClasses(ctx context.Context, date string) (int, error)
	Programs(ctx context.Context, minSchoolID int) ([]models.ProgramOption, error)
	Years(ctx context.Context) ([]string, error)
	Sections(ctx context.Context) ([]models.SectionOption, error)
	Faculties(ctx context.Context) ([]models.FacultyOption, error)
	Rooms(ctx context.Context) ([]models.RoomOption, error)
	Subjects(ctx context.Context) ([]models.SubjectOption, error)
}

// DashboardServiceConfig tunes dashboard behaviour.
type DashboardServiceConfig struct {
	Location           *time.Location
	ProgramIDThreshold int
}

// DashboardService composes the dashboard header, timetable and filter lists.
type DashboardService struct {
	repo      dashboardRepository
	validator *validator.Validate
	logger    *zap.Logger
	clock     reportClock
	cfg       DashboardServiceConfig
}

// DashboardServiceParams groups constructor dependencies.
type DashboardServiceParams struct {
	Repository dashboardRepository
	Validator  *validator.Validate
	Logger     *zap.Logger
	Config     DashboardServiceConfig
}

// NewDashboardService constructs a DashboardService with sane defaults.
func NewDashboardService(params DashboardServiceParams) *DashboardService {
	cfg := params.Config
	if cfg.ProgramIDThreshold <= 0 {
		cfg.ProgramIDThreshold = 6
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	validate := params.Validator
	if validate == nil {
		validate = NewQueryValidator()
	}
	return &DashboardService{
		repo:      params.Repository,
		validator: validate,
		logger:    logger,
		clock:     newReportClock(cfg.Location),
		cfg:       cfg,
	}
}

// Stats counts scheduled sessions and unscheduled sections on a date. Both
// counts run concurrently; the first failure cancels the other.
func (s *DashboardService) Stats(ctx context.Context, req dto.DateQuery) (*models.DashboardStats, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	date, err := s.clock.date(req.Date)
	if err != nil {
		return nil, err
	}

	var stats models.DashboardStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		total, err := s.repo.CountScheduled(gctx, date)
		if err != nil {
			return err
		}
		stats.TotalScheduled = total
		return nil
	})
	g.Go(func() error {
		total, err := s.repo.CountUnscheduledClasses(gctx, date)
		if err != nil {
			return err
		}
		stats.TotalUnscheduled = total
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, storeFailure(s.logger, "dashboard_stats", err)
	}
	return &stats, nil
}

// Timetable returns the filtered sessions of a date grouped by weekday. Each
// session appears once even when it serves several sections.
func (s *DashboardService) Timetable(ctx context.Context, req dto.TimetableQuery) (*dto.TimetableResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	date, err := s.clock.date(req.Date)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.Timetable(ctx, models.TimetableFilter{
		Date:    date,
		Program: req.Program,
		Year:    req.Year,
		Section: req.Section,
		Faculty: req.Faculty,
		Room:    req.Room,
		Subject: req.Subject,
		Day:     req.Day,
		Time:    req.Time,
	})
	if err != nil {
		return nil, storeFailure(s.logger, "dashboard_timetable", err)
	}
	resp := groupByDay(collapseSessions(rows))
	resp.Date = date
	return resp, nil
}

// Filters loads every lookup list the dashboard filters offer.
func (s *DashboardService) Filters(ctx context.Context) (*dto.FilterOptions, error) {
	opts := &dto.FilterOptions{
		Days:  append([]string(nil), weekdays...),
		Times: append([]models.TimeBandOption(nil), timeBands...),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		opts.Programs, err = s.repo.Programs(gctx, s.cfg.ProgramIDThreshold)
		return err
	})
	g.Go(func() (err error) {
		opts.Years, err = s.repo.Years(gctx)
		return err
	})
	g.Go(func() (err error) {
		opts.Sections, err = s.repo.Sections(gctx)
		return err
	})
	g.Go(func() (err error) {
		opts.Faculties, err = s.repo.Faculties(gctx)
		return err
	})
	g.Go(func() (err error) {
		opts.Rooms, err = s.repo.Rooms(gctx)
		return err
	})
	g.Go(func() (err error) {
		opts.Subjects, err = s.repo.Subjects(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, storeFailure(s.logger, "dashboard_filters", err)
	}

	opts.Programs = nonNil(opts.Programs)
	opts.Years = nonNil(opts.Years)
	opts.Sections = nonNil(opts.Sections)
	opts.Faculties = nonNil(opts.Faculties)
	opts.Rooms = nonNil(opts.Rooms)
	opts.Subjects = nonNil(opts.Subjects)
	return opts, nil
}
