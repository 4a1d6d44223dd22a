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

type resourceRepository interface {
	Classrooms(ctx context.Context, filter models.ClassroomFilter) ([]models.RoomUsage, error)
	ClassroomSchedule(ctx context.Context, roomID, date string) ([]models.Session, error)
	UnscheduledClasses(ctx context.Context, date string) ([]models.UnscheduledClass, error)
	UnscheduledFaculties(ctx context.Context, date string) ([]models.UnscheduledFaculty, error)
	UnscheduledRooms(ctx context.Context, date string) ([]models.UnscheduledRoom, error)
}

// ResourceService reports room occupancy and idle resources.
type ResourceService struct {
	repo      resourceRepository
	validator *validator.Validate
	logger    *zap.Logger
	clock     reportClock
}

// NewResourceService constructs a ResourceService.
func NewResourceService(repo resourceRepository, validate *validator.Validate, logger *zap.Logger, loc *time.Location) *ResourceService {
	if validate == nil {
		validate = NewQueryValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResourceService{
		repo:      repo,
		validator: validate,
		logger:    logger,
		clock:     newReportClock(loc),
	}
}

// Classrooms lists visible rooms with their usage on a date.
func (s *ResourceService) Classrooms(ctx context.Context, req dto.ClassroomQuery) ([]models.RoomUsage, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	date, err := s.clock.date(req.Date)
	if err != nil {
		return nil, err
	}
	rooms, err := s.repo.Classrooms(ctx, models.ClassroomFilter{Date: date, Building: req.Building, Floor: req.Floor})
	if err != nil {
		return nil, storeFailure(s.logger, "resource_classrooms", err)
	}
	for i := range rooms {
		rooms[i].Status = roomStatus(rooms[i].ClassesToday)
	}
	return nonNil(rooms), nil
}

func roomStatus(classesToday int) string {
	if classesToday == 0 {
		return models.RoomStatusAvailable
	}
	return models.RoomStatusInUse
}

// ClassroomSchedule lists one room's sessions on a date.
func (s *ResourceService) ClassroomSchedule(ctx context.Context, req dto.ClassroomScheduleQuery) ([]models.Session, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	date, err := s.clock.date(req.Date)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ClassroomSchedule(ctx, req.RoomID, date)
	if err != nil {
		return nil, storeFailure(s.logger, "resource_classroom_schedule", err)
	}
	return collapseSessions(rows), nil
}

// Unscheduled lists the classes, faculty members and rooms idle on a date.
func (s *ResourceService) Unscheduled(ctx context.Context, req dto.DateQuery) (*dto.UnscheduledResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	date, err := s.clock.date(req.Date)
	if err != nil {
		return nil, err
	}

	var (
		classes   []models.UnscheduledClass
		faculties []models.UnscheduledFaculty
		rooms     []models.UnscheduledRoom
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		classes, err = s.repo.UnscheduledClasses(gctx, date)
		return err
	})
	g.Go(func() (err error) {
		faculties, err = s.repo.UnscheduledFaculties(gctx, date)
		return err
	})
	g.Go(func() (err error) {
		rooms, err = s.repo.UnscheduledRooms(gctx, date)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, storeFailure(s.logger, "resource_unscheduled", err)
	}

	for i := range classes {
		classes[i].Reason = models.ReasonNoSchedule
	}
	for i := range faculties {
		faculties[i].Reason = models.ReasonNotAssigned
	}
	for i := range rooms {
		rooms[i].Reason = models.ReasonAvailableAllDay
	}

	return &dto.UnscheduledResponse{
		Classes:   nonNil(classes),
		Faculties: nonNil(faculties),
		Rooms:     nonNil(rooms),
		Total:     len(classes) + len(faculties) + len(rooms),
	}, nil
}
