package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-timetable-api/internal/dto"
	"github.com/noah-isme/sma-timetable-api/internal/models"
	appErrors "github.com/noah-isme/sma-timetable-api/pkg/errors"
)

type fakeTimetableRepo struct {
	divisions    []models.DivisionSummary
	faculties    []models.FacultySummary
	days         []models.DaySummary
	sessions     []models.Session
	err          error
	divFilter    models.DivisionFilter
	facFilter    models.FacultyFilter
	detailArgs   []string
	rangeFrom    string
	rangeTo      string
	dayDetailsOn string
}

func (f *fakeTimetableRepo) ByDivision(_ context.Context, filter models.DivisionFilter) ([]models.DivisionSummary, error) {
	f.divFilter = filter
	return f.divisions, f.err
}

func (f *fakeTimetableRepo) DivisionDetails(_ context.Context, classID, date string) ([]models.Session, error) {
	f.detailArgs = []string{classID, date}
	return f.sessions, f.err
}

func (f *fakeTimetableRepo) ByFaculty(_ context.Context, filter models.FacultyFilter) ([]models.FacultySummary, error) {
	f.facFilter = filter
	return f.faculties, f.err
}

func (f *fakeTimetableRepo) FacultyDetails(_ context.Context, facultyID, date string) ([]models.Session, error) {
	f.detailArgs = []string{facultyID, date}
	return f.sessions, f.err
}

func (f *fakeTimetableRepo) ByDay(_ context.Context, from, to string) ([]models.DaySummary, error) {
	f.rangeFrom, f.rangeTo = from, to
	return f.days, f.err
}

func (f *fakeTimetableRepo) DayDetails(_ context.Context, date string) ([]models.Session, error) {
	f.dayDetailsOn = date
	return f.sessions, f.err
}

func newTestTimetableService(repo *fakeTimetableRepo) *TimetableService {
	svc := NewTimetableService(repo, nil, nil, TimetableServiceConfig{Location: time.UTC})
	svc.clock.now = func() time.Time { return time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestTimetableServiceByDivisionPassesProgram(t *testing.T) {
	repo := &fakeTimetableRepo{}
	svc := newTestTimetableService(repo)

	rows, err := svc.ByDivision(context.Background(), dto.DivisionQuery{Program: "5"})
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
	assert.Equal(t, models.DivisionFilter{Date: "2024-03-04", Program: "5"}, repo.divFilter)
}

func TestTimetableServiceDetailsRequireIDs(t *testing.T) {
	svc := newTestTimetableService(&fakeTimetableRepo{})

	_, err := svc.DivisionDetails(context.Background(), dto.DivisionDetailsQuery{Date: "2024-03-04"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
	assert.Equal(t, "classId is required", appErrors.FromError(err).Detail())

	_, err = svc.FacultyDetails(context.Background(), dto.FacultyDetailsQuery{})
	require.Error(t, err)
	assert.Equal(t, "facultyId is required", appErrors.FromError(err).Detail())
}

func TestTimetableServiceFacultyDetailsCollapsesSessions(t *testing.T) {
	repo := &fakeTimetableRepo{sessions: []models.Session{
		session(1, "Monday", "08:00", 3, "CS-A"),
		session(1, "Monday", "08:00", 4, "CS-B"),
	}}
	svc := newTestTimetableService(repo)

	rows, err := svc.FacultyDetails(context.Background(), dto.FacultyDetailsQuery{FacultyID: "7", Date: "2024-03-04"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0].Sections, 2)
	assert.Equal(t, []string{"7", "2024-03-04"}, repo.detailArgs)
}

func TestTimetableServiceByFacultyDefaultsDate(t *testing.T) {
	repo := &fakeTimetableRepo{}
	svc := newTestTimetableService(repo)

	_, err := svc.ByFaculty(context.Background(), dto.FacultyQuery{FacultyID: "all"})
	require.NoError(t, err)
	assert.Equal(t, models.FacultyFilter{Date: "2024-03-04", FacultyID: "all"}, repo.facFilter)
}

func TestTimetableServiceByDayDefaults(t *testing.T) {
	repo := &fakeTimetableRepo{}
	svc := newTestTimetableService(repo)

	_, err := svc.ByDay(context.Background(), dto.DayRangeQuery{})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-04", repo.rangeFrom)
	assert.Equal(t, "2024-03-11", repo.rangeTo)

	_, err = svc.ByDay(context.Background(), dto.DayRangeQuery{StartDate: "2024-04-01"})
	require.NoError(t, err)
	assert.Equal(t, "2024-04-01", repo.rangeFrom)
	assert.Equal(t, "2024-04-08", repo.rangeTo)
}

func TestTimetableServiceByDayInvertedRangeIsEmpty(t *testing.T) {
	repo := &fakeTimetableRepo{days: []models.DaySummary{{TimetableDate: "2024-03-05"}}}
	svc := newTestTimetableService(repo)

	rows, err := svc.ByDay(context.Background(), dto.DayRangeQuery{StartDate: "2024-03-10", EndDate: "2024-03-01"})
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
	assert.Empty(t, repo.rangeFrom)
}

func TestTimetableServiceDayDetails(t *testing.T) {
	repo := &fakeTimetableRepo{}
	svc := newTestTimetableService(repo)

	_, err := svc.DayDetails(context.Background(), dto.DayDetailsQuery{})
	require.Error(t, err)
	assert.Equal(t, "date is required", appErrors.FromError(err).Detail())

	rows, err := svc.DayDetails(context.Background(), dto.DayDetailsQuery{Date: "2024-03-04T17:00:00.000Z"})
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Equal(t, "2024-03-04", repo.dayDetailsOn)
}

func TestTimetableServiceStoreFailure(t *testing.T) {
	svc := newTestTimetableService(&fakeTimetableRepo{err: errors.New("query timetable_by_day: deadlock")})

	_, err := svc.ByDay(context.Background(), dto.DayRangeQuery{})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Equal(t, "query timetable_by_day: deadlock", appErr.Detail())
}
