package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-timetable-api/internal/models"
)

func TestDashboardRepositoryTimetableBindsFilters(t *testing.T) {
	src, mock, cleanup := newRepoMock(t, "mysql")
	defer cleanup()
	observer := &recordingObserver{}
	src.Observer = observer
	repo := NewDashboardRepository(src)

	where := "WHERE dt.timetable_date = ? AND dr.room_is_delete = 0 AND TRIM(df.floor_building) <> '' " +
		"AND dice_school.school_id = ? AND DAYNAME(dt.timetable_date) = ? " +
		"AND TIME(dt.timetable_start_time) >= ? AND TIME(dt.timetable_end_time) <= ? " +
		"ORDER BY dt.timetable_start_time ASC"

	rows := sqlmock.NewRows(sessionColumns).
		AddRow(sessionRow(1, 3, "CS-A")...).
		AddRow(sessionRow(1, 4, "CS-B")...)
	mock.ExpectQuery(regexp.QuoteMeta(where)).
		WithArgs("2024-03-04", "5", "Monday", "07:30:00", "12:00:00").
		WillReturnRows(rows)

	sessions, err := repo.Timetable(context.Background(), models.TimetableFilter{
		Date:    "2024-03-04",
		Program: "5",
		Year:    "all",
		Day:     "Monday",
		Time:    "07:30-12:00",
	})
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	require.Equal(t, "Monday", sessions[0].DayName)
	require.Equal(t, "08:00", *sessions[0].StartTime)
	require.Equal(t, int64(4), *sessions[1].ClassID)
	require.Equal(t, []string{"dashboard_timetable"}, observer.labels)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepositoryTimetableSelectsFormattedColumns(t *testing.T) {
	src, mock, cleanup := newRepoMock(t, "mysql")
	defer cleanup()
	repo := NewDashboardRepository(src)

	mock.ExpectQuery(regexp.QuoteMeta("DATE_FORMAT(dt.timetable_date, '%Y-%m-%d') AS timetable_date, DAYNAME(dt.timetable_date) AS day_name, TIME_FORMAT(dt.timetable_start_time, '%H:%i') AS start_time")).
		WithArgs("2024-03-04").
		WillReturnRows(sqlmock.NewRows(sessionColumns))

	sessions, err := repo.Timetable(context.Background(), models.TimetableFilter{Date: "2024-03-04"})
	require.NoError(t, err)
	require.Empty(t, sessions)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepositoryCounts(t *testing.T) {
	src, mock, cleanup := newRepoMock(t, "mysql")
	defer cleanup()
	repo := NewDashboardRepository(src)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(DISTINCT dt.timetable_id) AS total_scheduled FROM dice_timetable dt WHERE dt.timetable_date = ?")).
		WithArgs("2024-03-04").
		WillReturnRows(sqlmock.NewRows([]string{"total_scheduled"}).AddRow(14))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(DISTINCT dc.class_id) AS total_unscheduled FROM dice_class dc")).
		WithArgs("2024-03-04").
		WillReturnRows(sqlmock.NewRows([]string{"total_unscheduled"}).AddRow(3))

	scheduled, err := repo.CountScheduled(context.Background(), "2024-03-04")
	require.NoError(t, err)
	require.Equal(t, 14, scheduled)

	unscheduled, err := repo.CountUnscheduledClasses(context.Background(), "2024-03-04")
	require.NoError(t, err)
	require.Equal(t, 3, unscheduled)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepositoryCountUnscheduledRequiresActiveCluster(t *testing.T) {
	src, mock, cleanup := newRepoMock(t, "mysql")
	defer cleanup()
	repo := NewDashboardRepository(src)

	mock.ExpectQuery(regexp.QuoteMeta("dc.class_active = 0 AND dc.class_type = 1 AND dcl.cluster_active = 0 AND NOT EXISTS")).
		WithArgs("2024-03-04").
		WillReturnRows(sqlmock.NewRows([]string{"total_unscheduled"}).AddRow(0))

	_, err := repo.CountUnscheduledClasses(context.Background(), "2024-03-04")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepositoryWrapsStoreErrors(t *testing.T) {
	src, mock, cleanup := newRepoMock(t, "mysql")
	defer cleanup()
	repo := NewDashboardRepository(src)

	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("connection refused"))

	_, err := repo.CountScheduled(context.Background(), "2024-03-04")
	require.Error(t, err)
	require.Contains(t, err.Error(), "query dashboard_count_scheduled")
	require.Contains(t, err.Error(), "connection refused")
}

func TestDashboardRepositoryFilterOptions(t *testing.T) {
	src, mock, cleanup := newRepoMock(t, "mysql")
	defer cleanup()
	repo := NewDashboardRepository(src)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("FROM dice_school WHERE school_id > ?")).
		WithArgs(6).
		WillReturnRows(sqlmock.NewRows([]string{"school_id", "school_name", "school_code"}).AddRow(7, "Business", 7))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT class_course_year AS class_year FROM dice_class")).
		WillReturnRows(sqlmock.NewRows([]string{"class_year"}).AddRow("2023").AddRow("2024"))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE class_active = 0 AND class_type = 1")).
		WillReturnRows(sqlmock.NewRows([]string{"class_name", "class_id"}).AddRow("CS-A", 3))
	mock.ExpectQuery(regexp.QuoteMeta("FROM dice_faculties WHERE faculty_active = 0")).
		WillReturnRows(sqlmock.NewRows([]string{"faculty_id", "faculty_first_name", "faculty_last_name"}).AddRow(7, "Ada", nil))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE dr.room_is_delete = 0 AND TRIM(df.floor_building) <> ''")).
		WillReturnRows(sqlmock.NewRows([]string{"room_id", "room_name", "floor_building", "floor_name"}).AddRow(12, "R-101", "Main", "Ground"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM dice_subject WHERE subject_active = 0")).
		WillReturnRows(sqlmock.NewRows([]string{"subject_id", "subject_name", "subject_code"}).AddRow(2, "Algebra", "MTH101"))

	programs, err := repo.Programs(ctx, 6)
	require.NoError(t, err)
	require.Equal(t, []models.ProgramOption{{SchoolID: 7, SchoolName: strPtr("Business"), SchoolCode: 7}}, programs)

	years, err := repo.Years(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"2023", "2024"}, years)

	sections, err := repo.Sections(ctx)
	require.NoError(t, err)
	require.Len(t, sections, 1)

	faculties, err := repo.Faculties(ctx)
	require.NoError(t, err)
	require.Nil(t, faculties[0].FacultyLastName)

	rooms, err := repo.Rooms(ctx)
	require.NoError(t, err)
	require.Equal(t, "Main", *rooms[0].FloorBuilding)

	subjects, err := repo.Subjects(ctx)
	require.NoError(t, err)
	require.Equal(t, "MTH101", *subjects[0].SubjectCode)

	require.NoError(t, mock.ExpectationsWereMet())
}
