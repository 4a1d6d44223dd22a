package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-timetable-api/internal/models"
)

var divisionColumns = []string{"class_name", "class_id", "school_name", "school_code", "school_id", "total_classes", "first_class", "last_class"}

func TestTimetableRepositoryByDivisionRestrictsProgram(t *testing.T) {
	src, mock, cleanup := newRepoMock(t, "mysql")
	defer cleanup()
	repo := NewTimetableRepository(src)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE dt.timetable_date = ? AND dc.class_active = 0 AND dcl.cluster_active = 0 AND dice_school.school_id = ? GROUP BY dc.class_id")).
		WithArgs("2024-03-04", "5").
		WillReturnRows(sqlmock.NewRows(divisionColumns).
			AddRow("CS-A", 3, "Engineering", 5, 5, 4, "08:00", "15:00"))

	rows, err := repo.ByDivision(context.Background(), models.DivisionFilter{Date: "2024-03-04", Program: " 5 "})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, int64(5), rows[0].SchoolID)
	require.Equal(t, 4, rows[0].TotalClasses)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTimetableRepositoryByDivisionCountsOverClassJoin(t *testing.T) {
	src, mock, cleanup := newRepoMock(t, "mysql")
	defer cleanup()
	repo := NewTimetableRepository(src)

	// COUNT over the timetable_class join, not COUNT(DISTINCT).
	mock.ExpectQuery(regexp.QuoteMeta("COUNT(dt.timetable_id) AS total_classes") + ".*" + regexp.QuoteMeta("JOIN dice_timetable_class dtc ON dtc.timetable_id = dt.timetable_id")).
		WithArgs("2024-03-04").
		WillReturnRows(sqlmock.NewRows(divisionColumns).
			AddRow("CS-A", 3, "Engineering", 9, 9, 1, "08:00", "09:30").
			AddRow("CS-B", 4, "Engineering", 9, 9, 1, "08:00", "09:30"))

	rows, err := repo.ByDivision(context.Background(), models.DivisionFilter{Date: "2024-03-04", Program: "all"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTimetableRepositoryByFacultyListsSchools(t *testing.T) {
	src, mock, cleanup := newRepoMock(t, "mysql")
	defer cleanup()
	repo := NewTimetableRepository(src)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP_CONCAT(DISTINCT dice_school.school_name SEPARATOR ', ') AS schools") + ".*" + regexp.QuoteMeta("WHERE dt.timetable_date = ? AND dfc.faculty_id = ?")).
		WithArgs("2024-03-04", "7").
		WillReturnRows(sqlmock.NewRows([]string{"faculty_id", "faculty_first_name", "faculty_last_name", "total_classes", "first_class", "last_class", "schools"}).
			AddRow(7, "Ada", "Lovelace", 3, "08:00", "14:00", "Business, Engineering"))

	rows, err := repo.ByFaculty(context.Background(), models.FacultyFilter{Date: "2024-03-04", FacultyID: "7"})
	require.NoError(t, err)
	require.Equal(t, "Business, Engineering", *rows[0].Schools)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTimetableRepositoryDetails(t *testing.T) {
	src, mock, cleanup := newRepoMock(t, "mysql")
	defer cleanup()
	repo := NewTimetableRepository(src)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE dc.class_id = ? AND dt.timetable_date = ? ORDER BY dt.timetable_start_time")).
		WithArgs("3", "2024-03-04").
		WillReturnRows(sqlmock.NewRows(sessionColumns).AddRow(sessionRow(1, 3, "CS-A")...))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE dt.timetable_faculty = ? AND dt.timetable_date = ? ORDER BY")).
		WithArgs("7", "2024-03-04").
		WillReturnRows(sqlmock.NewRows(sessionColumns).AddRow(sessionRow(1, 3, "CS-A")...))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE dt.timetable_date = ? ORDER BY")).
		WithArgs("2024-03-04").
		WillReturnRows(sqlmock.NewRows(sessionColumns))

	division, err := repo.DivisionDetails(ctx, "3", "2024-03-04")
	require.NoError(t, err)
	require.Len(t, division, 1)

	faculty, err := repo.FacultyDetails(ctx, "7", "2024-03-04")
	require.NoError(t, err)
	require.Equal(t, "Ada", *faculty[0].FacultyFirstName)

	day, err := repo.DayDetails(ctx, "2024-03-04")
	require.NoError(t, err)
	require.Empty(t, day)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTimetableRepositoryByDayPostgres(t *testing.T) {
	src, mock, cleanup := newRepoMock(t, "postgres")
	defer cleanup()
	repo := NewTimetableRepository(src)

	mock.ExpectQuery(regexp.QuoteMeta("TO_CHAR(dt.timetable_date, 'YYYY-MM-DD') AS timetable_date, TO_CHAR(dt.timetable_date, 'FMDay') AS day_name") + ".*" + regexp.QuoteMeta("WHERE dt.timetable_date BETWEEN $1 AND $2")).
		WithArgs("2024-03-04", "2024-03-11").
		WillReturnRows(sqlmock.NewRows([]string{"timetable_date", "day_name", "total_classes", "rooms_used", "faculties_involved", "first_class", "last_class"}).
			AddRow("2024-03-04", "Monday", 10, 4, 5, "07:30", "16:00"))

	days, err := repo.ByDay(context.Background(), "2024-03-04", "2024-03-11")
	require.NoError(t, err)
	require.Equal(t, []models.DaySummary{{
		TimetableDate:     "2024-03-04",
		DayName:           "Monday",
		TotalClasses:      10,
		RoomsUsed:         4,
		FacultiesInvolved: 5,
		FirstClass:        strPtr("07:30"),
		LastClass:         strPtr("16:00"),
	}}, days)
	require.NoError(t, mock.ExpectationsWereMet())
}

func strPtr(v string) *string { return &v }
