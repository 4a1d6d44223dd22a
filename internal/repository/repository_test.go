package repository

import (
	"database/sql/driver"
	"sync"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-timetable-api/internal/query"
)

var sessionColumns = []string{
	"timetable_id", "timetable_date", "day_name", "start_time", "end_time",
	"subject_name", "subject_code", "room_id", "room_name", "floor_name", "floor_building",
	"faculty_id", "faculty_first_name", "faculty_last_name",
	"class_id", "class_name", "class_year", "school_id", "school_name", "school_code",
}

type recordingObserver struct {
	mu     sync.Mutex
	labels []string
}

func (o *recordingObserver) ObserveDBQuery(label string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.labels = append(o.labels, label)
}

func newRepoMock(t *testing.T, driver string) (Source, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	dialect, err := query.DialectFor(driver)
	require.NoError(t, err)

	src := Source{DB: sqlx.NewDb(db, driver), Dialect: dialect}
	return src, mock, func() { db.Close() }
}

func sessionRow(id int64, classID int64, className string) []driver.Value {
	return []driver.Value{
		id, "2024-03-04", "Monday", "08:00", "09:30",
		"Algebra", "MTH101", int64(12), "R-101", "Ground", "Main",
		int64(7), "Ada", "Lovelace",
		classID, className, "2024", int64(9), "Engineering", int64(9),
	}
}

func TestNewReaderDefaultsToMySQL(t *testing.T) {
	r := newReader(Source{})
	require.Equal(t, "mysql", r.dialect.Name())
}
