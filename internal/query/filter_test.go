package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-timetable-api/internal/models"
)

func TestResolveAllSentinelsKeepsBaselineOnly(t *testing.T) {
	clause := Resolve(MySQL{}, models.TimetableFilter{
		Date:    "2024-03-04",
		Program: "all",
		Year:    "ALL",
		Section: "",
		Faculty: "all",
		Room:    " all ",
		Subject: "all",
		Day:     "all",
		Time:    "all",
	})

	assert.Equal(t, []string{
		"dt.timetable_date = ?",
		"dr.room_is_delete = 0",
		"TRIM(df.floor_building) <> ''",
	}, clause.Predicates)
	assert.Equal(t, []interface{}{"2024-03-04"}, clause.Args)
}

func TestResolveOrdersPredicatesAndArgs(t *testing.T) {
	clause := Resolve(MySQL{}, models.TimetableFilter{
		Date:    "2024-03-04",
		Program: "5",
		Year:    "2",
		Section: "41",
		Faculty: "7",
		Room:    "12",
		Subject: "99",
		Day:     "Monday",
		Time:    "07:30-12:00",
	})

	assert.Equal(t, []string{
		"dt.timetable_date = ?",
		"dr.room_is_delete = 0",
		"TRIM(df.floor_building) <> ''",
		"dice_school.school_id = ?",
		"dc.class_course_year = ?",
		"dc.class_id = ?",
		"dt.timetable_faculty = ?",
		"dt.timetable_room = ?",
		"dt.timetable_subject = ?",
		"DAYNAME(dt.timetable_date) = ?",
		"TIME(dt.timetable_start_time) >= ?",
		"TIME(dt.timetable_end_time) <= ?",
	}, clause.Predicates)
	assert.Equal(t, []interface{}{"2024-03-04", "5", "2", "41", "7", "12", "99", "Monday", "07:30:00", "12:00:00"}, clause.Args)
}

func TestResolveNeverInterpolatesValues(t *testing.T) {
	hostile := "1' OR '1'='1"
	clause := Resolve(Postgres{}, models.TimetableFilter{Date: "2024-03-04", Program: hostile, Day: hostile})

	for _, predicate := range clause.Predicates {
		assert.NotContains(t, predicate, hostile)
	}
	assert.Contains(t, clause.Args, hostile)
	assert.Contains(t, clause.Predicates, "TO_CHAR(dt.timetable_date, 'FMDay') = ?")
}

func TestResolveDateRangeUsesBetween(t *testing.T) {
	clause := Resolve(MySQL{}, models.TimetableFilter{DateFrom: "2024-03-04", DateTo: "2024-03-10"})

	require.NotEmpty(t, clause.Predicates)
	assert.Equal(t, "dt.timetable_date BETWEEN ? AND ?", clause.Predicates[0])
	assert.Equal(t, []interface{}{"2024-03-04", "2024-03-10"}, clause.Args[:2])
}

func TestResolveMalformedTimeIsDropped(t *testing.T) {
	for _, raw := range []string{"morning", "07:30", "07:30-", "-12:00", "25:00-26:00", "7h-12h"} {
		clause := Resolve(MySQL{}, models.TimetableFilter{Date: "2024-03-04", Time: raw})
		assert.Len(t, clause.Predicates, 3, raw)
	}
}

func TestParseTimeBand(t *testing.T) {
	band, ok := ParseTimeBand(" 07:30 - 12:00 ")
	require.True(t, ok)
	assert.Equal(t, TimeBand{Start: "07:30:00", End: "12:00:00"}, band)

	band, ok = ParseTimeBand("16:00:00-20:00:00")
	require.True(t, ok)
	assert.Equal(t, "20:00:00", band.End)
}

// Entries must fit inside the band: 07:00-12:00 starts too early, 08:00-11:30 fits.
func TestTimeBandContainment(t *testing.T) {
	band, ok := ParseTimeBand("07:30-12:00")
	require.True(t, ok)

	fits := func(start, end string) bool {
		return start >= band.Start && end <= band.End
	}
	assert.False(t, fits("07:00:00", "12:00:00"))
	assert.True(t, fits("08:00:00", "11:30:00"))
}

func TestClauseWhere(t *testing.T) {
	assert.Equal(t, "", Clause{}.Where())

	var c Clause
	c.Add("a = ?", 1)
	c.Add("b = ?", 2)
	assert.Equal(t, "WHERE a = ? AND b = ?", c.Where())
	assert.Equal(t, []interface{}{1, 2}, c.Args)
}

func TestDialectFor(t *testing.T) {
	d, err := DialectFor("mysql")
	require.NoError(t, err)
	assert.Equal(t, "GROUP_CONCAT(DISTINCT s.name SEPARATOR ', ')", d.DistinctList("s.name"))

	d, err = DialectFor("postgres")
	require.NoError(t, err)
	assert.Equal(t, "STRING_AGG(DISTINCT s.name, ', ')", d.DistinctList("s.name"))
	assert.Equal(t, "TO_CHAR(dt.timetable_start_time, 'HH24:MI')", d.HourMinute("dt.timetable_start_time"))

	_, err = DialectFor("sqlite")
	assert.Error(t, err)
}
