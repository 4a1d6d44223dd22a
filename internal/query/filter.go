package query

import (
	"strings"
	"time"

	"github.com/noah-isme/sma-timetable-api/internal/models"
)

// Column references of the timetable join graph.
const (
	colDate      = "dt.timetable_date"
	colStart     = "dt.timetable_start_time"
	colEnd       = "dt.timetable_end_time"
	colFaculty   = "dt.timetable_faculty"
	colRoom      = "dt.timetable_room"
	colSubject   = "dt.timetable_subject"
	colSchool    = "dice_school.school_id"
	colClass     = "dc.class_id"
	colClassYear = "dc.class_course_year"
	colRoomDel   = "dr.room_is_delete"
	colBuilding  = "df.floor_building"
)

// Clause is an ordered list of predicates and the values bound to their placeholders.
type Clause struct {
	Predicates []string
	Args       []interface{}
}

// Add appends a predicate together with the values for its placeholders.
func (c *Clause) Add(predicate string, args ...interface{}) {
	c.Predicates = append(c.Predicates, predicate)
	c.Args = append(c.Args, args...)
}

// Where renders the predicates as a WHERE clause, or an empty string when there are none.
func (c Clause) Where() string {
	if len(c.Predicates) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(c.Predicates, " AND ")
}

// IsAll reports whether a filter value leaves its dimension unconstrained.
func IsAll(value string) bool {
	value = strings.TrimSpace(value)
	return value == "" || strings.EqualFold(value, models.AllSentinel)
}

// TimeBand is a start-end range entries must fit into.
type TimeBand struct {
	Start string
	End   string
}

// ParseTimeBand parses "HH:MM-HH:MM" (seconds optional). ok is false for anything else.
func ParseTimeBand(raw string) (TimeBand, bool) {
	start, end, found := strings.Cut(strings.TrimSpace(raw), "-")
	if !found {
		return TimeBand{}, false
	}
	s, ok := parseClock(start)
	if !ok {
		return TimeBand{}, false
	}
	e, ok := parseClock(end)
	if !ok {
		return TimeBand{}, false
	}
	return TimeBand{Start: s, End: e}, true
}

func parseClock(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("15:04:05"), true
		}
	}
	return "", false
}

// Baseline returns the predicates every timetable report carries: the date (or
// date range) and the visible-room conditions.
func Baseline(f models.TimetableFilter) Clause {
	var c Clause
	switch {
	case f.DateFrom != "" && f.DateTo != "":
		c.Add(colDate+" BETWEEN ? AND ?", f.DateFrom, f.DateTo)
	default:
		c.Add(colDate+" = ?", f.Date)
	}
	c.Add(colRoomDel + " = 0")
	c.Add(NotBlank(colBuilding))
	return c
}

// Resolve translates a timetable filter into predicates. Values are always bound;
// only fixed column expressions reach the SQL text.
func Resolve(d Dialect, f models.TimetableFilter) Clause {
	c := Baseline(f)

	equals := []struct {
		column string
		value  string
	}{
		{colSchool, f.Program},
		{colClassYear, f.Year},
		{colClass, f.Section},
		{colFaculty, f.Faculty},
		{colRoom, f.Room},
		{colSubject, f.Subject},
	}
	for _, eq := range equals {
		if IsAll(eq.value) {
			continue
		}
		c.Add(eq.column+" = ?", strings.TrimSpace(eq.value))
	}

	if !IsAll(f.Day) {
		c.Add(d.DayName(colDate)+" = ?", strings.TrimSpace(f.Day))
	}

	if !IsAll(f.Time) {
		if band, ok := ParseTimeBand(f.Time); ok {
			c.Add(d.TimeOf(colStart)+" >= ?", band.Start)
			c.Add(d.TimeOf(colEnd)+" <= ?", band.End)
		}
	}

	return c
}
