package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/sma-timetable-api/internal/query"
)

// QueryObserver receives the duration of every report query.
type QueryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

// Source bundles what every report repository reads through.
type Source struct {
	DB       *sqlx.DB
	Dialect  query.Dialect
	Observer QueryObserver
}

type reader struct {
	db       *sqlx.DB
	dialect  query.Dialect
	observer QueryObserver
}

func newReader(src Source) reader {
	d := src.Dialect
	if d == nil {
		d = query.MySQL{}
	}
	return reader{db: src.DB, dialect: d, observer: src.Observer}
}

func (r reader) selectAll(ctx context.Context, label string, dest interface{}, q string, args ...interface{}) error {
	start := time.Now()
	err := r.db.SelectContext(ctx, dest, r.db.Rebind(q), args...)
	r.observe(label, start)
	if err != nil {
		return fmt.Errorf("query %s: %w", label, err)
	}
	return nil
}

func (r reader) getOne(ctx context.Context, label string, dest interface{}, q string, args ...interface{}) error {
	start := time.Now()
	err := r.db.GetContext(ctx, dest, r.db.Rebind(q), args...)
	r.observe(label, start)
	if err != nil {
		return fmt.Errorf("query %s: %w", label, err)
	}
	return nil
}

func (r reader) observe(label string, start time.Time) {
	if r.observer != nil {
		r.observer.ObserveDBQuery(label, time.Since(start))
	}
}

// sessionSelect is the column list and join graph shared by every per-entry
// report. Class and school columns come from LEFT joins, so an entry linked to
// several classes yields one row per class.
func (r reader) sessionSelect() string {
	d := r.dialect
	return `SELECT
        dt.timetable_id,
        ` + d.DateText("dt.timetable_date") + ` AS timetable_date,
        ` + d.DayName("dt.timetable_date") + ` AS day_name,
        ` + d.HourMinute("dt.timetable_start_time") + ` AS start_time,
        ` + d.HourMinute("dt.timetable_end_time") + ` AS end_time,
        ds.subject_name,
        ds.subject_code,
        dr.room_id,
        dr.room_name,
        df.floor_name,
        df.floor_building,
        dfc.faculty_id,
        dfc.faculty_first_name,
        dfc.faculty_last_name,
        dc.class_id,
        dc.class_name,
        dc.class_course_year AS class_year,
        dice_school.school_id,
        dice_school.school_name,
        dice_school.school_id AS school_code
    FROM dice_timetable dt
    LEFT JOIN dice_subject ds ON ds.subject_id = dt.timetable_subject
    LEFT JOIN dice_room dr ON dr.room_id = dt.timetable_room
    LEFT JOIN dice_floor df ON df.floor_id = dr.room_floor
    LEFT JOIN dice_faculties dfc ON dfc.faculty_id = dt.timetable_faculty
    LEFT JOIN dice_timetable_class dtc ON dtc.timetable_id = dt.timetable_id
    LEFT JOIN dice_class dc ON dc.class_id = dtc.class_id
    LEFT JOIN dice_cluster dcl ON dcl.cluster_id = dc.class_cluster_id
    LEFT JOIN dice_school ON dice_school.school_id = dcl.cluster_school
    `
}

// sessionOrder keeps rows of one entry adjacent so they can be collapsed.
const sessionOrder = " ORDER BY dt.timetable_start_time ASC, dt.timetable_id ASC, dc.class_id ASC"
