package repository

import (
	"context"
	"strings"

	"github.com/noah-isme/sma-timetable-api/internal/models"
	"github.com/noah-isme/sma-timetable-api/internal/query"
)

// TimetableRepository aggregates sessions by class, faculty and date, and
// lists the sessions behind each aggregate.
type TimetableRepository struct {
	reader
}

// NewTimetableRepository constructs the repository.
func NewTimetableRepository(src Source) *TimetableRepository {
	return &TimetableRepository{reader: newReader(src)}
}

// ByDivision summarises each active class's sessions on a date. The count is
// taken over the class join, so a session shared by several classes counts once
// per class.
func (r *TimetableRepository) ByDivision(ctx context.Context, filter models.DivisionFilter) ([]models.DivisionSummary, error) {
	var clause query.Clause
	clause.Add("dt.timetable_date = ?", filter.Date)
	clause.Add("dc.class_active = 0")
	clause.Add("dcl.cluster_active = 0")
	if !query.IsAll(filter.Program) {
		clause.Add("dice_school.school_id = ?", strings.TrimSpace(filter.Program))
	}

	d := r.dialect
	q := `SELECT
            dc.class_name,
            dc.class_id,
            dice_school.school_name,
            dice_school.school_id AS school_code,
            dice_school.school_id,
            COUNT(dt.timetable_id) AS total_classes,
            MIN(` + d.HourMinute("dt.timetable_start_time") + `) AS first_class,
            MAX(` + d.HourMinute("dt.timetable_end_time") + `) AS last_class
        FROM dice_timetable dt
        JOIN dice_timetable_class dtc ON dtc.timetable_id = dt.timetable_id
        JOIN dice_class dc ON dc.class_id = dtc.class_id
        JOIN dice_cluster dcl ON dcl.cluster_id = dc.class_cluster_id
        JOIN dice_school ON dice_school.school_id = dcl.cluster_school
        ` + clause.Where() + `
        GROUP BY dc.class_id, dc.class_name, dice_school.school_name, dice_school.school_id
        ORDER BY dice_school.school_name, dc.class_name`

	var rows []models.DivisionSummary
	if err := r.selectAll(ctx, "timetable_by_division", &rows, q, clause.Args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// DivisionDetails lists the sessions of one class on a date.
func (r *TimetableRepository) DivisionDetails(ctx context.Context, classID, date string) ([]models.Session, error) {
	q := r.sessionSelect() + "WHERE dc.class_id = ? AND dt.timetable_date = ?" + sessionOrder

	var rows []models.Session
	if err := r.selectAll(ctx, "timetable_division_details", &rows, q, classID, date); err != nil {
		return nil, err
	}
	return rows, nil
}

// ByFaculty summarises each faculty member's sessions on a date with the
// distinct schools they teach for.
func (r *TimetableRepository) ByFaculty(ctx context.Context, filter models.FacultyFilter) ([]models.FacultySummary, error) {
	var clause query.Clause
	clause.Add("dt.timetable_date = ?", filter.Date)
	if !query.IsAll(filter.FacultyID) {
		clause.Add("dfc.faculty_id = ?", strings.TrimSpace(filter.FacultyID))
	}

	d := r.dialect
	q := `SELECT
            dfc.faculty_id,
            dfc.faculty_first_name,
            dfc.faculty_last_name,
            COUNT(dt.timetable_id) AS total_classes,
            MIN(` + d.HourMinute("dt.timetable_start_time") + `) AS first_class,
            MAX(` + d.HourMinute("dt.timetable_end_time") + `) AS last_class,
            ` + d.DistinctList("dice_school.school_name") + ` AS schools
        FROM dice_timetable dt
        JOIN dice_faculties dfc ON dfc.faculty_id = dt.timetable_faculty
        LEFT JOIN dice_timetable_class dtc ON dtc.timetable_id = dt.timetable_id
        LEFT JOIN dice_class dc ON dc.class_id = dtc.class_id
        LEFT JOIN dice_cluster dcl ON dcl.cluster_id = dc.class_cluster_id
        LEFT JOIN dice_school ON dice_school.school_id = dcl.cluster_school
        ` + clause.Where() + `
        GROUP BY dfc.faculty_id, dfc.faculty_first_name, dfc.faculty_last_name
        ORDER BY dfc.faculty_first_name, dfc.faculty_last_name`

	var rows []models.FacultySummary
	if err := r.selectAll(ctx, "timetable_by_faculty", &rows, q, clause.Args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// FacultyDetails lists the sessions of one faculty member on a date.
func (r *TimetableRepository) FacultyDetails(ctx context.Context, facultyID, date string) ([]models.Session, error) {
	q := r.sessionSelect() + "WHERE dt.timetable_faculty = ? AND dt.timetable_date = ?" + sessionOrder

	var rows []models.Session
	if err := r.selectAll(ctx, "timetable_faculty_details", &rows, q, facultyID, date); err != nil {
		return nil, err
	}
	return rows, nil
}

// ByDay summarises every date in the inclusive range that has sessions.
func (r *TimetableRepository) ByDay(ctx context.Context, from, to string) ([]models.DaySummary, error) {
	d := r.dialect
	q := `SELECT
            ` + d.DateText("dt.timetable_date") + ` AS timetable_date,
            ` + d.DayName("dt.timetable_date") + ` AS day_name,
            COUNT(dt.timetable_id) AS total_classes,
            COUNT(DISTINCT dt.timetable_room) AS rooms_used,
            COUNT(DISTINCT dt.timetable_faculty) AS faculties_involved,
            MIN(` + d.HourMinute("dt.timetable_start_time") + `) AS first_class,
            MAX(` + d.HourMinute("dt.timetable_end_time") + `) AS last_class
        FROM dice_timetable dt
        WHERE dt.timetable_date BETWEEN ? AND ?
        GROUP BY dt.timetable_date
        ORDER BY dt.timetable_date`

	var rows []models.DaySummary
	if err := r.selectAll(ctx, "timetable_by_day", &rows, q, from, to); err != nil {
		return nil, err
	}
	return rows, nil
}

// DayDetails lists every session on a date.
func (r *TimetableRepository) DayDetails(ctx context.Context, date string) ([]models.Session, error) {
	q := r.sessionSelect() + "WHERE dt.timetable_date = ?" + sessionOrder

	var rows []models.Session
	if err := r.selectAll(ctx, "timetable_day_details", &rows, q, date); err != nil {
		return nil, err
	}
	return rows, nil
}
