package repository

import (
	"context"
	"strings"

	"github.com/noah-isme/sma-timetable-api/internal/models"
	"github.com/noah-isme/sma-timetable-api/internal/query"
)

// Shared by the unscheduled class list and the dashboard count so both agree.
const (
	unscheduledClassJoins = `
        JOIN dice_cluster dcl ON dcl.cluster_id = dc.class_cluster_id
        JOIN dice_school ON dice_school.school_id = dcl.cluster_school`
	unscheduledClassWhere = `dc.class_active = 0
        AND dc.class_type = 1
        AND dcl.cluster_active = 0
        AND NOT EXISTS (
            SELECT 1 FROM dice_timetable dt
            JOIN dice_timetable_class dtc ON dtc.timetable_id = dt.timetable_id
            WHERE dtc.class_id = dc.class_id AND dt.timetable_date = ?
        )`
)

// ResourceRepository reports room occupancy and idle resources.
type ResourceRepository struct {
	reader
}

// NewResourceRepository constructs the repository.
func NewResourceRepository(src Source) *ResourceRepository {
	return &ResourceRepository{reader: newReader(src)}
}

// Classrooms returns every visible room with its usage on the date. Rooms
// without sessions are kept: the date only scopes the aggregates.
func (r *ResourceRepository) Classrooms(ctx context.Context, filter models.ClassroomFilter) ([]models.RoomUsage, error) {
	var clause query.Clause
	clause.Add("dr.room_is_delete = 0")
	clause.Add(query.NotBlank("df.floor_building"))
	if !query.IsAll(filter.Building) {
		clause.Add("df.floor_building = ?", strings.TrimSpace(filter.Building))
	}
	if !query.IsAll(filter.Floor) {
		clause.Add("df.floor_name = ?", strings.TrimSpace(filter.Floor))
	}

	d := r.dialect
	q := `SELECT
            dr.room_id,
            dr.room_name,
            df.floor_name,
            df.floor_building,
            COUNT(CASE WHEN dt.timetable_date = ? THEN dt.timetable_id END) AS classes_today,
            MIN(CASE WHEN dt.timetable_date = ? THEN ` + d.HourMinute("dt.timetable_start_time") + ` END) AS first_class,
            MAX(CASE WHEN dt.timetable_date = ? THEN ` + d.HourMinute("dt.timetable_end_time") + ` END) AS last_class
        FROM dice_room dr
        JOIN dice_floor df ON df.floor_id = dr.room_floor
        LEFT JOIN dice_timetable dt ON dt.timetable_room = dr.room_id
        ` + clause.Where() + `
        GROUP BY dr.room_id, dr.room_name, df.floor_name, df.floor_building
        ORDER BY df.floor_building, df.floor_name, dr.room_name`

	args := append([]interface{}{filter.Date, filter.Date, filter.Date}, clause.Args...)

	var rows []models.RoomUsage
	if err := r.selectAll(ctx, "resource_classrooms", &rows, q, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// ClassroomSchedule lists the sessions held in one room on a date.
func (r *ResourceRepository) ClassroomSchedule(ctx context.Context, roomID, date string) ([]models.Session, error) {
	q := r.sessionSelect() + "WHERE dt.timetable_room = ? AND dt.timetable_date = ?" + sessionOrder

	var rows []models.Session
	if err := r.selectAll(ctx, "resource_classroom_schedule", &rows, q, roomID, date); err != nil {
		return nil, err
	}
	return rows, nil
}

// UnscheduledClasses lists active sections with no session on the date.
func (r *ResourceRepository) UnscheduledClasses(ctx context.Context, date string) ([]models.UnscheduledClass, error) {
	q := `SELECT
            dc.class_id,
            dc.class_name,
            dc.class_course_year AS class_year,
            dice_school.school_name,
            dice_school.school_id AS school_code
        FROM dice_class dc` + unscheduledClassJoins + `
        WHERE ` + unscheduledClassWhere + `
        ORDER BY dice_school.school_name, dc.class_name`

	var rows []models.UnscheduledClass
	if err := r.selectAll(ctx, "resource_unscheduled_classes", &rows, q, date); err != nil {
		return nil, err
	}
	return rows, nil
}

// UnscheduledFaculties lists active faculty members teaching nothing on the date.
func (r *ResourceRepository) UnscheduledFaculties(ctx context.Context, date string) ([]models.UnscheduledFaculty, error) {
	const q = `SELECT
            dfc.faculty_id,
            dfc.faculty_first_name,
            dfc.faculty_last_name
        FROM dice_faculties dfc
        WHERE dfc.faculty_active = 0
        AND NOT EXISTS (
            SELECT 1 FROM dice_timetable dt
            WHERE dt.timetable_faculty = dfc.faculty_id AND dt.timetable_date = ?
        )
        ORDER BY dfc.faculty_first_name, dfc.faculty_last_name`

	var rows []models.UnscheduledFaculty
	if err := r.selectAll(ctx, "resource_unscheduled_faculties", &rows, q, date); err != nil {
		return nil, err
	}
	return rows, nil
}

// UnscheduledRooms lists visible rooms with no session on the date.
func (r *ResourceRepository) UnscheduledRooms(ctx context.Context, date string) ([]models.UnscheduledRoom, error) {
	q := `SELECT
            dr.room_id,
            dr.room_name,
            df.floor_name,
            df.floor_building
        FROM dice_room dr
        JOIN dice_floor df ON df.floor_id = dr.room_floor
        WHERE dr.room_is_delete = 0
        AND ` + query.NotBlank("df.floor_building") + `
        AND NOT EXISTS (
            SELECT 1 FROM dice_timetable dt
            WHERE dt.timetable_room = dr.room_id AND dt.timetable_date = ?
        )
        ORDER BY df.floor_building, df.floor_name, dr.room_name`

	var rows []models.UnscheduledRoom
	if err := r.selectAll(ctx, "resource_unscheduled_rooms", &rows, q, date); err != nil {
		return nil, err
	}
	return rows, nil
}
