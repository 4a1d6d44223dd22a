package repository

import (
	"context"

	"github.com/noah-isme/sma-timetable-api/internal/models"
	"github.com/noah-isme/sma-timetable-api/internal/query"
)

// DashboardRepository serves the dashboard header, the filtered timetable and
// the filter option lists.
type DashboardRepository struct {
	reader
}

// NewDashboardRepository constructs the repository.
func NewDashboardRepository(src Source) *DashboardRepository {
	return &DashboardRepository{reader: newReader(src)}
}

// Timetable returns one row per (entry, linked class) matching the filter,
// ordered by start time.
func (r *DashboardRepository) Timetable(ctx context.Context, filter models.TimetableFilter) ([]models.Session, error) {
	clause := query.Resolve(r.dialect, filter)
	q := r.sessionSelect() + clause.Where() + sessionOrder

	var rows []models.Session
	if err := r.selectAll(ctx, "dashboard_timetable", &rows, q, clause.Args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// CountScheduled counts distinct entries on the date.
func (r *DashboardRepository) CountScheduled(ctx context.Context, date string) (int, error) {
	const q = `SELECT COUNT(DISTINCT dt.timetable_id) AS total_scheduled
        FROM dice_timetable dt
        WHERE dt.timetable_date = ?`

	var total int
	if err := r.getOne(ctx, "dashboard_count_scheduled", &total, q, date); err != nil {
		return 0, err
	}
	return total, nil
}

// CountUnscheduledClasses counts active sections with no entry on the date. It
// applies the same conditions as ResourceRepository.UnscheduledClasses.
func (r *DashboardRepository) CountUnscheduledClasses(ctx context.Context, date string) (int, error) {
	q := `SELECT COUNT(DISTINCT dc.class_id) AS total_unscheduled
        FROM dice_class dc` + unscheduledClassJoins + `
        WHERE ` + unscheduledClassWhere

	var total int
	if err := r.getOne(ctx, "dashboard_count_unscheduled", &total, q, date); err != nil {
		return 0, err
	}
	return total, nil
}

// Programs lists schools above the configured id threshold.
func (r *DashboardRepository) Programs(ctx context.Context, minSchoolID int) ([]models.ProgramOption, error) {
	const q = `SELECT DISTINCT school_id, school_name, school_id AS school_code
        FROM dice_school
        WHERE school_id > ?
        ORDER BY school_name`

	var programs []models.ProgramOption
	if err := r.selectAll(ctx, "filter_programs", &programs, q, minSchoolID); err != nil {
		return nil, err
	}
	return programs, nil
}

// Years lists the course years of active classes.
func (r *DashboardRepository) Years(ctx context.Context) ([]string, error) {
	const q = `SELECT DISTINCT class_course_year AS class_year
        FROM dice_class
        WHERE class_active = 0 AND class_course_year IS NOT NULL
        ORDER BY class_course_year`

	var years []string
	if err := r.selectAll(ctx, "filter_years", &years, q); err != nil {
		return nil, err
	}
	return years, nil
}

// Sections lists active schedulable classes.
func (r *DashboardRepository) Sections(ctx context.Context) ([]models.SectionOption, error) {
	const q = `SELECT DISTINCT class_name, class_id
        FROM dice_class
        WHERE class_active = 0 AND class_type = 1
        ORDER BY class_name`

	var sections []models.SectionOption
	if err := r.selectAll(ctx, "filter_sections", &sections, q); err != nil {
		return nil, err
	}
	return sections, nil
}

// Faculties lists active faculty members.
func (r *DashboardRepository) Faculties(ctx context.Context) ([]models.FacultyOption, error) {
	const q = `SELECT faculty_id, faculty_first_name, faculty_last_name
        FROM dice_faculties
        WHERE faculty_active = 0
        ORDER BY faculty_first_name`

	var faculties []models.FacultyOption
	if err := r.selectAll(ctx, "filter_faculties", &faculties, q); err != nil {
		return nil, err
	}
	return faculties, nil
}

// Rooms lists visible rooms.
func (r *DashboardRepository) Rooms(ctx context.Context) ([]models.RoomOption, error) {
	q := `SELECT dr.room_id, dr.room_name, df.floor_building, df.floor_name
        FROM dice_room dr
        JOIN dice_floor df ON df.floor_id = dr.room_floor
        WHERE dr.room_is_delete = 0 AND ` + query.NotBlank("df.floor_building") + `
        ORDER BY dr.room_name`

	var rooms []models.RoomOption
	if err := r.selectAll(ctx, "filter_rooms", &rooms, q); err != nil {
		return nil, err
	}
	return rooms, nil
}

// Subjects lists active subjects.
func (r *DashboardRepository) Subjects(ctx context.Context) ([]models.SubjectOption, error) {
	const q = `SELECT subject_id, subject_name, subject_code
        FROM dice_subject
        WHERE subject_active = 0
        ORDER BY subject_name`

	var subjects []models.SubjectOption
	if err := r.selectAll(ctx, "filter_subjects", &subjects, q); err != nil {
		return nil, err
	}
	return subjects, nil
}
