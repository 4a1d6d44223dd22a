package models

// Session is one timetable entry joined with its optional relations.
// Every joined column may be absent because the joins are LEFT joins, and the
// timetable_class join yields one row per linked class.
type Session struct {
	TimetableID      int64   `db:"timetable_id" json:"timetable_id"`
	TimetableDate    string  `db:"timetable_date" json:"timetable_date"`
	DayName          string  `db:"day_name" json:"day_name"`
	StartTime        *string `db:"start_time" json:"start_time"`
	EndTime          *string `db:"end_time" json:"end_time"`
	SubjectName      *string `db:"subject_name" json:"subject_name"`
	SubjectCode      *string `db:"subject_code" json:"subject_code"`
	RoomID           *int64  `db:"room_id" json:"room_id"`
	RoomName         *string `db:"room_name" json:"room_name"`
	FloorName        *string `db:"floor_name" json:"floor_name"`
	FloorBuilding    *string `db:"floor_building" json:"floor_building"`
	FacultyID        *int64  `db:"faculty_id" json:"faculty_id"`
	FacultyFirstName *string `db:"faculty_first_name" json:"faculty_first_name"`
	FacultyLastName  *string `db:"faculty_last_name" json:"faculty_last_name"`
	ClassID          *int64  `db:"class_id" json:"class_id"`
	ClassName        *string `db:"class_name" json:"class_name"`
	ClassYear        *string `db:"class_year" json:"class_year"`
	SchoolID         *int64  `db:"school_id" json:"school_id"`
	SchoolName       *string `db:"school_name" json:"school_name"`
	SchoolCode       *int64  `db:"school_code" json:"school_code"`

	Sections []SectionRef `db:"-" json:"sections"`
}

// SectionRef lists one class served by a session.
type SectionRef struct {
	ClassID    int64   `json:"class_id"`
	ClassName  *string `json:"class_name"`
	ClassYear  *string `json:"class_year"`
	SchoolID   *int64  `json:"school_id"`
	SchoolName *string `json:"school_name"`
}
