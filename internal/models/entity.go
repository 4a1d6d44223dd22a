package models

// AllSentinel disables a filter.
const AllSentinel = "all"

// ProgramOption is a school/program available for filtering.
type ProgramOption struct {
	SchoolID   int64   `db:"school_id" json:"school_id"`
	SchoolName *string `db:"school_name" json:"school_name"`
	SchoolCode int64   `db:"school_code" json:"school_code"`
}

// SectionOption is an active schedulable class.
type SectionOption struct {
	ClassName *string `db:"class_name" json:"class_name"`
	ClassID   int64   `db:"class_id" json:"class_id"`
}

// FacultyOption is an active faculty member.
type FacultyOption struct {
	FacultyID        int64   `db:"faculty_id" json:"faculty_id"`
	FacultyFirstName *string `db:"faculty_first_name" json:"faculty_first_name"`
	FacultyLastName  *string `db:"faculty_last_name" json:"faculty_last_name"`
}

// RoomOption is a visible room with its floor.
type RoomOption struct {
	RoomID        int64   `db:"room_id" json:"room_id"`
	RoomName      *string `db:"room_name" json:"room_name"`
	FloorBuilding *string `db:"floor_building" json:"floor_building"`
	FloorName     *string `db:"floor_name" json:"floor_name"`
}

// SubjectOption is an active subject.
type SubjectOption struct {
	SubjectID   int64   `db:"subject_id" json:"subject_id"`
	SubjectName *string `db:"subject_name" json:"subject_name"`
	SubjectCode *string `db:"subject_code" json:"subject_code"`
}

// TimeBandOption is one of the static day-part filters.
type TimeBandOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
