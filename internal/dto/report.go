package dto

import "github.com/noah-isme/sma-timetable-api/internal/models"

// DateQuery carries the single optional date most reports accept.
type DateQuery struct {
	Date string `form:"date" validate:"omitempty,max=40"`
}

// TimetableQuery is the filter set of the dashboard timetable.
type TimetableQuery struct {
	Date    string `form:"date" validate:"omitempty,max=40"`
	Program string `form:"program" validate:"omitempty,max=32"`
	Year    string `form:"year" validate:"omitempty,max=32"`
	Section string `form:"section" validate:"omitempty,max=32"`
	Faculty string `form:"faculty" validate:"omitempty,max=32"`
	Room    string `form:"room" validate:"omitempty,max=32"`
	Subject string `form:"subject" validate:"omitempty,max=32"`
	Day     string `form:"day" validate:"omitempty,max=16"`
	Time    string `form:"time" validate:"omitempty,max=24"`
}

// DivisionQuery scopes the by-division summary.
type DivisionQuery struct {
	Date    string `form:"date" validate:"omitempty,max=40"`
	Program string `form:"program" validate:"omitempty,max=32"`
}

// DivisionDetailsQuery selects one class's sessions.
type DivisionDetailsQuery struct {
	ClassID string `form:"classId" validate:"required,max=32"`
	Date    string `form:"date" validate:"omitempty,max=40"`
}

// FacultyQuery scopes the by-faculty summary.
type FacultyQuery struct {
	Date      string `form:"date" validate:"omitempty,max=40"`
	FacultyID string `form:"facultyId" validate:"omitempty,max=32"`
}

// FacultyDetailsQuery selects one faculty member's sessions.
type FacultyDetailsQuery struct {
	FacultyID string `form:"facultyId" validate:"required,max=32"`
	Date      string `form:"date" validate:"omitempty,max=40"`
}

// DayRangeQuery bounds the by-day summary. Both ends are inclusive.
type DayRangeQuery struct {
	StartDate string `form:"startDate" validate:"omitempty,max=40"`
	EndDate   string `form:"endDate" validate:"omitempty,max=40"`
}

// DayDetailsQuery selects every session on a date.
type DayDetailsQuery struct {
	Date string `form:"date" validate:"required,max=40"`
}

// ClassroomQuery scopes the classrooms overview.
type ClassroomQuery struct {
	Date     string `form:"date" validate:"omitempty,max=40"`
	Building string `form:"building" validate:"omitempty,max=64"`
	Floor    string `form:"floor" validate:"omitempty,max=64"`
}

// ClassroomScheduleQuery selects one room's sessions.
type ClassroomScheduleQuery struct {
	RoomID string `form:"roomId" validate:"required,max=32"`
	Date   string `form:"date" validate:"omitempty,max=40"`
}

// TimetableResponse groups sessions by weekday name in first-seen order.
// Total counts distinct sessions and equals the sum of the group sizes.
type TimetableResponse struct {
	Date  string                      `json:"date"`
	Days  []string                    `json:"days"`
	Data  map[string][]models.Session `json:"data"`
	Total int                         `json:"total"`
}

// FilterOptions lists every value the dashboard filters can take.
type FilterOptions struct {
	Programs  []models.ProgramOption  `json:"programs"`
	Years     []string                `json:"years"`
	Sections  []models.SectionOption  `json:"sections"`
	Faculties []models.FacultyOption  `json:"faculties"`
	Rooms     []models.RoomOption     `json:"rooms"`
	Subjects  []models.SubjectOption  `json:"subjects"`
	Days      []string                `json:"days"`
	Times     []models.TimeBandOption `json:"times"`
}

// UnscheduledResponse lists idle classes, faculty members and rooms.
type UnscheduledResponse struct {
	Classes   []models.UnscheduledClass   `json:"classes"`
	Faculties []models.UnscheduledFaculty `json:"faculties"`
	Rooms     []models.UnscheduledRoom    `json:"rooms"`
	Total     int                         `json:"total"`
}

// ExportQuery selects the rendition of an exported report.
type ExportQuery struct {
	Format string `form:"format" validate:"omitempty,oneof=csv pdf xlsx ics"`
}

// ExportFile is a rendered report ready to be streamed.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}
