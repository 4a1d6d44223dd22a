package models

// TimetableFilter carries the optional slicing parameters of timetable reports.
// Empty values and AllSentinel disable the matching predicate.
type TimetableFilter struct {
	Date     string
	DateFrom string
	DateTo   string
	Program  string
	Year     string
	Section  string
	Faculty  string
	Room     string
	Subject  string
	Day      string
	Time     string
}

// DivisionFilter scopes the by-division report.
type DivisionFilter struct {
	Date    string
	Program string
}

// FacultyFilter scopes the by-faculty report.
type FacultyFilter struct {
	Date      string
	FacultyID string
}

// ClassroomFilter scopes the classrooms overview.
type ClassroomFilter struct {
	Date     string
	Building string
	Floor    string
}
