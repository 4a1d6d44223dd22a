package models

// Room status values.
const (
	RoomStatusAvailable = "Available"
	RoomStatusInUse     = "In Use"
)

// Unscheduled reasons per category.
const (
	ReasonNoSchedule      = "No Schedule"
	ReasonNotAssigned     = "Not Assigned"
	ReasonAvailableAllDay = "Available All Day"
)

// DashboardStats is the scalar pair shown on the dashboard header.
type DashboardStats struct {
	TotalScheduled   int `json:"total_scheduled"`
	TotalUnscheduled int `json:"total_unscheduled"`
}

// DivisionSummary aggregates one class's sessions on a date. A session linked to
// several classes is counted once for each of them.
type DivisionSummary struct {
	ClassName    *string `db:"class_name" json:"class_name"`
	ClassID      int64   `db:"class_id" json:"class_id"`
	SchoolName   *string `db:"school_name" json:"school_name"`
	SchoolCode   int64   `db:"school_code" json:"school_code"`
	SchoolID     int64   `db:"school_id" json:"school_id"`
	TotalClasses int     `db:"total_classes" json:"total_classes"`
	FirstClass   *string `db:"first_class" json:"first_class"`
	LastClass    *string `db:"last_class" json:"last_class"`
}

// FacultySummary aggregates one faculty member's sessions on a date.
type FacultySummary struct {
	FacultyID        int64   `db:"faculty_id" json:"faculty_id"`
	FacultyFirstName *string `db:"faculty_first_name" json:"faculty_first_name"`
	FacultyLastName  *string `db:"faculty_last_name" json:"faculty_last_name"`
	TotalClasses     int     `db:"total_classes" json:"total_classes"`
	FirstClass       *string `db:"first_class" json:"first_class"`
	LastClass        *string `db:"last_class" json:"last_class"`
	Schools          *string `db:"schools" json:"schools"`
}

// DaySummary aggregates all sessions of one calendar date.
type DaySummary struct {
	TimetableDate     string  `db:"timetable_date" json:"timetable_date"`
	DayName           string  `db:"day_name" json:"day_name"`
	TotalClasses      int     `db:"total_classes" json:"total_classes"`
	RoomsUsed         int     `db:"rooms_used" json:"rooms_used"`
	FacultiesInvolved int     `db:"faculties_involved" json:"faculties_involved"`
	FirstClass        *string `db:"first_class" json:"first_class"`
	LastClass         *string `db:"last_class" json:"last_class"`
}

// RoomUsage describes a visible room's occupancy on a date.
type RoomUsage struct {
	RoomID        int64   `db:"room_id" json:"room_id"`
	RoomName      *string `db:"room_name" json:"room_name"`
	FloorName     *string `db:"floor_name" json:"floor_name"`
	FloorBuilding *string `db:"floor_building" json:"floor_building"`
	ClassesToday  int     `db:"classes_today" json:"classes_today"`
	FirstClass    *string `db:"first_class" json:"first_class"`
	LastClass     *string `db:"last_class" json:"last_class"`
	Status        string  `db:"-" json:"status"`
}

// UnscheduledClass is an active section without sessions on a date.
type UnscheduledClass struct {
	ClassID    int64   `db:"class_id" json:"class_id"`
	ClassName  *string `db:"class_name" json:"class_name"`
	ClassYear  *string `db:"class_year" json:"class_year"`
	SchoolName *string `db:"school_name" json:"school_name"`
	SchoolCode int64   `db:"school_code" json:"school_code"`
	Reason     string  `db:"-" json:"reason"`
}

// UnscheduledFaculty is an active faculty member without sessions on a date.
type UnscheduledFaculty struct {
	FacultyID        int64   `db:"faculty_id" json:"faculty_id"`
	FacultyFirstName *string `db:"faculty_first_name" json:"faculty_first_name"`
	FacultyLastName  *string `db:"faculty_last_name" json:"faculty_last_name"`
	Reason           string  `db:"-" json:"reason"`
}

// UnscheduledRoom is a visible room without sessions on a date.
type UnscheduledRoom struct {
	RoomID        int64   `db:"room_id" json:"room_id"`
	RoomName      *string `db:"room_name" json:"room_name"`
	FloorName     *string `db:"floor_name" json:"floor_name"`
	FloorBuilding *string `db:"floor_building" json:"floor_building"`
	Reason        string  `db:"-" json:"reason"`
}
