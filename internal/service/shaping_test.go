package service

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-timetable-api/internal/dto"
	"github.com/noah-isme/sma-timetable-api/internal/models"
	appErrors "github.com/noah-isme/sma-timetable-api/pkg/errors"
)

func strPtr(v string) *string { return &v }

func int64Ptr(v int64) *int64 { return &v }

func session(id int64, day, start string, classID int64, className string) models.Session {
	return models.Session{
		TimetableID:   id,
		TimetableDate: "2024-03-04",
		DayName:       day,
		StartTime:     strPtr(start),
		ClassID:       int64Ptr(classID),
		ClassName:     strPtr(className),
		SchoolID:      int64Ptr(9),
		SchoolName:    strPtr("Engineering"),
	}
}

func TestCollapseSessionsMergesClassRows(t *testing.T) {
	rows := []models.Session{
		session(1, "Monday", "08:00", 3, "CS-A"),
		session(1, "Monday", "08:00", 4, "CS-B"),
		session(2, "Monday", "10:00", 3, "CS-A"),
	}

	out := collapseSessions(rows)
	require.Len(t, out, 2)
	assert.Equal(t, "CS-A, CS-B", *out[0].ClassName)
	assert.Equal(t, []int64{3, 4}, []int64{out[0].Sections[0].ClassID, out[0].Sections[1].ClassID})
	assert.Equal(t, "CS-A", *out[1].ClassName)
	assert.Len(t, out[1].Sections, 1)

	// The input rows are left untouched.
	assert.Equal(t, "CS-A", *rows[0].ClassName)
}

func TestCollapseSessionsWithoutClass(t *testing.T) {
	out := collapseSessions([]models.Session{{TimetableID: 5, DayName: "Friday"}})
	require.Len(t, out, 1)
	assert.NotNil(t, out[0].Sections)
	assert.Empty(t, out[0].Sections)
	assert.Nil(t, out[0].ClassName)
}

func TestGroupByDayKeepsFirstSeenOrder(t *testing.T) {
	resp := groupByDay([]models.Session{
		session(1, "Tuesday", "08:00", 3, "CS-A"),
		session(2, "Monday", "09:00", 3, "CS-A"),
		session(3, "Tuesday", "10:00", 3, "CS-A"),
	})

	assert.Equal(t, []string{"Tuesday", "Monday"}, resp.Days)
	assert.Len(t, resp.Data["Tuesday"], 2)
	assert.Len(t, resp.Data["Monday"], 1)
	assert.Equal(t, 3, resp.Total)
}

func TestGroupByDayEmpty(t *testing.T) {
	resp := groupByDay(nil)
	assert.Equal(t, 0, resp.Total)
	assert.NotNil(t, resp.Days)
	assert.NotNil(t, resp.Data)
}

func TestValidationErrorUsesQueryNames(t *testing.T) {
	v := NewQueryValidator()

	err := validationError(v.Struct(dto.DivisionDetailsQuery{}))
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "classId is required", appErr.Detail())

	err = validationError(v.Struct(dto.ExportQuery{Format: "docx"}))
	assert.Equal(t, "format must be one of: csv pdf xlsx ics", appErrors.FromError(err).Detail())

	err = validationError(errors.New("boom"))
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
