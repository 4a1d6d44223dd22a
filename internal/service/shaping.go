package service

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-timetable-api/internal/dto"
	"github.com/noah-isme/sma-timetable-api/internal/models"
	"github.com/noah-isme/sma-timetable-api/internal/query"
	appErrors "github.com/noah-isme/sma-timetable-api/pkg/errors"
)

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var timeBands = []models.TimeBandOption{
	{Label: "Morning (07:30 - 12:00)", Value: "07:30-12:00"},
	{Label: "Afternoon (12:00 - 16:00)", Value: "12:00-16:00"},
	{Label: "Evening (16:00 - 20:00)", Value: "16:00-20:00"},
}

// NewQueryValidator returns a validator that reports fields by their query
// parameter name.
func NewQueryValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid query parameters")
	}
	fe := fieldErrs[0]
	var msg string
	switch fe.Tag() {
	case "required":
		msg = fe.Field() + " is required"
	case "oneof":
		msg = fe.Field() + " must be one of: " + fe.Param()
	case "max":
		msg = fe.Field() + " is too long"
	default:
		msg = fe.Field() + " is invalid"
	}
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, msg)
}

// reportClock resolves "today" in the configured reporting timezone.
type reportClock struct {
	now func() time.Time
	loc *time.Location
}

func newReportClock(loc *time.Location) reportClock {
	if loc == nil {
		loc = time.UTC
	}
	return reportClock{now: time.Now, loc: loc}
}

func (c reportClock) today() time.Time {
	return c.now().In(c.loc)
}

func (c reportClock) date(raw string) (string, error) {
	return query.DateOrToday(raw, c.today())
}

func storeFailure(logger *zap.Logger, op string, err error) error {
	logger.Error("report query failed", zap.String("operation", op), zap.Error(err))
	return appErrors.Internal(err)
}

// collapseSessions merges the per-class rows of a session into one record, in
// first-seen order. Class names are joined with ", " and every class is listed
// in Sections.
func collapseSessions(rows []models.Session) []models.Session {
	out := make([]models.Session, 0, len(rows))
	index := make(map[int64]int, len(rows))
	for _, row := range rows {
		pos, seen := index[row.TimetableID]
		if !seen {
			row.Sections = []models.SectionRef{}
			out = append(out, row)
			pos = len(out) - 1
			index[row.TimetableID] = pos
		}
		if row.ClassID == nil {
			continue
		}
		session := &out[pos]
		if hasSection(session.Sections, *row.ClassID) {
			continue
		}
		session.Sections = append(session.Sections, models.SectionRef{
			ClassID:    *row.ClassID,
			ClassName:  row.ClassName,
			ClassYear:  row.ClassYear,
			SchoolID:   row.SchoolID,
			SchoolName: row.SchoolName,
		})
		if seen && row.ClassName != nil {
			joined := *row.ClassName
			if session.ClassName != nil && *session.ClassName != "" {
				joined = *session.ClassName + ", " + joined
			}
			session.ClassName = &joined
		}
	}
	return out
}

func hasSection(sections []models.SectionRef, classID int64) bool {
	for _, s := range sections {
		if s.ClassID == classID {
			return true
		}
	}
	return false
}

// groupByDay buckets sessions under their weekday name, keeping the order in
// which each weekday first appears.
func groupByDay(sessions []models.Session) *dto.TimetableResponse {
	resp := &dto.TimetableResponse{
		Days: []string{},
		Data: make(map[string][]models.Session),
	}
	for _, s := range sessions {
		day := strings.TrimSpace(s.DayName)
		if _, ok := resp.Data[day]; !ok {
			resp.Days = append(resp.Days, day)
		}
		resp.Data[day] = append(resp.Data[day], s)
		resp.Total++
	}
	return resp
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
