package query

import (
	"fmt"

	"github.com/noah-isme/sma-timetable-api/pkg/config"
)

// Dialect renders the few SQL expressions that differ between the supported stores.
type Dialect interface {
	Name() string
	// DayName yields the full English weekday name of a date column.
	DayName(col string) string
	// HourMinute formats a time column as zero-padded 24-hour HH:MM.
	HourMinute(col string) string
	// TimeOf casts a column to a time-of-day value for range comparison.
	TimeOf(col string) string
	// DateText formats a date column as YYYY-MM-DD.
	DateText(col string) string
	// DistinctList concatenates the distinct values of expr with ", ".
	DistinctList(expr string) string
}

// DialectFor returns the dialect matching a configured driver name.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case config.DriverMySQL:
		return MySQL{}, nil
	case config.DriverPostgres:
		return Postgres{}, nil
	default:
		return nil, fmt.Errorf("no sql dialect for driver %q", driver)
	}
}

// MySQL matches the store the dashboard was originally written against.
type MySQL struct{}

func (MySQL) Name() string { return config.DriverMySQL }

func (MySQL) DayName(col string) string { return "DAYNAME(" + col + ")" }

func (MySQL) HourMinute(col string) string { return "TIME_FORMAT(" + col + ", '%H:%i')" }

func (MySQL) TimeOf(col string) string { return "TIME(" + col + ")" }

func (MySQL) DateText(col string) string { return "DATE_FORMAT(" + col + ", '%Y-%m-%d')" }

func (MySQL) DistinctList(expr string) string {
	return "GROUP_CONCAT(DISTINCT " + expr + " SEPARATOR ', ')"
}

// Postgres renders the same expressions for PostgreSQL.
type Postgres struct{}

func (Postgres) Name() string { return config.DriverPostgres }

func (Postgres) DayName(col string) string { return "TO_CHAR(" + col + ", 'FMDay')" }

func (Postgres) HourMinute(col string) string { return "TO_CHAR(" + col + ", 'HH24:MI')" }

func (Postgres) TimeOf(col string) string { return "CAST(" + col + " AS TIME)" }

func (Postgres) DateText(col string) string { return "TO_CHAR(" + col + ", 'YYYY-MM-DD')" }

func (Postgres) DistinctList(expr string) string {
	return "STRING_AGG(DISTINCT " + expr + ", ', ')"
}

// NotBlank is true for text that holds more than whitespace. Blank building
// names mark placeholder floors; NULL never passes either.
func NotBlank(col string) string {
	return "TRIM(" + col + ") <> ''"
}
