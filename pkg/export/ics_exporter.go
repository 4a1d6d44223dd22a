package export

import (
	"bytes"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
)

// CalendarEvent is one timed entry of an iCalendar export.
type CalendarEvent struct {
	UID         string
	Start       time.Time
	End         time.Time
	Summary     string
	Location    string
	Description string
}

// ICSExporter renders events as an iCalendar (RFC 5545) document.
type ICSExporter struct {
	productID string
	now       func() time.Time
}

// NewICSExporter builds an exporter stamping events with the current time.
func NewICSExporter() *ICSExporter {
	return &ICSExporter{productID: "-//timetable-api//reports//EN", now: time.Now}
}

// Render writes a published calendar named name holding every event. An empty
// event list yields a valid calendar without entries.
func (e *ICSExporter) Render(events []CalendarEvent, name string) ([]byte, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(e.productID)
	if name != "" {
		cal.SetXWRCalName(name)
	}

	stamp := e.now().UTC()
	for _, ev := range events {
		vevent := cal.AddEvent(ev.UID)
		vevent.SetDtStampTime(stamp)
		vevent.SetStartAt(ev.Start)
		end := ev.End
		if end.Before(ev.Start) {
			end = ev.Start
		}
		vevent.SetEndAt(end)
		vevent.SetSummary(ev.Summary)
		if ev.Location != "" {
			vevent.SetLocation(ev.Location)
		}
		if ev.Description != "" {
			vevent.SetDescription(ev.Description)
		}
	}

	buf := &bytes.Buffer{}
	if err := cal.SerializeTo(buf); err != nil {
		return nil, fmt.Errorf("render ics: %w", err)
	}
	return buf.Bytes(), nil
}
