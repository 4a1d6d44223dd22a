package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Timetable Reporting API",
        "description": "Read-only timetable, room usage and idle resource reports",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Dashboard", "description": "Headline counts, filtered timetable and filter values"},
        {"name": "Timetable", "description": "Per-class, per-faculty and per-day reports"},
        {"name": "Resources", "description": "Room usage and idle resources"},
        {"name": "Exports", "description": "CSV, PDF, XLSX and iCalendar downloads"}
    ],
    "parameters": {
        "date": {"name": "date", "in": "query", "type": "string", "description": "YYYY-MM-DD or ISO timestamp. Defaults to today"},
        "format": {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf", "xlsx", "ics"], "default": "csv"}
    },
    "paths": {
        "/dashboard/stats": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Scheduled and unscheduled counts for a date",
                "parameters": [{"$ref": "#/parameters/date"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Malformed date", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/dashboard/timetable": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Filtered timetable grouped by weekday",
                "parameters": [
                    {"$ref": "#/parameters/date"},
                    {"name": "program", "in": "query", "type": "string"},
                    {"name": "year", "in": "query", "type": "string"},
                    {"name": "section", "in": "query", "type": "string"},
                    {"name": "faculty", "in": "query", "type": "string"},
                    {"name": "room", "in": "query", "type": "string"},
                    {"name": "subject", "in": "query", "type": "string"},
                    {"name": "day", "in": "query", "type": "string"},
                    {"name": "time", "in": "query", "type": "string", "description": "HH:MM-HH:MM"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Malformed filter", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/dashboard/filters": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Values available to the dashboard filters",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/by-division": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Sessions per active class on a date",
                "parameters": [
                    {"$ref": "#/parameters/date"},
                    {"name": "program", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/division-details": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Sessions of one class on a date",
                "parameters": [
                    {"name": "classId", "in": "query", "type": "string", "required": true},
                    {"$ref": "#/parameters/date"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Missing classId", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/by-faculty": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Sessions per faculty member on a date",
                "parameters": [
                    {"$ref": "#/parameters/date"},
                    {"name": "facultyId", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/faculty-details": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Sessions of one faculty member on a date",
                "parameters": [
                    {"name": "facultyId", "in": "query", "type": "string", "required": true},
                    {"$ref": "#/parameters/date"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Missing facultyId", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/by-day": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Daily totals over an inclusive date range",
                "parameters": [
                    {"name": "startDate", "in": "query", "type": "string"},
                    {"name": "endDate", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Malformed date", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/day-details": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Every session on a date",
                "parameters": [
                    {"name": "date", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Missing date", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/classrooms": {
            "get": {
                "tags": ["Resources"],
                "summary": "Visible rooms with their usage on a date",
                "parameters": [
                    {"$ref": "#/parameters/date"},
                    {"name": "building", "in": "query", "type": "string"},
                    {"name": "floor", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/classroom-schedule": {
            "get": {
                "tags": ["Resources"],
                "summary": "Sessions held in one room on a date",
                "parameters": [
                    {"name": "roomId", "in": "query", "type": "string", "required": true},
                    {"$ref": "#/parameters/date"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Missing roomId", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/unscheduled": {
            "get": {
                "tags": ["Resources"],
                "summary": "Classes, faculty members and rooms without sessions on a date",
                "parameters": [{"$ref": "#/parameters/date"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exports/timetable": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download the filtered timetable",
                "produces": ["text/csv", "application/pdf", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "text/calendar"],
                "parameters": [
                    {"$ref": "#/parameters/format"},
                    {"$ref": "#/parameters/date"},
                    {"name": "program", "in": "query", "type": "string"},
                    {"name": "day", "in": "query", "type": "string"},
                    {"name": "time", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Attachment", "schema": {"type": "file"}},
                    "400": {"description": "Unknown format", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/exports/day-details": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download every session on a date",
                "produces": ["text/csv", "application/pdf", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "text/calendar"],
                "parameters": [
                    {"$ref": "#/parameters/format"},
                    {"name": "date", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Attachment", "schema": {"type": "file"}},
                    "400": {"description": "Missing date or unknown format", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"type": "object"},
                "total": {"type": "integer"},
                "meta": {"type": "object"}
            }
        },
        "ErrorEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "error": {"type": "string"},
                "code": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
