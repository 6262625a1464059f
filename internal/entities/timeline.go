package entities

import "salonbook/internal/schedule"

// TimelineBlock is one positioned appointment inside an employee column.
// Geometry comes from the layout projector, so it is identical for every
// viewer regardless of device time zone.
type TimelineBlock struct {
	AppointmentID int    `json:"appointment_id"`
	TopOffsetPx   int    `json:"top_offset_px"`
	HeightPx      int    `json:"height_px"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Status        string `json:"status"`
	ClientName    string `json:"client_name"`
	ServiceName   string `json:"service_name"`
}

type TimelineColumn struct {
	Employee EmployeeSummary `json:"employee"`
	Cells    []schedule.Cell `json:"cells"`
	Blocks   []TimelineBlock `json:"blocks"`
}

// TimelineResponse is the whole dashboard day view: one column per working
// employee, computed server-side so the calendar and the booking wizard
// share one conflict rule set.
type TimelineResponse struct {
	Date            string           `json:"date"`
	StartHour       int              `json:"start_hour"`
	EndHour         int              `json:"end_hour"`
	StepMinutes     int              `json:"step_minutes"`
	PixelsPerMinute int              `json:"pixels_per_minute"`
	Columns         []TimelineColumn `json:"columns"`
}
