package schedule

import "strconv"

// The timeline projector positions appointment blocks by the literal HH:mm
// digits of the stored timestamp instead of parsing it as a zoned instant.
// The rendered position therefore always matches the wall-clock value the
// business wrote down, whatever zone suffix storage added and whatever zone
// the viewer's device is in.

// Block computes the vertical geometry of an appointment block inside an
// employee column whose pixel origin is timelineStartHour:00. startRaw and
// endRaw are timestamps in "...THH:mm:ss..." layout. Malformed input yields
// a zero block; an end before the start is clamped to zero height rather
// than rendered upside down.
func Block(startRaw, endRaw string, timelineStartHour, pixelsPerMinute int) (topOffsetPx, heightPx int) {
	startH, startM, ok := rawHourMinute(startRaw)
	if !ok {
		return 0, 0
	}
	endH, endM, ok := rawHourMinute(endRaw)
	if !ok {
		return 0, 0
	}

	topOffsetPx = ((startH-timelineStartHour)*60 + startM) * pixelsPerMinute
	heightPx = ((endH*60 + endM) - (startH*60 + startM)) * pixelsPerMinute
	if heightPx < 0 {
		heightPx = 0
	}
	return topOffsetPx, heightPx
}

// rawHourMinute slices the fixed HH and mm positions out of an ISO-like
// timestamp string without interpreting the rest of it.
func rawHourMinute(raw string) (hour, minute int, ok bool) {
	if len(raw) < 16 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(raw[11:13])
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(raw[14:16])
	if err != nil {
		return 0, 0, false
	}
	return hour, minute, true
}

// RawTimeOfDay returns the "HH:mm" slice of a stored timestamp for display,
// again without zone conversion.
func RawTimeOfDay(raw string) string {
	if len(raw) < 16 {
		return ""
	}
	return raw[11:16]
}

// Cell is one grid cell of the dashboard timeline. Non-working cells are
// shaded and ignore clicks; working cells open the booking flow.
type Cell struct {
	Start   string `json:"start"`
	Working bool   `json:"working"`
}

// DayCells produces the cell grid for one employee column. A cell is
// working iff the resolved shift covers its start.
func DayCells(state ShiftState, grid Grid) []Cell {
	if !grid.valid() {
		grid = DefaultGrid()
	}

	shiftStart, shiftEnd := 0, 0
	withinShift := false
	if state.IsWorking {
		var okStart, okEnd bool
		shiftStart, okStart = MinutesOfDay(state.StartTime)
		shiftEnd, okEnd = MinutesOfDay(state.EndTime)
		withinShift = okStart && okEnd
	}

	var cells []Cell
	for m := grid.StartHour * 60; m < grid.EndHour*60; m += grid.StepMinutes {
		start := strconv.Itoa(m / 60)
		if len(start) == 1 {
			start = "0" + start
		}
		minutes := strconv.Itoa(m % 60)
		if len(minutes) == 1 {
			minutes = "0" + minutes
		}
		cells = append(cells, Cell{
			Start:   start + ":" + minutes,
			Working: withinShift && m >= shiftStart && m < shiftEnd,
		})
	}
	return cells
}
