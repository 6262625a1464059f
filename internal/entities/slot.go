package entities

// SlotResponse is one computed candidate interval. Busy slots are returned
// too so the customer sees the full day's shape with them disabled.
type SlotResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsFree    bool   `json:"is_free"`
}
