package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"salonbook/internal/entities"
	"salonbook/internal/service"

	"github.com/gorilla/mux"
)

// AdminHandler serves the owner dashboard: staff directory, schedule
// editor, appointment journal and the computed day timeline.
type AdminHandler struct {
	Bookings  *service.BookingService
	Directory *service.DirectoryService
	Schedule  *service.ScheduleService
	Timeline  *service.TimelineService
}

func NewAdminHandler(
	bookings *service.BookingService,
	directory *service.DirectoryService,
	scheduleSvc *service.ScheduleService,
	timeline *service.TimelineService,
) *AdminHandler {
	return &AdminHandler{Bookings: bookings, Directory: directory, Schedule: scheduleSvc, Timeline: timeline}
}

func (h *AdminHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	companyID, _ := strconv.Atoi(r.URL.Query().Get("company_id"))
	if companyID == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "company_id is required"})
		return
	}
	employees, err := h.Directory.ListEmployees(companyID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

func (h *AdminHandler) ListEmployeeServices(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid employee id"})
		return
	}
	services, err := h.Directory.ListEmployeeServices(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, services)
}

func (h *AdminHandler) ListShifts(w http.ResponseWriter, r *http.Request) {
	branchID, _ := strconv.Atoi(r.URL.Query().Get("branch_id"))
	month := r.URL.Query().Get("month")

	shifts, err := h.Schedule.ListShifts(branchID, month)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shifts)
}

// SaveShifts accepts an array of shift writes, the way the schedule editor
// submits them.
func (h *AdminHandler) SaveShifts(w http.ResponseWriter, r *http.Request) {
	var reqs []entities.ShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	shifts, err := h.Schedule.SaveShifts(r.Context(), reqs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shifts)
}

func (h *AdminHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	idsParam := r.URL.Query().Get("employee_ids")

	var employeeIDs []int
	for _, part := range strings.Split(idsParam, ",") {
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "employee_ids must be a comma-separated list of ids"})
			return
		}
		employeeIDs = append(employeeIDs, id)
	}

	appointments, err := h.Bookings.ListAppointments(employeeIDs, date)
	if err != nil {
		writeError(w, err)
		return
	}
	if appointments == nil {
		appointments = []entities.AppointmentResponse{}
	}
	writeJSON(w, http.StatusOK, appointments)
}

func (h *AdminHandler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid appointment id"})
		return
	}
	var req entities.AppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	updated, err := h.Bookings.UpdateAppointmentStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *AdminHandler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	branchID, _ := strconv.Atoi(r.URL.Query().Get("branch_id"))
	date := r.URL.Query().Get("date")

	timeline, err := h.Timeline.DayTimeline(branchID, date)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, timeline)
}

func (h *AdminHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	branchID, _ := strconv.Atoi(r.URL.Query().Get("branch_id"))
	customers, err := h.Bookings.ListCustomers(branchID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}
