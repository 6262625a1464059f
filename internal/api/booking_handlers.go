package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"salonbook/internal/entities"
	"salonbook/internal/service"

	"github.com/gorilla/mux"
)

// BookingHandler serves the customer-facing wizard: company card, service
// catalog, slots and booking creation.
type BookingHandler struct {
	Bookings  *service.BookingService
	Directory *service.DirectoryService
}

func NewBookingHandler(bookings *service.BookingService, directory *service.DirectoryService) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Directory: directory}
}

func (h *BookingHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid company id"})
		return
	}
	company, err := h.Directory.GetCompany(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "company not found"})
		return
	}
	writeJSON(w, http.StatusOK, company)
}

func (h *BookingHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid company id"})
		return
	}
	catalog, err := h.Directory.GetCatalog(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, catalog)
}

func (h *BookingHandler) GetSlots(w http.ResponseWriter, r *http.Request) {
	employeeID, _ := strconv.Atoi(r.URL.Query().Get("employee_id"))
	serviceID, _ := strconv.Atoi(r.URL.Query().Get("service_id"))
	date := r.URL.Query().Get("date")

	slots, err := h.Bookings.GetSlots(r.Context(), employeeID, serviceID, date)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, slots)
}

func (h *BookingHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req entities.CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	customer, err := h.Bookings.CreateCustomer(&req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	booking, err := h.Bookings.CreateBooking(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}
