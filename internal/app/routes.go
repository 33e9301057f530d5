package app

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/lemonlot/parking/internal/config"
)

// RegisterRoutes registers all API endpoints and form pages.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Calendar
	r.HandleFunc("/api/calendar/create-event", deps.BookingHandler.CreateEvent).Methods("POST")
	r.HandleFunc("/api/calendar/get-events", deps.BookingHandler.GetEvents).Methods("GET")

	// Form pages
	if cfg.Frontend.Enabled {
		r.HandleFunc("/vehicle-information", deps.WebHandler.ShowVehicleForm).Methods("GET")
		r.HandleFunc("/vehicle-information", deps.WebHandler.SubmitVehicleForm).Methods("POST")
		r.HandleFunc("/reservation", deps.WebHandler.ShowReservationForm).Methods("GET")
		r.HandleFunc("/reservation", deps.WebHandler.SubmitReservation).Methods("POST")
		r.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
			http.Redirect(w, req, "/vehicle-information", http.StatusSeeOther)
		}).Methods("GET")
	}
}
