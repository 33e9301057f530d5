package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/google/uuid"
	"github.com/lemonlot/parking/pkg/notification"
	"github.com/lemonlot/parking/pkg/reservation"
	"github.com/lemonlot/parking/pkg/vehicle"
	log "github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

const sessionCookieName = "lemonlot_session"

// submissionErrorMessage is the only error text shown to the user; upstream
// detail stays in the server log.
const submissionErrorMessage = "There was an error creating your reservation. Please try again."

type Handler struct {
	store     vehicle.Store
	flows     *FlowRegistry
	notifier  notification.Notifier
	templates *template.Template
}

func NewHandler(store vehicle.Store, flows *FlowRegistry, notifier notification.Notifier) (*Handler, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Handler{
		store:     store,
		flows:     flows,
		notifier:  notifier,
		templates: templates,
	}, nil
}

type vehicleView struct {
	Vehicle *vehicle.Record
}

type reservationView struct {
	Draft          reservation.Draft
	Options        []reservation.ParkingOption
	PaymentMethods []string
	Selected       reservation.ParkingOption
	Submitting     bool
	Error          string
}

type successView struct {
	Email string
}

// sessionId returns the session cookie value, issuing a new one when absent.
func (h *Handler) sessionId(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	sessionId := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionId,
		Path:     "/",
		HttpOnly: true,
	})
	return sessionId
}

func (h *Handler) ShowVehicleForm(w http.ResponseWriter, r *http.Request) {
	sessionId := h.sessionId(w, r)
	record, err := h.store.Get(r.Context(), sessionId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.render(w, "vehicle.html", vehicleView{Vehicle: record})
}

func (h *Handler) SubmitVehicleForm(w http.ResponseWriter, r *http.Request) {
	sessionId := h.sessionId(w, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	record := vehicle.Record{
		Color:                r.PostFormValue("color"),
		LicensePlate:         r.PostFormValue("licensePlate"),
		ReceiveNotifications: r.PostFormValue("receiveNotifications") != "",
	}
	if err := h.store.Put(r.Context(), sessionId, record); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// A new vehicle starts a new reservation.
	h.flows.Reset(sessionId)

	http.Redirect(w, r, "/reservation", http.StatusSeeOther)
}

func (h *Handler) ShowReservationForm(w http.ResponseWriter, r *http.Request) {
	sessionId := h.sessionId(w, r)
	record, err := h.store.Get(r.Context(), sessionId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if record == nil {
		http.Redirect(w, r, "/vehicle-information", http.StatusSeeOther)
		return
	}

	flow := h.flows.GetOrCreate(sessionId, record)
	if flow.State() == reservation.StateSuccess {
		h.render(w, "success.html", successView{Email: flow.Draft().Email})
		return
	}
	h.renderReservationForm(w, flow, "")
}

func (h *Handler) SubmitReservation(w http.ResponseWriter, r *http.Request) {
	sessionId := h.sessionId(w, r)
	record, err := h.store.Get(r.Context(), sessionId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if record == nil {
		http.Redirect(w, r, "/vehicle-information", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	flow := h.flows.GetOrCreate(sessionId, record)
	if flow.State() == reservation.StateSuccess {
		h.render(w, "success.html", successView{Email: flow.Draft().Email})
		return
	}

	if err := h.applyFormValues(flow, r); err != nil {
		h.renderReservationForm(w, flow, submissionErrorMessage)
		return
	}

	eventId, err := flow.Submit(r.Context())
	if errors.Is(err, reservation.ErrSubmissionInFlight) {
		h.renderReservationForm(w, flow, "")
		return
	}
	if err != nil {
		h.renderReservationForm(w, flow, submissionErrorMessage)
		return
	}

	draft := flow.Draft()
	startTime, endTime := flow.Window()
	confirmation := notification.Reservation{
		FullName:      draft.FullName,
		Email:         draft.Email,
		Phone:         draft.Phone,
		DurationLabel: flow.SelectedOption().DurationLabel(),
		PriceLabel:    flow.SelectedOption().PriceLabel(),
		PaymentMethod: draft.PaymentMethod,
		VehicleColor:  record.Color,
		VehiclePlate:  record.LicensePlate,
		StartTime:     startTime,
		EndTime:       endTime,
		EventId:       eventId,
		SMSOptIn:      record.ReceiveNotifications,
	}
	go h.notifier.ReservationConfirmed(context.Background(), confirmation)

	h.render(w, "success.html", successView{Email: draft.Email})
}

// applyFormValues copies the submitted form into the flow's draft. Unknown
// radio values and edits on a non-editing flow are rejected.
func (h *Handler) applyFormValues(flow *reservation.Flow, r *http.Request) error {
	if err := flow.SetCustomer(r.PostFormValue("fullName"), r.PostFormValue("email"), r.PostFormValue("phone")); err != nil {
		return err
	}
	if label := r.PostFormValue("parkingOption"); label != "" {
		if err := flow.SelectParkingOption(label); err != nil {
			return err
		}
	}
	if method := r.PostFormValue("paymentMethod"); method != "" {
		if err := flow.SelectPaymentMethod(method); err != nil {
			return err
		}
	}
	if flow.Draft().RequiresCardDetails() {
		return flow.SetCardDetails(
			r.PostFormValue("cardNumber"),
			r.PostFormValue("expirationDate"),
			r.PostFormValue("securityCode"),
			r.PostFormValue("country"),
			r.PostFormValue("zipCode"),
		)
	}
	return nil
}

func (h *Handler) renderReservationForm(w http.ResponseWriter, flow *reservation.Flow, errorMessage string) {
	h.render(w, "reservation.html", reservationView{
		Draft:          flow.Draft(),
		Options:        reservation.Options(),
		PaymentMethods: reservation.PaymentMethods(),
		Selected:       flow.SelectedOption(),
		Submitting:     flow.State() == reservation.StateSubmitting,
		Error:          errorMessage,
	})
}

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Errorf("failed to render template %s: %v", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
