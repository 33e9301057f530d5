package reservation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lemonlot/parking/internal/utils"
	"github.com/lemonlot/parking/pkg/vehicle"
	log "github.com/sirupsen/logrus"
)

type State string

const (
	// StateEditing: form fields are mutable; this is also the state the flow
	// returns to after a failed submission, with every value preserved.
	StateEditing State = "editing"
	// StateSubmitting: one submission is in flight; further submits are
	// rejected without issuing a call.
	StateSubmitting State = "submitting"
	// StateSuccess is terminal; there is no edit-again path.
	StateSuccess State = "success"
)

var (
	ErrSubmissionInFlight = fmt.Errorf("a submission is already in progress")
	ErrAlreadyReserved    = fmt.Errorf("the reservation has already been completed")
	ErrUnknownOption      = fmt.Errorf("unknown parking option")
	ErrUnknownMethod      = fmt.Errorf("unknown payment method")
)

// Flow drives one reservation form session from editing through submission.
// It never retries on its own; after a failure the user resubmits manually.
type Flow struct {
	mu        sync.Mutex
	state     State
	draft     Draft
	vehicle   *vehicle.Record
	submitter EventSubmitter
	clock     utils.Clock
	eventId   string
	startTime time.Time
	endTime   time.Time
}

func NewFlow(vehicleRecord *vehicle.Record, submitter EventSubmitter, clock utils.Clock) *Flow {
	return &Flow{
		state:     StateEditing,
		draft:     NewDraft(),
		vehicle:   vehicleRecord,
		submitter: submitter,
		clock:     clock,
	}
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Flow) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *Flow) Vehicle() *vehicle.Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.vehicle
}

// EventId returns the provider-issued event id after a successful submission.
func (f *Flow) EventId() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.eventId
}

// SelectedOption returns the catalog entry for the current selection. Its
// price is what the form displays next to the order total.
func (f *Flow) SelectedOption() ParkingOption {
	f.mu.Lock()
	defer f.mu.Unlock()
	option, ok := OptionByLabel(f.draft.ParkingOption)
	if !ok {
		option = DefaultOption()
	}
	return option
}

func (f *Flow) SetCustomer(fullName, email, phone string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.ensureEditing(); err != nil {
		return err
	}
	f.draft.FullName = fullName
	f.draft.Email = email
	f.draft.Phone = phone
	return nil
}

// SetCardDetails records the card sub-form values. They are held in the draft
// only and never transmitted.
func (f *Flow) SetCardDetails(cardNumber, expirationDate, securityCode, country, zipCode string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.ensureEditing(); err != nil {
		return err
	}
	f.draft.CardNumber = cardNumber
	f.draft.ExpirationDate = expirationDate
	f.draft.SecurityCode = securityCode
	f.draft.Country = country
	f.draft.ZipCode = zipCode
	return nil
}

// SelectParkingOption switches the selected option; the displayed price
// follows the selection.
func (f *Flow) SelectParkingOption(label string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.ensureEditing(); err != nil {
		return err
	}
	if _, ok := OptionByLabel(label); !ok {
		return ErrUnknownOption
	}
	f.draft.ParkingOption = label
	return nil
}

func (f *Flow) SelectPaymentMethod(method string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.ensureEditing(); err != nil {
		return err
	}
	for _, known := range PaymentMethods() {
		if known == method {
			f.draft.PaymentMethod = method
			return nil
		}
	}
	return ErrUnknownMethod
}

func (f *Flow) ensureEditing() error {
	switch f.state {
	case StateSubmitting:
		return ErrSubmissionInFlight
	case StateSuccess:
		return ErrAlreadyReserved
	}
	return nil
}

// Submit computes the reservation time window from the selected option,
// builds the event payload and sends it to the endpoint. On failure the flow
// returns to editing with the draft untouched.
func (f *Flow) Submit(ctx context.Context) (string, error) {
	f.mu.Lock()
	switch f.state {
	case StateSubmitting:
		f.mu.Unlock()
		return "", ErrSubmissionInFlight
	case StateSuccess:
		f.mu.Unlock()
		return "", ErrAlreadyReserved
	}
	f.state = StateSubmitting
	draft := f.draft
	vehicleRecord := f.vehicle
	f.mu.Unlock()

	option, ok := OptionByLabel(draft.ParkingOption)
	if !ok {
		option = DefaultOption()
	}

	startTime := f.clock.Now()
	endTime := startTime.Add(option.Duration())
	request := buildEventRequest(draft, vehicleRecord, option, startTime, endTime)

	eventId, err := f.submitter.SubmitEvent(ctx, request)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		log.Errorf("Error creating reservation: %v", err)
		f.state = StateEditing
		return "", fmt.Errorf("reservation submission failed: %w", err)
	}

	f.state = StateSuccess
	f.eventId = eventId
	f.startTime = startTime
	f.endTime = endTime
	return eventId, nil
}

// Window returns the reserved time window after a successful submission.
func (f *Flow) Window() (time.Time, time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.startTime, f.endTime
}

func buildEventRequest(draft Draft, vehicleRecord *vehicle.Record, option ParkingOption, startTime, endTime time.Time) EventRequest {
	var color, plate string
	if vehicleRecord != nil {
		color = vehicleRecord.Color
		plate = vehicleRecord.LicensePlate
	}

	description := fmt.Sprintf(
		"Vehicle: %s - %s\nDuration: %s\nPrice: %s\nContact: %s, %s\nPayment Method: %s",
		color, plate,
		option.DurationLabel(),
		option.PriceLabel(),
		draft.Email, draft.Phone,
		draft.PaymentMethod,
	)

	return EventRequest{
		Summary:     "Parking Reservation - " + draft.FullName,
		Description: description,
		StartTime:   startTime.Format(time.RFC3339),
		EndTime:     endTime.Format(time.RFC3339),
	}
}
