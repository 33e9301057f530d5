package reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lemonlot/parking/internal/utils"
	"github.com/lemonlot/parking/pkg/vehicle"
	"github.com/stretchr/testify/assert"
)

var testVehicle = &vehicle.Record{Color: "Red", LicensePlate: "ABC123", ReceiveNotifications: true}

func TestSubmit_TimeWindowFollowsSelectedDuration(t *testing.T) {
	start := time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		label   string
		wantEnd string
	}{
		{"1 Hour 30 Minute Parking", "2024-01-01T11:30:00Z"},
		{"30 Minute Parking", "2024-01-01T10:30:00Z"},
		{"3 Hour Parking", "2024-01-01T13:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			submitter := &StubSubmitter{}
			flow := NewFlow(testVehicle, submitter, &utils.MockClock{FixedNow: start})
			assert.NoError(t, flow.SelectParkingOption(tt.label))

			_, err := flow.Submit(context.Background())

			assert.NoError(t, err)
			assert.Equal(t, 1, submitter.Calls())
			request := submitter.LastRequest()
			assert.Equal(t, "2024-01-01T10:00:00Z", request.StartTime)
			assert.Equal(t, tt.wantEnd, request.EndTime)
		})
	}
}

func TestSubmit_BuildsEventPayload(t *testing.T) {
	start := time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)
	submitter := &StubSubmitter{}
	flow := NewFlow(testVehicle, submitter, &utils.MockClock{FixedNow: start})
	assert.NoError(t, flow.SetCustomer("Jane Doe", "jane@example.com", "+15551234567"))
	assert.NoError(t, flow.SelectParkingOption("2 Hour 30 Minute Parking"))
	assert.NoError(t, flow.SetCardDetails("4242424242424242", "12 / 26", "987", "United States", "90210"))

	_, err := flow.Submit(context.Background())
	assert.NoError(t, err)

	request := submitter.LastRequest()
	assert.Equal(t, "Parking Reservation - Jane Doe", request.Summary)
	assert.Contains(t, request.Description, "Vehicle: Red - ABC123")
	assert.Contains(t, request.Description, "Duration: 2 hours 30 minutes")
	assert.Contains(t, request.Description, "Price: $15.00")
	assert.Contains(t, request.Description, "Contact: jane@example.com, +15551234567")
	assert.Contains(t, request.Description, "Payment Method: Card")
	// Card details are collected but never transmitted.
	assert.NotContains(t, request.Description, "4242")
	assert.NotContains(t, request.Description, "987")
}

func TestSelectParkingOption_UpdatesDisplayedPrice(t *testing.T) {
	flow := NewFlow(testVehicle, &StubSubmitter{}, &utils.MockClock{FixedNow: time.Now()})

	assert.Equal(t, "$5.00", flow.SelectedOption().PriceLabel())

	assert.NoError(t, flow.SelectParkingOption("2 Hour 30 Minute Parking"))
	assert.Equal(t, "$15.00", flow.SelectedOption().PriceLabel())
	assert.Equal(t, "2 Hour 30 Minute Parking", flow.Draft().ParkingOption)
}

func TestSelectParkingOption_UnknownLabel(t *testing.T) {
	flow := NewFlow(testVehicle, &StubSubmitter{}, &utils.MockClock{FixedNow: time.Now()})

	err := flow.SelectParkingOption("All Day Parking")

	assert.ErrorIs(t, err, ErrUnknownOption)
	assert.Equal(t, DefaultOption().Label, flow.Draft().ParkingOption)
}

func TestSelectPaymentMethod_TogglesCardSubForm(t *testing.T) {
	flow := NewFlow(testVehicle, &StubSubmitter{}, &utils.MockClock{FixedNow: time.Now()})

	assert.True(t, flow.Draft().RequiresCardDetails())

	assert.NoError(t, flow.SelectPaymentMethod(PaymentMethodKlarna))
	assert.False(t, flow.Draft().RequiresCardDetails())

	assert.ErrorIs(t, flow.SelectPaymentMethod("Barter"), ErrUnknownMethod)
	assert.Equal(t, PaymentMethodKlarna, flow.Draft().PaymentMethod)
}

func TestSubmit_RejectsSecondSubmitWhileInFlight(t *testing.T) {
	submitter := &StubSubmitter{
		Started: make(chan struct{}, 1),
		Release: make(chan struct{}),
	}
	flow := NewFlow(testVehicle, submitter, &utils.MockClock{FixedNow: time.Now()})

	done := make(chan error, 1)
	go func() {
		_, err := flow.Submit(context.Background())
		done <- err
	}()
	<-submitter.Started

	assert.Equal(t, StateSubmitting, flow.State())
	_, err := flow.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmissionInFlight)
	assert.Equal(t, 1, submitter.Calls())

	close(submitter.Release)
	assert.NoError(t, <-done)
	assert.Equal(t, StateSuccess, flow.State())
}

func TestSubmit_FailureReturnsToEditingWithDraftIntact(t *testing.T) {
	submitter := &StubSubmitter{Err: errors.New("connection refused")}
	flow := NewFlow(testVehicle, submitter, &utils.MockClock{FixedNow: time.Now()})
	assert.NoError(t, flow.SetCustomer("Jane Doe", "jane@example.com", "+15551234567"))
	assert.NoError(t, flow.SelectParkingOption("1 Hour Parking"))
	assert.NoError(t, flow.SetCardDetails("4242424242424242", "12 / 26", "123", "Canada", "K1A0B1"))

	_, err := flow.Submit(context.Background())

	assert.Error(t, err)
	assert.Equal(t, StateEditing, flow.State())
	draft := flow.Draft()
	assert.Equal(t, "Jane Doe", draft.FullName)
	assert.Equal(t, "jane@example.com", draft.Email)
	assert.Equal(t, "+15551234567", draft.Phone)
	assert.Equal(t, "1 Hour Parking", draft.ParkingOption)
	assert.Equal(t, "4242424242424242", draft.CardNumber)
	assert.Equal(t, "12 / 26", draft.ExpirationDate)
	assert.Equal(t, "123", draft.SecurityCode)
	assert.Equal(t, "Canada", draft.Country)
	assert.Equal(t, "K1A0B1", draft.ZipCode)

	// Manual resubmission works once the endpoint recovers.
	submitter.Err = nil
	eventId, err := flow.Submit(context.Background())
	assert.NoError(t, err)
	assert.NotEmpty(t, eventId)
	assert.Equal(t, StateSuccess, flow.State())
	assert.Equal(t, 2, submitter.Calls())
}

func TestSubmit_SuccessIsTerminal(t *testing.T) {
	submitter := &StubSubmitter{EventId: "evt-1"}
	flow := NewFlow(testVehicle, submitter, &utils.MockClock{FixedNow: time.Now()})

	eventId, err := flow.Submit(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "evt-1", eventId)
	assert.Equal(t, "evt-1", flow.EventId())

	_, err = flow.Submit(context.Background())
	assert.ErrorIs(t, err, ErrAlreadyReserved)
	assert.ErrorIs(t, flow.SetCustomer("Other", "other@example.com", ""), ErrAlreadyReserved)
	assert.Equal(t, 1, submitter.Calls())
}

func TestSubmit_WithoutVehicleRecord(t *testing.T) {
	start := time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)
	submitter := &StubSubmitter{}
	flow := NewFlow(nil, submitter, &utils.MockClock{FixedNow: start})

	_, err := flow.Submit(context.Background())

	assert.NoError(t, err)
	assert.Contains(t, submitter.LastRequest().Description, "Vehicle:  - ")
}
