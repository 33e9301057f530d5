package reservation

import (
	"fmt"
	"strings"
	"time"
)

// ParkingOption is a fixed catalog entry. The duration is carried as explicit
// hour and minute counts; both contribute additively and an absent part
// contributes zero.
type ParkingOption struct {
	ID      string
	Label   string
	Price   float64
	Hours   int
	Minutes int
}

func (o ParkingOption) Duration() time.Duration {
	return time.Duration(o.Hours)*time.Hour + time.Duration(o.Minutes)*time.Minute
}

// DurationLabel renders the duration for user-facing text, e.g.
// "1 hour 30 minutes".
func (o ParkingOption) DurationLabel() string {
	var parts []string
	if o.Hours == 1 {
		parts = append(parts, "1 hour")
	} else if o.Hours > 1 {
		parts = append(parts, fmt.Sprintf("%d hours", o.Hours))
	}
	if o.Minutes == 1 {
		parts = append(parts, "1 minute")
	} else if o.Minutes > 1 {
		parts = append(parts, fmt.Sprintf("%d minutes", o.Minutes))
	}
	return strings.Join(parts, " ")
}

// PriceLabel renders the price fixed to two decimal places, e.g. "$15.00".
func (o ParkingOption) PriceLabel() string {
	return fmt.Sprintf("$%.2f", o.Price)
}

var parkingOptions = []ParkingOption{
	{ID: "30min", Label: "30 Minute Parking", Price: 5.00, Minutes: 30},
	{ID: "1hour", Label: "1 Hour Parking", Price: 8.00, Hours: 1},
	{ID: "1hour30min", Label: "1 Hour 30 Minute Parking", Price: 10.00, Hours: 1, Minutes: 30},
	{ID: "2hour", Label: "2 Hour Parking", Price: 12.00, Hours: 2},
	{ID: "2hour30min", Label: "2 Hour 30 Minute Parking", Price: 15.00, Hours: 2, Minutes: 30},
	{ID: "3hour", Label: "3 Hour Parking", Price: 17.00, Hours: 3},
}

// Options returns the parking option catalog.
func Options() []ParkingOption {
	options := make([]ParkingOption, len(parkingOptions))
	copy(options, parkingOptions)
	return options
}

// OptionByLabel looks up a catalog entry by its label.
func OptionByLabel(label string) (ParkingOption, bool) {
	for _, option := range parkingOptions {
		if option.Label == label {
			return option, true
		}
	}
	return ParkingOption{}, false
}

// DefaultOption is the catalog entry preselected on a fresh form.
func DefaultOption() ParkingOption {
	return parkingOptions[0]
}
