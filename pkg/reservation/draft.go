package reservation

// Payment method labels offered on the reservation form. Only the card
// method takes additional details.
const (
	PaymentMethodCard       = "Card"
	PaymentMethodAmazonPay  = "Amazon Pay"
	PaymentMethodCashAppPay = "Cash App Pay"
	PaymentMethodKlarna     = "Klarna"
)

func PaymentMethods() []string {
	return []string{PaymentMethodCard, PaymentMethodAmazonPay, PaymentMethodCashAppPay, PaymentMethodKlarna}
}

// Draft holds the reservation form state for one session. Card details are
// collected for the card sub-form but never transmitted anywhere; they stay
// out of the event payload, logs and notifications.
type Draft struct {
	FullName      string
	Email         string
	Phone         string
	ParkingOption string
	PaymentMethod string

	CardNumber     string
	ExpirationDate string
	SecurityCode   string
	Country        string
	ZipCode        string
}

// NewDraft returns a draft with the form's initial selections.
func NewDraft() Draft {
	return Draft{
		ParkingOption: DefaultOption().Label,
		PaymentMethod: PaymentMethodCard,
		Country:       "United States",
	}
}

// RequiresCardDetails reports whether the selected payment method renders the
// card detail sub-form.
func (d Draft) RequiresCardDetails() bool {
	return d.PaymentMethod == PaymentMethodCard
}
