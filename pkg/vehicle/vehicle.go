package vehicle

// Record holds the vehicle details captured by the first form step.
type Record struct {
	Color                string `json:"color"`
	LicensePlate         string `json:"licensePlate"`
	ReceiveNotifications bool   `json:"receiveNotifications"`
}
