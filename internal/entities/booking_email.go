package entities

type BookingEmailData struct {
	UserName           string
	BookingCode        string
	VehicleName        string
	StartDateFormatted string
	EndDateFormatted   string
	TotalPrice         float64
	Status             string
	CurrentYear        int
}
