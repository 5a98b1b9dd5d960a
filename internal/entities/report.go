package entities

type DashboardResponse struct {
	VehicleCount      int               `json:"vehicle_count"`
	UserCount         int               `json:"user_count"`
	PendingBookings   int               `json:"pending_bookings"`
	ConfirmedBookings int               `json:"confirmed_bookings"`
	RecentBookings    []BookingResponse `json:"recent_bookings"`
}

type VehicleBookingCount struct {
	VehicleID    int    `json:"vehicle_id"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	BookingCount int    `json:"booking_count"`
}

type ReportResponse struct {
	MonthlyBookings int                   `json:"monthly_bookings"`
	PendingCount    int                   `json:"pending_count"`
	ConfirmedCount  int                   `json:"confirmed_count"`
	CompletedCount  int                   `json:"completed_count"`
	CancelledCount  int                   `json:"cancelled_count"`
	MonthlyRevenue  float64               `json:"monthly_revenue"`
	TopVehicles     []VehicleBookingCount `json:"top_vehicles"`
}
