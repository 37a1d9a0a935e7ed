package analytics

// PropertyStats aggregates reservation activity for one property over a date
// range.
type PropertyStats struct {
	PropertyID string `json:"property_id"`
	DateFrom   string `json:"date_from"`
	DateTo     string `json:"date_to"`

	TotalReservations int `json:"total_reservations"`
	Pending           int `json:"pending"`
	PendingPayment    int `json:"pending_payment"`
	Confirmed         int `json:"confirmed"`
	CheckedIn         int `json:"checked_in"`
	CheckedOut        int `json:"checked_out"`
	Cancelled         int `json:"cancelled"`

	TotalGuests      int     `json:"total_guests"`
	TotalRevenue     float64 `json:"total_revenue"`
	CancellationRate float64 `json:"cancellation_rate"`
	OccupancyRate    float64 `json:"occupancy_rate"`

	Daily []DailyStats `json:"daily"`
}

// DailyStats is one row of the per-day breakdown.
type DailyStats struct {
	Date         string  `json:"date"`
	Reservations int     `json:"reservations"`
	Guests       int     `json:"guests"`
	Revenue      float64 `json:"revenue"`
}
