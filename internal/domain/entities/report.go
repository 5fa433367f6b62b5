package entities

// VenueCount pairs a venue with how often it hosted events in a period.
type VenueCount struct {
	Venue string
	Count int
}

// MonthlyReport aggregates one month of events.
type MonthlyReport struct {
	Month           int
	Year            int
	TotalEvents     int
	TotalRevenue    float64
	TopVenues       []VenueCount
	EventsByWeekday map[string]int
	Events          []Event
}

// MonthSummary is one row of an annual report.
type MonthSummary struct {
	Label       string
	Month       int
	TotalEvents int
	Revenue     float64
}

// AnnualReport aggregates a full year, month by month.
type AnnualReport struct {
	Year         int
	TotalEvents  int
	TotalRevenue float64
	Months       []MonthSummary
}

// Dashboard is the current-month snapshot plus near-term upcoming events.
type Dashboard struct {
	MonthEvents  int
	MonthRevenue float64
	Upcoming     []Event
	MonthLabel   string
}
