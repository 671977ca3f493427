package entity

// MonthlyCount is one month of aggregated activity, labelled YYYY-MM.
type MonthlyCount struct {
	Month string  `db:"month" json:"month"`
	Count int     `db:"count" json:"count"`
	Total float64 `db:"total" json:"total"`
}

type Stats struct {
	TotalUsers        int            `json:"total_users"`
	TotalArtists      int            `json:"total_artists"`
	TotalClubs        int            `json:"total_clubs"`
	TotalEvents       int            `json:"total_events"`
	PendingEvents     int            `json:"pending_events"`
	EventsPerMonth    []MonthlyCount `json:"events_per_month"`
	TransactionVolume []MonthlyCount `json:"transaction_volume"`
}
