package model

import "time"

// DashboardStats is the cross-store summary shown on the dashboard. It is
// recomputed from scratch on every request, never maintained incrementally.
type DashboardStats struct {
	Totals struct {
		Subjects int `json:"subjects"`
		Topics   int `json:"topics"`
		PDFs     int `json:"pdfs"`
	} `json:"totals"`
	LastNote struct {
		HasNote   bool      `json:"has_note"`
		Preview   string    `json:"preview"`
		UpdatedAt time.Time `json:"updated_at,omitempty"`
	} `json:"last_note"`
	RecentPDFs []*PDF `json:"recent_pdfs"`
}
