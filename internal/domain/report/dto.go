package report

import "encoding/json"

type CreateReportDTO struct {
	Type      Type            `json:"type" binding:"required"`
	ProjectID string          `json:"project_id"`
	Content   string          `json:"content" binding:"required"`
	Details   json.RawMessage `json:"details"`
	Date      string          `json:"date"` // defaults to today when empty
}

type RejectReportDTO struct {
	Comment string `json:"comment"`
}

type DraftRequestDTO struct {
	Type     Type   `json:"type" binding:"required"`
	Keywords string `json:"keywords"`
}

// Stats feeds the dashboard cards: totals over the caller's visible set plus the
// company-wide important-pending count.
type Stats struct {
	Total            int `json:"total"`
	Pending          int `json:"pending"`
	ImportantPending int `json:"important"`
}
