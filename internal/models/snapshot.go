package models

import (
	"encoding/json"
	"time"
)

// AnalyticsSnapshot is a precomputed aggregate for one reporting period,
// written by a backfill job and served newest-first on the compliance report
// screen. The raw aggregate is kept as jsonb for forward compatibility.
type AnalyticsSnapshot struct {
	ID             int             `gorm:"primaryKey" json:"id"`
	CompanyID      string          `gorm:"index" json:"company_id"`
	PeriodStart    time.Time       `json:"period_start"`
	PeriodEnd      time.Time       `json:"period_end"`
	TotalResponses int             `json:"total_responses"`
	CompletionRate float64         `json:"completion_rate"`
	AverageScore   float64         `json:"average_score"`
	Payload        json.RawMessage `gorm:"type:jsonb" json:"payload,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
