package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Response completion statuses.
const (
	ResponseCompleted = "completed"
	ResponsePartial   = "partial"
)

// UnspecifiedDepartment is the sentinel used when a respondent left the
// department field empty. Kept in pt-BR for compatibility with the portal.
const UnspecifiedDepartment = "Não Informado"

// Answer links back to a question inside the parent questionnaire. The
// question text is denormalized at answering time, so edits to the
// questionnaire never rewrite history.
type Answer struct {
	QuestionID   int     `json:"question_id"`
	Value        float64 `json:"value"`
	QuestionText string  `json:"question_text,omitempty"`
}

// AnswerList stores the ordered answers as a jsonb column.
type AnswerList []Answer

func (l AnswerList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *AnswerList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	}
	return fmt.Errorf("unsupported type %T for AnswerList", value)
}

// Response is one user's submission for one questionnaire instance. Immutable
// once submitted.
type Response struct {
	ID              int        `gorm:"primaryKey" json:"id"`
	QuestionnaireID int        `gorm:"index" json:"questionnaire_id"`
	UserID          string     `json:"user_id"`
	CompanyID       string     `gorm:"index" json:"company_id"`
	Department      string     `json:"department,omitempty"`
	Answers         AnswerList `gorm:"type:jsonb" json:"answers"`
	Status          string     `gorm:"default:partial" json:"status"`
	SubmittedAt     *time.Time `json:"submitted_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// DepartmentOrDefault coerces an empty department to the sentinel label.
func (r *Response) DepartmentOrDefault() string {
	if r.Department == "" {
		return UnspecifiedDepartment
	}
	return r.Department
}

// IsCompleted reports whether the response was fully submitted.
func (r *Response) IsCompleted() bool {
	return r.Status == ResponseCompleted
}
