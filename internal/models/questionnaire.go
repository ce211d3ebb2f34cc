package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Questionnaire lifecycle statuses.
const (
	StatusInactive  = "inactive"
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// Semantic tags routing scale answers into the satisfaction buckets.
const (
	TagStress       = "stress"
	TagSatisfaction = "satisfaction"
	TagWorkLife     = "worklife"
	TagWellbeing    = "wellbeing"
	TagUntagged     = ""
)

// DefaultTemplateTags maps the question numbering of the canonical wellbeing
// template to its semantic meaning. Questionnaires created before semantic
// tagging only carry these ids, so the satisfaction scorer falls back to this
// table for untagged questions.
var DefaultTemplateTags = map[int]string{
	1: TagStress,
	3: TagSatisfaction,
	7: TagWorkLife,
	9: TagWellbeing,
}

// Question is a single scale item inside a questionnaire. Questions are
// stored denormalized as a jsonb column on the questionnaire row.
type Question struct {
	ID          int      `json:"id" yaml:"id"`
	Text        string   `json:"text" yaml:"text"`
	Type        string   `json:"type" yaml:"type"` // only "scale" is supported
	ScaleMin    int      `json:"scale_min" yaml:"scale_min"`
	ScaleMax    int      `json:"scale_max" yaml:"scale_max"`
	ScaleLabels []string `json:"scale_labels" yaml:"scale_labels"`
	Required    bool     `json:"required" yaml:"required"`
	SemanticTag string   `json:"semantic_tag,omitempty" yaml:"semantic_tag,omitempty"`
}

// Tag resolves the semantic category of a question, falling back to the
// canonical template numbering when the question predates tagging.
func (q Question) Tag() string {
	if q.SemanticTag != TagUntagged {
		return q.SemanticTag
	}
	return DefaultTemplateTags[q.ID]
}

// Validate checks the scale invariants: max above min and one label per step.
func (q Question) Validate() error {
	if q.Type != "scale" {
		return fmt.Errorf("question %d: unsupported type %q", q.ID, q.Type)
	}
	if q.ScaleMax <= q.ScaleMin {
		return fmt.Errorf("question %d: scale_max must be greater than scale_min", q.ID)
	}
	if len(q.ScaleLabels) > 0 && len(q.ScaleLabels) != q.ScaleMax-q.ScaleMin+1 {
		return fmt.Errorf("question %d: expected %d scale labels, got %d",
			q.ID, q.ScaleMax-q.ScaleMin+1, len(q.ScaleLabels))
	}
	return nil
}

// QuestionList stores the ordered questions as a jsonb column.
type QuestionList []Question

func (l QuestionList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *QuestionList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	}
	return fmt.Errorf("unsupported type %T for QuestionList", value)
}

// Questionnaire is owned by a company (the tenant). Deleting a questionnaire
// cascades to its responses.
type Questionnaire struct {
	ID               int          `gorm:"primaryKey" json:"id"`
	CompanyID        string       `gorm:"index" json:"company_id"`
	Title            string       `json:"title"`
	Description      string       `json:"description,omitempty"`
	Questions        QuestionList `gorm:"type:jsonb" json:"questions"`
	TargetDepartment string       `json:"target_department,omitempty"`
	Status           string       `gorm:"default:inactive" json:"status"`
	CreatedBy        string       `json:"created_by"`
	Anonymous        bool         `json:"anonymous"`
	NotificationSent bool         `json:"notification_sent"`
	StartDate        *time.Time   `json:"start_date,omitempty"`
	EndDate          *time.Time   `json:"end_date,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// QuestionByID looks up a question within the questionnaire.
func (q *Questionnaire) QuestionByID(id int) (Question, bool) {
	for _, question := range q.Questions {
		if question.ID == id {
			return question, true
		}
	}
	return Question{}, false
}

// ValidStatus reports whether s is a known lifecycle status.
func ValidStatus(s string) bool {
	return s == StatusInactive || s == StatusActive || s == StatusCompleted
}
