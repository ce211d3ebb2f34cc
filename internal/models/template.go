package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// QuestionnaireTemplate is a reusable questionnaire definition loaded from
// the templates YAML file at startup. The canonical "wellbeing" template is
// the one whose semantic tags drive the department satisfaction buckets.
type QuestionnaireTemplate struct {
	Name        string     `yaml:"name"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Anonymous   bool       `yaml:"anonymous"`
	Questions   []Question `yaml:"questions"`
}

// TemplateSet holds all templates, addressable by name.
type TemplateSet struct {
	Templates []QuestionnaireTemplate `yaml:"templates"`
}

// LoadTemplates reads and parses the questionnaire templates file.
func LoadTemplates(path string) (*TemplateSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read templates file: %w", err)
	}

	var set TemplateSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to unmarshal templates YAML: %w", err)
	}

	for _, tpl := range set.Templates {
		for _, q := range tpl.Questions {
			if err := q.Validate(); err != nil {
				return nil, fmt.Errorf("template %q: %w", tpl.Name, err)
			}
		}
	}
	return &set, nil
}

// ByName looks up a template.
func (s *TemplateSet) ByName(name string) (QuestionnaireTemplate, bool) {
	for _, tpl := range s.Templates {
		if tpl.Name == name {
			return tpl, true
		}
	}
	return QuestionnaireTemplate{}, false
}

// Instantiate creates a new questionnaire for a company from the template.
// The copy starts inactive; activation is a separate status update.
func (t QuestionnaireTemplate) Instantiate(companyID, createdBy string) *Questionnaire {
	questions := make(QuestionList, len(t.Questions))
	copy(questions, t.Questions)

	now := time.Now()
	return &Questionnaire{
		CompanyID:   companyID,
		Title:       t.Title,
		Description: t.Description,
		Questions:   questions,
		Status:      StatusInactive,
		CreatedBy:   createdBy,
		Anonymous:   t.Anonymous,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
