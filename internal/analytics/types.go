package analytics

// DepartmentResponseData is one row of the responses-by-department table.
type DepartmentResponseData struct {
	Department     string  `json:"department"`
	TotalSent      int     `json:"totalSent"`
	TotalCompleted int     `json:"totalCompleted"`
	CompletionRate float64 `json:"completionRate"`
	AverageScore   float64 `json:"averageScore"`
}

// ResponseEvolutionData is one calendar-day bucket of the trailing window.
type ResponseEvolutionData struct {
	Date           string  `json:"date"`
	Responses      int     `json:"responses"`
	CompletionRate float64 `json:"completionRate"`
}

// QuestionnairePerformanceData summarizes one questionnaire.
type QuestionnairePerformanceData struct {
	Questionnaire  string  `json:"questionnaire"`
	TotalResponses int     `json:"totalResponses"`
	CompletionRate float64 `json:"completionRate"`
	AverageScore   float64 `json:"averageScore"`
	LastResponse   string  `json:"lastResponse"`
}

// DepartmentSatisfactionData holds the four semantic bucket averages for one
// department.
type DepartmentSatisfactionData struct {
	Department       string  `json:"department"`
	WellbeingScore   float64 `json:"wellbeingScore"`
	StressLevel      float64 `json:"stressLevel"`
	WorkSatisfaction float64 `json:"workSatisfaction"`
	WorkLifeBalance  float64 `json:"workLifeBalance"`
}

// QuestionStatistics holds the descriptive statistics for one question.
type QuestionStatistics struct {
	QuestionID        int         `json:"questionId"`
	QuestionText      string      `json:"questionText"`
	TotalAnswers      int         `json:"totalAnswers"`
	Average           float64     `json:"average"`
	Median            float64     `json:"median"`
	Mode              float64     `json:"mode"`
	StandardDeviation float64     `json:"standardDeviation"`
	Distribution      map[int]int `json:"distribution"`
}

// DepartmentBreakdownData is the per-department slice of the detailed view.
type DepartmentBreakdownData struct {
	Department   string  `json:"department"`
	Responses    int     `json:"responses"`
	AverageScore float64 `json:"averageScore"`
}

// TimelinePoint is one day of the detailed response timeline.
type TimelinePoint struct {
	Date      string `json:"date"`
	Responses int    `json:"responses"`
}

// DetailedStatistics is the full drill-down for a single questionnaire.
type DetailedStatistics struct {
	QuestionnaireID     int                       `json:"questionnaireId"`
	TotalResponses      int                       `json:"totalResponses"`
	AverageScore        float64                   `json:"averageScore"`
	ResponsesByQuestion []QuestionStatistics      `json:"responsesByQuestion"`
	DepartmentBreakdown []DepartmentBreakdownData `json:"departmentBreakdown"`
	ResponseTimeline    []TimelinePoint           `json:"responseTimeline"`
}

// QuestionnaireMetrics is the aggregate the dashboard renders.
type QuestionnaireMetrics struct {
	TotalQuestionnaires      int                            `json:"totalQuestionnaires"`
	ActiveQuestionnaires     int                            `json:"activeQuestionnaires"`
	TotalResponses           int                            `json:"totalResponses"`
	AverageCompletionRate    float64                        `json:"averageCompletionRate"`
	ResponsesByDepartment    []DepartmentResponseData       `json:"responsesByDepartment"`
	ResponseEvolution        []ResponseEvolutionData        `json:"responseEvolution"`
	QuestionnairePerformance []QuestionnairePerformanceData `json:"questionnairePerformance"`
	DepartmentSatisfaction   []DepartmentSatisfactionData   `json:"departmentSatisfaction"`
	MalformedAnswers         int                            `json:"malformedAnswers"`
}

// EmptyMetrics is the canonical zero-state the dashboard falls back to when
// the tenant cannot be resolved or the fetch fails. Slices are non-nil so the
// JSON shape stays stable.
func EmptyMetrics() *QuestionnaireMetrics {
	return &QuestionnaireMetrics{
		ResponsesByDepartment:    []DepartmentResponseData{},
		ResponseEvolution:        []ResponseEvolutionData{},
		QuestionnairePerformance: []QuestionnairePerformanceData{},
		DepartmentSatisfaction:   []DepartmentSatisfactionData{},
	}
}

// EmptyDetailedStatistics is the zero-state for a questionnaire drill-down.
func EmptyDetailedStatistics(questionnaireID int) *DetailedStatistics {
	return &DetailedStatistics{
		QuestionnaireID:     questionnaireID,
		ResponsesByQuestion: []QuestionStatistics{},
		DepartmentBreakdown: []DepartmentBreakdownData{},
		ResponseTimeline:    []TimelinePoint{},
	}
}
