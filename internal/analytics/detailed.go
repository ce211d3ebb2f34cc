package analytics

import (
	"sort"

	"portal-calma/internal/models"
)

// CalculateDetailedStatistics builds the drill-down view for one
// questionnaire: per-question descriptive statistics, a department breakdown
// and a response timeline. It never fails; a questionnaire with no responses
// yields the zeroed structure.
//
// Score statistics only consider completed responses. Response counts
// (totals, breakdown, timeline) include partial ones.
func CalculateDetailedStatistics(questionnaire *models.Questionnaire, responses []models.Response) *DetailedStatistics {
	result := EmptyDetailedStatistics(questionnaire.ID)

	var own []models.Response
	for _, r := range responses {
		if r.QuestionnaireID == questionnaire.ID {
			own = append(own, r)
		}
	}
	if len(own) == 0 {
		return result
	}

	result.TotalResponses = len(own)
	result.AverageScore = meanOfMeans(own)
	result.ResponsesByQuestion = questionStatistics(questionnaire, own)
	result.DepartmentBreakdown = departmentBreakdown(own)
	result.ResponseTimeline = responseTimeline(own)
	return result
}

// questionStatistics computes mean, median, mode, population standard
// deviation and the value distribution per question id, in the order the
// questions are first answered.
func questionStatistics(questionnaire *models.Questionnaire, responses []models.Response) []QuestionStatistics {
	values := make(map[int][]float64)
	texts := make(map[int]string)
	var order []int

	for _, r := range responses {
		if !r.IsCompleted() {
			continue
		}
		for _, a := range r.Answers {
			if _, seen := values[a.QuestionID]; !seen {
				order = append(order, a.QuestionID)
				if question, ok := questionnaire.QuestionByID(a.QuestionID); ok {
					texts[a.QuestionID] = question.Text
				} else {
					texts[a.QuestionID] = a.QuestionText
				}
			}
			values[a.QuestionID] = append(values[a.QuestionID], a.Value)
		}
	}

	result := make([]QuestionStatistics, 0, len(order))
	for _, questionID := range order {
		answerValues := values[questionID]

		distribution := make(map[int]int, len(answerValues))
		for _, v := range answerValues {
			distribution[int(v)]++
		}

		result = append(result, QuestionStatistics{
			QuestionID:        questionID,
			QuestionText:      texts[questionID],
			TotalAnswers:      len(answerValues),
			Average:           mean(answerValues),
			Median:            median(answerValues),
			Mode:              modeFirstSeen(answerValues),
			StandardDeviation: populationStdDev(answerValues),
			Distribution:      distribution,
		})
	}
	return result
}

func departmentBreakdown(responses []models.Response) []DepartmentBreakdownData {
	groups := make(map[string][]models.Response)
	var order []string

	for _, r := range responses {
		dept := r.DepartmentOrDefault()
		if _, seen := groups[dept]; !seen {
			order = append(order, dept)
		}
		groups[dept] = append(groups[dept], r)
	}

	result := make([]DepartmentBreakdownData, 0, len(order))
	for _, dept := range order {
		result = append(result, DepartmentBreakdownData{
			Department:   dept,
			Responses:    len(groups[dept]),
			AverageScore: meanOfMeans(groups[dept]),
		})
	}
	return result
}

func responseTimeline(responses []models.Response) []TimelinePoint {
	counts := make(map[string]int)
	for _, r := range responses {
		counts[r.CreatedAt.Format(dateLayout)]++
	}

	days := make([]string, 0, len(counts))
	for day := range counts {
		days = append(days, day)
	}
	sort.Strings(days)

	result := make([]TimelinePoint, 0, len(days))
	for _, day := range days {
		result = append(result, TimelinePoint{Date: day, Responses: counts[day]})
	}
	return result
}
