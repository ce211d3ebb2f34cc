package analytics

import (
	"portal-calma/internal/models"
)

// GroupResponsesByDepartment produces one entry per distinct department in
// first-seen order. Responses without a department fall into the
// "Não Informado" group. The average score is a mean-of-means over the
// group's completed responses.
func GroupResponsesByDepartment(responses []models.Response) []DepartmentResponseData {
	groups := make(map[string][]models.Response)
	var order []string

	for _, r := range responses {
		dept := r.DepartmentOrDefault()
		if _, seen := groups[dept]; !seen {
			order = append(order, dept)
		}
		groups[dept] = append(groups[dept], r)
	}

	result := make([]DepartmentResponseData, 0, len(order))
	for _, dept := range order {
		group := groups[dept]

		completed := 0
		for _, r := range group {
			if r.IsCompleted() {
				completed++
			}
		}

		result = append(result, DepartmentResponseData{
			Department:     dept,
			TotalSent:      len(group),
			TotalCompleted: completed,
			CompletionRate: ratio(completed, len(group)),
			AverageScore:   meanOfMeans(group),
		})
	}
	return result
}
