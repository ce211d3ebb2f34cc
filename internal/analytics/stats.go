package analytics

import (
	"math"
	"sort"

	"portal-calma/internal/models"
)

// dateLayout buckets timestamps by calendar day. Dates are compared as
// formatted strings in the stored timezone, no conversion.
const dateLayout = "2006-01-02"

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// median returns the element at index floor(n/2) of the value-sorted list.
// For even-length lists this selects a single middle element rather than
// interpolating, which is the portal's established contract.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted[len(sorted)/2]
}

// modeFirstSeen returns the most frequent value. Frequency ties resolve to
// the value that appeared first in scan order.
func modeFirstSeen(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	counts := make(map[float64]int, len(values))
	var best float64
	bestCount := 0
	for _, v := range values {
		counts[v]++
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best
}

// populationStdDev divides by n, not n-1.
func populationStdDev(values []float64) float64 {
	if len(values) <= 1 {
		return 0
	}
	avg := mean(values)
	var sumSquaredDiff float64
	for _, v := range values {
		diff := v - avg
		sumSquaredDiff += diff * diff
	}
	return math.Sqrt(sumSquaredDiff / float64(len(values)))
}

// responseAverage is a single response's own mean over its answers. Every
// aggregate built on it is a mean-of-means: each response weighs the same no
// matter how many questions it answered. The second return is false when the
// response carries no answers.
func responseAverage(r models.Response) (float64, bool) {
	if len(r.Answers) == 0 {
		return 0, false
	}
	var sum float64
	for _, a := range r.Answers {
		sum += a.Value
	}
	return sum / float64(len(r.Answers)), true
}

// meanOfMeans averages the per-response averages of the completed responses
// in the list.
func meanOfMeans(responses []models.Response) float64 {
	var averages []float64
	for _, r := range responses {
		if !r.IsCompleted() {
			continue
		}
		if avg, ok := responseAverage(r); ok {
			averages = append(averages, avg)
		}
	}
	return mean(averages)
}

// ratio returns part/total*100 guarding the empty denominator.
func ratio(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
