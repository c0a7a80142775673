// Package summary computes diet adherence aggregates over a user's meals.
package summary

import (
	"github.com/lwsantos/rocketseat-chalange-daily-diet/internal/models"
)

// Report is the aggregate view of a user's meal history.
type Report struct {
	// TotalMeal is the number of meals recorded.
	TotalMeal int `json:"totalMeal"`
	// TotalExpected is the number of meals within the diet plan.
	TotalExpected int `json:"totalExpected"`
	// TotalUnexpected is the number of meals outside the diet plan.
	TotalUnexpected int `json:"totalUnexpected"`
	// TotalBestSequence is the length of the longest unbroken run of
	// within-plan meals in chronological order.
	TotalBestSequence int `json:"totalBestSequence"`
}

// BestSequence returns the length of the longest run of adjacent meals with
// IsExpected set. The input must be sorted by date then time so that
// adjacency in the slice means chronological adjacency; a run has the same
// length whichever direction the slice is traversed, so ascending and
// descending order give the same answer.
func BestSequence(meals []models.Meal) int {
	best, current := 0, 0
	for _, meal := range meals {
		if !meal.IsExpected {
			current = 0
			continue
		}
		current++
		if current > best {
			best = current
		}
	}
	return best
}
