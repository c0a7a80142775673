package summary

import (
	"testing"

	"github.com/lwsantos/rocketseat-chalange-daily-diet/internal/models"
)

// mealSeq builds a recency-ordered meal list from a sequence of flags,
// newest first.
func mealSeq(flags ...bool) []models.Meal {
	meals := make([]models.Meal, len(flags))
	for i, f := range flags {
		meals[i] = models.Meal{IsExpected: f}
	}
	return meals
}

func TestBestSequence(t *testing.T) {
	tests := []struct {
		name  string
		meals []models.Meal
		want  int
	}{
		{
			name:  "no meals",
			meals: nil,
			want:  0,
		},
		{
			name:  "all within plan",
			meals: mealSeq(true, true, true),
			want:  3,
		},
		{
			name:  "none within plan",
			meals: mealSeq(false, false),
			want:  0,
		},
		{
			name:  "single meal within plan",
			meals: mealSeq(true),
			want:  1,
		},
		{
			name: "run broken in the middle",
			// Nov 2 18:00 ok, Nov 1 18:00 off-plan, Nov 1 12:00 ok, Nov 1 08:00 ok
			meals: []models.Meal{
				{Date: "2024-11-02", Time: "18:00", IsExpected: true},
				{Date: "2024-11-01", Time: "18:00", IsExpected: false},
				{Date: "2024-11-01", Time: "12:00", IsExpected: true},
				{Date: "2024-11-01", Time: "08:00", IsExpected: true},
			},
			want: 2,
		},
		{
			name:  "alternating",
			meals: mealSeq(true, false, true, false, true),
			want:  1,
		},
		{
			name:  "longest run at the end",
			meals: mealSeq(true, false, true, true, true),
			want:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BestSequence(tt.meals)
			if got != tt.want {
				t.Errorf("BestSequence() = %d, want %d", got, tt.want)
			}

			// The longest run is direction-symmetric: reversing the list
			// must not change the answer.
			reversed := make([]models.Meal, len(tt.meals))
			for i, meal := range tt.meals {
				reversed[len(tt.meals)-1-i] = meal
			}
			if got := BestSequence(reversed); got != tt.want {
				t.Errorf("BestSequence(reversed) = %d, want %d", got, tt.want)
			}

			// A run can never be longer than the list itself.
			if got > len(tt.meals) {
				t.Errorf("BestSequence() = %d exceeds meal count %d", got, len(tt.meals))
			}
		})
	}
}
