package services_test

import (
	"testing"

	"fooddelivery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeRatings(t *testing.T) {
	tests := []struct {
		name  string
		stars []int
		want  services.RatingSummary
	}{
		{name: "none", stars: nil, want: services.RatingSummary{}},
		{name: "single", stars: []int{4}, want: services.RatingSummary{Count: 1, Average: 4}},
		{name: "rounds up", stars: []int{5, 4, 4}, want: services.RatingSummary{Count: 3, Average: 4.3}},
		{name: "rounds half", stars: []int{5, 4, 4, 4}, want: services.RatingSummary{Count: 4, Average: 4.3}},
		{name: "two thirds", stars: []int{5, 5, 4}, want: services.RatingSummary{Count: 3, Average: 4.7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.SummarizeRatings(tt.stars)
			assert.Equal(t, tt.want.Count, got.Count)
			assert.InDelta(t, tt.want.Average, got.Average, 1e-9)
		})
	}
}

func TestSummarizeTotals_MatchesSummarizeRatings(t *testing.T) {
	stars := []int{5, 4, 4, 3, 5, 5, 1}
	sum := 0
	for _, s := range stars {
		sum += s
	}

	assert.Equal(t, services.SummarizeRatings(stars), services.SummarizeTotals(len(stars), sum))
	assert.Equal(t, services.RatingSummary{}, services.SummarizeTotals(0, 0))
}
