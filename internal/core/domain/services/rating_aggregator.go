package services

import "math"

// RatingSummary is the display aggregate for one restaurant.
type RatingSummary struct {
	Count   int
	Average float64
}

// SummarizeRatings averages star values and rounds to one decimal place.
// No ratings yields a zero summary.
func SummarizeRatings(stars []int) RatingSummary {
	sum := 0
	for _, s := range stars {
		sum += s
	}
	return SummarizeTotals(len(stars), sum)
}

// SummarizeTotals is SummarizeRatings for callers that aggregated in SQL.
func SummarizeTotals(count, sum int) RatingSummary {
	if count <= 0 {
		return RatingSummary{}
	}
	avg := float64(sum) / float64(count)
	return RatingSummary{
		Count:   count,
		Average: math.Round(avg*10) / 10,
	}
}
