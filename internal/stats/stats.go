// Package stats folds review collections into the summary structures the
// dashboard endpoints serve.
package stats

import (
	"math"
	"sort"

	"foodlover-backend/internal/models"
)

// RatingBucket is one bar of the 1–5 rating histogram.
type RatingBucket struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

// RatingDistribution counts reviews per rounded rating. The result always has
// exactly five buckets, ratings 1 through 5 ascending. A review whose rounded
// rating falls outside [1,5] contributes to no bucket.
func RatingDistribution(reviews []models.Review) []RatingBucket {
	buckets := []RatingBucket{
		{Rating: 1}, {Rating: 2}, {Rating: 3}, {Rating: 4}, {Rating: 5},
	}
	for _, review := range reviews {
		rating := int(math.Round(review.Rating))
		if rating >= 1 && rating <= 5 {
			buckets[rating-1].Count++
		}
	}
	return buckets
}

// MonthCount is the number of reviews created in one calendar month.
type MonthCount struct {
	Month   string `json:"month"`
	Reviews int    `json:"reviews"`
}

// MonthlyCounts groups reviews by calendar month of creation and returns the
// counts in chronological order with three-letter month labels. Grouping is
// year-aware, so a span longer than a year yields repeated labels rather than
// merged buckets.
func MonthlyCounts(reviews []models.Review) []MonthCount {
	type yearMonth struct {
		year  int
		month int
	}

	counts := make(map[yearMonth]int)
	for _, review := range reviews {
		key := yearMonth{review.CreatedAt.Year(), int(review.CreatedAt.Month())}
		counts[key]++
	}

	keys := make([]yearMonth, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	out := make([]MonthCount, 0, len(keys))
	for _, key := range keys {
		out = append(out, MonthCount{
			Month:   monthNames[key.month-1],
			Reviews: counts[key],
		})
	}
	return out
}

var monthNames = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// RestaurantRank is one entry of a top-restaurants ranking.
type RestaurantRank struct {
	Name      string  `json:"name"`
	Reviews   int     `json:"reviews"`
	AvgRating float64 `json:"avgRating"`
}

// TopRestaurants groups reviews by restaurant name, ranks the groups by
// review count descending and returns at most n of them. Ties keep the order
// in which the restaurants first appear in the input. AvgRating is the mean
// rating of the group rounded to one decimal place.
func TopRestaurants(reviews []models.Review, n int) []RestaurantRank {
	index := make(map[string]int)
	ranks := make([]RestaurantRank, 0)
	sums := make([]float64, 0)

	for _, review := range reviews {
		i, ok := index[review.Restaurant]
		if !ok {
			i = len(ranks)
			index[review.Restaurant] = i
			ranks = append(ranks, RestaurantRank{Name: review.Restaurant})
			sums = append(sums, 0)
		}
		ranks[i].Reviews++
		sums[i] += review.Rating
	}

	for i := range ranks {
		avg := sums[i] / float64(ranks[i].Reviews)
		ranks[i].AvgRating = math.Round(avg*10) / 10
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Reviews > ranks[j].Reviews
	})

	if n > 0 && len(ranks) > n {
		ranks = ranks[:n]
	}
	return ranks
}
