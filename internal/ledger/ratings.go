package ledger

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	MinRating  = 1
	MaxRating  = 5
	MaxRatings = 30
)

// ErrInvalidRating is returned by ParseRating for input that is not a finite
// number.
var ErrInvalidRating = errors.New("rating must be a number from 1 to 5")

// Ratings maps a recipe id to its most recent ratings, oldest first.
type Ratings map[string][]int

// Submit returns a copy with value clamped to [1,5] appended to the
// recipe's history. Only the newest MaxRatings entries are kept.
func (r Ratings) Submit(recipeID string, value int) Ratings {
	out := make(Ratings, len(r)+1)
	for id, h := range r {
		out[id] = h
	}
	history := append(append([]int(nil), r[recipeID]...), Clamp(value))
	if len(history) > MaxRatings {
		history = history[len(history)-MaxRatings:]
	}
	out[recipeID] = history
	return out
}

// History returns the retained ratings for a recipe.
func (r Ratings) History(recipeID string) []int {
	return append([]int(nil), r[recipeID]...)
}

// Average is the mean of the retained ratings, or 0 when there are none.
func (r Ratings) Average(recipeID string) float64 {
	history := r[recipeID]
	if len(history) == 0 {
		return 0
	}
	sum := 0
	for _, v := range history {
		sum += v
	}
	return float64(sum) / float64(len(history))
}

// Clamp forces v into [MinRating, MaxRating].
func Clamp(v int) int {
	if v < MinRating {
		return MinRating
	}
	if v > MaxRating {
		return MaxRating
	}
	return v
}

// ParseRating converts user input to a rating. Numbers are rounded and
// clamped; anything else is rejected.
func ParseRating(raw string) (int, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrInvalidRating
	}
	switch r := math.Round(f); {
	case r < MinRating:
		return MinRating, nil
	case r > MaxRating:
		return MaxRating, nil
	default:
		return int(r), nil
	}
}
