package practice

import "math"

// Accuracy is the rounded percentage of answered questions that were correct.
// Halves round up; no answers gives 0.
func Accuracy(correct, incorrect int) int {
	total := correct + incorrect
	if total <= 0 || correct < 0 {
		return 0
	}
	return int(math.Floor(100*float64(correct)/float64(total) + 0.5))
}

type Rating string

const (
	RatingOutstanding    Rating = "outstanding"
	RatingGreat          Rating = "great"
	RatingGood           Rating = "good"
	RatingKeepPracticing Rating = "keep_practicing"
)

func RatingFor(accuracy int) Rating {
	switch {
	case accuracy >= 90:
		return RatingOutstanding
	case accuracy >= 70:
		return RatingGreat
	case accuracy >= 50:
		return RatingGood
	default:
		return RatingKeepPracticing
	}
}

// Summary is the final tally handed to the results view. Accuracy is always
// derived from the two counts.
type Summary struct {
	Topic          string `json:"topic"`
	CorrectCount   int    `json:"correct_count"`
	IncorrectCount int    `json:"incorrect_count"`
	Total          int    `json:"total"`
}

func (s Summary) Accuracy() int {
	return Accuracy(s.CorrectCount, s.IncorrectCount)
}

func (s Summary) Rating() Rating {
	return RatingFor(s.Accuracy())
}
