// Package sentiment classifies submitted reviews as positive or negative and
// decides whether they are publishable.
package sentiment

import "strings"

// Sentiment is the classification of a review.
type Sentiment string

const (
	Positive Sentiment = "positive"
	Negative Sentiment = "negative"
)

// negativeWords tips a 3-star review into negative territory. Matching is
// whole-word on the lowercased message, so "bad" matches but "badge" does not.
var negativeWords = []string{"bad", "terrible", "awful", "disappointed", "poor", "worst"}

// Classify maps a 1–5 rating plus the free-text message to a sentiment and a
// public-visibility flag. Ratings of 4 and 5 are positive, 1 and 2 negative.
// A 3-star review is negative only when its message contains a negative word;
// otherwise it counts as positive. Only positive reviews are public.
func Classify(rating int, message string) (Sentiment, bool) {
	switch {
	case rating >= 4:
		return Positive, true
	case rating <= 2:
		return Negative, false
	}

	words := strings.Fields(strings.ToLower(message))
	for _, w := range words {
		for _, neg := range negativeWords {
			if w == neg {
				return Negative, false
			}
		}
	}
	return Positive, true
}
