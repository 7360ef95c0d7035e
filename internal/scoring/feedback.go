package scoring

import "strings"

// noAnswerFeedback is returned when the tokenized answer is empty.
const noAnswerFeedback = "No answer provided."

// Feedback sentence thresholds on the 0-10 scale.
const (
	feedbackPositiveMin = 7.0
	feedbackPartialMin  = 4.0
)

// feedbackSentences holds the three canned sentences for one dimension.
type feedbackSentences struct {
	positive string
	partial  string
	negative string
}

var (
	relevanceFeedback = feedbackSentences{
		positive: "The answer directly addresses the question.",
		partial:  "The answer is only partially relevant to the question.",
		negative: "The answer does not address the question asked.",
	}
	completenessFeedback = feedbackSentences{
		positive: "The answer covers the key points expected.",
		partial:  "The answer covers some key points but misses important details.",
		negative: "The answer misses most of the expected key points.",
	}
	accuracyFeedback = feedbackSentences{
		positive: "The content closely matches the expected answer.",
		partial:  "The content is partially accurate but diverges from the expected answer.",
		negative: "The content does not match the expected answer.",
	}
	clarityFeedback = feedbackSentences{
		positive: "The answer is well structured and easy to follow.",
		partial:  "The answer's structure could be clearer.",
		negative: "The answer lacks clear sentence structure.",
	}
)

// pick selects one sentence by score threshold
func (f feedbackSentences) pick(score float64) string {
	switch {
	case score >= feedbackPositiveMin:
		return f.positive
	case score >= feedbackPartialMin:
		return f.partial
	default:
		return f.negative
	}
}

// buildFeedback concatenates one sentence per dimension, in the fixed order
// relevance, completeness, accuracy, clarity.
func buildFeedback(relevance, completeness, accuracy, clarity float64) string {
	return strings.Join([]string{
		relevanceFeedback.pick(relevance),
		completenessFeedback.pick(completeness),
		accuracyFeedback.pick(accuracy),
		clarityFeedback.pick(clarity),
	}, " ")
}
