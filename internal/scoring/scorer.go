package scoring

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sub-score weights for the overall answer score. They must sum to 1.0.
const (
	DefaultWeightRelevance    = 0.30
	DefaultWeightCompleteness = 0.25
	DefaultWeightAccuracy     = 0.30
	DefaultWeightClarity      = 0.15
)

// relevanceBoost compensates for cosine similarity running low on short
// texts that are in fact on topic.
const relevanceBoost = 1.5

// ScoreInput contains the three texts a single answer is scored against.
// SampleAnswer and QuestionText may be empty; an empty AnswerText is the
// distinguished no-answer case.
type ScoreInput struct {
	AnswerText   string
	SampleAnswer string
	QuestionText string
}

// AnswerScore is the scored result for a single answer. All numeric fields
// are on a 0-10 scale, rounded to one decimal place.
type AnswerScore struct {
	Score        float64 `json:"score"`
	Relevance    float64 `json:"relevance_score"`
	Completeness float64 `json:"completeness_score"`
	Accuracy     float64 `json:"accuracy_score"`
	Clarity      float64 `json:"clarity_score"`
	Feedback     string  `json:"feedback"`
}

// Weights configures the convex combination of the four sub-scores.
type Weights struct {
	Relevance    float64
	Completeness float64
	Accuracy     float64
	Clarity      float64
}

// DefaultWeights returns the standard sub-score weighting.
func DefaultWeights() Weights {
	return Weights{
		Relevance:    DefaultWeightRelevance,
		Completeness: DefaultWeightCompleteness,
		Accuracy:     DefaultWeightAccuracy,
		Clarity:      DefaultWeightClarity,
	}
}

// Validate checks that all weights are non-negative and sum to 1.0
func (w Weights) Validate() error {
	if w.Relevance < 0 || w.Completeness < 0 || w.Accuracy < 0 || w.Clarity < 0 {
		return errors.New("scoring weights must be non-negative")
	}
	sum := w.Relevance + w.Completeness + w.Accuracy + w.Clarity
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("scoring weights must sum to 1.0, got %g", sum)
	}
	return nil
}

// Scorer computes deterministic 0-10 scores for candidate answers using
// token statistics only. It holds no mutable state and is safe for
// concurrent use.
type Scorer struct {
	weights Weights
}

// NewScorer creates a Scorer with the given weights
func NewScorer(weights Weights) *Scorer {
	return &Scorer{weights: weights}
}

// Score evaluates one answer against a reference answer and the question.
// It never fails: degenerate inputs map to defined edge-case outputs.
func (s *Scorer) Score(in ScoreInput) AnswerScore {
	answer := termCounts(tokenize(in.AnswerText))
	if len(answer) == 0 {
		return AnswerScore{Feedback: noAnswerFeedback}
	}

	sample := termCounts(tokenize(in.SampleAnswer))
	question := termCounts(tokenize(in.QuestionText))

	relevance := round1(relevanceSimilarity(answer, question, sample) * 10)
	completeness := round1(keywordCoverage(sample, answer) * 10)
	accuracy := round1(cosineSimilarity(answer, sample) * 10)
	clarity := round1(claritySimilarity(in.AnswerText) * 10)

	overall := s.weights.Relevance*relevance +
		s.weights.Completeness*completeness +
		s.weights.Accuracy*accuracy +
		s.weights.Clarity*clarity

	return AnswerScore{
		Score:        round1(math.Min(overall, 10.0)),
		Relevance:    relevance,
		Completeness: completeness,
		Accuracy:     accuracy,
		Clarity:      clarity,
		Feedback:     buildFeedback(relevance, completeness, accuracy, clarity),
	}
}

// relevanceSimilarity measures whether the answer addresses the question.
// When the question is empty the sample answer stands in as the reference.
func relevanceSimilarity(answer, question, sample map[string]int) float64 {
	reference := question
	if len(reference) == 0 {
		reference = sample
	}
	return math.Min(cosineSimilarity(answer, reference)*relevanceBoost, 1.0)
}

// keywordCoverage returns the fraction of the sample answer's unique
// non-stopword tokens that occur in the answer. A reference left empty by
// stopword removal yields a neutral 0.5 rather than zeroing the score.
func keywordCoverage(sample, answer map[string]int) float64 {
	keywords := 0
	matched := 0

	for term := range sample {
		if stopwords[term] {
			continue
		}
		keywords++
		if _, ok := answer[term]; ok {
			matched++
		}
	}

	if keywords == 0 {
		return 0.5
	}

	return float64(matched) / float64(keywords)
}

// claritySimilarity scores sentence structure independently of the
// reference answer: a length component from mean words per sentence and a
// count component rewarding multi-sentence answers.
func claritySimilarity(answerText string) float64 {
	sentences := splitSentences(answerText)
	if len(sentences) == 0 {
		return 0.0
	}

	totalWords := 0
	for _, sentence := range sentences {
		totalWords += len(strings.Fields(sentence))
	}
	avgWords := float64(totalWords) / float64(len(sentences))

	var lengthScore float64
	switch {
	case avgWords >= 8 && avgWords <= 25:
		lengthScore = 1.0
	case avgWords < 4:
		lengthScore = 0.3
	case avgWords < 8:
		lengthScore = 0.6
	default:
		lengthScore = 0.7
	}

	countScore := math.Min(float64(len(sentences))/3.0, 1.0)

	return 0.6*lengthScore + 0.4*countScore
}

// round1 rounds to one decimal place
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
