package recommend

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/sanjay-kth/hirescore/internal/scoring"
)

// Recommendation is the three-way session-level hiring verdict
type Recommendation string

const (
	RecommendationSelect    Recommendation = "select"
	RecommendationNextRound Recommendation = "next_round"
	RecommendationReject    Recommendation = "reject"
)

// Default recommendation cutoffs on the 0-10 scale.
const (
	DefaultSelectThreshold    = 7.5
	DefaultNextRoundThreshold = 5.0
)

// Gating thresholds for strengths/weaknesses clauses, on the 0-10 scale.
const (
	strengthDimensionMin = 7.0
	weaknessDimensionMax = 5.0
	strongAnswerMin      = 7.5
	weakAnswerMax        = 4.0
)

// Thresholds configures the recommendation cutoffs. A mean at or above
// Select yields "select"; at or above NextRound yields "next_round";
// anything lower is "reject".
type Thresholds struct {
	Select    float64
	NextRound float64
}

// DefaultThresholds returns the standard recommendation cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Select:    DefaultSelectThreshold,
		NextRound: DefaultNextRoundThreshold,
	}
}

// Validate checks that the cutoffs are ordered and on the 0-10 scale
func (t Thresholds) Validate() error {
	if t.Select < 0 || t.Select > 10 || t.NextRound < 0 || t.NextRound > 10 {
		return errors.New("recommendation thresholds must be between 0 and 10")
	}
	if t.NextRound > t.Select {
		return fmt.Errorf("next_round threshold (%g) must not exceed select threshold (%g)", t.NextRound, t.Select)
	}
	return nil
}

// SessionVerdict is the aggregated outcome for an entire interview session.
type SessionVerdict struct {
	OverallScore   float64        `json:"overall_score"`
	Recommendation Recommendation `json:"recommendation"`
	Strengths      string         `json:"strengths"`
	Weaknesses     string         `json:"weaknesses"`
}

// Engine aggregates per-answer scores into a session verdict. It is
// stateless and safe for concurrent use.
type Engine struct {
	thresholds Thresholds
}

// NewEngine creates an Engine with the given thresholds
func NewEngine(thresholds Thresholds) *Engine {
	return &Engine{thresholds: thresholds}
}

// Generate turns the per-answer scores of one session into a verdict.
// An empty score list is a defined terminal case, not an error.
func (e *Engine) Generate(scores []scoring.AnswerScore) SessionVerdict {
	if len(scores) == 0 {
		return SessionVerdict{
			OverallScore:   0.0,
			Recommendation: RecommendationReject,
			Strengths:      "No answers to evaluate.",
			Weaknesses:     "Candidate did not provide any answers.",
		}
	}

	var scoreSum, relevanceSum, completenessSum, accuracySum, claritySum float64
	strongAnswers := 0
	weakAnswers := 0

	for _, s := range scores {
		scoreSum += s.Score
		relevanceSum += s.Relevance
		completenessSum += s.Completeness
		accuracySum += s.Accuracy
		claritySum += s.Clarity

		if s.Score >= strongAnswerMin {
			strongAnswers++
		}
		if s.Score < weakAnswerMax {
			weakAnswers++
		}
	}

	n := float64(len(scores))
	mean := scoreSum / n
	dims := dimensionMeans{
		relevance:    relevanceSum / n,
		completeness: completenessSum / n,
		accuracy:     accuracySum / n,
		clarity:      claritySum / n,
	}

	return SessionVerdict{
		OverallScore:   round1(mean),
		Recommendation: e.recommend(mean),
		Strengths:      buildStrengths(dims, strongAnswers, len(scores)),
		Weaknesses:     buildWeaknesses(dims, weakAnswers, len(scores)),
	}
}

// recommend compares the unrounded mean against the cutoffs, so a mean of
// 7.4999 lands below a 7.5 select threshold even though it displays as 7.5.
func (e *Engine) recommend(mean float64) Recommendation {
	switch {
	case mean >= e.thresholds.Select:
		return RecommendationSelect
	case mean >= e.thresholds.NextRound:
		return RecommendationNextRound
	default:
		return RecommendationReject
	}
}

type dimensionMeans struct {
	relevance    float64
	completeness float64
	accuracy     float64
	clarity      float64
}

func buildStrengths(dims dimensionMeans, strongAnswers, total int) string {
	var clauses []string

	if dims.relevance >= strengthDimensionMin {
		clauses = append(clauses, "Stays on topic and addresses the questions asked")
	}
	if dims.completeness >= strengthDimensionMin {
		clauses = append(clauses, "Covers the expected key points thoroughly")
	}
	if dims.accuracy >= strengthDimensionMin {
		clauses = append(clauses, "Gives technically accurate answers")
	}
	if dims.clarity >= strengthDimensionMin {
		clauses = append(clauses, "Communicates in a clear, structured way")
	}
	if strongAnswers > 0 {
		clauses = append(clauses, fmt.Sprintf("Gave strong answers to %d of %d questions", strongAnswers, total))
	}

	if len(clauses) == 0 {
		clauses = append(clauses, "Shows willingness to attempt all questions")
	}

	return joinClauses(clauses)
}

func buildWeaknesses(dims dimensionMeans, weakAnswers, total int) string {
	var clauses []string

	if dims.relevance < weaknessDimensionMax {
		clauses = append(clauses, "Often drifts away from the question asked")
	}
	if dims.completeness < weaknessDimensionMax {
		clauses = append(clauses, "Misses many of the expected key points")
	}
	if dims.accuracy < weaknessDimensionMax {
		clauses = append(clauses, "Answers diverge from the expected content")
	}
	if dims.clarity < weaknessDimensionMax {
		clauses = append(clauses, "Answers are poorly structured and hard to follow")
	}
	if weakAnswers > 0 {
		clauses = append(clauses, fmt.Sprintf("Struggled on %d of %d questions", weakAnswers, total))
	}

	if len(clauses) == 0 {
		clauses = append(clauses, "No significant weaknesses identified")
	}

	return joinClauses(clauses)
}

func joinClauses(clauses []string) string {
	return strings.Join(clauses, ". ") + "."
}

// round1 rounds to one decimal place
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
