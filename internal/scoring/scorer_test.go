package scoring

import (
	"math"
	"strings"
	"testing"
)

func TestWeightsValidate(t *testing.T) {
	tests := []struct {
		name    string
		weights Weights
		wantErr bool
	}{
		{
			name:    "default weights",
			weights: DefaultWeights(),
			wantErr: false,
		},
		{
			name:    "do not sum to one",
			weights: Weights{Relevance: 0.5, Completeness: 0.5, Accuracy: 0.5, Clarity: 0.5},
			wantErr: true,
		},
		{
			name:    "negative weight",
			weights: Weights{Relevance: -0.3, Completeness: 0.5, Accuracy: 0.5, Clarity: 0.3},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.weights.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestScore_EmptyAnswer(t *testing.T) {
	scorer := NewScorer(DefaultWeights())

	inputs := []string{"", "   ", "?!... ---"}
	for _, answer := range inputs {
		result := scorer.Score(ScoreInput{
			AnswerText:   answer,
			SampleAnswer: "anything",
			QuestionText: "anything",
		})

		if result.Score != 0 || result.Relevance != 0 || result.Completeness != 0 ||
			result.Accuracy != 0 || result.Clarity != 0 {
			t.Errorf("Score(%q) = %+v, want all zeros", answer, result)
		}
		if result.Feedback != "No answer provided." {
			t.Errorf("Feedback = %q, want %q", result.Feedback, "No answer provided.")
		}
	}
}

func TestScore_SelfSimilarity(t *testing.T) {
	scorer := NewScorer(DefaultWeights())

	answer := "Dependency injection decouples object construction from object use. It also makes testing much easier."
	result := scorer.Score(ScoreInput{
		AnswerText:   answer,
		SampleAnswer: answer,
		QuestionText: "",
	})

	if result.Accuracy != 10.0 {
		t.Errorf("Accuracy = %v, want 10.0", result.Accuracy)
	}
	// With no question, relevance falls back to the sample answer
	if result.Relevance != 10.0 {
		t.Errorf("Relevance = %v, want 10.0", result.Relevance)
	}
	if result.Completeness != 10.0 {
		t.Errorf("Completeness = %v, want 10.0", result.Completeness)
	}
}

func TestScore_WeightInvariant(t *testing.T) {
	weights := DefaultWeights()
	scorer := NewScorer(weights)

	inputs := []ScoreInput{
		{
			AnswerText:   "REST API uses HTTP verbs like GET and POST to access resources over the web.",
			SampleAnswer: "A REST API uses HTTP methods to perform CRUD operations on resources.",
			QuestionText: "What is a REST API?",
		},
		{
			AnswerText:   "Yes.",
			SampleAnswer: "Goroutines are lightweight threads managed by the Go runtime.",
			QuestionText: "What is a goroutine?",
		},
		{
			AnswerText:   "42 42 42",
			SampleAnswer: "",
			QuestionText: "",
		},
	}

	for _, in := range inputs {
		result := scorer.Score(in)

		expected := round1(math.Min(
			weights.Relevance*result.Relevance+
				weights.Completeness*result.Completeness+
				weights.Accuracy*result.Accuracy+
				weights.Clarity*result.Clarity,
			10.0,
		))
		if result.Score != expected {
			t.Errorf("Score = %v, want weighted combination %v for %+v", result.Score, expected, in)
		}
	}
}

func TestScore_RangeInvariantAndDeterminism(t *testing.T) {
	scorer := NewScorer(DefaultWeights())

	inputs := []ScoreInput{
		{AnswerText: "short", SampleAnswer: "short", QuestionText: "short"},
		{AnswerText: "これはテストです", SampleAnswer: "sample", QuestionText: "question"},
		{AnswerText: strings.Repeat("word ", 500), SampleAnswer: "reference text", QuestionText: "a question"},
		{AnswerText: "1 2 3 4 5.", SampleAnswer: "the of and", QuestionText: ""},
		{AnswerText: "An answer with punctuation!!! And more?! Yes.", SampleAnswer: "", QuestionText: ""},
	}

	for _, in := range inputs {
		first := scorer.Score(in)
		second := scorer.Score(in)

		if first != second {
			t.Errorf("non-deterministic result for %+v: %+v vs %+v", in, first, second)
		}

		for name, v := range map[string]float64{
			"score":        first.Score,
			"relevance":    first.Relevance,
			"completeness": first.Completeness,
			"accuracy":     first.Accuracy,
			"clarity":      first.Clarity,
		} {
			if v < 0 || v > 10 {
				t.Errorf("%s = %v out of [0, 10] for %+v", name, v, in)
			}
		}
	}
}

func TestScore_KeywordCoverageMonotonic(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	sample := "We use Python with Django to build the API."
	question := "What is your backend stack?"

	all := scorer.Score(ScoreInput{
		AnswerText:   "I work with Python and Django, building the API layer.",
		SampleAnswer: sample,
		QuestionText: question,
	})
	one := scorer.Score(ScoreInput{
		AnswerText:   "I mostly work with Python.",
		SampleAnswer: sample,
		QuestionText: question,
	})

	if all.Completeness < one.Completeness {
		t.Errorf("completeness not monotonic in keyword coverage: all=%v one=%v",
			all.Completeness, one.Completeness)
	}
}

func TestKeywordCoverage_DegenerateReference(t *testing.T) {
	answer := termCounts(tokenize("a real answer"))

	tests := []struct {
		name   string
		sample string
	}{
		{name: "empty sample", sample: ""},
		{name: "stopwords only", sample: "the and of to be has could"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sample := termCounts(tokenize(tt.sample))
			if got := keywordCoverage(sample, answer); got != 0.5 {
				t.Errorf("keywordCoverage = %v, want neutral 0.5", got)
			}
		})
	}
}

func TestClaritySimilarity(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{
			name:     "no sentences",
			input:    "",
			expected: 0.0,
		},
		{
			// avg 1 word -> 0.3 length, 1 sentence -> 1/3 count
			name:     "single word sentence",
			input:    "Yes.",
			expected: 0.6*0.3 + 0.4*(1.0/3.0),
		},
		{
			// 14 words in one sentence -> 1.0 length, 1/3 count
			name:     "one well formed sentence",
			input:    "REST API uses HTTP verbs like GET and POST to access resources over the web.",
			expected: 0.6*1.0 + 0.4*(1.0/3.0),
		},
		{
			// avg 4 words -> 0.6 length, 3 sentences cap the count score
			name:     "three short sentences",
			input:    "One two three. Four five six seven. Eight nine ten eleven twelve.",
			expected: 0.6*0.6 + 0.4*1.0,
		},
		{
			// 26 words in one sentence -> 0.7 length
			name:     "rambling sentence",
			input:    strings.TrimSpace(strings.Repeat("word ", 26)) + ".",
			expected: 0.6*0.7 + 0.4*(1.0/3.0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := claritySimilarity(tt.input)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("claritySimilarity(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestBuildFeedback(t *testing.T) {
	allPositive := buildFeedback(8, 9, 7, 10)
	expected := strings.Join([]string{
		relevanceFeedback.positive,
		completenessFeedback.positive,
		accuracyFeedback.positive,
		clarityFeedback.positive,
	}, " ")
	if allPositive != expected {
		t.Errorf("buildFeedback(all positive) = %q, want %q", allPositive, expected)
	}

	// Boundary values: 7 is positive, 4 is partial, anything below 4 negative
	mixed := buildFeedback(7, 4, 3.9, 6.9)
	wantParts := []string{
		relevanceFeedback.positive,
		completenessFeedback.partial,
		accuracyFeedback.negative,
		clarityFeedback.partial,
	}
	if mixed != strings.Join(wantParts, " ") {
		t.Errorf("buildFeedback(boundaries) = %q, want %q", mixed, strings.Join(wantParts, " "))
	}
}

func TestScore_EndToEnd(t *testing.T) {
	scorer := NewScorer(DefaultWeights())

	result := scorer.Score(ScoreInput{
		QuestionText: "What is a REST API?",
		SampleAnswer: "A REST API uses HTTP methods to perform CRUD operations on resources, following statelessness and resource-based URLs.",
		AnswerText:   "REST API uses HTTP verbs like GET and POST to access resources over the web.",
	})

	// Shares "rest" and "api" with the five question tokens
	if result.Relevance != 3.5 {
		t.Errorf("Relevance = %v, want 3.5", result.Relevance)
	}
	// 5 of the sample's 14 non-stopword keywords appear in the answer
	if result.Completeness != 3.6 {
		t.Errorf("Completeness = %v, want 3.6", result.Completeness)
	}
	// 7 shared tokens over norms sqrt(15) and sqrt(18)
	if result.Accuracy != 4.3 {
		t.Errorf("Accuracy = %v, want 4.3", result.Accuracy)
	}
	// One well-formed 14-word sentence
	if result.Clarity != 7.3 {
		t.Errorf("Clarity = %v, want 7.3", result.Clarity)
	}
	if result.Score != 4.3 {
		t.Errorf("Score = %v, want 4.3", result.Score)
	}
	if !strings.Contains(result.Feedback, clarityFeedback.positive) {
		t.Errorf("Feedback = %q, missing clarity praise", result.Feedback)
	}
}
