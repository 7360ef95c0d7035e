package database

import (
	"database/sql"
	"time"

	"github.com/sanjay-kth/hirescore/internal/scoring"
)

// SessionStatus represents the state of an interview session
type SessionStatus string

const (
	StatusOpen      SessionStatus = "open"
	StatusFinalized SessionStatus = "finalized"
)

// Session represents one candidate interview session
type Session struct {
	ID             string        `json:"id"`
	Candidate      string        `json:"candidate"`
	Position       *string       `json:"position,omitempty"`
	Status         SessionStatus `json:"status"`
	OverallScore   *float64      `json:"overall_score,omitempty"`
	Recommendation *string       `json:"recommendation,omitempty"`
	Strengths      *string       `json:"strengths,omitempty"`
	Weaknesses     *string       `json:"weaknesses,omitempty"`
	AnswerCount    int           `json:"answer_count"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// IsFinalized returns true once a verdict has been recorded
func (s *Session) IsFinalized() bool {
	return s.Status == StatusFinalized
}

// Answer represents a single scored answer within a session
type Answer struct {
	ID           string    `json:"id"`
	SessionID    string    `json:"session_id"`
	Question     string    `json:"question"`
	SampleAnswer string    `json:"sample_answer"`
	AnswerText   string    `json:"answer_text"`
	Score        float64   `json:"score"`
	Relevance    float64   `json:"relevance_score"`
	Completeness float64   `json:"completeness_score"`
	Accuracy     float64   `json:"accuracy_score"`
	Clarity      float64   `json:"clarity_score"`
	Feedback     string    `json:"feedback"`
	CreatedAt    time.Time `json:"created_at"`
}

// AnswerScore converts the stored row back into a scorer result
func (a *Answer) AnswerScore() scoring.AnswerScore {
	return scoring.AnswerScore{
		Score:        a.Score,
		Relevance:    a.Relevance,
		Completeness: a.Completeness,
		Accuracy:     a.Accuracy,
		Clarity:      a.Clarity,
		Feedback:     a.Feedback,
	}
}

// SessionDetail combines a session with all of its answers
type SessionDetail struct {
	Session Session  `json:"session"`
	Answers []Answer `json:"answers"`
}

// Stats holds aggregate statistics across all sessions
type Stats struct {
	TotalSessions     int            `json:"total_sessions"`
	FinalizedSessions int            `json:"finalized_sessions"`
	TotalAnswers      int            `json:"total_answers"`
	AverageScore      float64        `json:"average_score"`
	ByRecommendation  map[string]int `json:"by_recommendation"`
}

// NullString converts a *string to sql.NullString
func NullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// StringPtr converts a sql.NullString to *string
func StringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

// NullFloat converts a *float64 to sql.NullFloat64
func NullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

// FloatPtr converts a sql.NullFloat64 to *float64
func FloatPtr(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	return &nf.Float64
}
