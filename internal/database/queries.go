package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sanjay-kth/hirescore/internal/recommend"
)

const sessionColumns = `
	s.id, s.candidate, s.position, s.status,
	s.overall_score, s.recommendation, s.strengths, s.weaknesses,
	(SELECT COUNT(*) FROM answers a WHERE a.session_id = s.id),
	s.created_at, s.updated_at`

// CreateSession inserts a new session
func (db *DB) CreateSession(ctx context.Context, s *Session) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.Status == "" {
		s.Status = StatusOpen
	}
	s.CreatedAt = time.Now()
	s.UpdatedAt = time.Now()

	_, err := db.ExecContext(ctx, `
		INSERT INTO sessions (
			id, candidate, position, status, overall_score, recommendation,
			strengths, weaknesses, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		s.ID, s.Candidate, NullString(s.Position), s.Status,
		NullFloat(s.OverallScore), NullString(s.Recommendation),
		NullString(s.Strengths), NullString(s.Weaknesses),
		s.CreatedAt, s.UpdatedAt,
	)
	return err
}

// GetSession retrieves a session by ID
func (db *DB) GetSession(ctx context.Context, id string) (*Session, error) {
	row := db.QueryRowContext(ctx, `
		SELECT `+sessionColumns+`
		FROM sessions s WHERE s.id = ?
	`, id)

	s, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// FindSession resolves a full session ID or a unique ID prefix. Returns nil
// when nothing matches and an error when the prefix is ambiguous.
func (db *DB) FindSession(ctx context.Context, idOrPrefix string) (*Session, error) {
	if s, err := db.GetSession(ctx, idOrPrefix); err != nil || s != nil {
		return s, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT `+sessionColumns+`
		FROM sessions s WHERE s.id LIKE ? || '%'
		LIMIT 2
	`, idOrPrefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []*Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("ambiguous session ID prefix: %s", idOrPrefix)
	}
}

// ListSessions retrieves sessions, newest first, optionally filtered by
// recommendation.
func (db *DB) ListSessions(ctx context.Context, recommendation string) ([]Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions s`
	var args []interface{}

	if recommendation != "" {
		query += ` WHERE s.recommendation = ?`
		args = append(args, recommendation)
	}
	query += ` ORDER BY s.created_at DESC`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *s)
	}

	return sessions, rows.Err()
}

// FinalizeSession records the verdict and marks the session finalized
func (db *DB) FinalizeSession(ctx context.Context, id string, verdict recommend.SessionVerdict) error {
	result, err := db.ExecContext(ctx, `
		UPDATE sessions SET
			status = ?, overall_score = ?, recommendation = ?,
			strengths = ?, weaknesses = ?, updated_at = ?
		WHERE id = ?
	`,
		StatusFinalized, verdict.OverallScore, string(verdict.Recommendation),
		verdict.Strengths, verdict.Weaknesses, time.Now(), id,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("session not found: %s", id)
	}

	return nil
}

// DeleteSession removes a session and its answers
func (db *DB) DeleteSession(ctx context.Context, id string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("session not found: %s", id)
	}

	return nil
}

// AddAnswer inserts a scored answer for a session
func (db *DB) AddAnswer(ctx context.Context, a *Answer) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	a.CreatedAt = time.Now()

	_, err := db.ExecContext(ctx, `
		INSERT INTO answers (
			id, session_id, question, sample_answer, answer_text,
			score, relevance_score, completeness_score, accuracy_score,
			clarity_score, feedback, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		a.ID, a.SessionID, a.Question, a.SampleAnswer, a.AnswerText,
		a.Score, a.Relevance, a.Completeness, a.Accuracy,
		a.Clarity, a.Feedback, a.CreatedAt,
	)

	if err != nil {
		return err
	}

	// Keep the session's updated_at in step with answer activity
	_, err = db.ExecContext(ctx, `
		UPDATE sessions SET updated_at = ? WHERE id = ?
	`, a.CreatedAt, a.SessionID)

	return err
}

// ListAnswers retrieves all answers for a session in submission order
func (db *DB) ListAnswers(ctx context.Context, sessionID string) ([]Answer, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, session_id, question, sample_answer, answer_text,
		       score, relevance_score, completeness_score, accuracy_score,
		       clarity_score, feedback, created_at
		FROM answers WHERE session_id = ?
		ORDER BY created_at ASC, rowid ASC
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var answers []Answer
	for rows.Next() {
		var a Answer
		err := rows.Scan(
			&a.ID, &a.SessionID, &a.Question, &a.SampleAnswer, &a.AnswerText,
			&a.Score, &a.Relevance, &a.Completeness, &a.Accuracy,
			&a.Clarity, &a.Feedback, &a.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}

	return answers, rows.Err()
}

// GetStats returns aggregate statistics across all sessions
func (db *DB) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{ByRecommendation: make(map[string]int)}

	err := db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COUNT(CASE WHEN status = ? THEN 1 END),
			COALESCE(AVG(CASE WHEN status = ? THEN overall_score END), 0)
		FROM sessions
	`, StatusFinalized, StatusFinalized).Scan(
		&stats.TotalSessions, &stats.FinalizedSessions, &stats.AverageScore,
	)
	if err != nil {
		return nil, err
	}

	err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM answers`).Scan(&stats.TotalAnswers)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT recommendation, COUNT(*)
		FROM sessions
		WHERE recommendation IS NOT NULL
		GROUP BY recommendation
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var rec string
		var count int
		if err := rows.Scan(&rec, &count); err != nil {
			return nil, err
		}
		stats.ByRecommendation[rec] = count
	}

	return stats, rows.Err()
}

// scanner abstracts over sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSession(row scanner) (*Session, error) {
	s := &Session{}
	var position, recommendation, strengths, weaknesses sql.NullString
	var overallScore sql.NullFloat64

	err := row.Scan(
		&s.ID, &s.Candidate, &position, &s.Status,
		&overallScore, &recommendation, &strengths, &weaknesses,
		&s.AnswerCount, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Position = StringPtr(position)
	s.OverallScore = FloatPtr(overallScore)
	s.Recommendation = StringPtr(recommendation)
	s.Strengths = StringPtr(strengths)
	s.Weaknesses = StringPtr(weaknesses)
	return s, nil
}
