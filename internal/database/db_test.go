package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sanjay-kth/hirescore/internal/recommend"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestOpen(t *testing.T) {
	db := setupTestDB(t)

	// Verify tables exist
	for _, table := range []string{"sessions", "answers"} {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		if err != nil {
			t.Fatalf("failed to query tables: %v", err)
		}
		if count != 1 {
			t.Errorf("expected %s table to exist", table)
		}
	}
}

func TestSessionCRUD(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	// Create
	position := "Backend Engineer"
	session := &Session{
		Candidate: "Priya Nair",
		Position:  &position,
	}
	if err := db.CreateSession(ctx, session); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	if session.ID == "" {
		t.Fatal("expected generated session ID")
	}
	if session.Status != StatusOpen {
		t.Errorf("Status = %v, want %v", session.Status, StatusOpen)
	}

	// Get
	got, err := db.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if got == nil {
		t.Fatal("expected session, got nil")
	}
	if got.Candidate != "Priya Nair" {
		t.Errorf("Candidate = %q", got.Candidate)
	}
	if got.Position == nil || *got.Position != position {
		t.Errorf("Position = %v, want %q", got.Position, position)
	}
	if got.AnswerCount != 0 {
		t.Errorf("AnswerCount = %d, want 0", got.AnswerCount)
	}

	// Unknown ID
	missing, err := db.GetSession(ctx, "does-not-exist")
	if err != nil {
		t.Fatalf("GetSession(unknown) error = %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown session, got %+v", missing)
	}

	// Delete
	if err := db.DeleteSession(ctx, session.ID); err != nil {
		t.Fatalf("DeleteSession() error = %v", err)
	}
	if err := db.DeleteSession(ctx, session.ID); err == nil {
		t.Error("DeleteSession() on deleted session should error")
	}
}

func TestFindSessionByPrefix(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	session := &Session{Candidate: "Alex Chen"}
	if err := db.CreateSession(ctx, session); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	found, err := db.FindSession(ctx, session.ID[:8])
	if err != nil {
		t.Fatalf("FindSession() error = %v", err)
	}
	if found == nil || found.ID != session.ID {
		t.Errorf("FindSession(prefix) = %+v, want session %s", found, session.ID)
	}

	missing, err := db.FindSession(ctx, "zzzzzzzz")
	if err != nil {
		t.Fatalf("FindSession(unknown) error = %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown prefix, got %+v", missing)
	}
}

func TestAnswersAndFinalize(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	session := &Session{Candidate: "Jordan Lee"}
	if err := db.CreateSession(ctx, session); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	answers := []*Answer{
		{
			SessionID:    session.ID,
			Question:     "What is a goroutine?",
			SampleAnswer: "A lightweight thread managed by the Go runtime.",
			AnswerText:   "A goroutine is a lightweight thread.",
			Score:        7.8, Relevance: 8.0, Completeness: 7.0, Accuracy: 8.5, Clarity: 7.5,
			Feedback: "Good answer.",
		},
		{
			SessionID:    session.ID,
			Question:     "Explain channels.",
			SampleAnswer: "Channels let goroutines communicate safely.",
			AnswerText:   "They pass values between goroutines.",
			Score:        6.2, Relevance: 6.0, Completeness: 5.5, Accuracy: 7.0, Clarity: 6.5,
			Feedback: "Decent answer.",
		},
	}

	for _, a := range answers {
		if err := db.AddAnswer(ctx, a); err != nil {
			t.Fatalf("AddAnswer() error = %v", err)
		}
		if a.ID == "" {
			t.Fatal("expected generated answer ID")
		}
	}

	stored, err := db.ListAnswers(ctx, session.ID)
	if err != nil {
		t.Fatalf("ListAnswers() error = %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("ListAnswers() returned %d answers, want 2", len(stored))
	}
	if stored[0].Question != "What is a goroutine?" {
		t.Errorf("answers out of order: first question = %q", stored[0].Question)
	}
	if stored[0].Score != 7.8 {
		t.Errorf("Score = %v, want 7.8", stored[0].Score)
	}

	// Round-trip into scorer records
	score := stored[1].AnswerScore()
	if score.Accuracy != 7.0 || score.Feedback != "Decent answer." {
		t.Errorf("AnswerScore() = %+v", score)
	}

	// Session reflects answer count
	got, err := db.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if got.AnswerCount != 2 {
		t.Errorf("AnswerCount = %d, want 2", got.AnswerCount)
	}

	// Finalize
	verdict := recommend.SessionVerdict{
		OverallScore:   7.0,
		Recommendation: recommend.RecommendationNextRound,
		Strengths:      "Solid fundamentals.",
		Weaknesses:     "Needs more depth.",
	}
	if err := db.FinalizeSession(ctx, session.ID, verdict); err != nil {
		t.Fatalf("FinalizeSession() error = %v", err)
	}

	got, err = db.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if !got.IsFinalized() {
		t.Errorf("Status = %v, want %v", got.Status, StatusFinalized)
	}
	if got.OverallScore == nil || *got.OverallScore != 7.0 {
		t.Errorf("OverallScore = %v, want 7.0", got.OverallScore)
	}
	if got.Recommendation == nil || *got.Recommendation != "next_round" {
		t.Errorf("Recommendation = %v, want next_round", got.Recommendation)
	}

	// Finalizing an unknown session errors
	if err := db.FinalizeSession(ctx, "does-not-exist", verdict); err == nil {
		t.Error("FinalizeSession() on unknown session should error")
	}
}

func TestListSessions(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	for _, candidate := range []string{"First Candidate", "Second Candidate"} {
		if err := db.CreateSession(ctx, &Session{Candidate: candidate}); err != nil {
			t.Fatalf("CreateSession() error = %v", err)
		}
	}

	sessions, err := db.ListSessions(ctx, "")
	if err != nil {
		t.Fatalf("ListSessions() error = %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("ListSessions() returned %d sessions, want 2", len(sessions))
	}

	// Filter matches nothing before any session is finalized
	selected, err := db.ListSessions(ctx, "select")
	if err != nil {
		t.Fatalf("ListSessions(select) error = %v", err)
	}
	if len(selected) != 0 {
		t.Errorf("ListSessions(select) returned %d sessions, want 0", len(selected))
	}
}

func TestGetStats(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	// Empty store
	stats, err := db.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}
	if stats.TotalSessions != 0 || stats.TotalAnswers != 0 {
		t.Errorf("GetStats() on empty store = %+v", stats)
	}

	// One finalized, one open
	first := &Session{Candidate: "A"}
	second := &Session{Candidate: "B"}
	for _, s := range []*Session{first, second} {
		if err := db.CreateSession(ctx, s); err != nil {
			t.Fatalf("CreateSession() error = %v", err)
		}
	}

	answer := &Answer{
		SessionID: first.ID, Question: "q", SampleAnswer: "s", AnswerText: "a",
		Score: 8.0, Relevance: 8.0, Completeness: 8.0, Accuracy: 8.0, Clarity: 8.0,
		Feedback: "ok",
	}
	if err := db.AddAnswer(ctx, answer); err != nil {
		t.Fatalf("AddAnswer() error = %v", err)
	}

	verdict := recommend.SessionVerdict{
		OverallScore:   8.0,
		Recommendation: recommend.RecommendationSelect,
		Strengths:      "x",
		Weaknesses:     "y",
	}
	if err := db.FinalizeSession(ctx, first.ID, verdict); err != nil {
		t.Fatalf("FinalizeSession() error = %v", err)
	}

	stats, err = db.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}
	if stats.TotalSessions != 2 {
		t.Errorf("TotalSessions = %d, want 2", stats.TotalSessions)
	}
	if stats.FinalizedSessions != 1 {
		t.Errorf("FinalizedSessions = %d, want 1", stats.FinalizedSessions)
	}
	if stats.TotalAnswers != 1 {
		t.Errorf("TotalAnswers = %d, want 1", stats.TotalAnswers)
	}
	if stats.AverageScore != 8.0 {
		t.Errorf("AverageScore = %v, want 8.0", stats.AverageScore)
	}
	if stats.ByRecommendation["select"] != 1 {
		t.Errorf("ByRecommendation = %v, want select:1", stats.ByRecommendation)
	}
}
