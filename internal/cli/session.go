package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sanjay-kth/hirescore/internal/database"
	"github.com/sanjay-kth/hirescore/internal/output"
	"github.com/sanjay-kth/hirescore/internal/recommend"
	"github.com/sanjay-kth/hirescore/internal/scoring"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage interview sessions",
	Long: `Record answers for a candidate's interview session and produce a
hiring recommendation once all answers are in.

Examples:
  hirescore session start --candidate "Priya N" --position "Backend Engineer"
  hirescore session add 3f2a --question "..." --sample "..." --answer "..."
  hirescore session finalize 3f2a
  hirescore session show 3f2a
  hirescore session list --recommendation select`,
}

var (
	sessionCandidate  string
	sessionPosition   string
	sessionQuestion   string
	sessionSample     string
	sessionSampleFile string
	sessionAnswer     string
	sessionAnswerFile string
	sessionListRec    string
)

var sessionStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a new interview session",
	RunE:  runSessionStart,
}

var sessionAddCmd = &cobra.Command{
	Use:   "add <session-id>",
	Short: "Score an answer and record it in a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionAdd,
}

var sessionFinalizeCmd = &cobra.Command{
	Use:   "finalize <session-id>",
	Short: "Generate and record the session verdict",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionFinalize,
}

var sessionShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show a session with all of its answers",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionShow,
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List interview sessions",
	RunE:  runSessionList,
}

var sessionDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session and its answers",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionDelete,
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionStartCmd)
	sessionCmd.AddCommand(sessionAddCmd)
	sessionCmd.AddCommand(sessionFinalizeCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionDeleteCmd)

	sessionStartCmd.Flags().StringVar(&sessionCandidate, "candidate", "", "candidate name (required)")
	sessionStartCmd.Flags().StringVar(&sessionPosition, "position", "", "position interviewed for")
	sessionStartCmd.MarkFlagRequired("candidate")

	sessionAddCmd.Flags().StringVarP(&sessionQuestion, "question", "q", "", "the interview question")
	sessionAddCmd.Flags().StringVarP(&sessionSample, "sample", "s", "", "the reference answer")
	sessionAddCmd.Flags().StringVar(&sessionSampleFile, "sample-file", "", "read the reference answer from a file")
	sessionAddCmd.Flags().StringVarP(&sessionAnswer, "answer", "a", "", "the candidate's answer")
	sessionAddCmd.Flags().StringVar(&sessionAnswerFile, "answer-file", "", "read the candidate's answer from a file")

	sessionListCmd.Flags().StringVar(&sessionListRec, "recommendation", "", "filter by recommendation (select, next_round, reject)")
}

func runSessionStart(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	session := &database.Session{Candidate: sessionCandidate}
	if sessionPosition != "" {
		session.Position = &sessionPosition
	}

	if err := db.CreateSession(ctx, session); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	fmt.Printf("Started session %s for %s\n", session.ID, session.Candidate)
	return nil
}

func runSessionAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync()

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	session, err := findSession(ctx, db, args[0])
	if err != nil {
		return err
	}
	if session.IsFinalized() {
		return fmt.Errorf("session %s is already finalized", session.ID)
	}

	answerText, err := textOrFile(sessionAnswer, sessionAnswerFile)
	if err != nil {
		return fmt.Errorf("failed to read answer: %w", err)
	}
	sampleText, err := textOrFile(sessionSample, sessionSampleFile)
	if err != nil {
		return fmt.Errorf("failed to read sample answer: %w", err)
	}

	scorer := scoring.NewScorer(cfg.Scoring.Weights())
	result := scorer.Score(scoring.ScoreInput{
		AnswerText:   answerText,
		SampleAnswer: sampleText,
		QuestionText: sessionQuestion,
	})

	answer := &database.Answer{
		SessionID:    session.ID,
		Question:     sessionQuestion,
		SampleAnswer: sampleText,
		AnswerText:   answerText,
		Score:        result.Score,
		Relevance:    result.Relevance,
		Completeness: result.Completeness,
		Accuracy:     result.Accuracy,
		Clarity:      result.Clarity,
		Feedback:     result.Feedback,
	}

	if err := db.AddAnswer(ctx, answer); err != nil {
		return fmt.Errorf("failed to record answer: %w", err)
	}

	log.Debug("recorded answer",
		zap.String("session_id", session.ID),
		zap.String("answer_id", answer.ID),
		zap.Float64("score", result.Score),
	)

	return output.Output(outputFmt, &result)
}

func runSessionFinalize(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync()

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	session, err := findSession(ctx, db, args[0])
	if err != nil {
		return err
	}
	if session.IsFinalized() {
		return fmt.Errorf("session %s is already finalized", session.ID)
	}

	answers, err := db.ListAnswers(ctx, session.ID)
	if err != nil {
		return fmt.Errorf("failed to load answers: %w", err)
	}

	scores := make([]scoring.AnswerScore, 0, len(answers))
	for _, a := range answers {
		scores = append(scores, a.AnswerScore())
	}

	engine := recommend.NewEngine(cfg.Recommendation.Thresholds())
	verdict := engine.Generate(scores)

	if err := db.FinalizeSession(ctx, session.ID, verdict); err != nil {
		return fmt.Errorf("failed to finalize session: %w", err)
	}

	log.Debug("finalized session",
		zap.String("session_id", session.ID),
		zap.Int("answers", len(answers)),
		zap.Float64("overall_score", verdict.OverallScore),
		zap.String("recommendation", string(verdict.Recommendation)),
	)

	return output.Output(outputFmt, &verdict)
}

func runSessionShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	session, err := findSession(ctx, db, args[0])
	if err != nil {
		return err
	}

	answers, err := db.ListAnswers(ctx, session.ID)
	if err != nil {
		return fmt.Errorf("failed to load answers: %w", err)
	}

	detail := &database.SessionDetail{Session: *session, Answers: answers}
	return output.Output(outputFmt, detail)
}

func runSessionList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	sessions, err := db.ListSessions(ctx, sessionListRec)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	return output.Output(outputFmt, sessions)
}

func runSessionDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	session, err := findSession(ctx, db, args[0])
	if err != nil {
		return err
	}

	if err := db.DeleteSession(ctx, session.ID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	fmt.Printf("Deleted session %s\n", session.ID)
	return nil
}

// findSession resolves a session by ID or unique prefix, erroring when it
// does not exist.
func findSession(ctx context.Context, db *database.DB, idOrPrefix string) (*database.Session, error) {
	session, err := db.FindSession(ctx, idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}
	if session == nil {
		return nil, fmt.Errorf("session not found: %s", idOrPrefix)
	}
	return session, nil
}
