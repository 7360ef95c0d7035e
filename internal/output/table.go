package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/olekukonko/tablewriter"

	"github.com/sanjay-kth/hirescore/internal/database"
	"github.com/sanjay-kth/hirescore/internal/recommend"
	"github.com/sanjay-kth/hirescore/internal/scoring"
)

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case []database.Session:
		return sessionsTable(w, v)
	case *database.SessionDetail:
		return sessionDetail(w, v)
	case *database.Stats:
		return statsTable(w, v)
	case *scoring.AnswerScore:
		return answerScoreDetail(w, v)
	case *recommend.SessionVerdict:
		return verdictDetail(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func sessionsTable(w io.Writer, sessions []database.Session) error {
	if len(sessions) == 0 {
		fmt.Fprintln(w, "No sessions found.")
		return nil
	}

	table := tablewriter.NewTable(w)
	table.Header("ID", "CANDIDATE", "POSITION", "STATUS", "ANSWERS", "SCORE", "RECOMMENDATION")

	for _, s := range sessions {
		position := ""
		if s.Position != nil {
			position = *s.Position
		}

		score := "-"
		if s.OverallScore != nil {
			score = fmt.Sprintf("%.1f", *s.OverallScore)
		}

		recommendation := "-"
		if s.Recommendation != nil {
			recommendation = *s.Recommendation
		}

		if err := table.Append([]string{
			shortID(s.ID),
			truncate(s.Candidate, 25),
			truncate(position, 25),
			string(s.Status),
			fmt.Sprintf("%d", s.AnswerCount),
			score,
			recommendation,
		}); err != nil {
			return err
		}
	}

	return table.Render()
}

func sessionDetail(w io.Writer, d *database.SessionDetail) error {
	s := d.Session

	fmt.Fprintf(w, "Session:        %s\n", s.ID)
	fmt.Fprintf(w, "Candidate:      %s\n", s.Candidate)
	if s.Position != nil && *s.Position != "" {
		fmt.Fprintf(w, "Position:       %s\n", *s.Position)
	}
	fmt.Fprintf(w, "Status:         %s\n", s.Status)
	fmt.Fprintf(w, "Created:        %s\n", s.CreatedAt.Format("2006-01-02 15:04"))

	if s.IsFinalized() {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Overall score:  %.1f\n", *s.OverallScore)
		fmt.Fprintf(w, "Recommendation: %s\n", *s.Recommendation)
		fmt.Fprintf(w, "Strengths:      %s\n", *s.Strengths)
		fmt.Fprintf(w, "Weaknesses:     %s\n", *s.Weaknesses)
	}

	if len(d.Answers) == 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "No answers recorded.")
		return nil
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tQUESTION\tSCORE\tREL\tCOMP\tACC\tCLAR")
	fmt.Fprintln(tw, "-\t--------\t-----\t---\t----\t---\t----")

	for i, a := range d.Answers {
		fmt.Fprintf(tw, "%d\t%s\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\n",
			i+1,
			truncate(a.Question, 40),
			a.Score,
			a.Relevance,
			a.Completeness,
			a.Accuracy,
			a.Clarity,
		)
	}

	return tw.Flush()
}

func answerScoreDetail(w io.Writer, score *scoring.AnswerScore) error {
	fmt.Fprintf(w, "Score:         %.1f\n", score.Score)
	fmt.Fprintf(w, "Relevance:     %.1f\n", score.Relevance)
	fmt.Fprintf(w, "Completeness:  %.1f\n", score.Completeness)
	fmt.Fprintf(w, "Accuracy:      %.1f\n", score.Accuracy)
	fmt.Fprintf(w, "Clarity:       %.1f\n", score.Clarity)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Feedback: %s\n", score.Feedback)
	return nil
}

func verdictDetail(w io.Writer, verdict *recommend.SessionVerdict) error {
	fmt.Fprintf(w, "Overall score:  %.1f\n", verdict.OverallScore)
	fmt.Fprintf(w, "Recommendation: %s\n", verdict.Recommendation)
	fmt.Fprintf(w, "Strengths:      %s\n", verdict.Strengths)
	fmt.Fprintf(w, "Weaknesses:     %s\n", verdict.Weaknesses)
	return nil
}

func statsTable(w io.Writer, stats *database.Stats) error {
	fmt.Fprintf(w, "Sessions:   %d (%d finalized)\n", stats.TotalSessions, stats.FinalizedSessions)
	fmt.Fprintf(w, "Answers:    %d\n", stats.TotalAnswers)
	if stats.FinalizedSessions > 0 {
		fmt.Fprintf(w, "Avg score:  %.1f\n", stats.AverageScore)
	}

	if len(stats.ByRecommendation) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	table := tablewriter.NewTable(w)
	table.Header("RECOMMENDATION", "SESSIONS")

	for _, rec := range []string{"select", "next_round", "reject"} {
		count, ok := stats.ByRecommendation[rec]
		if !ok {
			continue
		}
		if err := table.Append([]string{rec, fmt.Sprintf("%d", count)}); err != nil {
			return err
		}
	}

	return table.Render()
}

// shortID returns the first UUID segment, enough to identify a session
func shortID(id string) string {
	if idx := strings.Index(id, "-"); idx > 0 {
		return id[:idx]
	}
	return id
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
