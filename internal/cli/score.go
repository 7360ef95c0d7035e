package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sanjay-kth/hirescore/internal/output"
	"github.com/sanjay-kth/hirescore/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single answer without recording it",
	Long: `Score one candidate answer against a reference answer and the
original question, without touching the session store.

Examples:
  hirescore score --question "What is a REST API?" \
    --sample "A REST API uses HTTP methods to perform CRUD operations." \
    --answer "REST APIs use HTTP verbs like GET and POST."

  hirescore score -q question.txt --answer-file answer.txt --sample-file sample.txt`,
	RunE: runScore,
}

var (
	scoreQuestion   string
	scoreSample     string
	scoreSampleFile string
	scoreAnswer     string
	scoreAnswerFile string
)

func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().StringVarP(&scoreQuestion, "question", "q", "", "the interview question")
	scoreCmd.Flags().StringVarP(&scoreSample, "sample", "s", "", "the reference answer")
	scoreCmd.Flags().StringVar(&scoreSampleFile, "sample-file", "", "read the reference answer from a file")
	scoreCmd.Flags().StringVarP(&scoreAnswer, "answer", "a", "", "the candidate's answer")
	scoreCmd.Flags().StringVar(&scoreAnswerFile, "answer-file", "", "read the candidate's answer from a file")
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync()

	answer, err := textOrFile(scoreAnswer, scoreAnswerFile)
	if err != nil {
		return fmt.Errorf("failed to read answer: %w", err)
	}
	sample, err := textOrFile(scoreSample, scoreSampleFile)
	if err != nil {
		return fmt.Errorf("failed to read sample answer: %w", err)
	}

	scorer := scoring.NewScorer(cfg.Scoring.Weights())
	result := scorer.Score(scoring.ScoreInput{
		AnswerText:   answer,
		SampleAnswer: sample,
		QuestionText: scoreQuestion,
	})

	log.Debug("scored answer",
		zap.Float64("score", result.Score),
		zap.Float64("relevance", result.Relevance),
		zap.Float64("completeness", result.Completeness),
		zap.Float64("accuracy", result.Accuracy),
		zap.Float64("clarity", result.Clarity),
	)

	return output.Output(outputFmt, &result)
}

// textOrFile returns the inline text, or the file contents when a file
// is given instead.
func textOrFile(text, path string) (string, error) {
	if path == "" {
		return text, nil
	}
	if text != "" {
		return "", fmt.Errorf("inline text and file are mutually exclusive")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
