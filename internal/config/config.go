package config

import (
	"errors"

	"github.com/sanjay-kth/hirescore/internal/recommend"
	"github.com/sanjay-kth/hirescore/internal/scoring"
)

// Config represents the application configuration
type Config struct {
	Database       DatabaseConfig       `toml:"database"`
	Scoring        ScoringConfig        `toml:"scoring"`
	Recommendation RecommendationConfig `toml:"recommendation"`
	Logging        LoggingConfig        `toml:"logging"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// ScoringConfig contains the sub-score weights for the answer scorer
type ScoringConfig struct {
	WeightRelevance    float64 `toml:"weight_relevance"`
	WeightCompleteness float64 `toml:"weight_completeness"`
	WeightAccuracy     float64 `toml:"weight_accuracy"`
	WeightClarity      float64 `toml:"weight_clarity"`
}

// Weights converts the config section into scorer weights
func (s ScoringConfig) Weights() scoring.Weights {
	return scoring.Weights{
		Relevance:    s.WeightRelevance,
		Completeness: s.WeightCompleteness,
		Accuracy:     s.WeightAccuracy,
		Clarity:      s.WeightClarity,
	}
}

// RecommendationConfig contains the session verdict cutoffs
type RecommendationConfig struct {
	SelectThreshold    float64 `toml:"select_threshold"`
	NextRoundThreshold float64 `toml:"next_round_threshold"`
}

// Thresholds converts the config section into engine thresholds
func (r RecommendationConfig) Thresholds() recommend.Thresholds {
	return recommend.Thresholds{
		Select:    r.SelectThreshold,
		NextRound: r.NextRoundThreshold,
	}
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Debug bool `toml:"debug"`
	JSON  bool `toml:"json"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	weights := scoring.DefaultWeights()
	thresholds := recommend.DefaultThresholds()

	return &Config{
		Database: DatabaseConfig{
			Path: "~/.local/share/hirescore/hirescore.db",
		},
		Scoring: ScoringConfig{
			WeightRelevance:    weights.Relevance,
			WeightCompleteness: weights.Completeness,
			WeightAccuracy:     weights.Accuracy,
			WeightClarity:      weights.Clarity,
		},
		Recommendation: RecommendationConfig{
			SelectThreshold:    thresholds.Select,
			NextRoundThreshold: thresholds.NextRound,
		},
		Logging: LoggingConfig{
			Debug: false,
			JSON:  false,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.Database.Path == "" {
		errs = append(errs, errors.New("database.path is required"))
	}

	if err := c.Scoring.Weights().Validate(); err != nil {
		errs = append(errs, err)
	}

	if err := c.Recommendation.Thresholds().Validate(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
