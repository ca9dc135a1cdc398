package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// StateName maps a postal abbreviation to a full state name.
type StateName struct {
	Code string `mapstructure:"code" yaml:"code"`
	Name string `mapstructure:"name" yaml:"name"`
}

// ReviewScore maps a review label to its ordinal score.
type ReviewScore struct {
	Label string `mapstructure:"label" yaml:"label"`
	Score int    `mapstructure:"score" yaml:"score"`
}

// Global configuration structure. The mapping tables are collaborator-supplied
// configuration: the pipeline stages take them as parameters and never read
// this package themselves.
type Global struct {
	StateNames          []StateName   `mapstructure:"state_names" yaml:"state_names"`
	ReviewScores        []ReviewScore `mapstructure:"review_scores" yaml:"review_scores"`
	HighReviewThreshold int           `mapstructure:"high_review_threshold" yaml:"high_review_threshold"`
	SampleRows          int           `mapstructure:"sample_rows" yaml:"sample_rows"`
	ReportsDir          string        `mapstructure:"reports_dir" yaml:"reports_dir"`
}

// DefaultStateNames covers the abbreviations observed in the sales exports.
// Unknown codes pass through the cleaner verbatim, so an incomplete table
// degrades to a diagnostic count rather than an error.
var DefaultStateNames = []StateName{
	{Code: "TX", Name: "Texas"},
	{Code: "NY", Name: "New York"},
	{Code: "FL", Name: "Florida"},
	{Code: "CA", Name: "California"},
	{Code: "WA", Name: "Washington"},
	{Code: "IL", Name: "Illinois"},
	{Code: "GA", Name: "Georgia"},
	{Code: "PA", Name: "Pennsylvania"},
}

// DefaultReviewScores is the ordinal rating scale.
var DefaultReviewScores = []ReviewScore{
	{Label: "Poor", Score: 1},
	{Label: "Fair", Score: 2},
	{Label: "Good", Score: 3},
	{Label: "Great", Score: 4},
	{Label: "Excellent", Score: 5},
}

// StateNameMap returns the state mapping as a lookup table for the cleaner.
func (c *Global) StateNameMap() map[string]string {
	m := make(map[string]string, len(c.StateNames))
	for _, s := range c.StateNames {
		m[s.Code] = s.Name
	}
	return m
}

// ReviewScoreMap returns the ordinal mapping as a lookup table for the deriver.
func (c *Global) ReviewScoreMap() map[string]int {
	m := make(map[string]int, len(c.ReviewScores))
	for _, r := range c.ReviewScores {
		m[r.Label] = r.Score
	}
	return m
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.shelfstats/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".shelfstats")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("SHELFSTATS")
	v.AutomaticEnv()

	v.SetDefault("high_review_threshold", 4)
	v.SetDefault("sample_rows", 5)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".shelfstats")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if len(c.StateNames) == 0 {
		c.StateNames = DefaultStateNames
	}
	if len(c.ReviewScores) == 0 {
		c.ReviewScores = DefaultReviewScores
	}
	if c.ReportsDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		c.ReportsDir = filepath.Join(home, ".shelfstats", "reports")
	}
	return &c, nil
}
