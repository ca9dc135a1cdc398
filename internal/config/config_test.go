package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 4, c.HighReviewThreshold)
	assert.Equal(t, 5, c.SampleRows)
	assert.Equal(t, "Texas", c.StateNameMap()["TX"])
	assert.Equal(t, 5, c.ReviewScoreMap()["Excellent"])
	assert.NotEmpty(t, c.ReportsDir)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `state_names:
  - code: TX
    name: Texas
  - code: OH
    name: Ohio
review_scores:
  - label: Meh
    score: 2
high_review_threshold: 3
sample_rows: 2
reports_dir: ` + dir + `
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, c.HighReviewThreshold)
	assert.Equal(t, 2, c.SampleRows)
	assert.Equal(t, map[string]string{"TX": "Texas", "OH": "Ohio"}, c.StateNameMap())
	assert.Equal(t, map[string]int{"Meh": 2}, c.ReviewScoreMap())
	assert.Equal(t, dir, c.ReportsDir)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := &Global{
		StateNames:          DefaultStateNames,
		ReviewScores:        DefaultReviewScores,
		HighReviewThreshold: 4,
		SampleRows:          5,
		ReportsDir:          "/tmp/reports",
	}
	require.NoError(t, Save(in, path))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in.StateNameMap(), out.StateNameMap())
	assert.Equal(t, in.ReviewScoreMap(), out.ReviewScoreMap())
	assert.Equal(t, in.HighReviewThreshold, out.HighReviewThreshold)
}
