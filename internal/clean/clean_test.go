package clean

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfstats/shelfstats-cli/internal/dataset"
)

func rawTable() *dataset.Table {
	return &dataset.Table{
		Name: "raw.csv",
		Sales: []dataset.Sale{
			{Book: "Dune", Review: dataset.Str("Great"), State: "TX", Price: 10},
			{Book: "Emma", Review: dataset.OptString{}, State: "NY", Price: 20},
			{Book: "Holes", Review: dataset.Str("Poor"), State: "Ohio", Price: 30},
			{Book: "Emma", Review: dataset.OptString{}, State: "CA", Price: 40},
		},
	}
}

func TestDropMissing(t *testing.T) {
	tbl := rawTable()
	cleaned, removed := DropMissing(tbl, dataset.ColReview)

	assert.Equal(t, 2, removed)
	require.Equal(t, 2, cleaned.Len())
	// Relative order preserved.
	assert.Equal(t, "Dune", cleaned.Sales[0].Book)
	assert.Equal(t, "Holes", cleaned.Sales[1].Book)
	// Every surviving review is present.
	for _, s := range cleaned.Sales {
		assert.True(t, s.Review.Valid)
	}
	// Input untouched.
	assert.Equal(t, 4, tbl.Len())
}

func TestDropMissing_Idempotent(t *testing.T) {
	cleaned, _ := DropMissing(rawTable(), dataset.ColReview)
	again, removed := DropMissing(cleaned, dataset.ColReview)
	assert.Zero(t, removed)
	assert.Equal(t, cleaned.Len(), again.Len())
}

func TestDropMissing_NeverMissingColumn(t *testing.T) {
	tbl := rawTable()
	out, removed := DropMissing(tbl, dataset.ColBook)
	assert.Zero(t, removed)
	assert.Equal(t, tbl.Len(), out.Len())
}

func TestNormalizeStates(t *testing.T) {
	mapping := map[string]string{"TX": "Texas", "NY": "New York", "CA": "California"}
	frame, unmapped := NormalizeStates(rawTable(), mapping)

	require.Equal(t, 4, frame.Len())
	assert.Equal(t, "Texas", frame.Records[0].States)
	assert.Equal(t, "New York", frame.Records[1].States)
	// Unknown value passes through verbatim; it is counted, not repaired.
	assert.Equal(t, "Ohio", frame.Records[2].States)
	assert.Equal(t, 1, unmapped)

	// Total function: one output row per input row, other columns intact.
	assert.Equal(t, "Dune", frame.Records[0].Book)
	assert.Equal(t, dataset.Str("Great"), frame.Records[0].Review)
	assert.Equal(t, 10.0, frame.Records[0].Price)
}

func TestNormalizeStates_EmptyMapping(t *testing.T) {
	frame, unmapped := NormalizeStates(rawTable(), nil)
	assert.Equal(t, 4, unmapped)
	assert.Equal(t, "TX", frame.Records[0].States)
}
