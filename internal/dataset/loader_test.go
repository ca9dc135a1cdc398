package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeCSV(t, "sales.csv",
		"book,review,state,price\n"+
			"It Ends With Us,Excellent,TX,19.99\n"+
			"Fairy Tale,,NY,24.50\n"+
			"Fairy Tale,Good,Ohio,24.50\n")

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sales.csv", table.Name)
	require.Equal(t, 3, table.Len())

	first := table.Sales[0]
	assert.Equal(t, "It Ends With Us", first.Book)
	assert.Equal(t, Str("Excellent"), first.Review)
	assert.Equal(t, "TX", first.State)
	assert.Equal(t, 19.99, first.Price)

	// Empty review field is a missing cell, not an empty string.
	assert.False(t, table.Sales[1].Review.Valid)
	assert.Equal(t, "Ohio", table.Sales[2].State)
}

func TestLoadCSV_HeaderCaseInsensitive(t *testing.T) {
	path := writeCSV(t, "sales.csv", "Book,Review,State,Price\nDune,Fair,CA,9.99\n")
	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	var le *LoadError
	require.ErrorAs(t, err, &le)
}

func TestLoad_BadHeader(t *testing.T) {
	path := writeCSV(t, "sales.csv", "title,review,state,price\nDune,Good,CA,9.99\n")
	_, err := Load(path)
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Contains(t, le.Error(), "book")
}

func TestLoad_FieldCountMismatch(t *testing.T) {
	path := writeCSV(t, "sales.csv",
		"book,review,state,price\n"+
			"Dune,Good,CA,9.99\n"+
			"Dune,Good,CA\n")
	_, err := Load(path)
	var mre *MalformedRowError
	require.ErrorAs(t, err, &mre)
	assert.Equal(t, 2, mre.Row)
}

func TestLoad_BadPrice(t *testing.T) {
	path := writeCSV(t, "sales.csv", "book,review,state,price\nDune,Good,CA,free\n")
	_, err := Load(path)
	var mre *MalformedRowError
	require.ErrorAs(t, err, &mre)
	assert.Equal(t, 1, mre.Row)
	assert.Contains(t, mre.Reason, "price")
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.parquet")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	_, err := Load(path)
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Contains(t, err.Error(), ".parquet")
}

func TestLoadTSV(t *testing.T) {
	path := writeCSV(t, "sales.tsv", "book\treview\tstate\tprice\nDune\tGreat\tWA\t12.00\n")
	table, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "Dune", table.Sales[0].Book)
}
