// Package profile computes read-only diagnostics over a raw sales table:
// shape, column types, distinct values, missing-value detection and numeric
// summary statistics. Nothing downstream depends on it; it exists so the
// report can describe the dataset before cleaning touches it.
package profile

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shelfstats/shelfstats-cli/internal/dataset"
)

// Type classifies a column.
type Type int

const (
	Text Type = iota
	Numeric
)

func (t Type) String() string {
	if t == Numeric {
		return "numeric"
	}
	return "text"
}

// Shape returns (rows, columns) of the table.
func Shape(t *dataset.Table) (int, int) {
	return t.Len(), len(dataset.Columns)
}

// ColumnType reports the static type of a column. The schema is fixed, so
// this never depends on the data.
func ColumnType(col dataset.Column) Type {
	if col == dataset.ColPrice {
		return Numeric
	}
	return Text
}

// cell returns the string form of a column value and whether it is present.
func cell(s dataset.Sale, col dataset.Column) (string, bool) {
	switch col {
	case dataset.ColBook:
		return s.Book, true
	case dataset.ColReview:
		return s.Review.Value, s.Review.Valid
	case dataset.ColState:
		return s.State, true
	case dataset.ColPrice:
		return strconv.FormatFloat(s.Price, 'f', -1, 64), true
	}
	return "", false
}

// UniqueValues returns the distinct non-missing values of a column in
// first-seen row order.
func UniqueValues(t *dataset.Table, col dataset.Column) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, s := range t.Sales {
		v, ok := cell(s, col)
		if !ok {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// HasMissing reports whether at least one row has a missing value in the
// column. Only the review column can be missing under this schema.
func HasMissing(t *dataset.Table, col dataset.Column) bool {
	return MissingCount(t, col) > 0
}

// MissingCount returns the number of rows with a missing value in the column.
func MissingCount(t *dataset.Table, col dataset.Column) int {
	if col != dataset.ColReview {
		return 0
	}
	n := 0
	for _, s := range t.Sales {
		if !s.Review.Valid {
			n++
		}
	}
	return n
}

// Stats holds descriptive statistics for a numeric column.
type Stats struct {
	Count int
	Min   float64
	Max   float64
	Mean  float64
	Std   float64
}

// SummaryStats computes {count, min, max, mean, std} for a numeric column.
// It returns an error for text columns.
func SummaryStats(t *dataset.Table, col dataset.Column) (Stats, error) {
	if ColumnType(col) != Numeric {
		return Stats{}, fmt.Errorf("column %q is not numeric", col)
	}
	st := Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	// Welford update for mean/std.
	var mean, m2 float64
	for _, s := range t.Sales {
		x := s.Price
		st.Count++
		if x < st.Min {
			st.Min = x
		}
		if x > st.Max {
			st.Max = x
		}
		delta := x - mean
		mean += delta / float64(st.Count)
		m2 += delta * (x - mean)
	}
	if st.Count == 0 {
		return Stats{}, nil
	}
	st.Mean = mean
	if st.Count > 1 {
		st.Std = math.Sqrt(m2 / float64(st.Count-1))
	}
	return st, nil
}
