// Package clean removes rows with missing values and normalizes categorical
// labels. Both operations return a new table; inputs are never mutated.
package clean

import "github.com/shelfstats/shelfstats-cli/internal/dataset"

// DropMissing returns a table containing exactly the rows where the column is
// present, preserving order, plus the number of rows removed. Only the review
// column can be missing, so dropping on any other column removes nothing.
// Idempotent: a second pass over an already-clean column removes zero rows.
func DropMissing(t *dataset.Table, col dataset.Column) (*dataset.Table, int) {
	out := &dataset.Table{Name: t.Name}
	if col != dataset.ColReview {
		out.Sales = append(out.Sales, t.Sales...)
		return out, 0
	}
	removed := 0
	for _, s := range t.Sales {
		if !s.Review.Valid {
			removed++
			continue
		}
		out.Sales = append(out.Sales, s)
	}
	return out, removed
}

// NormalizeStates converts the raw table into a cleaned frame: the state
// column is replaced by States, holding mapping[state] when the code is known
// and the original value verbatim when it is not. Unknown codes are counted
// and surfaced to the caller as a diagnostic, never an error.
func NormalizeStates(t *dataset.Table, mapping map[string]string) (*dataset.Frame, int) {
	f := &dataset.Frame{Name: t.Name, Records: make([]dataset.Record, 0, t.Len())}
	unmapped := 0
	for _, s := range t.Sales {
		name, ok := mapping[s.State]
		if !ok {
			name = s.State
			unmapped++
		}
		f.Records = append(f.Records, dataset.Record{
			Book:   s.Book,
			Review: s.Review,
			States: name,
			Price:  s.Price,
		})
	}
	return f, unmapped
}
