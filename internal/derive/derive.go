// Package derive adds the numeric review score and the high-review flag to a
// cleaned frame. Both operations return a new frame; inputs are never mutated.
package derive

import "github.com/shelfstats/shelfstats-cli/internal/dataset"

// MapOrdinal fills ReviewNum by looking up each record's review label in the
// ordinal mapping (e.g. Poor=1 .. Excellent=5). A missing or unmapped label
// leaves ReviewNum invalid; that is data, not an error, and must not stop the
// pipeline.
func MapOrdinal(f *dataset.Frame, mapping map[string]int) *dataset.Frame {
	out := &dataset.Frame{Name: f.Name, Records: make([]dataset.Record, 0, f.Len())}
	for _, r := range f.Records {
		if r.Review.Valid {
			if n, ok := mapping[r.Review.Value]; ok {
				r.ReviewNum = dataset.OptInt{Value: n, Valid: true}
			} else {
				r.ReviewNum = dataset.OptInt{}
			}
		} else {
			r.ReviewNum = dataset.OptInt{}
		}
		out.Records = append(out.Records, r)
	}
	return out
}

// DeriveHighReview sets HighReview = ReviewNum >= threshold for each record.
// Policy for a null ReviewNum: the flag is false. A rating we could not score
// is not evidence of a high review.
func DeriveHighReview(f *dataset.Frame, threshold int) *dataset.Frame {
	out := &dataset.Frame{Name: f.Name, Records: make([]dataset.Record, 0, f.Len())}
	for _, r := range f.Records {
		r.HighReview = r.ReviewNum.Valid && r.ReviewNum.Value >= threshold
		out.Records = append(out.Records, r)
	}
	return out
}
