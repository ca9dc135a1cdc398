// Package aggregate groups records by a key and computes count and sum
// aggregates. Results come back in first-seen key order; the sort helpers
// order them descending by metric with a stable tie-break, so keys with equal
// metrics keep their first-seen order.
package aggregate

import (
	"sort"

	"github.com/shelfstats/shelfstats-cli/internal/dataset"
)

// KeyFunc extracts the group key from a record.
type KeyFunc func(dataset.Record) string

// ValueFunc extracts the value to sum from a record.
type ValueFunc func(dataset.Record) float64

// ByBook groups on the book title.
func ByBook(r dataset.Record) string { return r.Book }

// ByState groups on the normalized state name.
func ByState(r dataset.Record) string { return r.States }

// Price sums the sale price.
func Price(r dataset.Record) float64 { return r.Price }

// KeyCount is one group of a frequency table.
type KeyCount struct {
	Key   string
	Count int
}

// KeySum is one group of a sum table.
type KeySum struct {
	Key string
	Sum float64
}

// CountBy returns the number of records per key, in first-seen key order.
// Zero-row groups never appear; an empty frame yields an empty result.
func CountBy(f *dataset.Frame, key KeyFunc) []KeyCount {
	idx := make(map[string]int)
	var out []KeyCount
	for _, r := range f.Records {
		k := key(r)
		i, ok := idx[k]
		if !ok {
			i = len(out)
			idx[k] = i
			out = append(out, KeyCount{Key: k})
		}
		out[i].Count++
	}
	return out
}

// SumBy returns the sum of value per key, in first-seen key order.
func SumBy(f *dataset.Frame, key KeyFunc, value ValueFunc) []KeySum {
	idx := make(map[string]int)
	var out []KeySum
	for _, r := range f.Records {
		k := key(r)
		i, ok := idx[k]
		if !ok {
			i = len(out)
			idx[k] = i
			out = append(out, KeySum{Key: k})
		}
		out[i].Sum += value(r)
	}
	return out
}

// SortCountsDesc orders a frequency table descending by count without
// disturbing the relative order of equal counts. The input is left untouched.
func SortCountsDesc(counts []KeyCount) []KeyCount {
	out := make([]KeyCount, len(counts))
	copy(out, counts)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// SortSumsDesc orders a sum table descending by sum, ties kept in first-seen
// order.
func SortSumsDesc(sums []KeySum) []KeySum {
	out := make([]KeySum, len(sums))
	copy(out, sums)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Sum > out[j].Sum })
	return out
}
