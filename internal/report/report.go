// Package report runs the full analysis pipeline over a loaded sales table
// and renders the result as a narrated markdown document. It is the outer,
// presentational layer: the core stages in clean, derive and aggregate know
// nothing about it.
package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shelfstats/shelfstats-cli/internal/aggregate"
	"github.com/shelfstats/shelfstats-cli/internal/clean"
	"github.com/shelfstats/shelfstats-cli/internal/dataset"
	"github.com/shelfstats/shelfstats-cli/internal/derive"
	"github.com/shelfstats/shelfstats-cli/internal/profile"
	"github.com/shelfstats/shelfstats-cli/internal/utils"
)

// Params carries the collaborator-supplied mapping tables and rendering knobs.
type Params struct {
	StateNames          map[string]string
	ReviewScores        map[string]int
	HighReviewThreshold int
	SampleRows          int
}

// ColumnProfile is the pre-cleaning diagnostic for one source column.
type ColumnProfile struct {
	Name    string         `json:"name"`
	Kind    string         `json:"kind"`
	Unique  int            `json:"unique"`
	Missing int            `json:"missing"`
	Stats   *profile.Stats `json:"stats,omitempty"`
}

// Report is the assembled analysis of one sales file.
type Report struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Source      string    `json:"source"`

	Rows    int             `json:"rows"`
	Columns int             `json:"columns"`
	Profile []ColumnProfile `json:"profile"`
	Samples [][]string      `json:"samples,omitempty"`

	RemovedMissingReview int `json:"removed_missing_review"`
	UnmappedStates       int `json:"unmapped_states"`

	HighReviewThreshold int `json:"high_review_threshold"`
	ScoredReviews       int `json:"scored_reviews"`
	UnscoredReviews     int `json:"unscored_reviews"`
	HighReviews         int `json:"high_reviews"`

	TopByPurchases []aggregate.KeyCount `json:"top_by_purchases"`
	TopByRevenue   []aggregate.KeySum   `json:"top_by_revenue"`
	RevenueByState []aggregate.KeySum   `json:"revenue_by_state"`

	Conclusion string `json:"conclusion"`
}

// Run executes the pipeline over a raw table and returns the assembled report
// together with the cleaned, derived frame.
func Run(t *dataset.Table, p Params) (*Report, *dataset.Frame) {
	r := &Report{
		ID:                  uuid.NewString(),
		GeneratedAt:         time.Now(),
		Source:              t.Name,
		HighReviewThreshold: p.HighReviewThreshold,
	}
	r.Rows, r.Columns = profile.Shape(t)

	for _, col := range dataset.Columns {
		cp := ColumnProfile{
			Name:    col.String(),
			Kind:    profile.ColumnType(col).String(),
			Unique:  len(profile.UniqueValues(t, col)),
			Missing: profile.MissingCount(t, col),
		}
		if profile.ColumnType(col) == profile.Numeric {
			if st, err := profile.SummaryStats(t, col); err == nil {
				cp.Stats = &st
			}
		}
		r.Profile = append(r.Profile, cp)
	}
	sampleRows := p.SampleRows
	if sampleRows <= 0 {
		sampleRows = 5
	}
	for i := 0; i < len(t.Sales) && i < sampleRows; i++ {
		s := t.Sales[i]
		review := ""
		if s.Review.Valid {
			review = s.Review.Value
		}
		r.Samples = append(r.Samples, []string{s.Book, review, s.State, fmt.Sprintf("%.2f", s.Price)})
	}

	cleaned, removed := clean.DropMissing(t, dataset.ColReview)
	r.RemovedMissingReview = removed
	frame, unmapped := clean.NormalizeStates(cleaned, p.StateNames)
	r.UnmappedStates = unmapped

	frame = derive.MapOrdinal(frame, p.ReviewScores)
	frame = derive.DeriveHighReview(frame, p.HighReviewThreshold)
	for _, rec := range frame.Records {
		if rec.ReviewNum.Valid {
			r.ScoredReviews++
		} else {
			r.UnscoredReviews++
		}
		if rec.HighReview {
			r.HighReviews++
		}
	}

	r.TopByPurchases = aggregate.SortCountsDesc(aggregate.CountBy(frame, aggregate.ByBook))
	r.TopByRevenue = aggregate.SortSumsDesc(aggregate.SumBy(frame, aggregate.ByBook, aggregate.Price))
	r.RevenueByState = aggregate.SortSumsDesc(aggregate.SumBy(frame, aggregate.ByState, aggregate.Price))
	r.Conclusion = conclude(r.TopByPurchases, r.TopByRevenue)

	return r, frame
}

// conclude writes the closing comparison between the purchase and revenue
// rankings.
func conclude(counts []aggregate.KeyCount, sums []aggregate.KeySum) string {
	if len(counts) == 0 || len(sums) == 0 {
		return "No surviving rows to compare."
	}
	byCount := counts[0]
	bySum := sums[0]
	if byCount.Key == bySum.Key {
		return fmt.Sprintf("%q leads both rankings: most purchased (%d copies) and highest revenue ($%.2f).",
			byCount.Key, byCount.Count, bySum.Sum)
	}
	return fmt.Sprintf("%q was purchased most often (%d copies), but %q brought in the most revenue ($%.2f); volume and revenue do not point at the same book.",
		byCount.Key, byCount.Count, bySum.Key, bySum.Sum)
}

// SaveJSON persists the report as an indented JSON sidecar under dir, named
// after the run ID, using an atomic write.
func (r *Report) SaveJSON(dir string) (string, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("ensure reports dir: %w", err)
	}
	data, err := utils.PrettyJSON(r)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, "report-"+r.ID+".json")
	if err := utils.SafeWriteFile(path, data); err != nil {
		return "", err
	}
	return path, nil
}

// Markdown renders the narrated report.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[SALES REPORT]\n")
	b.WriteString(fmt.Sprintf("File: %s\n", r.Source))
	b.WriteString(fmt.Sprintf("Run: %s\n", r.ID))
	b.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))

	b.WriteString("[DATASET]\n")
	b.WriteString(fmt.Sprintf("Rows: %d\nColumns: %d\n", r.Rows, r.Columns))
	for _, c := range r.Profile {
		b.WriteString(fmt.Sprintf("- %s: %s (unique %d, missing %d)", c.Name, c.Kind, c.Unique, c.Missing))
		if c.Stats != nil {
			b.WriteString(fmt.Sprintf(" — min %.4g, max %.4g, mean %.4g, std %.4g",
				c.Stats.Min, c.Stats.Max, c.Stats.Mean, c.Stats.Std))
		}
		b.WriteString("\n")
	}
	if len(r.Samples) > 0 {
		b.WriteString("\n[SAMPLE ROWS]\n")
		b.WriteString("| book | review | state | price |\n")
		b.WriteString("| --- | --- | --- | --- |\n")
		for _, row := range r.Samples {
			b.WriteString("| " + strings.Join(row, " | ") + " |\n")
		}
	}

	b.WriteString("\n[CLEANING]\n")
	b.WriteString(fmt.Sprintf("Rows dropped for missing review: %d (%d remain)\n",
		r.RemovedMissingReview, r.Rows-r.RemovedMissingReview))
	b.WriteString(fmt.Sprintf("State values left unmapped (passed through verbatim): %d\n", r.UnmappedStates))

	b.WriteString("\n[DERIVED COLUMNS]\n")
	b.WriteString(fmt.Sprintf("review_num scored: %d, unscored: %d\n", r.ScoredReviews, r.UnscoredReviews))
	b.WriteString(fmt.Sprintf("is_high_review (review_num >= %d): %d rows\n", r.HighReviewThreshold, r.HighReviews))

	b.WriteString("\n[TOP BOOKS BY PURCHASES]\n")
	for _, kc := range r.TopByPurchases {
		b.WriteString(fmt.Sprintf("- %s: %d\n", kc.Key, kc.Count))
	}
	b.WriteString("\n[TOP BOOKS BY REVENUE]\n")
	for _, ks := range r.TopByRevenue {
		b.WriteString(fmt.Sprintf("- %s: $%.2f\n", ks.Key, ks.Sum))
	}
	if len(r.RevenueByState) > 0 {
		b.WriteString("\n[REVENUE BY STATE]\n")
		for _, ks := range r.RevenueByState {
			b.WriteString(fmt.Sprintf("- %s: $%.2f\n", ks.Key, ks.Sum))
		}
	}

	b.WriteString("\n[CONCLUSION]\n")
	b.WriteString(r.Conclusion)
	b.WriteString("\n")
	return b.String()
}
