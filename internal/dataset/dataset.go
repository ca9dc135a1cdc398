package dataset

// Column identifies a source column of the sales schema. Profiler and Cleaner
// operations address columns through this type instead of raw name strings.
type Column int

const (
	ColBook Column = iota
	ColReview
	ColState
	ColPrice
)

// String returns the header name of the column.
func (c Column) String() string {
	switch c {
	case ColBook:
		return "book"
	case ColReview:
		return "review"
	case ColState:
		return "state"
	case ColPrice:
		return "price"
	}
	return "unknown"
}

// Columns lists the source columns in header order.
var Columns = []Column{ColBook, ColReview, ColState, ColPrice}

// OptString is a text cell that may be missing. A missing cell is distinct
// from an empty string.
type OptString struct {
	Value string
	Valid bool
}

// Str returns a present OptString.
func Str(v string) OptString { return OptString{Value: v, Valid: true} }

// OptInt is an integer cell that may be missing.
type OptInt struct {
	Value int
	Valid bool
}

// Sale is one raw row as loaded from the input file.
type Sale struct {
	Book   string
	Review OptString
	State  string
	Price  float64
}

// Table is the raw stage of the pipeline: an ordered set of sales plus the
// source name for reporting. Stages never mutate a Table; they return a new
// one.
type Table struct {
	Name  string
	Sales []Sale
}

// Len returns the row count.
func (t *Table) Len() int { return len(t.Sales) }

// Record is a cleaned and enriched row. States replaces the raw State column
// with the normalized full state name; ReviewNum and HighReview are filled in
// by the derivation stage.
type Record struct {
	Book       string
	Review     OptString
	States     string
	Price      float64
	ReviewNum  OptInt
	HighReview bool
}

// Frame is the cleaned stage of the pipeline: an ordered set of records.
type Frame struct {
	Name    string
	Records []Record
}

// Len returns the row count.
func (f *Frame) Len() int { return len(f.Records) }
