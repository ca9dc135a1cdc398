package dataset

import "fmt"

// LoadError indicates the input file could not be opened or its header could
// not be parsed. It aborts the whole load; there is no partial recovery.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// MalformedRowError indicates a data row that does not fit the schema: wrong
// field count or an unparseable price. Row is 1-based over data rows (the
// header is row 0).
type MalformedRowError struct {
	Path   string
	Row    int
	Reason string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("%s: row %d: %s", e.Path, e.Row, e.Reason)
}
