package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Loader reads a sales file from disk into a Table.
type Loader interface {
	CanLoad(filename string) bool
	Load(path string) (*Table, error)
}

var registry []Loader

// Register adds a loader implementation to the registry.
func Register(l Loader) {
	registry = append(registry, l)
}

// Load selects a loader based on the file extension and reads the table.
func Load(path string) (*Table, error) {
	for _, l := range registry {
		if l.CanLoad(path) {
			return l.Load(path)
		}
	}
	return nil, &LoadError{Path: path, Err: fmt.Errorf("unsupported file format %q", filepath.Ext(path))}
}

func init() {
	Register(csvLoader{})
	Register(xlsxLoader{})
}

type csvLoader struct{}

func (csvLoader) CanLoad(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".csv") || strings.HasSuffix(name, ".tsv")
}

func (csvLoader) Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		r.Comma = '\t'
	}

	header, err := r.Read()
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("read header: %w", err)}
	}
	if err := checkHeader(header); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	t := &Table{Name: filepath.Base(path)}
	for row := 1; ; row++ {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &LoadError{Path: path, Err: fmt.Errorf("read row %d: %w", row, err)}
		}
		sale, err := parseRecord(path, row, rec)
		if err != nil {
			return nil, err
		}
		t.Sales = append(t.Sales, sale)
	}
	return t, nil
}

// checkHeader enforces the fixed sales schema. Header names are matched
// case-insensitively; order matters.
func checkHeader(header []string) error {
	if len(header) != len(Columns) {
		return fmt.Errorf("expected %d columns, got %d", len(Columns), len(header))
	}
	for i, c := range Columns {
		got := strings.TrimSpace(header[i])
		if !strings.EqualFold(got, c.String()) {
			return fmt.Errorf("column %d: expected %q, got %q", i, c.String(), got)
		}
	}
	return nil
}

// parseRecord converts one data row into a Sale. An empty review field is a
// missing cell, not an empty string.
func parseRecord(path string, row int, rec []string) (Sale, error) {
	if len(rec) != len(Columns) {
		return Sale{}, &MalformedRowError{
			Path:   path,
			Row:    row,
			Reason: fmt.Sprintf("expected %d fields, got %d", len(Columns), len(rec)),
		}
	}
	s := Sale{
		Book:  strings.TrimSpace(rec[0]),
		State: strings.TrimSpace(rec[2]),
	}
	if rv := strings.TrimSpace(rec[1]); rv != "" {
		s.Review = Str(rv)
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(rec[3]), 64)
	if err != nil {
		return Sale{}, &MalformedRowError{
			Path:   path,
			Row:    row,
			Reason: fmt.Sprintf("bad price %q", rec[3]),
		}
	}
	s.Price = price
	return s, nil
}
