// Package dataset reads tabular county statistics and partitions them into
// per-state matrices ready for decomposition. Label columns travel next to
// the numbers but are never part of the matrices themselves.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrEmptyTable is returned when the CSV has no data rows.
	ErrEmptyTable = errors.New("dataset: no data rows")

	// ErrMissingColumn is returned when a required label column or any
	// numeric column is absent from the header.
	ErrMissingColumn = errors.New("dataset: missing column")

	// ErrBadValue is returned when a numeric cell cannot be parsed.
	ErrBadValue = errors.New("dataset: cannot parse value")

	// ErrUnknownColumn is returned when a selected column does not exist.
	ErrUnknownColumn = errors.New("dataset: unknown column")
)

// Row is one county observation: its labels plus the numeric variables in
// the order of Table.Columns.
type Row struct {
	State  string
	County string
	Values []float64
}

// Table holds the parsed dataset.
type Table struct {
	Columns []string // numeric variable names, header order
	Rows    []Row
}

// Group is one state's slice of the dataset as a counties x variables
// matrix, with the county names carried alongside for labeling.
type Group struct {
	Key      string // state identifier
	Counties []string
	Matrix   *mat.Dense
}

// ReadTable parses CSV county data. The header must contain "state" and
// "county" label columns (any case); every remaining column is numeric.
func ReadTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyTable
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: read header: %w", err)
	}

	stateIdx, countyIdx := -1, -1
	var columns []string
	var valueIdx []int
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "state":
			stateIdx = i
		case "county":
			countyIdx = i
		default:
			columns = append(columns, strings.TrimSpace(name))
			valueIdx = append(valueIdx, i)
		}
	}
	if stateIdx < 0 {
		return nil, fmt.Errorf("%w: state", ErrMissingColumn)
	}
	if countyIdx < 0 {
		return nil, fmt.Errorf("%w: county", ErrMissingColumn)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: no numeric columns", ErrMissingColumn)
	}

	t := &Table{Columns: columns}
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: read row: %w", err)
		}
		line++

		row := Row{
			State:  strings.TrimSpace(record[stateIdx]),
			County: strings.TrimSpace(record[countyIdx]),
			Values: make([]float64, len(valueIdx)),
		}
		for j, idx := range valueIdx {
			v, err := strconv.ParseFloat(strings.TrimSpace(record[idx]), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d, column %q", ErrBadValue, line, columns[j])
			}
			row.Values[j] = v
		}
		t.Rows = append(t.Rows, row)
	}

	if len(t.Rows) == 0 {
		return nil, ErrEmptyTable
	}
	return t, nil
}

// Select returns a new table restricted to the named numeric columns, in
// the requested order.
func (t *Table) Select(columns ...string) (*Table, error) {
	idx := make([]int, len(columns))
	for i, name := range columns {
		found := -1
		for j, have := range t.Columns {
			if have == name {
				found = j
				break
			}
		}
		if found < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
		}
		idx[i] = found
	}

	out := &Table{
		Columns: append([]string(nil), columns...),
		Rows:    make([]Row, len(t.Rows)),
	}
	for i, row := range t.Rows {
		values := make([]float64, len(idx))
		for j, k := range idx {
			values[j] = row.Values[k]
		}
		out.Rows[i] = Row{State: row.State, County: row.County, Values: values}
	}
	return out, nil
}

// Matrix returns the whole table as one observations x variables matrix.
func (t *Table) Matrix() *mat.Dense {
	m := mat.NewDense(len(t.Rows), len(t.Columns), nil)
	for i, row := range t.Rows {
		m.SetRow(i, row.Values)
	}
	return m
}

// GroupByState partitions the table into one matrix per state. Groups come
// back sorted by state key so runs are reproducible; row order within a
// group follows the input.
func (t *Table) GroupByState() []Group {
	byState := make(map[string][]Row)
	for _, row := range t.Rows {
		byState[row.State] = append(byState[row.State], row)
	}

	keys := make([]string, 0, len(byState))
	for k := range byState {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	groups := make([]Group, 0, len(keys))
	for _, key := range keys {
		rows := byState[key]
		g := Group{
			Key:      key,
			Counties: make([]string, len(rows)),
			Matrix:   mat.NewDense(len(rows), len(t.Columns), nil),
		}
		for i, row := range rows {
			g.Counties[i] = row.County
			g.Matrix.SetRow(i, row.Values)
		}
		groups = append(groups, g)
	}
	return groups
}
