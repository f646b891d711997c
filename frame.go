package hhts

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownColumn      = errors.New("unknown column")
	ErrUnmappedCode       = errors.New("unmapped code")
	ErrDuplicateHousehold = errors.New("duplicate household id")
)

// Frame is an in-memory row set with a fixed column order. Cells are
// strings; the empty string is null, matching the convention that an
// empty delimited field binds NULL downstream.
type Frame struct {
	cols  []string
	index map[string]int
	rows  [][]string
}

func NewFrame(cols ...string) *Frame {
	f := &Frame{cols: append([]string(nil), cols...), index: make(map[string]int, len(cols))}
	for i, c := range cols {
		if _, ok := f.index[c]; ok {
			panic("duplicate column " + c)
		}
		f.index[c] = i
	}
	return f
}

func (f *Frame) Columns() []string { return f.cols }

func (f *Frame) Len() int { return len(f.rows) }

func (f *Frame) HasColumn(name string) bool {
	_, ok := f.index[name]
	return ok
}

func (f *Frame) AppendRow(row ...string) {
	if len(row) != len(f.cols) {
		panic(fmt.Sprintf("row has %d cells, frame has %d columns", len(row), len(f.cols)))
	}
	f.rows = append(f.rows, append([]string(nil), row...))
}

func (f *Frame) Get(row int, col string) string {
	i, ok := f.index[col]
	if !ok {
		panic("unknown column " + col)
	}
	return f.rows[row][i]
}

func (f *Frame) Set(row int, col string, value string) {
	i, ok := f.index[col]
	if !ok {
		panic("unknown column " + col)
	}
	f.rows[row][i] = value
}

// AddColumn appends a column filled with the given value for every
// existing row.
func (f *Frame) AddColumn(name string, fill string) {
	if f.HasColumn(name) {
		panic("column already exists: " + name)
	}
	f.index[name] = len(f.cols)
	f.cols = append(f.cols, name)
	for i := range f.rows {
		f.rows[i] = append(f.rows[i], fill)
	}
}

func (f *Frame) Rename(from, to string) error {
	i, ok := f.index[from]
	if !ok {
		return fmt.Errorf("rename %s: %w", from, ErrUnknownColumn)
	}
	if f.HasColumn(to) {
		return fmt.Errorf("rename %s to %s: target exists", from, to)
	}
	delete(f.index, from)
	f.index[to] = i
	f.cols[i] = to
	return nil
}

// Select returns a new frame restricted to the given columns, in the
// given order. A requested column absent from the frame is an error:
// the final column list is the contract surface and must be complete.
func (f *Frame) Select(cols ...string) (*Frame, error) {
	indices := make([]int, len(cols))
	for i, c := range cols {
		idx, ok := f.index[c]
		if !ok {
			return nil, fmt.Errorf("select %s: %w", c, ErrUnknownColumn)
		}
		indices[i] = idx
	}
	out := NewFrame(cols...)
	out.rows = make([][]string, 0, len(f.rows))
	for _, row := range f.rows {
		outRow := make([]string, len(cols))
		for i, idx := range indices {
			outRow[i] = row[idx]
		}
		out.rows = append(out.rows, outRow)
	}
	return out, nil
}

// Sort is a stable sort over whole rows.
func (f *Frame) Sort(less func(a, b []string) bool) {
	sort.SliceStable(f.rows, func(i, j int) bool { return less(f.rows[i], f.rows[j]) })
}

// Filter keeps rows for which keep returns true, preserving order.
func (f *Frame) Filter(keep func(row int) bool) {
	out := f.rows[:0]
	for i := range f.rows {
		if keep(i) {
			out = append(out, f.rows[i])
		}
	}
	f.rows = out
}

// batch is a frame being recoded, together with the declared category
// order of each coded column. Rules register their sentinel label in
// the category set before assigning it.
type batch struct {
	f    *Frame
	cats map[string][]string
}

func newBatch(f *Frame) *batch {
	return &batch{f: f, cats: make(map[string][]string)}
}

func (b *batch) register(col, label string) {
	for _, l := range b.cats[col] {
		if l == label {
			return
		}
	}
	b.cats[col] = append(b.cats[col], label)
}
