package hhts

import "fmt"

// reconcile merges two heterogeneous extracts of the same logical
// table. Columns a given source does not carry are back-filled with
// the declared constant for that source before concatenation; the
// fill maps are the explicit declaration of which columns each source
// lacks. Rows are concatenated a-then-b with no deduplication. A
// column still present in only one source after filling means the
// declaration is wrong, which is fatal.
func reconcile(a, b *Frame, fillA, fillB map[string]string) (*Frame, error) {
	for col, fill := range fillA {
		if a.HasColumn(col) {
			return nil, fmt.Errorf("reconcile: back-fill declared for %s but the first source carries it", col)
		}
		a.AddColumn(col, fill)
	}
	for col, fill := range fillB {
		if b.HasColumn(col) {
			return nil, fmt.Errorf("reconcile: back-fill declared for %s but the second source carries it", col)
		}
		b.AddColumn(col, fill)
	}

	for _, col := range a.Columns() {
		if !b.HasColumn(col) {
			return nil, fmt.Errorf("reconcile: column %s missing from the second source: %w", col, ErrUnknownColumn)
		}
	}
	for _, col := range b.Columns() {
		if !a.HasColumn(col) {
			return nil, fmt.Errorf("reconcile: column %s missing from the first source: %w", col, ErrUnknownColumn)
		}
	}

	out := NewFrame(a.Columns()...)
	for i := 0; i < a.Len(); i++ {
		row := make([]string, 0, len(out.cols))
		for _, col := range out.cols {
			row = append(row, a.Get(i, col))
		}
		out.AppendRow(row...)
	}
	for i := 0; i < b.Len(); i++ {
		row := make([]string, 0, len(out.cols))
		for _, col := range out.cols {
			row = append(row, b.Get(i, col))
		}
		out.AppendRow(row...)
	}
	return out, nil
}

// requireUnique fails when a key column holds the same non-null value
// twice. Downstream joins assume key uniqueness across the merged
// sources.
func requireUnique(f *Frame, col string, sentinel error) error {
	seen := make(map[string]bool, f.Len())
	for i := 0; i < f.Len(); i++ {
		v := f.Get(i, col)
		if v == "" {
			continue
		}
		if seen[v] {
			return fmt.Errorf("%s %q appears more than once: %w", col, v, sentinel)
		}
		seen[v] = true
	}
	return nil
}
