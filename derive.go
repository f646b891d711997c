package hhts

import "strconv"

// sequentialKey adds a surrogate key column numbered by output row
// order starting at start. Deterministic for identical inputs because
// row order is fixed before this runs.
func sequentialKey(f *Frame, col string, start int) {
	f.AddColumn(col, "")
	for i := 0; i < f.Len(); i++ {
		f.Set(i, col, strconv.Itoa(start+i))
	}
}

// groupKey adds a surrogate key shared by all rows with the same value
// tuple over the by columns. Groups are numbered from 1 in the order
// they are first seen.
func groupKey(f *Frame, col string, by ...string) {
	f.AddColumn(col, "")
	groups := make(map[string]int)
	for i := 0; i < f.Len(); i++ {
		key := ""
		for _, b := range by {
			key += f.Get(i, b) + "\x1f"
		}
		id, ok := groups[key]
		if !ok {
			id = len(groups) + 1
			groups[key] = id
		}
		f.Set(i, col, strconv.Itoa(id))
	}
}

// coalesceSentinel combines two candidate columns into dst: the
// primary value wins unless it is Missing or Not Applicable, in which
// case the secondary value is taken.
func coalesceSentinel(f *Frame, dst, primary, secondary string) {
	if !f.HasColumn(dst) {
		f.AddColumn(dst, "")
	}
	for i := 0; i < f.Len(); i++ {
		v := f.Get(i, primary)
		if v == missing || v == notApplicable {
			v = f.Get(i, secondary)
		}
		f.Set(i, dst, v)
	}
}

// parseIntString reads a raw cell value as an integer; the second
// return is false for null or non-numeric values. Codes arrive both as
// "3" and "3.0" depending on the extract.
func parseIntString(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n, true
	}
	if x, err := strconv.ParseFloat(raw, 64); err == nil && x == float64(int(x)) {
		return int(x), true
	}
	return 0, false
}

func parseIntCell(f *Frame, row int, col string) (int, bool) {
	return parseIntString(f.Get(row, col))
}

// formatWeight renders a trip weight the way the source emitted it.
func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}
