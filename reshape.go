package hhts

import "strconv"

// wideToLong reshapes numbered repeating column groups into one row
// per occurrence. For each id row and each suffix 1..n, the output row
// carries the id columns, the occurrence number, and one column per
// stub taken from <stub>_<n>. Occurrences whose stub cells are all
// null are dropped: the wide format always has the full set of slots
// regardless of how many occurrences really happened.
func wideToLong(f *Frame, idCols []string, stubs []string, n int, occCol string) *Frame {
	cols := append(append([]string(nil), idCols...), occCol)
	cols = append(cols, stubs...)
	out := NewFrame(cols...)

	for i := 0; i < f.Len(); i++ {
		for occ := 1; occ <= n; occ++ {
			vals := make([]string, len(stubs))
			empty := true
			for s, stub := range stubs {
				vals[s] = f.Get(i, stub+"_"+strconv.Itoa(occ))
				if vals[s] != "" {
					empty = false
				}
			}
			if empty {
				continue
			}
			row := make([]string, 0, len(cols))
			for _, id := range idCols {
				row = append(row, f.Get(i, id))
			}
			row = append(row, strconv.Itoa(occ))
			row = append(row, vals...)
			out.AppendRow(row...)
		}
	}
	return out
}
