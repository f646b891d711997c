package hhts

import "strconv"

// buildFrequencies tallies every labelled column of the built tables,
// one row per declared category in declaration order. Categories never
// observed still appear with a zero count so missing labels are easy
// to spot next to a codebook.
func buildFrequencies(tables []*Table) *Table {
	f := NewFrame("table_name", "column_name", "category", "count")
	for _, t := range tables {
		for _, col := range t.F.Columns() {
			cats := t.cats[col]
			if len(cats) == 0 {
				continue
			}
			counts := make(map[string]int)
			for i := 0; i < t.F.Len(); i++ {
				counts[t.F.Get(i, col)]++
			}
			for _, cat := range cats {
				f.AppendRow(t.Name, col, cat, strconv.Itoa(counts[cat]))
			}
		}
	}
	return &Table{Name: "frequencies", F: f, cats: map[string][]string{}}
}
