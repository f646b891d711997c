package hhts

import "strconv"

// Table is one finished canonical row set together with the declared
// category order of its coded columns. Column order is the contract
// surface other systems consume.
type Table struct {
	Name string
	F    *Frame
	cats map[string][]string
}

// finish selects the final column order and carries the category
// registry over from the working batch. No partial table: any missing
// column fails the whole build.
func finish(name string, b *batch, cols []string) (*Table, error) {
	f, err := b.f.Select(cols...)
	if err != nil {
		return nil, err
	}
	return &Table{Name: name, F: f, cats: b.cats}, nil
}

// countPairs builds the identity mapping used by household composition
// counts: codes 0..top-1 keep their own value as the label and top
// collapses to an open-ended category.
func countPairs(top int, topLabel string) []codePair {
	out := make([]codePair, 0, top+1)
	for i := 0; i < top; i++ {
		out = append(out, codePair{strconv.Itoa(i), strconv.Itoa(i)})
	}
	out = append(out, codePair{strconv.Itoa(top), topLabel})
	return out
}

// renameAll moves columns to their canonical names and carries any
// registered categories along with them.
func renameAll(b *batch, pairs [][2]string) error {
	for _, p := range pairs {
		if err := b.f.Rename(p[0], p[1]); err != nil {
			return err
		}
		if cats, ok := b.cats[p[0]]; ok {
			delete(b.cats, p[0])
			b.cats[p[1]] = cats
		}
	}
	return nil
}
