package hhts

import "fmt"

// codeMapping recodes one column's raw source codes to canonical
// labels. Pair order declares the category order, which later stages
// and the frequencies diagnostic preserve. missing is the label a null
// cell takes; every coded column must declare one.
type codeMapping struct {
	missing string
	pairs   []codePair
}

type codePair struct {
	Code  string
	Label string
}

// Labels returns the declared category order: mapped labels first, in
// pair order with duplicates collapsed to first occurrence, then the
// missing label if no pair already produces it.
func (m codeMapping) Labels() []string {
	var out []string
	seen := make(map[string]bool)
	for _, p := range m.pairs {
		if !seen[p.Label] {
			seen[p.Label] = true
			out = append(out, p.Label)
		}
	}
	if m.missing != "" && !seen[m.missing] {
		out = append(out, m.missing)
	}
	return out
}

// Apply recodes col in place. A column absent from the frame is a
// no-op: the extracts do not all carry every declared column. A raw
// code absent from the mapping is fatal for the table, naming the
// column and the code.
func (m codeMapping) Apply(b *batch, col string) error {
	if !b.f.HasColumn(col) {
		return nil
	}
	index := make(map[string]string, len(m.pairs))
	for _, p := range m.pairs {
		index[p.Code] = p.Label
	}
	for i := 0; i < b.f.Len(); i++ {
		raw := b.f.Get(i, col)
		if raw == "" {
			b.f.Set(i, col, m.missing)
			continue
		}
		label, ok := index[raw]
		if !ok {
			return fmt.Errorf("recode %s: code %q: %w", col, raw, ErrUnmappedCode)
		}
		b.f.Set(i, col, label)
	}
	b.cats[col] = m.Labels()
	return nil
}

// applyMappings applies a set of per-column mappings. Map iteration
// order does not matter here: recodes are independent per column.
func applyMappings(b *batch, mappings map[string]codeMapping) error {
	for col, m := range mappings {
		if err := m.Apply(b, col); err != nil {
			return err
		}
	}
	return nil
}
