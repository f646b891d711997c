package hhts

import "fmt"

const (
	notApplicable = "Not Applicable"
	missing       = "Missing"
)

// A rule overrides fields with a sentinel label when its condition
// holds. Rules run strictly in list order against the same mutable
// batch: a later rule sees the assignments of earlier ones, and the
// list order is authoritative.
type rule struct {
	when cond
	set  []string
	to   string
}

type cond interface {
	columns() []string
	eval(row func(col string) string) bool
}

type condEq struct {
	col string
	val string
}

func (c condEq) columns() []string { return []string{c.col} }
func (c condEq) eval(row func(string) string) bool {
	return row(c.col) == c.val
}

type condIn struct {
	col  string
	vals []string
}

func (c condIn) columns() []string { return []string{c.col} }
func (c condIn) eval(row func(string) string) bool {
	v := row(c.col)
	for _, w := range c.vals {
		if v == w {
			return true
		}
	}
	return false
}

type condNull struct{ col string }

func (c condNull) columns() []string { return []string{c.col} }
func (c condNull) eval(row func(string) string) bool {
	return row(c.col) == ""
}

type condNot struct{ inner cond }

func (c condNot) columns() []string { return c.inner.columns() }
func (c condNot) eval(row func(string) string) bool {
	return !c.inner.eval(row)
}

type condAll struct{ conds []cond }

func (c condAll) columns() []string {
	var out []string
	for _, sub := range c.conds {
		out = append(out, sub.columns()...)
	}
	return out
}
func (c condAll) eval(row func(string) string) bool {
	for _, sub := range c.conds {
		if !sub.eval(row) {
			return false
		}
	}
	return true
}

type condAny struct{ conds []cond }

func (c condAny) columns() []string {
	var out []string
	for _, sub := range c.conds {
		out = append(out, sub.columns()...)
	}
	return out
}
func (c condAny) eval(row func(string) string) bool {
	for _, sub := range c.conds {
		if sub.eval(row) {
			return true
		}
	}
	return false
}

type condNumEq struct {
	col string
	val int
}

func (c condNumEq) columns() []string { return []string{c.col} }
func (c condNumEq) eval(row func(string) string) bool {
	n, ok := parseIntString(row(c.col))
	return ok && n == c.val
}

type condNumGt struct {
	col string
	val int
}

func (c condNumGt) columns() []string { return []string{c.col} }
func (c condNumGt) eval(row func(string) string) bool {
	n, ok := parseIntString(row(c.col))
	return ok && n > c.val
}

func isEq(col, val string) cond        { return condEq{col, val} }
func isIn(col string, vals ...string) cond { return condIn{col, vals} }
func isNull(col string) cond           { return condNull{col} }
func not(c cond) cond                  { return condNot{c} }
func allOf(conds ...cond) cond         { return condAll{conds} }
func anyOf(conds ...cond) cond         { return condAny{conds} }
func isEqNum(col string, val int) cond { return condNumEq{col, val} }
func isPositive(col string) cond       { return condNumGt{col, 0} }

// applyRules runs the rule list in order. Before the first rule runs,
// every column any condition reads and every assignment target is
// checked against the frame; an unknown column is a configuration
// error and no rule executes.
func applyRules(b *batch, rules []rule) error {
	for _, r := range rules {
		for _, col := range r.when.columns() {
			if !b.f.HasColumn(col) {
				return fmt.Errorf("rule condition reads %s: %w", col, ErrUnknownColumn)
			}
		}
		for _, col := range r.set {
			if !b.f.HasColumn(col) {
				return fmt.Errorf("rule assigns %s: %w", col, ErrUnknownColumn)
			}
		}
	}

	for _, r := range rules {
		for _, col := range r.set {
			b.register(col, r.to)
		}
		for i := 0; i < b.f.Len(); i++ {
			row := func(col string) string { return b.f.Get(i, col) }
			if r.when.eval(row) {
				for _, col := range r.set {
					b.f.Set(i, col, r.to)
				}
			}
		}
	}
	return nil
}

// setAll overrides fields for every row, as a rule with no condition.
func setAll(set []string, to string) rule {
	return rule{when: condAll{}, set: set, to: to}
}

// fillMissing is the common tail rule: any cell still null takes the
// Missing label.
func fillMissing(cols ...string) []rule {
	out := make([]rule, len(cols))
	for i, col := range cols {
		out[i] = rule{when: isNull(col), set: []string{col}, to: missing}
	}
	return out
}
