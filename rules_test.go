package hhts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyRulesOrderIsAuthoritative(t *testing.T) {
	f := NewFrame("a", "b")
	f.AppendRow("1", "")
	b := newBatch(f)

	rules := []rule{
		{when: isEq("a", "1"), set: []string{"b"}, to: "X"},
		{when: isEq("b", "X"), set: []string{"a"}, to: "Y"},
	}
	require.NoError(t, applyRules(b, rules))

	// The second rule sees the first rule's assignment.
	assert.Equal(t, "Y", f.Get(0, "a"))
	assert.Equal(t, "X", f.Get(0, "b"))
}

func TestApplyRulesRegistersSentinelLabels(t *testing.T) {
	f := NewFrame("a")
	f.AppendRow("no match")
	b := newBatch(f)

	rules := []rule{{when: isEq("a", "never"), set: []string{"a"}, to: notApplicable}}
	require.NoError(t, applyRules(b, rules))

	// The label joins the category set whether or not any row matched.
	assert.Equal(t, []string{notApplicable}, b.cats["a"])
	assert.Equal(t, "no match", f.Get(0, "a"))
}

func TestApplyRulesUnknownColumnRunsNothing(t *testing.T) {
	f := NewFrame("a")
	f.AppendRow("1")
	b := newBatch(f)

	rules := []rule{
		{when: isEq("a", "1"), set: []string{"a"}, to: "X"},
		{when: isEq("gone", "1"), set: []string{"a"}, to: "Y"},
	}
	require.ErrorIs(t, applyRules(b, rules), ErrUnknownColumn)
	assert.Equal(t, "1", f.Get(0, "a"))
}

func TestConds(t *testing.T) {
	row := func(col string) string {
		return map[string]string{"n": "3.0", "s": "x", "empty": ""}[col]
	}

	assert.True(t, isEq("s", "x").eval(row))
	assert.True(t, isIn("s", "y", "x").eval(row))
	assert.False(t, isIn("s", "y", "z").eval(row))
	assert.True(t, isNull("empty").eval(row))
	assert.False(t, not(isNull("empty")).eval(row))
	assert.True(t, allOf(isNull("empty"), isEq("s", "x")).eval(row))
	assert.False(t, allOf(isNull("empty"), isEq("s", "y")).eval(row))
	assert.True(t, anyOf(isEq("s", "y"), isEq("s", "x")).eval(row))
	assert.False(t, anyOf().eval(row))

	// Codes arrive as both "3" and "3.0".
	assert.True(t, isEqNum("n", 3).eval(row))
	assert.False(t, isEqNum("s", 3).eval(row))
	assert.True(t, isPositive("n").eval(row))
	assert.False(t, isPositive("empty").eval(row))
}

func TestSetAllAppliesToEveryRow(t *testing.T) {
	f := NewFrame("a")
	f.AppendRow("1")
	f.AppendRow("2")
	b := newBatch(f)

	require.NoError(t, applyRules(b, []rule{setAll([]string{"a"}, "X")}))
	assert.Equal(t, "X", f.Get(0, "a"))
	assert.Equal(t, "X", f.Get(1, "a"))
}

func TestFillMissingOnlyTouchesNulls(t *testing.T) {
	f := NewFrame("a", "b")
	f.AppendRow("", "kept")
	b := newBatch(f)

	require.NoError(t, applyRules(b, fillMissing("a", "b")))
	assert.Equal(t, missing, f.Get(0, "a"))
	assert.Equal(t, "kept", f.Get(0, "b"))
}
