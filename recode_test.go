package hhts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecodeApply(t *testing.T) {
	f := NewFrame("color")
	f.AppendRow("1")
	f.AppendRow("")
	b := newBatch(f)

	m := codeMapping{missing: "Missing", pairs: []codePair{
		{"1", "Red"},
		{"2", "Blue"},
	}}
	require.NoError(t, m.Apply(b, "color"))

	assert.Equal(t, "Red", f.Get(0, "color"))
	assert.Equal(t, "Missing", f.Get(1, "color"))
	assert.Equal(t, []string{"Red", "Blue", "Missing"}, b.cats["color"])
}

func TestRecodeUnmappedCodeIsFatal(t *testing.T) {
	f := NewFrame("color")
	f.AppendRow("9")
	b := newBatch(f)

	m := codeMapping{missing: "Missing", pairs: []codePair{{"1", "Red"}}}
	require.ErrorIs(t, m.Apply(b, "color"), ErrUnmappedCode)
}

func TestRecodeAbsentColumnIsNoop(t *testing.T) {
	f := NewFrame("other")
	f.AppendRow("1")
	b := newBatch(f)

	m := codeMapping{missing: "Missing", pairs: []codePair{{"1", "Red"}}}
	require.NoError(t, m.Apply(b, "color"))
	assert.Equal(t, "1", f.Get(0, "other"))
	assert.Empty(t, b.cats)
}

func TestRecodeNoMissingLabelKeepsNull(t *testing.T) {
	f := NewFrame("fuel")
	f.AppendRow("")
	b := newBatch(f)

	m := codeMapping{pairs: []codePair{{"1", "Gas"}}}
	require.NoError(t, m.Apply(b, "fuel"))
	assert.Equal(t, "", f.Get(0, "fuel"))
	assert.Equal(t, []string{"Gas"}, b.cats["fuel"])
}

func TestRecodeLabelsCollapseDuplicates(t *testing.T) {
	m := codeMapping{missing: "Missing", pairs: []codePair{
		{"1", "Yes"},
		{"2", "No"},
		{"99", "Missing"},
	}}
	assert.Equal(t, []string{"Yes", "No", "Missing"}, m.Labels())
}
