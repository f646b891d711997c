package hhts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequentialKey(t *testing.T) {
	f := NewFrame("a")
	f.AppendRow("x")
	f.AppendRow("y")

	sequentialKey(f, "id", 0)
	assert.Equal(t, "0", f.Get(0, "id"))
	assert.Equal(t, "1", f.Get(1, "id"))
}

func TestGroupKeyNumbersGroupsFirstSeen(t *testing.T) {
	f := NewFrame("hh", "veh")
	f.AppendRow("7", "1")
	f.AppendRow("3", "1")
	f.AppendRow("7", "1")
	f.AppendRow("7", "2")

	groupKey(f, "id", "hh", "veh")
	assert.Equal(t, "1", f.Get(0, "id"))
	assert.Equal(t, "2", f.Get(1, "id"))
	assert.Equal(t, "1", f.Get(2, "id"))
	assert.Equal(t, "3", f.Get(3, "id"))
}

func TestCoalesceSentinel(t *testing.T) {
	f := NewFrame("primary", "secondary")
	f.AppendRow("kept", "ignored")
	f.AppendRow(missing, "fallback")
	f.AppendRow(notApplicable, "fallback")

	coalesceSentinel(f, "out", "primary", "secondary")
	assert.Equal(t, "kept", f.Get(0, "out"))
	assert.Equal(t, "fallback", f.Get(1, "out"))
	assert.Equal(t, "fallback", f.Get(2, "out"))
}

func TestParseIntString(t *testing.T) {
	n, ok := parseIntString("3")
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	n, ok = parseIntString("3.0")
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	_, ok = parseIntString("")
	assert.False(t, ok)
	_, ok = parseIntString("3.5")
	assert.False(t, ok)
	_, ok = parseIntString("x")
	assert.False(t, ok)
}

func TestFormatWeight(t *testing.T) {
	assert.Equal(t, "1", formatWeight(1))
	assert.Equal(t, "0.5", formatWeight(1.0/2))
	assert.Equal(t, "0.3333333333333333", formatWeight(1.0/3))
}
