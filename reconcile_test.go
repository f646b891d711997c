package hhts

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileBackfillsAndConcatenates(t *testing.T) {
	a := NewFrame("id", "city")
	a.AppendRow("1", "San Diego")
	b := NewFrame("id")
	b.AppendRow("2")

	got, err := reconcile(a, b, nil, map[string]string{"city": "99"})
	require.NoError(t, err)

	require.Equal(t, 2, got.Len())
	assert.Equal(t, "1", got.Get(0, "id"))
	assert.Equal(t, "San Diego", got.Get(0, "city"))
	assert.Equal(t, "2", got.Get(1, "id"))
	assert.Equal(t, "99", got.Get(1, "city"))
}

func TestReconcileUndeclaredColumnIsFatal(t *testing.T) {
	a := NewFrame("id", "city")
	b := NewFrame("id")

	_, err := reconcile(a, b, nil, nil)
	require.ErrorIs(t, err, ErrUnknownColumn)
}

func TestReconcileFillForCarriedColumnIsFatal(t *testing.T) {
	a := NewFrame("id", "city")
	b := NewFrame("id", "city")

	_, err := reconcile(a, b, nil, map[string]string{"city": "99"})
	require.Error(t, err)
}

func TestRequireUnique(t *testing.T) {
	sentinel := errors.New("duplicate")

	f := NewFrame("id")
	f.AppendRow("1")
	f.AppendRow("")
	f.AppendRow("")
	f.AppendRow("2")
	require.NoError(t, requireUnique(f, "id", sentinel))

	f.AppendRow("1")
	require.ErrorIs(t, requireUnique(f, "id", sentinel), sentinel)
}
