package hhts

import (
	"fmt"
	"os"
	"testing"

	"crawshaw.io/sqlite"
	"crawshaw.io/sqlite/sqlitex"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAndExport(t *testing.T) {
	outDir := testTempdir(t)

	hh := NewFrame("household_id", "address")
	hh.AppendRow("1", "123 Main St")
	hh.AppendRow("2", "")
	households := &Table{Name: "households", F: hh, cats: map[string][]string{}}

	issues, err := Load([]*Table{households}, outDir+"/survey.db", nil)
	require.NoError(t, err)
	require.Empty(t, issues)

	conn, err := sqlite.OpenConn(outDir+"/survey.db", sqlite.SQLITE_OPEN_READONLY)
	require.NoError(t, err)

	var nulls int
	err = sqlitex.Exec(conn, "SELECT count(*) as count FROM households WHERE address IS NULL", func(stmt *sqlite.Stmt) error {
		nulls = int(stmt.GetInt64("count"))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, nulls)

	var runs int
	err = sqlitex.Exec(conn, "SELECT count(*) as count FROM __hhts_load_runs", func(stmt *sqlite.Stmt) error {
		runs = int(stmt.GetInt64("count"))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, runs)
	require.NoError(t, conn.Close())

	err = Export(outDir+"/survey.db", outDir+"/csv", nil)
	require.NoError(t, err)

	got, err := os.ReadFile(outDir + "/csv/households.csv")
	require.NoError(t, err)
	assertTextEqual(t, "household_id,address\n1,123 Main St\n2,\n", string(got))

	// Bookkeeping tables stay out of the export.
	_, err = os.Stat(outDir + "/csv/__hhts_load_runs.csv")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadInvalidReference(t *testing.T) {
	buildInput := func() []*Table {
		hh := NewFrame("household_id")
		hh.AppendRow("1")
		p := NewFrame("person_id", "household_id")
		p.AppendRow("11", "1")
		p.AppendRow("12", "5")
		return []*Table{
			{Name: "households", F: hh, cats: map[string][]string{}},
			{Name: "persons", F: p, cats: map[string][]string{}},
		}
	}

	t.Run("nofix", func(t *testing.T) {
		outDir := testTempdir(t)
		issues, err := Load(buildInput(), outDir+"/survey.db", nil)
		require.ErrorIs(t, err, ErrInvalidInput)
		require.Len(t, issues, 1)
	})
	t.Run("ignore", func(t *testing.T) {
		outDir := testTempdir(t)
		issues, err := Load(buildInput(), outDir+"/survey.db", &LoadOpts{IgnoreInvalid: true})
		require.NoError(t, err)
		require.Len(t, issues, 1)
	})
	t.Run("fix", func(t *testing.T) {
		outDir := testTempdir(t)
		issues, err := Load(buildInput(), outDir+"/survey.db", &LoadOpts{ForceValid: true})
		require.NoError(t, err)
		require.Len(t, issues, 1)

		conn, err := sqlite.OpenConn(outDir+"/survey.db", sqlite.SQLITE_OPEN_READONLY)
		require.NoError(t, err)
		var count int
		err = sqlitex.Exec(conn, "SELECT count(*) as count FROM persons", func(stmt *sqlite.Stmt) error {
			count = int(stmt.GetInt64("count"))
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		require.NoError(t, conn.Close())
	})
}

func TestLoadPartialBuildSkipsUnloadedParents(t *testing.T) {
	outDir := testTempdir(t)

	p := NewFrame("person_id", "household_id")
	p.AppendRow("11", "5")
	persons := &Table{Name: "persons", F: p, cats: map[string][]string{}}

	issues, err := Load([]*Table{persons}, outDir+"/survey.db", nil)
	require.NoError(t, err)
	require.Empty(t, issues)
}

func testTempdir(t *testing.T) string {
	dir, err := os.MkdirTemp("", "")
	require.NoError(t, err)
	t.Cleanup(func() {
		if t.Failed() {
			fmt.Println("Preserving tempdir after failed test", dir)
		} else {
			_ = os.RemoveAll(dir)
		}
	})
	return dir
}

func assertTextEqual(t *testing.T, expected, actual string) {
	t.Helper()
	edits := myers.ComputeEdits(span.URIFromPath("expected"), expected, actual)
	if len(edits) > 0 {
		t.Fail()
		t.Log("\n" + fmt.Sprint(gotextdiff.ToUnified("expected", "actual", expected, edits)))
	}
}
