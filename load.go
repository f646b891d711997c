package hhts

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"crawshaw.io/sqlite"
	"crawshaw.io/sqlite/sqlitex"
	"github.com/google/uuid"
)

type LoadOpts struct {
	ForceValid    bool
	IgnoreInvalid bool
}

var loadPragmas = map[string]string{
	"synchronous": "OFF",
}

func sqlitexNoop(*sqlite.Stmt) error { return nil }

// Load writes the built tables to a fresh SQLite database at
// outputPath and runs the referential checks. The returned strings are
// validation issues; they come with ErrInvalidInput unless opts say to
// force or ignore.
func Load(tables []*Table, outputPath string, opts *LoadOpts) ([]string, error) {
	if outputPath == "" {
		panic("Missing outputPath")
	}
	if opts == nil {
		opts = &LoadOpts{}
	}

	runID := uuid.NewString()
	slog.Info(fmt.Sprintf("Loading %d table(s) to %s (run %s)", len(tables), outputPath, runID))

	err := os.Remove(outputPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	db, err := sqlite.OpenConn(outputPath, 0)
	if err != nil {
		return nil, err
	}
	defer func() {
		if db != nil {
			_ = db.Close()
		}
	}()

	for pragma, value := range loadPragmas {
		err = sqlitex.Exec(db, "PRAGMA "+pragma+" = "+value, sqlitexNoop)
		if err != nil {
			return nil, err
		}
	}

	if err := sqlitex.Exec(db, "BEGIN", sqlitexNoop); err != nil {
		return nil, err
	}

	query := "CREATE TABLE __hhts_load_runs (run_id TEXT, loaded_at TEXT, table_name TEXT, row_count INTEGER)"
	if err := sqlitex.Exec(db, query, sqlitexNoop); err != nil {
		return nil, err
	}

	for _, t := range tables {
		if err := createTable(db, t); err != nil {
			return nil, err
		}
		if err := loadTableIn(db, t); err != nil {
			return nil, err
		}

		query := "INSERT INTO __hhts_load_runs (run_id, loaded_at, table_name, row_count) VALUES (?, datetime('now'), ?, ?)"
		if err := sqlitex.Exec(db, query, sqlitexNoop, runID, t.Name, t.F.Len()); err != nil {
			return nil, err
		}
	}

	if err := sqlitex.Exec(db, "COMMIT", sqlitexNoop); err != nil {
		return nil, err
	}

	var validationLogLevel slog.Level
	if opts.ForceValid || opts.IgnoreInvalid {
		validationLogLevel = slog.LevelWarn
	} else {
		validationLogLevel = slog.LevelError
	}

	loaded := make(map[string]bool, len(tables))
	for _, t := range tables {
		loaded[t.Name] = true
	}

	validationErrors, err := validate(db, loaded, validateOpts{
		force:    opts.ForceValid,
		ignore:   opts.IgnoreInvalid,
		logLevel: validationLogLevel,
	})
	if err != nil {
		return validationErrors, err
	}

	err = db.Close()
	db = nil
	if err != nil {
		return nil, err
	}

	slog.Info(fmt.Sprintf("Wrote %s", outputPath))
	return validationErrors, nil
}

func createTable(db *sqlite.Conn, t *Table) error {
	schema := surveySchema[t.Name]
	var columnFragments []string
	for _, column := range t.F.Columns() {
		sqlType := schema.Types[column]
		if sqlType == "" {
			sqlType = "TEXT"
		}
		columnFragments = append(columnFragments, column+" "+sqlType)
	}
	if len(schema.PrimaryKey) > 0 {
		columnFragments = append(columnFragments,
			"PRIMARY KEY ("+strings.Join(schema.PrimaryKey, ", ")+")")
	}
	query := fmt.Sprintf("CREATE TABLE %s (%s)", t.Name, strings.Join(columnFragments, ", "))
	return sqlitex.ExecTransient(db, query, sqlitexNoop)
}

func loadTableIn(db *sqlite.Conn, t *Table) error {
	cols := t.F.Columns()
	var argFragments []string
	for i := range cols {
		argFragments = append(argFragments, fmt.Sprintf("?%d", i+1))
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.Name, strings.Join(cols, ", "), strings.Join(argFragments, ", "))
	insertStmt, err := db.Prepare(query)
	if err != nil {
		return err
	}

	for i := 0; i < t.F.Len(); i++ {
		err = insertStmt.Reset()
		if err != nil {
			return err
		}
		err = insertStmt.ClearBindings()
		if err != nil {
			return err
		}

		for j, col := range cols {
			param := j + 1
			v := t.F.Get(i, col)
			if v == "" {
				insertStmt.BindNull(param)
			} else {
				insertStmt.BindText(param, v)
			}
		}

		for {
			rowReturned, err := insertStmt.Step()
			if err != nil {
				return err
			}
			if !rowReturned {
				break
			}
		}
	}
	slog.Info(fmt.Sprintf("Wrote %d rows to %s", t.F.Len(), t.Name))

	return nil
}
