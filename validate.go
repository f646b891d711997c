package hhts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"crawshaw.io/sqlite"
	"crawshaw.io/sqlite/sqlitex"
)

var ErrInvalidInput = errors.New("invalid input")

type validateOpts struct {
	force    bool
	ignore   bool
	logLevel slog.Level
}

// validate runs the referential checks declared in surveySchema over
// the loaded database. loaded restricts the checks to tables present
// in this run: a partial build must not fail on tables it never built.
func validate(db *sqlite.Conn, loaded map[string]bool, opts validateOpts) ([]string, error) {
	v := &validator{db: db, opts: opts, toDelete: make(map[string][]int64)}

	slog.Info("Validating")

	for {
		for table, schema := range surveySchema {
			if !loaded[table] {
				continue
			}
			for column, foreign := range schema.ForeignIDs {
				if !loaded[foreign.Table] {
					continue
				}
				if err := v.validateForeignID(table, column, foreign); err != nil {
					return nil, err
				}
			}
		}
		if len(v.toDelete) == 0 {
			break
		}

		deleted := 0
		for table, rows := range v.toDelete {
			query := fmt.Sprintf("DELETE FROM %s WHERE rowid = ?", table)
			for _, rowid := range rows {
				if err := sqlitex.Exec(db, query, sqlitexNoop, rowid); err != nil {
					return nil, err
				}
				deleted++
			}
		}
		slog.Info(fmt.Sprintf("Re-validating after force deleting %d row(s)", deleted))
		v.toDelete = make(map[string][]int64)
		v.pass++
	}

	if len(v.issues) > 0 {
		if opts.force || opts.ignore {
			return v.issues, nil
		} else {
			return v.issues, ErrInvalidInput
		}
	}
	return nil, nil
}

type validator struct {
	db       *sqlite.Conn
	opts     validateOpts
	issues   []string
	pass     int
	toDelete map[string][]int64 // table -> rowid
}

func (v *validator) append(msg string, args ...any) {
	issue := fmt.Sprintf(msg, args...)
	slog.Log(context.Background(), v.opts.logLevel, issue)
	v.issues = append(v.issues, issue)
}

func (v *validator) validateForeignID(table, column string, foreign foreignID) error {
	query := fmt.Sprintf("SELECT rowid, * FROM %s WHERE %s IS NOT NULL AND %s NOT IN (SELECT %s FROM %s)",
		table, column, column, foreign.Column, foreign.Table)

	return sqlitex.Exec(v.db, query, func(stmt *sqlite.Stmt) error {
		rowid := stmt.GetInt64("rowid")
		value := stmt.GetText(column)

		if v.pass == 0 {
			v.append("%s in %s is not a valid %s [%s]", value, table, column, prettyPrintRow(stmt))
		}

		if v.opts.force {
			v.toDelete[table] = append(v.toDelete[table], rowid)
		}

		return nil
	})
}

func prettyPrintRow(row *sqlite.Stmt) string {
	var out []string
	for i := 0; i < row.ColumnCount(); i++ {
		column := row.ColumnName(i)
		value := row.GetText(column)
		if column != "rowid" && value != "" {
			out = append(out, fmt.Sprintf("%s: %s", column, value))
		}
	}
	return strings.Join(out, ", ")
}
