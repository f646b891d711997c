package hhts

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"crawshaw.io/sqlite"
	"crawshaw.io/sqlite/sqlitex"
)

type ExportOpts struct{}

// Export writes every canonical table in the database at inputPath to
// a CSV file under outputDir.
func Export(inputPath string, outputDir string, opts *ExportOpts) error {
	if inputPath == "" {
		panic("Missing inputPath")
	}
	if outputDir == "" {
		panic("Missing outputDir")
	}

	slog.Info(fmt.Sprintf("Exporting %s to %s", inputPath, outputDir))

	db, err := sqlite.OpenConn(inputPath, sqlite.SQLITE_OPEN_READONLY)
	if err != nil {
		return err
	}
	defer func() {
		if db != nil {
			_ = db.Close()
		}
	}()

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}

	var tables []string
	err = sqlitex.Exec(db, "SELECT name FROM sqlite_master WHERE type = 'table'", func(stmt *sqlite.Stmt) error {
		tables = append(tables, stmt.GetText("name"))
		return nil
	})
	if err != nil {
		return err
	}

	for _, table := range tables {
		if strings.HasPrefix(table, "__hhts") {
			continue
		}
		if err := exportTableIn(db, outputDir, table); err != nil {
			return err
		}
	}

	err = db.Close()
	db = nil
	if err != nil {
		return err
	}

	slog.Info(fmt.Sprintf("Wrote %s", outputDir))
	return nil
}

func exportTableIn(db *sqlite.Conn, outputDir string, table string) error {
	outputName := filepath.Join(outputDir, table+".csv")
	outputF, err := os.Create(outputName)
	if err != nil {
		return err
	}
	defer func() { _ = outputF.Close() }()
	outputCSV := csv.NewWriter(outputF)

	rowCount := 0

	var cols []string
	err = sqlitex.Exec(db, "SELECT name FROM pragma_table_info(?)", func(stmt *sqlite.Stmt) error {
		cols = append(cols, stmt.GetText("name"))
		return nil
	}, table)
	if err != nil {
		return err
	}
	if err := outputCSV.Write(cols); err != nil {
		return err
	}
	rowCount++

	err = sqlitex.Exec(db, "SELECT * FROM "+table, func(stmt *sqlite.Stmt) error {
		var row []string
		for _, col := range cols {
			row = append(row, stmt.GetText(col))
		}
		if err := outputCSV.Write(row); err != nil {
			return err
		}
		rowCount++
		return nil
	})
	if err != nil {
		return err
	}
	slog.Info(fmt.Sprintf("Wrote %d rows to %s", rowCount, outputName))

	outputCSV.Flush()
	if err := outputCSV.Error(); err != nil {
		return err
	}
	return outputF.Close()
}
