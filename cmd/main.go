package main

import (
	"fmt"
	"os"

	"github.com/SANDAG/hhts"
	"github.com/spf13/pflag"
)

func usageAndDie() {
	fmt.Println("Example usage:\n" +
		"    hhts --sdrts-dir <sdrts_extracts/> --at-dir <at_extracts/>\n" +
		"    hhts --sdrts-dir <sdrts_extracts/> --at-dir <at_extracts/> --out survey.db --csv-out tables/\n" +
		"    hhts --config hhts.yaml --tables households,persons --frequencies")
	os.Exit(1)
}

func main() {
	pflag.String("sdrts-dir", "", "Directory holding the main survey extracts")
	pflag.String("at-dir", "", "Directory holding the intercept survey extracts")
	pflag.StringP("out", "o", "", "Path to write the SQLite database to")
	pflag.String("csv-out", "", "Directory to export the loaded tables to as CSV")
	configPath := pflag.StringP("config", "c", "", "Path to a YAML config file")
	pflag.String("clip-boundary", "", "GeoJSON file; GPS points outside it are dropped")
	pflag.StringSlice("tables", nil, "Subset of tables to build (default all)")
	pflag.Bool("frequencies", false, "Also build the category frequency table")
	forceMode := pflag.BoolP("force-valid", "f", false, "Whether to fix issues by deleting data during the load")
	ignoreInvalidMode := pflag.Bool("ignore-invalid", false, "Ignore any issues during the load")

	pflag.Parse()

	cfg, err := hhts.LoadConfig(*configPath, pflag.CommandLine)
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}
	if cfg.SdrtsDir == "" || cfg.AtDir == "" {
		usageAndDie()
	}
	if cfg.Out == "" {
		cfg.Out = "hhts.db"
	}

	runOpts := &hhts.RunOpts{
		SdrtsDir:    cfg.SdrtsDir,
		AtDir:       cfg.AtDir,
		Tables:      cfg.Tables,
		Frequencies: cfg.Frequencies,
		SRID:        cfg.SRID,
	}
	if cfg.ClipBoundary != "" {
		feature, err := os.ReadFile(cfg.ClipBoundary)
		if err != nil {
			fmt.Printf("Error: %s\n", err)
			os.Exit(1)
		}
		runOpts.Boundary, err = hhts.ParseBoundary(string(feature))
		if err != nil {
			fmt.Printf("Error: %s\n", err)
			os.Exit(1)
		}
	}

	tables, err := hhts.Run(runOpts)
	if err == nil {
		loadOpts := &hhts.LoadOpts{
			ForceValid:    *forceMode,
			IgnoreInvalid: *ignoreInvalidMode,
		}
		_, err = hhts.Load(tables, cfg.Out, loadOpts)
	}
	if err == nil && cfg.CSVOut != "" {
		err = hhts.Export(cfg.Out, cfg.CSVOut, &hhts.ExportOpts{})
	}

	if err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	} else {
		fmt.Println("All done")
	}
}
