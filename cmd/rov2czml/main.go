// Command rov2czml converts a vehicle-telemetry CSV export into a CZML
// scene file, optionally archiving the run in a local mission database.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/nautilus-data/dive.report/internal/czml"
	"github.com/nautilus-data/dive.report/internal/missiondb"
	"github.com/nautilus-data/dive.report/internal/scene"
	"github.com/nautilus-data/dive.report/internal/telemetry"
	"github.com/nautilus-data/dive.report/internal/version"
)

func main() {
	var inPath string
	var outPath string
	var configPath string
	var dbPath string
	var skip int
	var limit int
	var showVersion bool

	flag.StringVar(&inPath, "in", "", "path to telemetry CSV export")
	flag.StringVar(&outPath, "out", "", "output CZML path (default: input with .czml extension)")
	flag.StringVar(&configPath, "config", "", "optional JSON config file")
	flag.StringVar(&dbPath, "db", "", "optional mission archive database")
	flag.IntVar(&skip, "skip", 0, "rows to skip from the start of the input")
	flag.IntVar(&limit, "limit", 0, "maximum rows to convert (0 = all)")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println("rov2czml " + version.String())
		return
	}
	if inPath == "" {
		log.Fatal("-in is required")
	}
	if outPath == "" {
		outPath = replaceExt(inPath, ".czml")
	}

	cfg := &scene.Config{}
	if configPath != "" {
		var err error
		cfg, err = scene.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
	}

	started := time.Now()

	rows, err := telemetry.ReadCSV(inPath)
	if err != nil {
		log.Fatalf("read %s: %v", inPath, err)
	}
	rows = subset(rows, skip, limit)

	fields := telemetry.DefaultFieldMap()
	fields.Sensors = mergeSensors(fields.Sensors, cfg.GetSensorFields())

	var norm telemetry.Collector
	series := telemetry.Normalize(rows, fields, cfg.GetPositionMode(), &norm)

	result, err := scene.Convert(series, cfg)
	if err != nil && !errors.Is(err, scene.ErrNoData) {
		log.Fatalf("convert: %v", err)
	}
	if errors.Is(err, scene.ErrNoData) {
		log.Printf("warning: no usable telemetry in %s, writing document-only scene", inPath)
	}

	diags := append(norm.Diagnostics(), result.Diagnostics...)
	var warnings, errCount int
	for _, d := range diags {
		log.Print(d)
		switch d.Severity {
		case telemetry.SeverityWarning:
			warnings++
		case telemetry.SeverityError:
			errCount++
		}
	}

	if err := czml.WriteFile(outPath, result.Packets); err != nil {
		log.Fatalf("write %s: %v", outPath, err)
	}
	fmt.Printf("wrote %s: %d packets from %d records\n",
		outPath, len(result.Packets), len(series.Records))

	if dbPath != "" {
		if err := archiveRun(dbPath, missiondb.Run{
			StartedAt:    started,
			Source:       inPath,
			Output:       outPath,
			PositionMode: string(cfg.GetPositionMode()),
			Records:      len(series.Records),
			Packets:      len(result.Packets),
			Warnings:     warnings,
			Errors:       errCount,
		}, diags); err != nil {
			log.Fatalf("archive run: %v", err)
		}
	}
}

func archiveRun(path string, run missiondb.Run, diags []telemetry.Diagnostic) error {
	db, err := missiondb.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.MigrateUp(); err != nil {
		return err
	}
	id, err := db.RecordRun(run, diags)
	if err != nil {
		return err
	}
	fmt.Printf("archived run %s in %s\n", id, path)
	return nil
}

func replaceExt(path, ext string) string {
	if i := strings.LastIndex(path, "."); i > strings.LastIndexByte(path, '/') {
		return path[:i] + ext
	}
	return path + ext
}

func subset(rows []map[string]string, skip, limit int) []map[string]string {
	if skip > 0 {
		if skip >= len(rows) {
			return nil
		}
		rows = rows[skip:]
	}
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}

func mergeSensors(defaults, configured []string) []string {
	out := append([]string(nil), defaults...)
	for _, name := range configured {
		seen := false
		for _, have := range out {
			if have == name {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, name)
		}
	}
	return out
}
