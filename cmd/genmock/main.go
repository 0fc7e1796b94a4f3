// Command genmock reads a sensor export CSV and generates mock data fixtures
// for the ETL test suites. It uses the actual ETL domain package to ensure the
// enriched output matches real pipeline behavior.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -csv data/mock/sensor_export_260825.csv \
//	  -raw-out data/mock/thermometer_readings_combined.json \
//	  -enriched-out data/mock/thermometer_readings_enriched.json
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/frostline/thermoscale-etl/internal/domain"
	"github.com/jonboulle/clockwork"
)

var baseDate = time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	csvPath := flag.String("csv", "", "path to the sensor export CSV file")
	rawOut := flag.String("raw-out", "", "output path for the raw JSON fixture")
	enrichedOut := flag.String("enriched-out", "", "output path for the enriched JSON fixture")
	flag.Parse()

	if *csvPath == "" || *rawOut == "" || *enrichedOut == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -csv, -raw-out, -enriched-out")
	}

	// Set a fixed clock for reproducible ProcessedAt timestamps.
	domain.SetClock(clockwork.NewFakeClockAt(
		time.Date(2026, time.August, 26, 6, 0, 0, 0, time.UTC),
	))
	defer domain.SetClock(nil)

	records, readings, err := processCSV(*csvPath)
	if err != nil {
		return fmt.Errorf("processing %s: %w", *csvPath, err)
	}

	log.Printf("total: %d records", len(records))

	if err := writeJSON(*rawOut, records); err != nil {
		return fmt.Errorf("writing raw fixture: %w", err)
	}
	log.Printf("wrote raw fixture: %s", *rawOut)

	if err := writeJSON(*enrichedOut, readings); err != nil {
		return fmt.Errorf("writing enriched fixture: %w", err)
	}
	log.Printf("wrote enriched fixture: %s", *enrichedOut)

	printStats(readings)
	return nil
}

func processCSV(path string) ([]domain.RawSensorRecord, []domain.Reading, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}

	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("no data rows")
	}

	header := rows[0]
	colIdx := map[string]int{}
	for i, h := range header {
		colIdx[h] = i
	}

	var records []domain.RawSensorRecord
	var readings []domain.Reading

	for _, row := range rows[1:] {
		if len(row) < len(header) {
			continue
		}

		rec := domain.RawSensorRecord{
			SensorID:   get(row, colIdx, "SensorID"),
			Value:      get(row, colIdx, "Value"),
			Unit:       get(row, colIdx, "Unit"),
			CapturedAt: get(row, colIdx, "CapturedAt"),
			Site:       get(row, colIdx, "Site"),
			Channel:    get(row, colIdx, "Channel"),
			Comments:   get(row, colIdx, "Comments"),
		}
		records = append(records, rec)

		// Run the actual ETL transformation.
		rawJSON, err := json.Marshal(rec)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal record: %w", err)
		}

		parsed, err := domain.ParseRawReading(domain.RawReading{
			Value:     rawJSON,
			Timestamp: baseDate,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("parse raw reading: %w", err)
		}

		readings = append(readings, domain.EnrichReading(parsed))
	}

	return records, readings, nil
}

func get(row []string, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

// statsResult holds aggregated counts for printStats reporting.
type statsResult struct {
	unitCounts     map[string]int
	conceptCounts  map[string]int
	waypointCounts map[string]int
	sensorCounts   map[string]int
	withConcept    int
	minCelsius     float64
	maxCelsius     float64
}

func collectStats(readings []domain.Reading) statsResult {
	s := statsResult{
		unitCounts:     map[string]int{},
		conceptCounts:  map[string]int{},
		waypointCounts: map[string]int{},
		sensorCounts:   map[string]int{},
	}
	for i := range readings {
		r := &readings[i]
		s.unitCounts[r.Unit]++
		s.sensorCounts[r.SensorID]++

		if r.Concept != "" {
			s.conceptCounts[r.Concept]++
			s.withConcept++
		}
		if r.Waypoint != "" {
			s.waypointCounts[r.Waypoint]++
		}
		if i == 0 || r.Celsius < s.minCelsius {
			s.minCelsius = r.Celsius
		}
		if i == 0 || r.Celsius > s.maxCelsius {
			s.maxCelsius = r.Celsius
		}
	}
	return s
}

func printStats(readings []domain.Reading) {
	stats := collectStats(readings)

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Total: %d\n", len(readings))
	fmt.Printf("By unit: celsius=%d, fahrenheit=%d, kelvin=%d\n",
		stats.unitCounts["celsius"], stats.unitCounts["fahrenheit"], stats.unitCounts["kelvin"])
	fmt.Printf("With concept: %d\n", stats.withConcept)
	fmt.Printf("By concept: frigid=%d, cold=%d, chilly=%d, warm=%d, hot=%d, sweltering=%d\n",
		stats.conceptCounts["frigid"], stats.conceptCounts["cold"], stats.conceptCounts["chilly"],
		stats.conceptCounts["warm"], stats.conceptCounts["hot"], stats.conceptCounts["sweltering"])
	fmt.Printf("Waypoints: freezing=%d, boiling=%d, body=%d\n",
		stats.waypointCounts["freezing"], stats.waypointCounts["boiling"], stats.waypointCounts["body"])
	fmt.Printf("Celsius range: [%g, %g]\n", stats.minCelsius, stats.maxCelsius)

	printSensorBreakdown(stats)
	printFirstReading(readings)
}

type sensorCount struct {
	sensor string
	count  int
}

func printSensorBreakdown(stats statsResult) {
	sc := make([]sensorCount, 0, len(stats.sensorCounts))
	for s, c := range stats.sensorCounts {
		sc = append(sc, sensorCount{s, c})
	}
	sort.Slice(sc, func(i, j int) bool { return sc[i].count > sc[j].count })
	fmt.Printf("Sensors (%d): ", len(sc))
	for _, s := range sc {
		fmt.Printf("%s=%d ", s.sensor, s.count)
	}
	fmt.Println()
}

func printFirstReading(readings []domain.Reading) {
	if len(readings) == 0 {
		return
	}
	r := &readings[0]
	fmt.Printf("\nFirst reading:\n")
	fmt.Printf("  ID: %s\n", r.ID)
	fmt.Printf("  Amount: %g %s (display %s)\n", r.Amount, r.Unit, r.Display)
	fmt.Printf("  Celsius: %g, Fahrenheit: %g, Kelvin: %g\n", r.Celsius, r.Fahrenheit, r.Kelvin)
	if r.Concept != "" {
		fmt.Printf("  Concept: %s (%s)\n", r.Concept, r.ConceptLabel)
	}
	if r.GaugePosition != nil {
		fmt.Printf("  GaugePosition: %g\n", *r.GaugePosition)
	}
	fmt.Printf("  CapturedAt: %s\n", r.CapturedAt.Format(time.RFC3339))
	fmt.Printf("  TimeBucket: %s\n", r.TimeBucket.Format(time.RFC3339))
}
