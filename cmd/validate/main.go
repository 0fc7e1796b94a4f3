// Command validate performs end-to-end data integrity checks across the mock
// data fixtures: raw JSON records and enriched JSON readings. It verifies row
// counts, transformation correctness, and enum alignment.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -raw-json data/mock/thermometer_readings_combined.json \
//	  -enriched-json data/mock/thermometer_readings_enriched.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/frostline/thermoscale-etl/internal/domain"
	"github.com/jonboulle/clockwork"
)

var baseDate = time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	rawJSON := flag.String("raw-json", "", "path to the raw JSON fixture")
	enrichedJSON := flag.String("enriched-json", "", "path to the enriched JSON fixture")
	flag.Parse()

	if *rawJSON == "" || *enrichedJSON == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*rawJSON, *enrichedJSON); code != 0 {
		os.Exit(code)
	}
}

func run(rawPath, enrichedPath string) int {
	// Set a fixed clock matching genmock for ID reproducibility.
	domain.SetClock(clockwork.NewFakeClockAt(
		time.Date(2026, time.August, 26, 6, 0, 0, 0, time.UTC),
	))
	defer domain.SetClock(nil)

	fmt.Println("=== Thermometer Reading Integrity Validation ===")
	fmt.Println()

	rawRecords, err := loadJSON[domain.RawSensorRecord](rawPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load raw JSON: %v\n", err)
		return 1
	}

	enriched, err := loadJSON[domain.Reading](enrichedPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load enriched JSON: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateTransformation(rawRecords, enriched),
		validateEnumAlignment(enriched),
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d raw JSON, %d enriched JSON\n", len(rawRecords), len(enriched))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

func loadJSON[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ── Phase 1: Transformation ──
// Re-runs the ETL transformation on the raw records and compares with the
// enriched fixture.

func validateTransformation(raw []domain.RawSensorRecord, enriched []domain.Reading) *phase {
	p := &phase{name: "Phase 1: Transformation (raw vs enriched)"}

	if len(raw) != len(enriched) {
		p.errorf("count: %d raw records, %d enriched readings", len(raw), len(enriched))
		return p
	}

	enrichedByID := map[string]*domain.Reading{}
	for i := range enriched {
		if enriched[i].ID == "" {
			p.errorf("enriched record %d: missing ID", i)
			continue
		}
		enrichedByID[enriched[i].ID] = &enriched[i]
	}

	for i := range raw {
		expected, err := transformRecord(raw[i])
		if err != nil {
			p.errorf("raw record %d: %v", i, err)
			continue
		}

		actual, ok := enrichedByID[expected.ID]
		if !ok {
			p.errorf("raw record %d: ID %q not found in enriched JSON", i, expected.ID)
			continue
		}

		compareReadings(p, expected, actual)
	}

	return p
}

// transformRecord re-runs the ETL transformation on a raw record.
func transformRecord(rec domain.RawSensorRecord) (domain.Reading, error) {
	rawJSON, err := json.Marshal(rec)
	if err != nil {
		return domain.Reading{}, fmt.Errorf("marshal error: %w", err)
	}
	parsed, err := domain.ParseRawReading(domain.RawReading{
		Value:     rawJSON,
		Timestamp: baseDate,
	})
	if err != nil {
		return domain.Reading{}, fmt.Errorf("parse error: %w", err)
	}
	return domain.EnrichReading(parsed), nil
}

// compareReadings checks that an enriched reading matches the expected output.
func compareReadings(p *phase, expected domain.Reading, actual *domain.Reading) {
	id := expected.ID

	if actual.Unit != expected.Unit {
		p.errorf("ID %s: unit: expected %q, got %q", id, expected.Unit, actual.Unit)
	}
	if !floatEq(actual.Amount, expected.Amount) {
		p.errorf("ID %s: amount: expected %g, got %g", id, expected.Amount, actual.Amount)
	}
	if !floatEq(actual.Celsius, expected.Celsius) {
		p.errorf("ID %s: celsius: expected %g, got %g", id, expected.Celsius, actual.Celsius)
	}
	if !floatEq(actual.Fahrenheit, expected.Fahrenheit) {
		p.errorf("ID %s: fahrenheit: expected %g, got %g", id, expected.Fahrenheit, actual.Fahrenheit)
	}
	if !floatEq(actual.Kelvin, expected.Kelvin) {
		p.errorf("ID %s: kelvin: expected %g, got %g", id, expected.Kelvin, actual.Kelvin)
	}
	if actual.Display != expected.Display {
		p.errorf("ID %s: display: expected %q, got %q", id, expected.Display, actual.Display)
	}
	if actual.Concept != expected.Concept {
		p.errorf("ID %s: concept: expected %q, got %q", id, expected.Concept, actual.Concept)
	}
	if actual.Waypoint != expected.Waypoint {
		p.errorf("ID %s: waypoint: expected %q, got %q", id, expected.Waypoint, actual.Waypoint)
	}
	if !ptrFloatEq(actual.GaugePosition, expected.GaugePosition) {
		p.errorf("ID %s: gauge_position mismatch", id)
	}
	if !actual.CapturedAt.Equal(expected.CapturedAt) {
		p.errorf("ID %s: captured_at: expected %s, got %s", id,
			expected.CapturedAt.Format(time.RFC3339), actual.CapturedAt.Format(time.RFC3339))
	}
	if !actual.TimeBucket.Equal(expected.TimeBucket) {
		p.errorf("ID %s: time_bucket: expected %s, got %s", id,
			expected.TimeBucket.Format(time.RFC3339), actual.TimeBucket.Format(time.RFC3339))
	}
}

// ── Phase 2: Enum Alignment ──
// Validates that enriched field values stay inside the published vocabularies.

var (
	validUnits    = map[string]bool{"celsius": true, "fahrenheit": true, "kelvin": true}
	validConcepts = map[string]bool{
		"frigid": true, "cold": true, "chilly": true,
		"warm": true, "hot": true, "sweltering": true,
	}
	validWaypoints = map[string]bool{"freezing": true, "boiling": true, "body": true}
)

func validateEnumAlignment(enriched []domain.Reading) *phase {
	p := &phase{name: "Phase 2: Enum Alignment"}
	for i := range enriched {
		checkReading(p, i, &enriched[i])
	}
	return p
}

func checkReading(p *phase, i int, r *domain.Reading) {
	pf := func(format string, args ...any) {
		p.errorf("record %d (ID %s): "+format, append([]any{i, r.ID}, args...)...)
	}

	if r.ID == "" {
		pf("id is empty")
	} else if r.SensorID != "" && !strings.HasPrefix(r.ID, r.SensorID+"-") {
		pf("id %q doesn't start with sensor prefix %q-", r.ID, r.SensorID)
	}

	if !validUnits[r.Unit] {
		pf("unit %q not in {celsius, fahrenheit, kelvin}", r.Unit)
	}
	if r.Concept != "" && !validConcepts[r.Concept] {
		pf("concept %q not in the comfort vocabulary", r.Concept)
	}
	if r.Waypoint != "" && !validWaypoints[r.Waypoint] {
		pf("waypoint %q not in {freezing, boiling, body}", r.Waypoint)
	}
	if r.Unit == "kelvin" && r.Concept != "" {
		pf("kelvin reading carries concept %q", r.Concept)
	}
	if r.Concept != "" && r.ConceptRange == nil {
		pf("concept %q without a concept_range", r.Concept)
	}
	if r.Display == "" {
		pf("display is empty")
	}
	if r.CapturedAt.IsZero() {
		pf("captured_at is zero")
	}
	if r.ProcessedAt.IsZero() {
		pf("processed_at is zero")
	}
}

// ── Helpers ──

func floatEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func ptrFloatEq(a, b *float64) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return floatEq(*a, *b)
}
