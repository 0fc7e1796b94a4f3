// Package domain models thermometer readings on a comfort scale.
//
// # Temperature values
//
// A Temperature is an immutable (magnitude, unit) pair over Celsius,
// Fahrenheit, and Kelvin. The magnitude is held canonically in Celsius and
// every cross-unit operation pivots through it:
//
//	K = C + 273.15
//	F = C × 1.8 + 32
//	C = (F − 32) / 1.8
//	C = K − 273.15
//
// Equality and ordering are defined on the canonical magnitude only, so
// 32 °F equals 0 °C regardless of how either value was constructed.
// Equality is exact: there is no tolerance. Values built from the same
// magnitude and unit always compare equal; values derived through chained
// floating-point arithmetic may not, and that fragility is accepted because
// waypoint identification ("is this exactly boiling?") depends on exactness.
//
// # Comfort concepts
//
// Readings classify into six ordered buckets, each a closed [min, max]
// interval of magnitudes:
//
//	Metric (°C):   frigid [-15,0] | cold [0,10] | chilly [10,18]
//	               warm [18,26]   | hot [26,33] | sweltering [33,45]
//	Imperial (°F): frigid [10,30] | cold [30,50] | chilly [50,65]
//	               warm [65,78]   | hot [78,92]  | sweltering [92,110]
//
// Both interval ends are inclusive, so a value exactly on a shared boundary
// sits in two buckets; Classify resolves the tie by taking the first match
// in enumeration order, i.e. the lower bucket (0 °C is frigid, not cold).
// Values outside every bucket classify as ConceptNone, which is ordinary
// control flow, not an error.
//
// The two tables were authored independently per system and do not agree
// under conversion: metric frigid [-15,0] °C is [5,32] °F, while the
// imperial table defines frigid as [10,30] °F. The mismatch is inherited
// from the product's original scale definitions and reproduced as-is rather
// than silently corrected.
//
// Kelvin has no bound table. Bucket queries in Kelvin return
// [ErrKelvinRange]; Kelvin readings classify as ConceptNone.
//
// # Waypoints
//
// Three fixed reference points annotate the scale: freezing (0 °C),
// boiling (100 °C), and body temperature (37 °C). A reading is tagged with
// a waypoint only when its canonical magnitude matches exactly.
//
// # ID generation
//
// Reading IDs are deterministic SHA-256 hashes of sensor|magnitude|unit|time.
// This enables idempotent upserts downstream and replay safety without
// distributed coordination. See [generateID].
package domain
