package domain

// Waypoint is a fixed, named reference temperature used for landmark
// annotation on the scale.
type Waypoint int

const (
	WaypointNone Waypoint = iota
	Freezing
	Boiling
	BodyTemperature
)

// waypointOrder lists the real waypoints for iteration.
var waypointOrder = [...]Waypoint{Freezing, Boiling, BodyTemperature}

func (w Waypoint) String() string {
	switch w {
	case Freezing:
		return "freezing"
	case Boiling:
		return "boiling"
	case BodyTemperature:
		return "body"
	default:
		return "none"
	}
}

// Label returns the annotation text for the waypoint.
func (w Waypoint) Label() string {
	switch w {
	case Freezing:
		return "Freezing"
	case Boiling:
		return "Boiling"
	case BodyTemperature:
		return "Body Temperature"
	default:
		return ""
	}
}

// Resolve returns the waypoint's fixed temperature. WaypointNone resolves to
// the zero value and should not be resolved by callers.
func (w Waypoint) Resolve() Temperature {
	switch w {
	case Freezing:
		return NewTemperature(0, Celsius)
	case Boiling:
		return NewTemperature(100, Celsius)
	case BodyTemperature:
		return NewTemperature(37, Celsius)
	default:
		return Temperature{}
	}
}

// IdentifyWaypoint returns the waypoint whose resolved value exactly equals
// the given value on the canonical scale, or WaypointNone. Identification is
// strict equality; 99.9 °C is not boiling.
func IdentifyWaypoint(t Temperature) Waypoint {
	for _, w := range waypointOrder {
		if w.Resolve().Equal(t) {
			return w
		}
	}
	return WaypointNone
}
