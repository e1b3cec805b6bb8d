package model

// Collector statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Report statuses. The citizen app writes "pending" for new reports; the
// dashboard treats it as unresolved and only ever writes the other two.
const (
	ReportPending    = "pending"
	ReportResolved   = "resolved"
	ReportUnresolved = "unresolved"
)

// WasteType is the kind of garbage a route collects.
type WasteType string

const (
	WasteMalata     WasteType = "Malata"
	WasteDiliMalata WasteType = "Dili Malata"
)

// WasteTypes is the fixed enumeration used by forms and the dashboard breakdown.
var WasteTypes = []WasteType{WasteMalata, WasteDiliMalata}

func (w WasteType) IsValid() bool {
	return w == WasteMalata || w == WasteDiliMalata
}

// RouteNumbers is the fixed set of physical routes in the city.
var RouteNumbers = []string{"1", "2", "3", "4", "5"}

// Frequencies a schedule can run on.
var Frequencies = []string{
	"Daily",
	"Every Monday",
	"Every Tuesday",
	"Every Wednesday",
	"Every Thursday",
	"Every Friday",
	"Every Saturday",
}

// DaysOff a crew can take.
var DaysOff = []string{"Saturday", "Sunday"}

// Areas are the barangays served by the collection service.
var Areas = []string{
	"Gairan",
	"Don Pedro",
	"Polambato",
	"Cayang",
	"TayTayan",
	"Cogon",
	"Sto. Nino",
	"Sudlonon",
	"Lourdes",
	"Carbon",
	"Pandan",
	"Bungtod",
	"ARAPAL Farm",
	"Bungtod (Maharat & Laray)",
	"Dakit (Highway & Provincial Rd)",
	"Malingin Highway",
	"A/B Cogon",
	"Siocon",
	"Odlot",
	"Marangong",
	"Libertad",
	"Guadalupe",
}

// RouteColors is the palette for drawing routes on the map. A route is
// assigned RouteColors[number-1] when the number fits the palette.
var RouteColors = []string{
	"#28a745", // green
	"#007bff", // blue
	"#ffc107", // yellow
	"#6f42c1", // purple
	"#e83e8c", // pink
	"#fd7e14", // orange
	"#17a2b8", // teal
	"#dc3545", // red
	"#20c997", // cyan
	"#343a40", // dark gray
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// IsRouteNumber reports whether v is one of the known route numbers.
func IsRouteNumber(v string) bool { return contains(RouteNumbers, v) }

// IsFrequency reports whether v is a known schedule frequency.
func IsFrequency(v string) bool { return contains(Frequencies, v) }

// IsDayOff reports whether v is a valid day off.
func IsDayOff(v string) bool { return contains(DaysOff, v) }

// IsArea reports whether v is a known barangay.
func IsArea(v string) bool { return contains(Areas, v) }
