// Package locations holds the fixed catalog of candidate secret locations. The
// registry treats it as a read-only input: one entry is drawn uniformly at
// random each time a game starts.
package locations

// Catalog lists every location a round can be set in.
var Catalog = []string{
	"Airplane",
	"Amusement Park",
	"Bank",
	"Beach",
	"Casino",
	"Cathedral",
	"Circus Tent",
	"Corporate Party",
	"Day Spa",
	"Embassy",
	"Hospital",
	"Hotel",
	"Military Base",
	"Movie Studio",
	"Museum",
	"Ocean Liner",
	"Passenger Train",
	"Pirate Ship",
	"Polar Station",
	"Police Station",
	"Restaurant",
	"Rock Concert",
	"School",
	"Service Station",
	"Space Station",
	"Submarine",
	"Supermarket",
	"Theater",
	"University",
	"Zoo",
}
