// Package dataset parses the airport and route files that describe the global
// flight network.
//
// Two formats are supported:
//
//	global-cities.dat   <IATA-code>|<integer-id>|<airport-name>
//	global-net.dat      <id-a> <id-b> [ignored columns...]
//
// Rows are returned in file order without any deduplication; collapsing
// duplicate airports and reversed routes is the graph builder's job.
package dataset

// Airport is one row of the cities file
type Airport struct {
	Code string `json:"code"`
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RawRoute is one row of the routes file, as written (direction not collapsed)
type RawRoute struct {
	From int64 `json:"from"`
	To   int64 `json:"to"`
}

// Dataset holds both parsed files
type Dataset struct {
	Airports []Airport
	Routes   []RawRoute
}

const (
	// FileCities labels metrics and errors for the cities file
	FileCities = "cities"
	// FileRoutes labels metrics and errors for the routes file
	FileRoutes = "routes"

	citiesFieldCount = 3
	routesMinFields  = 2
	maxLineBytes     = 1 << 20
)
