// Command routegraph answers structural questions about a flight-route
// network: sizes and components, busiest airports, degree distribution,
// diameter, fewest-flights routes and betweenness centrality.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
