package analysis

import (
	"errors"
	"fmt"

	"github.com/dd0wney/cluso-routegraph/pkg/algorithms"
	"github.com/dd0wney/cluso-routegraph/pkg/logging"
	"github.com/dd0wney/cluso-routegraph/pkg/routegraph"
)

// Summary counts airports, nodes, routes and components, and sizes the
// largest component.
func (a *Analyzer) Summary() (summary Summary, err error) {
	mode := a.modes.Summary
	done := a.track(QuerySummary, mode)
	defer func() { done(err) }()

	v := a.view(mode)
	if v.largestErr != nil {
		return Summary{}, v.largestErr
	}

	return Summary{
		Mode:         mode,
		Airports:     v.graph.AirportCount(),
		Nodes:        v.graph.NodeCount(),
		Edges:        v.graph.EdgeCount(),
		Components:   len(v.components),
		LargestNodes: v.largest.NodeCount(),
		LargestEdges: v.largest.EdgeCount(),
	}, nil
}

// TopByDegree ranks the airports of the largest component by number of
// routes. Equal degrees keep node insertion order. Airports without a name
// are dropped after the top n are chosen.
func (a *Analyzer) TopByDegree(n int) (ranking []DegreeRank, err error) {
	mode := a.modes.Degree
	done := a.track(QueryDegree, mode, logging.Count(n))
	defer func() { done(err) }()

	g, err := a.LargestComponent(mode)
	if err != nil {
		return nil, err
	}

	degree := algorithms.DegreeCentrality(g)
	scores := make(map[int64]float64, len(degree))
	for id, d := range degree {
		scores[id] = float64(d)
	}

	ranking = make([]DegreeRank, 0, max(n, 0))
	for _, rn := range algorithms.TopNodes(scores, n, byPosition(g)) {
		name, ok := g.Name(rn.NodeID)
		if !ok {
			continue
		}
		ranking = append(ranking, DegreeRank{ID: rn.NodeID, Name: name, Degree: degree[rn.NodeID]})
	}
	return ranking, nil
}

// DegreeDistribution returns the degree histogram of the largest component
func (a *Analyzer) DegreeDistribution() (buckets []algorithms.DegreeBucket, err error) {
	mode := a.modes.Distribution
	done := a.track(QueryDistribution, mode)
	defer func() { done(err) }()

	g, err := a.LargestComponent(mode)
	if err != nil {
		return nil, err
	}
	return algorithms.DegreeDistribution(g), nil
}

// Diameter returns the diameter of the largest component and the
// lexicographically smallest shortest path of that length.
func (a *Analyzer) Diameter() (result DiameterResult, err error) {
	mode := a.modes.Diameter
	done := a.track(QueryDiameter, mode)
	defer func() { done(err) }()

	g, err := a.LargestComponent(mode)
	if err != nil {
		return DiameterResult{}, err
	}

	diameter, path, err := algorithms.DiameterPath(g)
	if err != nil {
		return DiameterResult{}, fmt.Errorf("diameter of largest component: %w", err)
	}

	return DiameterResult{
		Diameter: diameter,
		IDs:      path,
		Names:    g.Names(path),
	}, nil
}

// Route finds the fewest-flights route between two airports given by IATA
// code. Codes resolve through the cities file; the search runs over the whole
// graph of the configured mode.
func (a *Analyzer) Route(fromCode, toCode string) (result RouteResult, err error) {
	mode := a.modes.Route
	done := a.track(QueryRoute, mode, logging.AirportCode("from", fromCode), logging.AirportCode("to", toCode))
	defer func() { done(err) }()

	g := a.Graph(mode)

	from, ok := g.Lookup(fromCode)
	if !ok {
		return RouteResult{}, fmt.Errorf("%w: %s", ErrAirportNotFound, fromCode)
	}
	to, ok := g.Lookup(toCode)
	if !ok {
		return RouteResult{}, fmt.Errorf("%w: %s", ErrAirportNotFound, toCode)
	}
	a.logger.Debug("route endpoints resolved", logging.AirportID("from", from), logging.AirportID("to", to))

	path, err := algorithms.ShortestPath(g, from, to)
	if err != nil {
		if errors.Is(err, algorithms.ErrNoPath) || errors.Is(err, algorithms.ErrNodeNotFound) {
			return RouteResult{}, fmt.Errorf("%w: %s -> %s: %w", ErrNoRoute, fromCode, toCode, err)
		}
		return RouteResult{}, err
	}

	return RouteResult{
		From:  fromCode,
		To:    toCode,
		Hops:  len(path) - 1,
		IDs:   path,
		Names: g.Names(path),
	}, nil
}

// TopByBetweenness ranks the airports of the largest component by normalized
// betweenness centrality. Equal scores go to the smaller id. Airports without
// a name are dropped after the top n are chosen.
func (a *Analyzer) TopByBetweenness(n int) (ranking []CentralityRank, err error) {
	mode := a.modes.Betweenness
	done := a.track(QueryBetweenness, mode, logging.Count(n))
	defer func() { done(err) }()

	g, err := a.LargestComponent(mode)
	if err != nil {
		return nil, err
	}

	ranking = make([]CentralityRank, 0, max(n, 0))
	for _, rn := range algorithms.TopNodes(algorithms.BetweennessCentrality(g), n, algorithms.ByID) {
		name, ok := g.Name(rn.NodeID)
		if !ok {
			continue
		}
		ranking = append(ranking, CentralityRank{ID: rn.NodeID, Name: name, Score: rn.Score})
	}
	return ranking, nil
}

// byPosition ranks nodes inserted earlier first
func byPosition(g *routegraph.Graph) algorithms.TieBreak {
	return func(a, b int64) bool {
		pa, _ := g.Position(a)
		pb, _ := g.Position(b)
		return pa < pb
	}
}
