package linear

import (
	"fmt"

	"go.trai.ch/waypoint/internal/core/domain"
)

type resultsDocument struct {
	Origin  string           `json:"origin"`
	Results []resultDocument `json:"results"`
}

type resultDocument struct {
	Output int    `json:"output"`
	Kind   string `json:"kind"`
	Query  string `json:"query"`
	Value  *int   `json:"value,omitempty"`
	Error  string `json:"error,omitempty"`
}

type graphDocument struct {
	Origin      string         `json:"origin"`
	Nodes       []domain.Node  `json:"nodes"`
	Edges       []edgeDocument `json:"edges"`
	Fingerprint string         `json:"fingerprint"`
	Rejected    []string       `json:"rejected,omitempty"`
}

type edgeDocument struct {
	From     domain.Node `json:"from"`
	To       domain.Node `json:"to"`
	Distance int         `json:"distance"`
}

func newResultsDocument(network *domain.Network, results []domain.Result) resultsDocument {
	doc := resultsDocument{
		Origin:  network.Origin,
		Results: make([]resultDocument, len(results)),
	}
	for i, res := range results {
		entry := resultDocument{
			Output: i + 1,
			Kind:   string(res.Query.Kind),
			Query:  res.Query.String(),
		}
		switch {
		case res.Err == nil:
			v := res.Value
			entry.Value = &v
		case res.NoRoute():
			entry.Error = NoRoute
		default:
			entry.Error = res.Err.Error()
		}
		doc.Results[i] = entry
	}
	return doc
}

func newGraphDocument(network *domain.Network) graphDocument {
	g := network.Graph
	nodes := g.Nodes()
	if nodes == nil {
		nodes = []domain.Node{}
	}
	doc := graphDocument{
		Origin:      network.Origin,
		Nodes:       nodes,
		Edges:       make([]edgeDocument, 0, g.EdgeCount()),
		Fingerprint: fmt.Sprintf("%016x", g.Fingerprint()),
		Rejected:    network.Rejected,
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, edgeDocument{From: e.From, To: e.To, Distance: e.Distance})
	}
	return doc
}
