package ports

import "go.trai.ch/waypoint/internal/core/domain"

// Renderer presents query results and graph summaries to the user.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// RenderResults writes the answers to a query plan, in plan order.
	RenderResults(network *domain.Network, results []domain.Result) error

	// RenderGraph writes a summary of the loaded route graph.
	RenderGraph(network *domain.Network) error
}
