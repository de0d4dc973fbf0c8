// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/waypoint/internal/core/domain"

// NetworkLoader defines the interface for loading route data and its query plan.
//
//go:generate mockgen -source=network_loader.go -destination=mocks/mock_network_loader.go -package=mocks
type NetworkLoader interface {
	// Load reads the route data named by src and returns the parsed network.
	// Malformed route tokens are reported in Network.Rejected rather than as an error.
	Load(src domain.Source) (*domain.Network, error)

	// Resolve returns the absolute routefile path src refers to.
	// It fails for inline and stdin sources, which cannot be watched.
	Resolve(src domain.Source) (string, error)
}
