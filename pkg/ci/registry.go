package ci

import (
	"maps"
	"slices"

	"autobuilder/pkg/domain"
)

// Registry resolves platform clients.
type Registry struct {
	clients map[domain.Platform]Client
}

// NewRegistry indexes clients by their platform. Later clients replace earlier
// ones for the same platform.
func NewRegistry(clients ...Client) *Registry {
	r := &Registry{clients: make(map[domain.Platform]Client, len(clients))}
	for _, c := range clients {
		r.clients[c.Platform()] = c
	}

	return r
}

// Get returns the client for p.
func (r *Registry) Get(p domain.Platform) (Client, bool) {
	c, ok := r.clients[p]

	return c, ok
}

// Platforms lists the platforms with a registered client, sorted.
func (r *Registry) Platforms() []domain.Platform {
	return slices.Sorted(maps.Keys(r.clients))
}
