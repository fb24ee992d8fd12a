package transition

import (
	"storefront/internal/core/domain/model/kernel"
)

// Graph is a read-only adjacency view over a set of edges.
type Graph struct {
	outbound map[kernel.UUID][]*Transition
	inbound  map[kernel.UUID][]*Transition
}

// NewGraph indexes edges by source and target. Invalid edges are ignored.
func NewGraph(edges []*Transition) *Graph {
	g := &Graph{
		outbound: make(map[kernel.UUID][]*Transition, len(edges)),
		inbound:  make(map[kernel.UUID][]*Transition, len(edges)),
	}
	for _, e := range edges {
		if e.Validate() != nil {
			continue
		}
		g.outbound[e.from] = append(g.outbound[e.from], e)
		g.inbound[e.to] = append(g.inbound[e.to], e)
	}
	return g
}

// Allows reports whether an edge from -> to exists.
func (g *Graph) Allows(from, to kernel.UUID) bool {
	for _, e := range g.outbound[from] {
		if e.to.IsEqual(to) {
			return true
		}
	}
	return false
}

// Outbound returns the edges leaving statusID.
func (g *Graph) Outbound(statusID kernel.UUID) []*Transition {
	return g.outbound[statusID]
}

// Inbound returns the edges entering statusID.
func (g *Graph) Inbound(statusID kernel.UUID) []*Transition {
	return g.inbound[statusID]
}

// IsTerminal reports whether no edge leaves statusID.
func (g *Graph) IsTerminal(statusID kernel.UUID) bool {
	return len(g.outbound[statusID]) == 0
}
