package services

import (
	"storefront/internal/core/domain/model/status"
	"storefront/internal/core/domain/model/transition"
	"storefront/internal/pkg/errs"
)

// TransitionPolicy decides whether an order may move between two statuses.
//
// In permissive mode every move between existing statuses is allowed and no status is
// terminal. In strict mode a move needs an explicit edge, and a status without
// outbound edges is terminal.
//
// Example usage:
//
//	policy := services.NewTransitionPolicy(cfg.EnforceTransitionGraph)
//	if err := policy.Check(current, target, graph); err != nil {
//	    // errs.InvalidTransitionError
//	}
type TransitionPolicy struct {
	enforce bool
}

func NewTransitionPolicy(enforce bool) TransitionPolicy {
	return TransitionPolicy{enforce: enforce}
}

// Enforced reports whether the graph is authoritative.
func (p TransitionPolicy) Enforced() bool {
	return p.enforce
}

// Check returns errs.InvalidTransitionError when the policy is strict and the graph
// has no from -> to edge. A nil graph is treated as empty.
func (p TransitionPolicy) Check(from, to *status.Status, graph *transition.Graph) error {
	if !p.enforce {
		return nil
	}
	if graph != nil && graph.Allows(from.ID(), to.ID()) {
		return nil
	}
	return errs.NewInvalidTransitionError(from.Slug().String(), to.Slug().String())
}

// IsTerminal reports whether st has no way out under this policy.
func (p TransitionPolicy) IsTerminal(st *status.Status, graph *transition.Graph) bool {
	if !p.enforce {
		return false
	}
	return graph == nil || graph.IsTerminal(st.ID())
}
