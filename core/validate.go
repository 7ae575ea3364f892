// File: validate.go
// Role: Input-contract checks shared by FromParts and the simulators.
// Policy:
//   - Fail fast on the first violation, wrapped with the offending value.
//   - Negative weights are legal here; algorithms decide what they mean.

package core

import "fmt"

// Validate checks that nodes and edges form a well-formed graph and that
// source is a valid node ID. A graph with zero nodes is valid only as an
// empty graph; callers treat it as an explicit empty state before asking
// for a source.
//
// Complexity: O(V + E)
func Validate(nodes []Node, edges []Edge, source NodeID) error {
	if err := validateShape(nodes, edges); err != nil {
		return err
	}
	if source < 0 || int(source) >= len(nodes) {
		return fmt.Errorf("%w: source=%d, nodes=%d", ErrSourceOutOfRange, source, len(nodes))
	}

	return nil
}

// validateShape checks dense node IDs and edge endpoints/IDs.
func validateShape(nodes []Node, edges []Edge) error {
	for i, n := range nodes {
		if n.ID != NodeID(i) {
			return fmt.Errorf("%w: position %d holds id %d", ErrNonDenseIDs, i, n.ID)
		}
	}
	count := NodeID(len(nodes))
	seen := make(map[EdgeID]struct{}, len(edges))
	for _, e := range edges {
		if e.Source < 0 || e.Source >= count {
			return fmt.Errorf("%w: edge %s source=%d", ErrNodeNotFound, e.ID, e.Source)
		}
		if e.Target < 0 || e.Target >= count {
			return fmt.Errorf("%w: edge %s target=%d", ErrNodeNotFound, e.ID, e.Target)
		}
		if e.Source == e.Target {
			return fmt.Errorf("%w: edge %s", ErrSelfLoop, e.ID)
		}
		if e.ID != EdgeIDFor(e.Source, e.Target) {
			return fmt.Errorf("%w: id=%q source=%d target=%d", ErrBadEdgeID, e.ID, e.Source, e.Target)
		}
		if _, dup := seen[e.ID]; dup {
			return errDuplicate(e.Source, e.Target)
		}
		seen[e.ID] = struct{}{}
		if !e.Status.Valid() {
			return fmt.Errorf("%w: edge %s status=%d", ErrBadStatus, e.ID, e.Status)
		}
	}

	return nil
}

func errDuplicate(source, target NodeID) error {
	return fmt.Errorf("%w: %d→%d", ErrDuplicateEdge, source, target)
}
