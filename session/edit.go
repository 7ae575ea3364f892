package session

import (
	"fmt"

	"github.com/katalvlaran/spviz/core"
	"github.com/katalvlaran/spviz/timeline"
	"github.com/katalvlaran/spviz/trace"
)

// AddNode places a new node at (x, y) and discards the trace.
func (s *Session) AddNode(x, y float64) core.NodeID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.g.AddNode(x, y)
	s.invalidate()
	return id
}

// AddEdge inserts source→target and discards the trace. Negative weights
// are refused while Dijkstra is selected.
func (s *Session) AddEdge(source, target core.NodeID, weight int64) (core.EdgeID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkWeight(weight); err != nil {
		return "", err
	}
	id, err := s.g.AddEdge(source, target, weight)
	if err != nil {
		return "", fmt.Errorf("session: %w", err)
	}
	s.invalidate()
	return id, nil
}

// SetWeight changes an edge weight and discards the trace.
func (s *Session) SetWeight(id core.EdgeID, weight int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkWeight(weight); err != nil {
		return err
	}
	if err := s.g.SetWeight(id, weight); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	s.invalidate()
	return nil
}

// RemoveEdge deletes an edge and discards the trace.
func (s *Session) RemoveEdge(id core.EdgeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.g.RemoveEdge(id); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	s.invalidate()
	return nil
}

// RemoveNode deletes a node with its edges and discards the trace. A
// source or destination on the removed node is deselected; selections on
// later nodes follow their renumbered IDs.
func (s *Session) RemoveNode(id core.NodeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.g.RemoveNode(id); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	s.source = shift(s.source, id, NoNode)
	s.dest = shift(s.dest, id, timeline.NoDestination)
	s.invalidate()
	return nil
}

// Clear empties the graph and deselects source and destination.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.g.Clear()
	s.source = NoNode
	s.dest = timeline.NoDestination
	s.invalidate()
}

// Reset discards the trace and returns to an unstarted Explore view over
// the same graph.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.g.ResetStatuses()
	s.invalidate()
}

func (s *Session) checkWeight(w int64) error {
	if w < 0 && s.alg == trace.Dijkstra {
		return fmt.Errorf("%w: weight=%d", ErrNegativeWeight, w)
	}
	return nil
}

// shift maps a selection across the removal of node removed.
func shift(sel, removed, none core.NodeID) core.NodeID {
	switch {
	case sel == none:
		return none
	case sel == removed:
		return none
	case sel > removed:
		return sel - 1
	default:
		return sel
	}
}
