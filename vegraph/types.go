// Package vegraph types: edges, shortcut triples and the read-only
// Graph produced by Build.
//
// Edge and Shortcut are comparable value types — Edge is used as a
// map key by consumers mapping edges to ordering-variable ids.
package vegraph

import (
	"fmt"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/lvlplan/task"
)

// Edge is an ordered fact pair (From, To) meaning "From must not be
// ordered after To".
type Edge struct {
	From, To task.Fact
}

// Compare orders edges lexicographically by (From, To) in canonical
// fact order. This is the iteration order of Graph.Edges.
func (e Edge) Compare(o Edge) int {
	if d := e.From.Compare(o.From); d != 0 {
		return d
	}

	return e.To.Compare(o.To)
}

// Reverse returns the opposite orientation of e.
func (e Edge) Reverse() Edge { return Edge{From: e.To, To: e.From} }

// String renders the edge as "from→to" for debug output.
func (e Edge) String() string { return fmt.Sprintf("%s→%s", e.From, e.To) }

// Shortcut records that eliminating Via created the new edge
// (From, To) between one of Via's surviving predecessors and one of
// its surviving successors. Each shortcut later yields exactly one
// transitivity constraint.
type Shortcut struct {
	From, Via, To task.Fact
}

// node is one fact of the precedence graph. Predecessor and successor
// sets are order-irrelevant; inDegree counts non-eliminated
// predecessors and, once the node is eliminated, stays frozen.
type node struct {
	predecessors []task.Fact
	successors   []task.Fact
	eliminated   bool
	inDegree     int
}

// Graph is the closed elimination graph of a task. It is built once
// by Build (or BuildFromEdges) and immutable afterwards.
type Graph struct {
	t *task.Task

	// nodes is a flat arena indexed by task.FactOffset — O(1) access.
	nodes []node

	// members is the append-only edge set (each pair at most once).
	members map[Edge]struct{}

	// sorted indexes the same edges in canonical Compare order, so
	// consumers can assign deterministic, reproducible ids per edge.
	sorted *redblacktree.Tree

	// shortcuts lists shortcut triples in elimination order.
	shortcuts []Shortcut
}

// edgeComparator orders redblacktree keys by Edge.Compare.
func edgeComparator(a, b interface{}) int {
	return a.(Edge).Compare(b.(Edge))
}

// NumEdges returns the size of the closed edge set. O(1).
func (g *Graph) NumEdges() int { return len(g.members) }

// HasEdge reports membership of e in the closed edge set. O(1).
func (g *Graph) HasEdge(e Edge) bool {
	_, ok := g.members[e]

	return ok
}

// Edges returns the closed edge set in canonical Compare order.
// The slice is freshly allocated on each call. O(E).
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.sorted.Size())
	itr := g.sorted.Iterator()
	for itr.Next() {
		edges = append(edges, itr.Key().(Edge))
	}

	return edges
}

// Shortcuts returns the shortcut triples in the order elimination
// produced them; treat the slice as read-only. O(1).
func (g *Graph) Shortcuts() []Shortcut { return g.shortcuts }
