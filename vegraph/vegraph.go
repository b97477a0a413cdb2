// Package vegraph construction: seeding, the lazy-invalidation
// elimination queue and the fill-in loop.
//
// Notes on implementation choices:
//
//   - We reuse the "lazy decrease-key" heap idiom: instead of mutating
//     heap entries in place, every in-degree change pushes a fresh
//     entry and the pop loop discards entries whose recorded key no
//     longer matches the fact's live in-degree.
//   - Edge membership lives in a native map (hot path of every
//     shortcut probe); the canonical enumeration lives in a
//     red-black tree keyed by Edge.Compare, filled on the same
//     append-only inserts.
package vegraph

import (
	"container/heap"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/lvlplan/task"
)

// Build constructs the closed elimination graph of t.
//
// Algorithm:
//  1. Seed one edge precondition→effect per (pre, eff) pair of every
//     operator with pre ≠ eff.
//  2. Queue every fact keyed by its current in-degree.
//  3. Repeatedly pop a minimum in-degree fact (lazy invalidation:
//     stale entries are discarded) and eliminate it: add shortcut
//     edges predecessor→successor for all surviving pairs, record the
//     shortcut triples, then re-queue surviving successors whose
//     in-degree may have changed.
//  4. Stop when the queue is exhausted; every fact is eliminated and
//     the edge set is closed.
//
// Ties among equal in-degree facts break by ascending (variable,
// value), so the output is deterministic. O(1) per fact lookup via
// the flat node arena.
func Build(t *task.Task) *Graph {
	g := newGraph(t)

	// 1) Seed precedence edges from operator structure.
	for _, op := range t.Operators() {
		for _, pre := range op.Preconditions {
			for _, eff := range op.Effects {
				if pre != eff {
					g.addEdge(Edge{From: pre, To: eff})
				}
			}
		}
	}

	g.eliminateAll()

	return g
}

// BuildFromEdges constructs the elimination graph of t starting from
// an explicit seed edge set instead of operator structure, with no
// node marked eliminated. Re-running it on a closed edge set must
// reproduce that edge set with no further shortcuts — the idempotence
// property of elimination completion.
func BuildFromEdges(t *task.Task, edges []Edge) *Graph {
	g := newGraph(t)
	for _, e := range edges {
		g.addEdge(e)
	}

	g.eliminateAll()

	return g
}

// newGraph allocates the node arena and empty edge containers.
func newGraph(t *task.Task) *Graph {
	return &Graph{
		t:       t,
		nodes:   make([]node, t.NumFacts()),
		members: make(map[Edge]struct{}),
		sorted:  redblacktree.NewWith(edgeComparator),
	}
}

// addEdge inserts e if absent and wires the adjacency lists. The edge
// set only ever grows; each pair appears at most once. O(1) amortized
// plus O(log E) for the canonical index.
func (g *Graph) addEdge(e Edge) {
	if _, ok := g.members[e]; ok {
		return
	}
	g.members[e] = struct{}{}
	g.sorted.Put(e, nil)
	g.nodeOf(e.From).successors = append(g.nodeOf(e.From).successors, e.To)
	g.nodeOf(e.To).predecessors = append(g.nodeOf(e.To).predecessors, e.From)
}

// nodeOf resolves the arena slot of f. O(1).
func (g *Graph) nodeOf(f task.Fact) *node {
	return &g.nodes[g.t.FactOffset(f)]
}

// eliminateAll runs the full elimination loop over every fact.
func (g *Graph) eliminateAll() {
	// 2) Queue every fact in canonical order, keyed by in-degree.
	pq := make(factPQ, 0, g.t.NumFacts())
	heap.Init(&pq)
	for _, f := range g.t.Facts() {
		g.pushFact(&pq, f)
	}

	// 3) Pop-and-eliminate until the queue is exhausted. An entry is
	//    valid only if its recorded key equals the fact's live
	//    in-degree and the fact is still standing; everything else is
	//    stale and dropped.
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*factItem)
		n := g.nodeOf(item.fact)
		if n.eliminated || n.inDegree != item.key {
			continue
		}
		g.eliminate(&pq, item.fact)
	}
}

// pushFact recomputes f's in-degree (count of non-eliminated
// predecessors) and pushes a fresh queue entry. Eliminated facts are
// never re-queued; their frozen in-degree is left untouched.
func (g *Graph) pushFact(pq *factPQ, f task.Fact) {
	n := g.nodeOf(f)
	if n.eliminated {
		return
	}
	inDegree := 0
	for _, p := range n.predecessors {
		if !g.nodeOf(p).eliminated {
			inDegree++
		}
	}
	n.inDegree = inDegree
	heap.Push(pq, &factItem{fact: f, key: inDegree})
}

// eliminate removes f from the live graph: for every surviving
// (predecessor, successor) pair whose connecting edge is missing, add
// it and record the shortcut triple, then re-queue surviving
// successors (their predecessor sets grew, so their keys changed).
//
// Worst case adds |predecessors|·|successors| edges — the documented
// scalability limit of vertex elimination.
func (g *Graph) eliminate(pq *factPQ, f task.Fact) {
	n := g.nodeOf(f)

	// Collect first, mutate after: membership probes must all see the
	// edge set as it stood when f was selected.
	var fresh []Shortcut
	for _, p := range n.predecessors {
		if g.nodeOf(p).eliminated {
			continue
		}
		for _, s := range n.successors {
			if g.nodeOf(s).eliminated {
				continue
			}
			if !g.HasEdge(Edge{From: p, To: s}) {
				fresh = append(fresh, Shortcut{From: p, Via: f, To: s})
			}
		}
	}

	n.eliminated = true

	for _, sc := range fresh {
		g.addEdge(Edge{From: sc.From, To: sc.To})
		g.shortcuts = append(g.shortcuts, sc)
	}

	// Only successors of f can have a changed key: they lost f as a
	// live predecessor and may have gained shortcut predecessors.
	for _, s := range n.successors {
		if !g.nodeOf(s).eliminated {
			g.pushFact(pq, s)
		}
	}
}

// factItem is one queue entry: a fact and the in-degree recorded when
// the entry was pushed. Stale entries (key ≠ live in-degree) are
// discarded on pop.
type factItem struct {
	fact task.Fact
	key  int
}

// factPQ is a min-heap of *factItem ordered by (key, fact) — the fact
// component makes equal-key pops deterministic.
type factPQ []*factItem

// Len returns the number of items in the heap.
func (pq factPQ) Len() int { return len(pq) }

// Less orders by in-degree key, then canonical fact order.
func (pq factPQ) Less(i, j int) bool {
	if pq[i].key != pq[j].key {
		return pq[i].key < pq[j].key
	}

	return pq[i].fact.Less(pq[j].fact)
}

// Swap swaps two elements in the heap.
func (pq factPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *factItem.
func (pq *factPQ) Push(x interface{}) { *pq = append(*pq, x.(*factItem)) }

// Pop removes and returns the minimum element from the heap.
func (pq *factPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
