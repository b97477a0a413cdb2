// Package opcount generator: auxiliary column allocation, the seven
// constraint families, and the per-state bound update.
package opcount

import (
	"fmt"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/lvlplan/lp"
	"github.com/katalvlaran/lvlplan/task"
	"github.com/katalvlaran/lvlplan/vegraph"
)

// achieverKey identifies the achiever-selection column f_{p,a}:
// operator op is the unique achiever of effect fact.
type achieverKey struct {
	fact task.Fact
	op   int
}

// Generator emits delete-relaxation operator-counting constraints for
// one task and patches their state-dependent bounds per search state.
//
// A Generator is exclusively owned by one evaluating goroutine for
// the lifetime of its heuristic instance: Initialize runs once, then
// a strict sequence of (Update, solve) pairs.
type Generator struct {
	t    *task.Task
	opts Options

	graph *vegraph.Graph

	// Column ids, populated once by Initialize, read-only afterwards.
	varReached  []int                // fact offset → f_p column
	varAchiever map[achieverKey]int  // (effect, op) → f_{p,a} column
	varEdge     map[vegraph.Edge]int // edge → e_{i,j} column

	// Row ids of the reachability-definition family (the only rows
	// whose bounds depend on the current state).
	conReached []int // fact offset → family-1 row

	// lastState lists the facts whose rows the previous Update fixed
	// to [1,1]; fully replaced on each call.
	lastState []task.Fact
}

// NewGenerator validates the configuration and binds the generator to t.
//
// Fails fast with ErrNilTask or ErrTimeVarsUnsupported; no program is
// touched on failure. The elimination graph is built lazily by
// Initialize, so construction itself is O(1).
func NewGenerator(t *task.Task, opts ...Option) (*Generator, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if t == nil {
		return nil, ErrNilTask
	}
	if cfg.UseTimeVars {
		return nil, ErrTimeVarsUnsupported
	}

	return &Generator{
		t:         t,
		opts:      cfg,
		lastState: make([]task.Fact, 0, t.NumVariables()),
	}, nil
}

// Graph returns the task's closed elimination graph. Valid only after
// Initialize; nil before.
func (g *Generator) Graph() *vegraph.Graph { return g.graph }

// Initialize builds the elimination graph, allocates all auxiliary
// columns and emits every constraint row into prog. Call exactly once
// per task, before the first Update.
//
// Contract: prog must already hold one usage-count column per
// operator, at column id == operator id, created by the surrounding
// operator-counting framework (objective = operator cost). Initialize
// panics if prog holds fewer columns than the task has operators, or
// if called twice.
func (g *Generator) Initialize(prog *lp.Program) {
	if g.conReached != nil {
		panic("opcount: Initialize called twice")
	}
	if prog.NumVariables() < g.t.NumOperators() {
		panic(fmt.Sprintf("opcount: program holds %d columns but the task has %d usage-count operators",
			prog.NumVariables(), g.t.NumOperators()))
	}

	g.graph = vegraph.Build(g.t)
	g.createAuxiliaryColumns(prog)
	g.createConstraints(prog)

	if g.opts.Verbose {
		klog.Infof("opcount: built %d columns / %d rows (%d facts, %d achievers, %d ordering vars, %d shortcuts)",
			prog.NumVariables(), prog.NumConstraints(), g.t.NumFacts(),
			len(g.varAchiever), len(g.varEdge), len(g.graph.Shortcuts()))
	}
}

// auxColumn appends one [0,1] zero-objective auxiliary column whose
// integrality follows the UseIntegerVars option.
func (g *Generator) auxColumn(prog *lp.Program, name string) int {
	v := lp.Variable{Lower: 0, Upper: 1, Integer: g.opts.UseIntegerVars}
	if g.opts.Verbose {
		v.Name = name
	}

	return prog.AddVariable(v)
}

// createAuxiliaryColumns allocates, in deterministic order:
// f_p per fact, f_{p,a} per (operator, effect), and e_{i,j} per edge
// of the closed elimination graph — exactly the final edge set, not
// the O(n²) fact-pair grid.
func (g *Generator) createAuxiliaryColumns(prog *lp.Program) {
	// f_p, in canonical fact order, addressed by flat fact offset.
	g.varReached = make([]int, g.t.NumFacts())
	for _, f := range g.t.Facts() {
		g.varReached[g.t.FactOffset(f)] = g.auxColumn(prog, "f_"+g.t.FactName(f))
	}

	// f_{p,a}, in operator order then effect order.
	g.varAchiever = make(map[achieverKey]int)
	for _, op := range g.t.Operators() {
		for _, eff := range op.Effects {
			key := achieverKey{fact: eff, op: op.ID}
			g.varAchiever[key] = g.auxColumn(prog,
				fmt.Sprintf("f_%s_achieved_by_%s", g.t.FactName(eff), g.opName(op)))
		}
	}

	// e_{i,j}, in canonical edge order (deterministic ids).
	g.varEdge = make(map[vegraph.Edge]int, g.graph.NumEdges())
	for _, e := range g.graph.Edges() {
		g.varEdge[e] = g.auxColumn(prog,
			fmt.Sprintf("e_%s_before_%s", g.t.FactName(e.From), g.t.FactName(e.To)))
	}
}

// createConstraints emits the seven constraint families.
func (g *Generator) createConstraints(prog *lp.Program) {
	infinity := lp.Infinity()
	ops := g.t.Operators()

	/*
	   Family 1 — reachability definition:

	       f_p − Σ_{a : p ∈ eff(a)} f_{p,a} = 0        for every fact p.

	   p is reached iff exactly one achiever was selected for it, or it
	   is true in the current state. The state-dependent part lives in
	   the row bounds: Update patches them to [1,1] for facts true in
	   the state and back to [0,0] otherwise; here every row starts at
	   [0,0]. The first loop creates all rows with the f_p term, the
	   second folds the f_{p,a} terms into the right rows.
	*/
	g.conReached = make([]int, g.t.NumFacts())
	for _, f := range g.t.Facts() {
		row := lp.NewConstraint(0, 0)
		row.Insert(g.reachedColumn(f), 1)
		g.conReached[g.t.FactOffset(f)] = prog.AddConstraint(row)
	}
	for _, op := range ops {
		for _, eff := range op.Effects {
			prog.Constraint(g.reachedRow(eff)).Insert(g.achieverColumn(eff, op.ID), -1)
		}
	}

	/*
	   Family 2 — achiever-precondition linkage:

	       Σ_{a : q ∈ pre(a) ∧ p ∈ eff(a)} f_{p,a} ≤ f_q

	   for every fact pair (q, p) occurring jointly as precondition and
	   effect of some operator. If a selected achiever of p needs q,
	   then q must itself be reached; the row also caps the number of
	   selected achievers per (q, p) pair. Pairs with no operator
	   trivialize to 0 ≤ f_q (already true by variable bounds), so we
	   only emit rows for pairs that actually occur; one row per
	   distinct pair, shared across operators.
	*/
	type pairKey struct{ pre, eff task.Fact }
	pairRows := make(map[pairKey]int)
	for _, op := range ops {
		for _, eff := range op.Effects {
			for _, pre := range op.Preconditions {
				if pre == eff {
					continue
				}
				key := pairKey{pre: pre, eff: eff}
				rowID, ok := pairRows[key]
				if !ok {
					row := lp.NewConstraint(0, 1)
					row.Insert(g.reachedColumn(pre), 1)
					rowID = prog.AddConstraint(row)
					pairRows[key] = rowID
				}
				prog.Constraint(rowID).Insert(g.achieverColumn(eff, op.ID), -1)
			}
		}
	}

	/*
	   Family 3 — goal fixation:

	       f_p = 1 for every goal fact p.

	   Not a row: we raise the lower bound of the (binary) f_p column
	   to 1 instead.
	*/
	for _, goal := range g.t.Goal() {
		prog.Variable(g.reachedColumn(goal)).Lower = 1
	}

	/*
	   Family 4 — achiever-usage linkage:

	       f_{p,a} ≤ count(a) for every operator a and p ∈ eff(a),

	   where count(a) is the operator's usage-count column owned by the
	   surrounding framework (column id == operator id). Selecting a as
	   an achiever forces at least one use of a.
	*/
	for _, op := range ops {
		for _, eff := range op.Effects {
			row := lp.NewConstraint(0, infinity)
			row.Insert(g.achieverColumn(eff, op.ID), -1)
			row.Insert(op.ID, 1)
			prog.AddConstraint(row)
		}
	}

	/*
	   Family 5 — order-achiever linkage:

	       f_{p_j,a} ≤ e_{i,j} for every operator a, p_i ∈ pre(a),
	       p_j ∈ eff(a).

	   Using a as the achiever of p_j forces all of a's preconditions
	   to be ordered no later than p_j. Pairs with p_i == p_j carry no
	   ordering information and have no seed edge; skip them.
	*/
	for _, op := range ops {
		for _, pre := range op.Preconditions {
			for _, eff := range op.Effects {
				if pre == eff {
					continue
				}
				row := lp.NewConstraint(0, infinity)
				row.Insert(g.orderingColumn(vegraph.Edge{From: pre, To: eff}), 1)
				row.Insert(g.achieverColumn(eff, op.ID), -1)
				prog.AddConstraint(row)
			}
		}
	}

	/*
	   Family 6 — anti-symmetry:

	       e_{i,j} + e_{j,i} ≤ 1 for every pair of opposite edges both
	       present in the closed edge set.

	   A 2-cycle in the elimination graph must be broken one way or the
	   other. One row per unordered pair: the canonically smaller
	   orientation emits it, the reverse orientation is skipped. A
	   self-edge (i == j) is its own reverse; its row accumulates to
	   2·e_{i,i} ≤ 1, ruling out self-precedence.
	*/
	for _, e := range g.graph.Edges() {
		reverse := e.Reverse()
		if !g.graph.HasEdge(reverse) || e.Compare(reverse) > 0 {
			continue
		}
		row := lp.NewConstraint(-infinity, 1)
		row.Insert(g.orderingColumn(e), 1)
		row.Insert(g.orderingColumn(reverse), 1)
		prog.AddConstraint(row)
	}

	/*
	   Family 7 — shortcut transitivity:

	       e_{i,j} + e_{j,k} − 1 ≤ e_{i,k}
	       for every shortcut triple (i, j, k).

	   The shortcut edge (i, k) was added while eliminating j, so a
	   cycle through (i, k) stands for cycles through (i, j) and
	   (j, k): if i is not ordered before k, then i-before-j and
	   j-before-k cannot both hold.
	*/
	for _, sc := range g.graph.Shortcuts() {
		row := lp.NewConstraint(-infinity, 1)
		row.Insert(g.orderingColumn(vegraph.Edge{From: sc.From, To: sc.Via}), 1)
		row.Insert(g.orderingColumn(vegraph.Edge{From: sc.Via, To: sc.To}), 1)
		row.Insert(g.orderingColumn(vegraph.Edge{From: sc.From, To: sc.To}), -1)
		prog.AddConstraint(row)
	}
}

// Update rewrites the bounds of the reachability-definition rows to
// reflect state: rows fixed by the previous call go back to [0,0],
// rows of facts true in state go to [1,1], and the last-state record
// is fully replaced. Must run before every solve.
//
// Always returns false — rows and columns are never added or removed,
// only bound scalars change — so the caller may warm-start the
// solver. O(|previous state| + |new state|); the last-state record is
// reused in place, so steady-state calls allocate nothing.
func (g *Generator) Update(state task.State, solver lp.Solver) bool {
	if g.conReached == nil {
		panic("opcount: Update called before Initialize")
	}

	// Unset the previous fixation.
	for _, f := range g.lastState {
		row := g.reachedRow(f)
		solver.SetConstraintLowerBound(row, 0)
		solver.SetConstraintUpperBound(row, 0)
	}
	g.lastState = g.lastState[:0]

	// Fix the facts of the new state.
	for _, f := range state {
		row := g.reachedRow(f)
		solver.SetConstraintLowerBound(row, 1)
		solver.SetConstraintUpperBound(row, 1)
		g.lastState = append(g.lastState, f)
	}

	return false
}

// ReachedColumn returns the f_p column id of fact f. Valid after
// Initialize; panics on an unknown fact. O(1).
func (g *Generator) ReachedColumn(f task.Fact) int { return g.reachedColumn(f) }

// AchieverColumn returns the f_{p,a} column id for effect f of
// operator opID. Panics if opID has no effect f — such a lookup is a
// defect in the caller, never a recoverable condition. O(1).
func (g *Generator) AchieverColumn(f task.Fact, opID int) int { return g.achieverColumn(f, opID) }

// OrderingColumn returns the e_{i,j} column id of edge e. Panics if e
// is not in the closed edge set. O(1).
func (g *Generator) OrderingColumn(e vegraph.Edge) int { return g.orderingColumn(e) }

// ReachedRow returns the reachability-definition row id of fact f —
// the row whose bounds Update patches per state. O(1).
func (g *Generator) ReachedRow(f task.Fact) int { return g.reachedRow(f) }

func (g *Generator) reachedColumn(f task.Fact) int {
	return g.varReached[g.t.FactOffset(f)]
}

func (g *Generator) achieverColumn(f task.Fact, opID int) int {
	id, ok := g.varAchiever[achieverKey{fact: f, op: opID}]
	if !ok {
		panic(fmt.Sprintf("opcount: operator %d has no achiever column for %s", opID, f))
	}

	return id
}

func (g *Generator) orderingColumn(e vegraph.Edge) int {
	id, ok := g.varEdge[e]
	if !ok {
		panic(fmt.Sprintf("opcount: no ordering column for edge %s", e))
	}

	return id
}

func (g *Generator) reachedRow(f task.Fact) int {
	return g.conReached[g.t.FactOffset(f)]
}

// opName renders an operator label for debug output.
func (g *Generator) opName(op task.Operator) string {
	if op.Name != "" {
		return op.Name
	}

	return fmt.Sprintf("op%d", op.ID)
}
