package opcount_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlplan/lp"
	"github.com/katalvlaran/lvlplan/opcount"
	"github.com/katalvlaran/lvlplan/task"
	"github.com/katalvlaran/lvlplan/vegraph"
)

// fakeSolver records bound patches without solving anything; the
// generator's update protocol is observable entirely through it.
type fakeSolver struct {
	lower map[int]float64
	upper map[int]float64

	lowerCalls int
	upperCalls int
}

func newFakeSolver() *fakeSolver {
	return &fakeSolver{lower: make(map[int]float64), upper: make(map[int]float64)}
}

func (s *fakeSolver) Load(*lp.Program) error { return nil }

func (s *fakeSolver) SetConstraintLowerBound(id int, bound float64) {
	s.lower[id] = bound
	s.lowerCalls++
}

func (s *fakeSolver) SetConstraintUpperBound(id int, bound float64) {
	s.upper[id] = bound
	s.upperCalls++
}

func (s *fakeSolver) Solve() (lp.Result, error) {
	return lp.Result{Status: lp.StatusOptimal}, nil
}

// effectiveBounds returns the row's live bounds: a recorded patch if
// one exists, the built bounds otherwise.
func (s *fakeSolver) effectiveBounds(prog *lp.Program, row int) (float64, float64) {
	lo, hi := prog.Constraint(row).Lower(), prog.Constraint(row).Upper()
	if v, ok := s.lower[row]; ok {
		lo = v
	}
	if v, ok := s.upper[row]; ok {
		hi = v
	}

	return lo, hi
}

// fact is shorthand for building facts in tests.
func fact(v, val int) task.Fact { return task.Fact{Var: v, Value: val} }

// singleOpTask is the end-to-end scenario task: one binary variable,
// one operator flipping 0→1 at cost 1, goal v0=1.
func singleOpTask(t *testing.T) *task.Task {
	t.Helper()
	tsk, err := task.NewTask(
		[]task.Variable{{DomainSize: 2}},
		[]task.Operator{{
			ID:            0,
			Preconditions: []task.Fact{fact(0, 0)},
			Effects:       []task.Fact{fact(0, 1)},
			Cost:          1,
		}},
		[]task.Fact{fact(0, 1)},
	)
	require.NoError(t, err)

	return tsk
}

// cycleTask builds one domain-3 variable whose operators form the
// precedence cycle 0→1→2→0 (forces shortcut edges).
func cycleTask(t *testing.T) *task.Task {
	t.Helper()
	tsk, err := task.NewTask(
		[]task.Variable{{DomainSize: 3}},
		[]task.Operator{
			{ID: 0, Preconditions: []task.Fact{fact(0, 0)}, Effects: []task.Fact{fact(0, 1)}, Cost: 1},
			{ID: 1, Preconditions: []task.Fact{fact(0, 1)}, Effects: []task.Fact{fact(0, 2)}, Cost: 1},
			{ID: 2, Preconditions: []task.Fact{fact(0, 2)}, Effects: []task.Fact{fact(0, 0)}, Cost: 1},
		},
		[]task.Fact{fact(0, 2)},
	)
	require.NoError(t, err)

	return tsk
}

// twoSwitchTask has two independent binary variables, each with one
// switching operator; handy for bound round-trip checks.
func twoSwitchTask(t *testing.T) *task.Task {
	t.Helper()
	tsk, err := task.NewTask(
		[]task.Variable{{DomainSize: 2}, {DomainSize: 2}},
		[]task.Operator{
			{ID: 0, Preconditions: []task.Fact{fact(0, 0)}, Effects: []task.Fact{fact(0, 1)}, Cost: 1},
			{ID: 1, Preconditions: []task.Fact{fact(1, 0)}, Effects: []task.Fact{fact(1, 1)}, Cost: 1},
		},
		[]task.Fact{fact(0, 1), fact(1, 1)},
	)
	require.NoError(t, err)

	return tsk
}

// initProgram creates a program holding one usage-count column per
// operator (objective = cost), the surrounding framework's part of
// the contract, then runs Initialize.
func initProgram(t *testing.T, tsk *task.Task, opts ...opcount.Option) (*opcount.Generator, *lp.Program) {
	t.Helper()
	gen, err := opcount.NewGenerator(tsk, opts...)
	require.NoError(t, err)

	prog := lp.NewProgram()
	for _, op := range tsk.Operators() {
		prog.AddVariable(lp.Variable{Lower: 0, Upper: lp.Infinity(), Objective: float64(op.Cost)})
	}
	gen.Initialize(prog)

	return gen, prog
}

// GeneratorSuite exercises constraint generation and the per-state
// bound-update protocol.
type GeneratorSuite struct {
	suite.Suite
}

// TestConfigurationFailFast covers the sentinel error paths of
// NewGenerator: nil task and the reserved time-variable family.
func (s *GeneratorSuite) TestConfigurationFailFast() {
	_, err := opcount.NewGenerator(nil)
	require.ErrorIs(s.T(), err, opcount.ErrNilTask)

	_, err = opcount.NewGenerator(singleOpTask(s.T()), opcount.WithTimeVars())
	require.ErrorIs(s.T(), err, opcount.ErrTimeVarsUnsupported)
}

// TestEmptyOperatorTask: zero operators must yield one reachability
// row per fact and no achiever or ordering columns.
func (s *GeneratorSuite) TestEmptyOperatorTask() {
	tsk, err := task.NewTask(
		[]task.Variable{{DomainSize: 2}, {DomainSize: 3}},
		nil,
		[]task.Fact{fact(1, 2)},
	)
	require.NoError(s.T(), err)

	gen, prog := initProgram(s.T(), tsk)

	// Columns: only the f_p family (no count columns, no achievers,
	// no ordering variables).
	require.Equal(s.T(), tsk.NumFacts(), prog.NumVariables())
	require.Zero(s.T(), gen.Graph().NumEdges())

	// Rows: exactly one [0,0] reachability definition per fact, each
	// holding the single term f_p.
	require.Equal(s.T(), tsk.NumFacts(), prog.NumConstraints())
	for _, f := range tsk.Facts() {
		row := prog.Constraint(gen.ReachedRow(f))
		require.Equal(s.T(), []lp.Entry{{Var: gen.ReachedColumn(f), Coeff: 1}}, row.Entries())
		require.Zero(s.T(), row.Lower())
		require.Zero(s.T(), row.Upper())
	}

	// Goal fixation raises the variable bound, not a row.
	require.Equal(s.T(), 1.0, prog.Variable(gen.ReachedColumn(fact(1, 2))).Lower)
}

// TestStructuralInvariants: one ordering column per distinct edge of
// the closed graph, and every row coefficient names an existing
// column.
func (s *GeneratorSuite) TestStructuralInvariants() {
	gen, prog := initProgram(s.T(), cycleTask(s.T()))
	graph := gen.Graph()

	// Ordering-variable count == distinct edge count: total columns
	// are count + f_p + f_{p,a} + e_{i,j}.
	numOps, numFacts := 3, 3
	numAchievers := 3 // one effect per operator
	require.Equal(s.T(), numOps+numFacts+numAchievers+graph.NumEdges(), prog.NumVariables())

	// Every referenced column exists.
	for id := 0; id < prog.NumConstraints(); id++ {
		for _, e := range prog.Constraint(id).Entries() {
			require.GreaterOrEqual(s.T(), e.Var, 0)
			require.Less(s.T(), e.Var, prog.NumVariables())
		}
	}

	// Every edge resolves to a live ordering column.
	for _, e := range graph.Edges() {
		col := gen.OrderingColumn(e)
		require.GreaterOrEqual(s.T(), col, numOps+numFacts+numAchievers)
		require.Less(s.T(), col, prog.NumVariables())
	}
}

// TestShortcutTransitivityRows: every shortcut triple (i,j,k) has its
// edges in the final set and exactly one transitivity row referencing
// e_{i,j}, e_{j,k} with +1 and e_{i,k} with −1.
func (s *GeneratorSuite) TestShortcutTransitivityRows() {
	gen, prog := initProgram(s.T(), cycleTask(s.T()))
	graph := gen.Graph()
	require.NotEmpty(s.T(), graph.Shortcuts())

	for _, sc := range graph.Shortcuts() {
		ij := vegraph.Edge{From: sc.From, To: sc.Via}
		jk := vegraph.Edge{From: sc.Via, To: sc.To}
		ik := vegraph.Edge{From: sc.From, To: sc.To}
		require.True(s.T(), graph.HasEdge(ij))
		require.True(s.T(), graph.HasEdge(jk))
		require.True(s.T(), graph.HasEdge(ik))

		matches := 0
		for id := 0; id < prog.NumConstraints(); id++ {
			row := prog.Constraint(id)
			if len(row.Entries()) != 3 {
				continue
			}
			if row.Coefficient(gen.OrderingColumn(ij)) == 1 &&
				row.Coefficient(gen.OrderingColumn(jk)) == 1 &&
				row.Coefficient(gen.OrderingColumn(ik)) == -1 {
				matches++
			}
		}
		require.Equal(s.T(), 1, matches, "shortcut %v needs exactly one transitivity row", sc)
	}
}

// TestAntiSymmetryRows: one row per unordered opposite-edge pair; a
// self-edge accumulates to 2·e ≤ 1.
func (s *GeneratorSuite) TestAntiSymmetryRows() {
	gen, prog := initProgram(s.T(), cycleTask(s.T()))

	// Closed cycle graph: opposite pair (1→2, 2→1) and self-edge 2→2.
	pairCol1 := gen.OrderingColumn(vegraph.Edge{From: fact(0, 1), To: fact(0, 2)})
	pairCol2 := gen.OrderingColumn(vegraph.Edge{From: fact(0, 2), To: fact(0, 1)})
	selfCol := gen.OrderingColumn(vegraph.Edge{From: fact(0, 2), To: fact(0, 2)})

	pairRows, selfRows := 0, 0
	for id := 0; id < prog.NumConstraints(); id++ {
		row := prog.Constraint(id)
		if row.Upper() != 1 || row.Lower() != -lp.Infinity() {
			continue
		}
		switch {
		case row.Coefficient(pairCol1) == 1 && row.Coefficient(pairCol2) == 1 && len(row.Entries()) == 2:
			pairRows++
		case row.Coefficient(selfCol) == 2 && len(row.Entries()) == 1:
			selfRows++
		}
	}
	require.Equal(s.T(), 1, pairRows, "exactly one anti-symmetry row per opposite pair")
	require.Equal(s.T(), 1, selfRows, "self-edge folds into a single 2·e ≤ 1 row")
}

// TestBoundRoundTrip: update(S1) then update(S2) leaves S1-only rows
// at [0,0] and S2 rows at [1,1]; a repeated update(S1) is stable and
// issues no extra patches (no duplicate last-state entries).
func (s *GeneratorSuite) TestBoundRoundTrip() {
	tsk := twoSwitchTask(s.T())
	gen, prog := initProgram(s.T(), tsk)
	solver := newFakeSolver()

	s1 := tsk.FullState(0, 0)
	s2 := tsk.FullState(1, 0)

	// update(S1): both S1 rows fixed to [1,1].
	require.False(s.T(), gen.Update(s1, solver))
	for _, f := range s1 {
		lo, hi := solver.effectiveBounds(prog, gen.ReachedRow(f))
		require.Equal(s.T(), 1.0, lo)
		require.Equal(s.T(), 1.0, hi)
	}

	// update(S2): v0=0 (in S1, not S2) back to [0,0]; S2 rows [1,1].
	require.False(s.T(), gen.Update(s2, solver))
	lo, hi := solver.effectiveBounds(prog, gen.ReachedRow(fact(0, 0)))
	require.Zero(s.T(), lo)
	require.Zero(s.T(), hi)
	for _, f := range s2 {
		lo, hi = solver.effectiveBounds(prog, gen.ReachedRow(f))
		require.Equal(s.T(), 1.0, lo)
		require.Equal(s.T(), 1.0, hi)
	}

	// Two identical updates in a row: bounds unchanged, and the second
	// one issues exactly |S1| resets + |S1| sets — a duplicated
	// last-state record would inflate the call count.
	require.False(s.T(), gen.Update(s1, solver))
	before := solver.lowerCalls
	require.False(s.T(), gen.Update(s1, solver))
	require.Equal(s.T(), before+2*len(s1), solver.lowerCalls)
	for _, f := range s1 {
		lo, hi = solver.effectiveBounds(prog, gen.ReachedRow(f))
		require.Equal(s.T(), 1.0, lo)
		require.Equal(s.T(), 1.0, hi)
	}
}

// TestLifecyclePanics: Initialize twice, Initialize without count
// columns, and Update before Initialize are caller defects.
func (s *GeneratorSuite) TestLifecyclePanics() {
	tsk := singleOpTask(s.T())

	gen, prog := initProgram(s.T(), tsk)
	require.Panics(s.T(), func() { gen.Initialize(prog) })

	fresh, err := opcount.NewGenerator(tsk)
	require.NoError(s.T(), err)
	require.Panics(s.T(), func() { fresh.Initialize(lp.NewProgram()) }, "missing usage-count columns")
	require.Panics(s.T(), func() { fresh.Update(tsk.FullState(0), newFakeSolver()) })
}

// TestIntegerAndVerboseToggles: integrality follows the option and
// labels appear only in verbose mode.
func (s *GeneratorSuite) TestIntegerAndVerboseToggles() {
	tsk := singleOpTask(s.T())

	gen, prog := initProgram(s.T(), tsk, opcount.WithIntegerVars(), opcount.WithVerbose())
	col := prog.Variable(gen.ReachedColumn(fact(0, 1)))
	require.True(s.T(), col.Integer)
	require.Equal(s.T(), "f_v0=1", col.Name)
	ach := prog.Variable(gen.AchieverColumn(fact(0, 1), 0))
	require.True(s.T(), ach.Integer)
	require.Equal(s.T(), "f_v0=1_achieved_by_op0", ach.Name)

	quiet, prog2 := initProgram(s.T(), tsk)
	col2 := prog2.Variable(quiet.ReachedColumn(fact(0, 1)))
	require.False(s.T(), col2.Integer)
	require.Empty(s.T(), col2.Name)
}

// TestEndToEndSingleOperator builds the full model for the one-switch
// task: the program must admit the unit-cost plan as a feasible point
// with objective 1.
func (s *GeneratorSuite) TestEndToEndSingleOperator() {
	tsk := singleOpTask(s.T())
	gen, prog := initProgram(s.T(), tsk)
	solver := newFakeSolver()

	// Edge (v0=0 → v0=1) exists with no shortcuts.
	graph := gen.Graph()
	require.Equal(s.T(), 1, graph.NumEdges())
	require.True(s.T(), graph.HasEdge(vegraph.Edge{From: fact(0, 0), To: fact(0, 1)}))
	require.Empty(s.T(), graph.Shortcuts())

	// Goal reachability variable has lower bound 1.
	require.Equal(s.T(), 1.0, prog.Variable(gen.ReachedColumn(fact(0, 1))).Lower)

	// Fix the initial state {v0=0}.
	require.False(s.T(), gen.Update(tsk.FullState(0), solver))

	// Candidate solution: use the operator once, select it as the
	// achiever of v0=1, order v0=0 before v0=1.
	x := make(map[int]float64)
	x[0] = 1 // count(op0)
	x[gen.ReachedColumn(fact(0, 0))] = 1
	x[gen.ReachedColumn(fact(0, 1))] = 1
	x[gen.AchieverColumn(fact(0, 1), 0)] = 1
	x[gen.OrderingColumn(vegraph.Edge{From: fact(0, 0), To: fact(0, 1)})] = 1
	require.Len(s.T(), x, prog.NumVariables())

	// Every column respects its bounds…
	objective := 0.0
	for id := 0; id < prog.NumVariables(); id++ {
		col := prog.Variable(id)
		require.GreaterOrEqual(s.T(), x[id], col.Lower, "column %d", id)
		require.LessOrEqual(s.T(), x[id], col.Upper, "column %d", id)
		objective += col.Objective * x[id]
	}

	// …and every row, under the state-patched bounds, is satisfied.
	for id := 0; id < prog.NumConstraints(); id++ {
		sum := 0.0
		for _, e := range prog.Constraint(id).Entries() {
			sum += e.Coeff * x[e.Var]
		}
		lo, hi := solver.effectiveBounds(prog, id)
		require.GreaterOrEqual(s.T(), sum, lo, "row %d", id)
		require.LessOrEqual(s.T(), sum, hi, "row %d", id)
	}

	// Heuristic value of the initial state: 1.
	require.Equal(s.T(), 1.0, objective)
}

// TestGeneratorSuite wires the suite into go test.
func TestGeneratorSuite(t *testing.T) {
	suite.Run(t, new(GeneratorSuite))
}
