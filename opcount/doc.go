// Package opcount generates delete-relaxation operator-counting
// constraints (Rankooh and Rintanen, ICAPS 2022) and keeps them in
// sync with the search state.
//
// The generator consumes a task and its vertex elimination graph and
// emits, into a shared lp.Program, the constraint system whose
// feasible operator-usage-count vectors over-approximate real plans:
//
//   - reachability variables f_p (fact p is reached),
//   - achiever-selection variables f_{p,a} (operator a is the unique
//     achiever of p),
//   - ordering variables e_{i,j}, one per edge of the closed
//     elimination graph — never the full O(n²) fact-pair grid,
//
// linked by seven constraint families: reachability definition,
// achiever-precondition linkage, goal fixation (a variable bound, not
// a row), achiever-usage linkage against the surrounding framework's
// operator-count columns, order-achiever linkage, anti-symmetry and
// shortcut transitivity.
//
// Per-state protocol:
//
//	Initialize builds the program once per task; afterwards only
//	Update runs, once per evaluated state, immediately before each
//	solve. Update patches the bounds of the reachability-definition
//	rows of the facts that changed truth — O(|previous| + |new|),
//	no structural change ever — so the caller may warm-start the
//	solver. The program's minimal objective value is an admissible
//	estimate of the remaining plan cost.
//
// Options:
//
//	– WithIntegerVars() – auxiliary variables become exact binaries
//	  when the solver runs in MIP mode (tighter, slower).
//	– WithTimeVars()    – reserved: the timing-variable constraint
//	  family of the underlying theory is intentionally unimplemented;
//	  requesting it fails fast with ErrTimeVarsUnsupported rather
//	  than silently building an incomplete model.
//	– WithVerbose()     – attach human-readable column labels and log
//	  build statistics. Diagnostic only; never changes the model.
//
// Errors (sentinel):
//
//	– ErrNilTask            if the provided task pointer is nil.
//	– ErrTimeVarsUnsupported if WithTimeVars() is requested.
//
// Everything else — an unknown fact, operator or edge reference — is
// a contract violation and panics (fatal precondition failure); the
// solver's own infeasible/unbounded outcome is propagated unchanged
// by the caller and never touched here.
//
// Complexity:
//
//	– Initialize: O(columns + rows) emitted, dominated by
//	  Σ|pre(a)|·|eff(a)| and the elimination closure size.
//	– Update: O(|previous state| + |new state|), allocation-free
//	  after the first call.
package opcount
