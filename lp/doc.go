// SPDX-License-Identifier: MIT

// Package lp defines the mutable linear-program object shared by
// constraint generators and the black-box LP/MIP solver surface that
// consumes it.
//
// A Program is a plain model container: columns (Variable — bounds,
// objective coefficient, integrality flag, optional debug name) and
// rows (Constraint — lower/upper bound plus a sparse coefficient
// list). Generators append columns and rows once at setup; afterwards
// the structure is frozen and only bound scalars change per search
// state, through the Solver interface.
//
// The solver itself is an external collaborator. lvlplan never
// implements one; it talks to whatever binding you wrap behind the
// four-method Solver interface and propagates the solver's own
// optimal/infeasible/unbounded outcome unchanged — never masked,
// never retried.
//
// Contract violations (an out-of-range column or row id) indicate a
// defect in the generator or its caller, never a recoverable runtime
// condition: accessors panic with an "lp:"-prefixed message instead
// of returning an error.
//
// Complexity:
//
//	– AddVariable / AddConstraint: amortized O(1).
//	– Constraint.Insert: O(k) over the row's current k entries
//	  (rows in practice hold a handful of coefficients).
//	– Variable / Constraint accessors: O(1).
package lp
