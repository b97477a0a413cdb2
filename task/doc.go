// SPDX-License-Identifier: MIT

// Package task defines the planning-task data model consumed by the
// rest of lvlplan: finite-domain variables, facts, operators with
// precondition/effect fact sets and nonnegative costs, a goal fact
// set, and search states.
//
// A Fact is a (variable, value) proposition and is an immutable value
// type — it is used as a map key throughout lvlplan, so equality is
// plain struct equality and ordering is lexicographic (Var, Value).
//
// A Task is built once via NewTask, validated eagerly, and held
// immutable afterwards. All downstream builders (vegraph, opcount)
// treat an out-of-range fact or operator reference as a contract
// violation, not a recoverable error: validation happens here, at the
// boundary, and never again.
//
// Flat fact indexing:
//
//	Facts are addressable by a dense offset in [0, NumFacts()):
//	FactOffset(f) = offsets[f.Var] + f.Value. This gives every
//	fact-indexed structure O(1) array access instead of a two-level
//	(variable, value) lookup.
//
// Errors (sentinel):
//
//	– ErrNoVariables         if the task declares no variables.
//	– ErrBadDomainSize       if a variable has domain size < 1.
//	– ErrBadOperatorID       if an operator's ID differs from its index.
//	– ErrNegativeCost        if an operator has negative cost.
//	– ErrFactOutOfRange      if any referenced fact is out of range.
//	– ErrEmptyGoal           if the goal fact set is empty.
//
// Complexity:
//
//	– NewTask: O(V + Σ|pre| + Σ|eff| + |goal|) validation, one pass.
//	– FactOffset, Variable, Operator: O(1).
package task
