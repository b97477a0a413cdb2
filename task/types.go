// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Domain-facing value types (Fact, Variable, Operator, State)
//       and the sentinel errors reported by task construction.
// Policy:
//   - Value types only; no hidden state, no locks, no algorithms here.
//   - Fact is comparable and ordered; it is THE key type of lvlplan.

package task

import (
	"errors"
	"fmt"
)

// Sentinel errors for task construction.
var (
	// ErrNoVariables indicates that the task declares no variables.
	ErrNoVariables = errors.New("task: no variables declared")

	// ErrBadDomainSize indicates a variable whose domain size is < 1.
	ErrBadDomainSize = errors.New("task: variable domain size must be >= 1")

	// ErrBadOperatorID indicates an operator whose ID does not equal its
	// position in the operator list. Stable ids double as column ids in
	// the surrounding operator-counting LP, so the two must agree.
	ErrBadOperatorID = errors.New("task: operator ID must equal its index")

	// ErrNegativeCost indicates an operator with a negative cost.
	ErrNegativeCost = errors.New("task: operator cost must be nonnegative")

	// ErrFactOutOfRange indicates a precondition, effect or goal fact
	// naming a variable or value outside the declared domains.
	ErrFactOutOfRange = errors.New("task: fact out of range")

	// ErrEmptyGoal indicates an empty goal fact set.
	ErrEmptyGoal = errors.New("task: goal fact set is empty")
)

// Fact is a (variable, value) proposition, true or false in a state.
//
// Fact is an immutable comparable value type: it is used directly as
// a map key and inside composite keys everywhere in lvlplan.
type Fact struct {
	// Var is the index of the finite-domain variable.
	Var int

	// Value is the value index within that variable's domain.
	Value int
}

// Compare orders facts lexicographically by (Var, Value).
// Returns a negative value if f < o, zero if equal, positive if f > o.
func (f Fact) Compare(o Fact) int {
	if d := f.Var - o.Var; d != 0 {
		return d
	}

	return f.Value - o.Value
}

// Less reports whether f precedes o in canonical (Var, Value) order.
func (f Fact) Less(o Fact) bool { return f.Compare(o) < 0 }

// String renders the fact as "v<Var>=<Value>", e.g. "v2=1".
func (f Fact) String() string { return fmt.Sprintf("v%d=%d", f.Var, f.Value) }

// Variable describes one finite-domain state variable.
type Variable struct {
	// Name is an optional human-readable label (debug output only).
	Name string

	// DomainSize is the number of values the variable ranges over; >= 1.
	DomainSize int
}

// Operator is one ground action of the planning task.
//
// Preconditions and Effects are ordered fact sets; order is preserved
// exactly as given and downstream builders iterate them in that order.
type Operator struct {
	// ID is the operator's stable identifier. It must equal the
	// operator's index in the task's operator list; the surrounding
	// operator-counting framework uses it as the LP column id of the
	// operator's usage-count variable.
	ID int

	// Name is an optional human-readable label (debug output only).
	Name string

	// Preconditions is the ordered precondition fact set.
	Preconditions []Fact

	// Effects is the ordered effect fact set.
	Effects []Fact

	// Cost is the operator's nonnegative application cost.
	Cost int64
}

// State is the set of facts currently true, exposed as an iterable
// slice. A well-formed state holds exactly one fact per variable;
// lvlplan never verifies this — states come from the search layer,
// which guarantees it.
type State []Fact
