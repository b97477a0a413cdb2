// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Domain-facing LP model types: Variable (column), Entry and
//       Constraint (sparse row), plus the Infinity helper.
// Policy:
//   - Pure data plus O(k) row assembly; no solver logic here.
//   - Bounds use ±Infinity() for "unbounded"; nothing else is special.

package lp

import (
	"fmt"
	"math"
)

// Infinity returns the value used for unbounded row/column bounds.
// Solver wrappers translate it to their binding's own infinity.
func Infinity() float64 { return math.Inf(1) }

// Variable is one LP column.
type Variable struct {
	// Lower and Upper bound the column's value. Use ±Infinity() for
	// unbounded sides.
	Lower, Upper float64

	// Objective is the column's coefficient in the (minimized)
	// objective function.
	Objective float64

	// Integer restricts the column to integral values when the solver
	// runs in MIP mode; LP-mode solvers ignore it (continuous
	// relaxation).
	Integer bool

	// Name is an optional human-readable label. Debug output only;
	// generators attach names only when verbose labelling is enabled.
	Name string
}

// Entry is one sparse coefficient of a constraint row.
type Entry struct {
	// Var is the column id the coefficient applies to.
	Var int

	// Coeff is the coefficient value.
	Coeff float64
}

// Constraint is one LP row: Lower <= Σ Coeff·x_Var <= Upper.
//
// Rows are assembled once via Insert and then held structurally
// frozen; per-state bound patches go through the Solver interface,
// not through the Program.
type Constraint struct {
	lower, upper float64
	entries      []Entry
}

// NewConstraint creates an empty row with the given bounds.
func NewConstraint(lower, upper float64) Constraint {
	return Constraint{lower: lower, upper: upper}
}

// Insert adds coeff for column varID, accumulating onto an existing
// entry if the row already references that column.
//
// Panics if varID is negative (contract violation). O(k) in the
// row's entry count.
func (c *Constraint) Insert(varID int, coeff float64) {
	if varID < 0 {
		panic(fmt.Sprintf("lp: negative column id %d in constraint", varID))
	}
	for i := range c.entries {
		if c.entries[i].Var == varID {
			c.entries[i].Coeff += coeff
			return
		}
	}
	c.entries = append(c.entries, Entry{Var: varID, Coeff: coeff})
}

// Lower returns the row's lower bound. O(1).
func (c *Constraint) Lower() float64 { return c.lower }

// Upper returns the row's upper bound. O(1).
func (c *Constraint) Upper() float64 { return c.upper }

// Entries returns the row's sparse coefficients in insertion order;
// treat the slice as read-only. O(1).
func (c *Constraint) Entries() []Entry { return c.entries }

// Coefficient returns the coefficient for column varID, or 0 when the
// row does not reference it. O(k).
func (c *Constraint) Coefficient(varID int) float64 {
	for _, e := range c.entries {
		if e.Var == varID {
			return e.Coeff
		}
	}

	return 0
}
