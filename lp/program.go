// SPDX-License-Identifier: MIT
//
// File: program.go
// Role: The append-only Program container — stable column/row ids and
//       pointer accessors for in-place mutation during construction.
// Policy:
//   - Ids are positional and never reused; nothing is ever removed.
//   - Out-of-range ids are fatal precondition failures (panic), not
//     recoverable errors.

package lp

import "fmt"

// Program is a mutable LP/MIP model: a column list and a row list,
// both append-only. AddVariable and AddConstraint return the stable
// id of the added element; ids are dense and positional.
type Program struct {
	variables   []Variable
	constraints []Constraint
}

// NewProgram returns an empty program.
func NewProgram() *Program { return &Program{} }

// AddVariable appends a column and returns its id. Amortized O(1).
func (p *Program) AddVariable(v Variable) int {
	p.variables = append(p.variables, v)

	return len(p.variables) - 1
}

// AddConstraint appends a row and returns its id. Amortized O(1).
func (p *Program) AddConstraint(c Constraint) int {
	p.constraints = append(p.constraints, c)

	return len(p.constraints) - 1
}

// NumVariables returns the number of columns. O(1).
func (p *Program) NumVariables() int { return len(p.variables) }

// NumConstraints returns the number of rows. O(1).
func (p *Program) NumConstraints() int { return len(p.constraints) }

// Variable returns a pointer to column id for in-place mutation
// (e.g. raising a lower bound during goal fixation).
//
// Panics on an out-of-range id: a generator holding a bad column id
// is defective, and continuing would silently build a wrong model. O(1).
func (p *Program) Variable(id int) *Variable {
	if id < 0 || id >= len(p.variables) {
		panic(fmt.Sprintf("lp: column id %d out of range [0,%d)", id, len(p.variables)))
	}

	return &p.variables[id]
}

// Constraint returns a pointer to row id for in-place assembly.
//
// Panics on an out-of-range id (same rationale as Variable). O(1).
func (p *Program) Constraint(id int) *Constraint {
	if id < 0 || id >= len(p.constraints) {
		panic(fmt.Sprintf("lp: row id %d out of range [0,%d)", id, len(p.constraints)))
	}

	return &p.constraints[id]
}
