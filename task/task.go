// SPDX-License-Identifier: MIT
//
// File: task.go
// Role: The immutable Task aggregate — validating constructor plus
//       O(1) read-only accessors and flat fact indexing.
// Policy:
//   - All validation happens in NewTask; accessors never re-validate.
//   - A Fact that escaped validation is a caller defect: FactOffset
//     panics rather than returning an error (fatal precondition).

package task

import "fmt"

// Task is an immutable classical planning task: finite-domain
// variables, ground operators and a goal fact set.
//
// Build it once with NewTask; every accessor is read-only and safe to
// call concurrently after construction.
type Task struct {
	variables []Variable
	operators []Operator
	goal      []Fact

	// offsets[v] is the flat index of Fact{v, 0}; numFacts is the
	// total domain size over all variables.
	offsets  []int
	numFacts int
}

// NewTask validates and assembles a Task.
//
// Validation (in order):
//  1. At least one variable (ErrNoVariables); every domain size >= 1
//     (ErrBadDomainSize).
//  2. Every operator's ID equals its index (ErrBadOperatorID) and its
//     cost is nonnegative (ErrNegativeCost).
//  3. Every precondition, effect and goal fact names an in-range
//     (variable, value) pair (ErrFactOutOfRange).
//  4. The goal is non-empty (ErrEmptyGoal).
//
// The input slices are referenced, not copied; callers must not
// mutate them after a successful NewTask.
//
// Complexity: O(V + Σ|pre| + Σ|eff| + |goal|).
func NewTask(variables []Variable, operators []Operator, goal []Fact) (*Task, error) {
	// 1) Variables and the flat-offset table.
	if len(variables) == 0 {
		return nil, ErrNoVariables
	}
	offsets := make([]int, len(variables))
	numFacts := 0
	for i, v := range variables {
		if v.DomainSize < 1 {
			return nil, fmt.Errorf("%w: variable %d has domain size %d", ErrBadDomainSize, i, v.DomainSize)
		}
		offsets[i] = numFacts
		numFacts += v.DomainSize
	}

	t := &Task{
		variables: variables,
		operators: operators,
		goal:      goal,
		offsets:   offsets,
		numFacts:  numFacts,
	}

	// 2) + 3) Operators: stable ids, costs, fact ranges.
	for i, op := range operators {
		if op.ID != i {
			return nil, fmt.Errorf("%w: operator %d declares ID %d", ErrBadOperatorID, i, op.ID)
		}
		if op.Cost < 0 {
			return nil, fmt.Errorf("%w: operator %d has cost %d", ErrNegativeCost, i, op.Cost)
		}
		for _, f := range op.Preconditions {
			if !t.contains(f) {
				return nil, fmt.Errorf("%w: operator %d precondition %s", ErrFactOutOfRange, i, f)
			}
		}
		for _, f := range op.Effects {
			if !t.contains(f) {
				return nil, fmt.Errorf("%w: operator %d effect %s", ErrFactOutOfRange, i, f)
			}
		}
	}

	// 4) Goal.
	if len(goal) == 0 {
		return nil, ErrEmptyGoal
	}
	for _, f := range goal {
		if !t.contains(f) {
			return nil, fmt.Errorf("%w: goal fact %s", ErrFactOutOfRange, f)
		}
	}

	return t, nil
}

// contains reports whether f names an in-range (variable, value) pair.
func (t *Task) contains(f Fact) bool {
	return f.Var >= 0 && f.Var < len(t.variables) &&
		f.Value >= 0 && f.Value < t.variables[f.Var].DomainSize
}

// NumVariables returns the number of finite-domain variables. O(1).
func (t *Task) NumVariables() int { return len(t.variables) }

// Variable returns the i-th variable. O(1).
func (t *Task) Variable(i int) Variable { return t.variables[i] }

// NumOperators returns the number of ground operators. O(1).
func (t *Task) NumOperators() int { return len(t.operators) }

// Operator returns the i-th operator. The returned value shares the
// underlying precondition/effect slices; treat them as read-only. O(1).
func (t *Task) Operator(i int) Operator { return t.operators[i] }

// Operators returns the full operator list; treat it as read-only. O(1).
func (t *Task) Operators() []Operator { return t.operators }

// Goal returns the goal fact set; treat it as read-only. O(1).
func (t *Task) Goal() []Fact { return t.goal }

// NumFacts returns the total number of facts (sum of domain sizes). O(1).
func (t *Task) NumFacts() int { return t.numFacts }

// FactOffset maps f to its dense index in [0, NumFacts()).
//
// Panics if f is out of range: any fact reaching this point escaped
// NewTask validation and indicates a defect in the caller, never a
// recoverable runtime condition. O(1).
func (t *Task) FactOffset(f Fact) int {
	if !t.contains(f) {
		panic(fmt.Sprintf("task: fact %s out of range", f))
	}

	return t.offsets[f.Var] + f.Value
}

// Facts returns all facts of the task in canonical (variable, value)
// order. The slice is freshly allocated on each call. O(NumFacts()).
func (t *Task) Facts() []Fact {
	facts := make([]Fact, 0, t.numFacts)
	for v := range t.variables {
		for val := 0; val < t.variables[v].DomainSize; val++ {
			facts = append(facts, Fact{Var: v, Value: val})
		}
	}

	return facts
}

// FactName renders f using the owning variable's Name when set,
// falling back to Fact.String(). Debug output only. O(1).
func (t *Task) FactName(f Fact) string {
	if t.contains(f) && t.variables[f.Var].Name != "" {
		return fmt.Sprintf("%s=%d", t.variables[f.Var].Name, f.Value)
	}

	return f.String()
}

// FullState builds a State assigning values[v] to every variable v.
//
// Panics if len(values) differs from NumVariables() or any value is
// out of range — states built here feed straight into bound updates,
// so a malformed one is a caller defect.
func (t *Task) FullState(values ...int) State {
	if len(values) != len(t.variables) {
		panic(fmt.Sprintf("task: FullState got %d values for %d variables", len(values), len(t.variables)))
	}
	s := make(State, len(values))
	for v, val := range values {
		f := Fact{Var: v, Value: val}
		if !t.contains(f) {
			panic(fmt.Sprintf("task: FullState value %d out of range for variable %d", val, v))
		}
		s[v] = f
	}

	return s
}
