// Package lvlplan is your in-process toolkit for admissible
// operator-counting LP constraints over classical planning tasks —
// from the task data model to the delete-relaxation constraint
// system of Rankooh and Rintanen (ICAPS 2022).
//
// 🚀 What is lvlplan?
//
//	A modern, deterministic library that brings together:
//		• Task primitives: SAS⁺-style variables, facts, operators & goals
//		• LP objects: a mutable program (columns, sparse rows, bounds)
//		  plus a black-box solver surface
//		• Vertex elimination graphs: fact-precedence completion that
//		  bounds the number of ordering constraints
//		• Operator counting: delete-relaxation constraint generation
//		  and O(|state|) per-state bound updates
//
// ✨ Why choose lvlplan?
//
//   - Deterministic – canonical tie-breaks and sorted iteration make
//     every build byte-for-byte reproducible
//   - Solver-agnostic – the LP/MIP solver stays a black box behind a
//     small bound-patching interface
//   - Pure Go core – no cgo; plug in whichever solver binding you like
//
// Under the hood, everything is organized under four subpackages:
//
//	task/    — fundamental Fact, Variable, Operator, Task & State types
//	lp/      — linear program object, sparse constraint rows & Solver surface
//	vegraph/ — vertex elimination graph over fact precedence
//	opcount/ — delete-relaxation constraint generator + state bound updater
//
// Quick ASCII example:
//
//	    pre(a) ───▶ eff(a)
//
//	one edge per (precondition, effect) pair of each operator; the
//	elimination closure of these edges is exactly the set of ordering
//	variables the LP needs — never the full O(n²) grid.
//
// Dive into each package's doc.go for the algorithms, complexity
// notes and runnable examples.
//
//	go get github.com/katalvlaran/lvlplan
package lvlplan
