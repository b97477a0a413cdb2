// Package vegraph builds vertex elimination graphs over the fact
// precedence of a planning task.
//
// The precedence graph has one node per fact and one directed edge
// precondition→effect for every (precondition, effect) pair of every
// operator. Repeatedly eliminating a node of minimal in-degree and
// adding "shortcut" edges from its remaining predecessors to its
// remaining successors closes the graph, exactly as in sparse-matrix
// fill-in orderings. The closed edge set bounds the number of
// pairwise ordering constraints a delete-relaxation LP needs — one
// per surviving edge instead of one per O(n²) fact pair — and the
// recorded shortcut triples generate the transitivity constraints.
//
// Complexity:
//
//   - Seeding: O(Σ|pre(a)|·|eff(a)|) over all operators a.
//   - Elimination: each step may add up to |pred|·|succ| new edges;
//     no asymptotic upper bound holds for adversarial precedence
//     structures. This is a documented scalability limit of the
//     technique, not an error condition.
//   - Priority queue: lazy decrease-key via duplicate pushes; a popped
//     entry is valid only if its recorded key still equals the fact's
//     live in-degree, stale entries are discarded on pop.
//
// Determinism:
//
//   - Ties among equal in-degree facts break by ascending
//     (variable, value), so the elimination order — and with it the
//     edge set, the shortcut list and the canonical edge enumeration —
//     is reproducible across runs.
//
// The resulting Graph is immutable: build once per task, read for the
// lifetime of the heuristic.
package vegraph
