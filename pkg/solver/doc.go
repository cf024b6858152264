// Package solver provides a deterministic linear constraint solver for
// layout geometry. Callers allocate variables, express equalities and
// inequalities over affine combinations of them, and read back a
// satisfying assignment.
//
// The solver computes the least non-negative solution of a monotone
// constraint system by bound propagation: every variable starts at zero
// (an implicit weak "stay at 0" preference) and constraints are swept in
// insertion order, each raising its pivot variable just far enough to
// satisfy itself, until a fixpoint is reached. Variable identifiers
// increase monotonically with allocation order, and pivot selection
// depends only on the constraint and the equalities added before it, so
// identical inputs always produce identical assignments.
//
// Required constraints must all hold in the solution; weaker strengths
// (Strong, Medium, Weak) are applied best-effort after the required set
// and never cause an error.
package solver
