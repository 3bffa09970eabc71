// Package lp implements the ContractionLp external collaborator: a
// separation-plane solver that, given the set of dominance constraints
// accumulated so far by a witness search, finds a simplex weight vector
// (a cost.Config) under which the shortcut is not yet known to be
// dominated by any witnessed alternative route - or reports that no such
// config exists.
//
// No LP/simplex implementation exists anywhere in the example pack, so
// this is built on gonum's lp.Simplex, the standard library for this in
// the Go ecosystem.
package lp

import (
	"errors"

	"github.com/Stunkymonkey/multi-ch-constructor/cost"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// ErrInfeasible is returned when no config satisfies the accumulated
// constraints (or the simplex solver fails) - i.e. no weighting keeps
// the shortcut ahead of every witnessed route, and the witness search
// treats the shortcut as unnecessary.
var ErrInfeasible = errors.New("lp: no feasible config satisfies accumulated constraints")

// ContractionLp accumulates linear constraints of the form
//
//	config . direction >= 0
//
// (one per witnessed route that did not dominate the shortcut) and
// solves for a config on the simplex that maximizes the minimum margin
// across all constraints, matching the original contractor's
// cutting-plane main loop: each round either produces a config for the
// witness search to probe, or proves infeasibility, at which point the
// witness search drops the shortcut.
type ContractionLp struct {
	dim        int
	directions [][]float64
}

func NewContractionLp(dim int) *ContractionLp {
	return &ContractionLp{dim: dim}
}

// Reset clears all accumulated constraints, preparing the solver for a
// fresh witness search on a new node pair.
func (self *ContractionLp) Reset() {
	self.directions = self.directions[:0]
}

// AddConstraint records that, for the config to remain plausible, it
// must weight the witnessed route's cost advantage (direction) as
// non-negative: config . direction >= 0. direction is typically
// (altCost - shortcutCost) from a dominance check in the witness search.
func (self *ContractionLp) AddConstraint(direction cost.Cost) {
	d := make([]float64, len(direction))
	copy(d, direction)
	self.directions = append(self.directions, d)
}

func (self *ContractionLp) ConstraintCount() int {
	return len(self.directions)
}

// Solve finds a cost.Config (weights on the probability simplex) that
// maximizes the minimum margin config.direction across all accumulated
// constraints. It returns ErrInfeasible if the maximal margin is
// negative, meaning no config satisfies every constraint simultaneously.
// With no constraints it returns the uniform config.
//
// gonum's lp.Simplex only accepts standard form (A x = b, x >= 0), so the
// problem is built with one slack variable per inequality and t split
// into its positive and negative parts:
//
//	minimize   -t+ + t-
//	subject to sum(w)               = 1
//	           -direction_i.w + (t+ - t-) + s_i = 0,   s_i >= 0
//	           w, t+, t-, s >= 0
func (self *ContractionLp) Solve() (cost.Config, error) {
	d := self.dim
	m := len(self.directions)
	if m == 0 {
		return cost.NewConfig(d), nil
	}
	n := d + 2 + m // weights, t+, t-, one slack per constraint

	c := make([]float64, n)
	c[d] = -1
	c[d+1] = 1

	rows := m + 1
	data := make([]float64, rows*n)
	row := func(i int) []float64 { return data[i*n : (i+1)*n] }

	for i, dir := range self.directions {
		r := row(i)
		for j := 0; j < d; j++ {
			r[j] = -dir[j]
		}
		r[d] = 1
		r[d+1] = -1
		r[d+2+i] = 1
	}
	eq := row(m)
	for j := 0; j < d; j++ {
		eq[j] = 1
	}
	b := make([]float64, rows)
	b[m] = 1

	A := mat.NewDense(rows, n, data)

	_, x, err := lp.Simplex(c, A, b, 1e-10, nil)
	if err != nil {
		return nil, ErrInfeasible
	}

	margin := x[d] - x[d+1]
	if margin < -cost.COST_ACCURACY {
		return nil, ErrInfeasible
	}

	config := make(cost.Config, d)
	copy(config, x[:d])
	return config, nil
}
