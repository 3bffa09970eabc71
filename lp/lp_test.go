package lp

import (
	"testing"

	"github.com/Stunkymonkey/multi-ch-constructor/cost"
	"github.com/stretchr/testify/assert"
)

func TestSolveWithNoConstraintsReturnsUniformConfig(t *testing.T) {
	solver := NewContractionLp(2)
	config, err := solver.Solve()
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, config[0]+config[1], cost.COST_ACCURACY*10)
}

func TestSolveInfeasibleWhenConstraintsContradict(t *testing.T) {
	solver := NewContractionLp(2)
	// no config on the simplex can satisfy both of these simultaneously
	// with strictly positive margin on each axis alone.
	solver.AddConstraint(cost.Cost{-1, 0})
	solver.AddConstraint(cost.Cost{0, -1})
	solver.AddConstraint(cost.Cost{-1, -1})
	_, err := solver.Solve()
	assert.ErrorIs(t, err, ErrInfeasible)
}

func TestResetClearsConstraints(t *testing.T) {
	solver := NewContractionLp(2)
	solver.AddConstraint(cost.Cost{1, -1})
	assert.Equal(t, 1, solver.ConstraintCount())
	solver.Reset()
	assert.Equal(t, 0, solver.ConstraintCount())
}
