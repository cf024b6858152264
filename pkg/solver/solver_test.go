package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dshills/seqdiag/pkg/solver"
)

func TestVariablesDefaultToZero(t *testing.T) {
	s := solver.New()
	x := s.NewVar()
	require.NoError(t, s.Solve())
	require.Equal(t, 0.0, s.Value(x))
}

func TestEqualityToConstant(t *testing.T) {
	s := solver.New()
	x := s.NewVar()
	s.Add(solver.NewConstraint(solver.V(x), solver.EQ, solver.K(7), solver.Required))
	require.NoError(t, s.Solve())
	require.Equal(t, 7, s.IntValue(x))
}

func TestInequalityIsTight(t *testing.T) {
	// With the implicit stay-at-0, a lower bound alone is met exactly.
	s := solver.New()
	x := s.NewVar()
	s.Add(solver.NewConstraint(solver.V(x), solver.GE, solver.K(5), solver.Required))
	require.NoError(t, s.Solve())
	require.Equal(t, 5, s.IntValue(x))
}

func TestChainPropagation(t *testing.T) {
	// x >= 3, y >= x + 2, z = y + 1 settles at the least solution.
	s := solver.New()
	x, y, z := s.NewVar(), s.NewVar(), s.NewVar()
	s.Add(solver.NewConstraint(solver.V(x), solver.GE, solver.K(3), solver.Required))
	s.Add(solver.NewConstraint(solver.V(y), solver.GE, solver.V(x).Plus(solver.K(2)), solver.Required))
	s.Add(solver.NewConstraint(solver.V(z), solver.EQ, solver.V(y).Plus(solver.K(1)), solver.Required))
	require.NoError(t, s.Solve())
	require.Equal(t, 3, s.IntValue(x))
	require.Equal(t, 5, s.IntValue(y))
	require.Equal(t, 6, s.IntValue(z))
}

func TestFractionalCoefficients(t *testing.T) {
	// center = left + width/2 style arithmetic stays exact for halves.
	s := solver.New()
	left, width := s.NewVar(), s.NewVar()
	s.Add(solver.NewConstraint(solver.V(width), solver.EQ, solver.K(8), solver.Required))
	center := solver.V(left).Plus(solver.V(width).Times(0.5))
	s.Add(solver.NewConstraint(center, solver.GE, solver.K(21), solver.Required))
	require.NoError(t, s.Solve())
	require.Equal(t, 17, s.IntValue(left))
}

func TestEqualityRaisesEitherSide(t *testing.T) {
	// right = anchor: when the anchor grows, the free side follows.
	s := solver.New()
	anchor, x := s.NewVar(), s.NewVar()
	s.Add(solver.NewConstraint(solver.V(anchor), solver.EQ, solver.K(10), solver.Required))
	s.Add(solver.NewConstraint(solver.V(x), solver.EQ, solver.V(anchor), solver.Required))
	require.NoError(t, s.Solve())
	require.Equal(t, 10, s.IntValue(x))
}

func TestBackPressurePushesAnchoredChain(t *testing.T) {
	// Mirrors the scene shape: a message pinned at left+width must end on
	// a participant center whose width is fixed, so the participant's
	// left coordinate absorbs the push.
	s := solver.New()
	pLeft, pWidth := s.NewVar(), s.NewVar()
	mLeft, mWidth := s.NewVar(), s.NewVar()

	req := solver.Required
	s.Add(solver.NewConstraint(solver.V(pWidth), solver.EQ, solver.K(6), req))
	s.Add(solver.NewConstraint(solver.V(pLeft), solver.GE, solver.K(7), req))
	s.Add(solver.NewConstraint(solver.V(mLeft), solver.EQ, solver.K(4), req))
	s.Add(solver.NewConstraint(solver.V(mWidth), solver.GE, solver.K(16), req))
	center := solver.V(pLeft).Plus(solver.V(pWidth).Times(0.5))
	right := solver.V(mLeft).Plus(solver.V(mWidth))
	s.Add(solver.NewConstraint(right, solver.EQ, center, req))
	s.Add(solver.NewConstraint(center, solver.GE, right, req))

	require.NoError(t, s.Solve())
	require.Equal(t, 17, s.IntValue(pLeft))
	require.Equal(t, 16, s.IntValue(mWidth))
	require.Equal(t, 6, s.IntValue(pWidth))
}

func TestInfeasibleEqualities(t *testing.T) {
	s := solver.New()
	x := s.NewVar()
	s.Add(solver.NewConstraint(solver.V(x), solver.EQ, solver.K(1), solver.Required))
	s.Add(solver.NewConstraint(solver.V(x), solver.EQ, solver.K(2), solver.Required))
	require.ErrorIs(t, s.Solve(), solver.ErrUnsatisfiable)
}

func TestInfeasibleBounds(t *testing.T) {
	s := solver.New()
	x := s.NewVar()
	s.Add(solver.NewConstraint(solver.V(x), solver.GE, solver.K(5), solver.Required))
	s.Add(solver.NewConstraint(solver.V(x), solver.LE, solver.K(3), solver.Required))
	require.ErrorIs(t, s.Solve(), solver.ErrUnsatisfiable)
}

func TestUpperBoundAloneHolds(t *testing.T) {
	s := solver.New()
	x := s.NewVar()
	s.Add(solver.NewConstraint(solver.V(x), solver.LE, solver.K(3), solver.Required))
	require.NoError(t, s.Solve())
	require.Equal(t, 0, s.IntValue(x))
}

func TestWeakConstraintViolationIsNotAnError(t *testing.T) {
	s := solver.New()
	x := s.NewVar()
	s.Add(solver.NewConstraint(solver.V(x), solver.EQ, solver.K(2), solver.Required))
	s.Add(solver.NewConstraint(solver.V(x), solver.LE, solver.K(1), solver.Weak))
	require.NoError(t, s.Solve())
	require.Equal(t, 2, s.IntValue(x))
}

func TestOptionalConstraintAppliesWhenFree(t *testing.T) {
	s := solver.New()
	x := s.NewVar()
	s.Add(solver.NewConstraint(solver.V(x), solver.GE, solver.K(4), solver.Strong))
	require.NoError(t, s.Solve())
	require.Equal(t, 4, s.IntValue(x))
}

func TestDeterministicAcrossRuns(t *testing.T) {
	build := func() []int {
		s := solver.New()
		vars := make([]solver.Variable, 6)
		for i := range vars {
			vars[i] = s.NewVar()
		}
		req := solver.Required
		s.Add(solver.NewConstraint(solver.V(vars[0]), solver.GE, solver.K(0), req))
		for i := 1; i < len(vars); i++ {
			s.Add(solver.NewConstraint(solver.V(vars[i]), solver.GE,
				solver.V(vars[i-1]).Plus(solver.K(float64(i))), req))
		}
		require.NoError(t, s.Solve())
		out := make([]int, len(vars))
		for i, v := range vars {
			out[i] = s.IntValue(v)
		}
		return out
	}
	require.Equal(t, build(), build())
}
