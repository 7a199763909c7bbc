package voxel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosArithmetic(t *testing.T) {
	a := Pos{2, 3, 4}
	b := Pos{1, 2, -1}

	assert.Equal(t, Pos{3, 5, 3}, a.Add(b))
	assert.Equal(t, Pos{1, 1, 5}, a.Sub(b))
	assert.Equal(t, Pos{-2, -3, -4}, a.Neg())
	assert.Equal(t, Pos{2, 6, -4}, a.MulElem(b))
	assert.Equal(t, Pos{-4, 6, -8}, Pos{2, -3, 4}.MulScalar(-2))
}

func TestPosDivElemZeroConvention(t *testing.T) {
	got, err := Pos{2, 2, 0}.DivElem(Pos{1, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, Pos{2, 2, 0}, got)

	_, err = Pos{2, 3, 3}.DivElem(Pos{2, -1, 2})
	assert.ErrorIs(t, err, ErrIndivisible)
}

func TestPosModElemZeroConvention(t *testing.T) {
	assert.Equal(t, Pos{0, 0, 0}, Pos{2, 2, 0}.ModElem(Pos{1, 1, 0}))
	assert.Equal(t, Pos{1, 0, 1}, Pos{3, 0, 3}.ModElem(Pos{2, -1, 2}))
}

func TestPosYRotated(t *testing.T) {
	p := Pos{1, 5, 0}
	assert.Equal(t, p, p.YRotated(0))
	assert.Equal(t, p, p.YRotated(4))
	assert.Equal(t, p, p.YRotated(-4))

	rotated := p
	for i := 0; i < 4; i++ {
		rotated = rotated.YRotated(1)
	}
	assert.Equal(t, p, rotated, "four quarter turns is identity")
}

func TestPosL1AndXZ(t *testing.T) {
	assert.Equal(t, 9, Pos{-2, 3, -4}.L1())
	assert.Equal(t, Pos{2, 0, -4}, Pos{2, 7, -4}.XZ())
}

func TestPosComparison(t *testing.T) {
	assert.True(t, Pos{0, 0, 0}.Less(Pos{0, 0, 1}))
	assert.True(t, Pos{0, 0, 0}.LessEqElem(Pos{1, 0, 0}))
	assert.False(t, Pos{1, -1, 0}.LessEqElem(Pos{0, 0, 0}))
}

func TestDirectionRotation(t *testing.T) {
	assert.Equal(t, West, North.XZRotated(1))
	assert.Equal(t, South, North.XZRotated(2))
	assert.Equal(t, North, North.XZRotated(4))
	assert.Equal(t, South, North.Opposite())
	assert.Equal(t, Down, Up.Opposite())
}

func TestDirectionUnitMatchesYRotation(t *testing.T) {
	for _, d := range XZDirections {
		rotated := d.XZRotated(1)
		assert.Equal(t, rotated.Unit(), d.Unit().YRotated(1))
	}
}

func TestPositionSequence(t *testing.T) {
	seq, err := NewPositionSequence(Pos{0, 0, 0}, Pos{2, 2, 0}, 3)
	require.NoError(t, err)
	assert.Equal(t, []Pos{{0, 0, 0}, {1, 1, 0}, {2, 2, 0}}, seq.Values())

	seq2, err := NewPositionSequence(Pos{-1, -1, 1}, Pos{-5, -5, -3}, 3)
	require.NoError(t, err)
	assert.Equal(t, []Pos{{-1, -1, 1}, {-3, -3, -1}, {-5, -5, -3}}, seq2.Values())

	_, err = NewPositionSequence(Pos{0, 0, 0}, Pos{3, 2, 1}, 3)
	assert.ErrorIs(t, err, ErrNonCollinearStep)
}

func TestPositionSequenceYRotated(t *testing.T) {
	seq, err := NewPositionSequence(Pos{1, 2, 3}, Pos{2, 3, 4}, 2)
	require.NoError(t, err)
	rotated := seq.YRotated(1)
	assert.Equal(t, []Pos{{3, 2, -1}, {4, 3, -2}}, rotated.Values())
}
