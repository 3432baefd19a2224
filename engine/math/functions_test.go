package math

import (
	"testing"

	"github.com/spaghettifunk/wireframe/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	assert.Equal(t, NewVec3(5, 7, 9), a.Add(b))
	assert.Equal(t, NewVec3(-3, -3, -3), a.Sub(b))
	assert.Equal(t, NewVec3(4, 10, 18), a.Mul(b))
	assert.Equal(t, NewVec3(0.25, 0.4, 0.5), a.Div(b))
	assert.Equal(t, NewVec3(2, 4, 6), a.MulScalar(2))
	assert.Equal(t, float32(32), a.Dot(b))
	assert.InDelta(t, 3.741657, a.Length(), 1e-5)
	assert.Equal(t, "( 1, 2, 3 )", a.String())
}

func TestVec3Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)
	assert.Equal(t, NewVec3(0, 0, 1), x.Cross(y))

	a := NewVec3(1, 2, 3)
	b := NewVec3(-4, 0.5, 2)
	assert.Equal(t, NewVec3(2*2-3*0.5, 3*-4-1*2, 1*0.5-2*-4), a.Cross(b))
	assert.Equal(t, b.Cross(a).Negate(), a.Cross(b))
}

func TestVec3Normalize(t *testing.T) {
	n, err := NewVec3(3, 0, 4).Normalize()
	require.NoError(t, err)
	assert.True(t, n.Compare(NewVec3(0.6, 0, 0.8), 1e-6))
	assert.InDelta(t, 1, n.Length(), 1e-6)

	_, err = NewVec3Zero().Normalize()
	assert.ErrorIs(t, err, core.ErrDegenerateVector)
}

func TestClampAndAngles(t *testing.T) {
	assert.Equal(t, 3, Clamp(5, 0, 3))
	assert.Equal(t, float32(-1), Clamp(float32(-2), -1, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
	assert.InDelta(t, K_HALF_PI, DegToRad(90), 1e-6)
	assert.InDelta(t, 180, RadToDeg(K_PI), 1e-4)
}
