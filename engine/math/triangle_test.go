package math

import (
	"testing"

	"github.com/spaghettifunk/wireframe/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// facingZ has (a - b) x (c - b) along +z.
var facingZ = NewTriangle(NewVec3(1, 0, 0), NewVec3(0, 0, 0), NewVec3(0, 1, 0))

func TestFaceNormal(t *testing.T) {
	n, err := facingZ.FaceNormal()
	require.NoError(t, err)
	assert.Equal(t, NewVec3(0, 0, 1), n)

	flipped := NewTriangle(facingZ.C, facingZ.B, facingZ.A)
	n, err = flipped.FaceNormal()
	require.NoError(t, err)
	assert.Equal(t, NewVec3(0, 0, -1), n)
}

func TestBackfaceCulling(t *testing.T) {
	culled, err := facingZ.IsBackface(NewVec3(0, 0, 1))
	require.NoError(t, err)
	assert.False(t, culled, "facing directly")

	culled, err = facingZ.IsBackface(NewVec3(0, 0, -1))
	require.NoError(t, err)
	assert.True(t, culled, "facing away")

	culled, err = facingZ.IsBackface(NewVec3(1, 0, 0))
	require.NoError(t, err)
	assert.True(t, culled, "edge on")

	culled, err = facingZ.IsBackface(NewVec3(0, 0.99, K_CULL_BIAS))
	require.NoError(t, err)
	assert.False(t, culled, "exactly at the bias")
}

func TestIsCulledFacing(t *testing.T) {
	assert.False(t, IsCulledFacing(1))
	assert.False(t, IsCulledFacing(K_CULL_BIAS))
	assert.True(t, IsCulledFacing(0.0999))
	assert.True(t, IsCulledFacing(0))
	assert.True(t, IsCulledFacing(-1))
}

func TestDegenerateTriangle(t *testing.T) {
	line := NewTriangle(NewVec3(0, 0, 0), NewVec3(1, 1, 1), NewVec3(2, 2, 2))
	_, err := line.FaceNormal()
	assert.ErrorIs(t, err, core.ErrDegenerateVector)
	_, err = line.IsBackface(NewVec3Forward())
	assert.ErrorIs(t, err, core.ErrDegenerateVector)
}

func TestTriangleTransformed(t *testing.T) {
	tr := NewTransformFromPosition(NewVec3(0, 0, 5))
	moved := facingZ.Transformed(&tr)
	assert.Equal(t, [3]Vec3{{1, 0, 5}, {0, 0, 5}, {0, 1, 5}}, moved.Vertices())
	assert.Equal(t, NewVec3(1, 0, 0), facingZ.A)
}
