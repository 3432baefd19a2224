package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func randomPoint(r *rand.Rand) Vec3 {
	return NewVec3(r.Float32()*20-10, r.Float32()*20-10, r.Float32()*20-10)
}

func TestIdentityTransformApply(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	tr := NewTransform()
	for i := 0; i < 100; i++ {
		p := randomPoint(r)
		assert.Equal(t, p, tr.Apply(p))
	}
	assert.Equal(t, NewMat4Identity(), tr.Matrix())
}

func TestRotationsAreOrthogonal(t *testing.T) {
	builders := map[string]func(float32) Mat4{
		"x": NewMat4RotationX,
		"y": NewMat4RotationY,
		"z": NewMat4RotationZ,
	}
	for name, build := range builders {
		for _, angle := range []float32{0, 0.3, K_HALF_PI, 2, K_PI, -1.7, 5.5} {
			rot := build(angle)
			assert.True(t, rot.Mul(rot.Transpose()).Compare(NewMat4Identity(), 1e-6), "axis %s angle %v", name, angle)
		}
	}
}

func TestRotateZRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		theta := r.Float32()*2*K_PI - K_PI
		tr := NewTransform()
		tr.RotateZ(theta)
		tr.RotateZ(-theta)
		p := randomPoint(r)
		assert.True(t, tr.Apply(p).Compare(p, 1e-4), "theta %v point %s", theta, p)
	}
}

func TestRotateComposesInLocalFrame(t *testing.T) {
	tr := NewTransform()
	tr.RotateZ(K_HALF_PI)
	tr.Translate(NewVec3(1, 0, 0))
	assert.True(t, tr.Position().Compare(NewVec3(0, 1, 0), 1e-6), tr.Position().String())

	tr.Reset()
	tr.RotateX(K_HALF_PI)
	got := tr.Apply(NewVec3(0, 1, 0))
	assert.True(t, got.Compare(NewVec3(0, 0, 1), 1e-6), got.String())
}

func TestTranslate(t *testing.T) {
	tr := NewTransform()
	tr.Translate(NewVec3(10, 0, 0))
	tr.Translate(NewVec3(0, -2, 3))
	assert.Equal(t, NewVec3(10, -2, 3), tr.Position())
	assert.Equal(t, NewVec3(11, -1, 4), tr.Apply(NewVec3One()))
	assert.Equal(t, NewVec3One(), tr.ApplyDirection(NewVec3One()))
}

func TestSetPositionMatchesFreshTransform(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	target := NewVec3(4, -5, 6)

	moved := NewTransform()
	moved.Translate(NewVec3(1, 2, 3))
	moved.SetPosition(target)
	fresh := NewTransformFromPosition(target)

	for i := 0; i < 20; i++ {
		p := randomPoint(r)
		assert.Equal(t, fresh.Apply(p), moved.Apply(p))
	}
}

func TestSetPositionKeepsOrientation(t *testing.T) {
	tr := NewTransform()
	tr.RotateY(0.8)
	before := tr.ApplyDirection(NewVec3Forward())
	tr.SetPosition(NewVec3(0, 0, -10))
	assert.Equal(t, before, tr.ApplyDirection(NewVec3Forward()))
	assert.Equal(t, NewVec3(0, 0, -10), tr.Position())
}

func TestTransformInverse(t *testing.T) {
	tr := NewTransformFromPosition(NewVec3(3, 1, -2))
	tr.RotateY(0.6)
	tr.RotateX(-0.2)
	tr.Translate(NewVec3(0, 0, 5))

	rigid := tr.Inverse()
	general, err := tr.Matrix().Inverse()
	require.NoError(t, err)
	assert.True(t, rigid.Compare(general, 1e-5))
	assert.True(t, rigid.Mul(tr.Matrix()).Compare(NewMat4Identity(), 1e-5))
}
