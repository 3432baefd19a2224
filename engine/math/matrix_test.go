package math

import (
	"testing"

	"github.com/spaghettifunk/wireframe/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func randomMatrix(t *testing.T, r *rand.Rand, cols, rows int) *Matrix {
	t.Helper()
	mt, err := MatrixFromFunc(cols, rows, func(int, int) float32 {
		return r.Float32()*2 - 1
	})
	require.NoError(t, err)
	return mt
}

func TestNewMatrixIsZeroFilled(t *testing.T) {
	mt, err := NewMatrix(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, mt.Cols())
	assert.Equal(t, 2, mt.Rows())
	assert.Equal(t, [2]int{3, 2}, mt.Size())
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			v, err := mt.Get(c, r)
			require.NoError(t, err)
			assert.Zero(t, v)
		}
	}

	_, err = NewMatrix(0, 4)
	assert.ErrorIs(t, err, core.ErrShapeMismatch)
}

func TestMatrixFromRows(t *testing.T) {
	mt, err := MatrixFromRows([][]float32{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, mt.Cols())
	assert.Equal(t, 2, mt.Rows())

	v, err := mt.Get(2, 1)
	require.NoError(t, err)
	assert.Equal(t, float32(6), v)

	_, err = MatrixFromRows([][]float32{{1, 2}, {3}})
	assert.ErrorIs(t, err, core.ErrShapeMismatch)
	_, err = MatrixFromRows(nil)
	assert.ErrorIs(t, err, core.ErrShapeMismatch)
}

func TestMatrixGetSetBounds(t *testing.T) {
	mt, err := NewMatrix(2, 2)
	require.NoError(t, err)
	require.NoError(t, mt.Set(1, 0, 7))
	v, err := mt.Get(1, 0)
	require.NoError(t, err)
	assert.Equal(t, float32(7), v)

	for _, idx := range [][2]int{{2, 0}, {0, 2}, {-1, 0}, {0, -1}} {
		_, err := mt.Get(idx[0], idx[1])
		assert.ErrorIs(t, err, core.ErrIndexOutOfBounds, "get %v", idx)
		assert.ErrorIs(t, mt.Set(idx[0], idx[1], 1), core.ErrIndexOutOfBounds, "set %v", idx)
	}
}

func TestMatrixAdd(t *testing.T) {
	a, _ := MatrixFromRows([][]float32{{1, 2}, {3, 4}})
	b, _ := MatrixFromRows([][]float32{{10, 20}, {30, 40}})
	sum, err := a.Add(b)
	require.NoError(t, err)
	want, _ := MatrixFromRows([][]float32{{11, 22}, {33, 44}})
	assert.True(t, sum.Equal(want, 0), sum.String())

	c, _ := NewMatrix(3, 2)
	_, err = a.Add(c)
	assert.ErrorIs(t, err, core.ErrShapeMismatch)
}

func TestMatrixTranspose(t *testing.T) {
	a, _ := MatrixFromRows([][]float32{
		{1, 2, 3},
		{4, 5, 6},
	})
	tr := a.Transpose()
	assert.Equal(t, 2, tr.Cols())
	assert.Equal(t, 3, tr.Rows())
	for r := 0; r < a.Rows(); r++ {
		for c := 0; c < a.Cols(); c++ {
			want, _ := a.Get(c, r)
			got, _ := tr.Get(r, c)
			assert.Equal(t, want, got)
		}
	}
}

func TestMatrixMultiply(t *testing.T) {
	a, _ := MatrixFromRows([][]float32{
		{1, 2, 3},
		{4, 5, 6},
	})
	b, _ := MatrixFromRows([][]float32{
		{7, 8},
		{9, 10},
		{11, 12},
	})
	p, err := a.Multiply(b)
	require.NoError(t, err)
	assert.Equal(t, [2]int{2, 2}, p.Size())
	want, _ := MatrixFromRows([][]float32{
		{58, 64},
		{139, 154},
	})
	assert.True(t, p.Equal(want, 0), p.String())

	_, err = a.Multiply(a)
	assert.ErrorIs(t, err, core.ErrShapeMismatch)
}

func TestMatrixMultiplyIsAssociative(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		a := randomMatrix(t, r, 4, 3)
		b := randomMatrix(t, r, 2, 4)
		c := randomMatrix(t, r, 5, 2)

		ab, err := a.Multiply(b)
		require.NoError(t, err)
		left, err := ab.Multiply(c)
		require.NoError(t, err)

		bc, err := b.Multiply(c)
		require.NoError(t, err)
		right, err := a.Multiply(bc)
		require.NoError(t, err)

		assert.True(t, left.Equal(right, 1e-4), "iteration %d\n%s\n%s", i, left, right)
	}
}

func TestMatrixString(t *testing.T) {
	a, _ := MatrixFromRows([][]float32{{1, 2.5}})
	assert.Equal(t, "[2 1]\n1\t2.5\n", a.String())
}

func TestMat4RoundTripThroughMatrix(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	m4 := Mat4{}
	for i := range m4.Data {
		m4.Data[i] = r.Float32()
	}
	back, err := Mat4FromMatrix(m4.ToMatrix())
	require.NoError(t, err)
	assert.Equal(t, m4, back)

	// Mat4.Mul agrees with the generic multiply.
	other := NewMat4RotationY(0.7)
	generic, err := m4.ToMatrix().Multiply(other.ToMatrix())
	require.NoError(t, err)
	fixed, err := Mat4FromMatrix(generic)
	require.NoError(t, err)
	assert.True(t, m4.Mul(other).Compare(fixed, 1e-6))

	small, _ := NewMatrix(4, 1)
	_, err = Mat4FromMatrix(small)
	assert.ErrorIs(t, err, core.ErrShapeMismatch)
}

func TestMat4Inverse(t *testing.T) {
	m4 := NewMat4Translation(NewVec3(1, -2, 3)).Mul(NewMat4RotationX(0.4)).Mul(NewMat4RotationZ(-1.1))
	inv, err := m4.Inverse()
	require.NoError(t, err)
	assert.True(t, m4.Mul(inv).Compare(NewMat4Identity(), 1e-5))
	assert.True(t, inv.Mul(m4).Compare(NewMat4Identity(), 1e-5))

	_, err = Mat4{}.Inverse()
	assert.ErrorIs(t, err, core.ErrSingularMatrix)
}

func TestMat4Perspective(t *testing.T) {
	near, far := float32(0.1), float32(1000)
	p := NewMat4Perspective(K_HALF_PI, 2, near, far)
	assert.InDelta(t, 0.5, p.Get(0, 0), 1e-6)
	assert.InDelta(t, 1.0, p.Get(1, 1), 1e-6)
	assert.InDelta(t, (-near-far)/(near-far), p.Get(2, 2), 1e-6)
	assert.InDelta(t, 2*far*near/(near-far), p.Get(2, 3), 1e-6)
	assert.Equal(t, float32(1), p.Get(3, 2))
	assert.Equal(t, float32(0), p.Get(3, 3))
}
