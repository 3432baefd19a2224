package math

import (
	"fmt"
	m "math"

	"github.com/spaghettifunk/wireframe/engine/core"
)

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	out_matrix := Mat4{}
	out_matrix.Data[0] = 1.0
	out_matrix.Data[5] = 1.0
	out_matrix.Data[10] = 1.0
	out_matrix.Data[15] = 1.0
	return out_matrix
}

/**
 * @brief Creates a matrix from four rows.
 */
func NewMat4FromRows(r0, r1, r2, r3 [4]float32) Mat4 {
	out_matrix := Mat4{}
	for i, row := range [4][4]float32{r0, r1, r2, r3} {
		copy(out_matrix.Data[i*4:i*4+4], row[:])
	}
	return out_matrix
}

/**
 * @brief Creates and returns a translation matrix. The translation lives
 * in the last column.
 *
 * @param position The position to be used to create the matrix.
 * @return A newly created translation matrix.
 */
func NewMat4Translation(position Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[3] = position.X
	out_matrix.Data[7] = position.Y
	out_matrix.Data[11] = position.Z
	return out_matrix
}

/**
 * @brief Creates a rotation matrix about the x axis (right-hand rule).
 *
 * @param angle_radians The x angle in radians.
 */
func NewMat4RotationX(angle_radians float32) Mat4 {
	c := kcos(angle_radians)
	s := ksin(angle_radians)
	return NewMat4FromRows(
		[4]float32{1, 0, 0, 0},
		[4]float32{0, c, -s, 0},
		[4]float32{0, s, c, 0},
		[4]float32{0, 0, 0, 1},
	)
}

/**
 * @brief Creates a rotation matrix about the y axis (right-hand rule).
 *
 * @param angle_radians The y angle in radians.
 */
func NewMat4RotationY(angle_radians float32) Mat4 {
	c := kcos(angle_radians)
	s := ksin(angle_radians)
	return NewMat4FromRows(
		[4]float32{c, 0, s, 0},
		[4]float32{0, 1, 0, 0},
		[4]float32{-s, 0, c, 0},
		[4]float32{0, 0, 0, 1},
	)
}

/**
 * @brief Creates a rotation matrix about the z axis (right-hand rule).
 *
 * @param angle_radians The z angle in radians.
 */
func NewMat4RotationZ(angle_radians float32) Mat4 {
	c := kcos(angle_radians)
	s := ksin(angle_radians)
	return NewMat4FromRows(
		[4]float32{c, -s, 0, 0},
		[4]float32{s, c, 0, 0},
		[4]float32{0, 0, 1, 0},
		[4]float32{0, 0, 0, 1},
	)
}

/**
 * @brief Creates and returns a perspective matrix. The homogeneous w of a
 * projected point is its view-space z, so the perspective divide happens
 * after multiplication.
 *
 * @param fov_radians The field of view in radians.
 * @param aspect_ratio The aspect ratio (width / height).
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new perspective matrix.
 */
func NewMat4Perspective(fov_radians, aspect_ratio, near_clip, far_clip float32) Mat4 {
	half_tan_fov := ktan(fov_radians * 0.5)
	out_matrix := Mat4{}
	out_matrix.Data[0] = 1.0 / (aspect_ratio * half_tan_fov)
	out_matrix.Data[5] = 1.0 / half_tan_fov
	out_matrix.Data[10] = (-near_clip - far_clip) / (near_clip - far_clip)
	out_matrix.Data[11] = (2.0 * far_clip * near_clip) / (near_clip - far_clip)
	out_matrix.Data[14] = 1.0
	return out_matrix
}

/**
 * @brief Returns the result of multiplying mt and other.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	out_matrix := Mat4{}

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := float32(0)
			for i := 0; i < 4; i++ {
				sum += mt.Data[row*4+i] * other.Data[i*4+col]
			}
			out_matrix.Data[row*4+col] = sum
		}
	}

	return out_matrix
}

/**
 * @brief Multiplies the column vector v by the matrix: out = mt · v.
 */
func (mt Mat4) MulVec4(v Vec4) Vec4 {
	d := &mt.Data
	return Vec4{
		X: d[0]*v.X + d[1]*v.Y + d[2]*v.Z + d[3]*v.W,
		Y: d[4]*v.X + d[5]*v.Y + d[6]*v.Z + d[7]*v.W,
		Z: d[8]*v.X + d[9]*v.Y + d[10]*v.Z + d[11]*v.W,
		W: d[12]*v.X + d[13]*v.Y + d[14]*v.Z + d[15]*v.W,
	}
}

/**
 * @brief Returns a transposed copy of the provided matrix (rows->colums)
 */
func (mt Mat4) Transpose() Mat4 {
	out_matrix := Mat4{}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out_matrix.Data[col*4+row] = mt.Data[row*4+col]
		}
	}
	return out_matrix
}

/**
 * @brief Creates and returns an inverse of the provided matrix using
 * Gauss-Jordan elimination with partial pivoting (float64 internally).
 *
 * @return core.ErrSingularMatrix if the matrix cannot be inverted.
 */
func (mt Mat4) Inverse() (Mat4, error) {
	var a [4][8]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			a[r][c] = float64(mt.Data[r*4+c])
		}
		a[r][4+r] = 1
	}

	for col := 0; col < 4; col++ {
		pivot := col
		for r := col + 1; r < 4; r++ {
			if m.Abs(a[r][col]) > m.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if m.Abs(a[pivot][col]) < 1e-12 {
			return Mat4{}, fmt.Errorf("inverse: %w", core.ErrSingularMatrix)
		}
		a[col], a[pivot] = a[pivot], a[col]

		inv := 1 / a[col][col]
		for c := 0; c < 8; c++ {
			a[col][c] *= inv
		}
		for r := 0; r < 4; r++ {
			if r == col {
				continue
			}
			f := a[r][col]
			if f == 0 {
				continue
			}
			for c := 0; c < 8; c++ {
				a[r][c] -= f * a[col][c]
			}
		}
	}

	out_matrix := Mat4{}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out_matrix.Data[r*4+c] = float32(a[r][4+c])
		}
	}
	return out_matrix, nil
}

// Get returns the element at (row, col).
func (mt Mat4) Get(row, col int) float32 {
	return mt.Data[row*4+col]
}

// Set writes the element at (row, col).
func (mt *Mat4) Set(row, col int, value float32) {
	mt.Data[row*4+col] = value
}

/**
 * @brief Compares all elements within tolerance.
 */
func (mt Mat4) Compare(other Mat4, tolerance float32) bool {
	for i := range mt.Data {
		if kabs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}

/**
 * @brief Converts the matrix into a generic 4x4 Matrix.
 */
func (mt Mat4) ToMatrix() *Matrix {
	out, _ := MatrixFromFunc(4, 4, func(c, r int) float32 {
		return mt.Data[r*4+c]
	})
	return out
}

/**
 * @brief Converts a generic Matrix into a Mat4.
 *
 * @return core.ErrShapeMismatch unless the matrix is 4x4.
 */
func Mat4FromMatrix(matrix *Matrix) (Mat4, error) {
	if matrix.cols != 4 || matrix.rows != 4 {
		return Mat4{}, fmt.Errorf("mat4 from [%d %d]: %w", matrix.cols, matrix.rows, core.ErrShapeMismatch)
	}
	out_matrix := Mat4{}
	for r := 0; r < 4; r++ {
		copy(out_matrix.Data[r*4:r*4+4], matrix.values[r])
	}
	return out_matrix, nil
}
