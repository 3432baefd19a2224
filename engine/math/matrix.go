package math

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spaghettifunk/wireframe/engine/core"
)

/**
 * @brief Creates a zero-filled matrix with the given shape.
 *
 * @param cols The number of columns (width).
 * @param rows The number of rows (height).
 * @return core.ErrShapeMismatch if either dimension is smaller than 1.
 */
func NewMatrix(cols, rows int) (*Matrix, error) {
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("new matrix [%d %d]: %w", cols, rows, core.ErrShapeMismatch)
	}
	values := make([][]float32, rows)
	backing := make([]float32, cols*rows)
	for r := range values {
		values[r] = backing[r*cols : (r+1)*cols : (r+1)*cols]
	}
	return &Matrix{cols: cols, rows: rows, values: values}, nil
}

/**
 * @brief Creates a matrix from literal row data. The shape is
 * (len(rows[0]), len(rows)).
 *
 * @return core.ErrShapeMismatch if there are no rows or the rows differ in length.
 */
func MatrixFromRows(rows [][]float32) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("matrix from empty rows: %w", core.ErrShapeMismatch)
	}
	cols := len(rows[0])
	out, err := NewMatrix(cols, len(rows))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d values, expected %d: %w", r, len(row), cols, core.ErrShapeMismatch)
		}
		copy(out.values[r], row)
	}
	return out, nil
}

/**
 * @brief Creates a matrix whose elements are fn(col, row).
 */
func MatrixFromFunc(cols, rows int, fn func(col, row int) float32) (*Matrix, error) {
	out, err := NewMatrix(cols, rows)
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out.values[r][c] = fn(c, r)
		}
	}
	return out, nil
}

// Cols returns the width of the matrix.
func (mt *Matrix) Cols() int {
	return mt.cols
}

// Rows returns the height of the matrix.
func (mt *Matrix) Rows() int {
	return mt.rows
}

// Size returns [cols, rows].
func (mt *Matrix) Size() [2]int {
	return [2]int{mt.cols, mt.rows}
}

func (mt *Matrix) inBounds(col, row int) bool {
	return col >= 0 && col < mt.cols && row >= 0 && row < mt.rows
}

/**
 * @brief Returns the element at (col, row).
 *
 * @return core.ErrIndexOutOfBounds when outside the matrix shape.
 */
func (mt *Matrix) Get(col, row int) (float32, error) {
	if !mt.inBounds(col, row) {
		return 0, fmt.Errorf("get (%d, %d) of [%d %d]: %w", col, row, mt.cols, mt.rows, core.ErrIndexOutOfBounds)
	}
	return mt.values[row][col], nil
}

/**
 * @brief Sets the element at (col, row).
 *
 * @return core.ErrIndexOutOfBounds when outside the matrix shape.
 */
func (mt *Matrix) Set(col, row int, value float32) error {
	if !mt.inBounds(col, row) {
		return fmt.Errorf("set (%d, %d) of [%d %d]: %w", col, row, mt.cols, mt.rows, core.ErrIndexOutOfBounds)
	}
	mt.values[row][col] = value
	return nil
}

/**
 * @brief Returns the element-wise sum of mt and other.
 *
 * @return core.ErrShapeMismatch if the shapes differ.
 */
func (mt *Matrix) Add(other *Matrix) (*Matrix, error) {
	if mt.cols != other.cols || mt.rows != other.rows {
		return nil, fmt.Errorf("add [%d %d] + [%d %d]: %w", mt.cols, mt.rows, other.cols, other.rows, core.ErrShapeMismatch)
	}
	return MatrixFromFunc(mt.cols, mt.rows, func(c, r int) float32 {
		return mt.values[r][c] + other.values[r][c]
	})
}

/**
 * @brief Returns a new matrix with the dimensions swapped, out[r][c] = in[c][r].
 */
func (mt *Matrix) Transpose() *Matrix {
	out, _ := MatrixFromFunc(mt.rows, mt.cols, func(c, r int) float32 {
		return mt.values[c][r]
	})
	return out
}

/**
 * @brief Returns the matrix product mt · other, shaped (other.cols, mt.rows).
 *
 * @return core.ErrShapeMismatch unless mt.cols == other.rows.
 */
func (mt *Matrix) Multiply(other *Matrix) (*Matrix, error) {
	if mt.cols != other.rows {
		return nil, fmt.Errorf("multiply [%d %d] x [%d %d]: %w", mt.cols, mt.rows, other.cols, other.rows, core.ErrShapeMismatch)
	}
	out, err := NewMatrix(other.cols, mt.rows)
	if err != nil {
		return nil, err
	}
	for row := 0; row < mt.rows; row++ {
		for col := 0; col < other.cols; col++ {
			sum := float32(0)
			for i := 0; i < mt.cols; i++ {
				sum += mt.values[row][i] * other.values[i][col]
			}
			out.values[row][col] = sum
		}
	}
	return out, nil
}

/**
 * @brief Compares shape and all elements within tolerance.
 */
func (mt *Matrix) Equal(other *Matrix, tolerance float32) bool {
	if mt.cols != other.cols || mt.rows != other.rows {
		return false
	}
	for r := 0; r < mt.rows; r++ {
		for c := 0; c < mt.cols; c++ {
			if kabs(mt.values[r][c]-other.values[r][c]) > tolerance {
				return false
			}
		}
	}
	return true
}

func (mt *Matrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%d %d]\n", mt.cols, mt.rows)
	for r := 0; r < mt.rows; r++ {
		for c := 0; c < mt.cols; c++ {
			if c > 0 {
				sb.WriteByte('\t')
			}
			sb.WriteString(strconv.FormatFloat(float64(mt.values[r][c]), 'g', -1, 32))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
