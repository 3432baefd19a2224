package core

import (
	"errors"
)

var (
	// matrix operation invoked with incompatible dimensions
	ErrShapeMismatch    = errors.New("shape mismatch")
	// matrix element access outside its declared shape
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	// normalize of a zero-length vector
	ErrDegenerateVector = errors.New("degenerate vector")
	// invalid camera or application parameters
	ErrConfiguration    = errors.New("configuration error")
	// inverse of a matrix with zero determinant
	ErrSingularMatrix   = errors.New("singular matrix")
	ErrUnknown          = errors.New("unknown")
)
