package math

import "github.com/google/uuid"

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector. Used both as a point and as a free vector.
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector, typically a homogeneous point (x, y, z, w).
type Vec4 struct {
	X, Y, Z, W float32
}

/** @brief a 4x4 matrix, row-major, typically used to represent object transformations. */
type Mat4 struct {
	/** @brief The matrix elements, Data[row*4+col]. */
	Data [16]float32
}

/**
 * @brief A dense matrix of arbitrary shape. Elements are stored row-major
 * and addressed by (col, row).
 */
type Matrix struct {
	cols   int
	rows   int
	values [][]float32
}

/**
 * @brief Represents the transform of an object in the world as a single
 * homogeneous 4x4 matrix. NOTE: The matrix should not be edited directly,
 * use the functions in transform.go so rotations compose in the object's
 * local frame.
 */
type Transform struct {
	/** @brief The local transformation matrix. */
	local Mat4
}

/**
 * @brief Three vertices in model or world space. Triangles carry no
 * transform of their own; the owning Geometry transforms them on read.
 */
type Triangle struct {
	A, B, C Vec3
}

/**
 * @brief A rigid object: a list of model-space triangles and the
 * transform placing them in the world.
 */
type Geometry struct {
	/** @brief Unique identifier assigned at creation. */
	ID uuid.UUID
	/** @brief The name of the geometry. */
	Name string
	/** @brief Model to world transform, mutated by the caller between frames. */
	Transform Transform
	/** @brief Model space triangles. Never modified by rendering. */
	triangles []Triangle
}
