package math

import "fmt"

/**
 * @brief Visibility-culling bias. A triangle is culled when the dot product
 * of its face normal and the view direction is below this value, which keeps
 * edge-on triangles at the silhouette from flickering.
 */
const K_CULL_BIAS float32 = 0.1

/**
 * @brief Creates a triangle from three vertices.
 */
func NewTriangle(a, b, c Vec3) Triangle {
	return Triangle{A: a, B: b, C: c}
}

/**
 * @brief Returns the vertices in order a, b, c.
 */
func (t Triangle) Vertices() [3]Vec3 {
	return [3]Vec3{t.A, t.B, t.C}
}

/**
 * @brief Returns normalize((a - b) x (c - b)). Winding decides the sign.
 *
 * @return core.ErrDegenerateVector for zero-area triangles.
 */
func (t Triangle) FaceNormal() (Vec3, error) {
	edge1 := t.A.Sub(t.B)
	edge2 := t.C.Sub(t.B)
	n, err := edge1.Cross(edge2).Normalize()
	if err != nil {
		return Vec3{}, fmt.Errorf("face normal of %s %s %s: %w", t.A, t.B, t.C, err)
	}
	return n, nil
}

/**
 * @brief Reports whether the triangle should be skipped when viewed along
 * viewDirection.
 */
func (t Triangle) IsBackface(viewDirection Vec3) (bool, error) {
	n, err := t.FaceNormal()
	if err != nil {
		return false, err
	}
	return IsCulledFacing(n.Dot(viewDirection)), nil
}

/**
 * @brief The culling rule on a precomputed facing value (normal · view).
 * Equality with K_CULL_BIAS is not culled.
 */
func IsCulledFacing(facing float32) bool {
	return facing < K_CULL_BIAS
}

/**
 * @brief Returns a copy of the triangle with every vertex passed through t.
 */
func (t Triangle) Transformed(transform *Transform) Triangle {
	return Triangle{
		A: transform.Apply(t.A),
		B: transform.Apply(t.B),
		C: transform.Apply(t.C),
	}
}
