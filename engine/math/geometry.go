package math

import (
	"github.com/google/uuid"
	"github.com/spaghettifunk/wireframe/engine/core"
)

/**
 * @brief Creates an empty geometry with an identity transform.
 *
 * @param name The name of the geometry, used for lookups and logging.
 */
func NewGeometry(name string) *Geometry {
	return &Geometry{
		ID:        uuid.New(),
		Name:      name,
		Transform: NewTransform(),
	}
}

/**
 * @brief Appends a single triangle. No validation or deduplication.
 */
func (g *Geometry) AddTriangle(t Triangle) {
	g.triangles = append(g.triangles, t)
}

/**
 * @brief Appends a batch of triangles in order.
 */
func (g *Geometry) AddTriangles(ts []Triangle) {
	g.triangles = append(g.triangles, ts...)
}

/**
 * @brief Returns a copy of the model space triangles.
 */
func (g *Geometry) Triangles() []Triangle {
	out := make([]Triangle, len(g.triangles))
	copy(out, g.triangles)
	return out
}

func (g *Geometry) TriangleCount() int {
	return len(g.triangles)
}

/**
 * @brief Returns a new list holding every triangle passed through the
 * geometry's transform. The stored model space triangles are not touched,
 * so rotation accumulated on the Transform never drifts the mesh itself.
 */
func (g *Geometry) WorldTriangles() []Triangle {
	out := make([]Triangle, len(g.triangles))
	for i, t := range g.triangles {
		out[i] = t.Transformed(&g.Transform)
	}
	return out
}

// Primitive generators wind every face so that (a - b) x (c - b) points
// into the solid. Under the culling rule this keeps the faces nearer the
// viewer and drops the far ones.

// quad splits a face given counter-clockwise as seen from outside.
func quad(q0, q1, q2, q3 Vec3) [2]Triangle {
	return [2]Triangle{
		{A: q0, B: q1, C: q2},
		{A: q0, B: q2, C: q3},
	}
}

/**
 * @brief Generates the 12 triangles of an axis aligned cube centred at the
 * origin, built from its 8 vertices.
 *
 * @param size The edge length.
 */
func CubeTriangles(size float32) []Triangle {
	h := size * 0.5
	var v [8]Vec3
	for i := range v {
		v[i] = Vec3{-h, -h, -h}
		if i&1 != 0 {
			v[i].X = h
		}
		if i&2 != 0 {
			v[i].Y = h
		}
		if i&4 != 0 {
			v[i].Z = h
		}
	}

	faces := [6][4]int{
		{4, 5, 7, 6}, // +z
		{0, 2, 3, 1}, // -z
		{1, 3, 7, 5}, // +x
		{0, 4, 6, 2}, // -x
		{2, 6, 7, 3}, // +y
		{0, 1, 5, 4}, // -y
	}

	out := make([]Triangle, 0, 12)
	for _, f := range faces {
		q := quad(v[f[0]], v[f[1]], v[f[2]], v[f[3]])
		out = append(out, q[0], q[1])
	}
	return out
}

/**
 * @brief Generates a width x height rectangle in the z = 0 plane whose
 * triangles are kept by a camera looking down +z.
 */
func PlaneTriangles(width, height float32) []Triangle {
	w := width * 0.5
	h := height * 0.5
	q := quad(
		Vec3{-w, -h, 0},
		Vec3{-w, h, 0},
		Vec3{w, h, 0},
		Vec3{w, -h, 0},
	)
	return q[:]
}

/**
 * @brief Generates a square based pyramid centred at the origin: 4 sides
 * and a base split in two, 6 triangles.
 *
 * @param size The base edge length and the height.
 */
func PyramidTriangles(size float32) []Triangle {
	s := size * 0.5
	b0 := Vec3{-s, -s, -s}
	b1 := Vec3{s, -s, -s}
	b2 := Vec3{s, -s, s}
	b3 := Vec3{-s, -s, s}
	apex := Vec3{0, s, 0}

	base := quad(b0, b1, b2, b3)
	return []Triangle{
		{A: b1, B: b0, C: apex}, // -z
		{A: b2, B: b1, C: apex}, // +x
		{A: b3, B: b2, C: apex}, // +z
		{A: b0, B: b3, C: apex}, // -x
		base[0],
		base[1],
	}
}

/**
 * @brief Logs the geometry summary at debug level.
 */
func (g *Geometry) LogSummary() {
	p := g.Transform.Position()
	core.LogDebug("geometry %s (%s): %d triangles at %s", g.Name, g.ID, len(g.triangles), p)
}
