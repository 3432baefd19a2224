package math

/**
 * @brief Creates and returns a new transform, using an identity matrix.
 */
func NewTransform() Transform {
	return Transform{local: NewMat4Identity()}
}

/**
 * @brief Creates a transform placed at the provided position, with no rotation.
 */
func NewTransformFromPosition(position Vec3) Transform {
	return Transform{local: NewMat4Translation(position)}
}

/**
 * @brief Creates a transform wrapping an existing matrix.
 */
func NewTransformFromMat4(matrix Mat4) Transform {
	return Transform{local: matrix}
}

/**
 * @brief Moves the transform by translation, expressed in the object's
 * current local frame: M' = M · T.
 */
func (t *Transform) Translate(translation Vec3) {
	t.local = t.local.Mul(NewMat4Translation(translation))
}

/**
 * @brief Rotates about the local x axis: M' = M · Rx(angle).
 */
func (t *Transform) RotateX(angle_radians float32) {
	t.local = t.local.Mul(NewMat4RotationX(angle_radians))
}

/**
 * @brief Rotates about the local y axis: M' = M · Ry(angle).
 */
func (t *Transform) RotateY(angle_radians float32) {
	t.local = t.local.Mul(NewMat4RotationY(angle_radians))
}

/**
 * @brief Rotates about the local z axis: M' = M · Rz(angle).
 */
func (t *Transform) RotateZ(angle_radians float32) {
	t.local = t.local.Mul(NewMat4RotationZ(angle_radians))
}

/**
 * @brief Overwrites the translation column of the matrix, snapping the
 * object to position without touching its orientation.
 */
func (t *Transform) SetPosition(position Vec3) {
	t.local.Data[3] = position.X
	t.local.Data[7] = position.Y
	t.local.Data[11] = position.Z
}

/**
 * @brief Returns the translation column of the matrix.
 */
func (t *Transform) Position() Vec3 {
	return Vec3{t.local.Data[3], t.local.Data[7], t.local.Data[11]}
}

/**
 * @brief Returns a copy of the transformation matrix.
 */
func (t *Transform) Matrix() Mat4 {
	return t.local
}

/**
 * @brief Resets the transform to identity.
 */
func (t *Transform) Reset() {
	t.local = NewMat4Identity()
}

/**
 * @brief Transforms a point: (x, y, z, 1) is multiplied by the matrix and the
 * homogeneous component is dropped. No perspective divide happens here.
 */
func (t *Transform) Apply(point Vec3) Vec3 {
	return t.local.MulVec4(point.ToVec4(1)).ToVec3()
}

/**
 * @brief Transforms a direction: (x, y, z, 0), so translation is ignored.
 */
func (t *Transform) ApplyDirection(direction Vec3) Vec3 {
	return t.local.MulVec4(direction.ToVec4(0)).ToVec3()
}

/**
 * @brief Returns the inverse matrix of a rigid transform, [R^T | -R^T·p].
 * Transforms built only from translations and rotations are always rigid.
 */
func (t *Transform) Inverse() Mat4 {
	d := &t.local.Data
	out_matrix := NewMat4Identity()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out_matrix.Data[r*4+c] = d[c*4+r]
		}
	}
	p := t.Position()
	for r := 0; r < 3; r++ {
		out_matrix.Data[r*4+3] = -(out_matrix.Data[r*4]*p.X + out_matrix.Data[r*4+1]*p.Y + out_matrix.Data[r*4+2]*p.Z)
	}
	return out_matrix
}
