package flight

import "github.com/san-kum/flightdyn/internal/geom"

// Orientation is an attitude snapshot used for body/world transforms.
// BodyToWorld and WorldToBody are exact mutual inverses for any finite
// input; neither has side effects.
type Orientation struct {
	Pitch, Yaw, Roll float64
}

// BodyToWorld rotates a body-frame vector into world frame: roll is
// applied first, then pitch, then yaw.
func (o Orientation) BodyToWorld(v geom.Vec3) geom.Vec3 {
	return v.RotateZ(o.Roll).RotateX(o.Pitch).RotateY(o.Yaw)
}

// WorldToBody rotates a world-frame vector into body frame: the exact
// reverse order with negated angles.
func (o Orientation) WorldToBody(v geom.Vec3) geom.Vec3 {
	return v.RotateY(-o.Yaw).RotateX(-o.Pitch).RotateZ(-o.Roll)
}

// Matrix builds the world transform Translate * RotY(yaw) *
// RotX(pitch) * RotZ(roll), usable directly as a model matrix.
func Matrix(position geom.Vec3, o Orientation) geom.Mat4 {
	t := geom.Translate(position.X, position.Y, position.Z)
	return t.Mul(geom.RotateY(o.Yaw).Mul(geom.RotateX(o.Pitch).Mul(geom.RotateZ(o.Roll))))
}
