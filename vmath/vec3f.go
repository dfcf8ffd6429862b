package vmath

// Vec3F is a float64 3D vector, used for screen-space positions
type Vec3F struct {
	X, Y, Z float64
}

func V3F(x, y, z float64) Vec3F {
	return Vec3F{x, y, z}
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}
