package flight

import "github.com/san-kum/flightdyn/internal/geom"

func geomVec(x, y, z float64) geom.Vec3 {
	return geom.Vec3{X: x, Y: y, Z: z}
}
