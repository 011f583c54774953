package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// GroupRotation returns the XYZ Euler angles of the whole particle group
// after elapsed seconds. X and Z sway, Y drifts; speed scales all three.
func GroupRotation(elapsed, speed float32) (x, y, z float32) {
	t := float64(elapsed)
	s := float64(speed)
	x = float32(math.Sin(t*0.3) * 0.2 * s)
	y = float32(t * 0.1 * s)
	z = float32(math.Cos(t*0.2) * 0.1 * s)
	return x, y, z
}

// RotationMatrix builds the XYZ-order rotation for Euler angles.
func RotationMatrix(x, y, z float32) mgl32.Mat3 {
	return mgl32.Rotate3DX(x).Mul3(mgl32.Rotate3DY(y)).Mul3(mgl32.Rotate3DZ(z))
}
