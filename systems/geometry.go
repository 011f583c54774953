// Package systems contains the particle simulation: placement, storage,
// pointer interaction and per-frame motion.
package systems

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// SpherePosition returns the index-th of total points spread over a sphere
// of the given radius. The spiral keeps coverage near-uniform for any total.
func SpherePosition(index, total int, radius float32) mgl32.Vec3 {
	if total < 1 {
		total = 1
	}
	phi := math.Acos(-1 + 2*float64(index)/float64(total))
	theta := math.Sqrt(float64(total)*math.Pi) * phi

	r := float64(radius)
	sinPhi := math.Sin(phi)
	return mgl32.Vec3{
		float32(r * math.Cos(theta) * sinPhi),
		float32(r * math.Sin(theta) * sinPhi),
		float32(r * math.Cos(phi)),
	}
}

// ScatterPosition draws a random point from the shell between half the
// scatter radius and the full scatter radius. Directions are uniform on the
// sphere so the cloud does not bunch at the poles.
func ScatterPosition(rng *rand.Rand, scatterRadius float32) mgl32.Vec3 {
	outer := math.Abs(float64(scatterRadius))
	theta := rng.Float64() * 2 * math.Pi
	phi := math.Acos(2*rng.Float64() - 1)
	r := outer*0.5 + rng.Float64()*outer*0.5

	sinPhi := math.Sin(phi)
	return mgl32.Vec3{
		float32(r * sinPhi * math.Cos(theta)),
		float32(r * sinPhi * math.Sin(theta)),
		float32(r * math.Cos(phi)),
	}
}

// lerp3 blends a toward b by t per axis.
func lerp3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return mgl32.Vec3{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
	}
}
