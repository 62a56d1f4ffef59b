// pkg/physics/vector.go
package physics

import "math"

// Vector3D represents a 3D vector. Z grows downwards, towards the ground.
type Vector3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns the sum of two vectors
func (v Vector3D) Add(other Vector3D) Vector3D {
	return Vector3D{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub returns the difference between two vectors
func (v Vector3D) Sub(other Vector3D) Vector3D {
	return Vector3D{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Scale multiplies the vector by a scalar value
func (v Vector3D) Scale(factor float64) Vector3D {
	return Vector3D{
		X: v.X * factor,
		Y: v.Y * factor,
		Z: v.Z * factor,
	}
}

// Length returns the magnitude of the vector
func (v Vector3D) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns magnitude squared (optimization for comparisons)
func (v Vector3D) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// HorizontalLength returns the magnitude of the X/Y components only
func (v Vector3D) HorizontalLength() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Horizontal returns the vector with its vertical component dropped
func (v Vector3D) Horizontal() Vector3D {
	return Vector3D{X: v.X, Y: v.Y}
}

// Heading returns a unit vector in the X/Y plane for an angle in degrees,
// measured from the +X axis towards +Y.
func Heading(degrees float64) Vector3D {
	rad := DegToRad(degrees)
	return Vector3D{X: math.Cos(rad), Y: math.Sin(rad)}
}

// DegToRad converts degrees to radians
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Clamp limits value to the inclusive range [lo, hi]
func Clamp(value, lo, hi float64) float64 {
	return math.Max(lo, math.Min(value, hi))
}
