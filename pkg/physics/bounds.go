package physics

import "fmt"

// Bounds is an axis-aligned box. Each axis is clamped independently.
type Bounds struct {
	Min Vector3D `json:"min"`
	Max Vector3D `json:"max"`
}

// NewBounds builds a box from its two corners
func NewBounds(min, max Vector3D) Bounds {
	return Bounds{Min: min, Max: max}
}

// Clamp returns p moved onto the nearest point inside the box
func (b Bounds) Clamp(p Vector3D) Vector3D {
	return Vector3D{
		X: Clamp(p.X, b.Min.X, b.Max.X),
		Y: Clamp(p.Y, b.Min.Y, b.Max.Y),
		Z: Clamp(p.Z, b.Min.Z, b.Max.Z),
	}
}

// Contains reports whether p lies inside the box, edges included
func (b Bounds) Contains(p Vector3D) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Validate checks that Min does not exceed Max on any axis
func (b Bounds) Validate() error {
	switch {
	case b.Min.X > b.Max.X:
		return fmt.Errorf("x range inverted: min %.2f > max %.2f", b.Min.X, b.Max.X)
	case b.Min.Y > b.Max.Y:
		return fmt.Errorf("y range inverted: min %.2f > max %.2f", b.Min.Y, b.Max.Y)
	case b.Min.Z > b.Max.Z:
		return fmt.Errorf("z range inverted: min %.2f > max %.2f", b.Min.Z, b.Max.Z)
	}
	return nil
}
