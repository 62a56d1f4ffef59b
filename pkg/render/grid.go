package render

import "math"

// Reference drawing surface. Front ends scale it to their own size.
const (
	SurfaceWidth  = 800.0
	SurfaceHeight = 600.0

	Horizon     = 300.0
	GridSpacing = 50.0
	GridExtent  = 800.0

	// altitude at which the horizontal grid lines are half as far apart
	altitudeScale = 100.0
)

// Line is a segment on the reference surface
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Length returns the segment length
func (l Line) Length() float64 {
	return math.Hypot(l.X2-l.X1, l.Y2-l.Y1)
}

// Angle returns the direction from the first to the second point in degrees
func (l Line) Angle() float64 {
	return math.Atan2(l.Y2-l.Y1, l.X2-l.X1) * 180 / math.Pi
}

// GroundGrid returns the perspective ground grid seen from a plane at
// horizontal position x and the given altitude. Converging lines scroll
// with x; horizontal lines crowd towards the horizon as the plane climbs.
func GroundGrid(x, altitude float64) []Line {
	offset := math.Mod(x, GridSpacing)
	cx := SurfaceWidth / 2

	var lines []Line
	for i := -GridExtent; i <= GridExtent; i += GridSpacing {
		lines = append(lines, Line{
			X1: cx + i - offset,
			Y1: Horizon,
			X2: cx + (i-offset)*2,
			Y2: SurfaceHeight,
		})
	}

	gap := GridSpacing / (1 + math.Max(altitude, 0)/altitudeScale)
	for y := Horizon + gap; y < SurfaceHeight; y += gap {
		lines = append(lines, Line{X1: 0, Y1: y, X2: SurfaceWidth, Y2: y})
	}
	return lines
}

// PlaneShape returns the plane triangle centred on the surface and
// rotated by bank degrees, as three points.
func PlaneShape(bank float64) [3][2]float64 {
	base := [3][2]float64{{-15, 15}, {0, -15}, {15, 15}}
	rad := bank * math.Pi / 180
	sin, cos := math.Sincos(rad)

	var out [3][2]float64
	for i, p := range base {
		out[i][0] = SurfaceWidth/2 + p[0]*cos - p[1]*sin
		out[i][1] = Horizon + p[0]*sin + p[1]*cos
	}
	return out
}

// PlaneGlyph returns a three-character plane for text displays, tilted
// with the bank angle.
func PlaneGlyph(bank float64) string {
	switch {
	case bank >= 30:
		return "`^."
	case bank >= 10:
		return "-^."
	case bank <= -30:
		return ".^`"
	case bank <= -10:
		return ".^-"
	default:
		return "-^-"
	}
}
