package geometry

import "math"

// XY is a point in canvas coordinates. The y-axis points down, so "up" on the
// canvas is a decreasing Y.
type XY struct {
	X, Y float64
}

// Project returns the point reached by travelling length from xy along angle.
// Angle is measured in radians from vertical, positive turning left.
func (xy XY) Project(length, angle float64) XY {
	return XY{
		X: xy.X - length*math.Sin(angle),
		Y: xy.Y - length*math.Cos(angle),
	}
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
