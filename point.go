package skeleton

import "fmt"

// Point is a 2D point in the plane of the input polygon.
type Point[T Scalar] struct {
	X T
	Y T
}

// Pt returns the point (x, y).
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

func (pt Point[T]) String() string {
	return fmt.Sprintf("(%g, %g)", float64(pt.X), float64(pt.Y))
}

// Sub computes pt−o as a vector.
func (pt Point[T]) Sub(o Point[T]) Vec2[T] {
	return Vec2[T]{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Translate returns the point displaced by v.
func (pt Point[T]) Translate(v Vec2[T]) Point[T] {
	return Point[T]{
		X: pt.X + v.X,
		Y: pt.Y + v.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point[T]) Lerp(o Point[T], t T) Point[T] {
	return pt.Translate(o.Sub(pt).Mul(t))
}

// NearEqual reports whether the two points coincide to within eps on both
// axes.
func (pt Point[T]) NearEqual(o Point[T], eps T) bool {
	return nearEqual(pt.X, o.X, eps) && nearEqual(pt.Y, o.Y, eps)
}

// Point3 is a point of the output skeleton: a plane position plus the
// simulation time at which the wavefront passed through it.
type Point3[T Scalar] struct {
	X    T
	Y    T
	Time T
}

// XY projects the point back onto the plane, dropping the time axis.
func (pt Point3[T]) XY() Point[T] {
	return Point[T]{X: pt.X, Y: pt.Y}
}

// Midpoint returns the midpoint of two points, averaging the time axis as
// well.
func (pt Point3[T]) Midpoint(o Point3[T]) Point3[T] {
	return Point3[T]{
		X:    (pt.X + o.X) / 2,
		Y:    (pt.Y + o.Y) / 2,
		Time: (pt.Time + o.Time) / 2,
	}
}

// NearEqual reports whether the two points coincide to within eps on all
// three axes.
func (pt Point3[T]) NearEqual(o Point3[T], eps T) bool {
	return nearEqual(pt.X, o.X, eps) && nearEqual(pt.Y, o.Y, eps) && nearEqual(pt.Time, o.Time, eps)
}
