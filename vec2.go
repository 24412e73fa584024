package skeleton

import "fmt"

// Vec2 is a 2D vector, used for vertex velocities and edge directions.
type Vec2[T Scalar] struct {
	X T
	Y T
}

// Vec returns the vector ⟨x, y⟩.
func Vec[T Scalar](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

func (v Vec2[T]) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", float64(v.X), float64(v.Y))
}

// Add returns v + o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Vec2[T]{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub returns v − o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	return Vec2[T]{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

// Mul returns the vector scaled by c.
func (v Vec2[T]) Mul(c T) Vec2[T] {
	return Vec2[T]{
		X: v.X * c,
		Y: v.Y * c,
	}
}

// Dot returns the dot product of v and o.
func (v Vec2[T]) Dot(o Vec2[T]) T {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the cross product of v and o.
func (v Vec2[T]) Cross(o Vec2[T]) T {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the magnitude of the vector.
func (v Vec2[T]) Hypot() T {
	return sqrt(v.Dot(v))
}

// Hypot2 returns the squared magnitude of the vector.
func (v Vec2[T]) Hypot2() T {
	return v.Dot(v)
}

// Normalize returns a vector of magnitude 1 with the same angle as v.
func (v Vec2[T]) Normalize() Vec2[T] {
	return v.Mul(1 / v.Hypot())
}

// NearZero reports whether both components are within eps of zero.
func (v Vec2[T]) NearZero(eps T) bool {
	return nearEqual(v.X, 0, eps) && nearEqual(v.Y, 0, eps)
}
