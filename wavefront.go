package skeleton

import (
	"fmt"
	"slices"
)

// A wavefrontVertex is a corner of the shrinking boundary. Its position is
// valid at initialTime; at simulation time t it sits at
// pos + velocity·(t−initialTime). A vertex with zero velocity is frozen and
// never moves again.
type wavefrontVertex[T Scalar] struct {
	pos         Point[T]
	skeletonID  int // steiner vertex id, BoundaryVertexFlag-tagged input index, or noVertex
	initialTime T
	velocity    Vec2[T]
}

func (v *wavefrontVertex[T]) at(t T) Point[T] {
	return v.pos.Translate(v.velocity.Mul(t - v.initialTime))
}

// clampedAt is like at, but a frozen vertex reports the position and time it
// froze at rather than extrapolating a zero velocity forward.
func (v *wavefrontVertex[T]) clampedAt(t T) Point3[T] {
	if v.velocity.NearZero(epsilon[T]()) {
		return Point3[T]{X: v.pos.X, Y: v.pos.Y, Time: v.initialTime}
	}
	p := v.at(t)
	return Point3[T]{X: p.X, Y: p.Y, Time: t}
}

// A wavefrontEdge is a shrinking boundary segment, directed tail→head.
// Following tail→head across all live edges always traverses one or more
// closed loops. rightFace is the output face the edge sweeps (the index of
// the input edge it descends from), or noFace if undetermined.
type wavefrontEdge struct {
	head, tail          int
	leftFace, rightFace int
}

// A motorcycle is the trace of a reflex vertex: head is the moving vertex,
// tail an anchor frozen at the reflex vertex's original position.
type motorcycle struct {
	head, tail          int
	leftFace, rightFace int
}

// wavefront is the live simulation state. Vertices are allocated in a
// growable arena and never relocated; all linkage between edges, motorcycles
// and vertices is by index, so references taken before a topology mutation
// stay valid.
type wavefront[T Scalar] struct {
	vertices    []wavefrontVertex[T]
	edges       []wavefrontEdge
	motorcycles []motorcycle
	boundary    []Point[T]

	// processed event times, in order; used to validate monotonicity
	events []T
}

type winding int8

const (
	windStraight winding = iota
	windLeft
	windRight
)

// windingOf classifies the turn taken at pt1 when traveling pt0→pt1→pt2, in a
// counter-clockwise space (+y up the page, +x to the right).
func windingOf[T Scalar](pt0, pt1, pt2 Point[T], threshold T) winding {
	sign := (pt1.X-pt0.X)*(pt2.Y-pt0.Y) - (pt2.X-pt0.X)*(pt1.Y-pt0.Y)
	switch {
	case sign > threshold:
		return windLeft
	case sign < -threshold:
		return windRight
	}
	return windStraight
}

func signedArea[T Scalar](pts []Point[T]) T {
	var sum T
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// vertexVelocity computes the velocity of the vertex v1 shared by the
// boundary segments v0→v1 and v1→v2, assuming both segments translate along
// their inward normals at unit speed. With counter-clockwise winding, inward
// is to the left of each segment's direction of travel.
//
// Writing the two moved segments as lines x·a + y·b = t and x·c + y·d = t
// (with (a,b), (c,d) the unit normals and the origin at v1), the velocity is
// the solution of that 2×2 system at t = 1. Degenerate corners (a zero-length
// segment, or the two segments anti-parallel so that the system is singular)
// yield a zero vector.
func vertexVelocity[T Scalar](v0, v1, v2 Point[T]) Vec2[T] {
	eps := epsilon[T]()
	if v0.NearEqual(v2, eps) {
		return Vec2[T]{}
	}

	t0 := v1.Sub(v0)
	t1 := v2.Sub(v1)
	if t0.NearZero(eps) || t1.NearZero(eps) {
		return Vec2[T]{}
	}

	n0 := Vec(-t0.Y, t0.X).Normalize()
	n1 := Vec(-t1.Y, t1.X).Normalize()
	a, b := n0.X, n0.Y
	c, d := n1.X, n1.Y

	var b0, b1 T
	if abs(d) > eps {
		b0 = a - b*c/d
	}
	if abs(c) > eps {
		b1 = b - a*d/c
	}

	var x, y T
	if abs(b0) > abs(b1) {
		if abs(b0) <= eps {
			return Vec2[T]{}
		}
		x = (1 - b/d) / b0
		y = (1 - x*c) / d
	} else {
		if abs(b1) <= eps {
			return Vec2[T]{}
		}
		y = (1 - a/c) / b1
		x = (1 - y*d) / c
	}
	return Vec2[T]{X: x, Y: y}
}

// buildWavefront constructs the initial simulation state from a vertex loop.
// The loop must be simple and counter-clockwise, with an implied closing
// segment between the last and first vertices. Every input vertex becomes a
// moving wavefront vertex and every input segment a wavefront edge; each
// reflex vertex additionally spawns a motorcycle.
func buildWavefront[T Scalar](pts []Point[T]) (*wavefront[T], error) {
	const windThreshold = 1e-6

	if len(pts) < 3 {
		return nil, fmt.Errorf("polygon has %d vertices, need at least 3: %w", len(pts), ErrDegenerateInput)
	}
	if signedArea(pts) <= 0 {
		return nil, fmt.Errorf("polygon does not wind counter-clockwise: %w", ErrDegenerateInput)
	}

	eps := epsilon[T]()
	g := &wavefront[T]{
		vertices: make([]wavefrontVertex[T], 0, len(pts)),
		edges:    make([]wavefrontEdge, 0, len(pts)),
		boundary: slices.Clone(pts),
	}
	for v1 := range pts {
		v0 := (v1 + len(pts) - 1) % len(pts)
		v2 := (v1 + 1) % len(pts)
		if pts[v1].NearEqual(pts[v2], eps) {
			return nil, fmt.Errorf("vertices %d and %d coincide: %w", v1, v2, ErrDegenerateInput)
		}
		g.edges = append(g.edges, wavefrontEdge{head: v2, tail: v1, leftFace: noFace, rightFace: v1})

		velocity := vertexVelocity(pts[v0], pts[v1], pts[v2])
		if velocity.NearZero(eps) {
			return nil, fmt.Errorf("vertex %d has no defined bisector direction: %w", v1, ErrDegenerateInput)
		}
		g.vertices = append(g.vertices, wavefrontVertex[T]{
			pos:        pts[v1],
			skeletonID: BoundaryVertexFlag | v1,
			velocity:   velocity,
		})
	}

	// Reflex vertices wind against the polygon's counter-clockwise
	// orientation. Each one gets a motorcycle: the moving vertex as the head
	// and a stationary anchor at the original position as the tail.
	for v1 := range pts {
		v0 := (v1 + len(pts) - 1) % len(pts)
		v2 := (v1 + 1) % len(pts)
		if windingOf(pts[v0], pts[v1], pts[v2], T(windThreshold)) == windRight {
			anchor := len(g.vertices)
			g.vertices = append(g.vertices, wavefrontVertex[T]{
				pos:        pts[v1],
				skeletonID: BoundaryVertexFlag | v1,
			})
			g.motorcycles = append(g.motorcycles, motorcycle{head: v1, tail: anchor, leftFace: v0, rightFace: v1})
		}
	}

	return g, nil
}

// findInOut locates the edges meeting at the given vertex: in is the edge
// whose head is v, out the edge whose tail is v, either −1 when absent.
func (g *wavefront[T]) findInOut(v int) (in, out int) {
	in, out = -1, -1
	for i := range g.edges {
		switch {
		case g.edges[i].head == v:
			in = i
		case g.edges[i].tail == v:
			out = i
		}
	}
	return in, out
}

func (g *wavefront[T]) findEdge(head, tail int) int {
	for i := range g.edges {
		if g.edges[i].head == head && g.edges[i].tail == tail {
			return i
		}
	}
	return -1
}

// freeze pins the vertex at its position at the given time. Frozen vertices
// keep their position permanently; any future skeleton references to them go
// through the steiner pool.
func (g *wavefront[T]) freeze(v int, at T) {
	vert := &g.vertices[v]
	vert.pos = vert.at(at)
	vert.initialTime = at
	vert.skeletonID = noVertex
	vert.velocity = Vec2[T]{}
}
