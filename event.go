package skeleton

// collapseMoment solves for the time at which two linearly moving points
// coincide, starting from positions p0, p1 valid at time zero. It solves
// along whichever axis has the larger relative velocity, to avoid dividing by
// a near-zero difference, and then checks the other axis: if the positions
// still disagree there, the trajectories never actually meet and the
// candidate is rejected. Returns +Inf when the points never coincide.
func collapseMoment[T Scalar](p0 Point[T], v0 Vec2[T], p1 Point[T], v1 Vec2[T]) T {
	eps := epsilon[T]()
	dx := v0.X - v1.X
	dy := v0.Y - v1.Y
	if abs(dx) > abs(dy) {
		if abs(dx) < eps {
			return inf[T]()
		}
		t := (p1.X - p0.X) / dx
		ySep := p0.Y + t*v0.Y - p1.Y - t*v1.Y
		if abs(ySep) < crossAxisTolerance {
			return t
		}
	} else {
		if abs(dy) < eps {
			return inf[T]()
		}
		t := (p1.Y - p0.Y) / dy
		xSep := p0.X + t*v0.X - p1.X - t*v1.X
		if abs(xSep) < crossAxisTolerance {
			return t
		}
	}
	return inf[T]()
}

// collapseTime returns the simulation time at which the vertices a and b
// meet, or +Inf if they never do. A frozen endpoint never actively collapses
// an edge; such edges only degenerate through other events.
func (g *wavefront[T]) collapseTime(a, b int) T {
	v0 := &g.vertices[a]
	v1 := &g.vertices[b]
	eps := epsilon[T]()
	if v0.velocity.NearZero(eps) || v1.velocity.NearZero(eps) {
		return inf[T]()
	}

	// Align both trajectories to a common reference time before solving.
	calcTime := min(v0.initialTime, v1.initialTime)
	p0 := v0.at(calcTime)
	p1 := v1.at(calcTime)
	return calcTime + collapseMoment(p0, v0.velocity, p1, v1.velocity)
}

type crashEvent[T Scalar] struct {
	time T
	edge int // index into wavefront.edges, or −1
}

// crashTime finds the earliest moment the moving vertex v strikes any
// wavefront edge. The three involved points all move linearly, so the signed
// area of the triangle (edge head, edge tail, v) is a quadratic in t; a crash
// is a root of that quadratic at which v additionally lies between the edge's
// endpoints (or coincides with one of them).
func (g *wavefront[T]) crashTime(v wavefrontVertex[T]) crashEvent[T] {
	eps := epsilon[T]()
	best := crashEvent[T]{time: inf[T](), edge: -1}

	for ei := range g.edges {
		e := &g.edges[ei]
		head := &g.vertices[e.head]
		tail := &g.vertices[e.tail]

		calcTime := max(head.initialTime, tail.initialTime, v.initialTime)
		p0 := head.at(calcTime)
		p1 := tail.at(calcTime)
		p2 := v.at(calcTime)
		v0 := head.velocity
		v1 := tail.velocity
		v2 := v.velocity

		// 2 × the signed triangle area at time calcTime+t is
		// a t² + b t + c with the coefficients below.
		a := (v1.X-v0.X)*(v2.Y-v0.Y) - (v2.X-v0.X)*(v1.Y-v0.Y)
		if nearEqual(a, 0, eps) {
			continue
		}
		c := (p1.X-p0.X)*(p2.Y-p0.Y) - (p2.X-p0.X)*(p1.Y-p0.Y)
		b := (p1.X-p0.X)*(v2.Y-v0.Y) + (v1.X-v0.X)*(p2.Y-p0.Y) -
			(p2.X-p0.X)*(v1.Y-v0.Y) - (v2.X-v0.X)*(p1.Y-p0.Y)

		roots, n := solveQuadratic(c, b, a)
		for _, root := range roots[:n] {
			t := calcTime + root
			if t > best.time || t <= max(head.initialTime, tail.initialTime) {
				continue
			}
			// All three points are colinear at t; check that v is between
			// the endpoints, or close enough to one of them.
			hp := head.at(t)
			tp := tail.at(t)
			vp := v.at(t)
			if (tp.Sub(hp).Dot(vp.Sub(hp)) > 0 && hp.Sub(tp).Dot(vp.Sub(tp)) > 0) ||
				hp.NearEqual(vp, eps) || tp.NearEqual(vp, eps) {
				best = crashEvent[T]{time: t, edge: ei}
			}
		}
	}

	return best
}
