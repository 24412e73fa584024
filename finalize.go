package skeleton

// closestPointOnLine returns the parameter of the projection of pt onto the
// infinite line through a and b, with 0 at a and 1 at b.
func closestPointOnLine[T Scalar](a, b, pt Point[T]) T {
	o := pt.Sub(a)
	l := b.Sub(a)
	return o.Dot(l) / l.Hypot2()
}

// writeWavefront projects every surviving wavefront edge to its position at
// the stop time and records the result as Wavefront output edges, along with
// a vertex path for every surviving vertex. Distinct vertices frequently end
// up in the same place at the stop time, so segments are filtered first:
// exact duplicates merge (donating unresolved face ids across the merge), and
// partially overlapping colinear segments are carved into non-overlapping
// parts which are then re-tested.
func (g *wavefront[T]) writeWavefront(result *Skeleton[T], time T) {
	eps := epsilon[T]()

	var filtered []wavefrontEdge
	var toTest []wavefrontEdge
	for i := range g.edges {
		e := &g.edges[i]
		a := g.vertices[e.head].clampedAt(time)
		b := g.vertices[e.tail].clampedAt(time)
		v0 := addSteinerVertex(result, a)
		v1 := addSteinerVertex(result, b)
		if v0 != v1 {
			toTest = append(toTest, wavefrontEdge{v0, v1, e.leftFace, e.rightFace})
		}
	}

	for len(toTest) > 0 {
		seg := toTest[len(toTest)-1]
		toTest = toTest[:len(toTest)-1]

		a := result.SteinerVertices[seg.head].XY()
		b := result.SteinerVertices[seg.tail].XY()
		keep := true

		for i := range filtered {
			other := &filtered[i]

			if other.head == seg.head && other.tail == seg.tail {
				if other.leftFace == noFace {
					other.leftFace = seg.leftFace
				}
				if other.rightFace == noFace {
					other.rightFace = seg.rightFace
				}
				keep = false
				break
			} else if other.head == seg.tail && other.tail == seg.head {
				if other.leftFace == noFace {
					other.leftFace = seg.rightFace
				}
				if other.rightFace == noFace {
					other.rightFace = seg.leftFace
				}
				keep = false
				break
			}

			// Overlap requires colinearity with at least one endpoint of the
			// accepted segment lying on this one.
			c := result.SteinerVertices[other.head].XY()
			d := result.SteinerVertices[other.tail].XY()
			closestC := closestPointOnLine(a, b, c)
			closestD := closestPointOnLine(a, b, d)
			cOnLine := closestC > 0 && closestC < 1 && a.Lerp(b, closestC).Sub(c).Hypot2() < eps
			dOnLine := closestD > 0 && closestD < 1 && a.Lerp(b, closestD).Sub(d).Hypot2() < eps
			if !cOnLine && !dOnLine {
				continue
			}
			u := b.Sub(a)
			w := d.Sub(c)
			if abs(u.Cross(w)) > eps*u.Hypot()*w.Hypot() {
				continue
			}

			if other.head == seg.head {
				if closestD < 1 {
					seg.head = other.tail
				} else {
					other.head = seg.tail
				}
			} else if other.head == seg.tail {
				if closestD > 0 {
					seg.tail = other.tail
				} else {
					other.head = seg.head
				}
			} else if other.tail == seg.head {
				if closestC < 1 {
					seg.head = other.head
				} else {
					other.tail = seg.tail
				}
			} else if other.tail == seg.tail {
				if closestC > 0 {
					seg.tail = other.head
				} else {
					other.tail = seg.head
				}
			} else {
				// No shared endpoint: carve the overlap into three
				// non-overlapping parts. The accepted segment shrinks to the
				// part strictly inside itself, seg continues under test, and
				// the remainder goes back on the stack.
				var newSeg wavefrontEdge
				switch {
				case closestC < 0:
					if closestD > 1 {
						newSeg = wavefrontEdge{seg.tail, other.tail, noFace, noFace}
					} else {
						newSeg = wavefrontEdge{other.tail, seg.tail, noFace, noFace}
						seg.tail = other.tail
					}
					other.tail = seg.head
				case closestD < 0:
					if closestC > 1 {
						newSeg = wavefrontEdge{seg.tail, other.head, noFace, noFace}
					} else {
						newSeg = wavefrontEdge{other.head, seg.tail, noFace, noFace}
						seg.tail = other.head
					}
					other.head = seg.head
				case closestC < closestD:
					if closestD > 1 {
						newSeg = wavefrontEdge{seg.tail, other.tail, noFace, noFace}
					} else {
						newSeg = wavefrontEdge{other.tail, seg.tail, noFace, noFace}
					}
					seg.tail = other.head
				default:
					if closestC > 1 {
						newSeg = wavefrontEdge{seg.tail, other.head, noFace, noFace}
					} else {
						newSeg = wavefrontEdge{other.head, seg.tail, noFace, noFace}
					}
					seg.tail = other.tail
				}
				toTest = append(toTest, newSeg)
			}

			// seg may have changed; refresh its endpoints.
			a = result.SteinerVertices[seg.head].XY()
			b = result.SteinerVertices[seg.tail].XY()
		}

		if keep {
			filtered = append(filtered, seg)
		}
	}

	for _, seg := range filtered {
		addEdge(result, seg.head, seg.tail, seg.leftFace, seg.rightFace, Wavefront)
	}

	// Trace out the path of every surviving vertex, unless already present.
	for _, seg := range g.edges {
		for _, v := range [2]int{seg.head, seg.tail} {
			final := addSteinerVertex(result, g.vertices[v].clampedAt(time))
			g.addVertexPathEdge(result, v, final)
		}
	}
}
