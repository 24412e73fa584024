package skeleton

import "slices"

type collapseEvent[T Scalar] struct {
	time T
	edge int
}

// skeleton runs the discrete-event simulation until no event remains before
// maxTime, then writes the surviving wavefront into the output. Each
// iteration finds the tie group of earliest edge collapses, checks for
// motorcycle crashes at or before that time, and processes either a single
// crash or the whole collapse group. Crashes cut the wavefront, so they take
// priority over collapses within the same epsilon window, and collapse times
// are recomputed from scratch afterwards.
func (g *wavefront[T]) skeleton(maxTime T) *Skeleton[T] {
	eps := epsilon[T]()
	result := &Skeleton[T]{Faces: make([]Face, len(g.boundary))}

	var bestCollapse []collapseEvent[T]
	type crashCandidate struct {
		ev    crashEvent[T]
		motor int
	}
	var bestCrash []crashCandidate

	var lastEventTime T
	for {
		// Find the earliest edge collapses, grouping everything within
		// epsilon of the minimum.
		bestCollapseTime := inf[T]()
		bestCollapse = bestCollapse[:0]
		for ei := range g.edges {
			t := g.collapseTime(g.edges[ei].head, g.edges[ei].tail)
			if t < 0 {
				continue
			}
			if t < bestCollapseTime-eps {
				bestCollapse = bestCollapse[:0]
				bestCollapse = append(bestCollapse, collapseEvent[T]{t, ei})
				bestCollapseTime = t
			} else if t < bestCollapseTime+eps {
				bestCollapse = append(bestCollapse, collapseEvent[T]{t, ei})
				bestCollapseTime = min(t, bestCollapseTime)
			}
		}
		// The minimum may have moved after entries were accepted; re-filter
		// so every entry is within epsilon of the final minimum.
		bestCollapse = slices.DeleteFunc(bestCollapse, func(c collapseEvent[T]) bool {
			return !(c.time < bestCollapseTime+eps)
		})

		// Check for motorcycles crashing at or before the best collapse.
		bestCrashTime := inf[T]()
		bestCrash = bestCrash[:0]
		for mi := range g.motorcycles {
			head := &g.vertices[g.motorcycles[mi].head]
			if head.velocity.NearZero(eps) {
				continue
			}
			ev := g.crashTime(*head)
			if ev.time < 0 {
				continue
			}
			if ev.time < bestCollapseTime+eps {
				if ev.time < bestCrashTime-eps {
					bestCrash = bestCrash[:0]
					bestCrash = append(bestCrash, crashCandidate{ev, mi})
					bestCrashTime = ev.time
				} else if ev.time < bestCrashTime+eps {
					bestCrash = append(bestCrash, crashCandidate{ev, mi})
					bestCrashTime = min(ev.time, bestCrashTime)
				}
			}
		}

		if len(bestCrash) > 0 {
			if bestCrashTime > maxTime {
				break
			}
			bestCrash = slices.DeleteFunc(bestCrash, func(c crashCandidate) bool {
				return !(c.ev.time < bestCrashTime+eps)
			})

			// Only one crash can be processed per iteration; the surgery
			// invalidates the other candidates' edge references.
			ev := bestCrash[0].ev
			motor := g.motorcycles[bestCrash[0].motor]
			g.motorcycles = slices.Delete(g.motorcycles, bestCrash[0].motor, bestCrash[0].motor+1)
			g.processCrash(result, motor, ev)
			lastEventTime = ev.time
		} else {
			if len(bestCollapse) == 0 {
				break
			}
			if bestCollapseTime > maxTime {
				break
			}
			g.processCollapses(result, bestCollapse, bestCollapseTime)
			lastEventTime = bestCollapseTime
		}
		g.events = append(g.events, lastEventTime)
	}

	if isInf(maxTime) {
		maxTime = lastEventTime
	}
	g.writeWavefront(result, maxTime)

	return result
}

// processCrash cuts the wavefront where a motorcycle strikes an edge. The
// struck edge splits at the crash point; each side either gets a new moving
// vertex at the crash point, or, when that side's region has already
// degenerated to zero area, collapses directly, connecting the neighboring
// vertices through a merged steiner point. The motorcycle's head freezes at
// the crash and its trace is emitted as a vertex path back to its anchor.
func (g *wavefront[T]) processCrash(result *Skeleton[T], motor motorcycle, ev crashEvent[T]) {
	eps := epsilon[T]()

	crashPt := g.vertices[motor.head].at(ev.time)
	crashID := addSteinerVertex(result, Point3[T]{X: crashPt.X, Y: crashPt.Y, Time: ev.time})
	crashSeg := g.edges[ev.edge]

	// The "tout" side: the region between the motorcycle's outgoing edge and
	// the struck edge's tail.
	{
		_, out := g.findInOut(motor.head)
		if out == -1 {
			panic("motorcycle head detached from wavefront")
		}
		v0 := g.vertices[crashSeg.tail].clampedAt(ev.time)
		v2 := g.vertices[g.edges[out].head].clampedAt(ev.time)
		if g.edges[out].head == crashSeg.tail || v0.NearEqual(v2, eps) {
			// Zero area left on this side; the neighboring vertices end here.
			tout := g.edges[out]
			endPt := addSteinerVertex(result, v0.Midpoint(v2))
			addEdge(result, endPt, crashID, crashSeg.rightFace, tout.rightFace, VertexPath)
			g.addVertexPathEdge(result, tout.head, endPt)
			g.addVertexPathEdge(result, crashSeg.tail, endPt)
			g.edges = slices.Delete(g.edges, out, out+1)
			// Re-close the loop so no stranded edges remain.
			if tout.head != crashSeg.tail {
				if ex := g.findEdge(crashSeg.tail, tout.head); ex != -1 {
					existing := g.edges[ex]
					g.edges = append(g.edges, wavefrontEdge{tout.head, crashSeg.tail, existing.rightFace, existing.leftFace})
				} else {
					g.edges = append(g.edges, wavefrontEdge{tout.head, crashSeg.tail, noFace, noFace})
				}
			}
		} else {
			newVertex := len(g.vertices)
			g.edges[out].tail = newVertex
			g.edges = append(g.edges, wavefrontEdge{newVertex, crashSeg.tail, crashSeg.leftFace, crashSeg.rightFace})
			g.vertices = append(g.vertices, wavefrontVertex[T]{
				pos:         crashPt,
				skeletonID:  crashID,
				initialTime: ev.time,
				velocity:    vertexVelocity(v0.XY(), crashPt, v2.XY()),
			})
		}
	}

	// The "tin" side: between the struck edge's head and the motorcycle's
	// incoming edge.
	{
		in, _ := g.findInOut(motor.head)
		if in == -1 {
			panic("motorcycle head detached from wavefront")
		}
		v0 := g.vertices[g.edges[in].tail].clampedAt(ev.time)
		v2 := g.vertices[crashSeg.head].clampedAt(ev.time)
		if g.edges[in].tail == crashSeg.head || v0.NearEqual(v2, eps) {
			tin := g.edges[in]
			endPt := addSteinerVertex(result, v0.Midpoint(v2))
			addEdge(result, endPt, crashID, tin.rightFace, crashSeg.rightFace, VertexPath)
			g.addVertexPathEdge(result, tin.tail, endPt)
			g.addVertexPathEdge(result, crashSeg.head, endPt)
			g.edges = slices.Delete(g.edges, in, in+1)
			if tin.tail != crashSeg.head {
				if ex := g.findEdge(tin.tail, crashSeg.head); ex != -1 {
					existing := g.edges[ex]
					g.edges = append(g.edges, wavefrontEdge{crashSeg.head, tin.tail, existing.rightFace, existing.leftFace})
				} else {
					g.edges = append(g.edges, wavefrontEdge{crashSeg.head, tin.tail, noFace, noFace})
				}
			}
		} else {
			newVertex := len(g.vertices)
			g.edges[in].head = newVertex
			g.edges = append(g.edges, wavefrontEdge{crashSeg.head, newVertex, crashSeg.leftFace, crashSeg.rightFace})
			g.vertices = append(g.vertices, wavefrontVertex[T]{
				pos:         crashPt,
				skeletonID:  crashID,
				initialTime: ev.time,
				velocity:    vertexVelocity(v0.XY(), crashPt, v2.XY()),
			})
		}
	}

	// The struck edge was still needed above for face lookups; drop it only
	// now.
	g.edges = slices.DeleteFunc(g.edges, func(s wavefrontEdge) bool {
		return s.head == crashSeg.head && s.tail == crashSeg.tail
	})

	addEdge(result, crashID, g.vertices[motor.tail].skeletonID, motor.leftFace, motor.rightFace, VertexPath)
	g.freeze(motor.head, ev.time)
}

// processCollapses handles one tie group of simultaneous edge collapses.
// The grouped edges are partitioned into chains by tail→head adjacency; each
// chain collapses onto a single new point, the average of all its endpoint
// positions at the collapse time. Contributing vertices freeze there, their
// trajectories are emitted as vertex paths, and one new moving vertex per
// chain is spliced between the chain's surviving neighbors.
func (g *wavefront[T]) processCollapses(result *Skeleton[T], group []collapseEvent[T], collapseTime T) {
	type chainInfo struct {
		head, tail, newVertex int
	}

	groupID := make([]int, len(group))
	for i := range groupID {
		groupID[i] = -1
	}
	var chains []chainInfo
	nextChain := 0
	for c := range group {
		if groupID[c] != -1 {
			continue
		}
		groupID[c] = nextChain

		// walk back as far as possible, tail to tail
		searchingTail := g.edges[group[c].edge].tail
		for {
			i := slices.IndexFunc(group, func(e collapseEvent[T]) bool {
				return g.edges[e.edge].head == searchingTail
			})
			if i == -1 || groupID[i] == nextChain {
				break
			}
			groupID[i] = nextChain
			searchingTail = g.edges[group[i].edge].tail
		}
		// and forward, head to head
		searchingHead := g.edges[group[c].edge].head
		for {
			i := slices.IndexFunc(group, func(e collapseEvent[T]) bool {
				return g.edges[e.edge].tail == searchingHead
			})
			if i == -1 || groupID[i] == nextChain {
				break
			}
			groupID[i] = nextChain
			searchingHead = g.edges[group[i].edge].head
		}

		chains = append(chains, chainInfo{head: searchingHead, tail: searchingTail, newVertex: noVertex})
		nextChain++
	}

	for chain := range chains {
		var sum Vec2[T]
		contributors := 0
		for c := range group {
			if groupID[c] != chain {
				continue
			}
			seg := g.edges[group[c].edge]
			hp := g.vertices[seg.head].at(collapseTime)
			tp := g.vertices[seg.tail].at(collapseTime)
			sum = sum.Add(Vec2[T]{X: hp.X, Y: hp.Y}).Add(Vec2[T]{X: tp.X, Y: tp.Y})
			contributors += 2
		}
		collisionPt := Point[T]{X: sum.X / T(contributors), Y: sum.Y / T(contributors)}
		collisionID := addSteinerVertex(result, Point3[T]{X: collisionPt.X, Y: collisionPt.Y, Time: collapseTime})

		for c := range group {
			if groupID[c] != chain {
				continue
			}
			seg := g.edges[group[c].edge]
			g.addVertexPathEdge(result, seg.head, collisionID)
			g.addVertexPathEdge(result, seg.tail, collisionID)
			g.freeze(seg.tail, collapseTime)
			g.freeze(seg.head, collapseTime)
		}

		chains[chain].newVertex = len(g.vertices)
		g.vertices = append(g.vertices, wavefrontVertex[T]{
			pos:         collisionPt,
			skeletonID:  collisionID,
			initialTime: collapseTime,
		})
	}

	// Remove the collapsed edges.
	collapsed := make(map[int]bool, len(group))
	for _, c := range group {
		collapsed[c.edge] = true
	}
	kept := g.edges[:0]
	for ei := range g.edges {
		if !collapsed[ei] {
			kept = append(kept, g.edges[ei])
		}
	}
	g.edges = kept

	// Splice each chain's new vertex between the edges that survive on
	// either side, and give it the velocity of the corner they now form.
	for _, chain := range chains {
		if chain.head == chain.tail {
			// The chain was an entire loop; nothing links to it anymore.
			continue
		}
		in, _ := g.findInOut(chain.tail)
		_, out := g.findInOut(chain.head)
		if in == -1 || out == -1 {
			panic("collapse chain detached from wavefront")
		}
		g.edges[in].head = chain.newVertex
		g.edges[out].tail = chain.newVertex

		calcTime := g.vertices[chain.newVertex].initialTime
		v0 := g.vertices[g.edges[in].tail].at(calcTime)
		v1 := g.vertices[chain.newVertex].pos
		v2 := g.vertices[g.edges[out].head].at(calcTime)
		g.vertices[chain.newVertex].velocity = vertexVelocity(v0, v1, v2)
	}
}

// addVertexPathEdge emits the trajectory of the wavefront vertex v up to the
// output vertex finalID. Boundary vertices additionally get an edge placed on
// the two faces of their original corner.
func (g *wavefront[T]) addVertexPathEdge(result *Skeleton[T], v, finalID int) {
	vert := &g.vertices[v]
	in, out := g.findInOut(v)
	leftFace, rightFace := noFace, noFace
	if in != -1 {
		leftFace = g.edges[in].rightFace
	}
	if out != -1 {
		rightFace = g.edges[out].rightFace
	}
	if vert.skeletonID != noVertex {
		if vert.skeletonID&BoundaryVertexFlag != 0 {
			q := vert.skeletonID &^ BoundaryVertexFlag
			n := len(g.boundary)
			addEdge(result, finalID, vert.skeletonID, (q+n-1)%n, q, VertexPath)
		}
		addEdge(result, finalID, vert.skeletonID, leftFace, rightFace, VertexPath)
	} else {
		start := addSteinerVertex(result, Point3[T]{X: vert.pos.X, Y: vert.pos.Y, Time: vert.initialTime})
		addEdge(result, finalID, start, leftFace, rightFace, VertexPath)
	}
}
