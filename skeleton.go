package skeleton

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrDegenerateInput reports an input polygon the simulation cannot
	// start from: too few vertices, duplicate adjacent vertices, the wrong
	// winding, or a corner with no defined bisector direction.
	ErrDegenerateInput = errors.New("degenerate input polygon")

	// ErrOpenWavefront reports a wavefront edge set that does not form
	// closed loops. For valid simple-polygon input this indicates a bug.
	ErrOpenWavefront = errors.New("wavefront does not form closed loops")
)

// BoundaryVertexFlag tags vertex ids in output edges that refer to input
// polygon corners rather than steiner vertices. id &^ BoundaryVertexFlag is
// the input vertex index.
const BoundaryVertexFlag = 1 << 31

const (
	noFace   = -1
	noVertex = -1
)

// EdgeKind distinguishes the two kinds of output edges.
type EdgeKind uint8

const (
	// VertexPath edges trace the trajectory of a wavefront vertex through
	// the interior; these are the arcs of the straight skeleton proper.
	VertexPath EdgeKind = iota
	// Wavefront edges lie on the boundary at the final inset distance.
	Wavefront
)

// An Edge connects two vertices of the output skeleton. Head and Tail index
// the steiner vertex pool, except that ids with BoundaryVertexFlag set refer
// to input polygon corners.
type Edge struct {
	Head, Tail int
	Kind       EdgeKind
}

// A Face collects the output edges swept out by one input polygon edge.
type Face struct {
	Edges []Edge
}

// Skeleton is the result of a straight skeleton computation. It is an
// independent value with no aliasing into the simulation that produced it.
type Skeleton[T Scalar] struct {
	// Faces has one entry per input polygon edge, in input order.
	Faces []Face
	// SteinerVertices is the shared pool of interior vertices, deduplicated
	// by position.
	SteinerVertices []Point3[T]
	// UnplacedEdges holds edges whose adjacent face could not be determined.
	UnplacedEdges []Edge
}

// CalculateStraightSkeleton computes the straight skeleton of a simple
// counter-clockwise polygon. The first and last vertices must be distinct;
// the closing segment between them is implied. maxInset bounds the simulated
// inset distance: pass +Inf (or any sufficiently large value) to run the
// wavefront to full collapse, or a smaller value to stop early and keep the
// partially inset boundary.
func CalculateStraightSkeleton[T Scalar](vertices []Point[T], maxInset T) (*Skeleton[T], error) {
	g, err := buildWavefront(vertices)
	if err != nil {
		return nil, err
	}
	return g.skeleton(maxInset), nil
}

func addSteinerVertex[T Scalar](s *Skeleton[T], pt Point3[T]) int {
	eps := epsilon[T]()
	for i := range s.SteinerVertices {
		if s.SteinerVertices[i].NearEqual(pt, eps) {
			return i
		}
	}
	s.SteinerVertices = append(s.SteinerVertices, pt)
	return len(s.SteinerVertices) - 1
}

func addUnique(dst *[]Edge, e Edge) {
	for _, have := range *dst {
		if have.Head == e.Head && have.Tail == e.Tail {
			return
		}
	}
	*dst = append(*dst, e)
}

// addEdge records an output edge on both of its adjacent faces, flipped so
// that each face sees it in its own orientation. Edges without a resolved
// face go to the unplaced list; zero-length edges are dropped.
func addEdge[T Scalar](s *Skeleton[T], head, tail, leftFace, rightFace int, kind EdgeKind) {
	if head == tail {
		return
	}
	if rightFace != noFace {
		addUnique(&s.Faces[rightFace].Edges, Edge{Head: head, Tail: tail, Kind: kind})
	} else {
		addUnique(&s.UnplacedEdges, Edge{Head: head, Tail: tail, Kind: kind})
	}
	if leftFace != noFace {
		addUnique(&s.Faces[leftFace].Edges, Edge{Head: tail, Tail: head, Kind: kind})
	} else {
		addUnique(&s.UnplacedEdges, Edge{Head: tail, Tail: head, Kind: kind})
	}
}

// WavefrontAsVertexLoops reassembles the skeleton's Wavefront-tagged edges
// into ordered closed vertex loops. A skeleton computed to full collapse has
// no wavefront left and yields no loops; one stopped at a smaller inset
// yields the loops of the inset boundary.
func (s *Skeleton[T]) WavefrontAsVertexLoops() ([][]int, error) {
	var soup [][2]int
	for _, f := range s.Faces {
		for _, e := range f.Edges {
			if e.Kind == Wavefront {
				soup = append(soup, [2]int{e.Head, e.Tail})
			}
		}
	}
	// Edges in UnplacedEdges aren't needed as long as every wavefront edge
	// was assigned to its source face.
	return VertexLoopsOrdered(soup)
}

// VertexLoopsOrdered reassembles an unordered soup of directed segments into
// closed vertex loops, by repeatedly following segments that join
// end-to-end. It assumes no vertex joins more than two segments per
// direction; it returns ErrOpenWavefront if a chain cannot be extended while
// segments remain.
func VertexLoopsOrdered(segments [][2]int) ([][]int, error) {
	pool := slices.Clone(segments)
	var loops [][]int
	for len(pool) > 0 {
		seed := pool[len(pool)-1]
		pool = pool[:len(pool)-1]
		loop := []int{seed[0], seed[1]}
		for {
			searching := loop[len(loop)-1]
			hit := -1
			for i := range pool {
				if pool[i][0] == searching {
					hit = i
					break
				}
			}
			if hit == -1 {
				return nil, fmt.Errorf("no segment continues from vertex %d: %w", searching, ErrOpenWavefront)
			}
			next := pool[hit][1]
			pool = slices.Delete(pool, hit, hit+1)
			if slices.Contains(loop, next) {
				break // closed the loop
			}
			loop = append(loop, next)
		}
		loops = append(loops, loop)
	}
	return loops, nil
}
