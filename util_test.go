package skeleton

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// steinerAt returns the index of the steiner vertex near want, or −1.
func steinerAt[T Scalar](s *Skeleton[T], want Point3[T]) int {
	eps := epsilon[T]() * 10
	for i := range s.SteinerVertices {
		if s.SteinerVertices[i].NearEqual(want, eps) {
			return i
		}
	}
	return -1
}

// hasEdge reports whether the skeleton contains an edge of the given kind
// between the two vertex ids, in either direction, on any face or unplaced.
func hasEdge[T Scalar](s *Skeleton[T], head, tail int, kind EdgeKind) bool {
	check := func(edges []Edge) bool {
		for _, e := range edges {
			if e.Kind != kind {
				continue
			}
			if (e.Head == head && e.Tail == tail) || (e.Head == tail && e.Tail == head) {
				return true
			}
		}
		return false
	}
	for _, f := range s.Faces {
		if check(f.Edges) {
			return true
		}
	}
	return check(s.UnplacedEdges)
}

// allEdges collects every output edge of the skeleton, faces and unplaced.
func allEdges[T Scalar](s *Skeleton[T]) []Edge {
	var edges []Edge
	for _, f := range s.Faces {
		edges = append(edges, f.Edges...)
	}
	return append(edges, s.UnplacedEdges...)
}
