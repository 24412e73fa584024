package skeleton

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func square(side float64) []Point[float64] {
	return []Point[float64]{
		Pt(0.0, 0.0),
		Pt(side, 0.0),
		Pt(side, side),
		Pt(0.0, side),
	}
}

// lShape is an L with a single reflex vertex at (4, 2): a strip of height 2
// along the bottom, with a tower over x ∈ [4, 8].
func lShape() []Point[float64] {
	return []Point[float64]{
		Pt(0.0, 0.0),
		Pt(8.0, 0.0),
		Pt(8.0, 4.0),
		Pt(4.0, 4.0),
		Pt(4.0, 2.0),
		Pt(0.0, 2.0),
	}
}

func TestVertexVelocity(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)

	// convex right angle: the corner moves along the diagonal
	diff(t, Vec(1.0, 1.0), vertexVelocity(Pt(0.0, 2.0), Pt(0.0, 0.0), Pt(2.0, 0.0)), approx)

	// reflex corner of the L: moves into the interior, down and right
	diff(t, Vec(1.0, -1.0), vertexVelocity(Pt(4.0, 4.0), Pt(4.0, 2.0), Pt(0.0, 2.0)), approx)

	// collinear and degenerate corners have no defined bisector
	diff(t, Vec2[float64]{}, vertexVelocity(Pt(0.0, 0.0), Pt(1.0, 0.0), Pt(2.0, 0.0)))
	diff(t, Vec2[float64]{}, vertexVelocity(Pt(0.0, 0.0), Pt(1.0, 0.0), Pt(0.0, 0.0)))
	diff(t, Vec2[float64]{}, vertexVelocity(Pt(0.0, 0.0), Pt(0.0, 0.0), Pt(1.0, 0.0)))
}

func TestWindingOf(t *testing.T) {
	if w := windingOf(Pt(0.0, 0.0), Pt(1.0, 0.0), Pt(1.0, 1.0), 1e-6); w != windLeft {
		t.Errorf("got %v, want windLeft", w)
	}
	if w := windingOf(Pt(0.0, 0.0), Pt(1.0, 0.0), Pt(1.0, -1.0), 1e-6); w != windRight {
		t.Errorf("got %v, want windRight", w)
	}
	if w := windingOf(Pt(0.0, 0.0), Pt(1.0, 0.0), Pt(2.0, 0.0), 1e-6); w != windStraight {
		t.Errorf("got %v, want windStraight", w)
	}
}

func TestBuildWavefrontSquare(t *testing.T) {
	g, err := buildWavefront(square(2))
	if err != nil {
		t.Fatal(err)
	}
	if len(g.vertices) != 4 || len(g.edges) != 4 {
		t.Fatalf("got %d vertices and %d edges, want 4 and 4", len(g.vertices), len(g.edges))
	}
	if len(g.motorcycles) != 0 {
		t.Fatalf("got %d motorcycles, want none for a convex polygon", len(g.motorcycles))
	}
	for i, e := range g.edges {
		if e.tail != i || e.head != (i+1)%4 || e.rightFace != i || e.leftFace != noFace {
			t.Errorf("edge %d has unexpected linkage: %+v", i, e)
		}
	}
	diff(t, Vec(1.0, 1.0), g.vertices[0].velocity, cmpopts.EquateApprox(0, 1e-12))
	diff(t, Vec(-1.0, -1.0), g.vertices[2].velocity, cmpopts.EquateApprox(0, 1e-12))
}

func TestBuildWavefrontReflex(t *testing.T) {
	g, err := buildWavefront(lShape())
	if err != nil {
		t.Fatal(err)
	}
	if len(g.motorcycles) != 1 {
		t.Fatalf("got %d motorcycles, want exactly 1", len(g.motorcycles))
	}
	m := g.motorcycles[0]
	if m.head != 4 || m.tail != 6 || m.leftFace != 3 || m.rightFace != 4 {
		t.Errorf("unexpected motorcycle linkage: %+v", m)
	}
	anchor := g.vertices[m.tail]
	if !anchor.velocity.NearZero(0) {
		t.Errorf("anchor vertex moves: %v", anchor.velocity)
	}
	diff(t, Pt(4.0, 2.0), anchor.pos)
}

func TestBuildWavefrontDegenerate(t *testing.T) {
	cases := []struct {
		name string
		pts  []Point[float64]
	}{
		{"too few vertices", []Point[float64]{Pt(0.0, 0.0), Pt(1.0, 0.0)}},
		{"clockwise", []Point[float64]{Pt(0.0, 0.0), Pt(0.0, 2.0), Pt(2.0, 2.0), Pt(2.0, 0.0)}},
		{"duplicate adjacent", []Point[float64]{Pt(0.0, 0.0), Pt(2.0, 0.0), Pt(2.0, 0.0), Pt(2.0, 2.0), Pt(0.0, 2.0)}},
		{"collinear vertex", []Point[float64]{Pt(0.0, 0.0), Pt(1.0, 0.0), Pt(2.0, 0.0), Pt(2.0, 2.0), Pt(0.0, 2.0)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := buildWavefront(tc.pts); !errors.Is(err, ErrDegenerateInput) {
				t.Errorf("got error %v, want ErrDegenerateInput", err)
			}
		})
	}
}
