// Package skeleton computes straight skeletons of simple polygons.
//
// The straight skeleton of a polygon is the graph traced out by the
// polygon's edges as they shrink inward at uniform speed along their angle
// bisectors, until they collapse, split, or reach a caller-specified maximum
// inset distance. It is useful for insetting outlines, roof and terrain
// generation, and offset-based decomposition.
//
// The computation is a discrete-event simulation of the shrinking boundary
// (the wavefront). Edge collapses merge wavefront vertices; reflex vertices
// shoot "motorcycles" into the interior that split the wavefront where they
// strike it. [CalculateStraightSkeleton] runs the simulation and returns a
// [Skeleton]: one face per input edge, the interior arcs as
// [VertexPath]-tagged edges over a shared pool of steiner vertices, and the
// boundary at the stop distance as [Wavefront]-tagged edges, which
// [Skeleton.WavefrontAsVertexLoops] reassembles into closed loops.
//
// # Input conventions
//
// Polygons are ordered vertex loops in a counter-clockwise space (+y up the
// page, +x to the right). The first and last vertices must be distinct;
// the closing segment is implied. Self-intersecting polygons and polygons
// with holes are not supported.
//
// # Precision
//
// All types are parameterized over a floating-point coordinate type (see
// [Scalar]). Positions and event times within a precision-dependent epsilon
// of each other are treated as coincident; near-simultaneous events are
// grouped and processed together rather than reported as errors.
package skeleton
