// Package models provides the mesh representation and the shape catalogue for polyview.
package models

import (
	"fmt"

	"github.com/taigrr/polyview/pkg/math3d"
)

// Mesh represents a polyhedral or grid-like 3D shape.
// Faces and edges refer to vertices by their index in Vertices.
type Mesh struct {
	Name     string
	Kind     Kind
	Vertices []math3d.Vec3
	Faces    []Face
	Edges    []Edge // Derived from Faces by NewMesh

	// Bounding box (calculated on construction)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// Face is an ordered ring of at least 3 vertex indices describing one planar,
// convex polygon. Rings are counter-clockwise seen from outside the shape so
// the cross product of the first two edges points outward.
type Face []int

// Edge is an undirected edge stored as (min, max) vertex indices.
type Edge struct {
	A, B int
}

// NewEdge returns the canonical edge between vertices a and b.
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// NewMesh builds a mesh, derives its edge list and bounds.
// It panics if the faces are malformed: generators must never produce such a mesh.
func NewMesh(kind Kind, vertices []math3d.Vec3, faces []Face) *Mesh {
	m := &Mesh{
		Name:     kind.String(),
		Kind:     kind,
		Vertices: vertices,
		Faces:    faces,
	}
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("models: malformed %s mesh: %v", kind, err))
	}
	m.Edges = DeriveEdges(faces)
	m.CalculateBounds()
	return m
}

// DeriveEdges walks every face ring, including the pair that closes it, and
// returns each undirected edge once, in order of first appearance.
func DeriveEdges(faces []Face) []Edge {
	seen := make(map[Edge]struct{})
	var edges []Edge
	for _, f := range faces {
		for i := range f {
			e := NewEdge(f[i], f[(i+1)%len(f)])
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	return edges
}

// Validate reports the first face that has fewer than 3 indices or refers to
// a vertex that does not exist.
func (m *Mesh) Validate() error {
	for i, f := range m.Faces {
		if len(f) < 3 {
			return fmt.Errorf("face %d has %d indices, need at least 3", i, len(f))
		}
		for _, idx := range f {
			if idx < 0 || idx >= len(m.Vertices) {
				return fmt.Errorf("face %d refers to vertex %d, mesh has %d", i, idx, len(m.Vertices))
			}
		}
	}
	return nil
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0]
	m.BoundsMax = m.Vertices[0]

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v)
		m.BoundsMax = m.BoundsMax.Max(v)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// Fit centers the mesh on the origin and scales it uniformly so its largest
// dimension equals extent. Loaded models use this to match the catalogue's size.
func (m *Mesh) Fit(extent float64) {
	m.CalculateBounds()
	center := m.Center()
	size := m.Size()
	maxDim := max(size.X, size.Y, size.Z)
	if maxDim == 0 {
		return
	}
	s := extent / maxDim
	for i, v := range m.Vertices {
		m.Vertices[i] = v.Sub(center).Scale(s)
	}
	m.CalculateBounds()
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// EdgeCount returns the number of unique edges.
func (m *Mesh) EdgeCount() int {
	return len(m.Edges)
}
