package scene

import "github.com/Carmen-Shannon/oxy-trace/primitive"

// Template is a source of model-space primitives, shared by every
// SceneObject that instances it. A Template is immutable once built, so
// many objects can reference the same one without owning a private copy.
type Template interface {
	// Primitives returns the template's model-space primitives.
	Primitives() []primitive.TraceablePrimitive
}

// TrianglesTemplate is a Template built directly from a slice of triangles,
// used for hand-built scenes and tests that don't need a file on disk.
type TrianglesTemplate struct {
	Triangles []primitive.Triangle
}

func (t TrianglesTemplate) Primitives() []primitive.TraceablePrimitive {
	out := make([]primitive.TraceablePrimitive, len(t.Triangles))
	for i, tri := range t.Triangles {
		out[i] = tri
	}
	return out
}

// SphereTemplate is a Template wrapping a single sphere.
type SphereTemplate struct {
	Sphere primitive.Sphere
}

func (s SphereTemplate) Primitives() []primitive.TraceablePrimitive {
	return []primitive.TraceablePrimitive{s.Sphere}
}
