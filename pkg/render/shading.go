package render

import (
	"slices"

	"github.com/taigrr/polyview/pkg/math3d"
	"github.com/taigrr/polyview/pkg/models"
)

// FaceRecord is the per-frame shading result for one face.
type FaceRecord struct {
	Indices    models.Face
	Depth      float64 // mean rotated Z
	Brightness float64 // in [0, 1]
	Index      int     // position in the mesh face list, used for debug labels
}

// FaceNormal returns the unit normal of the plane through a, b and c.
// Counter-clockwise points give a normal facing the viewer's side.
func FaceNormal(a, b, c math3d.Vec3) math3d.Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// Brightness returns the Lambert term dot(normal, light) clamped to [0, 1].
// Both vectors are normalized first; a zero vector yields 0.
func Brightness(normal, light math3d.Vec3) float64 {
	return math3d.Clamp(normal.Normalize().Dot(light.Normalize()), 0, 1)
}

// ShadeFaces computes depth and brightness for every face of mesh from its
// rotated vertices. The result is in mesh order.
func ShadeFaces(mesh *models.Mesh, rotated []math3d.Vec3, light math3d.Vec3) []FaceRecord {
	light = light.Normalize()
	records := make([]FaceRecord, len(mesh.Faces))
	for i, f := range mesh.Faces {
		n := FaceNormal(rotated[f[0]], rotated[f[1]], rotated[f[2]])

		var depth float64
		for _, idx := range f {
			depth += rotated[idx].Z
		}
		depth /= float64(len(f))

		records[i] = FaceRecord{
			Indices:    f,
			Depth:      depth,
			Brightness: Brightness(n, light),
			Index:      i,
		}
	}
	return records
}

// SortByDepth orders faces farthest first (descending depth) so later faces
// paint over earlier ones. Equal depths keep their input order.
func SortByDepth(faces []FaceRecord) {
	slices.SortStableFunc(faces, func(a, b FaceRecord) int {
		switch {
		case a.Depth > b.Depth:
			return -1
		case a.Depth < b.Depth:
			return 1
		}
		return 0
	})
}
