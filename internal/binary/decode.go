package binary

import (
	"fmt"

	"github.com/dyuri/fsaverage/internal/model"
)

// ReadMesh decodes a .mesh stream:
//
//	u32 vertexCount
//	f32 x vertexCount*3   (x, y, z per vertex)
//	u32 triangleCount
//	u32 x triangleCount*3 (vertex indices per triangle)
//
// All values are little-endian. Any trailing bytes are left unread.
func ReadMesh(r *Reader) (model.Mesh, error) {
	n, err := r.ReadCount(3)
	if err != nil {
		return model.Mesh{}, fmt.Errorf("read vertex count: %w", err)
	}
	points, err := r.ReadFloat32s(n)
	if err != nil {
		return model.Mesh{}, fmt.Errorf("read vertices: %w", err)
	}

	n, err = r.ReadCount(3)
	if err != nil {
		return model.Mesh{}, fmt.Errorf("read triangle count: %w", err)
	}
	faces, err := r.ReadUint32s(n)
	if err != nil {
		return model.Mesh{}, fmt.Errorf("read triangles: %w", err)
	}

	return model.Mesh{Points: points, Faces: faces}, nil
}

// ReadLabels decodes a .label stream: a u32 count followed by count u32 values
func ReadLabels(r *Reader) ([]uint32, error) {
	n, err := r.ReadCount(1)
	if err != nil {
		return nil, fmt.Errorf("read label count: %w", err)
	}
	labels, err := r.ReadUint32s(n)
	if err != nil {
		return nil, fmt.Errorf("read labels: %w", err)
	}
	return labels, nil
}
