// Package fsaverage loads anatomical surface meshes and their annotations.
//
// A Surface is filled from up to three files, selected by extension:
//
//	.mesh   binary vertex coordinates and triangle indices
//	.label  binary per-vertex region labels
//	.lut    text color lookup table
//
// Example usage:
//
//	s := fsaverage.New()
//	if err := s.Load("lh.pial.mesh"); err != nil {
//	    log.Fatal(err)
//	}
//	if err := s.Load("lh.aparc.label"); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(s.VertexCount(), len(s.Labels))
//
// Binary files are little-endian. A Surface is not safe for concurrent Load
// calls.
package fsaverage

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/dyuri/fsaverage/internal/binary"
	"github.com/dyuri/fsaverage/internal/model"
	"github.com/dyuri/fsaverage/internal/text"
	"github.com/flywave/go3d/vec3"
	"github.com/sirupsen/logrus"
)

// ColorEntry is one row of a color lookup table
type ColorEntry = model.ColorEntry

// ColorTable is a color lookup table in file order
type ColorTable = model.ColorTable

// Surface holds one mesh with its optional labels and color table.
//
// Each successful Load replaces the field(s) of its format and leaves the
// others alone. A failed Load changes nothing. No consistency between fields
// is enforced: Labels need not match the vertex count and Faces are not
// checked against Points.
type Surface struct {
	Points []float32  // x, y, z per vertex
	Faces  []uint32   // three vertex indices per triangle
	Labels []uint32   // one region label per vertex, by convention
	LUT    ColorTable // color table in file order

	log         logrus.FieldLogger
	codePage    int
	maxElements int64
}

// New creates an empty Surface
func New(opts ...Option) *Surface {
	s := &Surface{}
	defaultOptions(s)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadFiles creates a Surface and loads paths into it in order.
// It stops at the first failure.
func LoadFiles(paths []string, opts ...Option) (*Surface, error) {
	s := New(opts...)
	for _, p := range paths {
		if err := s.Load(p); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Load reads path and stores its contents in the field matching its
// extension. On failure the error is logged and returned as an *Error whose
// kind can be tested with errors.Is (ErrNotFound, ErrOpenFailed,
// ErrUnsupportedFormat, ErrTruncated, ErrTooLarge, ErrReadFailed).
func (s *Surface) Load(path string) error {
	format := FormatOf(path)
	entry := s.logger().WithFields(logrus.Fields{
		"path":   path,
		"format": format.String(),
	})

	if err := s.load(path, format); err != nil {
		entry.WithError(err).Error("load failed")
		return err
	}

	entry.WithFields(logrus.Fields{
		"vertices": s.VertexCount(),
		"faces":    s.FaceCount(),
		"labels":   len(s.Labels),
		"lut":      len(s.LUT),
	}).Debug("loaded")
	return nil
}

func (s *Surface) load(path string, format Format) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return newError(ErrNotFound, path, nil)
		}
		return newError(ErrOpenFailed, path, err)
	}

	if format == FormatUnknown {
		return newError(ErrUnsupportedFormat, path, nil)
	}
	if info.IsDir() {
		return newError(ErrOpenFailed, path, errors.New("is a directory"))
	}

	f, err := os.Open(path)
	if err != nil {
		return newError(ErrOpenFailed, path, err)
	}
	defer f.Close()

	// Pipes and devices report no meaningful size
	size := int64(-1)
	if info.Mode().IsRegular() {
		size = info.Size()
	}

	switch format {
	case FormatMesh:
		mesh, err := binary.ReadMesh(s.binaryReader(f, size))
		if err != nil {
			return decodeError(path, err)
		}
		s.Points = mesh.Points
		s.Faces = mesh.Faces

	case FormatLabel:
		labels, err := binary.ReadLabels(s.binaryReader(f, size))
		if err != nil {
			return decodeError(path, err)
		}
		s.Labels = labels

	case FormatLUT:
		r, err := text.NewReaderCodePage(f, s.codePage)
		if err != nil {
			return newError(ErrReadFailed, path, err)
		}
		lut, err := r.Read()
		if err != nil {
			return decodeError(path, err)
		}
		s.LUT = lut
	}

	return nil
}

func (s *Surface) binaryReader(r io.Reader, size int64) *binary.Reader {
	br := binary.NewReader(r, size)
	br.SetMaxElements(s.maxElements)
	return br
}

// decodeError maps a decoder failure onto an error kind
func decodeError(path string, err error) *Error {
	switch {
	case errors.Is(err, binary.ErrTruncated):
		return newError(ErrTruncated, path, err)
	case errors.Is(err, binary.ErrTooLarge):
		return newError(ErrTooLarge, path, err)
	default:
		return newError(ErrReadFailed, path, err)
	}
}

func (s *Surface) logger() logrus.FieldLogger {
	if s.log == nil {
		return logrus.StandardLogger()
	}
	return s.log
}

// VertexCount returns len(Points) / 3
func (s *Surface) VertexCount() int {
	return len(s.Points) / 3
}

// FaceCount returns len(Faces) / 3
func (s *Surface) FaceCount() int {
	return len(s.Faces) / 3
}

// Vertex returns the coordinates of vertex i. It panics if i is out of range.
func (s *Surface) Vertex(i int) vec3.T {
	p := s.Points[i*3 : i*3+3]
	return vec3.T{p[0], p[1], p[2]}
}

// Face returns the vertex indices of triangle i. It panics if i is out of range.
func (s *Surface) Face(i int) [3]uint32 {
	f := s.Faces[i*3 : i*3+3]
	return [3]uint32{f[0], f[1], f[2]}
}

// LookupColor returns the first LUT entry whose R field equals id
func (s *Surface) LookupColor(id int) (ColorEntry, bool) {
	return s.LUT.Find(id)
}
