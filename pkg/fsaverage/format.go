package fsaverage

import "path/filepath"

// Format identifies which decoder handles a file
type Format int

const (
	FormatUnknown Format = iota
	FormatMesh           // binary vertices and triangles
	FormatLabel          // binary per-vertex labels
	FormatLUT            // text color lookup table
)

// extensions is the dispatch table. Matching is exact and case-sensitive.
var extensions = map[string]Format{
	".mesh":  FormatMesh,
	".label": FormatLabel,
	".lut":   FormatLUT,
}

// FormatOf returns the format selected by the extension of path.
// A leading dot does not start an extension, so ".mesh" has none.
func FormatOf(path string) Format {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base {
		return FormatUnknown
	}
	return extensions[ext]
}

func (f Format) String() string {
	switch f {
	case FormatMesh:
		return "mesh"
	case FormatLabel:
		return "label"
	case FormatLUT:
		return "lut"
	default:
		return "unknown"
	}
}
