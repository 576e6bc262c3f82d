package fsaverage

import "testing"

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"lh.pial.mesh", FormatMesh},
		{"/data/fsaverage/lh.aparc.label", FormatLabel},
		{"colors.lut", FormatLUT},
		{"dir.mesh/colors.lut", FormatLUT},
		{"lh.MESH", FormatUnknown},
		{"lh.Lut", FormatUnknown},
		{"lh.xyz", FormatUnknown},
		{"mesh", FormatUnknown},
		{".mesh", FormatUnknown},
		{"/data/.lut", FormatUnknown},
		{".hidden.mesh", FormatMesh},
		{"dir/.label.label", FormatLabel},
		{"lh.mesh.gz", FormatUnknown},
	}

	for _, tt := range tests {
		if got := FormatOf(tt.path); got != tt.want {
			t.Errorf("FormatOf(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatMesh, "mesh"},
		{FormatLabel, "label"},
		{FormatLUT, "lut"},
		{FormatUnknown, "unknown"},
		{Format(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", int(tt.format), got, tt.want)
		}
	}
}
