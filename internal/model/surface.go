package model

// Mesh holds decoded geometry in the flat layout used on disk.
// Points is interleaved x,y,z per vertex; Faces is interleaved vertex index
// triples. Indices are not checked against the vertex count.
type Mesh struct {
	Points []float32
	Faces  []uint32
}

// ColorEntry is one line of a color lookup table.
// The four integers are read positionally. R conventionally carries the
// region id, but nothing in the decoder treats it specially.
type ColorEntry struct {
	R    int    `json:"r"`
	G    int    `json:"g"`
	B    int    `json:"b"`
	A    int    `json:"a"`
	Name string `json:"name"`
}

// ColorTable is a color lookup table in file order
type ColorTable []ColorEntry

// Find returns the first entry whose R field equals id
func (t ColorTable) Find(id int) (ColorEntry, bool) {
	for _, e := range t {
		if e.R == id {
			return e, true
		}
	}
	return ColorEntry{}, false
}
