package main

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dyuri/fsaverage/pkg/fsaverage"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFixtures(t *testing.T) (mesh, label, lut string) {
	t.Helper()
	dir := t.TempDir()

	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(3))
	binary.Write(&buf, binary.LittleEndian, []float32{0, 0, 0, 1, 0, 0, 0, 2, 0})
	binary.Write(&buf, binary.LittleEndian, uint32(1))
	binary.Write(&buf, binary.LittleEndian, []uint32{0, 1, 2})
	mesh = filepath.Join(dir, "lh.mesh")
	if err := os.WriteFile(mesh, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	buf.Reset()
	binary.Write(&buf, binary.LittleEndian, uint32(3))
	binary.Write(&buf, binary.LittleEndian, []uint32{0, 1, 1})
	label = filepath.Join(dir, "lh.label")
	if err := os.WriteFile(label, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	lut = filepath.Join(dir, "colors.lut")
	if err := os.WriteFile(lut, []byte("0 0 0 0 unknown\n1 10 20 30 cortex\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return mesh, label, lut
}

func TestInfoText(t *testing.T) {
	mesh, label, lut := writeFixtures(t)

	out, err := runCmd(t, "info", mesh, label, lut, "--vertices", "2")
	if err != nil {
		t.Fatalf("info failed: %v", err)
	}

	for _, want := range []string{
		"Vertices:         3",
		"Triangles:        1",
		"Labels:           3",
		"LUT entries:      2",
		"1.000000",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "note:") {
		t.Errorf("unexpected label mismatch note:\n%s", out)
	}
}

func TestInfoJSON(t *testing.T) {
	mesh, _, _ := writeFixtures(t)

	out, err := runCmd(t, "info", "--json", "--vertices", "10", mesh)
	if err != nil {
		t.Fatalf("info failed: %v", err)
	}

	var info struct {
		Counts   map[string]int `json:"counts"`
		Vertices [][3]float32   `json:"vertices"`
	}
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if info.Counts["vertices"] != 3 || info.Counts["triangles"] != 1 {
		t.Errorf("counts = %v", info.Counts)
	}
	if len(info.Vertices) != 3 {
		t.Fatalf("Got %d vertices, want 3", len(info.Vertices))
	}
	if info.Vertices[2][1] != 2 {
		t.Errorf("vertex 2 = %v, want [0 2 0]", info.Vertices[2])
	}
}

func TestInfoJSONNonFinite(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(2))
	binary.Write(&buf, binary.LittleEndian, []float32{
		float32(math.NaN()), float32(math.Inf(1)), float32(math.Inf(-1)),
		0.5, -2, 0,
	})
	binary.Write(&buf, binary.LittleEndian, uint32(0))
	path := filepath.Join(t.TempDir(), "odd.mesh")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCmd(t, "info", "--json", "--vertices", "2", path)
	if err != nil {
		t.Fatalf("info failed: %v", err)
	}

	var info struct {
		Vertices [][3]interface{} `json:"vertices"`
	}
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(info.Vertices) != 2 {
		t.Fatalf("Got %d vertices, want 2", len(info.Vertices))
	}
	want := [3]interface{}{"NaN", "+Inf", "-Inf"}
	if info.Vertices[0] != want {
		t.Errorf("vertex 0 = %v, want %v", info.Vertices[0], want)
	}
	if info.Vertices[1][0] != 0.5 || info.Vertices[1][1] != -2.0 {
		t.Errorf("vertex 1 = %v, want [0.5 -2 0]", info.Vertices[1])
	}
}

func TestInfoMissingFile(t *testing.T) {
	_, err := runCmd(t, "info", filepath.Join(t.TempDir(), "missing.mesh"))
	if !errors.Is(err, fsaverage.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLut(t *testing.T) {
	_, _, lut := writeFixtures(t)

	out, err := runCmd(t, "lut", lut)
	if err != nil {
		t.Fatalf("lut failed: %v", err)
	}
	if !strings.Contains(out, "cortex") || !strings.Contains(out, "2 entries") {
		t.Errorf("unexpected output:\n%s", out)
	}

	out, err = runCmd(t, "lut", "--json", lut)
	if err != nil {
		t.Fatalf("lut --json failed: %v", err)
	}
	var entries []fsaverage.ColorEntry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(entries) != 2 || entries[1].B != 20 {
		t.Errorf("entries = %+v", entries)
	}
}

func TestLutRejectsOtherFormats(t *testing.T) {
	mesh, _, _ := writeFixtures(t)

	if _, err := runCmd(t, "lut", mesh); err == nil {
		t.Error("lut on a mesh succeeded, want error")
	}
}

func TestVersion(t *testing.T) {
	out, err := runCmd(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "fsaverage version dev") {
		t.Errorf("unexpected output: %s", out)
	}
}
