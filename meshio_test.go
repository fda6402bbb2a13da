package swraster

import "testing"

func TestVertexFileRoundTrip(t *testing.T) {
	verts := []Vertex{
		{X: 1, Y: 2, Z: 3, Colour: 0xFFAABBCC, U: 0.5, V: 0.25, NX: 0, NY: 1, NZ: 0},
		{X: -1, Y: -2, Z: -3, Colour: 0x11223344, U: 1, V: 0, NX: 1, NY: 0, NZ: 0},
	}
	data := EncodeVertexFile(verts)
	decoded, err := LoadVertexFile(data)
	if err != nil {
		t.Fatalf("LoadVertexFile() error = %v", err)
	}
	if len(decoded) != len(verts) {
		t.Fatalf("decoded %d vertices, want %d", len(decoded), len(verts))
	}
	for i := range verts {
		if decoded[i] != verts[i] {
			t.Fatalf("vertex %d round-tripped as %v, want %v", i, decoded[i], verts[i])
		}
	}
}

func TestLoadVertexFileTruncated(t *testing.T) {
	if _, err := LoadVertexFile(make([]byte, vertexRecordSize+1)); err == nil {
		t.Fatalf("LoadVertexFile() of a truncated stream should error")
	}
}

func TestIndexFileRoundTrip(t *testing.T) {
	indices := []uint16{0, 1, 2, 2, 1, 3}
	data := EncodeIndexFile(indices)
	decoded, err := LoadIndexFile(data)
	if err != nil {
		t.Fatalf("LoadIndexFile() error = %v", err)
	}
	for i := range indices {
		if decoded[i] != indices[i] {
			t.Fatalf("index %d = %v, want %v", i, decoded[i], indices[i])
		}
	}
}

func TestLoadIndexFileOddLength(t *testing.T) {
	if _, err := LoadIndexFile([]byte{1, 2, 3}); err == nil {
		t.Fatalf("LoadIndexFile() of an odd-length stream should error")
	}
}
