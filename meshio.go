package swraster

import (
	"encoding/binary"
	"math"
)

// vertexRecordSize is the packed little-endian on-disk size of one Vertex:
// 3 float32 position + 1 uint32 colour + 2 float32 uv + 3 float32 normal.
const vertexRecordSize = 4*3 + 4 + 4*2 + 4*3

// LoadVertexFile decodes a packed little-endian vertex stream into a
// slice of Vertex records. A truncated trailing record is a ResourceLoad
// error - the whole file is rejected rather than silently dropping the
// partial record.
func LoadVertexFile(data []byte) ([]Vertex, error) {
	if len(data)%vertexRecordSize != 0 {
		return nil, newError(ResourceLoad, "vertex stream length %d is not a multiple of the record size %d", len(data), vertexRecordSize)
	}
	n := len(data) / vertexRecordSize
	out := make([]Vertex, n)
	for i := 0; i < n; i++ {
		rec := data[i*vertexRecordSize:]
		out[i] = Vertex{
			X: readFloat32(rec[0:4]),
			Y: readFloat32(rec[4:8]),
			Z: readFloat32(rec[8:12]),
			Colour: binary.LittleEndian.Uint32(rec[12:16]),
			U: readFloat32(rec[16:20]),
			V: readFloat32(rec[20:24]),
			NX: readFloat32(rec[24:28]),
			NY: readFloat32(rec[28:32]),
			NZ: readFloat32(rec[32:36]),
		}
	}
	return out, nil
}

// LoadIndexFile decodes a packed little-endian uint16 index stream.
func LoadIndexFile(data []byte) ([]uint16, error) {
	if len(data)%2 != 0 {
		return nil, newError(ResourceLoad, "index stream length %d is odd", len(data))
	}
	n := len(data) / 2
	out := make([]uint16, n)
	for i := 0; i < n; i++ {
		out[i] = binary.LittleEndian.Uint16(data[i*2 : i*2+2])
	}
	return out, nil
}

func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

// EncodeVertexFile is the inverse of LoadVertexFile, used by tools and
// tests to build fixtures without depending on a specific exporter.
func EncodeVertexFile(verts []Vertex) []byte {
	out := make([]byte, len(verts)*vertexRecordSize)
	for i, v := range verts {
		rec := out[i*vertexRecordSize:]
		writeFloat32(rec[0:4], v.X)
		writeFloat32(rec[4:8], v.Y)
		writeFloat32(rec[8:12], v.Z)
		binary.LittleEndian.PutUint32(rec[12:16], v.Colour)
		writeFloat32(rec[16:20], v.U)
		writeFloat32(rec[20:24], v.V)
		writeFloat32(rec[24:28], v.NX)
		writeFloat32(rec[28:32], v.NY)
		writeFloat32(rec[32:36], v.NZ)
	}
	return out
}

func EncodeIndexFile(indices []uint16) []byte {
	out := make([]byte, len(indices)*2)
	for i, idx := range indices {
		binary.LittleEndian.PutUint16(out[i*2:i*2+2], idx)
	}
	return out
}

func writeFloat32(b []byte, f float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(f))
}
