package swraster

// Vertex is the mutable per-vertex record threaded through the pipeline:
// object space on submission, overwritten in place with camera space after
// ToCameraSpace, then with screen space after projection. Colour and UV
// travel along unchanged except where lighting replaces the colour and
// where the clipper interpolates new values at a cut edge.
type Vertex struct {
	X, Y, Z    float32
	Colour     uint32 // packed 0xAABBGGRR
	U, V       float32
	NX, NY, NZ float32
}

func (v Vertex) Position() Vector3 {
	return Vector3{v.X, v.Y, v.Z}
}

func (v *Vertex) SetPosition(p Vector3) {
	v.X, v.Y, v.Z = p.X, p.Y, p.Z
}

func (v Vertex) Normal() Vector3 {
	return Vector3{v.NX, v.NY, v.NZ}
}

func (v *Vertex) SetNormal(n Vector3) {
	v.NX, v.NY, v.NZ = n.X, n.Y, n.Z
}

// VertexBuffer is a fixed-capacity, caller-owned collection of vertices.
// The CORE never grows or copies it; all of the rasterizer's per-frame
// work reads through it by index.
type VertexBuffer struct {
	verts []Vertex
}

// NewVertexBuffer wraps an existing vertex slice. The caller retains
// ownership; CORE never reallocates it.
func NewVertexBuffer(verts []Vertex) *VertexBuffer {
	return &VertexBuffer{verts: verts}
}

func (vb *VertexBuffer) Len() int { return len(vb.verts) }

func (vb *VertexBuffer) At(i int) Vertex { return vb.verts[i] }

func (vb *VertexBuffer) Set(i int, v Vertex) { vb.verts[i] = v }

func (vb *VertexBuffer) Slice() []Vertex { return vb.verts }

// IndexBuffer holds triangle-list or triangle-strip indices into a
// VertexBuffer.
type IndexBuffer struct {
	indices []uint16
}

func NewIndexBuffer(indices []uint16) *IndexBuffer {
	return &IndexBuffer{indices: indices}
}

func (ib *IndexBuffer) Len() int { return len(ib.indices) }

func (ib *IndexBuffer) At(i int) uint16 { return ib.indices[i] }

// TriangleRenderType selects how an IndexBuffer's indices group into
// triangles.
type TriangleRenderType int

const (
	TriangleList TriangleRenderType = iota
	TriangleStrip
)

// TriangleCount returns how many triangles n indices make up under mode.
func TriangleCount(n int, mode TriangleRenderType) int {
	if mode == TriangleStrip {
		if n < 3 {
			return 0
		}
		return n - 2
	}
	return n / 3
}

// TriangleIndices returns the three vertex-buffer indices of triangle i
// (0-based) for mode, reading from idx (nil meaning an implicit 0..n-1
// identity index buffer over numVerts vertices).
func TriangleIndices(idx *IndexBuffer, numVerts int, i int, mode TriangleRenderType) (a, b, c uint16) {
	at := func(j int) uint16 {
		if idx != nil {
			return idx.At(j)
		}
		return uint16(j)
	}
	if mode == TriangleStrip {
		if i%2 == 0 {
			return at(i), at(i + 1), at(i + 2)
		}
		return at(i + 1), at(i), at(i + 2)
	}
	base := i * 3
	return at(base), at(base + 1), at(base + 2)
}
