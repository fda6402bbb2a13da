package swraster

// CompareFunc selects the comparison the depth test uses between an
// incoming fragment's depth and the value already stored in the buffer.
type CompareFunc int

const (
	CompareAlways CompareFunc = iota
	CompareNever
	CompareLess
	CompareLessEqual
	CompareGreater
	CompareGreaterEqual
	CompareEqual
	CompareNotEqual
)

func compare(fn CompareFunc, incoming, stored int16) bool {
	switch fn {
	case CompareAlways:
		return true
	case CompareNever:
		return false
	case CompareLess:
		return incoming < stored
	case CompareLessEqual:
		return incoming <= stored
	case CompareGreater:
		return incoming > stored
	case CompareGreaterEqual:
		return incoming >= stored
	case CompareEqual:
		return incoming == stored
	case CompareNotEqual:
		return incoming != stored
	default:
		return true
	}
}

// DepthBuffer is a fixed-size int16 depth target, cleared to the maximum
// (far) value by default. Depth is optional per draw call: a device with
// no bound DepthBuffer skips the test entirely.
type DepthBuffer struct {
	width, height int
	values        []int16
	compareFunc   CompareFunc
}

// NewDepthBuffer allocates a width x height buffer, cleared to the
// farthest representable depth, comparing with CompareLess by default
// (nearer fragments win).
func NewDepthBuffer(width, height int) *DepthBuffer {
	db := &DepthBuffer{width: width, height: height, values: make([]int16, width*height), compareFunc: CompareLess}
	db.Clear(32767)
	return db
}

func (db *DepthBuffer) Width() int  { return db.width }
func (db *DepthBuffer) Height() int { return db.height }

func (db *DepthBuffer) SetCompareFunc(fn CompareFunc) { db.compareFunc = fn }

func (db *DepthBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < db.width && y >= 0 && y < db.height
}

// Clear fills the whole buffer with value using the same stage-then-bulk-
// copy pattern as PixelBuffer.Clear.
func (db *DepthBuffer) Clear(value int16) {
	n := len(db.values)
	if n == 0 {
		return
	}
	chunk := pixelsToClear
	if chunk > n {
		chunk = n
	}
	for i := 0; i < chunk; i++ {
		db.values[i] = value
	}
	for filled := chunk; filled < n; {
		copyLen := chunk
		if filled+copyLen > n {
			copyLen = n - filled
		}
		copy(db.values[filled:filled+copyLen], db.values[:copyLen])
		filled += copyLen
	}
}

func (db *DepthBuffer) Get(x, y int) int16 {
	if !db.inBounds(x, y) {
		return 0
	}
	return db.values[y*db.width+x]
}

func (db *DepthBuffer) set(x, y int, z int16) {
	db.values[y*db.width+x] = z
}

// Test reports whether z at (x, y) passes the configured CompareFunc
// against the stored value, without writing.
func (db *DepthBuffer) Test(x, y int, z int16) bool {
	if !db.inBounds(x, y) {
		return false
	}
	return compare(db.compareFunc, z, db.Get(x, y))
}

// TestAndSet performs Test and, on a pass, writes z into the buffer.
// This is the entry point the rasterizer calls per covered pixel.
func (db *DepthBuffer) TestAndSet(x, y int, z int16) bool {
	if !db.inBounds(x, y) {
		return false
	}
	if !compare(db.compareFunc, z, db.Get(x, y)) {
		return false
	}
	db.set(x, y, z)
	return true
}
