package swraster

// Presenter is the external surface a driver blits a finished frame to -
// a window, a terminal, a file. The CORE never implements one; it only
// produces a PixelBuffer for a Presenter to consume.
type Presenter interface {
	Present(pixels []byte, width, height int) error
}

// InputSource is the external keyboard/mouse collaborator the CORE never
// polls itself; a demo driver implements it against whatever windowing
// toolkit it uses and feeds results back through SetLeftMouse etc. if it
// wants to expose the headless reference behaviour below.
type InputSource interface {
	Poll()
	IsKeyDown(code int) bool
	IsKeyHit(code int) bool
	IsKeyUp(code int) bool
}

// HeadlessInput is a minimal reference InputSource with symmetric
// left/middle/right mouse-button latches. It fixes the asymmetry a prior
// implementation had in its right-button handling, where the "hit" update
// wrote into the "down" latch instead of the "hit" one.
type HeadlessInput struct {
	leftDown, leftHit, leftUp       bool
	middleDown, middleHit, middleUp bool
	rightDown, rightHit, rightUp    bool
	keysDown map[int]bool
	keysHit  map[int]bool
	keysUp   map[int]bool
}

func NewHeadlessInput() *HeadlessInput {
	return &HeadlessInput{
		keysDown: make(map[int]bool),
		keysHit:  make(map[int]bool),
		keysUp:   make(map[int]bool),
	}
}

func (h *HeadlessInput) Poll() {
	h.leftHit, h.middleHit, h.rightHit = false, false, false
	for k := range h.keysHit {
		delete(h.keysHit, k)
	}
	for k := range h.keysUp {
		delete(h.keysUp, k)
	}
}

func (h *HeadlessInput) SetLeftMouse(down bool) {
	if down && !h.leftDown {
		h.leftHit = true
	}
	if !down && h.leftDown {
		h.leftUp = true
	}
	h.leftDown = down
}

func (h *HeadlessInput) SetMiddleMouse(down bool) {
	if down && !h.middleDown {
		h.middleHit = true
	}
	if !down && h.middleDown {
		h.middleUp = true
	}
	h.middleDown = down
}

// SetRightMouse mirrors SetLeftMouse/SetMiddleMouse exactly - the hit
// latch updates from the hit transition, not by aliasing the down latch.
func (h *HeadlessInput) SetRightMouse(down bool) {
	if down && !h.rightDown {
		h.rightHit = true
	}
	if !down && h.rightDown {
		h.rightUp = true
	}
	h.rightDown = down
}

func (h *HeadlessInput) IsLeftMouseDown() bool   { return h.leftDown }
func (h *HeadlessInput) IsMiddleMouseDown() bool { return h.middleDown }
func (h *HeadlessInput) IsRightMouseDown() bool  { return h.rightDown }
func (h *HeadlessInput) IsRightMouseHit() bool   { return h.rightHit }

func (h *HeadlessInput) SetKeyDown(code int, down bool) {
	was := h.keysDown[code]
	if down && !was {
		h.keysHit[code] = true
	}
	if !down && was {
		h.keysUp[code] = true
	}
	h.keysDown[code] = down
}

func (h *HeadlessInput) IsKeyDown(code int) bool { return h.keysDown[code] }
func (h *HeadlessInput) IsKeyHit(code int) bool  { return h.keysHit[code] }
func (h *HeadlessInput) IsKeyUp(code int) bool   { return h.keysUp[code] }

// TextureLoader is the external collaborator that reads bytes from disk
// (or an archive, or a network fetch) and hands them to DecodeBMP24.
type TextureLoader interface {
	Load(path string) (Texture, error)
}
