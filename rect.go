package swraster

// Rect is an integer pixel-space rectangle, used to select a sub-region of
// a Texture for DrawTexture2D.
type Rect struct {
	X, Y, W, H int
}
