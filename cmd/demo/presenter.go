package main

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// ebitenPresenter implements ebiten.Game and swraster.Presenter: it holds
// the latest finished frame and blits it into the game window every Draw
// call, decoupled from the render loop by a mutex guarding the frame
// buffer.
type ebitenPresenter struct {
	mu     sync.RWMutex
	img    *ebiten.Image
	width  int
	height int
	frame  []byte
}

func newEbitenPresenter(width, height int) *ebitenPresenter {
	return &ebitenPresenter{width: width, height: height}
}

func (p *ebitenPresenter) Present(pixels []byte, width, height int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.width, p.height = width, height
	if len(p.frame) != len(pixels) {
		p.frame = make([]byte, len(pixels))
	}
	copy(p.frame, pixels)
	return nil
}

func (p *ebitenPresenter) Update() error { return nil }

func (p *ebitenPresenter) Draw(screen *ebiten.Image) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.img == nil || p.img.Bounds().Dx() != p.width || p.img.Bounds().Dy() != p.height {
		p.img = ebiten.NewImage(p.width, p.height)
	}
	if len(p.frame) == p.width*p.height*4 {
		p.img.WritePixels(p.frame)
	}
	screen.DrawImage(p.img, nil)
}

func (p *ebitenPresenter) Layout(_, _ int) (int, int) {
	return p.width, p.height
}
