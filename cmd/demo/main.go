// Command demo drives the swraster CORE against a Lua-scripted scene and
// presents each frame through an ebiten window.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/kestrel3d/swraster"
)

const (
	screenWidth  = 640
	screenHeight = 480
)

type demoGame struct {
	presenter *ebitenPresenter
	device    *swraster.RenderDevice
	scene     *Scene
	angle     float32
	hud       *ebiten.Image
}

func main() {
	scenePath := flag.String("scene", "", "path to a Lua scene script (defaults to the built-in triangle scene)")
	flag.Parse()

	src := defaultSceneScript
	if *scenePath != "" {
		data, err := os.ReadFile(*scenePath)
		if err != nil {
			log.Fatalf("reading scene script: %v", err)
		}
		src = string(data)
	}

	scene, err := LoadSceneScript(src)
	if err != nil {
		log.Fatalf("loading scene: %v", err)
	}

	device, err := swraster.NewRenderDevice(swraster.DeviceConfig{
		Width: screenWidth, Height: screenHeight,
		UseDepthBuffer: true,
		FOV:            60,
		Near:           0.1, Far: 1000,
		CullWinding: swraster.WindingClockwise,
	})
	if err != nil {
		log.Fatalf("creating render device: %v", err)
	}
	for _, l := range scene.Lights {
		device.Lights().AddLight(l)
	}

	g := &demoGame{
		presenter: newEbitenPresenter(screenWidth, screenHeight),
		device:    device,
		scene:     scene,
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("swraster demo")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func (g *demoGame) Update() error {
	g.angle += 0.5
	g.device.SetWorldTransform(swraster.RotationXYZ(0, g.angle, 0))
	g.device.SetCameraTransform(swraster.LookAt(
		swraster.Vector3{X: 0, Y: 0, Z: -5},
		swraster.Vector3{},
		swraster.Vector3{Y: 1},
	))

	g.device.ClearFrame(0xFF101010)
	g.device.ResetStatsCounters()

	vb := swraster.NewVertexBuffer(g.scene.Verts)
	g.device.DrawTrisColLitList(vb, nil, swraster.LightAll)

	g.hud = renderHUD(g.device.GetStats())

	return g.presenter.Present(g.device.PixelBuffer().Bytes(), screenWidth, screenHeight)
}

func (g *demoGame) Draw(screen *ebiten.Image) {
	g.presenter.Draw(screen)
	if g.hud != nil {
		screen.DrawImage(g.hud, nil)
	}
}

func (g *demoGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.presenter.Layout(outsideWidth, outsideHeight)
}

func renderHUD(stats swraster.Stats) *ebiten.Image {
	text := fmt.Sprintf("submitted %d  culled %d  drawn %d", stats.TrisSubmitted, stats.TrisCulled, stats.TrisDrawn)
	img := image.NewRGBA(image.Rect(0, 0, screenWidth, 16))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(4, 12),
	}
	d.DrawString(text)
	return ebiten.NewImageFromImage(img)
}

const defaultSceneScript = `
camera(0, 0, -5)

vertex(-1, -1, 0,  0xFFFF0000, 0, 0, 0, 0, 1)
vertex( 1, -1, 0,  0xFF00FF00, 1, 0, 0, 0, 1)
vertex( 0,  1, 0,  0xFF0000FF, 0.5, 1, 0, 0, 1)

point_light(3, 3, -3, 255, 255, 255, 1, 0, 0.01, 50)
directional_light(0, 0, -1, 180, 180, 180)
`
