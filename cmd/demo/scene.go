package main

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/kestrel3d/swraster"
)

// Scene is the geometry, lights and camera state a Lua script describes.
type Scene struct {
	Verts  []swraster.Vertex
	Lights []swraster.Light
	CamEye swraster.Vector3
}

// LoadSceneScript runs a Lua scene-description script and collects the
// vertex/light/camera calls it makes into a Scene. Scripting the scene
// this way - rather than hand-writing a fixture in Go for every demo -
// mirrors how the wider example pack leans on an embedded scripting
// engine for data-driven content instead of recompiling the host program.
func LoadSceneScript(src string) (*Scene, error) {
	scene := &Scene{}
	L := lua.NewState()
	defer L.Close()

	L.SetGlobal("vertex", L.NewFunction(func(L *lua.LState) int {
		return sceneVertex(L, scene)
	}))
	L.SetGlobal("point_light", L.NewFunction(func(L *lua.LState) int {
		return scenePointLight(L, scene)
	}))
	L.SetGlobal("directional_light", L.NewFunction(func(L *lua.LState) int {
		return sceneDirectionalLight(L, scene)
	}))
	L.SetGlobal("camera", L.NewFunction(func(L *lua.LState) int {
		scene.CamEye = swraster.Vector3{
			X: f32(L.CheckNumber(1)),
			Y: f32(L.CheckNumber(2)),
			Z: f32(L.CheckNumber(3)),
		}
		return 0
	}))

	if err := L.DoString(src); err != nil {
		return nil, fmt.Errorf("scene script: %w", err)
	}
	return scene, nil
}

func f32(n lua.LNumber) float32 { return float32(n) }

func sceneVertex(L *lua.LState, scene *Scene) int {
	v := swraster.Vertex{
		X: f32(L.CheckNumber(1)), Y: f32(L.CheckNumber(2)), Z: f32(L.CheckNumber(3)),
		Colour: uint32(L.CheckNumber(4)),
		U:      f32(L.OptNumber(5, 0)), V: f32(L.OptNumber(6, 0)),
		NX: f32(L.OptNumber(7, 0)), NY: f32(L.OptNumber(8, 0)), NZ: f32(L.OptNumber(9, 1)),
	}
	scene.Verts = append(scene.Verts, v)
	return 0
}

func scenePointLight(L *lua.LState, scene *Scene) int {
	scene.Lights = append(scene.Lights, swraster.Light{
		Type:     swraster.LightPoint,
		Active:   true,
		Position: swraster.Vector3{X: f32(L.CheckNumber(1)), Y: f32(L.CheckNumber(2)), Z: f32(L.CheckNumber(3))},
		Colour:   swraster.Colour128{R: f32(L.CheckNumber(4)), G: f32(L.CheckNumber(5)), B: f32(L.CheckNumber(6)), A: 255},
		A0:       f32(L.OptNumber(7, 1)),
		A1:       f32(L.OptNumber(8, 0)),
		A2:       f32(L.OptNumber(9, 0)),
		Falloff:  f32(L.OptNumber(10, 1000)),
	})
	return 0
}

func sceneDirectionalLight(L *lua.LState, scene *Scene) int {
	scene.Lights = append(scene.Lights, swraster.Light{
		Type:     swraster.LightDirectional,
		Active:   true,
		Position: swraster.Vector3{X: f32(L.CheckNumber(1)), Y: f32(L.CheckNumber(2)), Z: f32(L.CheckNumber(3))},
		Colour:   swraster.Colour128{R: f32(L.CheckNumber(4)), G: f32(L.CheckNumber(5)), B: f32(L.CheckNumber(6)), A: 255},
	})
	return 0
}
