package swraster

// LightType distinguishes the two light kinds the evaluator supports.
type LightType int

const (
	LightInvalid LightType = iota
	LightPoint
	LightDirectional
)

// LightFilter selects which light kinds Evaluate considers for a vertex,
// matching the original lighting manager's rendering-options mask.
type LightFilter int

const (
	LightAll LightFilter = iota
	LightPointOnly
	LightDirectionalOnly
)

// Light is one entry in a LightTable. Position is used as both a point
// light's location and - deliberately, preserving the source engine's
// quirk - a directional light's ray origin (see applyDirectionalLight).
type Light struct {
	Type     LightType
	Active   bool
	Position Vector3
	Colour   Colour128
	// Attenuation coefficients for point lights: 1 / (A0 + A1*d + A2*d^2).
	A0, A1, A2 float32
	Falloff    float32 // point lights beyond this distance contribute nothing
}

const maxLights = 8

// LightTable holds a fixed-capacity set of lights and evaluates their
// combined contribution to a vertex via Evaluate.
type LightTable struct {
	lights [maxLights]Light
}

// NewLightTable returns an empty table with every slot inactive.
func NewLightTable() *LightTable {
	return &LightTable{}
}

// AddLight installs light into the first free (inactive, LightInvalid)
// slot and returns its handle, or -1 if the table is full. This fixes the
// source engine's FindNextLightHandle, which fell through without a
// return on the not-found path.
func (lt *LightTable) AddLight(light Light) int {
	h := lt.findNextHandle()
	if h < 0 {
		return -1
	}
	lt.lights[h] = light
	lt.lights[h].Active = true
	return h
}

func (lt *LightTable) findNextHandle() int {
	for i := range lt.lights {
		if lt.lights[i].Type == LightInvalid {
			return i
		}
	}
	return -1
}

func (lt *LightTable) validHandle(handle int) bool {
	return handle >= 0 && handle < len(lt.lights) && lt.lights[handle].Type != LightInvalid
}

func (lt *LightTable) EnableLight(handle int) {
	if lt.validHandle(handle) {
		lt.lights[handle].Active = true
	}
}

func (lt *LightTable) DisableLight(handle int) {
	if lt.validHandle(handle) {
		lt.lights[handle].Active = false
	}
}

func (lt *LightTable) EnableAll() {
	for i := range lt.lights {
		if lt.lights[i].Type != LightInvalid {
			lt.lights[i].Active = true
		}
	}
}

func (lt *LightTable) DisableAll() {
	for i := range lt.lights {
		lt.lights[i].Active = false
	}
}

func (lt *LightTable) SetLightPosition(handle int, pos Vector3) {
	if lt.validHandle(handle) {
		lt.lights[handle].Position = pos
	}
}

// Evaluate computes the Gouraud lighting contribution at a vertex with
// world-space position pos and unit normal normal, vertex colour
// baseColour, considering only lights matching filter. Each contributing
// light's result is accumulated and the contributions are averaged
// (arithmetic mean), not summed - a dim scene with many lights does not
// get brighter by adding more of them.
func (lt *LightTable) Evaluate(pos, normal Vector3, baseColour Colour128, filter LightFilter) Colour128 {
	var accum Colour128
	var count int

	for i := range lt.lights {
		light := &lt.lights[i]
		if !light.Active || light.Type == LightInvalid {
			continue
		}
		if filter == LightPointOnly && light.Type != LightPoint {
			continue
		}
		if filter == LightDirectionalOnly && light.Type != LightDirectional {
			continue
		}

		var contrib Colour128
		var ok bool
		switch light.Type {
		case LightPoint:
			contrib, ok = applyPointLight(*light, pos, normal, baseColour)
		case LightDirectional:
			contrib, ok = applyDirectionalLight(*light, pos, normal, baseColour)
		}
		if !ok {
			continue
		}
		accum = accum.Add(contrib)
		count++
	}

	if count == 0 {
		return Colour128{}
	}
	return accum.Scale(1 / float32(count)).Clamp()
}

func applyPointLight(light Light, vPos, normal Vector3, vColour Colour128) (Colour128, bool) {
	toLight := light.Position.Sub(vPos)
	dist := toLight.Magnitude()
	if dist > light.Falloff {
		return Colour128{}, false
	}
	toLight = toLight.Normalise()
	dot := -toLight.Dot(normal)
	if dot < 0 {
		dot = 0
	}
	atten := float32(1)
	denom := light.A0 + light.A1*dist + light.A2*dist*dist
	if denom != 0 {
		atten = 1 / denom
	}
	out := vColour.Mul(light.Colour.Clamp()).Scale(dot * atten)
	return out, true
}

// applyDirectionalLight reproduces the source engine's directional-light
// evaluation exactly, including its use of light.Position (not a direction
// vector) as the ray's origin relative to the vertex. This is preserved
// deliberately, not a bug left in by oversight.
func applyDirectionalLight(light Light, vPos, normal Vector3, vColour Colour128) (Colour128, bool) {
	toLight := vPos.Sub(light.Position).Normalise()
	dot := toLight.Dot(normal)
	if dot < 0 {
		dot = 0
	}
	out := vColour.Mul(light.Colour.Clamp()).Scale(dot)
	return out, true
}
