package swraster

import "log"

// DisplayBitDepth selects the colour depth a device reports to a
// presenter; the CORE itself always rasterizes into 32-bit PixelBuffer
// storage regardless of this setting.
type DisplayBitDepth int

const (
	Bit16 DisplayBitDepth = 16
	Bit32 DisplayBitDepth = 32
)

// DeviceConfig configures a RenderDevice at construction time.
type DeviceConfig struct {
	Width, Height int
	UseDepthBuffer bool
	BitDepth       DisplayBitDepth
	Near, Far      float32
	FOV            float32 // degrees
	CullWinding    BackfaceCullWinding
	Logger         *log.Logger
}

// Stats tracks per-frame/cumulative triangle counts, reset with
// ResetStatsCounters.
type Stats struct {
	TrisSubmitted int
	TrisCulled    int
	TrisDrawn     int
}

// RenderDevice is the CORE's orchestrator: it owns the pixel/depth
// buffers, the current camera/world transforms, the light table, and
// drives every submitted triangle through transform, lighting, culling,
// projection, clipping and rasterization.
type RenderDevice struct {
	cfg DeviceConfig

	pixels *PixelBuffer
	depth  *DepthBuffer
	clip   *TriangleClipper
	raster *Rasterizer
	proj   Projection
	lights *LightTable

	world     Matrix4
	worldInv  Matrix4
	worldInvDirty bool
	camera    Matrix4
	cameraInv Matrix4

	cullingEnabled bool
	texture        *Texture

	stats Stats

	logger *log.Logger
}

// NewRenderDevice constructs a device from cfg. A malformed configuration
// (non-positive dimensions) is a ConfigError: the caller must not proceed.
func NewRenderDevice(cfg DeviceConfig) (*RenderDevice, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, newError(ConfigError, "invalid framebuffer dimensions %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.FOV <= 0 {
		cfg.FOV = 60
	}
	if cfg.Far <= cfg.Near {
		return nil, newError(ConfigError, "far plane %.3f must exceed near plane %.3f", cfg.Far, cfg.Near)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	pixels := NewPixelBuffer(cfg.Width, cfg.Height)
	var depth *DepthBuffer
	if cfg.UseDepthBuffer {
		depth = NewDepthBuffer(cfg.Width, cfg.Height)
	}

	d := &RenderDevice{
		cfg:            cfg,
		pixels:         pixels,
		depth:          depth,
		clip:           NewTriangleClipper(cfg.Width, cfg.Height),
		raster:         NewRasterizer(pixels, depth),
		proj:           NewProjection(cfg.Width, cfg.Height, cfg.FOV, cfg.Near, cfg.Far),
		lights:         NewLightTable(),
		world:          Identity4(),
		camera:         Identity4(),
		cameraInv:      Identity4(),
		cullingEnabled: true,
		logger:         logger,
	}
	d.worldInvDirty = true
	return d, nil
}

func (d *RenderDevice) PixelBuffer() *PixelBuffer { return d.pixels }
func (d *RenderDevice) DepthBuffer() *DepthBuffer  { return d.depth }
func (d *RenderDevice) Lights() *LightTable        { return d.lights }

func (d *RenderDevice) SetCullingEnabled(enabled bool) { d.cullingEnabled = enabled }

func (d *RenderDevice) SetWorldTransform(m Matrix4) {
	d.world = m
	d.worldInvDirty = true
}

func (d *RenderDevice) SetCameraTransform(m Matrix4) {
	d.camera = m
	d.cameraInv = m.Inverse()
}

func (d *RenderDevice) SetTexture(t *Texture) {
	d.texture = t
	d.raster.SetTexture(t)
}

// CommitMatrixChanges recomputes any matrices invalidated by SetWorldTransform
// since the last commit. The device calls this lazily on the next draw if
// needed, but a caller that wants the cost paid up front (e.g. between
// frames, off the hot path) may call it directly.
func (d *RenderDevice) CommitMatrixChanges() {
	if d.worldInvDirty {
		d.worldInv = d.world.Inverse()
		d.worldInvDirty = false
	}
}

// ToCameraSpace transforms a world-space point into camera space using
// the concatenated world * cameraInverse transform.
func (d *RenderDevice) ToCameraSpace(p Vector3) Vector3 {
	m := d.world.Mul(d.cameraInv)
	return m.Transform(p).ToVector3()
}

func (d *RenderDevice) ResetStatsCounters() { d.stats = Stats{} }
func (d *RenderDevice) GetStats() Stats     { return d.stats }

// ClearFrame clears the pixel buffer to colour and, if bound, the depth
// buffer to its far value.
func (d *RenderDevice) ClearFrame(colour uint32) {
	d.pixels.Clear(colour)
	if d.depth != nil {
		d.depth.Clear(32767)
	}
}

type drawOptions struct {
	lit      bool
	textured bool
	filter   LightFilter
}

// processTriangle runs one object-space triangle through the full
// pipeline: camera transform, optional lighting, backface cull,
// projection, 2-D clip, and rasterization (or wireframe plotting).
func (d *RenderDevice) processTriangle(v0, v1, v2 Vertex, opts drawOptions, wireframe bool) {
	d.stats.TrisSubmitted++
	d.CommitMatrixChanges()

	camVerts := [3]Vertex{v0, v1, v2}
	worldToCam := d.world.Mul(d.cameraInv)
	for i := range camVerts {
		p := worldToCam.Transform(camVerts[i].Position()).ToVector3()
		n := worldToCam.TransformDirection(camVerts[i].Normal()).Normalise()
		camVerts[i].SetPosition(p)
		camVerts[i].SetNormal(n)
	}

	if opts.lit {
		for i := range camVerts {
			base := ColourFromPacked(camVerts[i].Colour)
			lit := d.lights.Evaluate(camVerts[i].Position(), camVerts[i].Normal(), base, opts.filter)
			camVerts[i].Colour = lit.ToPacked()
		}
	}

	if d.cullingEnabled && IsBackfacing(camVerts[0].Position(), camVerts[1].Position(), camVerts[2].Position(), d.cfg.CullWinding) {
		d.stats.TrisCulled++
		return
	}

	screen := [3]Vector4{}
	ok := true
	for i := range camVerts {
		s, valid := d.proj.Project(camVerts[i].Position())
		if !valid {
			ok = false
			break
		}
		screen[i] = s
		camVerts[i].X, camVerts[i].Y, camVerts[i].Z = s.X, s.Y, s.Z
	}
	if !ok {
		d.stats.TrisCulled++
		return
	}

	tris := d.clip.ClipTriangle(camVerts[0], camVerts[1], camVerts[2], screen[0], screen[1], screen[2])
	if len(tris) == 0 {
		d.stats.TrisCulled++
		return
	}

	for _, t := range tris {
		if wireframe {
			d.raster.DrawWireFrame(t[0], t[1], t[2])
		} else {
			d.raster.RasterizeTriangle(t[0], t[1], t[2], opts.textured)
		}
		d.stats.TrisDrawn++
	}
}

func (d *RenderDevice) forEachTriangle(vb *VertexBuffer, ib *IndexBuffer, mode TriangleRenderType, opts drawOptions, wireframe bool) {
	n := vb.Len()
	if ib != nil {
		n = ib.Len()
	}
	count := TriangleCount(n, mode)
	for i := 0; i < count; i++ {
		ia, ib2, ic := TriangleIndices(ib, vb.Len(), i, mode)
		if int(ia) >= vb.Len() || int(ib2) >= vb.Len() || int(ic) >= vb.Len() {
			d.logger.Printf("swraster: index out of range in triangle %d, skipping", i)
			continue
		}
		d.processTriangle(vb.At(int(ia)), vb.At(int(ib2)), vb.At(int(ic)), opts, wireframe)
	}
}

// DrawTrisColList draws an unlit, flat/Gouraud-coloured triangle list.
func (d *RenderDevice) DrawTrisColList(vb *VertexBuffer, ib *IndexBuffer) {
	d.forEachTriangle(vb, ib, TriangleList, drawOptions{}, false)
}

// DrawTrisColStrip draws an unlit, coloured triangle strip.
func (d *RenderDevice) DrawTrisColStrip(vb *VertexBuffer, ib *IndexBuffer) {
	d.forEachTriangle(vb, ib, TriangleStrip, drawOptions{}, false)
}

// DrawTrisColLitList draws a lit, coloured triangle list.
func (d *RenderDevice) DrawTrisColLitList(vb *VertexBuffer, ib *IndexBuffer, filter LightFilter) {
	d.forEachTriangle(vb, ib, TriangleList, drawOptions{lit: true, filter: filter}, false)
}

// DrawTrisColLitStrip is a documented no-op: the source engine declares
// this entry point but never implements a lit triangle-strip path. It is
// kept in the API for signature parity rather than silently omitted.
func (d *RenderDevice) DrawTrisColLitStrip(vb *VertexBuffer, ib *IndexBuffer, filter LightFilter) {
}

// DrawTrisTexList draws an unlit, textured triangle list.
func (d *RenderDevice) DrawTrisTexList(vb *VertexBuffer, ib *IndexBuffer) {
	d.forEachTriangle(vb, ib, TriangleList, drawOptions{textured: true}, false)
}

// DrawTrisTexStrip draws an unlit, textured triangle strip.
func (d *RenderDevice) DrawTrisTexStrip(vb *VertexBuffer, ib *IndexBuffer) {
	d.forEachTriangle(vb, ib, TriangleStrip, drawOptions{textured: true}, false)
}

// DrawTrisTexLitList is a documented no-op, mirroring
// DrawTrisColLitStrip's unimplemented counterpart in the source engine.
func (d *RenderDevice) DrawTrisTexLitList(vb *VertexBuffer, ib *IndexBuffer, filter LightFilter) {
}

// DrawTrisTexLitStrip draws a lit, textured triangle strip.
func (d *RenderDevice) DrawTrisTexLitStrip(vb *VertexBuffer, ib *IndexBuffer, filter LightFilter) {
	d.forEachTriangle(vb, ib, TriangleStrip, drawOptions{lit: true, textured: true, filter: filter}, false)
}

// DrawWireFrame draws every triangle in vb/ib as unshaded line edges.
func (d *RenderDevice) DrawWireFrame(vb *VertexBuffer, ib *IndexBuffer, mode TriangleRenderType) {
	d.forEachTriangle(vb, ib, mode, drawOptions{}, true)
}

// DrawNormals draws a short segment along each vertex's normal.
func (d *RenderDevice) DrawNormals(vb *VertexBuffer, length float32) {
	d.raster.DrawNormals(vb.Slice(), length)
}

// DrawTexture2D blits tex directly into the pixel buffer, bypassing the
// 3-D pipeline entirely.
func (d *RenderDevice) DrawTexture2D(tex Texture, x, y int, opts DrawTexture2DOptions) {
	d.raster.DrawTexture2D(tex, x, y, opts)
}
