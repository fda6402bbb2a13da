// Package swraster implements a single-threaded CPU triangle rasterizer:
// object-to-screen transform and projection, Gouraud point/directional
// lighting, 2-D homogeneous triangle clipping, and an edge-walking
// scanline fill with affine texture mapping.
//
// The draw path is not allocation-free: the clipper allocates the slice of
// triangles it returns, and for a triangle that crosses the viewport edge
// also its working polygon, on every call.
//
// Window creation, input polling, and asset decoding beyond the raw BMP
// and mesh formats the pipeline consumes are left to the caller; see
// Presenter, InputSource and TextureLoader.
package swraster
