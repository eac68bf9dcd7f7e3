// Package pipeline is the software render pipeline: it runs the vertex stages
// over submitted geometry, rasterizes the resulting triangles, and shades
// fragments on a bounded worker pool. It produces the same pixel results a GPU
// backend running the embedded WGSL stages would, which makes it the reference
// path for tests and headless rendering.
package pipeline

import (
	"fmt"
	"runtime"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/lilith645/Maat-Graphics/common"
	"github.com/lilith645/Maat-Graphics/engine/model"
	"github.com/lilith645/Maat-Graphics/engine/profiler"
	"github.com/lilith645/Maat-Graphics/engine/shading/geometry"
	"github.com/lilith645/Maat-Graphics/engine/shading/lighting"
	"github.com/lilith645/Maat-Graphics/engine/shading/sprite"
	"github.com/lilith645/Maat-Graphics/engine/shading/transform"
	"github.com/lilith645/Maat-Graphics/engine/texture"
)

// minBandRows is the smallest row band handed to a worker task. Narrower bands
// cost more in scheduling than they recover in parallelism.
const minBandRows = 8

// Pipeline is the software render pipeline. One pipeline owns a framebuffer
// and a worker pool; draw calls are serialized by the caller, fragments within
// a draw are shaded in parallel.
type Pipeline interface {
	// Framebuffer returns the render target this pipeline shades into.
	//
	// Returns:
	//   - *Framebuffer: the render target
	Framebuffer() *Framebuffer

	// Clear clears the render target to the given colour and resets depth.
	//
	// Parameters:
	//   - colour: the RGBA clear colour, channels in [0, 1]
	Clear(colour [4]float32)

	// SpriteStage returns the sprite vertex stage, for adjusting the
	// projection mode between frames.
	//
	// Returns:
	//   - sprite.Stage: the sprite vertex stage
	SpriteStage() sprite.Stage

	// DrawSprite draws one textured (or tinted) quad through the sprite vertex
	// stage. The quad geometry is the shared unit quad; position, scale, atlas
	// cell, and tint all arrive through the push block. Zero projection extents
	// in the push block default to the framebuffer dimensions. Sprites are
	// composited in submission order without depth testing.
	//
	// Parameters:
	//   - pc: the per-draw push-constant block (must not be nil)
	//   - tex: the texture to sample (nil renders the tint colour alone)
	//
	// Returns:
	//   - error: error if the push block is missing
	DrawSprite(pc *sprite.GPUSpritePush, tex texture.Texture) error

	// DrawTexturedQuad draws the shared unit quad through the precomputed
	// transform vertex stage: both matrices arrive ready-made in the uniform
	// block and vertex UVs pass through without atlas remapping. Composited in
	// submission order without depth testing.
	//
	// Parameters:
	//   - u: the uniform block holding the precomputed matrices (must not be nil)
	//   - tint: RGBA colour multiplied into the sampled texel
	//   - tex: the texture to sample (nil samples opaque white)
	//
	// Returns:
	//   - error: error if the uniform block is missing
	DrawTexturedQuad(u *transform.GPUTransformUniform, tint [4]float32, tex texture.Texture) error

	// DrawMesh draws an indexed triangle mesh through the view-space geometry
	// stage and shades fragments with the lit fragment stage. Depth testing is
	// enabled.
	//
	// Parameters:
	//   - vertices: the mesh vertex data
	//   - indices: triangle indices into vertices (length must be a multiple of 3)
	//   - u: the per-pass scene uniform block (must not be nil)
	//   - pc: the per-draw push-constant block (must not be nil)
	//   - lu: the lighting uniform block (must not be nil)
	//   - tex: the texture to sample (nil samples opaque white)
	//
	// Returns:
	//   - error: error if a uniform block is missing or indices are malformed
	DrawMesh(vertices []model.GPUMeshVertex, indices []uint32, u *geometry.GPUSceneUniform, pc *geometry.GPUModelPush, lu *lighting.GPULightingUniform, tex texture.Texture) error
}

// pipelineImpl is the implementation of the Pipeline interface.
type pipelineImpl struct {
	framebuffer *Framebuffer
	spriteStage sprite.Stage
	pool        worker.DynamicWorkerPool
	workers     int
	prof        *profiler.Profiler
}

var _ Pipeline = &pipelineImpl{}

// NewPipeline creates a software pipeline rendering into a new framebuffer of
// the given dimensions, then applies the provided options. The worker count
// defaults to NumCPU - 1.
//
// Parameters:
//   - width, height: the framebuffer dimensions in pixels
//   - options: functional options to configure the pipeline
//
// Returns:
//   - Pipeline: the configured pipeline
func NewPipeline(width, height int, options ...PipelineBuilderOption) Pipeline {
	p := &pipelineImpl{
		framebuffer: NewFramebuffer(width, height),
		spriteStage: sprite.NewStage(),
		workers:     max(runtime.NumCPU()-1, 1),
	}
	for _, option := range options {
		option(p)
	}
	// Queue size of 256 accommodates the row bands of several in-flight
	// triangles with headroom.
	p.pool = worker.NewDynamicWorkerPool(p.workers, 256, 1*time.Second)
	return p
}

func (p *pipelineImpl) Framebuffer() *Framebuffer {
	return p.framebuffer
}

func (p *pipelineImpl) Clear(colour [4]float32) {
	p.framebuffer.Clear(colour)
}

func (p *pipelineImpl) SpriteStage() sprite.Stage {
	return p.spriteStage
}

func (p *pipelineImpl) DrawSprite(pc *sprite.GPUSpritePush, tex texture.Texture) error {
	if pc == nil {
		return fmt.Errorf("sprite draw requires a push-constant block")
	}

	// Zero extents would collapse the projection; fall back to the target size.
	push := *pc
	push.ProjectionDetails[2] = common.Coalesce(push.ProjectionDetails[2], float32(p.framebuffer.width))
	push.ProjectionDetails[3] = common.Coalesce(push.ProjectionDetails[3], float32(p.framebuffer.height))

	verts := model.QuadVertices()
	indices := model.QuadIndices()

	outs := make([]sprite.VertexOutput, len(verts))
	for i, v := range verts {
		outs[i] = p.spriteStage.TransformVertex(&push, v.Position, v.UV)
	}

	frag := func(varyings *[maxVaryings]float32) [4]float32 {
		colour := [4]float32{varyings[2], varyings[3], varyings[4], varyings[5]}
		useTexture := varyings[6]
		if tex == nil || useTexture <= 0 {
			return colour
		}
		sampled := tex.Sample(varyings[0], varyings[1])
		return [4]float32{
			sampled[0] * colour[0],
			sampled[1] * colour[1],
			sampled[2] * colour[2],
			sampled[3] * colour[3],
		}
	}

	var triangles, fragments uint64
	for i := 0; i+2 < len(indices); i += 3 {
		v0, ok0 := spriteRasterVertex(outs[indices[i]], p.framebuffer)
		v1, ok1 := spriteRasterVertex(outs[indices[i+1]], p.framebuffer)
		v2, ok2 := spriteRasterVertex(outs[indices[i+2]], p.framebuffer)
		if !ok0 || !ok1 || !ok2 {
			continue
		}
		fragments += p.rasterizeTriangle(v0, v1, v2, false, frag)
		triangles++
	}

	if p.prof != nil {
		p.prof.AddDraw(triangles, fragments)
	}
	return nil
}

func (p *pipelineImpl) DrawTexturedQuad(u *transform.GPUTransformUniform, tint [4]float32, tex texture.Texture) error {
	if u == nil {
		return fmt.Errorf("textured quad draw requires a uniform block")
	}

	verts := model.QuadVertices()
	indices := model.QuadIndices()

	frag := func(varyings *[maxVaryings]float32) [4]float32 {
		texColour := [4]float32{1, 1, 1, 1}
		if tex != nil {
			texColour = tex.Sample(varyings[0], varyings[1])
		}
		return [4]float32{
			texColour[0] * tint[0],
			texColour[1] * tint[1],
			texColour[2] * tint[2],
			texColour[3] * tint[3],
		}
	}

	var triangles, fragments uint64
	for i := 0; i+2 < len(indices); i += 3 {
		v0, ok0 := quadRasterVertex(u, verts[indices[i]], p.framebuffer)
		v1, ok1 := quadRasterVertex(u, verts[indices[i+1]], p.framebuffer)
		v2, ok2 := quadRasterVertex(u, verts[indices[i+2]], p.framebuffer)
		if !ok0 || !ok1 || !ok2 {
			continue
		}
		fragments += p.rasterizeTriangle(v0, v1, v2, false, frag)
		triangles++
	}

	if p.prof != nil {
		p.prof.AddDraw(triangles, fragments)
	}
	return nil
}

func (p *pipelineImpl) DrawMesh(vertices []model.GPUMeshVertex, indices []uint32, u *geometry.GPUSceneUniform, pc *geometry.GPUModelPush, lu *lighting.GPULightingUniform, tex texture.Texture) error {
	if u == nil || pc == nil || lu == nil {
		return fmt.Errorf("mesh draw requires scene, model, and lighting blocks")
	}
	if len(indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(indices))
	}
	for _, idx := range indices {
		if int(idx) >= len(vertices) {
			return fmt.Errorf("index %d out of range for %d vertices", idx, len(vertices))
		}
	}

	outs := make([]geometry.VertexOutput, len(vertices))
	for i, v := range vertices {
		outs[i] = geometry.TransformVertex(u, pc, v.Position, v.Normal, v.UV)
	}

	frag := func(varyings *[maxVaryings]float32) [4]float32 {
		texColour := [4]float32{1, 1, 1, 1}
		if tex != nil {
			texColour = tex.Sample(varyings[0], varyings[1])
		}
		return lighting.Shade(lighting.Inputs{
			Normal:    [3]float32{varyings[2], varyings[3], varyings[4]},
			ToLight:   [3]float32{varyings[5], varyings[6], varyings[7]},
			ToCamera:  [3]float32{varyings[8], varyings[9], varyings[10]},
			TexColour: texColour,
		}, lu)
	}

	var triangles, fragments uint64
	for i := 0; i+2 < len(indices); i += 3 {
		v0, ok0 := meshRasterVertex(outs[indices[i]], p.framebuffer)
		v1, ok1 := meshRasterVertex(outs[indices[i+1]], p.framebuffer)
		v2, ok2 := meshRasterVertex(outs[indices[i+2]], p.framebuffer)
		if !ok0 || !ok1 || !ok2 {
			continue
		}
		fragments += p.rasterizeTriangle(v0, v1, v2, true, frag)
		triangles++
	}

	if p.prof != nil {
		p.prof.AddDraw(triangles, fragments)
	}
	return nil
}

// spriteRasterVertex maps a sprite stage output to a raster vertex. Varying
// order: uv, colour, use_texture.
func spriteRasterVertex(out sprite.VertexOutput, fb *Framebuffer) (rasterVertex, bool) {
	x, y, z, ok := toScreen(out.Position, fb.width, fb.height)
	if !ok {
		return rasterVertex{}, false
	}
	v := rasterVertex{x: x, y: y, z: z}
	v.varyings[0] = out.UV[0]
	v.varyings[1] = out.UV[1]
	v.varyings[2] = out.Colour[0]
	v.varyings[3] = out.Colour[1]
	v.varyings[4] = out.Colour[2]
	v.varyings[5] = out.Colour[3]
	v.varyings[6] = out.UseTexture
	return v, true
}

// quadRasterVertex runs the precomputed transform stage for one quad vertex
// and maps it to a raster vertex. Varying order: uv.
func quadRasterVertex(u *transform.GPUTransformUniform, vert model.GPUSpriteVertex, fb *Framebuffer) (rasterVertex, bool) {
	clip := transform.TransformVertex(u, vert.Position)
	x, y, z, ok := toScreen(clip, fb.width, fb.height)
	if !ok {
		return rasterVertex{}, false
	}
	v := rasterVertex{x: x, y: y, z: z}
	v.varyings[0] = vert.UV[0]
	v.varyings[1] = vert.UV[1]
	return v, true
}

// meshRasterVertex maps a geometry stage output to a raster vertex. Varying
// order: uv, normal, to-light, to-camera.
func meshRasterVertex(out geometry.VertexOutput, fb *Framebuffer) (rasterVertex, bool) {
	x, y, z, ok := toScreen(out.Position, fb.width, fb.height)
	if !ok {
		return rasterVertex{}, false
	}
	v := rasterVertex{x: x, y: y, z: z}
	v.varyings[0] = out.UV[0]
	v.varyings[1] = out.UV[1]
	v.varyings[2] = out.Normal[0]
	v.varyings[3] = out.Normal[1]
	v.varyings[4] = out.Normal[2]
	v.varyings[5] = out.ToLight[0]
	v.varyings[6] = out.ToLight[1]
	v.varyings[7] = out.ToLight[2]
	v.varyings[8] = out.ToCamera[0]
	v.varyings[9] = out.ToCamera[1]
	v.varyings[10] = out.ToCamera[2]
	return v, true
}
