package pipeline

import (
	"sync"
	"sync/atomic"

	"github.com/chewxy/math32"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// maxVaryings is the widest varying vector any stage produces: the lit mesh
// path carries uv (2) + normal (3) + to-light (3) + to-camera (3).
const maxVaryings = 11

// rasterVertex is one triangle corner after the vertex stage and viewport
// transform: a screen-space position, a depth value, and the stage's varyings.
type rasterVertex struct {
	x, y     float32
	z        float32
	varyings [maxVaryings]float32
}

// fragmentFunc shades one fragment from its interpolated varyings, returning
// the RGBA colour to write.
type fragmentFunc func(varyings *[maxVaryings]float32) [4]float32

// toScreen performs the perspective divide and viewport transform for one
// clip-space position. Returns false for positions on or behind the w = 0
// plane, which the rasterizer cannot represent.
func toScreen(clip [4]float32, width, height int) (x, y, z float32, ok bool) {
	if clip[3] <= 0 {
		return 0, 0, 0, false
	}
	invW := 1.0 / clip[3]
	ndcX := clip[0] * invW
	ndcY := clip[1] * invW
	z = clip[2] * invW

	x = (ndcX*0.5 + 0.5) * float32(width)
	y = (1.0 - (ndcY*0.5 + 0.5)) * float32(height)
	return x, y, z, true
}

// edgeFunction computes twice the signed area of the triangle (a, b, c).
// Positive when c lies to the left of the edge a->b.
func edgeFunction(ax, ay, bx, by, cx, cy float32) float32 {
	return (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
}

// rasterizeTriangle scans one screen-space triangle, interpolates varyings
// barycentrically, and shades covered pixels through the fragment function.
// Rows of the bounding box are split into bands and shaded on the worker pool;
// bands partition rows, so no two tasks touch the same pixel. Returns the
// number of fragments shaded.
//
// Depth testing is enabled per call: sprite draws rely on submission order
// instead and skip it.
func (p *pipelineImpl) rasterizeTriangle(v0, v1, v2 rasterVertex, depthTest bool, frag fragmentFunc) uint64 {
	fb := p.framebuffer

	area := edgeFunction(v0.x, v0.y, v1.x, v1.y, v2.x, v2.y)
	if area == 0 {
		return 0
	}
	if area < 0 {
		// Both windings rasterize; reorder so the inside test is uniform.
		v1, v2 = v2, v1
		area = -area
	}
	invArea := 1.0 / area

	minX := int(math32.Floor(math32.Min(v0.x, math32.Min(v1.x, v2.x))))
	maxX := int(math32.Ceil(math32.Max(v0.x, math32.Max(v1.x, v2.x))))
	minY := int(math32.Floor(math32.Min(v0.y, math32.Min(v1.y, v2.y))))
	maxY := int(math32.Ceil(math32.Max(v0.y, math32.Max(v1.y, v2.y))))

	minX = max(minX, 0)
	minY = max(minY, 0)
	maxX = min(maxX, fb.width-1)
	maxY = min(maxY, fb.height-1)
	if minX > maxX || minY > maxY {
		return 0
	}

	rows := maxY - minY + 1
	bandHeight := max((rows+p.workers-1)/p.workers, minBandRows)

	var fragments atomic.Uint64
	var wg sync.WaitGroup
	taskID := 0
	for bandY := minY; bandY <= maxY; bandY += bandHeight {
		startY := bandY
		endY := min(bandY+bandHeight-1, maxY)

		wg.Add(1)
		id := taskID
		taskID++
		p.pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()

				var shaded uint64
				for y := startY; y <= endY; y++ {
					for x := minX; x <= maxX; x++ {
						// Sample at the pixel center.
						px := float32(x) + 0.5
						py := float32(y) + 0.5

						w0 := edgeFunction(v1.x, v1.y, v2.x, v2.y, px, py)
						w1 := edgeFunction(v2.x, v2.y, v0.x, v0.y, px, py)
						w2 := edgeFunction(v0.x, v0.y, v1.x, v1.y, px, py)
						if w0 < 0 || w1 < 0 || w2 < 0 {
							continue
						}

						w0 *= invArea
						w1 *= invArea
						w2 *= invArea

						if depthTest {
							z := w0*v0.z + w1*v1.z + w2*v2.z
							di := y*fb.width + x
							if z >= fb.depth[di] {
								continue
							}
							fb.depth[di] = z
						}

						var varyings [maxVaryings]float32
						for i := range varyings {
							varyings[i] = w0*v0.varyings[i] + w1*v1.varyings[i] + w2*v2.varyings[i]
						}

						fb.setPixel(x, y, frag(&varyings))
						shaded++
					}
				}
				fragments.Add(shaded)
				return nil, nil
			},
		})
	}
	wg.Wait()

	return fragments.Load()
}
