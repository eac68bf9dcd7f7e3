package pipeline

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/lilith645/Maat-Graphics/common"
)

// Framebuffer is the CPU render target the software pipeline shades into: an
// RGBA colour buffer plus a float depth buffer, both row-major.
type Framebuffer struct {
	width  int
	height int
	pixels []byte
	depth  []float32
}

// NewFramebuffer allocates a framebuffer with the given dimensions, cleared to
// transparent black with the depth buffer at the far plane.
//
// Parameters:
//   - width, height: the target dimensions in pixels
//
// Returns:
//   - *Framebuffer: the framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]byte, width*height*4),
		depth:  make([]float32, width*height),
	}
	fb.Clear([4]float32{0, 0, 0, 0})
	return fb
}

// Width returns the framebuffer width in pixels.
//
// Returns:
//   - int: the width
func (fb *Framebuffer) Width() int {
	return fb.width
}

// Height returns the framebuffer height in pixels.
//
// Returns:
//   - int: the height
func (fb *Framebuffer) Height() int {
	return fb.height
}

// Pixels returns the raw RGBA colour buffer, 4 bytes per pixel, row-major.
//
// Returns:
//   - []byte: the colour buffer
func (fb *Framebuffer) Pixels() []byte {
	return fb.pixels
}

// Clear fills the colour buffer with the given colour and resets the depth
// buffer to the far plane.
//
// Parameters:
//   - colour: the RGBA clear colour, channels in [0, 1]
func (fb *Framebuffer) Clear(colour [4]float32) {
	r := channelByte(colour[0])
	g := channelByte(colour[1])
	b := channelByte(colour[2])
	a := channelByte(colour[3])
	for i := 0; i < len(fb.pixels); i += 4 {
		fb.pixels[i] = r
		fb.pixels[i+1] = g
		fb.pixels[i+2] = b
		fb.pixels[i+3] = a
	}
	for i := range fb.depth {
		fb.depth[i] = math32.MaxFloat32
	}
}

// At returns the colour at a pixel, channels normalized to [0, 1]. Out of
// bounds coordinates return transparent black.
//
// Parameters:
//   - x, y: the pixel coordinates
//
// Returns:
//   - [4]float32: the RGBA colour
func (fb *Framebuffer) At(x, y int) [4]float32 {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return [4]float32{}
	}
	i := (y*fb.width + x) * 4
	return [4]float32{
		float32(fb.pixels[i]) / 255.0,
		float32(fb.pixels[i+1]) / 255.0,
		float32(fb.pixels[i+2]) / 255.0,
		float32(fb.pixels[i+3]) / 255.0,
	}
}

// Image copies the colour buffer into a standard library image for encoding.
//
// Returns:
//   - *image.RGBA: the framebuffer contents
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	copy(img.Pix, fb.pixels)
	return img
}

// StagingData wraps the colour buffer as texture staging data, so a rendered
// frame can be re-staged as a texture or uploaded by a GPU backend.
//
// Returns:
//   - common.TextureStagingData: the colour buffer and dimensions
func (fb *Framebuffer) StagingData() common.TextureStagingData {
	return common.TextureStagingData{
		Pixels: fb.pixels,
		Width:  uint32(fb.width),
		Height: uint32(fb.height),
	}
}

// setPixel writes a colour at a pixel, clamping channels to [0, 1]. Bounds are
// the caller's responsibility.
func (fb *Framebuffer) setPixel(x, y int, colour [4]float32) {
	i := (y*fb.width + x) * 4
	fb.pixels[i] = channelByte(colour[0])
	fb.pixels[i+1] = channelByte(colour[1])
	fb.pixels[i+2] = channelByte(colour[2])
	fb.pixels[i+3] = channelByte(colour[3])
}

// channelByte converts a [0, 1] channel to a byte, clamping out-of-range values.
func channelByte(c float32) byte {
	if c <= 0 {
		return 0
	}
	if c >= 1 {
		return 255
	}
	return byte(c*255.0 + 0.5)
}
