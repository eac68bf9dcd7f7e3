package engine

import (
	"time"

	"github.com/lilith645/Maat-Graphics/engine/camera"
	"github.com/lilith645/Maat-Graphics/engine/light"
	"github.com/lilith645/Maat-Graphics/engine/pipeline"
	"github.com/lilith645/Maat-Graphics/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the engine tick rate in frames per second.
// The tick callback will be called at this rate for game logic updates.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.engineTickRate = time.Second / time.Duration(fps)
	}
}

// WithWindow sets a custom configured window for the engine to use. Without a
// window the engine runs headless and renders into its pipeline framebuffer
// until Quit is called.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithCamera sets a pre-configured camera instead of the engine default.
//
// Parameters:
//   - cam: a pre-configured Camera instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera(cam camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = cam
	}
}

// WithLight sets a pre-configured scene light instead of the engine default.
//
// Parameters:
//   - l: a pre-configured Light instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLight(l light.Light) EngineBuilderOption {
	return func(e *engine) {
		e.light = l
	}
}

// WithPipeline sets a pre-configured pipeline instead of letting the engine
// create one sized to the window.
//
// Parameters:
//   - p: a pre-configured Pipeline instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithPipeline(p pipeline.Pipeline) EngineBuilderOption {
	return func(e *engine) {
		e.pipeline = p
	}
}

// WithRenderSize sets the headless render target dimensions. Ignored when a
// window is attached; the pipeline then follows the framebuffer size.
//
// Parameters:
//   - width, height: render target dimensions in pixels
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderSize(width, height int) EngineBuilderOption {
	return func(e *engine) {
		e.renderWidth = width
		e.renderHeight = height
	}
}

// WithRenderFrameLimit sets an optional render frame rate cap in frames per second.
// Pass 0 to uncap the render loop (default).
//
// Parameters:
//   - fps: maximum render frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			e.renderFrameLimit = 0
			return
		}
		e.renderFrameLimit = time.Second / time.Duration(fps)
	}
}
