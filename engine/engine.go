// Package engine orchestrates the frame lifecycle: a fixed-rate tick loop for
// scene updates, a render loop driving the software pipeline, and the window
// message loop. The engine owns the camera, the scene light, and the pipeline;
// hosts register callbacks and draw through the pipeline each render frame.
package engine

import (
	"log"
	"sync"
	"time"

	"github.com/lilith645/Maat-Graphics/engine/camera"
	"github.com/lilith645/Maat-Graphics/engine/light"
	"github.com/lilith645/Maat-Graphics/engine/pipeline"
	"github.com/lilith645/Maat-Graphics/engine/profiler"
	"github.com/lilith645/Maat-Graphics/engine/window"
)

// engine implements the Engine interface.
// Coordinates tick, render, and window threads.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window

	camera camera.Camera
	light  light.Light

	// pipelineMu guards pipeline and the render dimensions; the window resize
	// callback replaces the pipeline on the main thread while the render
	// goroutine fetches it each frame.
	pipelineMu sync.RWMutex
	pipeline   pipeline.Pipeline

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	renderWidth  int
	renderHeight int
}

// Engine is the main entry point for the engine.
// It orchestrates the tick loop, render loop, and window management.
type Engine interface {
	// Window returns the underlying window. Nil when rendering headless.
	//
	// Returns:
	//   - window.Window: the window instance, or nil
	Window() window.Window

	// Camera returns the engine's camera.
	//
	// Returns:
	//   - camera.Camera: the camera instance
	Camera() camera.Camera

	// Light returns the engine's scene light.
	//
	// Returns:
	//   - light.Light: the light instance
	Light() light.Light

	// Pipeline returns the software render pipeline. The pipeline is replaced
	// when the window framebuffer is resized; fetch it inside the render
	// callback rather than caching it across frames.
	//
	// Returns:
	//   - pipeline.Pipeline: the pipeline instance
	Pipeline() pipeline.Pipeline

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in frames per second.
	// The tick callback will be called at this rate for game logic updates.
	//
	// Parameters:
	//   - fps: target frames per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each engine tick.
	// Use this for game logic, physics, input processing, and animation updates.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called each render frame.
	// Use this for clearing the pipeline and submitting draw calls.
	//
	// Parameters:
	//   - callback: function to call each render frame, receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop (default).
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Run starts the main engine loop. Blocks until the window closes, or
	// until Quit when running headless.
	Run()

	// Quit signals all engine goroutines to stop and shuts down the engine.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// The camera, light, and pipeline are created with defaults when not supplied;
// the pipeline's render target follows the window framebuffer size when a
// window is attached.
//
// Parameters:
//   - options: functional options for engine configuration (window, profiling, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		running:          false,
		wg:               sync.WaitGroup{},
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
		engineTickRate:   time.Second / 60,
		renderWidth:      1280,
		renderHeight:     720,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window != nil {
		e.renderWidth = e.window.Width()
		e.renderHeight = e.window.Height()
	}
	if e.camera == nil {
		e.camera = camera.NewCamera(
			camera.WithAspect(float32(e.renderWidth) / float32(e.renderHeight)),
		)
	}
	if e.light == nil {
		e.light = light.NewLight()
	}
	if e.pipeline == nil {
		e.pipeline = pipeline.NewPipeline(e.renderWidth, e.renderHeight,
			pipeline.WithProfiler(e.profiler),
		)
	}

	if e.window != nil {
		e.window.SetResizeCallback(e.resize)
	}

	return e
}

// resize rebuilds the pipeline for the new framebuffer dimensions and updates
// the camera aspect. Runs on the main thread from the window message loop.
func (e *engine) resize(width, height int) {
	e.camera.SetAspect(float32(width) / float32(height))

	e.pipelineMu.Lock()
	defer e.pipelineMu.Unlock()
	e.renderWidth = width
	e.renderHeight = height
	e.pipeline = pipeline.NewPipeline(width, height,
		pipeline.WithProfiler(e.profiler),
	)
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Light() light.Light {
	return e.light
}

func (e *engine) Pipeline() pipeline.Pipeline {
	e.pipelineMu.RLock()
	defer e.pipelineMu.RUnlock()
	return e.pipeline
}

func (e *engine) Run() {
	e.running = true
	e.handle()
	if e.window != nil {
		e.window.ProcessMessages()
		e.signalQuit()
	}
	e.wg.Wait()
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running = false
		close(e.quitChannel)
	})
}

// handle launches the tick, render, and quit goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.wg.Add(3)
	go e.handleEngine()
	go e.handleRender()
	go e.handleQuit()
}

// handleEngine runs the fixed-rate engine tick loop in its own goroutine.
// Fires the tick callback at the configured tick rate and listens for dynamic rate changes
// via tickRateChannel. Exits when the quit channel is closed.
func (e *engine) handleEngine() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			if e.tickCallback != nil {
				e.tickCallback(dt)
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// handleRender runs the uncapped (or frame-limited) render loop in its own goroutine.
// Each frame fires the render callback, which clears the pipeline and submits
// draw calls, then ticks the profiler.
// Recovers from panics to avoid crashing the process and signals quit on recovery.
func (e *engine) handleRender() {
	defer e.wg.Done()
	// Recover from panics inside the render goroutine to avoid crashing the whole process.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("render goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	lastRender := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		default:
			now := time.Now()
			dt := float32(now.Sub(lastRender).Seconds())
			lastRender = now

			if e.renderCallback != nil {
				e.renderCallback(dt)
			}

			if e.profilingEnabled && e.profiler != nil {
				e.profiler.Tick()
			}

			// Frame rate limiting
			if e.renderFrameLimit > 0 {
				elapsed := time.Since(lastRender)
				if remaining := e.renderFrameLimit - elapsed; remaining > 0 {
					time.Sleep(remaining)
				}
			}
		}
	}
}

// handleQuit blocks until the quit channel is closed, then decrements the WaitGroup.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickRate sets the engine tick rate in frames per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Second / time.Duration(fps)

	if e.running {
		// Send to channel for immediate update in running engine loop
		// Non-blocking send - if channel is full, replace the pending value
		select {
		case e.tickRateChannel <- newRate:
		default:
			// Channel has a pending update, drain and send new value
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		// Engine not running, just update the field
		e.engineTickRate = newRate
	}
}

// SetTickCallback registers the function called each engine tick.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

// SetRenderCallback registers the function called each render frame.
func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

// SetRenderFrameLimit sets an optional render frame rate cap.
// Pass 0 to uncap the render loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Second / time.Duration(fps)
}
