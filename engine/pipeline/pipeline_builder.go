package pipeline

import (
	"github.com/lilith645/Maat-Graphics/engine/profiler"
	"github.com/lilith645/Maat-Graphics/engine/shading/sprite"
)

// PipelineBuilderOption is a functional option for configuring a pipeline.
type PipelineBuilderOption func(*pipelineImpl)

// WithWorkers sets the number of fragment-shading workers. Values below 1 are
// clamped to 1.
//
// Parameters:
//   - workers: the worker count
//
// Returns:
//   - PipelineBuilderOption: the option
func WithWorkers(workers int) PipelineBuilderOption {
	return func(p *pipelineImpl) {
		p.workers = max(workers, 1)
	}
}

// WithProfiler attaches a profiler that records per-draw triangle and
// fragment counts.
//
// Parameters:
//   - prof: the profiler to attach
//
// Returns:
//   - PipelineBuilderOption: the option
func WithProfiler(prof *profiler.Profiler) PipelineBuilderOption {
	return func(p *pipelineImpl) {
		p.prof = prof
	}
}

// WithSpriteProjectionMode sets the sprite stage's projection mode.
//
// Parameters:
//   - mode: the projection mode
//
// Returns:
//   - PipelineBuilderOption: the option
func WithSpriteProjectionMode(mode sprite.ProjectionMode) PipelineBuilderOption {
	return func(p *pipelineImpl) {
		p.spriteStage.SetMode(mode)
	}
}
