package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Tracer computes the color seen along a primary ray.
// Implementations must be safe for concurrent use.
type Tracer interface {
	TraceRay(ray core.Ray) core.Vec3
}

// RenderConfig contains rendering configuration
type RenderConfig struct {
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Raytracer drives a Tracer over every pixel of a camera frame
type Raytracer struct {
	tracer Tracer
	camera *Camera
	width  int
	height int
	config RenderConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(tracer Tracer, camera *Camera, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = discardLogger{}
	}
	return &Raytracer{
		tracer: tracer,
		camera: camera,
		width:  camera.Width(),
		height: camera.Height(),
		config: config,
		logger: logger,
	}
}

// RenderRow traces every pixel of row y into sink. Cancellation is checked
// before each pixel, so a cancelled row is left partially written.
func (rt *Raytracer) RenderRow(ctx context.Context, y int, sink FrameSink) error {
	for x := 0; x < rt.width; x++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		sink.PutPixel(x, y, rt.tracer.TraceRay(rt.camera.PixelRay(x, y)))
	}
	return nil
}

// Render traces the whole frame into sink using a pool of workers.
// If ctx is cancelled, workers stop at the next pixel and ctx.Err()
// is returned.
func (rt *Raytracer) Render(ctx context.Context, sink FrameSink) (RenderStats, error) {
	startTime := time.Now()

	pool := NewWorkerPool(rt, sink, rt.config.NumWorkers)
	rt.logger.Printf("Rendering %dx%d using %d workers...\n", rt.width, rt.height, pool.GetNumWorkers())

	pool.Start(ctx)
	for y := 0; y < rt.height; y++ {
		pool.SubmitTask(RowTask{Y: y})
	}
	pool.Stop()

	stats := RenderStats{
		NumWorkers:    pool.GetNumWorkers(),
		RowsPerWorker: make([]int, pool.GetNumWorkers()),
	}

	var renderErr error
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}
		stats.TotalRows++
		stats.RowsPerWorker[result.WorkerID]++
	}

	stats.TotalPixels = stats.TotalRows * rt.width
	stats.Duration = time.Since(startTime)

	if renderErr != nil {
		rt.logger.Printf("Render cancelled after %d of %d rows\n", stats.TotalRows, rt.height)
		return stats, fmt.Errorf("render cancelled: %w", renderErr)
	}

	rt.logger.Printf("Render completed in %v (%.0f pixels/s)\n", stats.Duration, stats.PixelsPerSecond())
	return stats, nil
}

// RenderImage renders into a new Frame and returns its image
func (rt *Raytracer) RenderImage(ctx context.Context) (*image.RGBA, RenderStats, error) {
	frame := NewFrame(rt.width, rt.height)
	stats, err := rt.Render(ctx, frame)
	if err != nil {
		return nil, stats, err
	}
	return frame.Image(), stats, nil
}
