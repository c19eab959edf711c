package renderer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// directionTracer maps the ray direction to a color so every pixel differs
type directionTracer struct{}

func (directionTracer) TraceRay(ray core.Ray) core.Vec3 {
	return ray.Direction.Add(core.Splat(1)).Multiply(0.5)
}

// countingSink records how many times each pixel was written
type countingSink struct {
	mu     sync.Mutex
	counts map[[2]int]int
}

func newCountingSink() *countingSink {
	return &countingSink{counts: make(map[[2]int]int)}
}

func (s *countingSink) PutPixel(x, y int, _ core.Vec3) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[[2]int{x, y}]++
}

func createTestRaytracer(t *testing.T, width, height, workers int) *Raytracer {
	t.Helper()
	config := DefaultCameraConfig()
	config.Width = width
	config.Height = height
	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}
	return NewRaytracer(directionTracer{}, camera, RenderConfig{NumWorkers: workers}, nil)
}

func TestRaytracer_EveryPixelWrittenOnce(t *testing.T) {
	rt := createTestRaytracer(t, 37, 23, 5)
	sink := newCountingSink()

	stats, err := rt.Render(context.Background(), sink)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if len(sink.counts) != 37*23 {
		t.Errorf("Expected %d distinct pixels, got %d", 37*23, len(sink.counts))
	}
	for pixel, count := range sink.counts {
		if count != 1 {
			t.Errorf("Pixel %v written %d times", pixel, count)
		}
	}

	if stats.TotalRows != 23 || stats.TotalPixels != 37*23 {
		t.Errorf("Expected 23 rows / %d pixels, got %d / %d", 37*23, stats.TotalRows, stats.TotalPixels)
	}

	total := 0
	for _, rows := range stats.RowsPerWorker {
		total += rows
	}
	if total != 23 {
		t.Errorf("Expected rows per worker to sum to 23, got %d", total)
	}
}

func TestRaytracer_ParallelMatchesSerial(t *testing.T) {
	serial, _, err := createTestRaytracer(t, 48, 32, 1).RenderImage(context.Background())
	if err != nil {
		t.Fatalf("Serial render failed: %v", err)
	}
	parallel, _, err := createTestRaytracer(t, 48, 32, 8).RenderImage(context.Background())
	if err != nil {
		t.Fatalf("Parallel render failed: %v", err)
	}

	for y := 0; y < 32; y++ {
		for x := 0; x < 48; x++ {
			if serial.RGBAAt(x, y) != parallel.RGBAAt(x, y) {
				t.Fatalf("Pixel (%d,%d) differs: serial %v, parallel %v",
					x, y, serial.RGBAAt(x, y), parallel.RGBAAt(x, y))
			}
		}
	}
}

func TestRaytracer_DefaultWorkerCount(t *testing.T) {
	rt := createTestRaytracer(t, 8, 8, 0)
	stats, err := rt.Render(context.Background(), newCountingSink())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if stats.NumWorkers <= 0 {
		t.Errorf("Expected auto-detected worker count, got %d", stats.NumWorkers)
	}
}

func TestRaytracer_Cancelled(t *testing.T) {
	rt := createTestRaytracer(t, 16, 16, 4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sink := newCountingSink()
	stats, err := rt.Render(ctx, sink)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if stats.TotalRows != 0 || len(sink.counts) != 0 {
		t.Errorf("Expected no rows rendered after cancellation, got %d rows", stats.TotalRows)
	}

	if img, _, err := rt.RenderImage(ctx); err == nil || img != nil {
		t.Error("Expected RenderImage to fail on a cancelled context")
	}
}

// slowTracer stands in for a deep recursive trace
type slowTracer struct {
	delay time.Duration
}

func (st slowTracer) TraceRay(ray core.Ray) core.Vec3 {
	time.Sleep(st.delay)
	return core.Splat(1)
}

func TestRaytracer_CancelInsideRow(t *testing.T) {
	config := DefaultCameraConfig()
	config.Width = 200
	config.Height = 4
	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}
	// One row takes about a second
	rt := NewRaytracer(slowTracer{delay: 5 * time.Millisecond}, camera, RenderConfig{NumWorkers: 1}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	sink := newCountingSink()
	start := time.Now()
	stats, err := rt.Render(ctx, sink)
	elapsed := time.Since(start)

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Expected context.DeadlineExceeded, got %v", err)
	}
	if elapsed > 500*time.Millisecond {
		t.Errorf("Expected render to stop within the first row, took %v", elapsed)
	}
	if stats.TotalRows != 0 {
		t.Errorf("Expected no completed rows, got %d", stats.TotalRows)
	}
	if n := len(sink.counts); n == 0 || n >= 200 {
		t.Errorf("Expected a partially written first row, got %d pixels", n)
	}
}

func TestRaytracer_RenderRow(t *testing.T) {
	rt := createTestRaytracer(t, 10, 3, 1)
	sink := newCountingSink()

	if err := rt.RenderRow(context.Background(), 1, sink); err != nil {
		t.Fatalf("RenderRow failed: %v", err)
	}
	if len(sink.counts) != 10 {
		t.Errorf("Expected 10 pixels, got %d", len(sink.counts))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := rt.RenderRow(ctx, 2, sink); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if len(sink.counts) != 10 {
		t.Errorf("Expected cancelled row to write nothing, got %d pixels total", len(sink.counts))
	}
}
