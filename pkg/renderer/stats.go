package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels   int           // Total number of pixels rendered
	TotalRows     int           // Total number of rows rendered
	NumWorkers    int           // Number of workers in the pool
	RowsPerWorker []int         // Rows completed by each worker
	Duration      time.Duration // Wall time of the render
}

// PixelsPerSecond returns the render throughput
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / s.Duration.Seconds()
}
