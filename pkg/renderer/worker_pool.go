package renderer

import (
	"context"
	"runtime"
	"sync"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ScanlineTask represents a scanline rendering task for the worker pool
type ScanlineTask struct {
	Row  int   // Image row, 0 is the bottom of the image
	Seed int64 // Seed for the task's own random generator
}

// ScanlineResult contains the result from rendering a scanline
type ScanlineResult struct {
	Row    int
	Pixels []PixelStats
	Err    error
}

// WorkerPool manages parallel scanline rendering
type WorkerPool struct {
	taskQueue   chan ScanlineTask
	resultQueue chan ScanlineResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual scanline rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	taskQueue   chan ScanlineTask
	resultQueue chan ScanlineResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Both queues hold maxTasks entries so submitting and reporting never block.
func NewWorkerPool(raytracer *Raytracer, maxTasks int, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan ScanlineTask, maxTasks),
		resultQueue: make(chan ScanlineResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			raytracer:   raytracer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a scanline task to the worker pool
func (wp *WorkerPool) SubmitTask(task ScanlineTask) {
	wp.taskQueue <- task
}

// Results returns the channel of completed scanlines, in completion order
func (wp *WorkerPool) Results() <-chan ScanlineResult {
	return wp.resultQueue
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		if err := ctx.Err(); err != nil {
			w.resultQueue <- ScanlineResult{Row: task.Row, Err: err}
			continue
		}

		// Every task owns its generator, so results do not depend on scheduling
		sampler := core.NewSeededSampler(task.Seed)
		w.resultQueue <- ScanlineResult{
			Row:    task.Row,
			Pixels: w.raytracer.RenderScanline(task.Row, sampler),
		}
	}
}
