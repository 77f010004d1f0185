// Package worker provides the concurrency layer for batch document
// processing. Claims are independently owned, so jobs need no coordination
// beyond the pool itself.
package worker

import (
	"context"
	"sync"
)

// Job is a unit of work executed by the pool.
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is the outcome of a job execution.
type Result interface {
	Err() error
}

// Pool runs jobs across a fixed number of workers. Workers append results
// to an internal collector rather than a bounded channel, so a worker
// never blocks on a full results buffer and callers may submit any number
// of jobs before calling Wait.
type Pool struct {
	workers   int
	jobs      chan Job
	mu        sync.Mutex
	results   []Result
	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewPool creates a pool with the given number of workers (minimum 1).
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		workers: workers,
		jobs:    make(chan Job, workers*2),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			result := job.Execute(p.ctx)
			p.mu.Lock()
			p.results = append(p.results, result)
			p.mu.Unlock()
		}
	}
}

// Submit queues a job for execution. Submissions after Shutdown are
// dropped.
func (p *Pool) Submit(job Job) {
	select {
	case <-p.ctx.Done():
		return
	case p.jobs <- job:
	}
}

// Wait closes the job queue, waits for all submitted jobs to finish and
// returns their results.
func (p *Pool) Wait() []Result {
	p.closeOnce.Do(func() {
		close(p.jobs)
	})
	p.wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.results
}

// Shutdown stops the pool immediately, abandoning queued jobs.
func (p *Pool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}
