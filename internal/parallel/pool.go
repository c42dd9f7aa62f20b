// Package parallel provides the worker pool used to rasterize glyphs on
// several goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Task is a unit of work. worker is the index of the goroutine running it,
// in [0, Workers()), so tasks can use per-worker state without locking.
type Task func(worker int)

// WorkerPool is a fixed set of goroutines, each with its own queue.
// A worker whose queue is empty steals from the others, which balances
// glyphs that take longer to rasterize than their neighbours.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers    int
	workQueues []chan Task
	done       chan struct{}
	wg         sync.WaitGroup
	running    atomic.Bool
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan Task, workers),
		done:       make(chan struct{}),
	}
	for i := range workers {
		p.workQueues[i] = make(chan Task, queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	myQueue := p.workQueues[id]

	for {
		select {
		case <-p.done:
			p.drainQueue(id, myQueue)
			return

		case task := <-myQueue:
			task(id)

		default:
			if stolen := p.steal(id); stolen != nil {
				stolen(id)
				continue
			}
			select {
			case <-p.done:
				p.drainQueue(id, myQueue)
				return
			case task := <-myQueue:
				task(id)
			}
		}
	}
}

// drainQueue runs everything left in queue on worker id.
func (p *WorkerPool) drainQueue(id int, queue chan Task) {
	for {
		select {
		case task := <-queue:
			task(id)
		default:
			return
		}
	}
}

// steal takes one task from another worker's queue, or returns nil.
func (p *WorkerPool) steal(myID int) Task {
	for i := range p.workers {
		if i == myID {
			continue
		}
		select {
		case task := <-p.workQueues[i]:
			return task
		default:
		}
	}
	return nil
}

// ExecuteAll distributes tasks round-robin and waits for all of them.
// Nil tasks are skipped. If the pool is closed, this is a no-op.
func (p *WorkerPool) ExecuteAll(tasks []Task) {
	if len(tasks) == 0 || !p.running.Load() {
		return
	}

	var pending sync.WaitGroup
	for i, task := range tasks {
		if task == nil {
			continue
		}
		pending.Add(1)
		wrapped := func(worker int) {
			defer pending.Done()
			task(worker)
		}

		select {
		case p.workQueues[i%p.workers] <- wrapped:
		case <-p.done:
			pending.Done()
		}
	}

	pending.Wait()
}

// Close stops accepting work, runs whatever is queued and stops all workers.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
