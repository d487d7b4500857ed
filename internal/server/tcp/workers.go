package tcp

import "sync"

// Pool is a fixed set of workers sharing a bounded task queue. It keeps the
// number of goroutines flat under connection spikes.
type Pool struct {
	queue chan func()
	wg    *sync.WaitGroup
}

// NewPool starts size workers with a task queue of queue seats. Panics if
// size isn't positive, as a pool without workers would silently swallow
// every scheduled task.
func NewPool(size, queue int) *Pool {
	if size <= 0 {
		panic("workers pool size must be positive")
	}

	p := &Pool{
		queue: make(chan func(), queue),
		wg:    new(sync.WaitGroup),
	}

	p.wg.Add(size)
	for i := 0; i < size; i++ {
		go p.worker()
	}

	return p
}

// Schedule enqueues a task, blocking until there is a free seat in the queue.
func (p *Pool) Schedule(task func()) {
	p.queue <- task
}

// Stop lets the already queued tasks complete and waits for all the workers
// to exit. The pool cannot be used afterwards.
func (p *Pool) Stop() {
	close(p.queue)
	p.wg.Wait()
}

func (p *Pool) worker() {
	for task := range p.queue {
		task()
	}

	p.wg.Done()
}
