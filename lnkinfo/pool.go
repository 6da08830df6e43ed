package main

import "sync"

const queueLength = 1000

type job func()

// pool runs enqueued jobs on a fixed number of goroutines.
type pool struct {
	jobs    chan job
	pending sync.WaitGroup
	workers sync.WaitGroup
}

func newPool(numWorkers int) *pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	p := &pool{jobs: make(chan job, queueLength)}
	p.workers.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go p.work()
	}
	return p
}

func (p *pool) work() {
	defer p.workers.Done()
	for job := range p.jobs {
		job()
	}
}

func (p *pool) Enqueue(job job) {
	p.pending.Add(1)
	p.jobs <- func() {
		defer p.pending.Done()
		job()
	}
}

// Wait blocks until every enqueued job has finished.
func (p *pool) Wait() {
	p.pending.Wait()
}

// Release stops the workers. The pool cannot be used afterwards.
func (p *pool) Release() {
	close(p.jobs)
	p.workers.Wait()
}
