package worker

import "context"

// HashPool bounds how many bcrypt computations run at once so a burst
// of logins cannot monopolize the scheduler. Jobs queued behind busy
// workers observe context cancellation instead of blocking forever.
type HashPool struct {
	jobs chan job
	done chan struct{}
}

type job struct {
	run    func()
	doneCh chan struct{}
}

// NewHashPool starts size workers. Size below one falls back to a
// single worker.
func NewHashPool(size int) *HashPool {
	if size < 1 {
		size = 1
	}
	p := &HashPool{
		jobs: make(chan job),
		done: make(chan struct{}),
	}
	for i := 0; i < size; i++ {
		go p.worker()
	}
	return p
}

func (p *HashPool) worker() {
	for {
		select {
		case j := <-p.jobs:
			j.run()
			close(j.doneCh)
		case <-p.done:
			return
		}
	}
}

// Do runs fn on a pool worker and waits for it to finish. Returns the
// context error if cancellation wins while the job is still queued.
func (p *HashPool) Do(ctx context.Context, fn func()) error {
	j := job{run: fn, doneCh: make(chan struct{})}
	select {
	case p.jobs <- j:
	case <-ctx.Done():
		return ctx.Err()
	case <-p.done:
		return context.Canceled
	}
	<-j.doneCh
	return nil
}

// Close stops the workers. Queued jobs that were not picked up are
// abandoned; in-flight jobs finish.
func (p *HashPool) Close() {
	close(p.done)
}
