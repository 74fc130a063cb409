package worker

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	// ErrQueueFull is returned by SubmitJob when the job queue has no free slot.
	ErrQueueFull = errors.New("job queue full")
	// ErrDispatcherStopped is returned by SubmitJob after Stop.
	ErrDispatcherStopped = errors.New("dispatcher stopped")
)

// Job represents a unit of work to be executed.
type Job interface {
	Execute(ctx context.Context) error
	ID() string
}

// Worker pulls jobs from its own channel after registering it with the pool.
type Worker struct {
	ID         int
	WorkerPool chan chan Job
	JobChannel chan Job
	quit       <-chan struct{}
	wg         *sync.WaitGroup
	log        *logrus.Entry
}

// NewWorker creates a new Worker.
func NewWorker(id int, workerPool chan chan Job, quit <-chan struct{}, wg *sync.WaitGroup, logger *logrus.Logger) Worker {
	return Worker{
		ID:         id,
		WorkerPool: workerPool,
		JobChannel: make(chan Job),
		quit:       quit,
		wg:         wg,
		log:        logger.WithField("worker_id", id),
	}
}

// Start makes the Worker listen for jobs until quit is closed.
func (w Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			w.WorkerPool <- w.JobChannel

			select {
			case job := <-w.JobChannel:
				w.run(ctx, job)
			case <-w.quit:
				w.log.Debug("Worker stopping")
				return
			}
		}
	}()
}

func (w Worker) run(ctx context.Context, job Job) {
	log := w.log.WithField("job_id", job.ID())
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Recovered from panic in job: %v", r)
		}
	}()

	log.Debug("Started job")
	if err := job.Execute(ctx); err != nil {
		log.WithError(err).Error("Error processing job")
		return
	}
	log.Debug("Finished job")
}

// Dispatcher manages a pool of workers and dispatches queued jobs to them.
type Dispatcher struct {
	MaxWorkers int
	WorkerPool chan chan Job
	JobQueue   chan Job

	workers  []Worker
	wg       sync.WaitGroup
	quit     chan struct{}
	done     chan struct{}
	logger   *logrus.Logger
	mu       sync.RWMutex
	started  bool
	stopped  bool
	stopOnce sync.Once
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(maxWorkers int, jobQueueSize int, logger *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		MaxWorkers: maxWorkers,
		WorkerPool: make(chan chan Job, maxWorkers),
		JobQueue:   make(chan Job, jobQueueSize),
		workers:    make([]Worker, 0, maxWorkers),
		quit:       make(chan struct{}),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run starts the workers and the dispatch loop. Jobs run with ctx.
func (d *Dispatcher) Run(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.stopped {
		return
	}
	d.started = true

	for i := 1; i <= d.MaxWorkers; i++ {
		w := NewWorker(i, d.WorkerPool, d.quit, &d.wg, d.logger)
		d.workers = append(d.workers, w)
		w.Start(ctx)
	}
	go d.dispatch()
	d.logger.WithField("workers", d.MaxWorkers).Info("Dispatcher is running")
}

// dispatch hands every queued job to the next free worker until the queue
// is closed and empty.
func (d *Dispatcher) dispatch() {
	defer close(d.done)
	for job := range d.JobQueue {
		jobChannel := <-d.WorkerPool
		jobChannel <- job
	}
}

// SubmitJob queues a job without blocking.
func (d *Dispatcher) SubmitJob(job Job) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		return ErrDispatcherStopped
	}

	select {
	case d.JobQueue <- job:
		d.logger.WithField("job_id", job.ID()).Debug("Job submitted to queue")
		return nil
	default:
		d.logger.WithField("job_id", job.ID()).Warn("Job queue full, job rejected")
		return ErrQueueFull
	}
}

// Stop refuses new jobs, runs every job already queued and waits for the
// workers to finish.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.stopped = true
		started := d.started
		close(d.JobQueue)
		d.mu.Unlock()

		if !started {
			return
		}
		d.logger.WithField("pending", len(d.JobQueue)).Info("Dispatcher: draining queue")
		<-d.done
		close(d.quit)
		d.wg.Wait()
		d.logger.Info("Dispatcher: shutdown complete")
	})
}
