package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

// BatchProcessor is the job the scheduler runs on every tick.
type BatchProcessor interface {
	ProcessBatch(ctx context.Context) error
}

// SchedulerService exposes a small control surface for the scheduler.
type SchedulerService interface {
	Start() error
	Stop() error
	RunNow() error
	IsRunning() bool
}

// DefaultInterval is used when no custom interval is provided.
const DefaultInterval = time.Minute

// DefaultBatchTimeout bounds a single batch via its context.
const DefaultBatchTimeout = 30 * time.Second

// controlTimeout is how long callers wait for the loop to accept and
// acknowledge a command.
const controlTimeout = 2 * time.Second

// ErrBatchInProgress is returned by RunNow when a batch is already executing.
var ErrBatchInProgress = errors.New("[Scheduler] a batch is already running")

type controlOp int

const (
	opStart controlOp = iota
	opStop
	opRun
	opStatus
)

type controlMsg struct {
	op   controlOp
	resp chan error
}

// schedulerService keeps all mutable state inside the loop goroutine.
// Batches run in their own goroutine so the loop keeps answering
// status queries while one is in flight.
type schedulerService struct {
	processor    BatchProcessor
	interval     time.Duration
	batchTimeout time.Duration
	ctrl         chan controlMsg
}

// NewSchedulerService creates a scheduler for processor. Non-positive
// durations fall back to the defaults. The scheduler starts stopped.
func NewSchedulerService(
	processor BatchProcessor,
	interval time.Duration,
	batchTimeout time.Duration,
) SchedulerService {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if batchTimeout <= 0 {
		batchTimeout = DefaultBatchTimeout
	}

	s := &schedulerService{
		processor:    processor,
		interval:     interval,
		batchTimeout: batchTimeout,
		ctrl:         make(chan controlMsg),
	}

	go s.loop()

	return s
}

// Start begins processing ticks.
func (s *schedulerService) Start() error {
	return s.send("Start", opStart)
}

// Stop stops accepting ticks. If a batch is running, Stop returns once
// it has finished or hit its timeout.
func (s *schedulerService) Stop() error {
	return s.send("Stop", opStop)
}

// RunNow triggers one batch immediately, whether or not the scheduler is
// running. It does not wait for the batch to finish.
func (s *schedulerService) RunNow() error {
	return s.send("RunNow", opRun)
}

// IsRunning reports whether ticks are being processed. It does not say
// whether a batch is executing right now.
func (s *schedulerService) IsRunning() bool {
	return s.send("IsRunning", opStatus) == nil
}

// send delivers op to the loop and waits for its answer. Stop may take up
// to batchTimeout to be answered, so its ack wait is extended by that.
func (s *schedulerService) send(name string, op controlOp) error {
	resp := make(chan error, 1)

	select {
	case s.ctrl <- controlMsg{op: op, resp: resp}:
	case <-time.After(controlTimeout):
		return fmt.Errorf("[Scheduler] %s: control loop not responding", name)
	}

	wait := controlTimeout
	if op == opStop {
		wait += s.batchTimeout
	}

	select {
	case err := <-resp:
		return err
	case <-time.After(wait):
		return fmt.Errorf("[Scheduler] %s: acknowledgement timeout", name)
	}
}

var errNotRunning = errors.New("not running")

func (s *schedulerService) loop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	running := false
	var batchDone chan struct{} // non-nil while a batch executes

	// Stop requests that arrived mid-batch, answered when it finishes.
	var pendingStops []chan error

	for {
		select {
		case msg := <-s.ctrl:
			switch msg.op {
			case opStart:
				if !running {
					log.Printf("[Scheduler] Started (interval=%s, batchTimeout=%s)",
						s.interval, s.batchTimeout)
				}
				running = true
				msg.resp <- nil

			case opStop:
				if running {
					log.Println("[Scheduler] Stop requested.")
				}
				running = false
				if batchDone != nil {
					log.Println("[Scheduler] Waiting for current batch...")
					pendingStops = append(pendingStops, msg.resp)
				} else {
					msg.resp <- nil
				}

			case opRun:
				if batchDone != nil {
					msg.resp <- ErrBatchInProgress
					continue
				}
				log.Println("[Scheduler] Manual batch triggered.")
				batchDone = s.runBatch()
				msg.resp <- nil

			case opStatus:
				if running {
					msg.resp <- nil
				} else {
					msg.resp <- errNotRunning
				}
			}

		case <-ticker.C:
			if !running || batchDone != nil {
				continue
			}
			batchDone = s.runBatch()

		case <-batchDone:
			batchDone = nil
			for _, r := range pendingStops {
				r <- nil
			}
			if len(pendingStops) > 0 {
				log.Println("[Scheduler] Stopped (no active batch).")
			}
			pendingStops = nil
		}
	}
}

// runBatch executes one time-bounded batch in the background and returns
// a channel closed when it is done.
func (s *schedulerService) runBatch() chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)

		ctx, cancel := context.WithTimeout(context.Background(), s.batchTimeout)
		defer cancel()

		log.Println("[Scheduler] Triggering batch...")
		if err := s.processor.ProcessBatch(ctx); err != nil {
			log.Printf("[Scheduler] Batch failed: %v", err)
			return
		}
		log.Println("[Scheduler] Batch completed.")
	}()

	return done
}
