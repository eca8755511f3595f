package supervisor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/hedisam/pipeline"
	"github.com/hedisam/pipeline/stage"
	"github.com/sirupsen/logrus"

	"github.com/hedisam/pandocwatch/internal/compile"
	"github.com/hedisam/pandocwatch/internal/config"
	"github.com/hedisam/pandocwatch/internal/console"
	"github.com/hedisam/pandocwatch/internal/filesystem"
	"github.com/hedisam/pandocwatch/internal/interceptors"
	"github.com/hedisam/pandocwatch/internal/ops"
	"github.com/hedisam/pandocwatch/lib/chans"
)

var (
	ErrAlreadyRunning = errors.New("supervisor already started")
)

type State int32

const (
	StateIdle State = iota
	StateWatching
	StateDraining
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWatching:
		return "watching"
	case StateDraining:
		return "draining"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

type Watcher interface {
	AddRecursive(root string) error
	Start(ctx context.Context) error
	Close()
}

type Queue interface {
	Chan() <-chan *ops.FileOp
	Pending() int
	Close()
}

type Detector interface {
	Detect() (filesystem.Entry, bool)
	Snapshot() filesystem.Snapshot
}

type Compiler interface {
	Run(ctx context.Context, commandLine string) *compile.Result
	Wait()
}

// Components are the collaborators of the watch loop, built once in main.
type Components struct {
	Watcher  Watcher
	Queue    Queue
	Detector Detector
	Compiler Compiler
	Console  *console.Console
	Metrics  *interceptors.Metrics
}

// Supervisor owns the one watch session of the process: it subscribes to the working directory, dispatches
// notifications one at a time and stops on context cancellation.
type Supervisor struct {
	logger *logrus.Logger
	cfg    *config.WatchConfig
	root   string
	state  atomic.Int32

	// mu orders the registration of a dispatch against the move to Draining, so inflight is never added to
	// while it is being waited on.
	mu       sync.Mutex
	inflight sync.WaitGroup

	Components
}

func New(logger *logrus.Logger, cfg *config.WatchConfig, root string, c Components) *Supervisor {
	return &Supervisor{
		logger:     logger,
		cfg:        cfg,
		root:       root,
		Components: c,
	}
}

func (s *Supervisor) State() State {
	return State(s.state.Load())
}

// Run blocks until the context is canceled or the watcher fails. An in-flight recompilation is always awaited
// before Run returns.
func (s *Supervisor) Run(ctx context.Context) error {
	if !s.state.CompareAndSwap(int32(StateIdle), int32(StateWatching)) {
		return ErrAlreadyRunning
	}

	err := s.Watcher.AddRecursive(s.root)
	if err != nil {
		s.Watcher.Close()
		s.Queue.Close()
		s.state.Store(int32(StateStopped))
		return fmt.Errorf("watch %q: %w", s.root, err)
	}
	s.Metrics.SetWatchedEntries(len(s.Detector.Snapshot()))
	s.Console.Starting(s.root)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	watchErrCh := make(chan error, 1)
	go func() {
		defer cancel()
		watchErrCh <- s.Watcher.Start(ctx)
	}()

	source := &notificationSource{ch: s.Queue.Chan()}
	p := pipeline.NewPipeline(source, s.resultSink)
	pipeErr := p.Run(ctx, stage.FIFORunner(s.dispatch))

	s.mu.Lock()
	s.state.Store(int32(StateDraining))
	s.mu.Unlock()
	s.logger.Debug("Draining watch session")
	cancel()
	s.Watcher.Close()
	watchErr := <-watchErrCh
	s.Queue.Close()
	s.inflight.Wait()
	s.Compiler.Wait()

	s.Console.Stopping()
	s.state.Store(int32(StateStopped))

	if pipeErr != nil && !errors.Is(pipeErr, context.Canceled) {
		return fmt.Errorf("dispatch pipeline: %w", pipeErr)
	}
	if watchErr != nil {
		return fmt.Errorf("filesystem watcher: %w", watchErr)
	}

	return nil
}

// dispatch is run by the FIFO stage, one notification at a time, so there is never more than one
// recompilation in flight.
func (s *Supervisor) dispatch(ctx context.Context, payload any) (out any, drop bool, err error) {
	op, ok := payload.(*ops.FileOp)
	if !ok {
		return nil, false, fmt.Errorf("invalid payload type received by dispatcher: %T", payload)
	}

	if !s.beginDispatch() {
		s.logger.WithField("path", op.Path).Debug("Session is draining, dropping notification")
		return nil, true, nil
	}
	defer s.inflight.Done()

	s.Metrics.ObserveNotification(string(op.Op), s.Queue.Pending())
	logger := s.logger.WithFields(logrus.Fields{
		"path": op.Path,
		"op":   op.Op,
	})

	entry, changed := s.Detector.Detect()
	if !changed {
		logger.Debug("No watched entry has changed, ignoring notification")
		return nil, true, nil
	}
	s.Metrics.SetWatchedEntries(len(s.Detector.Snapshot()))

	s.Console.Changed(entry.Name)
	s.Console.Updating()
	s.Console.Executing(s.cfg.Command)

	result := s.Compiler.Run(ctx, s.cfg.Command)
	s.Metrics.ObserveRecompilation(result.Succeeded(), result.Duration)
	if result.Succeeded() {
		s.Console.Succeeded()
	} else {
		s.Console.Failed(result.Output)
	}
	s.Console.Done()

	return result, false, nil
}

// beginDispatch registers an in-flight dispatch unless the session has already left the Watching state.
func (s *Supervisor) beginDispatch() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State() != StateWatching {
		return false
	}
	s.inflight.Add(1)
	return true
}

func (s *Supervisor) resultSink(_ context.Context, payload any) error {
	result, ok := payload.(*compile.Result)
	if !ok {
		return fmt.Errorf("invalid payload type received by result sink: %T", payload)
	}

	s.logger.WithFields(logrus.Fields{
		"run_id":    result.RunID,
		"exit_code": result.ExitCode,
		"duration":  result.Duration.String(),
	}).Info("Recompilation finished")
	return nil
}

// notificationSource implements pipeline.Source on top of the notification queue.
type notificationSource struct {
	ch <-chan *ops.FileOp
}

func (s *notificationSource) Next(ctx context.Context) (any, error) {
	op, ok := chans.ReceiveOrDone(ctx, s.ch)
	if !ok {
		return nil, io.EOF
	}
	return op, nil
}
