package compile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	tracerName = "github.com/hedisam/pandocwatch/internal/compile"
)

// Result is the outcome of a single recompilation.
type Result struct {
	RunID    string
	Command  string
	Output   string
	ExitCode int
	Duration time.Duration
	// Err is set when the command could not be started at all.
	Err error
}

func (r *Result) Succeeded() bool {
	return r.Err == nil && r.ExitCode == 0
}

// Runner executes command lines through the system shell inside a fixed directory.
type Runner struct {
	logger   *logrus.Logger
	dir      string
	inflight sync.WaitGroup
}

func New(logger *logrus.Logger, dir string) *Runner {
	return &Runner{
		logger: logger,
		dir:    dir,
	}
}

// Run executes the command line and blocks until it exits, with stdout and stderr captured into one buffer.
// There is no timeout and the context only carries the trace; canceling it does not kill the process.
func (r *Runner) Run(ctx context.Context, commandLine string) *Result {
	r.inflight.Add(1)
	defer r.inflight.Done()

	result := &Result{
		RunID:   uuid.NewString(),
		Command: commandLine,
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "recompile")
	defer span.End()
	span.SetAttributes(
		attribute.String("run_id", result.RunID),
		attribute.String("command", commandLine),
		attribute.String("dir", r.dir),
	)

	logger := r.logger.WithContext(ctx).WithFields(logrus.Fields{
		"run_id":  result.RunID,
		"command": commandLine,
	})
	logger.Debug("Running command")

	var output bytes.Buffer
	cmd := shellCommand(commandLine)
	cmd.Dir = r.dir
	cmd.Stdout = &output
	cmd.Stderr = &output

	start := time.Now()
	err := cmd.Run()
	result.Duration = time.Since(start)
	result.Output = output.String()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		result.Err = fmt.Errorf("run %q: %w", commandLine, err)
		result.ExitCode = -1
		if result.Output == "" {
			result.Output = result.Err.Error()
		}
	}

	span.SetAttributes(attribute.Int("exit_code", result.ExitCode))
	logger = logger.WithFields(logrus.Fields{
		"exit_code": result.ExitCode,
		"duration":  result.Duration.String(),
	})
	if !result.Succeeded() {
		span.SetStatus(codes.Error, "command failed")
		logger.WithError(result.Err).Debug("Command failed")
		return result
	}

	logger.Debug("Command succeeded")
	return result
}

// Wait blocks until every in-flight Run has returned.
func (r *Runner) Wait() {
	r.inflight.Wait()
}

func shellCommand(commandLine string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.Command("cmd", "/C", commandLine)
	}
	return exec.Command("sh", "-c", commandLine)
}
