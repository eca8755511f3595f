package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hedisam/pandocwatch/internal/compile"
	"github.com/hedisam/pandocwatch/internal/config"
	"github.com/hedisam/pandocwatch/internal/console"
	"github.com/hedisam/pandocwatch/internal/detect"
	"github.com/hedisam/pandocwatch/internal/emitter"
	"github.com/hedisam/pandocwatch/internal/filesystem"
	"github.com/hedisam/pandocwatch/internal/filesystem/watch"
	"github.com/hedisam/pandocwatch/internal/interceptors"
	"github.com/hedisam/pandocwatch/internal/supervisor"
)

const (
	usageText = `Usage: pandocwatch [-e|--exclude tokens] [-h|--help] <pandoc options...>

Watcher for pandoc compilation

Options:
  -e, --exclude tokens  The extensions (.pdf for pdf files) or the files and folders to exclude
                        from watch operations, separated by commas
                        (default "` + config.DefaultExclusions + `")
  -h, --help            Show this help message
`
	epilogSeparator = "-------------------------------------------\n"
)

type app struct {
	logger *logrus.Logger
	stdout io.Writer
	stderr io.Writer
	// pandoc is the executable name looked up on PATH.
	pandoc string
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pandocwatch [-e|--exclude tokens] <pandoc options...>",
		Short: "Watcher for pandoc compilation",
		Long: "pandocwatch watches the current directory and reruns pandoc with the given options whenever " +
			"a watched file changes.",
		// every flag pandocwatch does not know about belongs to pandoc.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               a.run,
	}
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	return cmd
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	pandocPath, err := compile.LookPandoc(a.pandoc)
	if err != nil {
		fmt.Fprintf(a.stderr, "%s executable must be in the path to be used by pandocwatch!\n", a.pandoc)
		return err
	}

	opts, err := config.LoadOptions()
	if err != nil {
		fmt.Fprintln(a.stderr, err)
		return err
	}

	parsed, err := config.ParseArgs(args)
	if err != nil {
		console.New(a.stdout, a.stderr, !opts.NoColor).Usage(err, usageText)
		return err
	}
	opts.Apply(parsed)

	if parsed.Help {
		fmt.Fprint(a.stdout, a.help(ctx, pandocPath))
		return nil
	}

	cfg, err := config.New(opts.Exclude, parsed.PandocArgs)
	if err != nil {
		console.New(a.stdout, a.stderr, !opts.NoColor).Usage(err, usageText)
		return err
	}

	if opts.Verbose {
		a.logger.SetLevel(logrus.DebugLevel)
	}

	return a.watch(ctx, opts, cfg)
}

func (a *app) watch(ctx context.Context, opts *config.Options, cfg *config.WatchConfig) error {
	root, err := os.Getwd()
	if err != nil {
		a.logger.WithError(err).Error("Failed to get the working directory")
		return err
	}
	root, err = filepath.Abs(root)
	if err != nil {
		a.logger.WithError(err).Error("Failed to resolve the working directory")
		return err
	}

	shutdown, err := a.initTracer(opts.Trace)
	if err != nil {
		a.logger.WithError(err).Error("Failed to initialize tracing")
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			a.logger.WithError(err).Error("Failed to shutdown tracer")
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := interceptors.NewMetrics(registry)

	if opts.MetricsAddr != "" {
		go func() {
			err := interceptors.ServeMetrics(ctx, a.logger, opts.MetricsAddr, interceptors.MetricsHandler(appName, registry))
			if err != nil {
				a.logger.WithError(err).Error("Metrics server failed")
			}
		}()
	}

	queue := emitter.New(opts.QueueSize)
	watcher, err := watch.New(a.logger, queue)
	if err != nil {
		a.logger.WithError(err).Error("Failed to initialize filesystem watcher")
		return err
	}

	detector, err := detect.New(a.logger, filesystem.NewEnumerator(root, cfg))
	if err != nil {
		watcher.Close()
		a.logger.WithError(err).Error("Failed to initialize change detector")
		return err
	}

	s := supervisor.New(a.logger, cfg, root, supervisor.Components{
		Watcher:  watcher,
		Queue:    queue,
		Detector: detector,
		Compiler: compile.New(a.logger, root),
		Console:  console.New(a.stdout, a.stderr, !opts.NoColor),
		Metrics:  metrics,
	})

	err = s.Run(ctx)
	if err != nil {
		a.logger.WithError(err).Error("Watch session failed")
		return err
	}

	return nil
}

func (a *app) help(ctx context.Context, pandocPath string) string {
	var sb strings.Builder
	sb.WriteString(usageText)

	if env := config.EnvHelp(); env != "" {
		sb.WriteString("\n")
		sb.WriteString(env)
		sb.WriteString("\n")
	}

	pandocHelp, err := compile.PandocHelp(ctx, pandocPath)
	if err != nil {
		a.logger.WithError(err).Warn("Could not read pandoc options")
		return sb.String()
	}

	sb.WriteString(epilogSeparator)
	sb.WriteString("Pandoc standard options are: \n\n")
	sb.WriteString(pandocHelp)

	return sb.String()
}

// initTracer registers the trace provider. Spans are only printed when enabled, otherwise they just carry the
// ids picked up by the log hook.
func (a *app) initTracer(enabled bool) (func(context.Context) error, error) {
	var w io.Writer = io.Discard
	if enabled {
		w = a.stderr
	}

	exp, err := interceptors.NewSTDOUTExporter(w)
	if err != nil {
		return nil, err
	}

	tp, err := interceptors.RegisterTraceProvider(appName, exp)
	if err != nil {
		return nil, err
	}

	return tp.Shutdown, nil
}
