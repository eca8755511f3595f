package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Options holds the process-wide settings read from the environment. The --exclude flag takes precedence over
// PANDOCWATCH_EXCLUDE.
type Options struct {
	Exclude     string `env:"PANDOCWATCH_EXCLUDE" env-default:".pdf,.tex,doc,bin,common" env-description:"Comma separated extensions (.pdf) or file and folder names to exclude from watching"`
	Verbose     bool   `env:"PANDOCWATCH_VERBOSE" env-description:"Enable debug logging"`
	NoColor     bool   `env:"PANDOCWATCH_NO_COLOR" env-description:"Disable coloured status output"`
	QueueSize   int    `env:"PANDOCWATCH_QUEUE_SIZE" env-default:"64" env-description:"Number of filesystem notifications buffered while a recompilation runs"`
	MetricsAddr string `env:"PANDOCWATCH_METRICS_ADDR" env-description:"Address to serve Prometheus metrics on (disabled when empty)"`
	Trace       bool   `env:"PANDOCWATCH_TRACE" env-description:"Print a trace span for every recompilation to stderr"`
}

func LoadOptions() (*Options, error) {
	var opts Options
	err := cleanenv.ReadEnv(&opts)
	if err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	if opts.QueueSize < 1 {
		opts.QueueSize = 1
	}

	return &opts, nil
}

// Apply overrides the environment options with the flags given on the command line.
func (o *Options) Apply(args *Args) {
	if args.Exclude != nil {
		o.Exclude = *args.Exclude
	}
}

// EnvHelp renders the environment variables understood by pandocwatch.
func EnvHelp() string {
	var opts Options
	desc, err := cleanenv.GetDescription(&opts, nil)
	if err != nil {
		return ""
	}

	return desc
}
