package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingValue = errors.New("flag needs an argument")
)

// Args is the raw command line split into the flags pandocwatch understands and everything else,
// which is forwarded to pandoc untouched.
type Args struct {
	// Exclude is nil when no exclusion flag was given.
	Exclude    *string
	Help       bool
	PandocArgs []string
}

// ParseArgs extracts -e/--exclude and -h/--help from args. Unknown flags and positional arguments are kept in
// order in PandocArgs, and everything after a literal "--" is forwarded as is.
func ParseArgs(args []string) (*Args, error) {
	parsed := &Args{
		PandocArgs: []string{},
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--":
			parsed.PandocArgs = append(parsed.PandocArgs, args[i+1:]...)
			return parsed, nil
		case arg == "-h" || arg == "--help":
			parsed.Help = true
		case arg == "-e" || arg == "--exclude":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%s: %w", arg, ErrMissingValue)
			}
			i++
			parsed.Exclude = &args[i]
		case strings.HasPrefix(arg, "--exclude="):
			value := strings.TrimPrefix(arg, "--exclude=")
			parsed.Exclude = &value
		case strings.HasPrefix(arg, "-e") && !strings.HasPrefix(arg, "--"):
			value := strings.TrimPrefix(arg, "-e")
			parsed.Exclude = &value
		default:
			parsed.PandocArgs = append(parsed.PandocArgs, arg)
		}
	}

	return parsed, nil
}
