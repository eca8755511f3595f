package compile

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// LookPandoc returns the path of the pandoc executable found on PATH.
func LookPandoc(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s executable must be in the path: %w", name, err)
	}

	return path, nil
}

// PandocHelp returns the option listing printed by `pandoc --help`, without its leading usage line.
func PandocHelp(ctx context.Context, path string) (string, error) {
	out, err := exec.CommandContext(ctx, path, "--help").Output()
	if err != nil {
		return "", fmt.Errorf("run %s --help: %w", path, err)
	}

	_, options, found := strings.Cut(string(out), "\n")
	if !found {
		return "", nil
	}

	return options, nil
}
