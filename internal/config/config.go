package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

const (
	// DefaultExclusions is used when neither the --exclude flag nor PANDOCWATCH_EXCLUDE is set.
	DefaultExclusions = ".pdf,.tex,doc,bin,common"
	// PandocExecutable is the name looked up on PATH and prefixed to the forwarded options.
	PandocExecutable = "pandoc"
)

var (
	ErrNoPandocOptions = errors.New("pandoc options must be provided")
)

// WatchConfig is built once at startup and never mutated afterwards.
type WatchConfig struct {
	Command            string
	ExcludedExtensions []string
	ExcludedNames      []string

	nameGlobs []glob.Glob
}

// New builds the WatchConfig from the raw exclusion list and the options forwarded to pandoc.
func New(exclusions string, pandocArgs []string) (*WatchConfig, error) {
	pandocOptions := strings.TrimSpace(strings.Join(pandocArgs, " "))
	if pandocOptions == "" {
		return nil, ErrNoPandocOptions
	}

	exts, names := ParseExclusions(exclusions)

	var globs []glob.Glob
	for name := range slices.Values(names) {
		if !hasGlobMeta(name) {
			continue
		}
		g, err := glob.Compile(name)
		if err != nil {
			// not a valid pattern; it is still matched literally.
			continue
		}
		globs = append(globs, g)
	}

	return &WatchConfig{
		Command:            fmt.Sprintf("%s %s", PandocExecutable, strings.Join(pandocArgs, " ")),
		ExcludedExtensions: exts,
		ExcludedNames:      names,
		nameGlobs:          globs,
	}, nil
}

// ParseExclusions splits a comma separated exclusion list. Tokens starting with "." are file extensions
// (lower-cased), every other token is a file or folder name. Blank tokens are dropped and duplicates are kept once.
func ParseExclusions(s string) (extensions, names []string) {
	extensions = []string{}
	names = []string{}

	for token := range strings.SplitSeq(s, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if strings.HasPrefix(token, ".") {
			token = strings.ToLower(token)
			if !slices.Contains(extensions, token) {
				extensions = append(extensions, token)
			}
			continue
		}

		if !slices.Contains(names, token) {
			names = append(names, token)
		}
	}

	return extensions, names
}

// Excludes reports whether a top-level entry with the given name is filtered out of the watch set.
func (c *WatchConfig) Excludes(name string) bool {
	lower := strings.ToLower(name)
	for ext := range slices.Values(c.ExcludedExtensions) {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}

	if slices.Contains(c.ExcludedNames, name) {
		return true
	}

	for g := range slices.Values(c.nameGlobs) {
		if g.Match(name) {
			return true
		}
	}

	return false
}

func hasGlobMeta(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}
