package config_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedisam/pandocwatch/internal/config"
)

func TestParseExclusions(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		input         string
		expectedExts  []string
		expectedNames []string
	}{
		"default": {
			input:         config.DefaultExclusions,
			expectedExts:  []string{".pdf", ".tex"},
			expectedNames: []string{"doc", "bin", "common"},
		},
		"empty": {
			input:         "",
			expectedExts:  []string{},
			expectedNames: []string{},
		},
		"extensions are lower-cased": {
			input:         ".PDF,.Html",
			expectedExts:  []string{".pdf", ".html"},
			expectedNames: []string{},
		},
		"blank tokens and spaces": {
			input:         " .pdf , ,build,",
			expectedExts:  []string{".pdf"},
			expectedNames: []string{"build"},
		},
		"duplicates kept once": {
			input:         "build,.pdf,build,.pdf",
			expectedExts:  []string{".pdf"},
			expectedNames: []string{"build"},
		},
		"dot in the middle is a name": {
			input:         "notes.md",
			expectedExts:  []string{},
			expectedNames: []string{"notes.md"},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			exts, names := config.ParseExclusions(tc.input)
			assert.Equal(t, tc.expectedExts, exts)
			assert.Equal(t, tc.expectedNames, names)
		})
	}
}

func TestParseExclusionsPartition(t *testing.T) {
	t.Parallel()

	inputs := []string{
		config.DefaultExclusions,
		".md,.pdf,build,out,.tex,figures",
		"a,b,c",
		".a,.b,.c",
	}

	for _, input := range inputs {
		exts, names := config.ParseExclusions(input)

		for ext := range slices.Values(exts) {
			assert.True(t, strings.HasPrefix(ext, "."), "extension %q must start with a dot", ext)
			assert.NotContains(t, names, ext)
		}
		for name := range slices.Values(names) {
			assert.False(t, strings.HasPrefix(name, "."), "name %q must not start with a dot", name)
		}

		original := strings.Split(input, ",")
		reconstructed := append(slices.Clone(exts), names...)
		assert.ElementsMatch(t, original, reconstructed)
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		exclusions      string
		pandocArgs      []string
		expectedCommand string
		expectedErr     error
	}{
		"no pandoc options": {
			exclusions:  config.DefaultExclusions,
			pandocArgs:  nil,
			expectedErr: config.ErrNoPandocOptions,
		},
		"blank pandoc options": {
			exclusions:  config.DefaultExclusions,
			pandocArgs:  []string{"", " "},
			expectedErr: config.ErrNoPandocOptions,
		},
		"options joined by single spaces": {
			exclusions:      config.DefaultExclusions,
			pandocArgs:      []string{"notes.md", "-o", "notes.pdf", "--toc"},
			expectedCommand: "pandoc notes.md -o notes.pdf --toc",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg, err := config.New(tc.exclusions, tc.pandocArgs)
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedCommand, cfg.Command)
		})
	}
}

func TestExcludes(t *testing.T) {
	t.Parallel()

	cfg, err := config.New(".pdf,.tar.gz,build,draft-*,[oops", []string{"a.md"})
	require.NoError(t, err)

	cases := map[string]bool{
		"a.md":           false,
		"b.pdf":          true,
		"B.PDF":          true,
		"pdf":            false,
		"archive.tar.gz": true,
		"build":          true,
		"builds":         false,
		"draft-1.md":     true,
		"final.md":       false,
		"[oops":          true,
	}

	for name, excluded := range cases {
		assert.Equal(t, excluded, cfg.Excludes(name), "name %q", name)
	}
}
