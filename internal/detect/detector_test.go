package detect_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedisam/pandocwatch/internal/config"
	"github.com/hedisam/pandocwatch/internal/detect"
	"github.com/hedisam/pandocwatch/internal/detect/mocks"
	"github.com/hedisam/pandocwatch/internal/filesystem"
)

//go:generate moq -out mocks/enumerator.go -pkg mocks -skip-ensure . Enumerator

func at(sec int64) time.Time {
	return time.Unix(sec, 0)
}

func TestDetect(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		initial          filesystem.Snapshot
		next             filesystem.Snapshot
		nextErr          error
		expectedChange   string
		expectedDetected bool
		expectedHeld     filesystem.Snapshot
	}{
		"no change": {
			initial:      filesystem.Snapshot{{Name: "a.md", ModTime: at(100)}},
			next:         filesystem.Snapshot{{Name: "a.md", ModTime: at(100)}},
			expectedHeld: filesystem.Snapshot{{Name: "a.md", ModTime: at(100)}},
		},
		"single entry advanced": {
			initial:          filesystem.Snapshot{{Name: "a.md", ModTime: at(100)}},
			next:             filesystem.Snapshot{{Name: "a.md", ModTime: at(200)}},
			expectedChange:   "a.md",
			expectedDetected: true,
			expectedHeld:     filesystem.Snapshot{{Name: "a.md", ModTime: at(200)}},
		},
		"time going backwards is not a change": {
			initial:      filesystem.Snapshot{{Name: "a.md", ModTime: at(200)}},
			next:         filesystem.Snapshot{{Name: "a.md", ModTime: at(100)}},
			expectedHeld: filesystem.Snapshot{{Name: "a.md", ModTime: at(200)}},
		},
		"first advanced entry in scan order wins": {
			initial: filesystem.Snapshot{
				{Name: "a.md", ModTime: at(100)},
				{Name: "b.md", ModTime: at(100)},
				{Name: "c.md", ModTime: at(100)},
			},
			next: filesystem.Snapshot{
				{Name: "a.md", ModTime: at(100)},
				{Name: "b.md", ModTime: at(300)},
				{Name: "c.md", ModTime: at(200)},
			},
			expectedChange:   "b.md",
			expectedDetected: true,
			expectedHeld: filesystem.Snapshot{
				{Name: "a.md", ModTime: at(100)},
				{Name: "b.md", ModTime: at(300)},
				{Name: "c.md", ModTime: at(200)},
			},
		},
		"order of the held snapshot does not matter": {
			initial: filesystem.Snapshot{
				{Name: "b.md", ModTime: at(100)},
				{Name: "a.md", ModTime: at(100)},
			},
			next: filesystem.Snapshot{
				{Name: "a.md", ModTime: at(150)},
				{Name: "b.md", ModTime: at(100)},
			},
			expectedChange:   "a.md",
			expectedDetected: true,
			expectedHeld: filesystem.Snapshot{
				{Name: "a.md", ModTime: at(150)},
				{Name: "b.md", ModTime: at(100)},
			},
		},
		"new entry is not a change": {
			initial: filesystem.Snapshot{{Name: "a.md", ModTime: at(100)}},
			next: filesystem.Snapshot{
				{Name: "a.md", ModTime: at(100)},
				{Name: "new.md", ModTime: at(500)},
			},
			expectedHeld: filesystem.Snapshot{{Name: "a.md", ModTime: at(100)}},
		},
		"removed entry is not a change": {
			initial: filesystem.Snapshot{
				{Name: "a.md", ModTime: at(100)},
				{Name: "b.md", ModTime: at(100)},
			},
			next: filesystem.Snapshot{{Name: "a.md", ModTime: at(100)}},
			expectedHeld: filesystem.Snapshot{
				{Name: "a.md", ModTime: at(100)},
				{Name: "b.md", ModTime: at(100)},
			},
		},
		"partial snapshot still detects": {
			initial: filesystem.Snapshot{
				{Name: "a.md", ModTime: at(100)},
				{Name: "b.md", ModTime: at(100)},
			},
			next:             filesystem.Snapshot{{Name: "a.md", ModTime: at(200)}},
			nextErr:          errors.New("stat \"b.md\": no such file or directory"),
			expectedChange:   "a.md",
			expectedDetected: true,
			expectedHeld:     filesystem.Snapshot{{Name: "a.md", ModTime: at(200)}},
		},
		"unreadable directory keeps the held snapshot": {
			initial:      filesystem.Snapshot{{Name: "a.md", ModTime: at(100)}},
			next:         nil,
			nextErr:      errors.New("permission denied"),
			expectedHeld: filesystem.Snapshot{{Name: "a.md", ModTime: at(100)}},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			calls := 0
			enumeratorMock := &mocks.EnumeratorMock{
				SnapshotFunc: func() (filesystem.Snapshot, error) {
					calls++
					if calls == 1 {
						return tc.initial, nil
					}
					return tc.next, tc.nextErr
				},
			}

			d, err := detect.New(logrus.New(), enumeratorMock)
			require.NoError(t, err)

			entry, detected := d.Detect()
			assert.Equal(t, tc.expectedDetected, detected)
			assert.Equal(t, tc.expectedChange, entry.Name)
			assert.Equal(t, tc.expectedHeld, d.Snapshot())
			assert.Len(t, enumeratorMock.SnapshotCalls(), 2)
		})
	}
}

func TestNewFailsWithoutInitialSnapshot(t *testing.T) {
	t.Parallel()

	enumeratorMock := &mocks.EnumeratorMock{
		SnapshotFunc: func() (filesystem.Snapshot, error) {
			return nil, os.ErrNotExist
		},
	}

	d, err := detect.New(logrus.New(), enumeratorMock)
	require.Error(t, err)
	assert.Nil(t, d)
}

// TestDetectOnDirectory follows a document directory through a sequence of touches with real files.
func TestDetectOnDirectory(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	touch := func(name string, sec int64) {
		t.Helper()
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			require.NoError(t, os.WriteFile(path, []byte(name), 0644))
		}
		require.NoError(t, os.Chtimes(path, at(sec), at(sec)))
	}

	touch("a.md", 100)
	touch("b.pdf", 100)
	require.NoError(t, os.Mkdir(filepath.Join(root, "build"), 0755))
	require.NoError(t, os.Chtimes(filepath.Join(root, "build"), at(100), at(100)))

	cfg, err := config.New(".pdf,build", []string{"a.md", "-o", "a.pdf"})
	require.NoError(t, err)

	d, err := detect.New(logrus.New(), filesystem.NewEnumerator(root, cfg))
	require.NoError(t, err)
	assertHeld(t, d, filesystem.Snapshot{{Name: "a.md", ModTime: at(100)}})

	touch("a.md", 200)
	entry, detected := d.Detect()
	require.True(t, detected)
	assert.Equal(t, "a.md", entry.Name)
	assertHeld(t, d, filesystem.Snapshot{{Name: "a.md", ModTime: at(200)}})

	touch("b.pdf", 300)
	_, detected = d.Detect()
	assert.False(t, detected, "excluded entry must not trigger")

	require.NoError(t, os.Chtimes(filepath.Join(root, "build"), at(300), at(300)))
	_, detected = d.Detect()
	assert.False(t, detected, "excluded folder must not trigger")

	touch("c.md", 400)
	_, detected = d.Detect()
	assert.False(t, detected, "new file is not known to the held snapshot")

	touch("a.md", 500)
	entry, detected = d.Detect()
	require.True(t, detected)
	assert.Equal(t, "a.md", entry.Name)
	assertHeld(t, d, filesystem.Snapshot{
		{Name: "a.md", ModTime: at(500)},
		{Name: "c.md", ModTime: at(400)},
	})

	touch("c.md", 600)
	entry, detected = d.Detect()
	require.True(t, detected)
	assert.Equal(t, "c.md", entry.Name)
}

func assertHeld(t *testing.T, d *detect.Detector, expected filesystem.Snapshot) {
	t.Helper()

	held := d.Snapshot()
	require.Len(t, held, len(expected))
	for i := range expected {
		assert.Equal(t, expected[i].Name, held[i].Name)
		assert.True(t, expected[i].ModTime.Equal(held[i].ModTime), "mod time of %q", expected[i].Name)
	}
}
