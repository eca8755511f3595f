package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-multierror"
)

type Filter interface {
	Excludes(name string) bool
}

// Entry is a watched top-level child of the working directory.
type Entry struct {
	Name    string
	ModTime time.Time
}

// Snapshot holds the watched entries of a directory at one point in time, sorted by name.
type Snapshot []Entry

// Lookup finds the entry with the given name.
func (s Snapshot) Lookup(name string) (Entry, bool) {
	for _, e := range s {
		if e.Name == name {
			return e, true
		}
	}

	return Entry{}, false
}

func (s Snapshot) Names() []string {
	names := make([]string, 0, len(s))
	for _, e := range s {
		names = append(names, e.Name)
	}
	return names
}

type Enumerator struct {
	dir    string
	filter Filter
}

func NewEnumerator(dir string, filter Filter) *Enumerator {
	return &Enumerator{
		dir:    dir,
		filter: filter,
	}
}

// Snapshot lists the immediate children of the directory, skipping the ones rejected by the filter.
// Entries that cannot be stat'd (e.g. removed in the middle of the scan) are left out; their errors are returned
// together with the partial snapshot. A nil snapshot means the directory itself could not be read.
func (e *Enumerator) Snapshot() (Snapshot, error) {
	dirEntries, err := os.ReadDir(e.dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %q: %w", e.dir, err)
	}

	var errs *multierror.Error
	snapshot := make(Snapshot, 0, len(dirEntries))
	for _, d := range dirEntries {
		name := d.Name()
		if e.filter.Excludes(name) {
			continue
		}

		// follows symlinks, a dangling one is skipped.
		info, err := os.Stat(filepath.Join(e.dir, name))
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("stat %q: %w", name, err))
			continue
		}

		snapshot = append(snapshot, Entry{
			Name:    name,
			ModTime: info.ModTime(),
		})
	}

	return snapshot, errs.ErrorOrNil()
}
