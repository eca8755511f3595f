package detect

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/pandocwatch/internal/filesystem"
)

type Enumerator interface {
	Snapshot() (filesystem.Snapshot, error)
}

// Detector holds the last acted-upon snapshot of the watched directory and decides whether a notification
// corresponds to a real change of a watched entry.
type Detector struct {
	logger     *logrus.Logger
	enumerator Enumerator

	mu       sync.Mutex
	snapshot filesystem.Snapshot
}

// New captures the initial snapshot. Entries that could not be stat'd are only logged, a directory that cannot be
// listed at all is an error.
func New(logger *logrus.Logger, enumerator Enumerator) (*Detector, error) {
	d := &Detector{
		logger:     logger,
		enumerator: enumerator,
	}

	snapshot, ok := d.take()
	if !ok {
		return nil, fmt.Errorf("could not take the initial snapshot")
	}
	d.snapshot = snapshot

	return d, nil
}

// Detect takes a fresh snapshot and looks for the first entry whose modification time moved forward compared
// to the held snapshot. On a match the held snapshot is replaced by the fresh one and the entry is returned.
// Entries missing from the held snapshot never match, so a newly created file is only picked up by the snapshot
// that follows the next detected change.
func (d *Detector) Detect() (filesystem.Entry, bool) {
	current, ok := d.take()
	if !ok {
		return filesystem.Entry{}, false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, entry := range current {
		previous, ok := d.snapshot.Lookup(entry.Name)
		if !ok {
			continue
		}

		if entry.ModTime.After(previous.ModTime) {
			d.logger.WithFields(logrus.Fields{
				"name":          entry.Name,
				"previous_time": previous.ModTime.String(),
				"current_time":  entry.ModTime.String(),
			}).Debug("Watched entry has changed")
			d.snapshot = current
			return entry, true
		}
	}

	return filesystem.Entry{}, false
}

// Snapshot returns the held snapshot.
func (d *Detector) Snapshot() filesystem.Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshot
}

func (d *Detector) take() (filesystem.Snapshot, bool) {
	snapshot, err := d.enumerator.Snapshot()
	if snapshot == nil {
		d.logger.WithError(err).Error("Failed to enumerate watched directory")
		return nil, false
	}
	if err != nil {
		d.logger.WithError(err).Warn("Some entries could not be read, skipping them")
	}

	return snapshot, true
}
