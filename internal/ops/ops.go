package ops

import (
	"time"
)

type Op string

const (
	OpCreated  Op = "op_created"
	OpRemoved  Op = "op_removed"
	OpModified Op = "op_modified"
	OpRenamed  Op = "op_renamed"
	OpChmod    Op = "op_chmod"
)

// FileOp is a single raw notification delivered by the filesystem watcher.
type FileOp struct {
	Path      string    `json:"path"`
	Op        Op        `json:"op"`
	Timestamp time.Time `json:"timestamp"`
}
