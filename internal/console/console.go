// Package console prints the human readable status lines of the watcher.
package console

import (
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

const (
	timestampLayout = "2006/01/02 15:04:05"
)

type Console struct {
	out    io.Writer
	errOut io.Writer
	now    func() time.Time

	info    *color.Color
	notice  *color.Color
	success *color.Color
	failure *color.Color
}

// New creates a Console. When colorize is false no escape sequences are written; when true, colours still
// follow fatih/color's terminal detection.
func New(out, errOut io.Writer, colorize bool) *Console {
	c := &Console{
		out:     out,
		errOut:  errOut,
		now:     time.Now,
		info:    color.New(color.FgCyan),
		notice:  color.New(color.FgYellow),
		success: color.New(color.FgGreen, color.Bold),
		failure: color.New(color.FgRed, color.Bold),
	}

	if !colorize {
		for _, col := range []*color.Color{c.info, c.notice, c.success, c.failure} {
			col.DisableColor()
		}
	}

	return c
}

// WithClock replaces the clock used for timestamps.
func (c *Console) WithClock(now func() time.Time) *Console {
	c.now = now
	return c
}

func (c *Console) Starting(dir string) {
	c.info.Fprintf(c.out, "Starting pandoc watcher in %s ...\n", dir)
}

func (c *Console) Changed(name string) {
	c.notice.Fprintf(c.out, "File %s has changed. Recompiling.\n", name)
}

func (c *Console) Updating() {
	c.info.Fprintf(c.errOut, "Updating the output at %s\n", c.now().Format(timestampLayout))
}

func (c *Console) Executing(command string) {
	c.info.Fprintf(c.out, "executing command : %s\n", command)
}

func (c *Console) Succeeded() {
	c.success.Fprintln(c.out, "No error found")
}

func (c *Console) Failed(output string) {
	c.failure.Fprintln(c.out, "Error:")
	if output = strings.TrimRight(output, "\n"); output != "" {
		c.failure.Fprintln(c.out, output)
	}
}

func (c *Console) Done() {
	c.info.Fprintln(c.out, "Recompilation done")
}

func (c *Console) Stopping() {
	c.info.Fprintln(c.out, "Stopping pandoc watcher ...")
}

// Usage writes a usage error followed by the help text.
func (c *Console) Usage(err error, help string) {
	c.failure.Fprintf(c.errOut, "%v!\n\n", err)
	c.info.Fprint(c.errOut, help)
}
