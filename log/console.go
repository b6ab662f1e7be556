package log

import (
	// Stdlib
	"fmt"
	"io"

	// Vendor
	"github.com/fatih/color"
)

var tagColors = map[string]*color.Color{
	tagRun:      color.New(color.FgCyan),
	tagOk:       color.New(color.FgGreen),
	tagSkip:     color.New(color.FgBlue),
	tagWarn:     color.New(color.FgYellow),
	tagFail:     color.New(color.FgRed, color.Bold),
	tagRollback: color.New(color.FgMagenta),
	tagLog:      color.New(color.FgWhite),
}

type consoleBackend struct {
	w io.Writer
}

func newConsoleBackend(w io.Writer) backend {
	return &consoleBackend{w}
}

// Write prints the message aligned after the tag, e.g.
//
//	[RUN]      Create JIRA version 1.2.0
func (b *consoleBackend) Write(tag, msg string) {
	if tag == tagNone {
		fmt.Fprintf(b.w, "%11v%v\n", "", msg)
		return
	}
	label := fmt.Sprintf("%-11v", "["+tag+"]")
	if c, ok := tagColors[tag]; ok {
		c.Fprint(b.w, label)
	} else {
		fmt.Fprint(b.w, label)
	}
	fmt.Fprintln(b.w, msg)
}

func (b *consoleBackend) Raw(msg string) {
	fmt.Fprint(b.w, msg)
}

func (b *consoleBackend) Sync() {}
