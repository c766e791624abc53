package screendown

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

// logger writes "[screendown]" prefixed lines to stderr. Debug lines are only
// written while debug mode is on. Safe to use from timer goroutines.
type logger struct {
	debug atomic.Bool
	out   io.Writer
}

func (l *logger) writer() io.Writer {
	if l.out != nil {
		return l.out
	}
	return os.Stderr
}

// debugf logs only in debug mode.
func (l *logger) debugf(format string, args ...any) {
	if !l.debug.Load() {
		return
	}
	_, _ = fmt.Fprintf(l.writer(), "[screendown] "+format+"\n", args...)
}

// warnf always logs.
func (l *logger) warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(l.writer(), "[screendown] warning: "+format+"\n", args...)
}
