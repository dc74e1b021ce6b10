package easyscreen

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// traceLog records session lifecycle events. It writes nowhere by
// default: stdout belongs to the screen, so tracing must be pointed at
// a file or buffer explicitly, or through the EASYSCREEN_TRACE
// environment variable naming a file path.
var traceLog = newTraceLog()

func newTraceLog() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.DebugLevel)

	if path := os.Getenv("EASYSCREEN_TRACE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			l.SetOutput(f)
		}
	}
	return l
}

// TraceTo redirects session tracing to w. Pass io.Discard to silence it.
func TraceTo(w io.Writer) {
	traceLog.SetOutput(w)
}

// TraceToFile redirects session tracing to a file, appending. The file
// stays open for the life of the process.
func TraceToFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	traceLog.SetOutput(f)
	return nil
}
