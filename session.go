package easyscreen

import "fmt"

// PanicError reports a panic captured by WithScreen after the terminal
// was restored. Message holds the text when the panic value was
// text-shaped: a string, an error, or a fmt.Stringer. HasMessage
// distinguishes a genuinely empty message from an unreadable payload,
// and Value retains the original payload either way.
type PanicError struct {
	Message    string
	HasMessage bool
	Value      any
}

func (e *PanicError) Error() string {
	if e.HasMessage {
		return "panic during screen session: " + e.Message
	}
	return "panic during screen session (no message available)"
}

func newPanicError(v any) *PanicError {
	switch m := v.(type) {
	case string:
		return &PanicError{Message: m, HasMessage: true, Value: v}
	case error:
		return &PanicError{Message: m.Error(), HasMessage: true, Value: v}
	case fmt.Stringer:
		return &PanicError{Message: m.String(), HasMessage: true, Value: v}
	}
	return &PanicError{Value: v}
}

// WithScreen runs fn inside a scoped session on the tcell provider.
// The terminal is restored before WithScreen returns on every path:
// fn returning normally, or fn panicking, in which case the panic is
// captured and reported as a *PanicError instead of unwinding further.
// Restoration runs first either way, so the report lands on a sane
// terminal.
func WithScreen[R any](fn func(*Screen) R) (R, error) {
	return WithScreenBackend(newTcellBackend(), fn)
}

// WithScreenBackend is WithScreen on a caller-supplied provider
func WithScreenBackend[R any](b Backend, fn func(*Screen) R) (result R, err error) {
	s, err := OpenBackend(b)
	if err != nil {
		return result, err
	}

	defer func() {
		// Teardown precedes panic capture: the session must be gone
		// before anyone looks at the report
		s.Close()
		if r := recover(); r != nil {
			perr := newPanicError(r)
			traceLog.WithField("message", perr.Message).Warn("panic captured in screen session")
			err = perr
		}
	}()

	result = fn(s)
	return result, nil
}
