package easyscreen

import "github.com/pkg/errors"

// ErrScreenActive reports that this process already has a screen
// session. The conflicting Open touched no terminal state; close the
// active session and open again.
var ErrScreenActive = errors.New("easyscreen: a screen session is already active")
