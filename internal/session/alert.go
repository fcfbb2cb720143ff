package session

import (
	"fmt"
	"io"
)

// Alerter shows a blocking message to the user.
type Alerter interface {
	Alert(message string)
}

// WriterAlerter prints alerts as lines on w, for terminal front ends.
type WriterAlerter struct {
	W io.Writer
}

func (a WriterAlerter) Alert(message string) {
	_, _ = fmt.Fprintln(a.W, message)
}
