// Package logging builds the logrus logger shared by the CLI commands.
// Diagnostics go to stderr so stdout carries only program output.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a text logger writing to w. Verbose enables debug output;
// otherwise only warnings and errors are emitted.
func New(w io.Writer, verbose bool) *logrus.Logger {
	l := logrus.New()
	l.Out = w
	l.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	l.Level = logrus.WarnLevel
	if verbose {
		l.Level = logrus.DebugLevel
	}
	return l
}
