// Package ui prints colored status lines and a progress spinner for the
// finch CLI.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// Out is the destination for status output. Tests may swap it.
var Out io.Writer = os.Stdout

func PrintSuccess(label, detail string) {
	fmt.Fprintf(Out, "  %s✔%s %-10s %s\n", colorGreen, colorReset, label, detail)
}

func PrintError(label, detail string) {
	fmt.Fprintf(Out, "  %s✘%s %-10s %s\n", colorRed, colorReset, label, detail)
}

func PrintWarning(label, detail string) {
	fmt.Fprintf(Out, "  %s!%s %-10s %s\n", colorYellow, colorReset, label, detail)
}

// Spinner is a terminal loading indicator.
type Spinner struct {
	msg  string
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// StartSpinner starts a spinner with the given message.
func StartSpinner(msg string) *Spinner {
	s := &Spinner{
		msg:  msg,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *Spinner) run() {
	defer close(s.done)
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
	for i := 0; ; i = (i + 1) % len(spinnerFrames) {
		fmt.Fprintf(Out, "\r%s%s%s %s", colorCyan, spinnerFrames[i], colorReset, s.msg)
		select {
		case <-s.stop:
			return
		case <-tick.C:
		}
	}
}

// Stop halts the spinner and clears its line. Safe to call more than once.
func (s *Spinner) Stop() {
	s.once.Do(func() { close(s.stop) })
	<-s.done
	fmt.Fprintf(Out, "\r%s\r", strings.Repeat(" ", len(s.msg)+4))
}

// RunSpinner shows a spinner while action runs.
func RunSpinner(msg string, action func() error) error {
	s := StartSpinner(msg)
	defer s.Stop()
	return action()
}
