// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package logging

import (
	"io"
	"sync"
)

// swapWriter is an io.Writer that delegates to an underlying writer, which
// can be replaced while loggers are in use.
type swapWriter struct {
	mu sync.RWMutex
	w  io.Writer
}

// Write implements the io.Writer interface.
func (sw *swapWriter) Write(p []byte) (n int, err error) {
	sw.mu.RLock()
	defer sw.mu.RUnlock()
	return sw.w.Write(p)
}

func (sw *swapWriter) set(w io.Writer) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	sw.w = w
}

var output = &swapWriter{w: io.Discard}

// SetOutput sets the destination of all loggers.
func SetOutput(w io.Writer) { output.set(w) }
