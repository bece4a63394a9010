// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	sysclip "github.com/atotto/clipboard"
)

// ErrUnsupported is reported by Write when the system has no usable
// clipboard.
var ErrUnsupported = errors.New("clipboard is not supported on this system")

// Hooks for testing.
var (
	writeAll    = sysclip.WriteAll
	unsupported = func() bool { return sysclip.Unsupported }
)

// Write copies text to the system clipboard.
func Write(text string) error {
	if unsupported() {
		return ErrUnsupported
	}
	if err := writeAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
