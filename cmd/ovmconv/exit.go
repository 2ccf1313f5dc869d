// SPDX-License-Identifier: MIT
//
// File: exit.go
// Role: Process exit codes and the error type carrying them out of cobra.

package main

import (
	"errors"
	"fmt"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitUsage      = 1
	ExitReadBinary = 3
	ExitReadASCII  = 4
	ExitWriteBin   = 5
	ExitWriteASCII = 6
	ExitOpen       = 7
)

// exitError attaches an exit code to a command failure.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func withCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

func usagef(format string, args ...any) error {
	return withCode(ExitUsage, fmt.Errorf(format, args...))
}

// exitCode maps a command error to its exit code. Errors raised by cobra
// itself (unknown flags, wrong argument counts) are usage errors.
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitUsage
}
