// SPDX-License-Identifier: MIT

package ovmb

import (
	"errors"
	"fmt"
)

// State is the position of a Reader in its read protocol.
type State uint8

// Reader states. Every state from StateErrorIO on is terminal.
const (
	StateInit State = iota
	StateHeaderRead
	StateReadingChunks
	StateOk
	StateErrorIO
	StateErrorInvalidFile
	StateErrorIncompatibleVersion
	StateErrorUnsupportedChunkType
	StateErrorUnsupportedChunkVersion
	StateErrorInvalidEncoding
	StateErrorInvalidTopoType
	StateErrorSpan
	StateErrorHandleRange
	StateErrorMissingData
	StateErrorTrailingData
	StateErrorEndNotReached
	StateErrorNonEmptyMesh
	StateErrorOther
)

var stateNames = [...]string{
	StateInit:                         "init",
	StateHeaderRead:                   "header read",
	StateReadingChunks:                "reading chunks",
	StateOk:                           "ok",
	StateErrorIO:                      "i/o error",
	StateErrorInvalidFile:             "invalid file",
	StateErrorIncompatibleVersion:     "incompatible version",
	StateErrorUnsupportedChunkType:    "unsupported chunk type",
	StateErrorUnsupportedChunkVersion: "unsupported chunk version",
	StateErrorInvalidEncoding:         "invalid encoding",
	StateErrorInvalidTopoType:         "invalid topology type",
	StateErrorSpan:                    "span error",
	StateErrorHandleRange:             "handle out of range",
	StateErrorMissingData:             "missing data",
	StateErrorTrailingData:            "trailing data",
	StateErrorEndNotReached:           "end chunk not reached",
	StateErrorNonEmptyMesh:            "mesh not empty",
	StateErrorOther:                   "other error",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// IsError reports whether s is one of the error states.
func (s State) IsError() bool { return s >= StateErrorIO }

// Sentinel errors, one per read error state, plus write-side failures.
var (
	ErrIO                      = errors.New("ovmb: i/o error")
	ErrInvalidFile             = errors.New("ovmb: invalid file")
	ErrIncompatibleVersion     = errors.New("ovmb: incompatible file version")
	ErrUnsupportedChunkType    = errors.New("ovmb: unsupported mandatory chunk type")
	ErrUnsupportedChunkVersion = errors.New("ovmb: unsupported mandatory chunk version")
	ErrInvalidEncoding         = errors.New("ovmb: invalid encoding")
	ErrInvalidTopoType         = errors.New("ovmb: invalid topology type")
	ErrSpan                    = errors.New("ovmb: span out of order or out of range")
	ErrHandleRange             = errors.New("ovmb: handle out of range")
	ErrMissingData             = errors.New("ovmb: missing data")
	ErrTrailingData            = errors.New("ovmb: data after end chunk")
	ErrEndNotReached           = errors.New("ovmb: end chunk not reached")
	ErrNonEmptyMesh            = errors.New("ovmb: target mesh is not empty")
	ErrOther                   = errors.New("ovmb: internal error")

	// ErrPendingDeletions indicates a write of a mesh that still holds
	// deleted entities; call CollectGarbage first.
	ErrPendingDeletions = errors.New("ovmb: mesh has pending deletions")

	// ErrDuplicateTag indicates a codec registration under a taken tag or
	// for an already registered type.
	ErrDuplicateTag = errors.New("ovmb: codec already registered")
)

var stateErrors = map[State]error{
	StateErrorIO:                      ErrIO,
	StateErrorInvalidFile:             ErrInvalidFile,
	StateErrorIncompatibleVersion:     ErrIncompatibleVersion,
	StateErrorUnsupportedChunkType:    ErrUnsupportedChunkType,
	StateErrorUnsupportedChunkVersion: ErrUnsupportedChunkVersion,
	StateErrorInvalidEncoding:         ErrInvalidEncoding,
	StateErrorInvalidTopoType:         ErrInvalidTopoType,
	StateErrorSpan:                    ErrSpan,
	StateErrorHandleRange:             ErrHandleRange,
	StateErrorMissingData:             ErrMissingData,
	StateErrorTrailingData:            ErrTrailingData,
	StateErrorEndNotReached:           ErrEndNotReached,
	StateErrorNonEmptyMesh:            ErrNonEmptyMesh,
	StateErrorOther:                   ErrOther,
}

// ReadError reports the terminal state of a failed read. It matches the
// state's sentinel and, for I/O failures, the underlying error via errors.Is.
type ReadError struct {
	State State
	Msg   string
	Err   error
}

func (e *ReadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ovmb: %s: %s: %v", e.State, e.Msg, e.Err)
	}
	return fmt.Sprintf("ovmb: %s: %s", e.State, e.Msg)
}

// Unwrap exposes the state's sentinel and the cause.
func (e *ReadError) Unwrap() []error {
	var errs []error
	if s, ok := stateErrors[e.State]; ok {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
