// Package errs defines the sentinel errors shared by the fbst packages.
//
// Callers should compare with errors.Is, since most of these are returned
// wrapped with additional context (position, width, payload size).
package errs

import "errors"

// Search and layout errors.
var (
	// ErrEmptyInput is returned when a buffer or sorted sequence has no elements.
	ErrEmptyInput = errors.New("fbst: empty input")
	// ErrOutOfRange is returned when an explicit length does not fit the buffer.
	ErrOutOfRange = errors.New("fbst: length out of range")
	// ErrUnsorted is returned when a builder receives a sequence that is not non-decreasing.
	ErrUnsorted = errors.New("fbst: input is not sorted")
	// ErrLayoutViolation is returned when an in-order walk of a flat buffer is not non-decreasing.
	ErrLayoutViolation = errors.New("fbst: layout invariant violated")
	// ErrDisagreement is returned when two search entry points resolve a query differently.
	ErrDisagreement = errors.New("fbst: search entry points disagree")
)

// Encoding and decoding errors.
var (
	ErrInvalidHeaderSize  = errors.New("fbst: invalid header size")
	ErrInvalidHeaderFlags = errors.New("fbst: invalid header flags")
	ErrInvalidPayloadSize = errors.New("fbst: invalid payload size")
	ErrWidthMismatch      = errors.New("fbst: value width does not match header")
	ErrChecksumMismatch   = errors.New("fbst: payload checksum mismatch")
)

// Configuration errors.
var (
	ErrInvalidWidth       = errors.New("fbst: invalid entry width")
	ErrInvalidLayout      = errors.New("fbst: invalid layout type")
	ErrInvalidCompression = errors.New("fbst: invalid compression type")
	ErrInsufficientData   = errors.New("fbst: insufficient data points")
)
