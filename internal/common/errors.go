// Package common holds the amount codec and the sentinel errors shared by
// every layer. Callers should match errors with errors.Is.
package common

import "errors"

var (
	// text errors
	ErrParse         = errors.New("parse error")
	ErrInvalidFormat = errors.New("invalid format")

	// account errors
	ErrInvalidChecksum = errors.New("invalid checksum")

	// amount errors
	ErrOverflow  = errors.New("amount overflow")
	ErrUnderflow = errors.New("amount underflow")

	// cipher errors
	ErrInvalidLength = errors.New("invalid length")
)
