// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package frame

import (
	"errors"

	"github.com/ezrec/regframe/translate"
)

var f = translate.From

var (
	// Register line errors
	ErrValueMissing = errors.New(f("register value missing"))
)

// ErrParseNumber is a register value that is not a hex or decimal number.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrParse locates a register line that could not be parsed.
type ErrParse struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrParse) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrParse) Unwrap() error {
	return err.Err
}

// ErrTruncated is a dump with fewer register lines than a frame holds.
type ErrTruncated struct {
	Lines int
}

func (err *ErrTruncated) Error() string {
	return f("truncated dump: %d register lines, %d required", err.Lines, REGISTER_COUNT)
}

// ErrFile is a failure opening, reading, writing or closing a file.
type ErrFile struct {
	Path string
	Err  error
}

func (err *ErrFile) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrFile) Unwrap() error {
	return err.Err
}

// ErrFrameSize is a binary frame of the wrong length.
type ErrFrameSize int

func (err ErrFrameSize) Error() string {
	return f("frame is %d bytes, expected %d", int(err), FRAME_SIZE)
}
