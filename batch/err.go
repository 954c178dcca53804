package batch

import (
	"errors"

	"github.com/ezrec/regframe/translate"
)

var f = translate.From

var (
	// Configuration errors
	ErrCountNegative = errors.New(f("count is negative"))
	ErrStartNegative = errors.New(f("start is negative"))
	ErrRangeOverflow = errors.New(f("start + count overflows"))
	ErrInputMissing  = errors.New(f("input filename missing"))
	ErrOutputMissing = errors.New(f("output filename missing"))
	ErrKeyUnknown    = errors.New(f("unknown setting"))
)

// ErrConfigType is a configuration setting of the wrong Starlark type.
type ErrConfigType string

func (err ErrConfigType) Error() string {
	return f("expected %v", string(err))
}

// ErrConfig locates an invalid configuration setting.
type ErrConfig struct {
	Key string
	Err error
}

func (err *ErrConfig) Error() string {
	return f("config %v: %v", err.Key, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}

// ErrContext locates the working context that aborted a batch.
type ErrContext struct {
	Index int
	Dir   string
	Err   error
}

func (err *ErrContext) Error() string {
	return f("context %d (%v): %v", err.Index, err.Dir, err.Err)
}

func (err *ErrContext) Unwrap() error {
	return err.Err
}
