// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package batch

import (
	"fmt"
	"iter"
	"math"
	"path/filepath"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/regframe/internal"
)

// Config describes the working contexts of a batch.
//
// Context n is the directory Dir/<Prefix><n>, for Start <= n < Start+Count.
// Each holds an Input register dump, and receives an Output binary frame.
type Config struct {
	Dir     string // Base directory of the working contexts.
	Prefix  string // Context directory name prefix.
	Start   int    // First context index.
	Count   int    // Number of contexts.
	Input   string // Register dump filename in each context.
	Output  string // Binary frame filename in each context.
	Verbose bool   // If set, logs each decoded register.
}

// DefaultConfig returns the configuration of a gdb core dump collection.
func DefaultConfig() Config {
	return Config{
		Dir:     ".",
		Prefix:  "coredump-",
		Start:   0,
		Count:   100,
		Input:   "gdb-registers.txt",
		Output:  "registers.bin",
		Verbose: true,
	}
}

// Validate checks that the configuration describes a runnable batch.
func (cfg Config) Validate() (err error) {
	switch {
	case cfg.Count < 0:
		err = &ErrConfig{Key: "count", Err: ErrCountNegative}
	case cfg.Start < 0:
		err = &ErrConfig{Key: "start", Err: ErrStartNegative}
	case cfg.Start > math.MaxInt-cfg.Count:
		err = &ErrConfig{Key: "start", Err: ErrRangeOverflow}
	case len(cfg.Input) == 0:
		err = &ErrConfig{Key: "input", Err: ErrInputMissing}
	case len(cfg.Output) == 0:
		err = &ErrConfig{Key: "output", Err: ErrOutputMissing}
	}

	return
}

// Context returns the directory of working context index.
func (cfg Config) Context(index int) string {
	return filepath.Join(cfg.Dir, fmt.Sprintf("%s%d", cfg.Prefix, index))
}

// Contexts iterates over the index and directory of each working context.
func (cfg Config) Contexts() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for index := range internal.IterRange(cfg.Start, cfg.Count) {
			if !yield(index, cfg.Context(index)) {
				return
			}
		}
	}
}

// Load executes a Starlark configuration script, and applies its globals.
//
// The globals dir, prefix, input and output are strings, start and count
// are ints, and verbose is a bool. Globals beginning with '_' are ignored.
// The filename is used for error messages, and for reading the script if
// src is nil.
func (cfg *Config) Load(filename string, src any) (err error) {
	thread := &starlark.Thread{Name: filename}
	opts := &syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(opts, thread, filename, src, nil)
	if err != nil {
		return
	}

	// Settings are only applied once every global is valid.
	next := *cfg

	strs := map[string]*string{
		"dir":    &next.Dir,
		"prefix": &next.Prefix,
		"input":  &next.Input,
		"output": &next.Output,
	}
	ints := map[string]*int{
		"start": &next.Start,
		"count": &next.Count,
	}

	for _, key := range globals.Keys() {
		value := globals[key]

		if strings.HasPrefix(key, "_") {
			continue
		}

		if ptr, ok := strs[key]; ok {
			str, ok := starlark.AsString(value)
			if !ok {
				return &ErrConfig{Key: key, Err: ErrConfigType("string")}
			}
			*ptr = str
			continue
		}

		if ptr, ok := ints[key]; ok {
			n, ierr := starlark.AsInt32(value)
			if ierr != nil {
				return &ErrConfig{Key: key, Err: ErrConfigType("int")}
			}
			*ptr = n
			continue
		}

		if key == "verbose" {
			b, ok := value.(starlark.Bool)
			if !ok {
				return &ErrConfig{Key: key, Err: ErrConfigType("bool")}
			}
			next.Verbose = bool(b)
			continue
		}

		return &ErrConfig{Key: key, Err: ErrKeyUnknown}
	}

	*cfg = next
	return
}
