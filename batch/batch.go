// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package batch converts the register dumps of a numbered series of working
// contexts, one context at a time.
package batch

import (
	"log"
	"path/filepath"

	"github.com/ezrec/regframe/frame"
)

// Run converts the register dump of every working context in cfg.
//
// Contexts are converted in index order. The first failure aborts the
// batch; contexts converted before it keep their output. Returns the number
// of contexts converted.
func Run(cfg Config) (converted int, err error) {
	err = cfg.Validate()
	if err != nil {
		return
	}

	cv := &frame.Converter{Verbose: cfg.Verbose}

	for index, dir := range cfg.Contexts() {
		if cfg.Verbose {
			log.Print(f("%v:", dir))
		}

		input := filepath.Join(dir, cfg.Input)
		output := filepath.Join(dir, cfg.Output)
		_, err = cv.Convert(input, output)
		if err != nil {
			err = &ErrContext{Index: index, Dir: dir, Err: err}
			return
		}

		converted++
	}

	return
}
