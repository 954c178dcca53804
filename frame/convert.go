// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package frame

import (
	"errors"
	"log"
	"os"
)

// Converter turns register dump files into binary frame files.
type Converter struct {
	Verbose bool // If set, logs each decoded register.
}

// Convert parses the dump at input, and writes its binary frame to output.
//
// The output file is only created once the whole frame has been parsed, so
// a malformed dump never leaves a partial output behind. An existing output
// file is overwritten.
func (cv *Converter) Convert(input, output string) (frame *Frame, err error) {
	inf, err := os.Open(input)
	if err != nil {
		err = &ErrFile{Path: input, Err: err}
		return
	}
	defer inf.Close()

	fr, err := Parse(inf)
	if err != nil {
		var perr *ErrParse
		var terr *ErrTruncated
		if !errors.As(err, &perr) && !errors.As(err, &terr) {
			err = &ErrFile{Path: input, Err: err}
		}
		return
	}

	if cv.Verbose {
		for n, reg := range fr.Registers {
			log.Print(f("register %d: %d", n, reg.Value))
		}
	}

	ouf, err := os.Create(output)
	if err != nil {
		err = &ErrFile{Path: output, Err: err}
		return
	}
	defer func() {
		cerr := ouf.Close()
		if err == nil && cerr != nil {
			err = &ErrFile{Path: output, Err: cerr}
		}
	}()

	_, err = fr.WriteTo(ouf)
	if err != nil {
		err = &ErrFile{Path: output, Err: err}
		return
	}

	frame = fr
	return
}

// Convert converts the dump at input into a binary frame at output, logging
// each decoded register.
func Convert(input, output string) (err error) {
	cv := &Converter{Verbose: true}
	_, err = cv.Convert(input, output)
	return
}
