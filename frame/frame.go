// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package frame

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"

	"github.com/ezrec/regframe/internal"
)

const (
	REGISTER_COUNT = 16                             // Registers in a frame.
	REGISTER_SIZE  = 4                              // Bytes per register.
	FRAME_SIZE     = REGISTER_COUNT * REGISTER_SIZE // Bytes per frame.
)

// coreNames are the ARM Cortex-M core register numbers used by the
// consumers of a binary frame.
var coreNames = [REGISTER_COUNT]string{
	"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7",
	"r8", "r9", "r10", "r11", "r12", "sp", "lr", "pc",
}

// CoreName returns the core register name of a frame index.
func CoreName(index int) string {
	if index < 0 || index >= REGISTER_COUNT {
		return ""
	}
	return coreNames[index]
}

// Frame is a register frame, in dump order.
type Frame struct {
	Registers [REGISTER_COUNT]Register
}

// Parse reads a frame from the first REGISTER_COUNT lines of a dump.
// Lines after those are not read.
func Parse(r io.Reader) (frame *Frame, err error) {
	// Annotations after the value may be arbitrarily long.
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), math.MaxInt)

	fr := &Frame{}
	count := 0
	for lineno, line := range internal.IterLines(scanner) {
		var reg Register
		reg, err = ParseRegister(line, lineno)
		if err != nil {
			return
		}
		fr.Registers[count] = reg
		count++
		if count == REGISTER_COUNT {
			break
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if count < REGISTER_COUNT {
		err = &ErrTruncated{Lines: count}
		return
	}

	frame = fr
	return
}

// Values returns the register values, in frame order.
func (fr *Frame) Values() (values [REGISTER_COUNT]uint32) {
	for n, reg := range fr.Registers {
		values[n] = reg.Value
	}
	return
}

// MarshalBinary encodes the frame as REGISTER_COUNT little-endian words.
func (fr *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 0, FRAME_SIZE)
	for _, reg := range fr.Registers {
		data = binary.LittleEndian.AppendUint32(data, reg.Value)
	}
	return
}

// UnmarshalBinary decodes a binary frame. Registers are named by their
// core register number.
func (fr *Frame) UnmarshalBinary(data []byte) (err error) {
	if len(data) != FRAME_SIZE {
		err = ErrFrameSize(len(data))
		return
	}

	for n := range REGISTER_COUNT {
		word := data[n*REGISTER_SIZE : (n+1)*REGISTER_SIZE]
		fr.Registers[n] = Register{
			Name:  coreNames[n],
			Value: binary.LittleEndian.Uint32(word),
		}
	}

	return
}

// WriteTo writes the binary frame to w.
func (fr *Frame) WriteTo(w io.Writer) (n int64, err error) {
	data, err := fr.MarshalBinary()
	if err != nil {
		return
	}

	written, err := w.Write(data)
	n = int64(written)
	return
}

var _ io.WriterTo = (*Frame)(nil)
