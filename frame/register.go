// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package frame

import (
	"strconv"
	"strings"
)

// Register is one line of a register dump.
type Register struct {
	LineNo int    // Line number in the dump, 1-based. Zero if not from a dump.
	Name   string // Register name, for diagnostics only.
	Raw    string // Value as written in the dump.
	Value  uint32 // Decoded value, truncated to 32 bits.
}

// ParseValue decodes a register value.
//
// A 0x or 0X prefix selects hexadecimal, anything else is decimal. Leading
// zeros do not select octal. A leading sign is accepted, and the result is
// the low 32 bits of the two's complement value.
func ParseValue(raw string) (value uint32, err error) {
	word := raw
	negative := false
	if len(word) > 0 && (word[0] == '-' || word[0] == '+') {
		negative = word[0] == '-'
		word = word[1:]
	}

	base := 10
	if len(word) > 2 && word[0] == '0' && (word[1] == 'x' || word[1] == 'X') {
		base = 16
		word = word[2:]
	}

	v64, err := strconv.ParseUint(word, base, 64)
	if err != nil {
		err = ErrParseNumber(raw)
		return
	}

	if negative {
		v64 = -v64
	}

	value = uint32(v64)
	return
}

// ParseRegister parses a '<name> <value> [...]' dump line.
func ParseRegister(line string, lineno int) (reg Register, err error) {
	words := strings.Fields(line)
	if len(words) < 2 {
		err = &ErrParse{LineNo: lineno, Line: line, Err: ErrValueMissing}
		return
	}

	value, err := ParseValue(words[1])
	if err != nil {
		err = &ErrParse{LineNo: lineno, Line: line, Err: err}
		return
	}

	reg = Register{
		LineNo: lineno,
		Name:   words[0],
		Raw:    words[1],
		Value:  value,
	}

	return
}
