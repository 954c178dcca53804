// Package frame converts gdb 'info registers' dumps into binary register
// frames.
//
// A register frame is the first sixteen registers of a dump, in dump line
// order, stored as sixteen little-endian 32-bit words with no header or
// trailer. Register names are carried for diagnostics only; a word's
// position in the frame is its line position in the dump.
package frame
