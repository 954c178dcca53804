package internal

import (
	"bufio"
	"iter"
)

// IterLines yields the 1-based line number and text of each scanned line.
// The caller checks scanner.Err() once iteration ends.
func IterLines(scanner *bufio.Scanner) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		lineno := 0
		for scanner.Scan() {
			lineno++
			if !yield(lineno, scanner.Text()) {
				return // Stop if the consumer stops
			}
		}
	}
}

// IterRange yields count consecutive integers beginning with start.
func IterRange(start, count int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := range count {
			if !yield(start + n) {
				return
			}
		}
	}
}
