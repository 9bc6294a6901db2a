package keypad

import "strings"

// Encode maps text to the key presses that decode back to it.
//
// Each character becomes the shortest run of its digit. A pause is inserted
// only between two runs of the same digit, and the result ends with the
// send key. Input is uppercased first; characters outside the keypad's
// character set are skipped, mirroring Decode's tolerance.
//
// For any s drawn from the keypad character set, Decode(Encode(s)) == s.
func Encode(text string) string {
	var b strings.Builder
	var last byte
	for _, r := range strings.ToUpper(text) {
		if r > 'Z' {
			continue
		}
		digit, presses, ok := pressesFor(byte(r))
		if !ok {
			continue
		}
		if digit == last {
			b.WriteByte(Pause)
		}
		for n := 0; n < presses; n++ {
			b.WriteByte(digit)
		}
		last = digit
	}
	b.WriteByte(Send)
	return b.String()
}

// pressesFor locates ch on the keypad: the digit key carrying it and the
// number of presses that select it.
func pressesFor(ch byte) (digit byte, presses int, ok bool) {
	for d, chars := range layout {
		if k := strings.IndexByte(chars, ch); k >= 0 {
			return byte('0' + d), k + 1, true
		}
	}
	return 0, 0, false
}
