package keypad

import "strings"

// output accumulates decoded characters and absorbs backspaces.
type output struct {
	buf []byte
}

func (o *output) append(c byte) { o.buf = append(o.buf, c) }

// backspace removes the last decoded character. On an empty buffer it is a
// no-op, not an error.
func (o *output) backspace() {
	if len(o.buf) > 0 {
		o.buf = o.buf[:len(o.buf)-1]
	}
}

func (o *output) String() string { return string(o.buf) }

// Decode interprets a sequence of keypad presses as text.
//
// The input is scanned left to right. A maximal run of one digit counts as
// repeated presses of that key and selects the character at index
// (presses-1) mod len(chars), so press counts past the end of a key's
// character set wrap back to the start. A pause splits a run in two, '*'
// deletes the last decoded character, and at most one trailing '#' is
// dropped before the scan. Any other character is skipped.
//
// Decode never fails; empty and whitespace-only input decode to "".
func Decode(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	if input[len(input)-1] == Send {
		// Only a trailing send key ends input. An embedded '#' is not a
		// terminator; it falls through to the skip branch below.
		input = input[:len(input)-1]
	}

	var out output
	for i := 0; i < len(input); {
		switch c := input[i]; {
		case c == Pause:
			i++
		case c == Backspace:
			out.backspace()
			i++
		case c >= '0' && c <= '9':
			presses := runLength(input, i)
			chars := layout[c-'0']
			out.append(chars[(presses-1)%len(chars)])
			i += presses
		default:
			i++
		}
	}
	return out.String()
}

// runLength counts how many times input[i] repeats starting at i.
func runLength(input string, i int) int {
	j := i
	for j < len(input) && input[j] == input[i] {
		j++
	}
	return j - i
}
