package keypad

// Special keys understood by Decode.
const (
	Pause     = ' '
	Backspace = '*'
	Send      = '#'
)

// layout maps each digit key to the ordered characters it cycles through.
// The index is the digit value; every entry is non-empty.
var layout = [10]string{
	" ",    // 0
	"&'(",  // 1
	"ABC",  // 2
	"DEF",  // 3
	"GHI",  // 4
	"JKL",  // 5
	"MNO",  // 6
	"PQRS", // 7
	"TUV",  // 8
	"WXYZ", // 9
}

// Key is one row of the keypad layout.
type Key struct {
	Digit byte
	Chars string
}

// Keys returns the keypad layout in digit order, copied so that callers
// displaying it cannot reach the table Decode reads from.
func Keys() []Key {
	keys := make([]Key, len(layout))
	for d, chars := range layout {
		keys[d] = Key{Digit: byte('0' + d), Chars: chars}
	}
	return keys
}
