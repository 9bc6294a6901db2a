// Package keypad implements positional multi-tap text entry for the classic
// phone keypad.
//
// Pressing a digit N times in a row selects the N-th character assigned to
// that key, wrapping around when N exceeds the key's character count. A
// space is a pause that splits two presses of the same digit into separate
// characters, '*' deletes the last decoded character, and a single trailing
// '#' marks end of input.
//
// Decode is total: every input yields a string and unrecognised characters
// are skipped. Encode is the inverse for text drawn from the keypad's
// character set.
//
// Concurrency: the keypad table is fixed at compile time and never written,
// so Decode and Encode are safe to call from any number of goroutines.
package keypad
