// Package commands defines the keytap CLI.
//
// Commands
//
//   - decode  Decode key presses into text
//   - encode  Encode text into key presses
//   - keys    Show the keypad layout and special keys
//   - check   Run the self-check scenarios
//   - repl    Decode key presses interactively
//
// # Implementation
//
// The root command owns the persistent --verbose flag and builds the zap
// logger before any subcommand runs. Subcommands read from and write to the
// command's streams so tests can substitute buffers.
package commands
