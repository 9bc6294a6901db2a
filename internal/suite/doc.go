// Package suite is the self-check harness for the keypad codec: a built-in
// set of known decode scenarios, optional extra cases loaded from a YAML
// file, and a runner reporting per-case pass/fail.
package suite
