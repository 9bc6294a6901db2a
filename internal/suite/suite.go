package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Case is one named decode scenario.
type Case struct {
	Name  string `yaml:"name"`
	Input string `yaml:"input"`
	Want  string `yaml:"want"`
}

// Result pairs a case with the decoder's actual output.
type Result struct {
	Case Case
	Got  string
	Pass bool
}

// Builtin returns the known-answer scenarios shipped with the tool.
func Builtin() []Case {
	return []Case{
		{Name: "single-key", Input: "33#", Want: "E"},
		{Name: "backspace", Input: "227*#", Want: "B"},
		{Name: "hello", Input: "4433555 555666#", Want: "HELLO"},
		{Name: "turing", Input: "8 88777444666*664#", Want: "TURING"},
		{Name: "send-only", Input: "#", Want: ""},
		{Name: "wraparound", Input: "2222#", Want: "A"},
		{Name: "space-key", Input: "0#", Want: " "},
		{Name: "paused-runs", Input: "2 2#", Want: "AA"},
	}
}

// Load reads extra cases from a YAML file. Every case must carry a unique,
// non-empty name. An empty want is legal: some inputs decode to nothing.
func Load(path string) ([]Case, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cases []Case
	if err := yaml.Unmarshal(raw, &cases); err != nil {
		return nil, fmt.Errorf("parse suite %s: %w", path, err)
	}
	seen := make(map[string]bool, len(cases))
	for i, c := range cases {
		if c.Name == "" {
			return nil, fmt.Errorf("suite %s: case %d has no name", path, i)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("suite %s: duplicate case %q", path, c.Name)
		}
		seen[c.Name] = true
	}
	return cases, nil
}

// Run decodes every case in order and records whether the output matched.
func Run(decode func(string) string, cases []Case) []Result {
	results := make([]Result, len(cases))
	for i, c := range cases {
		got := decode(c.Input)
		results[i] = Result{Case: c, Got: got, Pass: got == c.Want}
	}
	return results
}
