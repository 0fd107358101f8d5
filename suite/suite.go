// Package suite runs grammars described in YAML against expected verdicts.
//
// A suite file looks like:
//
//	name: alternation
//	root: 0
//	rules: |
//	  0: 1 | 2
//	  1: "a"
//	  2: "b"
//	cases:
//	  - message: a
//	    match: true
//	  - message: c
//	    match: false
package suite

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alecthomas/rulematch"
)

// Suite is a grammar and a set of messages with their expected verdicts.
type Suite struct {
	Name       string `yaml:"name"`
	Root       int    `yaml:"root"`
	Exhaustive bool   `yaml:"exhaustive"`
	Rules      string `yaml:"rules"`
	Cases      []Case `yaml:"cases"`

	filename string
}

// Case is a single message and whether it is expected to match.
type Case struct {
	Message string `yaml:"message"`
	Match   bool   `yaml:"match"`
}

// Failure is a case whose verdict differed from the expectation.
type Failure struct {
	Case
	Got bool
}

func (f Failure) String() string {
	return fmt.Sprintf("%q: expected match=%v, got %v", f.Message, f.Match, f.Got)
}

// Report summarises a suite run.
type Report struct {
	Name     string
	Passed   int
	Failures []Failure
}

// OK returns true if every case passed.
func (r *Report) OK() bool {
	return len(r.Failures) == 0
}

// Load a Suite from YAML.
func Load(filename string, r io.Reader) (*Suite, error) {
	s := &Suite{filename: filename}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if s.Name == "" {
		s.Name = filename
	}
	return s, nil
}

// LoadFile loads a Suite from a YAML file.
func LoadFile(path string) (*Suite, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return Load(path, r)
}

// Validator builds a Validator for the suite's grammar.
func (s *Suite) Validator(options ...rulematch.Option) (*rulematch.Validator, error) {
	defs, err := rulematch.ParseDefinitionsString(s.filename, s.Rules)
	if err != nil {
		return nil, err
	}
	table, err := rulematch.BuildTable(defs)
	if err != nil {
		return nil, err
	}
	if s.Exhaustive {
		options = append(append([]rulematch.Option{}, options...), rulematch.Exhaustive())
	}
	return rulematch.New(table, rulematch.RuleID(s.Root), options...)
}

// Run every case of the suite.
//
// Errors are returned only for a broken grammar; mismatched verdicts are
// reported as failures.
func (s *Suite) Run(options ...rulematch.Option) (*Report, error) {
	v, err := s.Validator(options...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name, err)
	}
	report := &Report{Name: s.Name}
	for _, c := range s.Cases {
		ok, err := v.MatchesFully(c.Message)
		if err != nil {
			return nil, fmt.Errorf("%s: %q: %w", s.Name, c.Message, err)
		}
		if ok != c.Match {
			report.Failures = append(report.Failures, Failure{Case: c, Got: ok})
			continue
		}
		report.Passed++
	}
	return report, nil
}
