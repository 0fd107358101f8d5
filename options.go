package rulematch

import (
	"golang.org/x/text/unicode/norm"
)

// An Option to modify the behaviour of the Validator.
type Option func(v *Validator) error

// Exhaustive makes the Validator consider every way each rule can match,
// rather than committing to the first matching clause.
//
// This accepts messages that greedy matching rejects when a rule's first
// successful clause leaves its siblings nothing to match. It is slower, as
// the number of candidate offsets can grow with the length of the message.
func Exhaustive() Option {
	return func(v *Validator) error {
		v.exhaustive = true
		return nil
	}
}

// Normalize messages to the given Unicode normalization form before matching.
//
// This allows eg. a literal "é" to match both the precomposed character and
// "e" followed by a combining acute accent when used with norm.NFC.
func Normalize(form norm.Form) Option {
	return func(v *Validator) error {
		v.normalize = &form
		return nil
	}
}
