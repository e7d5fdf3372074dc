// Package errs is the error vocabulary of the alert pipelines: stack-carrying
// wrapping plus sentinel marking on top of cockroachdb/errors.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Wrap annotates err with msg and a stack capture. nil in, nil out.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches a sentinel so errors.Is(err, markErr) holds while the
// sentinel stays out of the message chain.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
