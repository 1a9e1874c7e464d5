// Package validation provides the accumulating validation combinator used by
// every composite validator in the domain model.
//
// Unlike errors.Join, which exists to merge errors for printing, this package
// preserves the individual failures as an ordered, flattenable collection so a
// caller receives every violated rule from one validation pass instead of the
// first. Combining is associative: however intermediate results are grouped,
// the final flattened list has the same content in the same left-to-right
// order.
package validation

import "strings"

// Errors is an ordered, non-empty collection of validation failures.
//
// Errors implements the error interface and supports errors.Is/errors.As via
// Unwrap, so callers can still classify individual failures (for example with
// the errs package sentinels) without losing the accumulated view.
//
// An Errors value is only ever produced by Collect and is never empty.
type Errors struct {
	errs []error
}

// Collect is the N-ary accumulating combinator.
//
// Nil inputs (successful validations) are skipped. Non-nil inputs are
// concatenated in argument order. Any input that is itself an *Errors is
// flattened in place, which makes Collect associative:
//
//	Collect(a, Collect(b, c)) == Collect(Collect(a, b), c) == Collect(a, b, c)
//
// Returns nil if every input is nil, otherwise a non-empty *Errors holding
// every failure from left to right.
func Collect(errs ...error) error {
	var collected []error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if nested, ok := err.(*Errors); ok {
			collected = append(collected, nested.errs...)
			continue
		}
		collected = append(collected, err)
	}

	if len(collected) == 0 {
		return nil
	}
	return &Errors{errs: collected}
}

// Error joins the accumulated messages with "; " in accumulation order.
func (e *Errors) Error() string {
	messages := make([]string, len(e.errs))
	for i, err := range e.errs {
		messages[i] = err.Error()
	}
	return strings.Join(messages, "; ")
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *Errors) Unwrap() []error {
	return e.errs
}

// All returns a copy of the accumulated failures in order.
func (e *Errors) All() []error {
	out := make([]error, len(e.errs))
	copy(out, e.errs)
	return out
}

// Messages returns the human-readable message of every failure in order.
func (e *Errors) Messages() []string {
	messages := make([]string, len(e.errs))
	for i, err := range e.errs {
		messages[i] = err.Error()
	}
	return messages
}

// Len returns the number of accumulated failures. Always at least 1.
func (e *Errors) Len() int {
	return len(e.errs)
}
