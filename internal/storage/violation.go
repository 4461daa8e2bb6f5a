// Package storage defines the backend-agnostic classification of storage
// errors. Each backend adapter translates its own error codes into a
// Violation so repository code never inspects vendor codes directly.
package storage

import "errors"

// Violation enumerates the integrity constraints a write can break.
type Violation int

const (
	// ViolationNone means the error is not a constraint violation.
	ViolationNone Violation = iota
	// ViolationUnique is a unique or primary key conflict.
	ViolationUnique
	// ViolationForeignKey is a reference to a missing parent row.
	ViolationForeignKey
	// ViolationNotNull is a missing value for a required column.
	ViolationNotNull
	// ViolationCheck is a failed CHECK constraint.
	ViolationCheck
)

func (v Violation) String() string {
	switch v {
	case ViolationUnique:
		return "unique"
	case ViolationForeignKey:
		return "foreign_key"
	case ViolationNotNull:
		return "not_null"
	case ViolationCheck:
		return "check"
	default:
		return "none"
	}
}

// Classifier maps a backend error to a Violation.
type Classifier interface {
	Classify(err error) Violation
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(err error) Violation

func (f ClassifierFunc) Classify(err error) Violation {
	if err == nil {
		return ViolationNone
	}
	return f(err)
}

// ConstraintError records which constraint a storage write broke.
type ConstraintError struct {
	Violation  Violation
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	if e.Constraint != "" {
		return e.Violation.String() + " violation on " + e.Constraint + ": " + e.Err.Error()
	}
	return e.Violation.String() + " violation: " + e.Err.Error()
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// ViolationOf returns the violation recorded in err's chain, if any.
func ViolationOf(err error) Violation {
	var cErr *ConstraintError
	if errors.As(err, &cErr) {
		return cErr.Violation
	}
	return ViolationNone
}

// Wrap annotates err with its classified violation. Errors that are not
// constraint violations are returned unchanged.
func Wrap(c Classifier, err error, constraint string) error {
	if err == nil || c == nil {
		return err
	}
	v := c.Classify(err)
	if v == ViolationNone {
		return err
	}
	return &ConstraintError{Violation: v, Constraint: constraint, Err: err}
}
