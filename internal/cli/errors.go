package cli

import (
	"errors"
	"fmt"
)

type invalidArgError struct {
	name  string
	value string
	hint  string
}

func (e invalidArgError) Error() string {
	if e.hint == "" {
		return fmt.Sprintf("invalid %s: %q", e.name, e.value)
	}
	return fmt.Sprintf("invalid %s: %q (%s)", e.name, e.value, e.hint)
}

func errInvalidArg(name, value, hint string) error {
	return invalidArgError{name: name, value: value, hint: hint}
}

type notFoundError struct {
	kind string
	id   string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.kind, e.id)
}

func errNotFound(kind, id string) error {
	return notFoundError{kind: kind, id: id}
}

// reportedError marks an error that writeErr already printed.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }

func (e reportedError) Unwrap() error { return e.err }

// Reported reports whether err was already written to stderr by a command.
// Errors raised by cobra itself (unknown commands, missing flags) were not.
func Reported(err error) bool {
	var re reportedError
	return errors.As(err, &re)
}
