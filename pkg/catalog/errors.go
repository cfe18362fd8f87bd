package catalog

import (
	"errors"
	"fmt"
)

// ErrIntegrity is matched by every catalog integrity error.
var ErrIntegrity = errors.New("catalog integrity error")

// Integrity error kinds.
var (
	ErrUnknownObjectType = errors.New("unknown object type")
	ErrMissingEnum       = errors.New("missing enum definition")
	ErrUnknownEnum       = errors.New("unknown enum")
	ErrEmptyCatalog      = errors.New("catalog has no object types")
)

// IntegrityError reports a reference inside the catalog that points at
// nothing. It matches ErrIntegrity and its Kind with errors.Is.
type IntegrityError struct {
	Kind      error
	Object    string
	Attribute string
	Ref       string
}

func (e *IntegrityError) Error() string {
	where := e.Object
	if e.Attribute != "" {
		if where != "" {
			where += "."
		}
		where += e.Attribute
	}
	msg := e.Kind.Error()
	if e.Ref != "" {
		msg = fmt.Sprintf("%s %s", msg, e.Ref)
	}
	if where == "" {
		return fmt.Sprintf("catalog: %s", msg)
	}
	return fmt.Sprintf("catalog: %s: %s", where, msg)
}

func (e *IntegrityError) Is(target error) bool {
	return target == ErrIntegrity
}

func (e *IntegrityError) Unwrap() error {
	return e.Kind
}

// IsIntegrity reports whether err is a catalog integrity error.
func IsIntegrity(err error) bool {
	return errors.Is(err, ErrIntegrity)
}
