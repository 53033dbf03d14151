package container

import "fmt"

// NotFoundError is returned when an identifier is neither stored in the
// container nor, during registration, known to the class table.
type NotFoundError struct {
	ID string
	// Class is true when the identifier was looked up as a class to build
	// rather than as a stored instance.
	Class bool
}

func (e *NotFoundError) Error() string {
	if e.Class {
		return fmt.Sprintf("container: class %q doesn't exist", e.ID)
	}
	return fmt.Sprintf("container: cannot find container with id %q", e.ID)
}

// DuplicateRegistrationError is returned when an identifier is registered twice.
type DuplicateRegistrationError struct {
	ID string
}

func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("container: %q is already registered", e.ID)
}

// MissingParameterError is returned when a plain constructor parameter has
// neither an override nor a default value.
type MissingParameterError struct {
	Class string
	Name  string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("container: param with name %q doesn't exist in params for %q", e.Name, e.Class)
}

// ConstructionError wraps an error returned by a class constructor.
type ConstructionError struct {
	Class string
	Err   error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("container: constructing %q failed: %v", e.Class, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// TypeMismatchError is returned by Resolve when the stored instance does not
// have the requested type.
type TypeMismatchError struct {
	ID       string
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("container: [%s] resolved to %s, expected %s", e.ID, e.Got, e.Expected)
}
