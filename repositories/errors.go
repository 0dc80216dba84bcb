package repositories

import "fmt"

// DataAccessError is returned for any failed database call. The wrapped
// error is kept for logs; UserMessage is safe to show to end users.
type DataAccessError struct {
	Operation string
	Resource  string
	Err       error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Resource, e.Err)
}

func (e *DataAccessError) Unwrap() error { return e.Err }

func (e *DataAccessError) UserMessage() string {
	return fmt.Sprintf("Unable to %s data. Please try again or contact support.", e.Operation)
}

func wrap(op, resource string, err error) error {
	if err == nil {
		return nil
	}
	return &DataAccessError{Operation: op, Resource: resource, Err: err}
}
