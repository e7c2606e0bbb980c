package db

import (
	"errors"
	"fmt"
)

// StoreError marks a failure of the persistent store (connectivity, SQL,
// constraint), as opposed to an application level error.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %s", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Wrap turns err into a *StoreError tagged with op. Nil stays nil and an
// existing StoreError is returned as is.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}

func IsStoreError(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}
