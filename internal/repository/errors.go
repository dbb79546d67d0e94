package repository

import "errors"

// ErrNotFound is returned by Store.Get when no record exists for the id.
var ErrNotFound = errors.New("record not found")
