// Package memory holds map-backed repository implementations. They
// satisfy the same interfaces as the postgres repositories and back the
// usecase tests and local development runs.
package memory

import "errors"

var errMissingRow = errors.New("memory: row does not exist")
