// Package storage provides the key/value persistence adapter the schema
// registry and record store write through to. The contract is deliberately
// small: opaque byte strings under string keys, read once at startup, written
// after every successful mutation.
package storage

import "errors"

// Well-known storage keys. Custom columns and tasks are serialized
// independently, each under its own key.
const (
	KeyCustomColumns = "customColumns"
	KeyTasks         = "todoList"
)

// Adapter errors
var (
	// ErrQuotaExceeded indicates the backing store refused the write for
	// lack of space
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// ErrUnavailable indicates the backing store cannot be reached
	ErrUnavailable = errors.New("storage unavailable")
)

// Adapter is the persistence contract. Read returns ok=false when no value
// exists under the key; that is not an error, it is the bootstrap case.
type Adapter interface {
	Read(key string) (value []byte, ok bool, err error)
	Write(key string, value []byte) error
	Close() error
}
