// Package common defines shared sentinel errors used across the adapter and
// its repositories. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
)
