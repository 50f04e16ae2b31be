// Package types
package types

import (
	"errors"
)

var ErrNoCommand = errors.New("no command recognized")
var ErrMalformedCommand = errors.New("malformed command")
var ErrTransportFailure = errors.New("governance transport failure")
var ErrTimeout = errors.New("governance call timed out")
var ErrProposalNotFound = errors.New("proposal not found")
var ErrInvalidConfig = errors.New("invalid governance config")
