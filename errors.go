package cfr

import "github.com/pkg/errors"

// ErrInvalidState is returned when a terminal-only query is made on a
// history that does not satisfy its precondition, e.g. TerminalUtility on
// a non-terminal history.
var ErrInvalidState = errors.New("cfr: invalid state for requested operation")

// ErrUnknownInfoSet is returned when a strategy is requested for an
// information set key that was never visited during training.
var ErrUnknownInfoSet = errors.New("cfr: unknown information set")
