package pipeline

import "errors"

// ErrNoFiles is returned when a batch contains no valid resume files. This is
// an input-validation failure: the whole batch is rejected before any
// candidate is processed.
var ErrNoFiles = errors.New("no PDF files provided")
