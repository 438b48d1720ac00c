package bo

import "github.com/pkg/errors"

// ErrAccessConflict is returned from Object.Acquire when write access is
// requested while the buffer is already held for shared (read) CPU access.
// A read-held surface cannot be promoted; release it and re-acquire.
var ErrAccessConflict error = errors.New("attempting to acquire read locked surface for write")
