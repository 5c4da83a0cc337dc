package domain

import "errors"

// ErrNotFound marks a missing user, content item, tag, or category reference.
// Controllers map it to 404; it is never retried.
var ErrNotFound = errors.New("not found")
