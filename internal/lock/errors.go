package lock

import "errors"

// ErrLocked reports the inventory lock is held by another process. Check
// with errors.Is; Acquire wraps it in its timeout error.
var ErrLocked = errors.New("inventory is locked by another process")
