package memory

import "errors"

var errClosed = errors.New("repository is closed")
