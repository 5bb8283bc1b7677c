package async

import "errors"

var ErrAwaitCancelled = errors.New("async: stopped waiting for future")
