package resend

import "errors"

// ErrInvalidConfig is returned by New when required settings are missing.
var ErrInvalidConfig = errors.New("resend: invalid configuration")
