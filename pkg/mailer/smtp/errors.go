package smtp

import "errors"

var (
	ErrInvalidConfig   = errors.New("smtp: invalid configuration")
	ErrTLSUnavailable  = errors.New("smtp: server does not support STARTTLS")
	ErrAuthUnavailable = errors.New("smtp: server does not support AUTH")
)
