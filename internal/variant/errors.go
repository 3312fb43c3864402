package variant

import "errors"

var (
	ErrInvalidVariant = errors.New("variant: invalid variant")
	ErrUnknownVariant = errors.New("variant: unknown variant")
	ErrDecodeFailed   = errors.New("variant: failed to decode variants file")
)
