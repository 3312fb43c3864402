package cli

import "errors"

var (
	ErrBootstrap       = errors.New("cli: bootstrap failed")
	ErrUnknownProvider = errors.New("cli: unknown mailer provider")
)
