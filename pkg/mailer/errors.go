package mailer

import "errors"

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrNoContent indicates neither text nor HTML content was provided.
	ErrNoContent = errors.New("email must have content")

	// ErrRenderFailed indicates the HTML body could not be rendered.
	ErrRenderFailed = errors.New("failed to render html body")

	// ErrSendFailed indicates email sending failed.
	ErrSendFailed = errors.New("failed to send email")
)
