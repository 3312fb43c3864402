package deadline

import "errors"

var (
	// ErrDeliveryFailed wraps a digest that could not be emailed.
	ErrDeliveryFailed = errors.New("deadline: delivery failed")

	// ErrNoRecipients indicates the variant resolved to an empty recipient list.
	ErrNoRecipients = errors.New("deadline: no recipients configured")
)
