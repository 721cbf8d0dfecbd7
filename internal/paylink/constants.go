package paylink

import "time"

const (
	// LinksPath creates a one-time payment link.
	LinksPath = "/v1/links"

	// BalancePath reads the usable house balance.
	BalancePath = "/v1/balance"

	DefaultTimeout = 2 * time.Second
)
