package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// Account errors
	ErrMsgAccountNotFound = "account not found"
	ErrMsgAccountExists   = "account already registered"

	// Ledger errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Bet validation errors
	ErrMsgUnknownGame      = "unknown game"
	ErrMsgUnknownVariant   = "unknown bet variant"
	ErrMsgInvalidBetAmount = "bet amount not allowed"

	// Settlement errors
	ErrMsgSettlementConflict = "concurrent update conflict"
	ErrMsgRetriesExhausted   = "settlement retries exhausted"

	// Transfer errors
	ErrMsgSelfTransfer   = "cannot transfer to self"
	ErrMsgInvalidAmount  = "amount must be positive"

	// Payout errors
	ErrMsgPayoutsDisabled = "payouts are disabled"
	ErrMsgBelowMinPayout  = "below minimum payout amount"
	ErrMsgPaylinkFailed   = "failed to create payment link"

	// Database errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors. Wrap with fmt.Errorf("%s: %w", context, domain.ErrXxx)
// for additional context; callers match with errors.Is.
var (
	ErrAccountNotFound = errors.New(ErrMsgAccountNotFound)
	ErrAccountExists   = errors.New(ErrMsgAccountExists)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	ErrUnknownGame      = errors.New(ErrMsgUnknownGame)
	ErrUnknownVariant   = errors.New(ErrMsgUnknownVariant)
	ErrInvalidBetAmount = errors.New(ErrMsgInvalidBetAmount)

	ErrSettlementConflict = errors.New(ErrMsgSettlementConflict)
	ErrRetriesExhausted   = errors.New(ErrMsgRetriesExhausted)

	ErrSelfTransfer  = errors.New(ErrMsgSelfTransfer)
	ErrInvalidAmount = errors.New(ErrMsgInvalidAmount)

	ErrPayoutsDisabled = errors.New(ErrMsgPayoutsDisabled)
	ErrBelowMinPayout  = errors.New(ErrMsgBelowMinPayout)
	ErrPaylinkFailed   = errors.New(ErrMsgPaylinkFailed)
)
