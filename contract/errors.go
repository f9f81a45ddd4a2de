package contract

// Stable revert symbols. Tests and indexers match on these, so treat them as
// part of the public surface.
const (
	ErrNotInitialized        = "not_initialized"
	ErrAlreadyInitialized    = "already_initialized"
	ErrInvalidPayload        = "invalid_payload"
	ErrInvalidAmount         = "invalid_amount"
	ErrInvalidRecipient      = "invalid_recipient"
	ErrInvalidAsset          = "invalid_asset"
	ErrUnauthorized          = "unauthorized"
	ErrPolicyViolation       = "policy_violation"
	ErrGrantNotFound         = "grant_not_found"
	ErrWindowClosed          = "window_closed"
	ErrWindowOpen            = "window_open"
	ErrAlreadySpent          = "already_spent"
	ErrZeroAmount            = "zero_amount"
	ErrAmountTooHigh         = "amount_too_high"
	ErrNothingToWithdraw     = "nothing_to_withdraw"
	ErrInsufficientBalance   = "insufficient_balance"
	ErrInsufficientAllowance = "insufficient_allowance"
)
