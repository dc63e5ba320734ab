package common

// Error message prefixes shared by all contracts. Every abort raised by a
// contract starts with one of them, so callers can tell failure categories
// apart by the fault message.
const (
	// ErrInvalidStage is thrown when the operation is not legal in the
	// current stage of the funding round.
	ErrInvalidStage = "invalid stage"
	// ErrUnauthorized is thrown when the caller lacks the required role.
	ErrUnauthorized = "unauthorized"
	// ErrInvalidParameter is thrown on zero, empty or out-of-range arguments.
	ErrInvalidParameter = "invalid parameter"
	// ErrInsufficientFunds is thrown when a value is too low to be accounted.
	ErrInsufficientFunds = "insufficient funds"
	// ErrNotWhitelisted is thrown when an address fails the whitelist check.
	ErrNotWhitelisted = "not whitelisted"
	// ErrTimeoutNotReached is thrown when a time-gated action is attempted
	// too early.
	ErrTimeoutNotReached = "timeout not reached"
	// ErrAlreadyInitialized is thrown when one-time setup is invoked again.
	ErrAlreadyInitialized = "already initialized"
	// ErrReentrantCall is thrown when a value-moving method is entered while
	// another one is still executing.
	ErrReentrantCall = "reentrant call"
)
