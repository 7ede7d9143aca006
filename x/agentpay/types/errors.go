package types

import (
	"errors"

	errorsmod "cosmossdk.io/errors"
)

// Escrow marketplace sentinel errors. None of them is retryable: each reports a
// caller or precondition violation and aborts the whole operation.
var (
	ErrServiceNotActive          = errorsmod.Register(ModuleName, 2, "service is not active")
	ErrInsufficientPayment       = errorsmod.Register(ModuleName, 3, "payment amount is below the service price")
	ErrInvalidTaskStatus         = errorsmod.Register(ModuleName, 4, "task is not in the expected status")
	ErrUnauthorizedRequester     = errorsmod.Register(ModuleName, 5, "only the task requester can perform this action")
	ErrUnauthorizedProvider      = errorsmod.Register(ModuleName, 6, "only the task provider can perform this action")
	ErrUnauthorizedServiceOwner  = errorsmod.Register(ModuleName, 7, "only the service provider can perform this action")
	ErrDeadlineNotReached        = errorsmod.Register(ModuleName, 8, "task deadline has not passed yet")
	ErrDeadlinePassed            = errorsmod.Register(ModuleName, 9, "task deadline has passed")
	ErrDescriptionTooLong        = errorsmod.Register(ModuleName, 10, "description is too long")
	ErrDeadlineInPast            = errorsmod.Register(ModuleName, 11, "deadline must be in the future")
	ErrZkProofVerificationFailed = errorsmod.Register(ModuleName, 12, "zk proof verification failed")
	ErrReputationTooLow          = errorsmod.Register(ModuleName, 13, "provider reputation is too low for this service")

	// Lookup and integrity errors
	ErrServiceNotFound        = errorsmod.Register(ModuleName, 20, "service listing not found")
	ErrServiceAlreadyExists   = errorsmod.Register(ModuleName, 21, "service listing already exists")
	ErrTaskNotFound           = errorsmod.Register(ModuleName, 22, "task request not found")
	ErrTaskAlreadyExists      = errorsmod.Register(ModuleName, 23, "task request already exists")
	ErrServiceListingMismatch = errorsmod.Register(ModuleName, 24, "service listing does not match the task")
	ErrInvalidAddress         = errorsmod.Register(ModuleName, 25, "invalid address")
	ErrInvalidID              = errorsmod.Register(ModuleName, 26, "invalid identifier")
	ErrInvalidResultHash      = errorsmod.Register(ModuleName, 27, "invalid result hash")
	ErrCorruptRecord          = errorsmod.Register(ModuleName, 28, "corrupt stored record")
	ErrInvalidParams          = errorsmod.Register(ModuleName, 29, "invalid module parameters")
	ErrInvalidGenesis         = errorsmod.Register(ModuleName, 30, "invalid genesis state")
	ErrUnauthorized           = errorsmod.Register(ModuleName, 31, "unauthorized operation")
	ErrEscrowTransferFailed   = errorsmod.Register(ModuleName, 32, "escrow transfer failed")
	ErrCounterOverflow        = errorsmod.Register(ModuleName, 33, "counter overflow")
)

// ErrorWithRecovery wraps an error with a recovery suggestion
type ErrorWithRecovery struct {
	Err      error
	Recovery string
}

func (e *ErrorWithRecovery) Error() string {
	return e.Err.Error()
}

func (e *ErrorWithRecovery) Unwrap() error {
	return e.Err
}

// RecoverySuggestions tells the caller (agent or crank) what to change before retrying.
var RecoverySuggestions = map[error]string{
	ErrServiceNotActive:          "The listing was deactivated by its provider and accepts no new tasks. Pick another listing.",
	ErrInsufficientPayment:       "The listing price is above the max payment you supplied. Re-read the listing price or raise max_payment.",
	ErrInvalidTaskStatus:         "Query the task status first. Open tasks accept submissions or expiry, submitted tasks accept accept/dispute, terminal tasks accept nothing.",
	ErrUnauthorizedRequester:     "Only the requester that created the task can accept or dispute it. Sign with the requester key.",
	ErrUnauthorizedProvider:      "Only the provider of the originating listing can submit a result. Sign with the provider key.",
	ErrUnauthorizedServiceOwner:  "Only the provider that registered the listing can deactivate it.",
	ErrDeadlineNotReached:        "Expiry is only possible once block time is strictly after the task deadline. Wait and retry.",
	ErrDeadlinePassed:            "The deadline has passed; the task can only be expired now, which refunds the requester.",
	ErrDescriptionTooLong:        "Shorten the description: listings hold 128 bytes, tasks hold 256 bytes.",
	ErrDeadlineInPast:            "Choose a deadline strictly after the current block time.",
	ErrZkProofVerificationFailed: "Regenerate the proof with the current proving key and the exact result hash submitted. Hash-only submission is still available.",
	ErrReputationTooLow:          "The reputation proof did not verify for this threshold and commitment. Check the provider commitment and threshold.",
	ErrServiceNotFound:           "Derive the listing address from (provider, service_id) and check it was registered.",
	ErrServiceAlreadyExists:      "A listing already exists for this (provider, service_id). Choose a fresh service_id.",
	ErrTaskNotFound:              "Derive the task address from (requester, task_id) and check it was created.",
	ErrTaskAlreadyExists:         "A task already exists for this (requester, task_id). Choose a fresh task_id.",
	ErrServiceListingMismatch:    "Pass the listing the task was created against.",
}

// WrapWithRecovery wraps an error with recovery suggestion
func WrapWithRecovery(err error, msg string, args ...interface{}) error {
	wrapped := errorsmod.Wrapf(err, msg, args...)

	if suggestion, ok := RecoverySuggestions[err]; ok {
		return &ErrorWithRecovery{
			Err:      wrapped,
			Recovery: suggestion,
		}
	}

	return wrapped
}

// GetRecoverySuggestion returns the recovery suggestion for an error
func GetRecoverySuggestion(err error) string {
	for sentinel, suggestion := range RecoverySuggestions {
		if errors.Is(err, sentinel) {
			return suggestion
		}
	}

	return "No recovery suggestion available. Check error message for details."
}
