package entities

import (
	"errors"
	"fmt"
)

// Error kinds. Concrete errors wrap one of these so callers can branch with
// errors.Is without knowing every specific failure.
var (
	ErrValidation    = errors.New("validation error")
	ErrPrecondition  = errors.New("missing precondition")
	ErrStateConflict = errors.New("state conflict")
	ErrNotFound      = errors.New("not found")
)

var (
	ErrEmptyUtterance          = fmt.Errorf("%w: utterance must not be empty", ErrValidation)
	ErrEmptyRejectionReason    = fmt.Errorf("%w: rejection reason must not be empty", ErrValidation)
	ErrInvalidStep             = fmt.Errorf("%w: unknown workflow step", ErrValidation)
	ErrInvalidPayerEmail       = fmt.Errorf("%w: payer email must not be empty", ErrValidation)
	ErrInvalidDepositRatio     = fmt.Errorf("%w: deposit ratio must be in (0, 1]", ErrValidation)
	ErrAgentBusy               = fmt.Errorf("%w: agent reply still in flight", ErrStateConflict)
	ErrExtractionPreconditions = fmt.Errorf("%w: extraction preconditions not met", ErrPrecondition)
	ErrLeadMissing             = fmt.Errorf("%w: no lead record in session", ErrPrecondition)
	ErrProposalMissing         = fmt.Errorf("%w: no proposal in session", ErrPrecondition)
	ErrApprovalNotRequired     = fmt.Errorf("%w: proposal does not require approval", ErrPrecondition)
	ErrApprovalOutstanding     = fmt.Errorf("%w: proposal requires an approved review before sending", ErrPrecondition)
	ErrProposalNotSent         = fmt.Errorf("%w: proposal has not been sent", ErrPrecondition)
	ErrProposalImmutable       = fmt.Errorf("%w: proposal is not in draft", ErrStateConflict)
	ErrApprovalAlreadyReviewed = fmt.Errorf("%w: approval already reviewed", ErrStateConflict)
	ErrApprovalPending         = fmt.Errorf("%w: proposal already has a pending approval", ErrStateConflict)
	ErrDepositAlreadyCollected = fmt.Errorf("%w: deposit already collected", ErrStateConflict)
	ErrDepositInFlight         = fmt.Errorf("%w: deposit collection already in progress", ErrStateConflict)
	ErrSessionAbandoned        = fmt.Errorf("%w: session abandoned", ErrStateConflict)
	ErrPricingItemNotFound     = fmt.Errorf("%w: pricing item", ErrNotFound)
	ErrApprovalNotFound        = fmt.Errorf("%w: approval", ErrNotFound)
	ErrSessionNotFound         = fmt.Errorf("%w: session", ErrNotFound)
)
