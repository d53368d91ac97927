package entities

import (
	"encoding/json"
	"time"
)

type DepositStatus string

const (
	DepositStatusPending  DepositStatus = "pending"
	DepositStatusApproved DepositStatus = "approved"
	DepositStatusRejected DepositStatus = "rejected"
)

// Deposit is the upfront payment collected for a sent proposal.
//
// Provider payload:
//   - ProviderPayloadRaw keeps the payment provider response for traceability.
//   - ProviderPayload is the parsed form, useful for debugging.
type Deposit struct {
	ID                string        `json:"id"`
	ProposalID        string        `json:"proposal_id"`
	Amount            float64       `json:"amount"`
	Status            DepositStatus `json:"status"`
	ProviderPaymentID string        `json:"provider_payment_id"`
	CreatedAt         time.Time     `json:"created_at"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
