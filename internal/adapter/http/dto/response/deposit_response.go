package response

import (
	"time"

	"agentops_intake/internal/domain/entities"
)

type DepositResponse struct {
	DepositID         string    `json:"deposit_id"`
	ProposalID        string    `json:"proposal_id"`
	Amount            float64   `json:"amount"`
	Status            string    `json:"status"`
	ProviderPaymentID string    `json:"provider_payment_id"`
	CreatedAt         time.Time `json:"created_at"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromDeposit(d entities.Deposit) DepositResponse {
	return DepositResponse{
		DepositID:         d.ID,
		ProposalID:        d.ProposalID,
		Amount:            d.Amount,
		Status:            string(d.Status),
		ProviderPaymentID: d.ProviderPaymentID,
		CreatedAt:         d.CreatedAt,
		MPPayloadRaw:      string(d.ProviderPayloadRaw),
		MPPayload:         d.ProviderPayload,
	}
}
