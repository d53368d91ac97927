package request

import "encoding/json"

// DepositRequest is the payload for the deposit route.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago
// schemas; amount and external reference are always overwritten.
type DepositRequest struct {
	PayerEmail string          `json:"payer_email"`
	MPPayload  json.RawMessage `json:"mp_payload"`
}
