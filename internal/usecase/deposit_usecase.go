package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"agentops_intake/internal/domain/entities"
	"agentops_intake/internal/infrastructure/clock"
	"agentops_intake/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

//go:generate mockgen -source=deposit_usecase.go -destination=../adapter/http/handlers/mocks/mock_deposit_usecase.go -package=mocks

// IDepositUseCase collects the upfront deposit of a sent proposal.
type IDepositUseCase interface {
	Collect(ctx context.Context, sessionID, payerEmail string, mpPayload json.RawMessage) (entities.Deposit, error)
}

type DepositUseCase struct {
	repo    interfaces.ISessionRepository
	gateway interfaces.IPaymentGateway
	ratio   float64
	clock   clock.Clock
	logger  *zap.Logger
}

var _ IDepositUseCase = (*DepositUseCase)(nil)

func NewDepositUseCase(repo interfaces.ISessionRepository, gateway interfaces.IPaymentGateway, ratio float64, c clock.Clock, logger *zap.Logger) *DepositUseCase {
	return &DepositUseCase{repo: repo, gateway: gateway, ratio: ratio, clock: c, logger: logger.Named("usecase")}
}

// Collect charges total × ratio through the payment gateway. The proposal id
// is sent as external_reference and the amount always comes from the
// proposal, never from the caller payload.
func (u *DepositUseCase) Collect(ctx context.Context, sessionID, payerEmail string, mpPayload json.RawMessage) (entities.Deposit, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Deposit{}, ErrInvalidSessionID
	}
	reqMap := map[string]any{}
	if len(mpPayload) > 0 {
		if err := json.Unmarshal(mpPayload, &reqMap); err != nil {
			u.logger.Warn("deposit payload rejected", zap.String("session_id", sessionID), zap.Error(err))
			return entities.Deposit{}, ErrInvalidMPPayload
		}
	}
	// a JSON null payload decodes to a nil map
	if reqMap == nil {
		reqMap = map[string]any{}
	}
	if u.gateway == nil {
		return entities.Deposit{}, ErrPaymentGatewayNotConfigured
	}

	s, err := u.repo.GetByID(ctx, sessionID)
	if err != nil {
		return entities.Deposit{}, err
	}
	if s == nil {
		return entities.Deposit{}, entities.ErrSessionNotFound
	}

	quote, err := s.BeginDeposit(u.ratio)
	if err != nil {
		return entities.Deposit{}, err
	}
	recorded := false
	defer func() {
		if !recorded {
			s.AbortDeposit()
		}
	}()
	log := u.logger.With(zap.String("session_id", sessionID), zap.String("proposal_id", quote.ProposalID))

	email := strings.TrimSpace(payerEmail)
	if email == "" {
		email = quote.LeadEmail
	}
	setPayerEmail(reqMap, email)
	if !hasPayer(reqMap) {
		return entities.Deposit{}, entities.ErrInvalidPayerEmail
	}
	reqMap["transaction_amount"] = quote.Amount
	reqMap["external_reference"] = quote.ProposalID
	if !hasNonEmptyString(reqMap, "description") {
		reqMap["description"] = fmt.Sprintf("Deposit for %s", quote.Title)
	}
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Deposit{}, err
	}

	log.Info("calling payment gateway", zap.Float64("amount", quote.Amount))
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Warn("payment gateway failed", zap.Error(err))
		return entities.Deposit{}, mapGatewayError(err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn("provider response unmarshal failed", zap.Error(err))
	}

	d := entities.Deposit{
		ID:                 "dep_" + uuid.NewString(),
		ProposalID:         quote.ProposalID,
		Amount:             quote.Amount,
		Status:             depositStatus(providerStatus),
		ProviderPaymentID:  providerPaymentID,
		CreatedAt:          u.clock.Now(),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	s.CompleteDeposit(d)
	recorded = true
	log.Info("deposit collected",
		zap.String("deposit_id", d.ID),
		zap.String("provider_payment_id", providerPaymentID),
		zap.String("status", string(d.Status)),
	)
	return d, nil
}

func depositStatus(providerStatus string) entities.DepositStatus {
	switch strings.ToLower(providerStatus) {
	case "approved", "authorized":
		return entities.DepositStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.DepositStatusRejected
	default:
		return entities.DepositStatusPending
	}
}

func setPayerEmail(m map[string]any, email string) {
	if email == "" {
		return
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		payer = map[string]any{}
		m["payer"] = payer
	}
	if !hasNonEmptyString(payer, "email") {
		payer["email"] = email
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	if hasNonEmptyString(payer, "email") {
		return true
	}
	id, ok := payer["id"]
	return ok && id != nil && strings.TrimSpace(fmt.Sprintf("%v", id)) != ""
}

func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
