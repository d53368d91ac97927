package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	request "agentops_intake/internal/adapter/http/dto/request"
	response "agentops_intake/internal/adapter/http/dto/response"
	"agentops_intake/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DepositHandler handles deposit collection for sent proposals.
type DepositHandler struct {
	usecase usecase.IDepositUseCase
	logger  *zap.Logger
}

func NewDepositHandler(uc usecase.IDepositUseCase, logger *zap.Logger) *DepositHandler {
	return &DepositHandler{usecase: uc, logger: logger.Named("handler")}
}

// CollectDeposit godoc
// @Summary  Collect the proposal deposit
// @Description Charges the deposit of a sent proposal through Mercado Pago. The body is optional.
// @Tags     deposit
// @Accept   json
// @Produce  json
// @Param    id   path string true "Session ID"
// @Param    body body request.DepositRequest false "Payer and provider payload"
// @Success  200 {object} response.DepositResponse
// @Failure  412 {object} pkg.HTTPError
// @Router   /sessions/{id}/proposal/deposit [post]
func (h *DepositHandler) CollectDeposit(c *gin.Context) {
	sessionID := c.Param("id")
	payload, err := readDepositRequest(c)
	if err != nil {
		h.logger.Info("invalid deposit payload", zap.String("session_id", sessionID), zap.Error(err))
		writeError(c, errInvalidRequest)
		return
	}

	d, err := h.usecase.Collect(c.Request.Context(), sessionID, payload.PayerEmail, payload.MPPayload)
	if err != nil {
		appErr := mapWorkflowError(err)
		h.logger.Info("deposit failed", zap.String("session_id", sessionID), zap.Int("status", appErr.HTTPStatus), zap.Error(err))
		writeError(c, appErr)
		return
	}
	h.logger.Info("deposit collected", zap.String("session_id", sessionID), zap.String("deposit_id", d.ID))

	c.JSON(http.StatusOK, response.FromDeposit(d))
}

// readDepositRequest accepts an empty or null body, the {payer_email, mp_payload}
// envelope, or a bare Mercado Pago payload.
func readDepositRequest(c *gin.Context) (request.DepositRequest, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return request.DepositRequest{}, err
	}
	if body := strings.TrimSpace(string(raw)); body == "" || body == "null" {
		return request.DepositRequest{}, nil
	}
	if !json.Valid(raw) {
		return request.DepositRequest{}, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return request.DepositRequest{}, err
	}
	_, hasPayload := envelope["mp_payload"]
	_, hasEmail := envelope["payer_email"]
	if !hasPayload && !hasEmail {
		return request.DepositRequest{MPPayload: raw}, nil
	}

	var req request.DepositRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return request.DepositRequest{}, err
	}
	if s := strings.TrimSpace(string(req.MPPayload)); s == "null" {
		req.MPPayload = nil
	}
	return req, nil
}
