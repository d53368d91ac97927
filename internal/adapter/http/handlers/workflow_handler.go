package handlers

import (
	"net/http"

	request "agentops_intake/internal/adapter/http/dto/request"
	response "agentops_intake/internal/adapter/http/dto/response"
	"agentops_intake/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WorkflowHandler exposes intake sessions over HTTP.
type WorkflowHandler struct {
	usecase usecase.IWorkflowUseCase
	logger  *zap.Logger
}

func NewWorkflowHandler(uc usecase.IWorkflowUseCase, logger *zap.Logger) *WorkflowHandler {
	return &WorkflowHandler{usecase: uc, logger: logger.Named("handler")}
}

// StartSession godoc
// @Summary  Start an intake session
// @Tags     sessions
// @Produce  json
// @Success  201 {object} response.SessionResponse
// @Router   /sessions [post]
func (h *WorkflowHandler) StartSession(c *gin.Context) {
	snap, err := h.usecase.StartSession(c.Request.Context())
	if err != nil {
		h.fail(c, "start session", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSnapshot(snap))
}

// GetSession godoc
// @Summary  Get a session snapshot
// @Tags     sessions
// @Produce  json
// @Param    id path string true "Session ID"
// @Success  200 {object} response.SessionResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /sessions/{id} [get]
func (h *WorkflowHandler) GetSession(c *gin.Context) {
	snap, err := h.usecase.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get session", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// AbandonSession godoc
// @Summary  Abandon a session
// @Tags     sessions
// @Param    id path string true "Session ID"
// @Success  204
// @Router   /sessions/{id} [delete]
func (h *WorkflowHandler) AbandonSession(c *gin.Context) {
	if err := h.usecase.AbandonSession(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "abandon session", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SubmitMessage godoc
// @Summary  Submit a user utterance
// @Description The agent reply arrives after the typing delay; poll the session to read it.
// @Tags     conversation
// @Accept   json
// @Produce  json
// @Param    id   path string true "Session ID"
// @Param    body body request.SubmitMessageRequest true "Utterance"
// @Success  202 {object} response.TurnResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /sessions/{id}/messages [post]
func (h *WorkflowHandler) SubmitMessage(c *gin.Context) {
	var payload request.SubmitMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	turn, err := h.usecase.SubmitMessage(c.Request.Context(), c.Param("id"), payload.Text)
	if err != nil {
		h.fail(c, "submit message", err)
		return
	}
	c.JSON(http.StatusAccepted, response.FromTurn(turn))
}

// Navigate godoc
// @Summary  Switch the visible workflow step
// @Tags     sessions
// @Accept   json
// @Produce  json
// @Param    id   path string true "Session ID"
// @Param    body body request.NavigateRequest true "Target step"
// @Success  200 {object} response.SessionResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /sessions/{id}/step [put]
func (h *WorkflowHandler) Navigate(c *gin.Context) {
	var payload request.NavigateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	snap, err := h.usecase.Navigate(c.Request.Context(), c.Param("id"), payload.ResolveStep())
	if err != nil {
		h.fail(c, "navigate", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// SetApprovalRequirement godoc
// @Summary  Switch manual review on or off
// @Tags     approvals
// @Accept   json
// @Produce  json
// @Param    id   path string true "Session ID"
// @Param    body body request.ApprovalRequirementRequest true "Review switch"
// @Success  200 {object} response.SessionResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /sessions/{id}/approval-requirement [put]
func (h *WorkflowHandler) SetApprovalRequirement(c *gin.Context) {
	var payload request.ApprovalRequirementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	snap, err := h.usecase.SetRequiresApproval(c.Request.Context(), c.Param("id"), *payload.RequiresApproval)
	if err != nil {
		h.fail(c, "set approval requirement", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// GenerateProposal godoc
// @Summary  Generate a proposal from the lead
// @Tags     proposal
// @Produce  json
// @Param    id path string true "Session ID"
// @Success  201 {object} response.ProposalResponse
// @Failure  412 {object} pkg.HTTPError
// @Router   /sessions/{id}/proposal [post]
func (h *WorkflowHandler) GenerateProposal(c *gin.Context) {
	p, err := h.usecase.GenerateProposal(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "generate proposal", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromProposal(p))
}

// UpdateProposal godoc
// @Summary  Edit the draft proposal
// @Tags     proposal
// @Accept   json
// @Produce  json
// @Param    id   path string true "Session ID"
// @Param    body body request.UpdateProposalRequest true "Fields to change"
// @Success  200 {object} response.ProposalResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /sessions/{id}/proposal [patch]
func (h *WorkflowHandler) UpdateProposal(c *gin.Context) {
	var payload request.UpdateProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Empty() {
		writeError(c, errInvalidRequest)
		return
	}
	p, err := h.usecase.UpdateProposal(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		h.fail(c, "update proposal", err)
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(p))
}

// TogglePackage godoc
// @Summary  Toggle a package on the draft proposal
// @Tags     proposal
// @Produce  json
// @Param    id      path string true "Session ID"
// @Param    item_id path string true "Package ID"
// @Success  200 {object} response.ProposalResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /sessions/{id}/proposal/packages/{item_id}/toggle [post]
func (h *WorkflowHandler) TogglePackage(c *gin.Context) {
	p, err := h.usecase.TogglePackage(c.Request.Context(), c.Param("id"), c.Param("item_id"))
	if err != nil {
		h.fail(c, "toggle package", err)
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(p))
}

// ToggleAddOn godoc
// @Summary  Toggle an add-on on the draft proposal
// @Tags     proposal
// @Produce  json
// @Param    id      path string true "Session ID"
// @Param    item_id path string true "Add-on ID"
// @Success  200 {object} response.ProposalResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /sessions/{id}/proposal/addons/{item_id}/toggle [post]
func (h *WorkflowHandler) ToggleAddOn(c *gin.Context) {
	p, err := h.usecase.ToggleAddOn(c.Request.Context(), c.Param("id"), c.Param("item_id"))
	if err != nil {
		h.fail(c, "toggle add-on", err)
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(p))
}

// SendProposal godoc
// @Summary  Send the proposal to the client
// @Tags     proposal
// @Produce  json
// @Param    id path string true "Session ID"
// @Success  200 {object} response.ProposalResponse
// @Failure  412 {object} pkg.HTTPError
// @Router   /sessions/{id}/proposal/send [post]
func (h *WorkflowHandler) SendProposal(c *gin.Context) {
	p, err := h.usecase.SendProposal(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "send proposal", err)
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(p))
}

// RequestApproval godoc
// @Summary  Request admin review of the draft proposal
// @Tags     approvals
// @Produce  json
// @Param    id path string true "Session ID"
// @Success  201 {object} response.ApprovalResponse
// @Failure  412 {object} pkg.HTTPError
// @Router   /sessions/{id}/proposal/approvals [post]
func (h *WorkflowHandler) RequestApproval(c *gin.Context) {
	a, err := h.usecase.RequestApproval(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "request approval", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromApproval(a))
}

// Approve godoc
// @Summary  Approve a pending review
// @Tags     approvals
// @Accept   json
// @Produce  json
// @Param    id          path string true "Session ID"
// @Param    approval_id path string true "Approval ID"
// @Param    body        body request.ApproveRequest false "Comments"
// @Success  200 {object} response.ApprovalResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /sessions/{id}/approvals/{approval_id}/approve [post]
func (h *WorkflowHandler) Approve(c *gin.Context) {
	var payload request.ApproveRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			writeError(c, errInvalidRequest)
			return
		}
	}
	a, err := h.usecase.Approve(c.Request.Context(), c.Param("id"), c.Param("approval_id"), payload.Comments)
	if err != nil {
		h.fail(c, "approve", err)
		return
	}
	c.JSON(http.StatusOK, response.FromApproval(a))
}

// Reject godoc
// @Summary  Reject a pending review
// @Tags     approvals
// @Accept   json
// @Produce  json
// @Param    id          path string true "Session ID"
// @Param    approval_id path string true "Approval ID"
// @Param    body        body request.RejectRequest true "Reason"
// @Success  200 {object} response.ApprovalResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /sessions/{id}/approvals/{approval_id}/reject [post]
func (h *WorkflowHandler) Reject(c *gin.Context) {
	var payload request.RejectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	a, err := h.usecase.Reject(c.Request.Context(), c.Param("id"), c.Param("approval_id"), payload.Reason)
	if err != nil {
		h.fail(c, "reject", err)
		return
	}
	c.JSON(http.StatusOK, response.FromApproval(a))
}

func (h *WorkflowHandler) fail(c *gin.Context, action string, err error) {
	appErr := mapWorkflowError(err)
	fields := []zap.Field{zap.String("action", action), zap.String("session_id", c.Param("id")), zap.Error(err)}
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("request failed", fields...)
	} else {
		h.logger.Info("request rejected", fields...)
	}
	writeError(c, appErr)
}
