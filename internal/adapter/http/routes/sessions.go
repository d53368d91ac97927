package routes

import (
	"agentops_intake/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSessions = "/sessions"
)

func addSessionRoutes(rg *gin.RouterGroup, wf *handlers.WorkflowHandler, deposit *handlers.DepositHandler) {
	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", wf.StartSession)
		sessions.GET("/:id", wf.GetSession)
		sessions.DELETE("/:id", wf.AbandonSession)

		sessions.POST("/:id/messages", wf.SubmitMessage)
		sessions.PUT("/:id/step", wf.Navigate)
		sessions.PUT("/:id/approval-requirement", wf.SetApprovalRequirement)

		sessions.POST("/:id/proposal", wf.GenerateProposal)
		sessions.PATCH("/:id/proposal", wf.UpdateProposal)
		sessions.POST("/:id/proposal/packages/:item_id/toggle", wf.TogglePackage)
		sessions.POST("/:id/proposal/addons/:item_id/toggle", wf.ToggleAddOn)
		sessions.POST("/:id/proposal/send", wf.SendProposal)
		sessions.POST("/:id/proposal/approvals", wf.RequestApproval)
		sessions.POST("/:id/proposal/deposit", deposit.CollectDeposit)

		sessions.POST("/:id/approvals/:approval_id/approve", wf.Approve)
		sessions.POST("/:id/approvals/:approval_id/reject", wf.Reject)
	}
}
