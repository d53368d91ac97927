package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"agentops_intake/internal/config"
	"agentops_intake/internal/domain/entities"
	"agentops_intake/internal/infrastructure/clock"
	"agentops_intake/internal/workflow"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const chatHelp = `commands:
  /proposal            generate a proposal from the lead
  /toggle-package <id> toggle a package on the draft
  /toggle-addon <id>   toggle an add-on on the draft
  /review on|off       switch manual review
  /request             request approval for the draft
  /approve [comments]  approve the pending review
  /reject <reason>     reject the pending review
  /send                send the proposal
  /status              print the session state
  /quit                leave the session`

type loader func() (*config.Config, *zap.Logger, error)

func newChatCmd(load loader) *cobra.Command {
	var typingDelay time.Duration

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with the intake agent and walk a lead to a proposal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, l, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = l.Sync() }()

			wfCfg := workflow.DefaultConfig()
			wfCfg.TypingDelay = cfg.Workflow.TypingDelay
			wfCfg.RequiresApproval = cfg.Workflow.RequiresApproval
			wfCfg.ApprovalThreshold = cfg.Workflow.ApprovalThreshold
			wfCfg.Reviewer = cfg.Workflow.Reviewer
			if cmd.Flags().Changed("typing-delay") {
				wfCfg.TypingDelay = typingDelay
			}

			sys := clock.System{}
			sess := workflow.New("cli_"+uuid.NewString(), wfCfg, sys, sys, workflow.WithLogger(l.Named("workflow")))
			return runChat(cmd.Context(), sess, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().DurationVar(&typingDelay, "typing-delay", 0, "override the agent typing delay")
	return cmd
}

type repl struct {
	ctx  context.Context
	sess *workflow.Session
	out  io.Writer
	seen int
}

func runChat(ctx context.Context, sess *workflow.Session, in io.Reader, out io.Writer) error {
	r := &repl{ctx: ctx, sess: sess, out: out}
	r.printNewTurns()
	fmt.Fprintln(out, "type /help for commands")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "/quit" {
			break
		}
		if strings.HasPrefix(line, "/") {
			r.command(line)
			continue
		}
		r.say(line)
	}
	sess.Abandon()
	fmt.Fprintln(out, "bye")
	return scanner.Err()
}

func (r *repl) say(text string) {
	_, hadLead := r.sess.Lead()
	if _, err := r.sess.SubmitUtterance(text); err != nil {
		r.fail(err)
		return
	}
	r.seen++
	if err := r.sess.AwaitReply(r.ctx); err != nil {
		r.fail(err)
		return
	}
	r.printNewTurns()

	if l, ok := r.sess.Lead(); ok && !hadLead {
		fmt.Fprintf(r.out, "lead extracted: %s, %s, budget %s, score %d (%s)\n",
			l.Name, l.ProjectType, l.BudgetRange, l.QualificationScore, l.QualificationLabel())
	}
}

func (r *repl) printNewTurns() {
	turns := r.sess.Conversation().Turns
	for _, t := range turns[r.seen:] {
		fmt.Fprintf(r.out, "agent: %s\n", t.Text)
		if t.Metadata != nil && len(t.Metadata.SuggestedReplies) > 0 {
			fmt.Fprintf(r.out, "  try: %s\n", strings.Join(t.Metadata.SuggestedReplies, " | "))
		}
	}
	r.seen = len(turns)
}

func (r *repl) command(line string) {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "/help":
		fmt.Fprintln(r.out, chatHelp)
	case "/proposal":
		p, err := r.sess.GenerateProposal()
		r.proposal(p, err)
	case "/toggle-package":
		p, err := r.sess.TogglePackage(arg)
		r.proposal(p, err)
	case "/toggle-addon":
		p, err := r.sess.ToggleAddOn(arg)
		r.proposal(p, err)
	case "/review":
		if arg != "on" && arg != "off" {
			fmt.Fprintln(r.out, "usage: /review on|off")
			return
		}
		if err := r.sess.SetRequiresApproval(arg == "on"); err != nil {
			r.fail(err)
			return
		}
		fmt.Fprintf(r.out, "manual review %s\n", arg)
	case "/request":
		a, err := r.sess.RequestApproval()
		if err != nil {
			r.fail(err)
			return
		}
		fmt.Fprintf(r.out, "approval %s pending: %s\n", a.ID, a.RequestNote)
	case "/approve", "/reject":
		id, ok := r.pendingApproval()
		if !ok {
			r.fail(entities.ErrApprovalNotFound)
			return
		}
		var (
			a   entities.AdminApproval
			err error
		)
		if name == "/approve" {
			a, err = r.sess.Approve(id, arg)
		} else {
			a, err = r.sess.Reject(id, arg)
		}
		if err != nil {
			r.fail(err)
			return
		}
		fmt.Fprintf(r.out, "approval %s %s by %s\n", a.ID, a.Status, a.ReviewedBy)
	case "/send":
		p, err := r.sess.SendProposal()
		r.proposal(p, err)
	case "/status":
		r.status()
	default:
		fmt.Fprintf(r.out, "unknown command %s, try /help\n", name)
	}
}

func (r *repl) pendingApproval() (string, bool) {
	approvals := r.sess.Approvals()
	for i := len(approvals) - 1; i >= 0; i-- {
		if approvals[i].Status == entities.ApprovalStatusPending {
			return approvals[i].ID, true
		}
	}
	return "", false
}

func (r *repl) proposal(p entities.Proposal, err error) {
	if err != nil {
		r.fail(err)
		return
	}
	fmt.Fprintf(r.out, "proposal %s [%s] total $%.2f", p.Title, p.Status, p.Pricing.TotalPrice)
	if p.RequiresApproval {
		fmt.Fprint(r.out, " (review required)")
	}
	fmt.Fprintln(r.out)
}

func (r *repl) status() {
	snap := r.sess.Snapshot()
	fmt.Fprintf(r.out, "step: %s, turns: %d, approvals: %d\n", snap.Step, len(snap.Conversation.Turns), len(snap.Approvals))
	if snap.Lead != nil {
		fmt.Fprintf(r.out, "lead: %s (%s)\n", snap.Lead.Name, snap.Lead.Status)
	}
	if snap.Proposal != nil {
		fmt.Fprintf(r.out, "proposal: %s [%s] $%.2f\n", snap.Proposal.ID, snap.Proposal.Status, snap.Proposal.Pricing.TotalPrice)
	}
}

func (r *repl) fail(err error) {
	var msg string
	switch {
	case errors.Is(err, entities.ErrPrecondition):
		msg = "not yet"
	case errors.Is(err, entities.ErrStateConflict):
		msg = "not now"
	default:
		msg = "error"
	}
	fmt.Fprintf(r.out, "%s: %v\n", msg, err)
}
