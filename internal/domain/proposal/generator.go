// Package proposal drafts client proposals from qualified leads.
package proposal

import (
	"fmt"
	"strings"
	"time"

	"agentops_intake/internal/domain/catalog"
	"agentops_intake/internal/domain/entities"
	"agentops_intake/internal/domain/pricing"
)

const (
	DefaultPaymentTerms = "50% upfront, 50% on completion"
	DefaultValidFor     = 30 * 24 * time.Hour
)

type Options struct {
	ProposalID       string
	Now              time.Time
	RequiresApproval bool
	// ApprovalThreshold forces review for proposals whose total reaches it.
	// Zero disables the rule.
	ApprovalThreshold float64
	ValidFor          time.Duration
	PaymentTerms      string
}

var deliverablesByType = map[string][]string{
	catalog.ProjectTypeWeb: {
		"Production web application",
		"Responsive design for desktop and mobile",
		"User authentication and roles",
		"Admin panel",
		"Documentation and training",
	},
	catalog.ProjectTypeMobile: {
		"Mobile application builds for the agreed platforms",
		"Backend API",
		"App store submission",
		"Documentation and training",
	},
	catalog.ProjectTypeEcommerce: {
		"Fully functional e-commerce website",
		"Mobile-responsive design",
		"Payment gateway integration",
		"Admin dashboard for management",
		"User authentication system",
		"Inventory management system",
		"Documentation and training",
	},
	catalog.ProjectTypeSupport: {
		"Assessment report of the existing system",
		"Prioritised remediation backlog",
		"Delivered fixes and features",
		"Handover documentation",
	},
	catalog.ProjectTypeCustom: {
		"Discovery workshop outcomes",
		"Technical architecture",
		"Delivered software increments",
		"Documentation and training",
	},
}

var nextSteps = []string{
	"Review and approve this proposal",
	"Sign the project agreement",
	"Provide initial payment (50%)",
	"Schedule project kickoff meeting",
	"Begin development phase",
}

// Generate drafts a proposal for the lead. The lead's recommended packages
// are pre-selected; the rest of the catalogue for its project type and every
// add-on are offered unselected.
func Generate(lead entities.LeadRecord, opts Options) entities.Proposal {
	if opts.ValidFor <= 0 {
		opts.ValidFor = DefaultValidFor
	}
	if strings.TrimSpace(opts.PaymentTerms) == "" {
		opts.PaymentTerms = DefaultPaymentTerms
	}

	pr := pricing.Recompute(entities.ProposalPricing{
		Packages:     packageOptions(lead),
		AddOns:       addOnOptions(),
		PaymentTerms: opts.PaymentTerms,
		ValidUntil:   opts.Now.Add(opts.ValidFor),
	})
	pr.BasePrice = pr.TotalPrice

	timeline := lead.Timeline
	if len(lead.RecommendedPackages) > 0 && lead.RecommendedPackages[0].Duration != "" {
		timeline = lead.RecommendedPackages[0].Duration
	}

	p := entities.Proposal{
		ID:               opts.ProposalID,
		LeadID:           lead.ID,
		Title:            fmt.Sprintf("%s Development Proposal", lead.ProjectType),
		ExecutiveSummary: executiveSummary(lead),
		ProjectScope:     projectScope(lead),
		Deliverables:     deliverables(lead.ProjectType),
		Timeline:         timeline,
		Pricing:          pr,
		Terms:            terms(opts.PaymentTerms),
		NextSteps:        append([]string(nil), nextSteps...),
		Status:           entities.ProposalStatusDraft,
		CreatedAt:        opts.Now,
		UpdatedAt:        opts.Now,
	}
	p.RequiresApproval = opts.RequiresApproval || OverThreshold(p, opts.ApprovalThreshold)
	return p
}

// OverThreshold reports whether the proposal total reaches a non-zero
// approval threshold.
func OverThreshold(p entities.Proposal, threshold float64) bool {
	return threshold > 0 && p.Pricing.TotalPrice >= threshold
}

func packageOptions(lead entities.LeadRecord) []entities.PackageOption {
	var out []entities.PackageOption
	seen := map[string]bool{}
	for _, rec := range lead.RecommendedPackages {
		out = append(out, entities.PackageOption{
			ID:          rec.ID,
			Name:        rec.Name,
			Description: rec.Description,
			Price:       rec.Price,
			Duration:    rec.Duration,
			Features:    append([]string(nil), rec.Features...),
			Selected:    true,
		})
		seen[rec.ID] = true
	}
	for _, p := range catalog.PackagesFor(lead.ProjectType) {
		if seen[p.ID] {
			continue
		}
		out = append(out, entities.PackageOption{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Duration:    p.Duration,
			Features:    p.Features,
		})
	}
	return out
}

func addOnOptions() []entities.AddOnOption {
	var out []entities.AddOnOption
	for _, a := range catalog.AddOns() {
		out = append(out, entities.AddOnOption{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Price:       a.Price,
		})
	}
	return out
}

func executiveSummary(lead entities.LeadRecord) string {
	client := lead.Name
	if lead.Company != "" {
		client = lead.Company
	}
	summary := fmt.Sprintf("We propose to deliver a %s for %s", strings.ToLower(lead.ProjectType), client)
	if len(lead.PainPoints) > 0 {
		summary += fmt.Sprintf(" that addresses %s", strings.ToLower(strings.Join(lead.PainPoints, ", ")))
	}
	return summary + ". The engagement is sized to your stated budget and timeline and delivered in short, reviewable increments."
}

func projectScope(lead entities.LeadRecord) string {
	return fmt.Sprintf("This project covers the %s with the following requirements: %s.",
		strings.ToLower(lead.ProjectType), strings.Join(lead.ExtractedRequirements, "; "))
}

func deliverables(projectType string) []string {
	list, ok := deliverablesByType[projectType]
	if !ok {
		list = deliverablesByType[catalog.ProjectTypeCustom]
	}
	return append([]string(nil), list...)
}

func terms(paymentTerms string) []string {
	return []string{
		"Project timeline is estimated and may vary based on requirements",
		"Payment terms: " + paymentTerms,
		"All deliverables include 3 months of post-launch support",
		"Client is responsible for providing content and assets",
		"Additional features beyond scope will be quoted separately",
	}
}
