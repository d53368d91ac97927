package entities

import "time"

type ProposalStatus string

const (
	ProposalStatusDraft    ProposalStatus = "draft"
	ProposalStatusSent     ProposalStatus = "sent"
	ProposalStatusReviewed ProposalStatus = "reviewed"
	ProposalStatusApproved ProposalStatus = "approved"
	ProposalStatusRejected ProposalStatus = "rejected"
)

type PackageOption struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Duration    string   `json:"duration"`
	Features    []string `json:"features"`
	Selected    bool     `json:"selected"`
}

type AddOnOption struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Selected    bool    `json:"selected"`
}

// ProposalPricing aggregates the priced line items of a proposal.
//
// TotalPrice is derived: it always equals the sum of selected packages and
// selected add-ons, and is recomputed on every selection change.
type ProposalPricing struct {
	BasePrice    float64         `json:"base_price"`
	Packages     []PackageOption `json:"packages"`
	AddOns       []AddOnOption   `json:"add_ons"`
	TotalPrice   float64         `json:"total_price"`
	PaymentTerms string          `json:"payment_terms"`
	ValidUntil   time.Time       `json:"valid_until"`
}

// Clone returns a copy whose option slices do not alias p.
func (p ProposalPricing) Clone() ProposalPricing {
	out := p
	out.Packages = append([]PackageOption(nil), p.Packages...)
	out.AddOns = append([]AddOnOption(nil), p.AddOns...)
	return out
}

type Proposal struct {
	ID               string          `json:"id"`
	LeadID           string          `json:"lead_id"`
	Title            string          `json:"title"`
	ExecutiveSummary string          `json:"executive_summary"`
	ProjectScope     string          `json:"project_scope"`
	Deliverables     []string        `json:"deliverables"`
	Timeline         string          `json:"timeline"`
	Pricing          ProposalPricing `json:"pricing"`
	Terms            []string        `json:"terms"`
	NextSteps        []string        `json:"next_steps"`
	Status           ProposalStatus  `json:"status"`
	RequiresApproval bool            `json:"requires_approval"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// Editable reports whether content and pricing may still change.
func (p Proposal) Editable() bool {
	return p.Status == ProposalStatusDraft
}

// ProposalPatch is a partial update; nil fields are left untouched.
type ProposalPatch struct {
	Title            *string
	ExecutiveSummary *string
	ProjectScope     *string
	Deliverables     []string
	Timeline         *string
	Terms            []string
	NextSteps        []string
	PaymentTerms     *string
}

// Apply returns p with the non-nil fields of the patch applied.
func (patch ProposalPatch) Apply(p Proposal) Proposal {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.ExecutiveSummary != nil {
		p.ExecutiveSummary = *patch.ExecutiveSummary
	}
	if patch.ProjectScope != nil {
		p.ProjectScope = *patch.ProjectScope
	}
	if patch.Deliverables != nil {
		p.Deliverables = append([]string(nil), patch.Deliverables...)
	}
	if patch.Timeline != nil {
		p.Timeline = *patch.Timeline
	}
	if patch.Terms != nil {
		p.Terms = append([]string(nil), patch.Terms...)
	}
	if patch.NextSteps != nil {
		p.NextSteps = append([]string(nil), patch.NextSteps...)
	}
	if patch.PaymentTerms != nil {
		p.Pricing.PaymentTerms = *patch.PaymentTerms
	}
	return p
}
