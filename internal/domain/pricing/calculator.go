// Package pricing keeps a proposal's total in step with its selected
// packages and add-ons.
package pricing

import (
	"fmt"

	"agentops_intake/internal/domain/entities"
)

type Kind string

const (
	KindPackage Kind = "package"
	KindAddOn   Kind = "addOn"
)

// Total is the sum of every selected package and add-on price.
func Total(p entities.ProposalPricing) float64 {
	total := 0.0
	for _, pkg := range p.Packages {
		if pkg.Selected {
			total += pkg.Price
		}
	}
	for _, a := range p.AddOns {
		if a.Selected {
			total += a.Price
		}
	}
	return total
}

// Recompute returns p with TotalPrice derived from its selections.
func Recompute(p entities.ProposalPricing) entities.ProposalPricing {
	p.TotalPrice = Total(p)
	return p
}

// Toggle flips the selection of the item with the given id and recomputes
// the total. An unknown id returns entities.ErrPricingItemNotFound and the
// pricing unchanged.
func Toggle(p entities.ProposalPricing, kind Kind, id string) (entities.ProposalPricing, error) {
	out := p.Clone()
	found := false
	switch kind {
	case KindPackage:
		for i := range out.Packages {
			if out.Packages[i].ID == id {
				out.Packages[i].Selected = !out.Packages[i].Selected
				found = true
				break
			}
		}
	case KindAddOn:
		for i := range out.AddOns {
			if out.AddOns[i].ID == id {
				out.AddOns[i].Selected = !out.AddOns[i].Selected
				found = true
				break
			}
		}
	default:
		return p, fmt.Errorf("%w: unknown pricing kind %q", entities.ErrValidation, kind)
	}
	if !found {
		return p, fmt.Errorf("%w: %s %q", entities.ErrPricingItemNotFound, kind, id)
	}
	return Recompute(out), nil
}

// ToggleOnProposal applies Toggle to a draft proposal. Non-draft proposals
// are immutable.
func ToggleOnProposal(prop entities.Proposal, kind Kind, id string) (entities.Proposal, error) {
	if !prop.Editable() {
		return prop, entities.ErrProposalImmutable
	}
	pr, err := Toggle(prop.Pricing, kind, id)
	if err != nil {
		return prop, err
	}
	prop.Pricing = pr
	return prop, nil
}
