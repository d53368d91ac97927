// Package lead turns an intake conversation into a qualified lead record.
//
// Extraction is rule based and deterministic: the same transcript always
// yields the same LeadRecord, including its id and timestamps.
package lead

import (
	"fmt"
	"regexp"
	"strings"

	"agentops_intake/internal/domain/catalog"
	"agentops_intake/internal/domain/entities"

	"github.com/google/uuid"
)

const notSpecified = "Not specified"

// leadNamespace seeds the name-based lead ids.
var leadNamespace = uuid.MustParse("6f1c2a0e-5d5b-4a8e-9c1f-2b7d9e4a6c31")

var (
	emailRe     = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	nameRe      = regexp.MustCompile(`(?i:my name is|this is|i am|i'm)\s+([A-Z][a-z'-]+(?:\s+[A-Z][a-z'-]+)?)`)
	companyRe   = regexp.MustCompile(`(?i:i work at|i work for|our company is|company called|we are|we're)\s+([A-Z][\w&.-]*(?:\s+[A-Z][\w&.-]*)*)`)
	phoneRe     = regexp.MustCompile(`\+\d[\d\s().-]{7,}\d|\(?\b\d{3}\)?[\s.-]\d{3}[\s.-]\d{4}\b`)
	roleRe      = regexp.MustCompile(`(?i)\b(?:my|our)\s+(ceo|cto|cfo|coo|founder|co-founder|product owner|head of [a-z]+)\b`)
	urgentWords = []string{"asap", "urgent", "immediately", "right away"}
)

type keywordRule struct {
	re    *regexp.Regexp
	label string
}

var projectTypeRules = []keywordRule{
	{regexp.MustCompile(`\b(e-?commerce|online store|shop|marketplace|storefront)\b`), catalog.ProjectTypeEcommerce},
	{regexp.MustCompile(`\b(web|website|web app|saas|portal)\b`), catalog.ProjectTypeWeb},
	{regexp.MustCompile(`\b(mobile|ios|android|apps?)\b`), catalog.ProjectTypeMobile},
	{regexp.MustCompile(`\b(existing|legacy|maintain|maintenance)\b`), catalog.ProjectTypeSupport},
}

var requirementRules = []keywordRule{
	{regexp.MustCompile(`\b(auth\w*|login|log in|sign[ -]?in|sso)\b`), "User authentication"},
	{regexp.MustCompile(`\b(payments?|checkout|billing)\b`), "Payment gateway integration"},
	{regexp.MustCompile(`\b(mobile|responsive)\b`), "Mobile responsive design"},
	{regexp.MustCompile(`\b(inventory|stock)\b`), "Inventory management"},
	{regexp.MustCompile(`\b(integrations?|apis?|crm|erp)\b`), "Third-party integrations"},
	{regexp.MustCompile(`\b(analytics|reports?|reporting|dashboards?)\b`), "Reporting and analytics"},
	{regexp.MustCompile(`\b(marketplace|vendors?)\b`), "Multi-vendor marketplace"},
	{regexp.MustCompile(`\b(ios|android)\b`), "Native iOS and Android apps"},
}

var painPointRules = []keywordRule{
	{regexp.MustCompile(`\b(outdated|legacy|old system)\b`), "Current system is outdated"},
	{regexp.MustCompile(`\b(slow|performance|lag\w*)\b`), "Performance problems"},
	{regexp.MustCompile(`\b(bugs?|crash\w*|broken)\b`), "Reliability issues in the current product"},
	{regexp.MustCompile(`\b(manual|spreadsheets?)\b`), "Manual processes slowing the team down"},
	{regexp.MustCompile(`\b(poor mobile|not mobile)\b`), "Poor mobile experience"},
	{regexp.MustCompile(`\b(payment options|limited payment)\b`), "Limited payment options"},
}

// ShouldExtract reports whether an utterance carries both a monetary cue and
// a duration cue, which is when enough is known to qualify the lead.
func ShouldExtract(text string) bool {
	lower := strings.ToLower(text)
	return hasMonetaryCue(lower) && hasDurationCue(lower)
}

// Extract synthesises a LeadRecord from the conversation. It fails with
// entities.ErrExtractionPreconditions unless the latest user turn satisfies
// ShouldExtract.
func Extract(conv entities.Conversation) (entities.LeadRecord, error) {
	last, ok := conv.LastUserTurn()
	if !ok || !ShouldExtract(last.Text) {
		return entities.LeadRecord{}, entities.ErrExtractionPreconditions
	}

	texts := conv.UserTexts()
	joined := strings.Join(texts, "\n")
	lower := strings.ToLower(joined)

	projectType := matchFirst(projectTypeRules, lower, catalog.ProjectTypeCustom)
	amount, hasAmount := latest(texts, parseAmount)
	span, hasSpan := latest(texts, parseDuration)
	requirements := matchAll(requirementRules, lower)
	name := firstSubmatch(nameRe, joined)

	l := entities.LeadRecord{
		ID:                    leadID(conv),
		Name:                  name,
		Email:                 emailRe.FindString(joined),
		Company:               firstSubmatch(companyRe, joined),
		Phone:                 strings.TrimSpace(phoneRe.FindString(joined)),
		ProjectType:           projectType,
		BudgetRange:           notSpecified,
		Timeline:              notSpecified,
		Urgency:               urgency(lower, span, hasSpan),
		ExtractedRequirements: requirements,
		PainPoints:            matchAll(painPointRules, lower),
		DecisionMakers:        decisionMakers(name, joined),
		Source:                entities.LeadSourceIntakeChat,
		CreatedAt:             last.Timestamp,
		UpdatedAt:             last.Timestamp,
	}
	if l.Name == "" {
		l.Name = "Prospect"
	}
	if hasAmount {
		l.BudgetRange = budgetRange(amount)
	}
	if hasSpan {
		l.Timeline = span.text
	}
	if len(l.ExtractedRequirements) == 0 {
		l.ExtractedRequirements = []string{"Requirements to be confirmed in discovery"}
	}

	l.QualificationScore = score(hasAmount, hasSpan, projectType, len(requirements))
	l.RecommendedPackages = []entities.PackageRecommendation{recommend(projectType, amount, hasAmount, l.BudgetRange)}
	l.Status = entities.LeadStatusNew
	if l.QualificationScore >= 60 {
		l.Status = entities.LeadStatusQualified
	}
	return l, nil
}

func leadID(conv entities.Conversation) string {
	seed := conv.ID + "\x00" + strings.Join(conv.UserTexts(), "\x00")
	return "lead_" + uuid.NewSHA1(leadNamespace, []byte(seed)).String()
}

// latest applies parse to texts from newest to oldest and returns the first
// hit, so later corrections win over earlier statements.
func latest[T any](texts []string, parse func(string) (T, bool)) (T, bool) {
	for i := len(texts) - 1; i >= 0; i-- {
		if v, ok := parse(texts[i]); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func matchFirst(rules []keywordRule, lower, def string) string {
	for _, r := range rules {
		if r.re.MatchString(lower) {
			return r.label
		}
	}
	return def
}

func matchAll(rules []keywordRule, lower string) []string {
	out := []string{}
	for _, r := range rules {
		if r.re.MatchString(lower) {
			out = append(out, r.label)
		}
	}
	return out
}

func firstSubmatch(re *regexp.Regexp, text string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func urgency(lower string, span duration, hasSpan bool) entities.Urgency {
	for _, w := range urgentWords {
		if strings.Contains(lower, w) {
			return entities.UrgencyUrgent
		}
	}
	if !hasSpan {
		return entities.UrgencyMedium
	}
	switch {
	case span.months <= 1:
		return entities.UrgencyUrgent
	case span.months <= 3:
		return entities.UrgencyHigh
	case span.months <= 6:
		return entities.UrgencyMedium
	default:
		return entities.UrgencyLow
	}
}

func decisionMakers(name, text string) []string {
	out := []string{}
	if name != "" {
		out = append(out, name+" (primary contact)")
	}
	for _, m := range roleRe.FindAllStringSubmatch(text, -1) {
		role := strings.ToLower(m[1])
		switch role {
		case "ceo", "cto", "cfo", "coo":
			role = strings.ToUpper(role)
		default:
			role = strings.ToUpper(role[:1]) + role[1:]
		}
		if !contains(out, role) {
			out = append(out, role)
		}
	}
	return out
}

func score(hasAmount, hasSpan bool, projectType string, requirements int) int {
	s := 30
	if hasAmount {
		s += 25
	} else {
		s += 10
	}
	if hasSpan {
		s += 20
	} else {
		s += 10
	}
	if projectType != catalog.ProjectTypeCustom {
		s += 10
	}
	s += 5 * min(requirements, 3)
	return entities.ClampQualificationScore(s)
}

// recommend picks the most complete package the budget covers, falling back
// to the cheapest package when the budget is unknown or too small.
func recommend(projectType string, amount float64, hasAmount bool, budget string) entities.PackageRecommendation {
	pkgs := catalog.PackagesFor(projectType)
	chosen := pkgs[0]
	confidence := 0.7
	reasoning := fmt.Sprintf("Entry package for a %s while the budget is confirmed", strings.ToLower(projectType))

	if hasAmount {
		fits := false
		for _, p := range pkgs {
			if p.Price <= amount {
				chosen = p
				fits = true
			}
		}
		if fits {
			confidence = 0.9
			reasoning = fmt.Sprintf("Budget range %s covers the %s package for a %s", budget, chosen.Name, strings.ToLower(projectType))
		} else {
			confidence = 0.6
			reasoning = fmt.Sprintf("Budget range %s is below every %s package; scope to be reduced in discovery", budget, strings.ToLower(projectType))
		}
	}

	return entities.PackageRecommendation{
		ID:          chosen.ID,
		Name:        chosen.Name,
		Description: chosen.Description,
		Price:       chosen.Price,
		Duration:    chosen.Duration,
		Features:    chosen.Features,
		Confidence:  confidence,
		Reasoning:   reasoning,
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
