package entities

import "time"

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
	UrgencyUrgent Urgency = "urgent"
)

type LeadStatus string

const (
	LeadStatusNew          LeadStatus = "new"
	LeadStatusQualified    LeadStatus = "qualified"
	LeadStatusProposalSent LeadStatus = "proposal_sent"
	LeadStatusSigned       LeadStatus = "signed"
	LeadStatusLost         LeadStatus = "lost"
)

type LeadSource string

const (
	LeadSourceIntakeChat  LeadSource = "intake_chat"
	LeadSourceDemoRequest LeadSource = "demo_request"
	LeadSourceReferral    LeadSource = "referral"
	LeadSourceDirect      LeadSource = "direct"
)

const (
	MinQualificationScore = 0
	MaxQualificationScore = 100
)

type PackageRecommendation struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Duration    string   `json:"duration"`
	Features    []string `json:"features"`
	Confidence  float64  `json:"confidence"`
	Reasoning   string   `json:"reasoning"`
}

// LeadRecord is the qualified lead synthesised from an intake conversation.
type LeadRecord struct {
	ID                    string                  `json:"id"`
	Name                  string                  `json:"name"`
	Email                 string                  `json:"email"`
	Company               string                  `json:"company,omitempty"`
	Phone                 string                  `json:"phone,omitempty"`
	ProjectType           string                  `json:"project_type"`
	BudgetRange           string                  `json:"budget_range"`
	Timeline              string                  `json:"timeline"`
	Urgency               Urgency                 `json:"urgency"`
	QualificationScore    int                     `json:"qualification_score"`
	RecommendedPackages   []PackageRecommendation `json:"recommended_packages"`
	ExtractedRequirements []string                `json:"extracted_requirements"`
	PainPoints            []string                `json:"pain_points"`
	DecisionMakers        []string                `json:"decision_makers"`
	Source                LeadSource              `json:"source"`
	Status                LeadStatus              `json:"status"`
	CreatedAt             time.Time               `json:"created_at"`
	UpdatedAt             time.Time               `json:"updated_at"`
}

// QualificationLabel buckets the score the same way the lead summary card does.
func (l LeadRecord) QualificationLabel() string {
	switch {
	case l.QualificationScore >= 80:
		return "Highly Qualified"
	case l.QualificationScore >= 60:
		return "Qualified"
	default:
		return "Needs Qualification"
	}
}

func ClampQualificationScore(score int) int {
	if score < MinQualificationScore {
		return MinQualificationScore
	}
	if score > MaxQualificationScore {
		return MaxQualificationScore
	}
	return score
}
