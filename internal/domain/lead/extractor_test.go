package lead

import (
	"testing"
	"time"

	"agentops_intake/internal/domain/catalog"
	"agentops_intake/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

func transcript(id string, userTexts ...string) entities.Conversation {
	conv := entities.Conversation{
		ID: id,
		Turns: []entities.ConversationTurn{{
			ID:        "greeting",
			Role:      entities.TurnRoleAgent,
			Text:      "Hello!",
			Timestamp: t0,
			Metadata:  &entities.TurnMetadata{SuggestedReplies: []string{"hi"}},
		}},
	}
	for i, text := range userTexts {
		conv.Turns = append(conv.Turns,
			entities.ConversationTurn{ID: "u", Role: entities.TurnRoleUser, Text: text, Timestamp: t0.Add(time.Duration(i+1) * time.Minute)},
			entities.ConversationTurn{ID: "a", Role: entities.TurnRoleAgent, Text: "ok", Timestamp: t0.Add(time.Duration(i+1)*time.Minute + 2*time.Second)},
		)
	}
	return conv
}

func TestShouldExtract(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"I have a budget of $50k and a timeline of 3 months", true},
		{"I like websites", false},
		{"Our budget is $40,000", false},
		{"We need it in 3 months", false},
		{"around 30 thousand, deadline end of year", true},
		{"60k over 4-6 months", true},
		{"budget and timeline are flexible", false},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			assert.Equal(t, tc.want, ShouldExtract(tc.text))
		})
	}
}

func TestExtract_Preconditions(t *testing.T) {
	t.Run("no user turns", func(t *testing.T) {
		_, err := Extract(transcript("conv_1"))
		require.ErrorIs(t, err, entities.ErrExtractionPreconditions)
		require.ErrorIs(t, err, entities.ErrPrecondition)
	})

	t.Run("latest turn lacks cues", func(t *testing.T) {
		conv := transcript("conv_1", "I have a budget of $50k and a timeline of 3 months", "I like websites")
		l, err := Extract(conv)
		require.ErrorIs(t, err, entities.ErrExtractionPreconditions)
		assert.Equal(t, entities.LeadRecord{}, l)
	})
}

func TestExtract_WebLead(t *testing.T) {
	conv := transcript("conv_1", "I need a web application", "I have a budget of $50k and a timeline of 3 months")

	l, err := Extract(conv)
	require.NoError(t, err)

	assert.Regexp(t, `^lead_[0-9a-f-]{36}$`, l.ID)
	assert.Equal(t, "Prospect", l.Name)
	assert.Empty(t, l.Email)
	assert.Equal(t, catalog.ProjectTypeWeb, l.ProjectType)
	assert.Equal(t, "$50,000 - $100,000", l.BudgetRange)
	assert.Equal(t, "3 months", l.Timeline)
	assert.Equal(t, entities.UrgencyHigh, l.Urgency)
	assert.Equal(t, 85, l.QualificationScore)
	assert.Equal(t, "Highly Qualified", l.QualificationLabel())
	assert.Equal(t, entities.LeadStatusQualified, l.Status)
	assert.Equal(t, entities.LeadSourceIntakeChat, l.Source)
	assert.Equal(t, []string{"Requirements to be confirmed in discovery"}, l.ExtractedRequirements)
	assert.Empty(t, l.PainPoints)
	assert.Empty(t, l.DecisionMakers)
	assert.Equal(t, t0.Add(2*time.Minute), l.CreatedAt)
	assert.Equal(t, l.CreatedAt, l.UpdatedAt)

	require.Len(t, l.RecommendedPackages, 1)
	rec := l.RecommendedPackages[0]
	assert.Equal(t, "pkg_web_pro", rec.ID)
	assert.Equal(t, 45000.0, rec.Price)
	assert.Equal(t, 0.9, rec.Confidence)
}

func TestExtract_DetailedLead(t *testing.T) {
	conv := transcript("conv_2",
		"Hi, my name is Jane Roe, email jane@acme.io. We are Acme Corp and need an online store with payments and inventory. Our current site is outdated and slow. Our CTO will sign off.",
		"Budget is $120,000 and we need it within 2 months, ASAP",
	)

	l, err := Extract(conv)
	require.NoError(t, err)

	assert.Equal(t, "Jane Roe", l.Name)
	assert.Equal(t, "jane@acme.io", l.Email)
	assert.Equal(t, "Acme Corp", l.Company)
	assert.Equal(t, catalog.ProjectTypeEcommerce, l.ProjectType)
	assert.Equal(t, "Over $100,000", l.BudgetRange)
	assert.Equal(t, "2 months", l.Timeline)
	assert.Equal(t, entities.UrgencyUrgent, l.Urgency)
	assert.Equal(t, 95, l.QualificationScore)
	assert.Equal(t, []string{"Payment gateway integration", "Inventory management"}, l.ExtractedRequirements)
	assert.Equal(t, []string{"Current system is outdated", "Performance problems"}, l.PainPoints)
	assert.Equal(t, []string{"Jane Roe (primary contact)", "CTO"}, l.DecisionMakers)
	require.Len(t, l.RecommendedPackages, 1)
	assert.Equal(t, "pkg_ecom_pro", l.RecommendedPackages[0].ID)
}

func TestExtract_SmallBudget(t *testing.T) {
	conv := transcript("conv_3", "I want to build a mobile app with a budget of $10k and a timeline of 8 months")

	l, err := Extract(conv)
	require.NoError(t, err)

	assert.Equal(t, catalog.ProjectTypeMobile, l.ProjectType)
	assert.Equal(t, "Under $25,000", l.BudgetRange)
	assert.Equal(t, entities.UrgencyLow, l.Urgency)
	require.Len(t, l.RecommendedPackages, 1)
	assert.Equal(t, "pkg_mobile_mvp", l.RecommendedPackages[0].ID)
	assert.Equal(t, 0.6, l.RecommendedPackages[0].Confidence)
}

func TestExtract_Deterministic(t *testing.T) {
	conv := transcript("conv_1", "I need a web application with login and reports", "I have a budget of $50k and a timeline of 3 months")

	first, err := Extract(conv)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Extract(conv)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}

	other, err := Extract(transcript("conv_other", "I need a web application with login and reports", "I have a budget of $50k and a timeline of 3 months"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestExtract_ScoreWithinBounds(t *testing.T) {
	conv := transcript("conv_4", "web app with login, payments, mobile, inventory, api, reports, marketplace on ios: $500k, 2 weeks")

	l, err := Extract(conv)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, l.QualificationScore, entities.MinQualificationScore)
	assert.LessOrEqual(t, l.QualificationScore, entities.MaxQualificationScore)
}
