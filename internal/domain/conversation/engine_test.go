package conversation

import (
	"fmt"
	"testing"
	"time"

	"agentops_intake/internal/domain/entities"
	"agentops_intake/internal/infrastructure/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() (*Engine, *clock.Manual) {
	c := clock.NewManual(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	n := 0
	e := NewEngine(c, WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("msg_%d", n)
	}))
	return e, c
}

func TestEngine_Start(t *testing.T) {
	e, _ := newTestEngine()
	conv := e.Start("conv_1")

	require.Len(t, conv.Turns, 1)
	first := conv.Turns[0]
	assert.Equal(t, entities.TurnRoleAgent, first.Role)
	assert.Equal(t, Greeting, first.Text)
	require.NotNil(t, first.Metadata)
	assert.Equal(t, GreetingSuggestions, first.Metadata.SuggestedReplies)
	assert.False(t, conv.Busy)
}

func TestEngine_Match(t *testing.T) {
	e, _ := newTestEngine()

	cases := []struct {
		text string
		rule string
	}{
		{"I need a WEB application", "project-web"},
		{"We want a website and an app", "project-web"},
		{"I want to build a mobile app", "project-mobile"},
		{"I need help with my existing project", "existing-project"},
		{"I'm not sure yet, can you help me figure it out?", "existing-project"},
		{"not sure what to build", "undecided"},
		{"What does it cost?", "budget"},
		{"I have a budget of $50k and a timeline of 3 months", "budget"},
		{"When could you start?", "timeline"},
		{"We sell shoes", "fallback"},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			assert.Equal(t, tc.rule, e.Match(tc.text).Name)
		})
	}
}

func TestEngine_SubmitValidation(t *testing.T) {
	e, _ := newTestEngine()
	conv := e.Start("conv_1")

	_, _, err := e.Submit(conv, "   \t ")
	require.ErrorIs(t, err, entities.ErrEmptyUtterance)
	require.ErrorIs(t, err, entities.ErrValidation)

	busy, _, err := e.Submit(conv, "hello")
	require.NoError(t, err)
	assert.True(t, busy.Busy)

	again, _, err := e.Submit(busy, "second")
	require.ErrorIs(t, err, entities.ErrAgentBusy)
	require.ErrorIs(t, err, entities.ErrStateConflict)
	assert.Len(t, again.Turns, 2)
}

func TestEngine_SubmitDoesNotAliasInput(t *testing.T) {
	e, _ := newTestEngine()
	conv := e.Start("conv_1")

	_, _, err := e.Submit(conv, "hello")
	require.NoError(t, err)
	assert.Len(t, conv.Turns, 1)
	assert.False(t, conv.Busy)
}

func TestEngine_Respond(t *testing.T) {
	e, c := newTestEngine()
	conv := e.Start("conv_1")
	c.Advance(time.Second)

	out, agent, err := e.Respond(conv, "  I need a web application ")
	require.NoError(t, err)

	require.Len(t, out.Turns, 3)
	assert.Equal(t, "  I need a web application ", out.Turns[1].Text)
	assert.Equal(t, entities.TurnRoleUser, out.Turns[1].Role)
	assert.Equal(t, agent, out.Turns[2])
	assert.False(t, out.Busy)

	require.NotNil(t, agent.Metadata)
	require.NotNil(t, agent.Metadata.Confidence)
	assert.Equal(t, ReplyConfidence, *agent.Metadata.Confidence)
	assert.Equal(t, DefaultRules[0].Reply, agent.Text)
	assert.Equal(t, DefaultRules[0].Suggestions, agent.Metadata.SuggestedReplies)
	assert.Equal(t, c.Now(), agent.Timestamp)
}

func TestEngine_FallbackSuggestions(t *testing.T) {
	e, _ := newTestEngine()
	_, agent, err := e.Respond(e.Start("c"), "We sell shoes")
	require.NoError(t, err)
	assert.Equal(t, Fallback.Reply, agent.Text)
	assert.Equal(t, Fallback.Suggestions, agent.Metadata.SuggestedReplies)
}

func TestEngine_TurnOrderMatchesSubmissionOrder(t *testing.T) {
	e, _ := newTestEngine()
	conv := e.Start("conv_1")
	inputs := []string{"web", "budget?", "timeline?", "anything else", "mobile"}

	for _, in := range inputs {
		var err error
		conv, _, err = e.Respond(conv, in)
		require.NoError(t, err)
	}

	require.Len(t, conv.Turns, 1+2*len(inputs))
	assert.Equal(t, inputs, conv.UserTexts())
	for i := 1; i < len(conv.Turns); i += 2 {
		assert.Equal(t, entities.TurnRoleUser, conv.Turns[i].Role)
		assert.Equal(t, entities.TurnRoleAgent, conv.Turns[i+1].Role)
	}
}

func TestEngine_WithRules(t *testing.T) {
	c := clock.NewManual(time.Unix(0, 0).UTC())
	e := NewEngine(c, WithRules([]Rule{{
		Name:        "ping",
		Match:       containsAny("ping"),
		Reply:       "pong",
		Suggestions: []string{"ping"},
	}}))

	_, agent, err := e.Respond(e.Start("c"), "PING")
	require.NoError(t, err)
	assert.Equal(t, "pong", agent.Text)

	_, agent, err = e.Respond(e.Start("c"), "web")
	require.NoError(t, err)
	assert.Equal(t, Fallback.Reply, agent.Text)
}
