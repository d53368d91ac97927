// Package conversation produces the scripted intake dialogue.
package conversation

import (
	"strings"

	"agentops_intake/internal/domain/entities"
	"agentops_intake/internal/infrastructure/clock"

	"github.com/google/uuid"
)

// ReplyConfidence is attached to every agent turn.
const ReplyConfidence = 0.85

type Engine struct {
	rules    []Rule
	fallback Rule
	clock    clock.Clock
	newID    func() string
}

type Option func(*Engine)

// WithRules replaces the default rule table.
func WithRules(rules []Rule) Option {
	return func(e *Engine) { e.rules = rules }
}

func WithIDGenerator(f func() string) Option {
	return func(e *Engine) { e.newID = f }
}

func NewEngine(c clock.Clock, opts ...Option) *Engine {
	e := &Engine{
		rules:    DefaultRules,
		fallback: Fallback,
		clock:    c,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start opens a conversation with the agent greeting.
func (e *Engine) Start(conversationID string) entities.Conversation {
	return entities.Conversation{
		ID: conversationID,
		Turns: []entities.ConversationTurn{{
			ID:        e.newID(),
			Role:      entities.TurnRoleAgent,
			Text:      Greeting,
			Timestamp: e.clock.Now(),
			Metadata: &entities.TurnMetadata{
				SuggestedReplies: append([]string(nil), GreetingSuggestions...),
			},
		}},
	}
}

// Submit appends the user turn and marks the conversation busy until Reply
// runs. Empty input and submissions while busy are rejected and leave the
// conversation untouched.
func (e *Engine) Submit(conv entities.Conversation, text string) (entities.Conversation, entities.ConversationTurn, error) {
	if strings.TrimSpace(text) == "" {
		return conv, entities.ConversationTurn{}, entities.ErrEmptyUtterance
	}
	if conv.Busy {
		return conv, entities.ConversationTurn{}, entities.ErrAgentBusy
	}

	turn := entities.ConversationTurn{
		ID:        e.newID(),
		Role:      entities.TurnRoleUser,
		Text:      text,
		Timestamp: e.clock.Now(),
	}
	out := conv.Clone()
	out.Turns = append(out.Turns, turn)
	out.Busy = true
	return out, turn, nil
}

// Reply appends the agent answer to utterance and clears the busy flag.
func (e *Engine) Reply(conv entities.Conversation, utterance string) (entities.Conversation, entities.ConversationTurn) {
	rule := e.Match(utterance)
	confidence := ReplyConfidence
	turn := entities.ConversationTurn{
		ID:        e.newID(),
		Role:      entities.TurnRoleAgent,
		Text:      rule.Reply,
		Timestamp: e.clock.Now(),
		Metadata: &entities.TurnMetadata{
			SuggestedReplies: append([]string(nil), rule.Suggestions...),
			Confidence:       &confidence,
		},
	}
	out := conv.Clone()
	out.Turns = append(out.Turns, turn)
	out.Busy = false
	return out, turn
}

// Respond is Submit followed immediately by Reply.
func (e *Engine) Respond(conv entities.Conversation, text string) (entities.Conversation, entities.ConversationTurn, error) {
	out, _, err := e.Submit(conv, text)
	if err != nil {
		return conv, entities.ConversationTurn{}, err
	}
	out, agent := e.Reply(out, text)
	return out, agent, nil
}

// Match returns the first rule matching text, or the fallback.
func (e *Engine) Match(text string) Rule {
	lower := strings.ToLower(text)
	for _, r := range e.rules {
		if r.Match(lower) {
			return r
		}
	}
	return e.fallback
}
