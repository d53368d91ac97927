package entities

import "time"

type TurnRole string

const (
	TurnRoleUser  TurnRole = "user"
	TurnRoleAgent TurnRole = "agent"
)

// TurnMetadata is attached to agent turns only.
type TurnMetadata struct {
	SuggestedReplies []string `json:"suggested_replies,omitempty"`
	Confidence       *float64 `json:"confidence,omitempty"`
}

type ConversationTurn struct {
	ID        string        `json:"id"`
	Role      TurnRole      `json:"role"`
	Text      string        `json:"text"`
	Timestamp time.Time     `json:"timestamp"`
	Metadata  *TurnMetadata `json:"metadata,omitempty"`
}

// Conversation is the append-only transcript of one intake session.
//
// Invariants:
//   - Turns[0] is the agent greeting with a non-empty suggested-reply set.
//   - Busy is true between a user turn and the matching agent reply.
type Conversation struct {
	ID    string             `json:"id"`
	Turns []ConversationTurn `json:"turns"`
	Busy  bool               `json:"busy"`
}

// LastUserTurn returns the most recent user turn, if any.
func (c Conversation) LastUserTurn() (ConversationTurn, bool) {
	for i := len(c.Turns) - 1; i >= 0; i-- {
		if c.Turns[i].Role == TurnRoleUser {
			return c.Turns[i], true
		}
	}
	return ConversationTurn{}, false
}

// UserTexts returns the text of every user turn in submission order.
func (c Conversation) UserTexts() []string {
	var out []string
	for _, t := range c.Turns {
		if t.Role == TurnRoleUser {
			out = append(out, t.Text)
		}
	}
	return out
}

// Clone returns a copy whose Turns slice does not alias c.
func (c Conversation) Clone() Conversation {
	out := c
	out.Turns = append([]ConversationTurn(nil), c.Turns...)
	return out
}
