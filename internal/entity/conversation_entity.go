package entity

import "time"

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"

	ConversationModeAsk = "ask"
)

// Message is a single turn in a conversation thread.
type Message struct {
	Role      string
	Content   string
	Timestamp time.Time
}

// Conversation is a thread of alternating user/assistant turns scoped to one
// document. Messages are append-only: every completed ask adds exactly one
// user message followed by one assistant message.
type Conversation struct {
	Id         int
	DocumentId int
	Mode       string
	Messages   []Message
	CreatedAt  time.Time
}
