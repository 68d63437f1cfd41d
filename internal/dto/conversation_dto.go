package dto

import "time"

type AskRequest struct {
	DocumentId     int    `json:"documentId" validate:"required"`
	Question       string `json:"question" validate:"required"`
	ConversationId int    `json:"conversationId"` // 0 starts a new conversation
}

type AskResponse struct {
	Answer         string `json:"answer"`
	ConversationId int    `json:"conversationId"`
}

type MessageDTO struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type ConversationDetail struct {
	Id         int          `json:"id"`
	DocumentId int          `json:"documentId"`
	Mode       string       `json:"mode"`
	Messages   []MessageDTO `json:"messages"`
	CreatedAt  time.Time    `json:"createdAt"`
}

type GetConversationResponse struct {
	Conversation ConversationDetail `json:"conversation"`
}
