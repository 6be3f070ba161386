package models

import "time"

// Message senders.
const (
	SenderUser  = "user"
	SenderAgent = "agent"
)

// ConversationMessage is a single turn in a chat session. Messages are
// immutable once appended and are never deleted within a session.
type ConversationMessage struct {
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatRequest is the payload accepted by the chat endpoint. ConversationID
// is optional; a new session is created when it is absent.
type ChatRequest struct {
	Message        string `json:"message" validate:"required"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// ChatResponse carries the assistant's reply back to the caller.
type ChatResponse struct {
	Response       string `json:"response"`
	ConversationID string `json:"conversation_id"`
}

// ResumeParseResponse is returned by the resume upload endpoint.
type ResumeParseResponse struct {
	Text   string   `json:"text"`
	Skills []string `json:"skills"`
}
