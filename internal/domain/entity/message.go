package entity

import "time"

type Message struct {
	ID             string   `json:"id" firestore:"id"`
	ConversationID string   `json:"conversation_id" firestore:"conversationId"`
	SenderID       string   `json:"sender_id" firestore:"senderId"`
	Content        string   `json:"content" firestore:"content"`
	Type           string   `json:"type" firestore:"type"` // "text", "file", "system"
	Attachments    []string `json:"attachments,omitempty" firestore:"attachments,omitempty"`
	ReadBy         []string `json:"read_by" firestore:"readBy"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
