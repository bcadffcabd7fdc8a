package responses

import "time"

type ChatMessage struct {
	ID         string    `json:"id"`
	Room       string    `json:"room"`
	SenderID   string    `json:"senderId"`
	SenderName string    `json:"senderName"`
	ReceiverID string    `json:"receiverId,omitempty"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
}

type Room struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	IsCity    bool     `json:"isCity"`
	MemberIDs []string `json:"memberIds"`
}
