package models

import "time"

// ChatMessage covers both room broadcasts and direct messages. Room messages
// have an empty ReceiverID; DMs always carry one.
type ChatMessage struct {
	ID         string    `bson:"_id,omitempty"`
	Room       string    `bson:"room"`
	SenderID   string    `bson:"senderId"`
	SenderName string    `bson:"senderName"`
	ReceiverID string    `bson:"receiverId,omitempty"`
	Content    string    `bson:"content"`
	Timestamp  time.Time `bson:"timestamp"`
}

type Room struct {
	ID        string   `bson:"_id,omitempty"`
	Name      string   `bson:"name"`
	IsCity    bool     `bson:"isCity"`
	MemberIDs []string `bson:"memberIds"`
	AdminIDs  []string `bson:"adminIds,omitempty"`
	TimeModel `bson:",inline"`
}

// Conversation identifies a DM channel by the unordered pair of participants.
// ParticipantIDs are stored sorted so the pair maps to exactly one document.
type Conversation struct {
	ID             string   `bson:"_id,omitempty"`
	ParticipantIDs []string `bson:"participantIds"`
	TimeModel      `bson:",inline"`
}
