package models

type Notification struct {
	ID        string `bson:"_id,omitempty"`
	UserID    string `bson:"userId"`
	Type      string `bson:"type"`
	Message   string `bson:"message"`
	IsRead    bool   `bson:"isRead"`
	TimeModel `bson:",inline"`
}
