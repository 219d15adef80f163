package models

// Room is a chat space shown on the room list. The metadata is display-only.
type Room struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	Description  string `json:"description"`
	MemberCount  int    `json:"memberCount"`
	IsPrivate    bool   `json:"isPrivate"`
	LastActivity string `json:"lastActivity"`
}

// RoomDetail is the payload served for a selected room.
type RoomDetail struct {
	SelectRoom      Room      `json:"selectRoom"`
	Channels        []Channel `json:"channels"`
	OnlineUsers     []User    `json:"online_users"`
	DefaultMessages []Message `json:"default_messages"`
}
