package models

// Channel is a sub-division of a room where messages are posted.
type Channel struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Unread int    `json:"unread"`
	Active bool   `json:"active"`
}
