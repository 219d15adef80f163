package models

const (
	StatusOnline = "online"
	StatusAway   = "away"
)

// User is a chat participant. Profiles created at sign-in carry an ID and a
// color; fixture users only have name, avatar and status.
type User struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Status string `json:"status,omitempty"`
	Color  string `json:"color,omitempty"`
}
