package models

// Message is a chat line. Time is a preformatted display string (e.g. "10:30").
type Message struct {
	ID     int    `json:"id"`
	Text   string `json:"text"`
	Sender string `json:"sender"`
	Avatar string `json:"avatar"`
	Time   string `json:"time"`
	Color  string `json:"color,omitempty"`
}
