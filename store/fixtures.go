package store

import (
	"github.com/CUknot/chat_backend/models"
)

var rooms = []models.Room{
	{
		ID:           "1",
		Name:         "一般チャット",
		Icon:         "💬",
		Description:  "誰でも参加できるオープンな雑談ルーム",
		MemberCount:  128,
		IsPrivate:    false,
		LastActivity: "2分前",
	},
	{
		ID:           "2",
		Name:         "プロジェクトA",
		Icon:         "📊",
		Description:  "プロジェクトAに関する議論・進捗報告",
		MemberCount:  24,
		IsPrivate:    false,
		LastActivity: "5分前",
	},
	{
		ID:           "3",
		Name:         "デザインチーム",
		Icon:         "🎨",
		Description:  "デザイン関連の相談・レビュー",
		MemberCount:  15,
		IsPrivate:    true,
		LastActivity: "15分前",
	},
	{
		ID:           "4",
		Name:         "エンジニアリング",
		Icon:         "⚙️",
		Description:  "技術的な議論・コードレビュー",
		MemberCount:  42,
		IsPrivate:    false,
		LastActivity: "1分前",
	},
	{
		ID:           "5",
		Name:         "経営会議",
		Icon:         "🏢",
		Description:  "経営陣のみ参加可能",
		MemberCount:  8,
		IsPrivate:    true,
		LastActivity: "30分前",
	},
	{
		ID:           "6",
		Name:         "ゲーム好き集まれ",
		Icon:         "🎮",
		Description:  "ゲームの話題で盛り上がろう",
		MemberCount:  67,
		IsPrivate:    false,
		LastActivity: "3分前",
	},
}

var channels = []models.Channel{
	{ID: "1", Name: "一般", Icon: "💬", Unread: 0, Active: true},
	{ID: "2", Name: "プロジェクトA", Icon: "📊", Unread: 3, Active: false},
	{ID: "3", Name: "デザイン", Icon: "🎨", Unread: 0, Active: false},
	{ID: "4", Name: "エンジニアリング", Icon: "⚙️", Unread: 7, Active: false},
	{ID: "5", Name: "雑談", Icon: "☕", Unread: 0, Active: false},
}

var onlineUsers = []models.User{
	{Name: "田中太郎", Avatar: "🧑", Status: models.StatusOnline},
	{Name: "山田花子", Avatar: "👩", Status: models.StatusOnline},
	{Name: "佐藤次郎", Avatar: "👨", Status: models.StatusOnline},
	{Name: "鈴木一郎", Avatar: "🧔", Status: models.StatusAway},
	{Name: "高橋美咲", Avatar: "👧", Status: models.StatusOnline},
}

var defaultMessages = []models.Message{
	{ID: 1, Text: "みなさん、こんにちは！", Sender: "田中太郎", Avatar: "🧑", Time: "10:30", Color: "#3b82f6"},
	{ID: 2, Text: "おはようございます！", Sender: "山田花子", Avatar: "👩", Time: "10:31", Color: "#ec4899"},
	{ID: 3, Text: "プロジェクトの進捗について話し合いましょう", Sender: "佐藤次郎", Avatar: "👨", Time: "10:32", Color: "#10b981"},
}

// Rooms returns the room list fixture.
func Rooms() []models.Room {
	return append([]models.Room(nil), rooms...)
}

// Channels returns the channel fixture shared by every room.
func Channels() []models.Channel {
	return append([]models.Channel(nil), channels...)
}

// OnlineUsers returns the static presence fixture.
func OnlineUsers() []models.User {
	return append([]models.User(nil), onlineUsers...)
}

// DefaultMessages returns the message history fixture shared by every channel.
func DefaultMessages() []models.Message {
	return append([]models.Message(nil), defaultMessages...)
}

// RoomDetail returns the selected-room payload. The fixture is not keyed by
// room, so roomID does not affect the result.
func RoomDetail(roomID string) models.RoomDetail {
	return models.RoomDetail{
		SelectRoom:      rooms[0],
		Channels:        Channels(),
		OnlineUsers:     OnlineUsers(),
		DefaultMessages: DefaultMessages(),
	}
}
