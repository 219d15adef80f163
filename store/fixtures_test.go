package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRooms(t *testing.T) {
	got := Rooms()
	require.Len(t, got, 6)

	private := map[string]bool{"3": true, "5": true}
	for _, room := range got {
		assert.NotEmpty(t, room.ID)
		assert.NotEmpty(t, room.Name)
		assert.NotEmpty(t, room.Icon)
		assert.NotEmpty(t, room.Description)
		assert.Positive(t, room.MemberCount)
		assert.NotEmpty(t, room.LastActivity)
		assert.Equal(t, private[room.ID], room.IsPrivate, "room %s", room.ID)
	}
}

func TestFixturesAreCopies(t *testing.T) {
	first := Rooms()
	first[0].Name = "mutated"
	assert.NotEqual(t, "mutated", Rooms()[0].Name)

	msgs := DefaultMessages()
	msgs[0].Text = "mutated"
	assert.NotEqual(t, "mutated", DefaultMessages()[0].Text)

	detail := RoomDetail("1")
	detail.Channels[0].Name = "mutated"
	assert.NotEqual(t, "mutated", Channels()[0].Name)
}

func TestRoomDetailIgnoresRoomID(t *testing.T) {
	want := RoomDetail("1")
	for _, id := range []string{"2", "6", "999", "not-a-room", ""} {
		assert.Equal(t, want, RoomDetail(id), "room id %q", id)
	}

	assert.Equal(t, "1", want.SelectRoom.ID)
	assert.Len(t, want.Channels, 5)
	assert.Len(t, want.OnlineUsers, 5)
	assert.Len(t, want.DefaultMessages, 3)
}
