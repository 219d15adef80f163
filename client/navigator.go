package client

import (
	"errors"

	"github.com/CUknot/chat_backend/models"
)

// Screen identifies one of the client views.
type Screen string

const (
	ScreenLogin    Screen = "login"
	ScreenRoomList Screen = "roomList"
	ScreenChat     Screen = "chat"
)

// Navigator decides which screen may be shown, based on the stored profile
// and the current room selection.
type Navigator struct {
	store   *SessionStore
	session Session
}

func NewNavigator(store *SessionStore) *Navigator {
	return &Navigator{store: store}
}

// Authorized reports whether a profile may enter the room list or chat.
func Authorized(user *models.User) bool {
	return user != nil && user.ID != "" && user.Status != models.StatusAway
}

// Resolve returns the screen to show when target is requested. It reloads
// the profile from the store on every call, the way a page load would.
func (n *Navigator) Resolve(target Screen) (Screen, error) {
	if target == ScreenLogin {
		return ScreenLogin, nil
	}

	user, err := n.store.Load()
	if err != nil {
		n.session = Session{}
		if errors.Is(err, ErrNoSession) {
			return ScreenLogin, nil
		}
		return ScreenLogin, err
	}
	if !Authorized(user) {
		n.session = Session{}
		return ScreenLogin, nil
	}
	n.session.User = user

	if target == ScreenChat && n.session.Room == nil {
		return ScreenRoomList, nil
	}
	return target, nil
}

// Login stores the signed-in profile.
func (n *Navigator) Login(user *models.User) error {
	if err := n.store.Save(user); err != nil {
		return err
	}
	n.session.User = user
	return nil
}

// SelectRoom records the room to open in the chat screen.
func (n *Navigator) SelectRoom(room models.Room) {
	n.session.Room = &room
	n.session.Channel = nil
}

func (n *Navigator) SelectChannel(channel models.Channel) {
	n.session.Channel = &channel
}

// Logout clears the stored profile and the in-memory selection.
func (n *Navigator) Logout() error {
	n.session = Session{}
	return n.store.Clear()
}

func (n *Navigator) Session() Session {
	return n.session
}
