package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/CUknot/chat_backend/client"
	"github.com/CUknot/chat_backend/models"
)

func main() {
	server := flag.String("server", "http://localhost:8080", "chat server base URL")
	name := flag.String("name", "", "display name used when signing in")
	roomID := flag.String("room", "", "room id to join (prompted when empty)")
	sessionDir := flag.String("session-dir", defaultSessionDir(), "directory holding the stored profile")
	logout := flag.Bool("logout", false, "clear the stored profile and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := client.NewSessionStore(*sessionDir)
	if err != nil {
		log.Fatalf("Failed to open session store: %v", err)
	}
	nav := client.NewNavigator(store)
	api := client.NewAPIClient(*server, nil)
	input := bufio.NewScanner(os.Stdin)

	if *logout {
		if err := nav.Logout(); err != nil {
			log.Fatalf("Failed to log out: %v", err)
		}
		fmt.Println("Logged out.")
		return
	}

	screen, err := nav.Resolve(client.ScreenRoomList)
	if err != nil {
		log.Printf("Stored profile unreadable, signing in again: %v", err)
	}
	if screen == client.ScreenLogin {
		if err := login(ctx, nav, api, input, *name); err != nil {
			log.Fatalf("Login failed: %v", err)
		}
	}

	room, err := chooseRoom(ctx, api, input, *roomID)
	if err != nil {
		log.Fatalf("Failed to choose room: %v", err)
	}
	nav.SelectRoom(room)

	if screen, _ := nav.Resolve(client.ScreenChat); screen != client.ScreenChat {
		log.Fatalf("Cannot open chat, redirected to %s", screen)
	}

	if err := chat(ctx, nav, api, input); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Chat ended: %v", err)
	}
}

func defaultSessionDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".chatclient"
	}
	return filepath.Join(dir, "chatclient")
}

func prompt(input *bufio.Scanner, label string) (string, error) {
	fmt.Print(label)
	if !input.Scan() {
		if err := input.Err(); err != nil {
			return "", err
		}
		return "", errors.New("input closed")
	}
	return strings.TrimSpace(input.Text()), nil
}

func login(ctx context.Context, nav *client.Navigator, api *client.APIClient, input *bufio.Scanner, name string) error {
	for name == "" {
		var err error
		if name, err = prompt(input, "Name: "); err != nil {
			return err
		}
	}

	user, err := api.SignIn(ctx, client.NewProfile(name))
	if err != nil {
		return err
	}
	if err := nav.Login(user); err != nil {
		return err
	}
	fmt.Printf("Signed in as %s %s\n", user.Avatar, user.Name)
	return nil
}

func chooseRoom(ctx context.Context, api *client.APIClient, input *bufio.Scanner, roomID string) (models.Room, error) {
	rooms, err := api.Rooms(ctx)
	if err != nil {
		return models.Room{}, err
	}

	for _, room := range rooms {
		lock := ""
		if room.IsPrivate {
			lock = " [private]"
		}
		fmt.Printf("  %s  %s %s%s - %s (%d members, %s)\n",
			room.ID, room.Icon, room.Name, lock, room.Description, room.MemberCount, room.LastActivity)
	}

	for {
		if roomID == "" {
			if roomID, err = prompt(input, "Room id: "); err != nil {
				return models.Room{}, err
			}
		}
		for _, room := range rooms {
			if room.ID == roomID {
				return room, nil
			}
		}
		fmt.Printf("No room %q\n", roomID)
		roomID = ""
	}
}

func chat(ctx context.Context, nav *client.Navigator, api *client.APIClient, input *bufio.Scanner) error {
	session := nav.Session()
	room := session.Room

	detail, err := api.RoomDetail(ctx, room.ID)
	if err != nil {
		return err
	}
	if len(detail.Channels) > 0 {
		nav.SelectChannel(detail.Channels[0])
	}

	fmt.Printf("\n# %s %s\n", room.Icon, room.Name)
	for _, channel := range detail.Channels {
		fmt.Printf("  %s %s (%d unread)\n", channel.Icon, channel.Name, channel.Unread)
	}
	fmt.Printf("%d online\n\n", len(detail.OnlineUsers))
	for _, msg := range detail.DefaultMessages {
		printMessage(msg)
	}

	conn, err := api.Dial(ctx, room.ID)
	if err != nil {
		return err
	}
	defer conn.Close()

	received := make(chan error, 1)
	go func() {
		for {
			in, err := conn.Receive()
			if err != nil {
				received <- err
				return
			}
			if in.Message != nil {
				printMessage(*in.Message)
			} else {
				fmt.Printf("[raw] %s\n", in.Raw)
			}
		}
	}()

	lines := make(chan string)
	go func() {
		defer close(lines)
		for input.Scan() {
			lines <- input.Text()
		}
	}()

	fmt.Println("Type a message and press enter. /quit leaves, /logout signs out.")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-received:
			return err
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			line = strings.TrimSpace(line)
			switch line {
			case "":
				continue
			case "/quit":
				return nil
			case "/logout":
				return nav.Logout()
			}
			if _, err := conn.SendText(*session.User, line); err != nil {
				return err
			}
		}
	}
}

func printMessage(msg models.Message) {
	fmt.Printf("%s %s %s: %s\n", msg.Time, msg.Avatar, msg.Sender, msg.Text)
}
