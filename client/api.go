package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/CUknot/chat_backend/models"
)

// ErrUnexpectedStatus wraps any non-2xx response from the API.
var ErrUnexpectedStatus = errors.New("unexpected status")

var avatars = []string{"😊", "🙂", "😎", "🤓", "🥳", "🤗", "😇"}

const profileColor = "#a855f7"

// NewProfile builds the profile submitted at sign-in.
func NewProfile(name string) models.User {
	return models.User{
		Name:   name,
		Avatar: avatars[rand.IntN(len(avatars))],
		Status: models.StatusOnline,
		Color:  profileColor,
	}
}

// APIClient talks to the chat REST API and opens relay connections.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a client for the server at baseURL
// (e.g. "http://localhost:8080"). A nil httpClient gets a 10s timeout default.
func NewAPIClient(baseURL string, httpClient *http.Client) *APIClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// SignIn registers the profile and returns it with the server-assigned ID.
func (c *APIClient) SignIn(ctx context.Context, profile models.User) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/api/account/signin", profile, &user); err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	return &user, nil
}

func (c *APIClient) Rooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := c.do(ctx, http.MethodGet, "/api/rooms", nil, &rooms); err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

func (c *APIClient) RoomDetail(ctx context.Context, roomID string) (models.RoomDetail, error) {
	var detail models.RoomDetail
	path := "/api/rooms/" + url.PathEscape(roomID) + "/channels"
	if err := c.do(ctx, http.MethodGet, path, nil, &detail); err != nil {
		return models.RoomDetail{}, fmt.Errorf("room %s channels: %w", roomID, err)
	}
	return detail, nil
}

func (c *APIClient) Messages(ctx context.Context, roomID, channelID string) ([]models.Message, error) {
	var messages []models.Message
	path := "/api/rooms/" + url.PathEscape(roomID) + "/" + url.PathEscape(channelID) + "/messages"
	if err := c.do(ctx, http.MethodGet, path, nil, &messages); err != nil {
		return nil, fmt.Errorf("room %s channel %s messages: %w", roomID, channelID, err)
	}
	return messages, nil
}

func (c *APIClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error != "" {
			return fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("%w %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
