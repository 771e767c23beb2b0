package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/userdb/internal/client/models"
	"github.com/dmitrijs2005/userdb/internal/common"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// do sends body (if any) as JSON and decodes a 2xx answer into out. A
// []byte body is sent as is; anything else goes through json.Marshal.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var r io.Reader
	switch v := body.(type) {
	case nil:
	case []byte:
		r = bytes.NewReader(v)
	default:
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e errorResponse
		_ = json.Unmarshal(data, &e)
		return &APIError{StatusCode: resp.StatusCode, Detail: e.Detail}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Register creates an account and returns the server's message.
// password is not retained; the encoded request body is wiped after use.
func (c *HTTPClient) Register(ctx context.Context, username, email string, password []byte) (string, error) {
	body, err := credentialsBody(username, password, email)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(body)

	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/users", body, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Login checks the credentials and returns the server's welcome message.
func (c *HTTPClient) Login(ctx context.Context, username string, password []byte) (string, error) {
	body, err := credentialsBody(username, password)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(body)

	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/login", body, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/users/"+strconv.FormatInt(id, 10), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/ping", nil, nil)
}
