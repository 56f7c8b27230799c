// Package codecapi is a client for the session API served by cmd/server.
package codecapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// 요청 시 Payload 구조체
type ReqPayload interface {
	EncodePayload | DecodePayload
}
type EncodePayload struct {
	Text string `json:"text"`
}
type DecodePayload struct {
	Bits   string `json:"bits,omitempty"`
	Packed []byte `json:"packed,omitempty"`
	BitLen int    `json:"bitLen,omitempty"`
}

// 응답 시 받는 데이터 구조체
type Session struct {
	ID          string            `json:"id"`
	Frequencies map[string]int    `json:"frequencies"`
	Codes       map[string]string `json:"codes"`
	Bits        string            `json:"bits"`
	Packed      []byte            `json:"packed"`
	BitLen      int               `json:"bitLen"`
	Symbols     int               `json:"symbols"`
	CreatedAt   time.Time         `json:"createdAt"`
}

type decodeResult struct {
	Text string `json:"text"`
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("codecapi: status %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the server at baseURL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/api/v1/",
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Encode(ctx context.Context, text string) (*Session, error) {
	var s Session
	if err := doRequest(ctx, c, http.MethodPost, "sessions", &EncodePayload{Text: text}, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Decode sends bits as a '0'/'1' string.
func (c *Client) Decode(ctx context.Context, id, bits string) (string, error) {
	return c.decode(ctx, id, DecodePayload{Bits: bits})
}

// DecodePacked sends bits packed MSB-first together with their count.
func (c *Client) DecodePacked(ctx context.Context, id string, packed []byte, bitLen int) (string, error) {
	return c.decode(ctx, id, DecodePayload{Packed: packed, BitLen: bitLen})
}

func (c *Client) decode(ctx context.Context, id string, p DecodePayload) (string, error) {
	var out decodeResult
	if err := doRequest(ctx, c, http.MethodPost, "sessions/"+url.PathEscape(id)+"/decode", &p, &out); err != nil {
		return "", err
	}
	return out.Text, nil
}

func (c *Client) Get(ctx context.Context, id string) (*Session, error) {
	var s Session
	if err := doRequest[EncodePayload](ctx, c, http.MethodGet, "sessions/"+url.PathEscape(id), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) List(ctx context.Context) ([]Session, error) {
	var out []Session
	if err := doRequest[EncodePayload](ctx, c, http.MethodGet, "sessions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func doRequest[T ReqPayload](ctx context.Context, c *Client, method, path string, payload *T, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		msg := strings.TrimSpace(string(data))
		if json.Unmarshal(data, &e) == nil && e.Error != "" {
			msg = e.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}
