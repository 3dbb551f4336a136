// Package api is the HTTP client the booking form and the admin view talk to the
// bookings service with.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	adminDto "kwagala/internal/domains/admin/model/dto"
	"kwagala/internal/domains/booking/model/dto"
	"kwagala/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	DefaultBaseURL = "http://localhost:8080/api"
	bookingsPath   = "/bookings"
)

var ErrEmptyID = errors.New("booking id is empty")

// Error is a non-2xx answer. Message is the server's message, empty when the body
// carried none.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("http %d", e.StatusCode)
	}

	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

// MessageOr returns the server message carried by err, or fallback.
func MessageOr(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	return fallback
}

type status struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client

	mu        sync.RWMutex
	adminPass string
}

type Option func(*Client)

// WithHTTPClient replaces the default client, which has no timeout. Requests are otherwise
// bounded only by the caller's context.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New builds a client for baseURL, DefaultBaseURL when empty.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) CreateBooking(ctx context.Context, payload dto.CreateBookingRequest) (dto.CreateBookingResponse, error) {
	var res dto.CreateBookingResponse

	err := c.do(ctx, http.MethodPost, bookingsPath, payload, &res)

	return res, err
}

func (c *Client) ListBookings(ctx context.Context) ([]dto.BookingResponse, error) {
	var res []dto.BookingResponse

	if err := c.do(ctx, http.MethodGet, bookingsPath+"/admin", nil, &res); err != nil {
		return nil, err
	}

	return res, nil
}

// VerifyAdminPass checks pass with the server and, when accepted, sends it along with
// every later admin call.
func (c *Client) VerifyAdminPass(ctx context.Context, pass string) error {
	var res status

	if err := c.do(ctx, http.MethodPost, bookingsPath+"/bypass", adminDto.VerifyPassRequest{Pass: pass}, &res); err != nil {
		return err
	}

	if !res.Success {
		return &Error{StatusCode: http.StatusOK, Message: res.Message}
	}

	c.mu.Lock()
	c.adminPass = pass
	c.mu.Unlock()

	return nil
}

func (c *Client) DeleteBooking(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}

	return c.do(ctx, http.MethodDelete, bookingsPath+"/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader

	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}

		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	if body != nil {
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	c.mu.RLock()
	if c.adminPass != "" {
		req.Header.Set(constant.RequestHeaderAdminPass, c.adminPass)
	}
	c.mu.RUnlock()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("bookings api unreachable")

		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		var res status
		_ = json.NewDecoder(resp.Body).Decode(&res)

		return &Error{StatusCode: resp.StatusCode, Message: res.Message}
	}

	if out == nil {
		return nil
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}

	return nil
}
